// pkg/registry/schema.go
package registry

type DatasetRegistry struct {
	Version     string    `json:"version"`
	LastUpdated string    `json:"lastUpdated"`
	Datasets    []Dataset `json:"datasets"`
}

type Dataset struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"displayName"`
	Description string   `json:"description"`
	Kind        string   `json:"kind"`
	File        string   `json:"file"`
	SchemaFile  string   `json:"schemaFile"`
	Grade       string   `json:"grade,omitempty"`
	Version     string   `json:"version"`
	Tags        []string `json:"tags"`
}
