// internal/api/careers/models.go
package careers

import "aagaz-backend/internal/models"

// ClusterCareersResponse is the GET /api/careers/cluster/{clusterName}
// payload.
type ClusterCareersResponse struct {
	Cluster string          `json:"cluster"`
	Careers []models.Career `json:"careers"`
}

// SearchResponse is the GET /api/careers/search payload.
type SearchResponse struct {
	Careers []models.Career `json:"careers"`
	Total   int             `json:"total"`
}
