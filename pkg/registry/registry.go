// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
)

// DatasetKind values recognized by the loader.
const (
	KindTaxonomy = "taxonomy"
	KindQuiz     = "quiz"
)

func LoadRegistry(path string) (*DatasetRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg DatasetRegistry
	err = json.Unmarshal(data, &reg)
	return &reg, err
}

// FindByKind returns all datasets of the given kind in registry order.
func (r *DatasetRegistry) FindByKind(kind string) []Dataset {
	var out []Dataset
	for _, d := range r.Datasets {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// FindByGrade returns the quiz dataset for a grade, if one is registered.
func (r *DatasetRegistry) FindByGrade(grade string) (Dataset, error) {
	for _, d := range r.Datasets {
		if d.Kind == KindQuiz && d.Grade == grade {
			return d, nil
		}
	}
	return Dataset{}, fmt.Errorf("no quiz dataset registered for grade %s", grade)
}
