// internal/search/searcher_test.go
package search

import (
	"context"
	"testing"

	"aagaz-backend/internal/common/errors"
	"aagaz-backend/internal/common/logger"
	"aagaz-backend/internal/models"
	"aagaz-backend/internal/taxonomy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDirectory struct {
	careers []models.Career
}

func (f *fakeDirectory) Careers() ([]models.Career, error) {
	return f.careers, nil
}

func (f *fakeDirectory) CareerByCode(code string) (models.Career, error) {
	for _, c := range f.careers {
		if c.Code == code {
			return c, nil
		}
	}
	return models.Career{}, errors.NewResourceNotFoundError("career", code)
}

func (f *fakeDirectory) SearchCareers(filter taxonomy.SearchFilter) ([]models.Career, error) {
	var out []models.Career
	for _, c := range f.careers {
		if filter.Query == "" || containsAnywhere(c, filter.Query) {
			out = append(out, c)
		}
	}
	return out, nil
}

func containsAnywhere(c models.Career, q string) bool {
	return c.Title == q || c.Code == q
}

func TestSearcher_FallbackWithoutElasticsearch(t *testing.T) {
	directory := &fakeDirectory{careers: []models.Career{
		{Occupation: models.Occupation{Title: "Software Engineer", Code: "CS-001"}},
		{Occupation: models.Occupation{Title: "Doctor", Code: "MED-001"}},
	}}
	searcher := NewSearcher(nil, directory, logger.NewTestLogger(t))

	assert.False(t, searcher.Enabled())

	careers, err := searcher.SearchCareers(context.Background(), taxonomy.SearchFilter{Query: "Doctor"})
	require.NoError(t, err)
	require.Len(t, careers, 1)
	assert.Equal(t, "MED-001", careers[0].Code)
}

func TestSearcher_IndexAllWithoutElasticsearchIsNoOp(t *testing.T) {
	searcher := NewSearcher(nil, &fakeDirectory{}, logger.NewTestLogger(t))

	assert.NoError(t, searcher.IndexAll(context.Background()))
}

func TestBuildCareerQuery(t *testing.T) {
	query := buildCareerQuery(taxonomy.SearchFilter{
		Query:   "ai",
		Cluster: "Engineering & Technology",
		Skills:  []string{"Machine Learning"},
	})

	boolQuery := query["query"].(map[string]interface{})["bool"].(map[string]interface{})
	must := boolQuery["must"].([]interface{})
	require.Len(t, must, 1)
	multiMatch := must[0].(map[string]interface{})["multi_match"].(map[string]interface{})
	assert.Equal(t, "ai", multiMatch["query"])

	filters := boolQuery["filter"].([]interface{})
	assert.Len(t, filters, 2)
}
