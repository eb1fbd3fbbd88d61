// internal/search/searcher.go
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	"aagaz-backend/internal/common/database"
	"aagaz-backend/internal/common/logger"
	"aagaz-backend/internal/models"
	"aagaz-backend/internal/taxonomy"
)

// Directory is the in-memory career source the searcher falls back to, and
// the canonical record store results are resolved against.
type Directory interface {
	Careers() ([]models.Career, error)
	CareerByCode(code string) (models.Career, error)
	SearchCareers(filter taxonomy.SearchFilter) ([]models.Career, error)
}

// Searcher answers career searches. With an Elasticsearch client it runs a
// multi_match query against the careers index; without one, or when the
// query fails, it falls back to the in-memory directory scan so search
// keeps working while the cluster is down.
type Searcher struct {
	es        *database.ElasticsearchClient
	directory Directory
	logger    logger.Logger
}

func NewSearcher(es *database.ElasticsearchClient, directory Directory, log logger.Logger) *Searcher {
	return &Searcher{
		es:        es,
		directory: directory,
		logger:    log,
	}
}

// Enabled reports whether an Elasticsearch backend is wired in.
func (s *Searcher) Enabled() bool {
	return s.es != nil
}

// SearchCareers runs the filter, preferring Elasticsearch for free-text
// queries. Structured-only filters always use the directory scan since it
// is exact and cheap.
func (s *Searcher) SearchCareers(ctx context.Context, filter taxonomy.SearchFilter) ([]models.Career, error) {
	if s.es == nil || filter.Query == "" {
		return s.directory.SearchCareers(filter)
	}

	careers, err := s.searchES(ctx, filter)
	if err != nil {
		s.logger.WithError(err).Warn("Elasticsearch query failed, falling back to in-memory search", map[string]interface{}{
			"query": filter.Query,
		})
		return s.directory.SearchCareers(filter)
	}
	return careers, nil
}

func (s *Searcher) searchES(ctx context.Context, filter taxonomy.SearchFilter) ([]models.Career, error) {
	queryBody := buildCareerQuery(filter)
	body, err := json.Marshal(queryBody)
	if err != nil {
		return nil, err
	}

	req := esapi.SearchRequest{
		Index: []string{s.es.Index},
		Body:  strings.NewReader(string(body)),
	}
	res, err := req.Do(ctx, s.es.Client)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search returned %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source struct {
					Code string `json:"code"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	careers := make([]models.Career, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		career, err := s.directory.CareerByCode(hit.Source.Code)
		if err != nil {
			// Index is stale relative to the dataset; skip the orphan.
			continue
		}
		careers = append(careers, career)
	}
	return careers, nil
}

// buildCareerQuery builds a bool query: multi_match over the text fields
// plus term-ish filters for cluster and group.
func buildCareerQuery(filter taxonomy.SearchFilter) map[string]interface{} {
	mustClauses := []interface{}{
		map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  filter.Query,
				"fields": []string{"title^3", "skills_required^2", "cluster", "group"},
				"type":   "best_fields",
			},
		},
	}

	filterClauses := []interface{}{}
	if filter.Cluster != "" {
		filterClauses = append(filterClauses, map[string]interface{}{
			"match": map[string]interface{}{"cluster": filter.Cluster},
		})
	}
	if filter.Group != "" {
		filterClauses = append(filterClauses, map[string]interface{}{
			"match": map[string]interface{}{"group": filter.Group},
		})
	}
	for _, skill := range filter.Skills {
		filterClauses = append(filterClauses, map[string]interface{}{
			"match": map[string]interface{}{"skills_required": skill},
		})
	}

	return map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must":   mustClauses,
				"filter": filterClauses,
			},
		},
	}
}
