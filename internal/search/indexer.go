// internal/search/indexer.go
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// IndexAll writes every career into the configured index, one document per
// occupation keyed by its code. Meant to run once at startup when
// Elasticsearch is enabled; failures leave the fallback path intact.
func (s *Searcher) IndexAll(ctx context.Context) error {
	if s.es == nil {
		return nil
	}

	careers, err := s.directory.Careers()
	if err != nil {
		return err
	}

	indexed := 0
	for _, career := range careers {
		doc, err := json.Marshal(career)
		if err != nil {
			return fmt.Errorf("marshal career %s: %w", career.Code, err)
		}

		req := esapi.IndexRequest{
			Index:      s.es.Index,
			DocumentID: career.Code,
			Body:       strings.NewReader(string(doc)),
		}
		res, err := req.Do(ctx, s.es.Client)
		if err != nil {
			return fmt.Errorf("index career %s: %w", career.Code, err)
		}
		if res.IsError() {
			status := res.Status()
			res.Body.Close()
			return fmt.Errorf("index career %s: %s", career.Code, status)
		}
		res.Body.Close()
		indexed++
	}

	s.logger.Info("Career index refreshed", map[string]interface{}{
		"indexed": indexed,
		"index":   s.es.Index,
	})
	return nil
}
