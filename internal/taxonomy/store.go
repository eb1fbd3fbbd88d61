// internal/taxonomy/store.go
package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"aagaz-backend/internal/common/config"
	"aagaz-backend/internal/common/errors"
	"aagaz-backend/internal/common/logger"
	"aagaz-backend/internal/common/metrics"
	"aagaz-backend/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

// Store loads and serves the career taxonomy and the per-grade quiz files.
// Files are read once on first use and cached; the cache is safe for
// concurrent readers.
type Store struct {
	dir          string
	skipValidate bool
	logger       logger.Logger

	mu       sync.RWMutex
	loaded   bool
	taxonomy *models.Taxonomy
	quizzes  map[string]*models.Quiz
	careers  []models.Career
	byCode   map[string]int
}

// NewStore creates a store over the configured data directory. Nothing is
// read until Load or the first accessor runs.
func NewStore(cfg config.DataConfig, log logger.Logger) *Store {
	return &Store{
		dir:          cfg.Dir,
		skipValidate: cfg.SkipValidate,
		logger:       log,
	}
}

// Load reads and validates every data file. Calling it again reloads from
// disk, replacing the cache atomically.
func (s *Store) Load() error {
	tax, err := s.readTaxonomy()
	if err != nil {
		return err
	}

	quizzes := make(map[string]*models.Quiz, len(models.ValidGrades))
	for _, grade := range models.ValidGrades {
		quiz, err := s.readQuiz(grade)
		if err != nil {
			return err
		}
		quizzes[grade] = quiz
	}

	careers, byCode := flatten(tax)

	s.mu.Lock()
	s.taxonomy = tax
	s.quizzes = quizzes
	s.careers = careers
	s.byCode = byCode
	s.loaded = true
	s.mu.Unlock()

	metrics.TaxonomyReloads.Inc()
	s.logger.Info("Taxonomy data loaded", map[string]interface{}{
		"clusters": len(tax.Clusters),
		"careers":  len(careers),
		"quizzes":  len(quizzes),
	})
	return nil
}

func (s *Store) ensureLoaded() error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}
	return s.Load()
}

func (s *Store) readTaxonomy() (*models.Taxonomy, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, "taxonomy.json"))
	if err != nil {
		s.logger.WithError(err).Error("Failed to read taxonomy file", nil)
		return nil, errors.NewDataUnavailableError("taxonomy", err)
	}

	if !s.skipValidate {
		if err := validateDocument(taxonomySchema, data); err != nil {
			return nil, errors.NewDataUnavailableError("taxonomy", err)
		}
	}

	var tax models.Taxonomy
	if err := json.Unmarshal(data, &tax); err != nil {
		return nil, errors.NewDataUnavailableError("taxonomy", err)
	}
	return &tax, nil
}

func (s *Store) readQuiz(grade string) (*models.Quiz, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, grade+".json"))
	if err != nil {
		s.logger.WithError(err).Error("Failed to read quiz file", map[string]interface{}{
			"grade": grade,
		})
		return nil, errors.NewDataUnavailableError("quiz "+grade, err)
	}

	if !s.skipValidate {
		if err := validateDocument(quizSchema, data); err != nil {
			return nil, errors.NewDataUnavailableError("quiz "+grade, err)
		}
	}

	var quiz models.Quiz
	if err := json.Unmarshal(data, &quiz); err != nil {
		return nil, errors.NewDataUnavailableError("quiz "+grade, err)
	}
	return &quiz, nil
}

func validateDocument(schema string, doc []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
	}
	return nil
}

// flatten walks clusters, groups and occupations in file order and assigns
// each career its traversal position. This order is what ranking ties fall
// back to, so it must never be re-sorted.
func flatten(tax *models.Taxonomy) ([]models.Career, map[string]int) {
	var careers []models.Career
	byCode := make(map[string]int)

	for _, cluster := range tax.Clusters {
		for _, group := range cluster.Groups {
			for _, occ := range group.Occupations {
				if _, seen := byCode[occ.Code]; seen {
					continue
				}
				byCode[occ.Code] = len(careers)
				careers = append(careers, models.Career{
					Occupation: occ,
					Cluster:    cluster.Name,
					Group:      group.GroupName,
				})
			}
		}
	}
	return careers, byCode
}

// Taxonomy returns the full parsed dataset.
func (s *Store) Taxonomy() (*models.Taxonomy, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.taxonomy, nil
}

// Quiz returns the question set for a grade. Grade must already be
// validated by the caller.
func (s *Store) Quiz(grade string) (*models.Quiz, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	quiz, ok := s.quizzes[grade]
	if !ok {
		return nil, errors.NewResourceNotFoundError("quiz", grade)
	}
	return quiz, nil
}

// Careers returns every occupation denormalized with its cluster and group,
// in traversal order.
func (s *Store) Careers() ([]models.Career, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.careers, nil
}

// CareerByCode finds a single occupation by its unique code.
func (s *Store) CareerByCode(code string) (models.Career, error) {
	if err := s.ensureLoaded(); err != nil {
		return models.Career{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byCode[code]
	if !ok {
		return models.Career{}, errors.NewResourceNotFoundError("career", code)
	}
	return s.careers[idx], nil
}

// Clusters returns the reduced cluster listing: names plus per-group
// occupation counts.
func (s *Store) Clusters() ([]models.ClusterSummary, error) {
	tax, err := s.Taxonomy()
	if err != nil {
		return nil, err
	}

	summaries := make([]models.ClusterSummary, 0, len(tax.Clusters))
	for _, cluster := range tax.Clusters {
		groups := make([]models.GroupSummary, 0, len(cluster.Groups))
		for _, group := range cluster.Groups {
			groups = append(groups, models.GroupSummary{
				Name:            group.GroupName,
				OccupationCount: len(group.Occupations),
			})
		}
		summaries = append(summaries, models.ClusterSummary{
			Name:   cluster.Name,
			Groups: groups,
		})
	}
	return summaries, nil
}

// CareersByCluster returns all careers in the named cluster. The match is
// case-insensitive on the full cluster name.
func (s *Store) CareersByCluster(clusterName string) (string, []models.Career, error) {
	tax, err := s.Taxonomy()
	if err != nil {
		return "", nil, err
	}

	for _, cluster := range tax.Clusters {
		if !strings.EqualFold(cluster.Name, clusterName) {
			continue
		}
		var careers []models.Career
		for _, group := range cluster.Groups {
			for _, occ := range group.Occupations {
				careers = append(careers, models.Career{
					Occupation: occ,
					Cluster:    cluster.Name,
					Group:      group.GroupName,
				})
			}
		}
		return cluster.Name, careers, nil
	}
	return "", nil, errors.NewResourceNotFoundError("cluster", clusterName)
}

// SearchFilter narrows a career search. Empty fields are ignored.
type SearchFilter struct {
	Query   string
	Cluster string
	Group   string
	Skills  []string
}

// SearchCareers applies the filter over all careers, preserving traversal
// order. Matching is case-insensitive substring throughout.
func (s *Store) SearchCareers(filter SearchFilter) ([]models.Career, error) {
	careers, err := s.Careers()
	if err != nil {
		return nil, err
	}

	out := make([]models.Career, 0, len(careers))
	for _, career := range careers {
		if filter.Cluster != "" && !containsFold(career.Cluster, filter.Cluster) {
			continue
		}
		if filter.Group != "" && !containsFold(career.Group, filter.Group) {
			continue
		}
		if len(filter.Skills) > 0 && !anySkillMatches(career.SkillsRequired, filter.Skills) {
			continue
		}
		if filter.Query != "" && !matchesQuery(career, filter.Query) {
			continue
		}
		out = append(out, career)
	}
	return out, nil
}

func matchesQuery(career models.Career, query string) bool {
	if containsFold(career.Title, query) {
		return true
	}
	for _, skill := range career.SkillsRequired {
		if containsFold(skill, query) {
			return true
		}
	}
	return false
}

func anySkillMatches(skills, wanted []string) bool {
	for _, skill := range skills {
		for _, w := range wanted {
			if containsFold(skill, w) {
				return true
			}
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(strings.TrimSpace(needle)))
}
