// internal/taxonomy/colleges.go
package taxonomy

import (
	"strings"

	"aagaz-backend/internal/common/errors"
	"aagaz-backend/internal/models"
)

// College type labels. JK colleges come from the jk_colleges lists,
// national ones from top_colleges.
const (
	CollegeTypeJK       = "JK"
	CollegeTypeNational = "National"
)

// Colleges derives the college directory from every occupation's college
// lists. A college keeps the type of its first mention, and the output
// order is first-mention order so repeated calls return identical slices.
func (s *Store) Colleges() ([]models.College, error) {
	tax, err := s.Taxonomy()
	if err != nil {
		return nil, err
	}

	type entry struct {
		college  models.College
		programs []string
		clusters []string
	}

	index := make(map[string]int)
	var entries []*entry

	add := func(name, typ, program, cluster string) {
		idx, ok := index[name]
		if !ok {
			idx = len(entries)
			index[name] = idx
			entries = append(entries, &entry{
				college: models.College{Name: name, Type: typ},
			})
		}
		e := entries[idx]
		e.programs = append(e.programs, program)
		if !containsString(e.clusters, cluster) {
			e.clusters = append(e.clusters, cluster)
		}
	}

	for _, cluster := range tax.Clusters {
		for _, group := range cluster.Groups {
			for _, occ := range group.Occupations {
				for _, name := range occ.JKColleges {
					add(name, CollegeTypeJK, occ.Title, cluster.Name)
				}
				for _, name := range occ.TopColleges {
					add(name, CollegeTypeNational, occ.Title, cluster.Name)
				}
			}
		}
	}

	colleges := make([]models.College, 0, len(entries))
	for _, e := range entries {
		c := e.college
		c.ProgramCount = len(e.programs)
		c.Programs = dedupe(e.programs)
		c.Clusters = e.clusters
		colleges = append(colleges, c)
	}
	return colleges, nil
}

// CollegesByType filters the directory by type, case-insensitively.
func (s *Store) CollegesByType(typ string) ([]models.College, error) {
	colleges, err := s.Colleges()
	if err != nil {
		return nil, err
	}
	out := make([]models.College, 0, len(colleges))
	for _, c := range colleges {
		if strings.EqualFold(c.Type, typ) {
			out = append(out, c)
		}
	}
	return out, nil
}

// CollegeFilter narrows a college search. Empty fields are ignored.
type CollegeFilter struct {
	Query   string
	Type    string
	Cluster string
	Program string
}

// SearchColleges applies the filter over the derived directory.
func (s *Store) SearchColleges(filter CollegeFilter) ([]models.College, error) {
	colleges, err := s.Colleges()
	if err != nil {
		return nil, err
	}

	out := make([]models.College, 0, len(colleges))
	for _, c := range colleges {
		if filter.Type != "" && !strings.EqualFold(c.Type, filter.Type) {
			continue
		}
		if filter.Cluster != "" && !anyContainsFold(c.Clusters, filter.Cluster) {
			continue
		}
		if filter.Program != "" && !anyContainsFold(c.Programs, filter.Program) {
			continue
		}
		if filter.Query != "" && !containsFold(c.Name, filter.Query) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// CollegeDetails looks up one college by exact (case-insensitive) name and
// lists every occupation that names it.
func (s *Store) CollegeDetails(name string) (models.College, []models.CollegeProgram, error) {
	colleges, err := s.Colleges()
	if err != nil {
		return models.College{}, nil, err
	}

	var found *models.College
	for i := range colleges {
		if strings.EqualFold(colleges[i].Name, name) {
			found = &colleges[i]
			break
		}
	}
	if found == nil {
		return models.College{}, nil, errors.NewResourceNotFoundError("college", name)
	}

	tax, err := s.Taxonomy()
	if err != nil {
		return models.College{}, nil, err
	}

	var programs []models.CollegeProgram
	for _, cluster := range tax.Clusters {
		for _, group := range cluster.Groups {
			for _, occ := range group.Occupations {
				if !containsString(occ.JKColleges, found.Name) && !containsString(occ.TopColleges, found.Name) {
					continue
				}
				programs = append(programs, models.CollegeProgram{
					Title:          occ.Title,
					Code:           occ.Code,
					Cluster:        cluster.Name,
					Group:          group.GroupName,
					SkillsRequired: occ.SkillsRequired,
					EducationPath:  occ.EducationPath,
					ExamsRequired:  occ.ExamsRequired,
				})
			}
		}
	}
	return *found, programs, nil
}

func containsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}

func anyContainsFold(list []string, needle string) bool {
	for _, s := range list {
		if containsFold(s, needle) {
			return true
		}
	}
	return false
}

func dedupe(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, s := range list {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
