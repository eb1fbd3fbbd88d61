// internal/models/taxonomy.go
package models

// Taxonomy is the root of the career dataset: clusters contain groups,
// groups contain occupations. Slice order is load order and is the canonical
// traversal order for ranking tie-breaks, so none of these may be re-sorted.
type Taxonomy struct {
	Clusters []Cluster `json:"clusters"`
}

type Cluster struct {
	Name   string  `json:"name"`
	Groups []Group `json:"groups"`
}

type Group struct {
	GroupName   string       `json:"group_name"`
	Occupations []Occupation `json:"occupations"`
}

// Occupation is one career entry. Code is unique across the whole taxonomy.
type Occupation struct {
	Title              string   `json:"title"`
	Code               string   `json:"code"`
	SkillsRequired     []string `json:"skills_required"`
	Values             []string `json:"values"`
	EducationPath      []string `json:"education_path"`
	ExamsRequired      []string `json:"exams_required"`
	JKColleges         []string `json:"jk_colleges"`
	TopColleges        []string `json:"top_colleges"`
	LocalOpportunities []string `json:"local_opportunities"`
	GovtJobs           []string `json:"govt_jobs"`
}

// Career is an occupation denormalized with its traversal position.
type Career struct {
	Occupation
	Cluster string `json:"cluster"`
	Group   string `json:"group"`
}

// ClusterSummary is the reduced listing served by the clusters endpoint.
type ClusterSummary struct {
	Name   string         `json:"name"`
	Groups []GroupSummary `json:"groups"`
}

type GroupSummary struct {
	Name            string `json:"name"`
	OccupationCount int    `json:"occupationCount"`
}

// College is derived from the jk_colleges/top_colleges fields of all
// occupations that mention it.
type College struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"` // "JK" or "National"
	Programs     []string `json:"programs"`
	Clusters     []string `json:"clusters"`
	ProgramCount int      `json:"programCount"`
}

// CollegeProgram describes one occupation offered through a college.
type CollegeProgram struct {
	Title          string   `json:"title"`
	Code           string   `json:"code"`
	Cluster        string   `json:"cluster"`
	Group          string   `json:"group"`
	SkillsRequired []string `json:"skills_required"`
	EducationPath  []string `json:"education_path"`
	ExamsRequired  []string `json:"exams_required"`
}
