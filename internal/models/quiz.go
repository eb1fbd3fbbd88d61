// internal/models/quiz.go
package models

// Grade identifiers for the three quiz levels. These match the data file
// names (10thq.json etc.) and the values the frontend submits.
const (
	Grade10th = "10thq"
	Grade12th = "12thq"
	GradeUG   = "ugq"
)

// ValidGrades lists every accepted grade identifier.
var ValidGrades = []string{Grade10th, Grade12th, GradeUG}

// IsValidGrade reports whether grade is one of the known quiz levels.
func IsValidGrade(grade string) bool {
	for _, g := range ValidGrades {
		if g == grade {
			return true
		}
	}
	return false
}

// Quiz is one grade-level question set.
type Quiz struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

type Question struct {
	ID      int      `json:"id"`
	Type    string   `json:"type"` // "single-select" or "multi-select"
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Option carries the four signal mapping lists. Any of them may be absent
// in the data files; absent means no signal of that kind.
type Option struct {
	Value               string   `json:"value"`
	MapsToClusters      []string `json:"maps_to_clusters,omitempty"`
	MapsToValues        []string `json:"maps_to_values,omitempty"`
	MapsToSkills        []string `json:"maps_to_skills,omitempty"`
	MapsToExamsRequired []string `json:"maps_to_exams_required,omitempty"`
}

// Answer is one submitted answer: the question it belongs to and the option
// values the user picked (one for single-select, one or more for multi).
type Answer struct {
	QuestionID      int      `json:"questionId"`
	SelectedOptions []string `json:"selectedOptions"`
}
