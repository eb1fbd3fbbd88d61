// internal/models/profile.go
package models

// DefaultRegion is the region code assumed when a profile omits location.
const DefaultRegion = "JK"

// Profile is the free-form input for personalized recommendations. Every
// field is optional; empty lists score zero for their term rather than
// failing.
type Profile struct {
	Interests      []string `json:"interests"`
	Skills         []string `json:"skills"`
	EducationLevel string   `json:"educationLevel"`
	Location       string   `json:"location"`
	CareerGoals    []string `json:"careerGoals"`
}
