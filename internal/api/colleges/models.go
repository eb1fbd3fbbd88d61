// internal/api/colleges/models.go
package colleges

import "aagaz-backend/internal/models"

// ListResponse is the payload for the list, type and search endpoints.
type ListResponse struct {
	Colleges []models.College `json:"colleges"`
	Total    int              `json:"total"`
	Type     string           `json:"type,omitempty"`
}

// DetailsResponse is the GET /api/colleges/{collegeName} payload: the
// directory entry expanded with every program that names the college.
type DetailsResponse struct {
	models.College
	DetailedPrograms []models.CollegeProgram `json:"detailedPrograms"`
}
