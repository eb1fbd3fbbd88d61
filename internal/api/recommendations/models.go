// internal/api/recommendations/models.go
package recommendations

import "aagaz-backend/internal/models"

// TrendingResponse is the GET /api/recommendations/trending payload.
type TrendingResponse struct {
	Careers []models.TrendingCareer `json:"careers"`
	Total   int                     `json:"total"`
}
