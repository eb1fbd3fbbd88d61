// internal/api/user/models.go
package user

import "aagaz-backend/internal/models"

// SaveQuizResultRequest is the POST /api/user/quiz-results payload.
type SaveQuizResultRequest struct {
	UserID          string                      `json:"userId"`
	Grade           string                      `json:"grade"`
	Answers         []models.Answer             `json:"answers"`
	Recommendations []models.QuizRecommendation `json:"recommendations"`
	Timestamp       string                      `json:"timestamp,omitempty"`
}

// SaveQuizResultResponse carries the stored result's id and timestamp.
type SaveQuizResultResponse struct {
	ResultID  string `json:"resultId"`
	Timestamp string `json:"timestamp"`
}

// SavePreferencesRequest is the POST /api/user/preferences payload.
type SavePreferencesRequest struct {
	UserID      string             `json:"userId"`
	Preferences models.Preferences `json:"preferences"`
}

// HistoryResponse is the GET /api/user/{userId}/quiz-history payload.
type HistoryResponse struct {
	QuizResults []models.QuizResultRecord `json:"quizResults"`
	Total       int                       `json:"total"`
}

// PreferencesResponse is the GET /api/user/{userId}/preferences payload.
type PreferencesResponse struct {
	Preferences models.Preferences `json:"preferences"`
}
