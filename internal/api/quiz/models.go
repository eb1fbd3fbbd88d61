// internal/api/quiz/models.go
package quiz

import "aagaz-backend/internal/models"

// SubmitRequest is the POST /api/quiz/submit payload. UserInfo is accepted
// for forward compatibility with the frontend but not interpreted here.
type SubmitRequest struct {
	Grade    string                 `json:"grade"`
	Answers  []models.Answer        `json:"answers"`
	UserInfo map[string]interface{} `json:"userInfo,omitempty"`
}

// QuestionsResponse is the GET /api/quiz/{grade} payload.
type QuestionsResponse struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Questions   []models.Question `json:"questions"`
}
