// internal/models/user.go
package models

// QuizResultRecord is one saved quiz attempt.
type QuizResultRecord struct {
	ResultID        string               `json:"resultId"`
	UserID          string               `json:"userId"`
	Grade           string               `json:"grade"`
	Answers         []Answer             `json:"answers"`
	Recommendations []QuizRecommendation `json:"recommendations"`
	Timestamp       string               `json:"timestamp"` // RFC 3339
}

// Preferences is an open key/value bag of user settings; merged on save.
type Preferences map[string]interface{}

// Dashboard aggregates a user's stored activity.
type Dashboard struct {
	QuizResults  []QuizResultRecord `json:"quizResults"`
	Preferences  Preferences        `json:"preferences"`
	TotalQuizzes int                `json:"totalQuizzes"`
	LastQuizDate string             `json:"lastQuizDate,omitempty"`
}
