// internal/api/quiz/handler.go
package quiz

import (
	"encoding/json"
	"io"
	"net/http"

	"aagaz-backend/internal/common/errors"
	httputil "aagaz-backend/internal/common/http"
	"aagaz-backend/internal/common/logger"
	"aagaz-backend/internal/models"
	"aagaz-backend/internal/scoring"
	"aagaz-backend/internal/taxonomy"
)

// Handler serves the quiz endpoints: question retrieval by grade and
// answer submission for scoring.
type Handler struct {
	store    *taxonomy.Store
	engine   *scoring.Engine
	logger   logger.Logger
	errorOut *errors.ErrorHandler
}

func NewHandler(store *taxonomy.Store, engine *scoring.Engine, log logger.Logger) *Handler {
	return &Handler{
		store:    store,
		engine:   engine,
		logger:   log,
		errorOut: errors.NewErrorHandler(log),
	}
}

// GetQuestions handles GET /api/quiz/{grade}.
func (h *Handler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	grade := r.PathValue("grade")
	if !models.IsValidGrade(grade) {
		h.errorOut.HandleRequestError(w, r, errors.NewInvalidGradeError(grade))
		return
	}

	quiz, err := h.store.Quiz(grade)
	if err != nil {
		h.errorOut.HandleRequestError(w, r, err)
		return
	}

	httputil.WriteData(w, http.StatusOK, QuestionsResponse{
		Title:       quiz.Title,
		Description: quiz.Description,
		Questions:   quiz.Questions,
	})
}

// Submit handles POST /api/quiz/submit.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.errorOut.HandleRequestError(w, r, errors.NewValidationFailedError("unreadable request body"))
		return
	}
	defer r.Body.Close()

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		h.errorOut.HandleRequestError(w, r, errors.NewValidationFailedError("Invalid request. Grade and answers are required."))
		return
	}
	if ok, msg := validateSubmit(raw); !ok {
		h.errorOut.HandleRequestError(w, r, errors.NewValidationFailedError(msg))
		return
	}

	var req SubmitRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.errorOut.HandleRequestError(w, r, errors.NewValidationFailedError("Invalid request. Grade and answers are required."))
		return
	}

	result, err := h.engine.ScoreQuiz(r.Context(), req.Grade, req.Answers)
	if err != nil {
		h.errorOut.HandleRequestError(w, r, err)
		return
	}

	httputil.WriteData(w, http.StatusOK, result)
}
