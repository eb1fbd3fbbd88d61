// internal/api/user/handler.go
package user

import (
	"encoding/json"
	"io"
	"net/http"

	"aagaz-backend/internal/common/errors"
	httputil "aagaz-backend/internal/common/http"
	"aagaz-backend/internal/common/logger"
	"aagaz-backend/internal/common/validation"
	"aagaz-backend/internal/models"
	"aagaz-backend/internal/userstore"
)

// Handler serves the per-user persistence endpoints: quiz results,
// preferences and the dashboard aggregate.
type Handler struct {
	store    *userstore.Store
	logger   logger.Logger
	errorOut *errors.ErrorHandler
}

func NewHandler(store *userstore.Store, log logger.Logger) *Handler {
	return &Handler{
		store:    store,
		logger:   log,
		errorOut: errors.NewErrorHandler(log),
	}
}

// SaveQuizResult handles POST /api/user/quiz-results.
func (h *Handler) SaveQuizResult(w http.ResponseWriter, r *http.Request) {
	var req SaveQuizResultRequest
	if !h.decodeAndValidate(w, r, &req, saveResultSchema, "User ID, grade, and answers are required") {
		return
	}

	record := &models.QuizResultRecord{
		UserID:          req.UserID,
		Grade:           req.Grade,
		Answers:         req.Answers,
		Recommendations: req.Recommendations,
		Timestamp:       req.Timestamp,
	}
	resultID, err := h.store.SaveQuizResult(r.Context(), record)
	if err != nil {
		h.errorOut.HandleRequestError(w, r, err)
		return
	}

	httputil.WriteData(w, http.StatusOK, SaveQuizResultResponse{
		ResultID:  resultID,
		Timestamp: record.Timestamp,
	})
}

// GetQuizHistory handles GET /api/user/{userId}/quiz-history.
func (h *Handler) GetQuizHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.store.QuizHistory(r.Context(), r.PathValue("userId"))
	if err != nil {
		h.errorOut.HandleRequestError(w, r, err)
		return
	}
	httputil.WriteData(w, http.StatusOK, HistoryResponse{
		QuizResults: history,
		Total:       len(history),
	})
}

// SavePreferences handles POST /api/user/preferences.
func (h *Handler) SavePreferences(w http.ResponseWriter, r *http.Request) {
	var req SavePreferencesRequest
	if !h.decodeAndValidate(w, r, &req, savePreferencesSchema, "User ID and preferences are required") {
		return
	}

	if err := h.store.SavePreferences(r.Context(), req.UserID, req.Preferences); err != nil {
		h.errorOut.HandleRequestError(w, r, err)
		return
	}

	prefs, err := h.store.Preferences(r.Context(), req.UserID)
	if err != nil {
		h.errorOut.HandleRequestError(w, r, err)
		return
	}
	httputil.WriteData(w, http.StatusOK, prefs)
}

// GetPreferences handles GET /api/user/{userId}/preferences.
func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.store.Preferences(r.Context(), r.PathValue("userId"))
	if err != nil {
		h.errorOut.HandleRequestError(w, r, err)
		return
	}
	httputil.WriteData(w, http.StatusOK, PreferencesResponse{Preferences: prefs})
}

// GetDashboard handles GET /api/user/{userId}/dashboard.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.store.Dashboard(r.Context(), r.PathValue("userId"))
	if err != nil {
		h.errorOut.HandleRequestError(w, r, err)
		return
	}
	httputil.WriteData(w, http.StatusOK, dashboard)
}

// decodeAndValidate reads the body, checks it against the schema and
// unmarshals into dst. It writes the error response itself and reports
// whether the handler should continue.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}, schema validation.JSONSchema, requiredMsg string) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.errorOut.HandleRequestError(w, r, errors.NewValidationFailedError("unreadable request body"))
		return false
	}
	defer r.Body.Close()

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		h.errorOut.HandleRequestError(w, r, errors.NewValidationFailedError(requiredMsg))
		return false
	}
	if ok, msg := validatePayload(raw, schema); !ok {
		h.errorOut.HandleRequestError(w, r, errors.NewValidationFailedError(msg))
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		h.errorOut.HandleRequestError(w, r, errors.NewValidationFailedError(requiredMsg))
		return false
	}
	return true
}
