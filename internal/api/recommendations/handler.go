// internal/api/recommendations/handler.go
package recommendations

import (
	"encoding/json"
	"io"
	"net/http"

	"aagaz-backend/internal/common/config"
	"aagaz-backend/internal/common/errors"
	httputil "aagaz-backend/internal/common/http"
	"aagaz-backend/internal/common/logger"
	"aagaz-backend/internal/models"
	"aagaz-backend/internal/scoring"
	"aagaz-backend/internal/taxonomy"
)

// Handler serves personalized and trending recommendations.
type Handler struct {
	store       *taxonomy.Store
	engine      *scoring.Engine
	trendingMax int
	logger      logger.Logger
	errorOut    *errors.ErrorHandler
}

func NewHandler(store *taxonomy.Store, engine *scoring.Engine, cfg config.DataConfig, log logger.Logger) *Handler {
	return &Handler{
		store:       store,
		engine:      engine,
		trendingMax: cfg.TrendingMax,
		logger:      log,
		errorOut:    errors.NewErrorHandler(log),
	}
}

// Personalized handles POST /api/recommendations/personalized.
func (h *Handler) Personalized(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.errorOut.HandleRequestError(w, r, errors.NewValidationFailedError("unreadable request body"))
		return
	}
	defer r.Body.Close()

	// An empty body is a valid empty profile.
	profile := models.Profile{}
	if len(body) > 0 {
		var raw map[string]interface{}
		if err := json.Unmarshal(body, &raw); err != nil {
			h.errorOut.HandleRequestError(w, r, errors.NewValidationFailedError("request body must be a JSON object"))
			return
		}
		if ok, msg := validateProfile(raw); !ok {
			h.errorOut.HandleRequestError(w, r, errors.NewValidationFailedError(msg))
			return
		}
		if err := json.Unmarshal(body, &profile); err != nil {
			h.errorOut.HandleRequestError(w, r, errors.NewValidationFailedError("request body must be a JSON object"))
			return
		}
	}

	result, err := h.engine.ScoreProfile(r.Context(), profile)
	if err != nil {
		h.errorOut.HandleRequestError(w, r, err)
		return
	}
	httputil.WriteData(w, http.StatusOK, result)
}

// Trending handles GET /api/recommendations/trending.
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	careers, total, err := h.store.TrendingCareers(h.trendingMax)
	if err != nil {
		h.errorOut.HandleRequestError(w, r, err)
		return
	}
	httputil.WriteData(w, http.StatusOK, TrendingResponse{
		Careers: careers,
		Total:   total,
	})
}
