// internal/api/colleges/handler.go
package colleges

import (
	"net/http"

	"aagaz-backend/internal/common/errors"
	httputil "aagaz-backend/internal/common/http"
	"aagaz-backend/internal/common/logger"
	"aagaz-backend/internal/taxonomy"
)

// Handler serves the college directory derived from the taxonomy.
type Handler struct {
	store    *taxonomy.Store
	logger   logger.Logger
	errorOut *errors.ErrorHandler
}

func NewHandler(store *taxonomy.Store, log logger.Logger) *Handler {
	return &Handler{
		store:    store,
		logger:   log,
		errorOut: errors.NewErrorHandler(log),
	}
}

// GetAll handles GET /api/colleges.
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	colleges, err := h.store.Colleges()
	if err != nil {
		h.errorOut.HandleRequestError(w, r, err)
		return
	}
	httputil.WriteData(w, http.StatusOK, ListResponse{
		Colleges: colleges,
		Total:    len(colleges),
	})
}

// GetByType handles GET /api/colleges/type/{type}.
func (h *Handler) GetByType(w http.ResponseWriter, r *http.Request) {
	typ := r.PathValue("type")
	colleges, err := h.store.CollegesByType(typ)
	if err != nil {
		h.errorOut.HandleRequestError(w, r, err)
		return
	}
	httputil.WriteData(w, http.StatusOK, ListResponse{
		Colleges: colleges,
		Total:    len(colleges),
		Type:     typ,
	})
}

// Search handles GET /api/colleges/search with q, type, cluster and
// program query parameters.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	colleges, err := h.store.SearchColleges(taxonomy.CollegeFilter{
		Query:   query.Get("q"),
		Type:    query.Get("type"),
		Cluster: query.Get("cluster"),
		Program: query.Get("program"),
	})
	if err != nil {
		h.errorOut.HandleRequestError(w, r, err)
		return
	}
	httputil.WriteData(w, http.StatusOK, ListResponse{
		Colleges: colleges,
		Total:    len(colleges),
	})
}

// GetDetails handles GET /api/colleges/{collegeName}.
func (h *Handler) GetDetails(w http.ResponseWriter, r *http.Request) {
	college, programs, err := h.store.CollegeDetails(r.PathValue("collegeName"))
	if err != nil {
		h.errorOut.HandleRequestError(w, r, err)
		return
	}
	httputil.WriteData(w, http.StatusOK, DetailsResponse{
		College:          college,
		DetailedPrograms: programs,
	})
}
