// internal/api/careers/handler.go
package careers

import (
	"net/http"
	"strings"

	"aagaz-backend/internal/common/errors"
	httputil "aagaz-backend/internal/common/http"
	"aagaz-backend/internal/common/logger"
	"aagaz-backend/internal/search"
	"aagaz-backend/internal/taxonomy"
)

// Handler serves the career taxonomy endpoints.
type Handler struct {
	store    *taxonomy.Store
	searcher *search.Searcher
	logger   logger.Logger
	errorOut *errors.ErrorHandler
}

func NewHandler(store *taxonomy.Store, searcher *search.Searcher, log logger.Logger) *Handler {
	return &Handler{
		store:    store,
		searcher: searcher,
		logger:   log,
		errorOut: errors.NewErrorHandler(log),
	}
}

// GetClusters handles GET /api/careers/clusters.
func (h *Handler) GetClusters(w http.ResponseWriter, r *http.Request) {
	clusters, err := h.store.Clusters()
	if err != nil {
		h.errorOut.HandleRequestError(w, r, err)
		return
	}
	httputil.WriteData(w, http.StatusOK, clusters)
}

// GetByCluster handles GET /api/careers/cluster/{clusterName}.
func (h *Handler) GetByCluster(w http.ResponseWriter, r *http.Request) {
	name, careers, err := h.store.CareersByCluster(r.PathValue("clusterName"))
	if err != nil {
		h.errorOut.HandleRequestError(w, r, err)
		return
	}
	httputil.WriteData(w, http.StatusOK, ClusterCareersResponse{
		Cluster: name,
		Careers: careers,
	})
}

// GetByCode handles GET /api/careers/{careerCode}.
func (h *Handler) GetByCode(w http.ResponseWriter, r *http.Request) {
	career, err := h.store.CareerByCode(r.PathValue("careerCode"))
	if err != nil {
		h.errorOut.HandleRequestError(w, r, err)
		return
	}
	httputil.WriteData(w, http.StatusOK, career)
}

// Search handles GET /api/careers/search with q, cluster, group and skills
// query parameters. skills is a comma-separated list.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := taxonomy.SearchFilter{
		Query:   query.Get("q"),
		Cluster: query.Get("cluster"),
		Group:   query.Get("group"),
	}
	if skills := query.Get("skills"); skills != "" {
		for _, skill := range strings.Split(skills, ",") {
			if trimmed := strings.TrimSpace(skill); trimmed != "" {
				filter.Skills = append(filter.Skills, trimmed)
			}
		}
	}

	careers, err := h.searcher.SearchCareers(r.Context(), filter)
	if err != nil {
		h.errorOut.HandleRequestError(w, r, err)
		return
	}
	httputil.WriteData(w, http.StatusOK, SearchResponse{
		Careers: careers,
		Total:   len(careers),
	})
}
