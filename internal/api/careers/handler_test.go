// internal/api/careers/handler_test.go
package careers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aagaz-backend/internal/common/config"
	"aagaz-backend/internal/common/logger"
	"aagaz-backend/internal/search"
	"aagaz-backend/internal/taxonomy"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestMux(t *testing.T) *http.ServeMux {
	cfg := config.DataConfig{Dir: "../../taxonomy/testdata"}
	log := logger.NewTestLogger(t)
	store := taxonomy.NewStore(cfg, log)
	searcher := search.NewSearcher(nil, store, log)
	handler := NewHandler(store, searcher, log)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/careers/clusters", handler.GetClusters)
	mux.HandleFunc("GET /api/careers/cluster/{clusterName}", handler.GetByCluster)
	mux.HandleFunc("GET /api/careers/search", handler.Search)
	mux.HandleFunc("GET /api/careers/{careerCode}", handler.GetByCode)
	return mux
}

func doGet(t *testing.T, mux *http.ServeMux, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

// ==========================
// Cluster Endpoint Tests
// ==========================

func TestHandler_GetClusters(t *testing.T) {
	mux := createTestMux(t)

	rec := doGet(t, mux, "/api/careers/clusters")

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	clusters := envelope["data"].([]interface{})
	require.Len(t, clusters, 2)
	first := clusters[0].(map[string]interface{})
	assert.Equal(t, "Engineering & Technology", first["name"])
	groups := first["groups"].([]interface{})
	require.Len(t, groups, 1)
	assert.Equal(t, float64(2), groups[0].(map[string]interface{})["occupationCount"])
}

func TestHandler_GetByCluster(t *testing.T) {
	mux := createTestMux(t)

	rec := doGet(t, mux, "/api/careers/cluster/healthcare")

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "Healthcare", data["cluster"])
	assert.Len(t, data["careers"], 1)
}

func TestHandler_GetByCluster_NotFound(t *testing.T) {
	mux := createTestMux(t)

	rec := doGet(t, mux, "/api/careers/cluster/Astrology")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "RESOURCE_NOT_FOUND", envelope["code"])
}

// ==========================
// Career Lookup Tests
// ==========================

func TestHandler_GetByCode(t *testing.T) {
	mux := createTestMux(t)

	rec := doGet(t, mux, "/api/careers/CS-001")

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "Software Engineer", data["title"])
	assert.Equal(t, "Engineering & Technology", data["cluster"])
}

func TestHandler_GetByCode_NotFound(t *testing.T) {
	mux := createTestMux(t)

	rec := doGet(t, mux, "/api/careers/ZZ-999")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ==========================
// Search Endpoint Tests
// ==========================

func TestHandler_Search_ByQuery(t *testing.T) {
	mux := createTestMux(t)

	rec := doGet(t, mux, "/api/careers/search?q=software")

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total"])
	careers := data["careers"].([]interface{})
	assert.Equal(t, "CS-001", careers[0].(map[string]interface{})["code"])
}

func TestHandler_Search_CombinedFilters(t *testing.T) {
	mux := createTestMux(t)

	rec := doGet(t, mux, "/api/careers/search?cluster=Engineering+%26+Technology&skills=Statistics")

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]interface{})
	careers := data["careers"].([]interface{})
	require.Len(t, careers, 1)
	assert.Equal(t, "CS-002", careers[0].(map[string]interface{})["code"])
}

func TestHandler_Search_NoMatches(t *testing.T) {
	mux := createTestMux(t)

	rec := doGet(t, mux, "/api/careers/search?q=spelunking")

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["total"])
}
