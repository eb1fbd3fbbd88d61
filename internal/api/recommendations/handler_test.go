// internal/api/recommendations/handler_test.go
package recommendations

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aagaz-backend/internal/common/config"
	"aagaz-backend/internal/common/logger"
	"aagaz-backend/internal/scoring"
	"aagaz-backend/internal/taxonomy"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestMux(t *testing.T) *http.ServeMux {
	cfg := config.DataConfig{Dir: "../../taxonomy/testdata", ProfileTopN: 6, TrendingMax: 8}
	log := logger.NewTestLogger(t)
	store := taxonomy.NewStore(cfg, log)
	engine := scoring.NewEngine(store, cfg, log)
	handler := NewHandler(store, engine, cfg, log)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/recommendations/personalized", handler.Personalized)
	mux.HandleFunc("GET /api/recommendations/trending", handler.Trending)
	return mux
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

// ==========================
// Personalized Endpoint Tests
// ==========================

func TestHandler_Personalized_Success(t *testing.T) {
	mux := createTestMux(t)

	body := `{
		"interests": ["innovation", "coding"],
		"skills": ["Problem Solving"],
		"educationLevel": "12th",
		"location": "JK"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/recommendations/personalized", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]interface{})

	recommendations := data["recommendations"].([]interface{})
	require.NotEmpty(t, recommendations)
	first := recommendations[0].(map[string]interface{})
	assert.Equal(t, "CS-001", first["code"])
	assert.Equal(t, float64(60), first["matchPercentage"])
	assert.NotEmpty(t, first["reasons"])
}

func TestHandler_Personalized_EmptyBody(t *testing.T) {
	mux := createTestMux(t)

	req := httptest.NewRequest(http.MethodPost, "/api/recommendations/personalized", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	// An empty body scores as an empty profile: locality-only matches plus
	// the no-recommendations guidance when nothing clears zero.
	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["success"])
}

func TestHandler_Personalized_MalformedField(t *testing.T) {
	mux := createTestMux(t)

	req := httptest.NewRequest(http.MethodPost, "/api/recommendations/personalized",
		strings.NewReader(`{"interests": "coding"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", envelope["code"])
}

// ==========================
// Trending Endpoint Tests
// ==========================

func TestHandler_Trending(t *testing.T) {
	mux := createTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/recommendations/trending", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]interface{})

	careers := data["careers"].([]interface{})
	require.Len(t, careers, 1)
	first := careers[0].(map[string]interface{})
	assert.Equal(t, "CS-002", first["code"])
	assert.Equal(t, "High demand in current market", first["trendingReason"])
	assert.Equal(t, float64(1), data["total"])
}
