// internal/api/colleges/handler_test.go
package colleges

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aagaz-backend/internal/common/config"
	"aagaz-backend/internal/common/logger"
	"aagaz-backend/internal/taxonomy"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestMux(t *testing.T) *http.ServeMux {
	cfg := config.DataConfig{Dir: "../../taxonomy/testdata"}
	log := logger.NewTestLogger(t)
	handler := NewHandler(taxonomy.NewStore(cfg, log), log)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/colleges", handler.GetAll)
	mux.HandleFunc("GET /api/colleges/type/{type}", handler.GetByType)
	mux.HandleFunc("GET /api/colleges/search", handler.Search)
	mux.HandleFunc("GET /api/colleges/{collegeName}", handler.GetDetails)
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
// Listing Tests
// ==========================

func TestHandler_GetAll(t *testing.T) {
	mux := createTestMux(t)

	rec := doGet(t, mux, "/api/colleges")

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]interface{})
	colleges := data["colleges"].([]interface{})
	assert.Equal(t, float64(len(colleges)), data["total"])

	// NIT Srinagar is named by occupations in two clusters but appears once.
	seen := 0
	for _, c := range colleges {
		if c.(map[string]interface{})["name"] == "NIT Srinagar" {
			seen++
		}
	}
	assert.Equal(t, 1, seen)
}

func TestHandler_GetByType(t *testing.T) {
	mux := createTestMux(t)

	rec := doGet(t, mux, "/api/colleges/type/JK")

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "JK", data["type"])
	for _, c := range data["colleges"].([]interface{}) {
		assert.Equal(t, "JK", c.(map[string]interface{})["type"])
	}
}

// ==========================
// Search Tests
// ==========================

func TestHandler_Search(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantNames []string
	}{
		{
			name:      "by name fragment",
			target:    "/api/colleges/search?q=srinagar",
			wantNames: []string{"NIT Srinagar", "GMC Srinagar"},
		},
		{
			name:      "by cluster",
			target:    "/api/colleges/search?cluster=Healthcare&type=JK",
			wantNames: []string{"GMC Srinagar", "NIT Srinagar"},
		},
		{
			name:      "by program",
			target:    "/api/colleges/search?program=doctor",
			wantNames: []string{"GMC Srinagar", "NIT Srinagar", "AIIMS Delhi"},
		},
		{
			name:      "no matches",
			target:    "/api/colleges/search?q=oxford",
			wantNames: []string{},
		},
	}

	mux := createTestMux(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(t, mux, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)
			envelope := decodeEnvelope(t, rec)
			data := envelope["data"].(map[string]interface{})

			var names []string
			for _, c := range data["colleges"].([]interface{}) {
				names = append(names, c.(map[string]interface{})["name"].(string))
			}
			assert.ElementsMatch(t, tt.wantNames, names)
		})
	}
}

// ==========================
// Details Tests
// ==========================

func TestHandler_GetDetails(t *testing.T) {
	mux := createTestMux(t)

	rec := doGet(t, mux, "/api/colleges/NIT%20Srinagar")

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "NIT Srinagar", data["name"])

	programs := data["detailedPrograms"].([]interface{})
	require.Len(t, programs, 2)
	codes := []string{
		programs[0].(map[string]interface{})["code"].(string),
		programs[1].(map[string]interface{})["code"].(string),
	}
	assert.ElementsMatch(t, []string{"CS-001", "MED-001"}, codes)
}

func TestHandler_GetDetails_NotFound(t *testing.T) {
	mux := createTestMux(t)

	rec := doGet(t, mux, "/api/colleges/Hogwarts")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "RESOURCE_NOT_FOUND", envelope["code"])
}
