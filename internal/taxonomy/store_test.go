// internal/taxonomy/store_test.go
package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"aagaz-backend/internal/common/config"
	"aagaz-backend/internal/common/errors"
	"aagaz-backend/internal/common/logger"
	"aagaz-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestStore(t *testing.T) *Store {
	return NewStore(config.DataConfig{Dir: "testdata"}, logger.NewTestLogger(t))
}

// copyTestdata clones the testdata directory so a test can corrupt files
// without touching the shared fixtures.
func copyTestdata(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	entries, err := os.ReadDir("testdata")
	require.NoError(t, err)
	for _, entry := range entries {
		data, err := os.ReadFile(filepath.Join("testdata", entry.Name()))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, entry.Name()), data, 0644))
	}
	return dir
}

// ==========================
// Loading Tests
// ==========================

func TestStore_Load_Success(t *testing.T) {
	store := createTestStore(t)

	require.NoError(t, store.Load())

	tax, err := store.Taxonomy()
	require.NoError(t, err)
	assert.Len(t, tax.Clusters, 2)

	for _, grade := range models.ValidGrades {
		quiz, err := store.Quiz(grade)
		require.NoError(t, err)
		assert.NotEmpty(t, quiz.Questions)
	}
}

func TestStore_Load_MissingDirectory(t *testing.T) {
	store := NewStore(config.DataConfig{Dir: "no-such-dir"}, logger.NewTestLogger(t))

	err := store.Load()

	require.Error(t, err)
	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeDataUnavailable, stdErr.Code)
}

func TestStore_Load_SchemaValidationRejectsMalformedFile(t *testing.T) {
	dir := copyTestdata(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "taxonomy.json"), []byte(`{"clusters": [{"groups": []}]}`), 0644))

	store := NewStore(config.DataConfig{Dir: dir}, logger.NewTestLogger(t))
	err := store.Load()

	require.Error(t, err)
	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeDataUnavailable, stdErr.Code)
}

func TestStore_Load_SkipValidateAcceptsLooseFile(t *testing.T) {
	dir := copyTestdata(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "taxonomy.json"), []byte(`{"clusters": [{"groups": []}]}`), 0644))

	store := NewStore(config.DataConfig{Dir: dir, SkipValidate: true}, logger.NewTestLogger(t))
	assert.NoError(t, store.Load())
}

func TestStore_LazyLoadOnFirstAccess(t *testing.T) {
	store := createTestStore(t)

	careers, err := store.Careers()

	require.NoError(t, err)
	assert.Len(t, careers, 3)
}

// ==========================
// Lookup Tests
// ==========================

func TestStore_Careers_TraversalOrder(t *testing.T) {
	store := createTestStore(t)

	careers, err := store.Careers()
	require.NoError(t, err)

	codes := make([]string, len(careers))
	for i, c := range careers {
		codes[i] = c.Code
	}
	assert.Equal(t, []string{"CS-001", "CS-002", "MED-001"}, codes)
	assert.Equal(t, "Engineering & Technology", careers[0].Cluster)
	assert.Equal(t, "Software", careers[0].Group)
}

func TestStore_CareerByCode(t *testing.T) {
	store := createTestStore(t)

	career, err := store.CareerByCode("MED-001")
	require.NoError(t, err)
	assert.Equal(t, "Doctor", career.Title)
	assert.Equal(t, "Healthcare", career.Cluster)

	_, err = store.CareerByCode("XX-999")
	require.Error(t, err)
	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeResourceNotFound, stdErr.Code)
}

func TestStore_Clusters_Summary(t *testing.T) {
	store := createTestStore(t)

	clusters, err := store.Clusters()
	require.NoError(t, err)

	require.Len(t, clusters, 2)
	assert.Equal(t, "Engineering & Technology", clusters[0].Name)
	require.Len(t, clusters[0].Groups, 1)
	assert.Equal(t, "Software", clusters[0].Groups[0].Name)
	assert.Equal(t, 2, clusters[0].Groups[0].OccupationCount)
}

func TestStore_CareersByCluster(t *testing.T) {
	store := createTestStore(t)

	name, careers, err := store.CareersByCluster("healthcare")
	require.NoError(t, err)
	assert.Equal(t, "Healthcare", name)
	require.Len(t, careers, 1)
	assert.Equal(t, "MED-001", careers[0].Code)

	_, _, err = store.CareersByCluster("Unknown Cluster")
	require.Error(t, err)
}

func TestStore_SearchCareers(t *testing.T) {
	tests := []struct {
		name      string
		filter    SearchFilter
		wantCodes []string
	}{
		{
			name:      "query matches title",
			filter:    SearchFilter{Query: "engineer"},
			wantCodes: []string{"CS-001"},
		},
		{
			name:      "query matches skills",
			filter:    SearchFilter{Query: "biology"},
			wantCodes: []string{"MED-001"},
		},
		{
			name:      "cluster filter is substring",
			filter:    SearchFilter{Cluster: "technology"},
			wantCodes: []string{"CS-001", "CS-002"},
		},
		{
			name:      "group and skills filters combine",
			filter:    SearchFilter{Group: "software", Skills: []string{"statistics"}},
			wantCodes: []string{"CS-002"},
		},
		{
			name:      "no match yields empty list",
			filter:    SearchFilter{Query: "astronaut"},
			wantCodes: []string{},
		},
	}

	store := createTestStore(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			careers, err := store.SearchCareers(tt.filter)
			require.NoError(t, err)
			codes := make([]string, 0, len(careers))
			for _, c := range careers {
				codes = append(codes, c.Code)
			}
			assert.Equal(t, tt.wantCodes, codes)
		})
	}
}

// ==========================
// College Derivation Tests
// ==========================

func TestStore_Colleges_DerivedDirectory(t *testing.T) {
	store := createTestStore(t)

	colleges, err := store.Colleges()
	require.NoError(t, err)

	byName := make(map[string]models.College)
	for _, c := range colleges {
		byName[c.Name] = c
	}

	nit := byName["NIT Srinagar"]
	assert.Equal(t, CollegeTypeJK, nit.Type)
	assert.ElementsMatch(t, []string{"Software Engineer", "Doctor"}, nit.Programs)
	assert.ElementsMatch(t, []string{"Engineering & Technology", "Healthcare"}, nit.Clusters)
	assert.Equal(t, 2, nit.ProgramCount)

	iit := byName["IIT Delhi"]
	assert.Equal(t, CollegeTypeNational, iit.Type)
	assert.Equal(t, 2, iit.ProgramCount)
}

func TestStore_Colleges_DeterministicOrder(t *testing.T) {
	store := createTestStore(t)

	first, err := store.Colleges()
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := store.Colleges()
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestStore_CollegesByType(t *testing.T) {
	store := createTestStore(t)

	jk, err := store.CollegesByType("jk")
	require.NoError(t, err)
	for _, c := range jk {
		assert.Equal(t, CollegeTypeJK, c.Type)
	}
	assert.NotEmpty(t, jk)
}

func TestStore_SearchColleges(t *testing.T) {
	store := createTestStore(t)

	colleges, err := store.SearchColleges(CollegeFilter{Query: "srinagar", Type: "JK"})
	require.NoError(t, err)
	require.Len(t, colleges, 2)

	colleges, err = store.SearchColleges(CollegeFilter{Program: "doctor"})
	require.NoError(t, err)
	require.Len(t, colleges, 3)
}

func TestStore_CollegeDetails(t *testing.T) {
	store := createTestStore(t)

	college, programs, err := store.CollegeDetails("nit srinagar")
	require.NoError(t, err)
	assert.Equal(t, "NIT Srinagar", college.Name)
	require.Len(t, programs, 2)
	assert.Equal(t, "CS-001", programs[0].Code)
	assert.Equal(t, "MED-001", programs[1].Code)

	_, _, err = store.CollegeDetails("Nowhere University")
	require.Error(t, err)
}

// ==========================
// Trending Tests
// ==========================

func TestStore_TrendingCareers(t *testing.T) {
	store := createTestStore(t)

	trending, total, err := store.TrendingCareers(8)
	require.NoError(t, err)

	// Data Scientist matches on both title and skills but appears once.
	assert.Equal(t, 1, total)
	require.Len(t, trending, 1)
	assert.Equal(t, "CS-002", trending[0].Code)
	assert.Equal(t, "High demand in current market", trending[0].TrendingReason)
}

func TestStore_TrendingCareers_Truncation(t *testing.T) {
	store := createTestStore(t)

	trending, total, err := store.TrendingCareers(0)
	require.NoError(t, err)
	assert.Equal(t, total, len(trending))
}
