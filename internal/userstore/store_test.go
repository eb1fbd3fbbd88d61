// internal/userstore/store_test.go
package userstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aagaz-backend/internal/common/logger"
	"aagaz-backend/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestStore(t *testing.T) (*Store, sqlmock.Sqlmock, *miniredis.Miniredis) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return NewStore(db, client, logger.NewTestLogger(t)), mock, mr
}

func createUncachedStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db, nil, logger.NewTestLogger(t)), mock
}

func historyRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"result_id", "grade", "answers", "recommendations", "created_at"}).
		AddRow("res-2", models.Grade12th, `[{"questionId":1,"selectedOptions":["A"]}]`, `[]`, "2026-08-02T10:00:00Z").
		AddRow("res-1", models.Grade10th, `[]`, `[{"title":"Doctor","code":"MED-001","matchScore":5}]`, "2026-08-01T10:00:00Z")
}

// ==========================
// Quiz Result Tests
// ==========================

func TestStore_SaveQuizResult_AssignsIDAndTimestamp(t *testing.T) {
	store, mock := createUncachedStore(t)
	mock.ExpectExec("INSERT INTO quiz_results").
		WillReturnResult(sqlmock.NewResult(0, 1))

	record := &models.QuizResultRecord{
		UserID: "user-123",
		Grade:  models.Grade12th,
		Answers: []models.Answer{
			{QuestionID: 1, SelectedOptions: []string{"Building software"}},
		},
	}
	id, err := store.SaveQuizResult(context.Background(), record)

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, record.ResultID)
	assert.NotEmpty(t, record.Timestamp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SaveQuizResult_InvalidatesDashboardCache(t *testing.T) {
	store, mock, mr := createTestStore(t)
	require.NoError(t, mr.Set("dash:user-123", "stale"))
	mock.ExpectExec("INSERT INTO quiz_results").
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := store.SaveQuizResult(context.Background(), &models.QuizResultRecord{
		UserID: "user-123",
		Grade:  models.GradeUG,
	})

	require.NoError(t, err)
	assert.False(t, mr.Exists("dash:user-123"))
}

func TestStore_SaveQuizResult_CacheFailureIsNonFatal(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	redisClient, redisMock := redismock.NewClientMock()
	redisMock.ExpectDel("dash:user-123").SetErr(assert.AnError)
	mock.ExpectExec("INSERT INTO quiz_results").
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewStore(db, redisClient, logger.NewTestLogger(t))
	_, err = store.SaveQuizResult(context.Background(), &models.QuizResultRecord{UserID: "user-123"})

	require.NoError(t, err)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestStore_SaveQuizResult_InsertFailure(t *testing.T) {
	store, mock := createUncachedStore(t)
	mock.ExpectExec("INSERT INTO quiz_results").
		WillReturnError(sql.ErrConnDone)

	_, err := store.SaveQuizResult(context.Background(), &models.QuizResultRecord{UserID: "user-123"})

	require.Error(t, err)
}

func TestStore_QuizHistory(t *testing.T) {
	store, mock := createUncachedStore(t)
	mock.ExpectQuery("SELECT result_id, grade, answers, recommendations, created_at").
		WithArgs("user-123").
		WillReturnRows(historyRows())

	history, err := store.QuizHistory(context.Background(), "user-123")

	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "res-2", history[0].ResultID)
	assert.Equal(t, "user-123", history[0].UserID)
	require.Len(t, history[0].Answers, 1)
	assert.Equal(t, "MED-001", history[1].Recommendations[0].Code)
}

func TestStore_QuizHistory_UnknownUserIsEmpty(t *testing.T) {
	store, mock := createUncachedStore(t)
	mock.ExpectQuery("SELECT result_id, grade, answers, recommendations, created_at").
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"result_id", "grade", "answers", "recommendations", "created_at"}))

	history, err := store.QuizHistory(context.Background(), "nobody")

	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

// ==========================
// Preferences Tests
// ==========================

func TestStore_SavePreferences_MergesExistingKeys(t *testing.T) {
	store, mock := createUncachedStore(t)
	mock.ExpectQuery("SELECT preferences FROM user_preferences").
		WithArgs("user-123").
		WillReturnRows(sqlmock.NewRows([]string{"preferences"}).AddRow(`{"theme":"dark","lang":"en"}`))
	mock.ExpectExec("INSERT INTO user_preferences").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.SavePreferences(context.Background(), "user-123", models.Preferences{"theme": "light"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Preferences_MissingRowIsEmpty(t *testing.T) {
	store, mock := createUncachedStore(t)
	mock.ExpectQuery("SELECT preferences FROM user_preferences").
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	prefs, err := store.Preferences(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Empty(t, prefs)
}

func TestStore_Preferences_CacheHitSkipsDatabase(t *testing.T) {
	store, _, mr := createTestStore(t)
	cached, _ := json.Marshal(models.Preferences{"theme": "dark"})
	require.NoError(t, mr.Set("prefs:user-123", string(cached)))

	prefs, err := store.Preferences(context.Background(), "user-123")

	require.NoError(t, err)
	assert.Equal(t, "dark", prefs["theme"])
}

func TestStore_Preferences_CacheMissPopulatesCache(t *testing.T) {
	store, mock, mr := createTestStore(t)
	mock.ExpectQuery("SELECT preferences FROM user_preferences").
		WithArgs("user-123").
		WillReturnRows(sqlmock.NewRows([]string{"preferences"}).AddRow(`{"theme":"dark"}`))

	prefs, err := store.Preferences(context.Background(), "user-123")

	require.NoError(t, err)
	assert.Equal(t, "dark", prefs["theme"])
	assert.True(t, mr.Exists("prefs:user-123"))
}

// ==========================
// Dashboard Tests
// ==========================

func TestStore_Dashboard_Composition(t *testing.T) {
	store, mock, mr := createTestStore(t)
	mock.ExpectQuery("SELECT result_id, grade, answers, recommendations, created_at").
		WithArgs("user-123").
		WillReturnRows(historyRows())
	mock.ExpectQuery("SELECT preferences FROM user_preferences").
		WithArgs("user-123").
		WillReturnRows(sqlmock.NewRows([]string{"preferences"}).AddRow(`{"theme":"dark"}`))

	dashboard, err := store.Dashboard(context.Background(), "user-123")

	require.NoError(t, err)
	assert.Equal(t, 2, dashboard.TotalQuizzes)
	assert.Equal(t, "2026-08-02T10:00:00Z", dashboard.LastQuizDate)
	assert.Equal(t, "dark", dashboard.Preferences["theme"])
	assert.True(t, mr.Exists("dash:user-123"))
}

func TestStore_Dashboard_EmptyUser(t *testing.T) {
	store, mock := createUncachedStore(t)
	mock.ExpectQuery("SELECT result_id, grade, answers, recommendations, created_at").
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"result_id", "grade", "answers", "recommendations", "created_at"}))
	mock.ExpectQuery("SELECT preferences FROM user_preferences").
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	dashboard, err := store.Dashboard(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Zero(t, dashboard.TotalQuizzes)
	assert.Empty(t, dashboard.LastQuizDate)
}
