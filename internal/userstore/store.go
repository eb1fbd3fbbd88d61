// internal/userstore/store.go
package userstore

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"aagaz-backend/internal/common/errors"
	"aagaz-backend/internal/common/logger"
	"aagaz-backend/internal/models"
)

const cacheTTL = 5 * time.Minute

// Store persists quiz results and user preferences in PostgreSQL with a
// Redis read-through cache in front of the read paths. The Redis client is
// optional; a nil client disables caching without changing behavior.
type Store struct {
	db     *sql.DB
	redis  *redis.Client
	logger logger.Logger
}

func NewStore(db *sql.DB, redisClient *redis.Client, log logger.Logger) *Store {
	return &Store{
		db:     db,
		redis:  redisClient,
		logger: log,
	}
}

// SaveQuizResult stores one quiz attempt and returns its id. A missing
// ResultID gets a fresh UUID; a missing Timestamp gets the current time.
func (s *Store) SaveQuizResult(ctx context.Context, record *models.QuizResultRecord) (string, error) {
	if record.ResultID == "" {
		record.ResultID = uuid.New().String()
	}
	if record.Timestamp == "" {
		record.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	answers, err := json.Marshal(record.Answers)
	if err != nil {
		return "", errors.NewInternalError(err)
	}
	recommendations, err := json.Marshal(record.Recommendations)
	if err != nil {
		return "", errors.NewInternalError(err)
	}

	query := `INSERT INTO quiz_results (result_id, user_id, grade, answers, recommendations, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := s.db.ExecContext(ctx, query,
		record.ResultID, record.UserID, record.Grade, answers, recommendations, record.Timestamp,
	); err != nil {
		s.logger.WithError(err).Error("Failed to insert quiz result", map[string]interface{}{
			"userId": record.UserID,
		})
		return "", errors.NewDatabaseInsertFailedError(err)
	}

	s.invalidate(ctx, dashboardKey(record.UserID))
	return record.ResultID, nil
}

// QuizHistory returns a user's saved attempts, newest first. An unknown
// user yields an empty history, not an error.
func (s *Store) QuizHistory(ctx context.Context, userID string) ([]models.QuizResultRecord, error) {
	query := `SELECT result_id, grade, answers, recommendations, created_at
		FROM quiz_results WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("quiz_history", err)
	}
	defer rows.Close()

	history := []models.QuizResultRecord{}
	for rows.Next() {
		var record models.QuizResultRecord
		var answers, recommendations []byte
		if err := rows.Scan(&record.ResultID, &record.Grade, &answers, &recommendations, &record.Timestamp); err != nil {
			return nil, errors.NewQueryExecutionFailedError("quiz_history", err)
		}
		record.UserID = userID
		if err := json.Unmarshal(answers, &record.Answers); err != nil {
			return nil, errors.NewInternalError(err)
		}
		if err := json.Unmarshal(recommendations, &record.Recommendations); err != nil {
			return nil, errors.NewInternalError(err)
		}
		history = append(history, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewQueryExecutionFailedError("quiz_history", err)
	}
	return history, nil
}

// SavePreferences merges the given keys into the user's stored preferences
// and upserts the result. Existing keys not mentioned are kept.
func (s *Store) SavePreferences(ctx context.Context, userID string, prefs models.Preferences) error {
	existing, err := s.readPreferences(ctx, userID)
	if err != nil {
		return err
	}
	for key, value := range prefs {
		existing[key] = value
	}

	data, err := json.Marshal(existing)
	if err != nil {
		return errors.NewInternalError(err)
	}

	query := `INSERT INTO user_preferences (user_id, preferences, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET preferences = $2, updated_at = $3`
	if _, err := s.db.ExecContext(ctx, query, userID, data, time.Now().UTC().Format(time.RFC3339)); err != nil {
		s.logger.WithError(err).Error("Failed to upsert preferences", map[string]interface{}{
			"userId": userID,
		})
		return errors.NewDatabaseInsertFailedError(err)
	}

	s.invalidate(ctx, preferencesKey(userID), dashboardKey(userID))
	return nil
}

// Preferences returns a user's preference bag, empty when nothing is
// stored. Cached for a short TTL.
func (s *Store) Preferences(ctx context.Context, userID string) (models.Preferences, error) {
	key := preferencesKey(userID)
	if cached, ok := s.cacheGet(ctx, key); ok {
		var prefs models.Preferences
		if err := json.Unmarshal(cached, &prefs); err == nil {
			return prefs, nil
		}
	}

	prefs, err := s.readPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, prefs)
	return prefs, nil
}

func (s *Store) readPreferences(ctx context.Context, userID string) (models.Preferences, error) {
	var data []byte
	query := `SELECT preferences FROM user_preferences WHERE user_id = $1`
	err := s.db.QueryRowContext(ctx, query, userID).Scan(&data)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return models.Preferences{}, nil
		}
		return nil, errors.NewQueryExecutionFailedError("preferences", err)
	}

	var prefs models.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, errors.NewInternalError(err)
	}
	return prefs, nil
}

// Dashboard aggregates a user's quiz history and preferences. Cached for a
// short TTL and invalidated on every write.
func (s *Store) Dashboard(ctx context.Context, userID string) (*models.Dashboard, error) {
	key := dashboardKey(userID)
	if cached, ok := s.cacheGet(ctx, key); ok {
		var dashboard models.Dashboard
		if err := json.Unmarshal(cached, &dashboard); err == nil {
			return &dashboard, nil
		}
	}

	history, err := s.QuizHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	prefs, err := s.readPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	dashboard := &models.Dashboard{
		QuizResults:  history,
		Preferences:  prefs,
		TotalQuizzes: len(history),
	}
	if len(history) > 0 {
		dashboard.LastQuizDate = history[0].Timestamp
	}

	s.cacheSet(ctx, key, dashboard)
	return dashboard, nil
}

func preferencesKey(userID string) string { return "prefs:" + userID }
func dashboardKey(userID string) string   { return "dash:" + userID }

func (s *Store) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if s.redis == nil {
		return nil, false
	}
	val, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	return []byte(val), true
}

func (s *Store) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, data, cacheTTL).Err(); err != nil {
		s.logger.WithError(err).Debug("Cache write failed", map[string]interface{}{"key": key})
	}
}

func (s *Store) invalidate(ctx context.Context, keys ...string) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, keys...).Err(); err != nil {
		s.logger.WithError(err).Debug("Cache invalidation failed", map[string]interface{}{})
	}
}
