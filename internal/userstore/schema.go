// internal/userstore/schema.go
package userstore

import (
	"context"
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS quiz_results (
		result_id       TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL,
		grade           TEXT NOT NULL,
		answers         JSONB NOT NULL,
		recommendations JSONB NOT NULL,
		created_at      TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_quiz_results_user ON quiz_results (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS user_preferences (
		user_id     TEXT PRIMARY KEY,
		preferences JSONB NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
}

// EnsureSchema creates the store's tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
