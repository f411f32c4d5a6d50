package store

import (
	"database/sql"
	"fmt"
)

func Migrate(db *sql.DB) error {
	schema := []string{
		// models: one row per trained model
		`CREATE TABLE IF NOT EXISTS models (
			name       TEXT PRIMARY KEY,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`,
		// probabilities: both tables of every model, kind is 'transition' or 'emission'
		`CREATE TABLE IF NOT EXISTS probabilities (
			model   TEXT NOT NULL,
			kind    TEXT NOT NULL,
			src     TEXT NOT NULL,
			dst     TEXT NOT NULL,
			logprob REAL NOT NULL,
			PRIMARY KEY (model, kind, src, dst)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_probabilities_model ON probabilities(model, kind);`,
		// meta: latest processed mtime of training corpora
		`CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			path  TEXT NOT NULL,
			mtime INTEGER NOT NULL
		);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration statement: %w", err)
		}
	}

	return nil
}
