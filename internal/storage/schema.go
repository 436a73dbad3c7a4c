package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			style_dna TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			mbti TEXT,

			questions TEXT,
			answers TEXT,
			scores TEXT,
			behavior TEXT,
			axis_result TEXT,
			pet_model TEXT,

			FOREIGN KEY(user_id) REFERENCES users(id)
		);`,
		`CREATE TABLE IF NOT EXISTS avatars (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			version TEXT NOT NULL,
			user_id TEXT NOT NULL,
			mbti TEXT NOT NULL,
			answers_signature TEXT NOT NULL,
			session_id TEXT,
			config TEXT NOT NULL,
			svg TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_user_id_created_at ON sessions(user_id, created_at);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_avatars_identity ON avatars(version, user_id, mbti, answers_signature);`,
	}

	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		for _, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Columns added after the first release (ignore if already exists).
	alterStmts := []string{
		`ALTER TABLE sessions ADD COLUMN axis_result TEXT;`,
		`ALTER TABLE sessions ADD COLUMN pet_model TEXT;`,
		`ALTER TABLE avatars ADD COLUMN session_id TEXT;`,
	}
	for _, stmt := range alterStmts {
		_, err := db.ExecContext(ctx, stmt)
		if err != nil && !strings.Contains(err.Error(), "duplicate column") {
			return fmt.Errorf("migrate alter: %w", err)
		}
	}

	return nil
}
