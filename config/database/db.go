package database

import (
	"context"
	"fmt"
	"time"

	"notesapp/pkg/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	full_name     TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS notes (
	id         UUID PRIMARY KEY,
	owner_id   UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	title      TEXT NOT NULL,
	content    TEXT NOT NULL,
	tags       TEXT[] NOT NULL DEFAULT '{}',
	is_pinned  BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS notes_owner_pinned_idx ON notes (owner_id, is_pinned DESC, created_at DESC);
`

// Connect opens the Postgres pool and pings it, retrying a few times in case
// the database is still starting.
func Connect(url string, attempts int, backoff time.Duration) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if attempts < 1 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		if err = db.Ping(); err == nil {
			logger.Sugar.Info("Successfully connected to the database")
			return db, nil
		}
		if i < attempts-1 {
			logger.Sugar.Infof("Database connection failed, retrying in %s... (%v)", backoff, err)
			time.Sleep(backoff)
		}
	}
	db.Close()
	return nil, fmt.Errorf("could not connect to database after %d attempts: %w", attempts, err)
}

// Migrate creates the users and notes tables if they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	logger.Sugar.Info("Database schema applied")
	return nil
}
