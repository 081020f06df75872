package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var ErrMissingURL = errors.New("database URL is empty")

var schema = []string{
	`CREATE TABLE IF NOT EXISTS movements (
		id         SERIAL PRIMARY KEY,
		item       TEXT NOT NULL,
		delta      INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS movements_item_created_at_idx ON movements (item, created_at)`,
}

// Connect opens a pgx-backed pool for url and checks it answers.
func Connect(ctx context.Context, url string) (*sql.DB, error) {
	if url == "" {
		return nil, ErrMissingURL
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Migrate creates the movements table when it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}
	return nil
}
