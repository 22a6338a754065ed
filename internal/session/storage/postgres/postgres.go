package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventPortal/internal/session/storage"

	_ "github.com/lib/pq"
)

// Storage keeps client state in a single key/value table.
type Storage struct {
	DB *sql.DB
}

func New(ctx context.Context, dsn string) (*Storage, error) {
	const op = "storage.postgres.New"

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect to the database: %w", op, err)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: failed to connect to the database: %w", op, err)
	}

	query := `
		CREATE TABLE IF NOT EXISTS client_state (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`

	if _, err = db.ExecContext(ctx, query); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: failed to create client_state: %w", op, err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	const op = "storage.postgres.Get"

	query := `
		SELECT value
		FROM client_state
		WHERE key = $1`

	var value string
	err := s.DB.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return []byte(value), nil
}

func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	const op = "storage.postgres.Set"

	query := `
		INSERT INTO client_state (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	if _, err := s.DB.ExecContext(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) Remove(ctx context.Context, key string) error {
	const op = "storage.postgres.Remove"

	query := `
		DELETE FROM client_state
		WHERE key = $1`

	if _, err := s.DB.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
