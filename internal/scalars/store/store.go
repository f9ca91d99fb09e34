package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/onion2907/nivesh/internal/scalars"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetValue(ctx context.Context, key string) (string, error) {
	var value string

	err := s.db.QueryRowContext(ctx, `SELECT value FROM scalar_values WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", scalars.ErrNotFound
		}

		return "", fmt.Errorf("getting scalar %s: %w", key, err)
	}

	return value, nil
}

func (s *Store) SetValue(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO scalar_values (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("setting scalar %s: %w", key, err)
	}

	return nil
}
