package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/onion2907/nivesh/internal/asset"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, name, type, currency, active, current_value,
// last_updated, detail, created_at, updated_at
func scanAsset(s scanner) (*asset.Asset, error) {
	var a asset.Asset

	var typeStr string

	var detailRaw []byte

	if err := s.Scan(
		&a.ID, &a.Name, &typeStr, &a.Currency, &a.Active, &a.CurrentValue,
		&a.LastUpdated, &detailRaw, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}

	a.Type = asset.Type(typeStr)

	// A malformed detail blob is logged and dropped; the common envelope is
	// still usable without it.
	detail, err := asset.UnmarshalDetail(a.Type, detailRaw)
	if err != nil {
		slog.Warn("discarding malformed asset detail", "asset", a.ID, "type", a.Type, "error", err)
	} else {
		a.Detail = detail
	}

	return &a, nil
}

const selectAssetColumns = `
	a.id, a.name, a.type, a.currency, a.active, a.current_value,
	a.last_updated, a.detail, a.created_at, a.updated_at
`

func (s *Store) CreateAsset(ctx context.Context, a *asset.Asset) error {
	detail, err := asset.MarshalDetail(a.Detail)
	if err != nil {
		return fmt.Errorf("marshaling asset detail: %w", err)
	}

	query := `
		INSERT INTO assets (name, type, currency, active, current_value, last_updated, detail, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = s.db.QueryRowContext(ctx, query,
		a.Name, a.Type, a.Currency, a.Active, a.CurrentValue, a.LastUpdated, detail,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating asset: %w", err)
	}

	return nil
}

func (s *Store) GetAsset(ctx context.Context, id uuid.UUID) (*asset.Asset, error) {
	query := `SELECT ` + selectAssetColumns + ` FROM assets a WHERE a.id = $1`

	a, err := scanAsset(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, asset.ErrNotFound
		}

		return nil, fmt.Errorf("getting asset: %w", err)
	}

	return a, nil
}

func (s *Store) ListAssets(ctx context.Context) ([]asset.Asset, error) {
	query := `SELECT ` + selectAssetColumns + ` FROM assets a ORDER BY a.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}
	defer rows.Close()

	var assets []asset.Asset

	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning asset: %w", err)
		}

		assets = append(assets, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating asset rows: %w", err)
	}

	return assets, nil
}

func (s *Store) UpdateAsset(ctx context.Context, a *asset.Asset) error {
	detail, err := asset.MarshalDetail(a.Detail)
	if err != nil {
		return fmt.Errorf("marshaling asset detail: %w", err)
	}

	query := `
		UPDATE assets
		SET name = $1, type = $2, currency = $3, active = $4, current_value = $5,
			last_updated = $6, detail = $7, updated_at = NOW()
		WHERE id = $8
	`

	res, err := s.db.ExecContext(ctx, query,
		a.Name, a.Type, a.Currency, a.Active, a.CurrentValue, a.LastUpdated, detail, a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating asset: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return asset.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting asset: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return asset.ErrNotFound
	}

	return nil
}
