package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/onion2907/nivesh/internal/portfolio"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTransaction reads a ledger row and returns a populated Transaction.
// Expected column order: id, symbol, name, kind, quantity, price, date,
// currency, exchange, notes, created_at, updated_at
func scanTransaction(s scanner) (*portfolio.Transaction, error) {
	var tx portfolio.Transaction

	var kindStr string

	var name, notes sql.NullString

	if err := s.Scan(
		&tx.ID, &tx.Symbol, &name, &kindStr, &tx.Quantity, &tx.Price, &tx.Date,
		&tx.Currency, &tx.Exchange, &notes,
		&tx.CreatedAt, &tx.UpdatedAt,
	); err != nil {
		return nil, err
	}

	tx.Kind = portfolio.Kind(kindStr)
	tx.Name = name.String
	tx.Notes = notes.String

	return &tx, nil
}

const selectTransactionColumns = `
	t.id, t.symbol, t.name, t.kind, t.quantity, t.price, t.date,
	t.currency, t.exchange, t.notes, t.created_at, t.updated_at
`

func (s *Store) CreateTransaction(ctx context.Context, tx *portfolio.Transaction) error {
	query := `
		INSERT INTO ledger_transactions (symbol, name, kind, quantity, price, date, currency, exchange, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.Symbol,
		tx.Name,
		tx.Kind,
		tx.Quantity,
		tx.Price,
		tx.Date,
		tx.Currency,
		tx.Exchange,
		tx.Notes,
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*portfolio.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM ledger_transactions t
		WHERE t.id = $1`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, portfolio.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

// ListTransactions returns the ledger in entry order. The holdings fold
// depends on this ordering, so rows are sorted by the insertion sequence
// rather than by trade date.
func (s *Store) ListTransactions(ctx context.Context) ([]*portfolio.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM ledger_transactions t
		ORDER BY t.seq ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*portfolio.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

func (s *Store) UpdateTransaction(ctx context.Context, tx *portfolio.Transaction) error {
	query := `
		UPDATE ledger_transactions
		SET symbol = $1, name = $2, kind = $3, quantity = $4, price = $5, date = $6,
			currency = $7, exchange = $8, notes = $9, updated_at = NOW()
		WHERE id = $10
	`

	res, err := s.db.ExecContext(ctx, query,
		tx.Symbol,
		tx.Name,
		tx.Kind,
		tx.Quantity,
		tx.Price,
		tx.Date,
		tx.Currency,
		tx.Exchange,
		tx.Notes,
		tx.ID,
	)
	if err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return portfolio.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM ledger_transactions WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return portfolio.ErrNotFound
	}

	return nil
}

// SaveSnapshot upserts the single cached snapshot row. Holdings and metrics
// are stored as JSON; transactions are not duplicated here since the ledger
// table remains the source of truth.
func (s *Store) SaveSnapshot(ctx context.Context, snap *portfolio.Snapshot) error {
	holdings, err := json.Marshal(snap.Holdings)
	if err != nil {
		return fmt.Errorf("marshaling holdings: %w", err)
	}

	metrics, err := json.Marshal(snap.Metrics)
	if err != nil {
		return fmt.Errorf("marshaling metrics: %w", err)
	}

	query := `
		INSERT INTO portfolio_snapshot (id, holdings, metrics, last_updated, last_refresh_time)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET holdings = EXCLUDED.holdings, metrics = EXCLUDED.metrics,
			last_updated = EXCLUDED.last_updated, last_refresh_time = EXCLUDED.last_refresh_time
	`

	if _, err := s.db.ExecContext(ctx, query, holdings, metrics, snap.LastUpdated, snap.LastRefreshTime); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	return nil
}

func (s *Store) GetSnapshot(ctx context.Context) (*portfolio.Snapshot, error) {
	query := `SELECT holdings, metrics, last_updated, last_refresh_time FROM portfolio_snapshot WHERE id = 1`

	var (
		holdingsRaw []byte
		metricsRaw  []byte
		snap        portfolio.Snapshot
	)

	err := s.db.QueryRowContext(ctx, query).
		Scan(&holdingsRaw, &metricsRaw, &snap.LastUpdated, &snap.LastRefreshTime)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, portfolio.ErrNotFound
		}

		return nil, fmt.Errorf("getting snapshot: %w", err)
	}

	// A corrupted cache is not fatal: log and treat the snapshot as absent
	// so the caller rebuilds it from the ledger.
	if err := json.Unmarshal(holdingsRaw, &snap.Holdings); err != nil {
		slog.Warn("discarding malformed holdings cache", "error", err)
		return nil, portfolio.ErrNotFound
	}

	if err := json.Unmarshal(metricsRaw, &snap.Metrics); err != nil {
		slog.Warn("discarding malformed metrics cache", "error", err)
		return nil, portfolio.ErrNotFound
	}

	txs, err := s.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	snap.Transactions = txs

	return &snap, nil
}
