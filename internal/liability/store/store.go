package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/onion2907/nivesh/internal/liability"
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

// Expected column order: id, name, type, category, term, original_amount,
// current_balance, interest_rate, monthly_payment, start_date, end_date,
// currency, lender, description, active, created_at, updated_at
func scanLiability(s scanner) (*liability.Liability, error) {
	var l liability.Liability

	var typeStr, categoryStr, termStr string

	var lender, description sql.NullString

	if err := s.Scan(
		&l.ID, &l.Name, &typeStr, &categoryStr, &termStr,
		&l.OriginalAmount, &l.CurrentBalance, &l.InterestRate, &l.MonthlyPayment,
		&l.StartDate, &l.EndDate, &l.Currency, &lender, &description, &l.Active,
		&l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}

	l.Type = liability.Type(typeStr)
	l.Category = liability.Category(categoryStr)
	l.Term = liability.Term(termStr)
	l.Lender = lender.String
	l.Description = description.String

	return &l, nil
}

const selectLiabilityColumns = `
	l.id, l.name, l.type, l.category, l.term, l.original_amount, l.current_balance,
	l.interest_rate, l.monthly_payment, l.start_date, l.end_date, l.currency,
	l.lender, l.description, l.active, l.created_at, l.updated_at
`

func (s *Store) CreateLiability(ctx context.Context, l *liability.Liability) error {
	query := `
		INSERT INTO liabilities (name, type, category, term, original_amount, current_balance,
			interest_rate, monthly_payment, start_date, end_date, currency, lender, description, active,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		l.Name, l.Type, l.Category, l.Term,
		l.OriginalAmount, l.CurrentBalance, l.InterestRate, l.MonthlyPayment,
		l.StartDate, l.EndDate, l.Currency, l.Lender, l.Description, l.Active,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating liability: %w", err)
	}

	return nil
}

func (s *Store) GetLiability(ctx context.Context, id uuid.UUID) (*liability.Liability, error) {
	query := `SELECT ` + selectLiabilityColumns + ` FROM liabilities l WHERE l.id = $1`

	l, err := scanLiability(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, liability.ErrNotFound
		}

		return nil, fmt.Errorf("getting liability: %w", err)
	}

	return l, nil
}

func (s *Store) ListLiabilities(ctx context.Context) ([]liability.Liability, error) {
	query := `SELECT ` + selectLiabilityColumns + ` FROM liabilities l ORDER BY l.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing liabilities: %w", err)
	}
	defer rows.Close()

	var liabilities []liability.Liability

	for rows.Next() {
		l, err := scanLiability(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning liability: %w", err)
		}

		liabilities = append(liabilities, *l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating liability rows: %w", err)
	}

	return liabilities, nil
}

func (s *Store) UpdateLiability(ctx context.Context, l *liability.Liability) error {
	query := `
		UPDATE liabilities
		SET name = $1, type = $2, category = $3, term = $4, original_amount = $5,
			current_balance = $6, interest_rate = $7, monthly_payment = $8,
			start_date = $9, end_date = $10, currency = $11, lender = $12,
			description = $13, active = $14, updated_at = NOW()
		WHERE id = $15
	`

	res, err := s.db.ExecContext(ctx, query,
		l.Name, l.Type, l.Category, l.Term, l.OriginalAmount,
		l.CurrentBalance, l.InterestRate, l.MonthlyPayment,
		l.StartDate, l.EndDate, l.Currency, l.Lender,
		l.Description, l.Active, l.ID,
	)
	if err != nil {
		return fmt.Errorf("updating liability: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return liability.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteLiability(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM liabilities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting liability: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return liability.ErrNotFound
	}

	return nil
}
