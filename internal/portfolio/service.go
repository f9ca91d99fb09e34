package portfolio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("transaction not found")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidPrice    = errors.New("price must not be negative")
	ErrInvalidKind     = errors.New("kind must be BUY or SELL")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=portfolio
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	ListTransactions(ctx context.Context) ([]*Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error

	SaveSnapshot(ctx context.Context, snap *Snapshot) error
	GetSnapshot(ctx context.Context) (*Snapshot, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Symbol   string
	Name     string
	Kind     Kind
	Quantity float64
	Price    float64
	Date     time.Time
	Currency string
	Exchange string
	Notes    string
}

func (p CreateParams) validate() error {
	if p.Kind != KindBuy && p.Kind != KindSell {
		return ErrInvalidKind
	}

	if p.Quantity <= 0 {
		return ErrInvalidQuantity
	}

	if p.Price < 0 {
		return ErrInvalidPrice
	}

	return nil
}

// Create appends a transaction to the ledger and re-derives the cached
// holdings snapshot.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	tx := &Transaction{
		Symbol:   params.Symbol,
		Name:     params.Name,
		Kind:     params.Kind,
		Quantity: params.Quantity,
		Price:    params.Price,
		Date:     params.Date,
		Currency: params.Currency,
		Exchange: params.Exchange,
		Notes:    params.Notes,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	if err := s.recompute(ctx); err != nil {
		return nil, err
	}

	return tx, nil
}

// CreateBatch appends several transactions at once (CSV import path) and
// re-derives the snapshot a single time at the end.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	txs := make([]*Transaction, 0, len(params))

	for _, p := range params {
		if err := p.validate(); err != nil {
			return nil, err
		}

		tx := &Transaction{
			Symbol:   p.Symbol,
			Name:     p.Name,
			Kind:     p.Kind,
			Quantity: p.Quantity,
			Price:    p.Price,
			Date:     p.Date,
			Currency: p.Currency,
			Exchange: p.Exchange,
			Notes:    p.Notes,
		}
		if err := s.repo.CreateTransaction(ctx, tx); err != nil {
			return nil, fmt.Errorf("creating transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := s.recompute(ctx); err != nil {
		return nil, err
	}

	return txs, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx)
}

// Update mutates every field of a transaction except its identifier, then
// re-derives the snapshot.
func (s *Service) Update(ctx context.Context, tx *Transaction) error {
	if err := s.repo.UpdateTransaction(ctx, tx); err != nil {
		return err
	}

	return s.recompute(ctx)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteTransaction(ctx, id); err != nil {
		return err
	}

	return s.recompute(ctx)
}

// Portfolio returns the cached snapshot, recomputing it when none has been
// persisted yet.
func (s *Service) Portfolio(ctx context.Context) (*Snapshot, error) {
	snap, err := s.repo.GetSnapshot(ctx)
	if err == nil && snap != nil {
		return snap, nil
	}

	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	return s.rebuild(ctx, nil)
}

// SaveRefreshed persists holdings and metrics produced by a price refresh
// and stamps the refresh time.
func (s *Service) SaveRefreshed(ctx context.Context, holdings []Holding, metrics Metrics) (*Snapshot, error) {
	txs, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	now := time.Now()
	snap := &Snapshot{
		Holdings:        holdings,
		Transactions:    txs,
		Metrics:         metrics,
		LastUpdated:     now,
		LastRefreshTime: &now,
	}

	if err := s.repo.SaveSnapshot(ctx, snap); err != nil {
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}

	return snap, nil
}

func (s *Service) recompute(ctx context.Context) error {
	_, err := s.rebuild(ctx, s.lastRefreshTime(ctx))
	return err
}

func (s *Service) rebuild(ctx context.Context, lastRefresh *time.Time) (*Snapshot, error) {
	txs, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	holdings := DeriveHoldings(txs)
	snap := &Snapshot{
		Holdings:        holdings,
		Transactions:    txs,
		Metrics:         ComputeMetrics(holdings),
		LastUpdated:     time.Now(),
		LastRefreshTime: lastRefresh,
	}

	if err := s.repo.SaveSnapshot(ctx, snap); err != nil {
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}

	return snap, nil
}

func (s *Service) lastRefreshTime(ctx context.Context) *time.Time {
	snap, err := s.repo.GetSnapshot(ctx)
	if err != nil || snap == nil {
		return nil
	}

	return snap.LastRefreshTime
}
