package liability

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("liability not found")
	ErrNegativeBalance = errors.New("current balance must not be negative")
	ErrBalanceExceeds  = errors.New("current balance exceeds original amount")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=liability
type Repository interface {
	CreateLiability(ctx context.Context, l *Liability) error
	GetLiability(ctx context.Context, id uuid.UUID) (*Liability, error)
	UpdateLiability(ctx context.Context, l *Liability) error
	ListLiabilities(ctx context.Context) ([]Liability, error)
	DeleteLiability(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name           string
	Type           Type
	Category       Category
	Term           Term
	OriginalAmount float64
	CurrentBalance float64
	InterestRate   float64
	MonthlyPayment float64
	StartDate      time.Time
	EndDate        *time.Time
	Currency       string
	Lender         string
	Description    string
}

func validateBalance(balance, original float64) error {
	if balance < 0 {
		return ErrNegativeBalance
	}

	if balance > original {
		return ErrBalanceExceeds
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Liability, error) {
	if err := validateBalance(params.CurrentBalance, params.OriginalAmount); err != nil {
		return nil, err
	}

	l := &Liability{
		Name:           params.Name,
		Type:           params.Type,
		Category:       params.Category,
		Term:           params.Term,
		OriginalAmount: params.OriginalAmount,
		CurrentBalance: params.CurrentBalance,
		InterestRate:   params.InterestRate,
		MonthlyPayment: params.MonthlyPayment,
		StartDate:      params.StartDate,
		EndDate:        params.EndDate,
		Currency:       params.Currency,
		Lender:         params.Lender,
		Description:    params.Description,
		Active:         true,
	}
	if err := s.repo.CreateLiability(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Liability, error) {
	return s.repo.GetLiability(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Liability, error) {
	return s.repo.ListLiabilities(ctx)
}

func (s *Service) Update(ctx context.Context, l *Liability) error {
	if err := validateBalance(l.CurrentBalance, l.OriginalAmount); err != nil {
		return err
	}

	return s.repo.UpdateLiability(ctx, l)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteLiability(ctx, id)
}

// Metrics recomputes aggregate debt figures over the current list.
func (s *Service) Metrics(ctx context.Context) (Metrics, error) {
	liabilities, err := s.repo.ListLiabilities(ctx)
	if err != nil {
		return Metrics{}, err
	}

	return ComputeMetrics(liabilities), nil
}
