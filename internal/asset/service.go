package asset

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("asset not found")
	ErrNegativeValue   = errors.New("current value must not be negative")
	ErrDetailMismatch  = errors.New("detail variant does not match asset type")
	ErrMissingWeight   = errors.New("metal assets need a positive weight")
	ErrUnknownType     = errors.New("unknown asset type")
	errNoMetalProvider = errors.New("no metal price provider configured")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=asset
type Repository interface {
	CreateAsset(ctx context.Context, a *Asset) error
	GetAsset(ctx context.Context, id uuid.UUID) (*Asset, error)
	UpdateAsset(ctx context.Context, a *Asset) error
	ListAssets(ctx context.Context) ([]Asset, error)
	DeleteAsset(ctx context.Context, id uuid.UUID) error
}

// MetalPricer supplies the live price per gram for GOLD and SILVER assets.
type MetalPricer interface {
	PricePerGram(ctx context.Context, t Type) (float64, error)
}

type Service struct {
	repo   Repository
	metals MetalPricer
}

func NewService(repo Repository, metals MetalPricer) *Service {
	return &Service{repo: repo, metals: metals}
}

type CreateParams struct {
	Name         string
	Type         Type
	Currency     string
	CurrentValue float64
	Detail       Detail
}

// Create stores a new asset. For GOLD and SILVER the current value is
// derived from the live price per gram and the entered weight, overriding
// whatever value the caller supplied.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Asset, error) {
	if err := validateDetail(params.Type, params.Detail); err != nil {
		return nil, err
	}

	a := &Asset{
		Name:         params.Name,
		Type:         params.Type,
		Currency:     params.Currency,
		Active:       true,
		CurrentValue: params.CurrentValue,
		LastUpdated:  time.Now(),
		Detail:       params.Detail,
	}

	if err := s.valueMetal(ctx, a); err != nil {
		return nil, err
	}

	if a.CurrentValue < 0 {
		return nil, ErrNegativeValue
	}

	if err := s.repo.CreateAsset(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Asset, error) {
	return s.repo.GetAsset(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Asset, error) {
	return s.repo.ListAssets(ctx)
}

func (s *Service) Update(ctx context.Context, a *Asset) error {
	if err := validateDetail(a.Type, a.Detail); err != nil {
		return err
	}

	if err := s.valueMetal(ctx, a); err != nil {
		return err
	}

	if a.CurrentValue < 0 {
		return ErrNegativeValue
	}

	a.LastUpdated = time.Now()

	return s.repo.UpdateAsset(ctx, a)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteAsset(ctx, id)
}

// valueMetal re-derives CurrentValue for GOLD and SILVER from the live
// price per gram.
func (s *Service) valueMetal(ctx context.Context, a *Asset) error {
	if a.Type != TypeGold && a.Type != TypeSilver {
		return nil
	}

	detail, ok := a.Detail.(MetalDetail)
	if !ok || detail.WeightGrams <= 0 {
		return ErrMissingWeight
	}

	if s.metals == nil {
		return errNoMetalProvider
	}

	perGram, err := s.metals.PricePerGram(ctx, a.Type)
	if err != nil {
		return fmt.Errorf("fetching metal price: %w", err)
	}

	detail.PricePerGram = perGram
	a.Detail = detail
	a.CurrentValue = detail.WeightGrams * perGram

	return nil
}

func validateDetail(t Type, d Detail) error {
	want, err := detailFor(t)
	if err != nil {
		return ErrUnknownType
	}

	if d == nil {
		return nil
	}

	if reflect.TypeOf(d) != reflect.TypeOf(want) {
		return ErrDetailMismatch
	}

	return nil
}
