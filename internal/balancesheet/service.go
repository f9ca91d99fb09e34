package balancesheet

import (
	"context"
	"fmt"

	"github.com/onion2907/nivesh/internal/asset"
	"github.com/onion2907/nivesh/internal/liability"
	"github.com/onion2907/nivesh/internal/portfolio"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=balancesheet

// PortfolioProvider supplies the current portfolio snapshot.
type PortfolioProvider interface {
	Portfolio(ctx context.Context) (*portfolio.Snapshot, error)
}

// LiabilityProvider supplies the full liability list.
type LiabilityProvider interface {
	List(ctx context.Context) ([]liability.Liability, error)
}

// AssetProvider supplies the miscellaneous asset list.
type AssetProvider interface {
	List(ctx context.Context) ([]asset.Asset, error)
}

// ScalarProvider supplies the manually maintained cash and "other" values.
type ScalarProvider interface {
	Cash(ctx context.Context) (float64, error)
	OtherAssets(ctx context.Context) (float64, error)
	OtherLiabilities(ctx context.Context) (float64, error)
}

type Service struct {
	portfolios  PortfolioProvider
	liabilities LiabilityProvider
	assets      AssetProvider
	scalars     ScalarProvider
}

func NewService(portfolios PortfolioProvider, liabilities LiabilityProvider, assets AssetProvider, scalars ScalarProvider) *Service {
	return &Service{
		portfolios:  portfolios,
		liabilities: liabilities,
		assets:      assets,
		scalars:     scalars,
	}
}

// Compose gathers every source and derives the balance sheet. Inactive
// assets are excluded from the asset side.
func (s *Service) Compose(ctx context.Context) (BalanceSheet, error) {
	snap, err := s.portfolios.Portfolio(ctx)
	if err != nil {
		return BalanceSheet{}, fmt.Errorf("loading portfolio: %w", err)
	}

	liabilities, err := s.liabilities.List(ctx)
	if err != nil {
		return BalanceSheet{}, fmt.Errorf("listing liabilities: %w", err)
	}

	assets, err := s.assets.List(ctx)
	if err != nil {
		return BalanceSheet{}, fmt.Errorf("listing assets: %w", err)
	}

	active := assets[:0:0]
	for _, a := range assets {
		if a.Active {
			active = append(active, a)
		}
	}

	cash, err := s.scalars.Cash(ctx)
	if err != nil {
		return BalanceSheet{}, fmt.Errorf("loading cash value: %w", err)
	}
	otherAssets, err := s.scalars.OtherAssets(ctx)
	if err != nil {
		return BalanceSheet{}, fmt.Errorf("loading other assets value: %w", err)
	}
	otherLiabilities, err := s.scalars.OtherLiabilities(ctx)
	if err != nil {
		return BalanceSheet{}, fmt.Errorf("loading other liabilities value: %w", err)
	}

	return Compose(snap.Holdings, liabilities, cash, otherAssets, otherLiabilities, active), nil
}
