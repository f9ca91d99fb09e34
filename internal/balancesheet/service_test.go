package balancesheet_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/onion2907/nivesh/internal/asset"
	"github.com/onion2907/nivesh/internal/balancesheet"
	"github.com/onion2907/nivesh/internal/liability"
	"github.com/onion2907/nivesh/internal/portfolio"
)

type serviceMocks struct {
	portfolios  *balancesheet.MockPortfolioProvider
	liabilities *balancesheet.MockLiabilityProvider
	assets      *balancesheet.MockAssetProvider
	scalars     *balancesheet.MockScalarProvider
}

func newServiceMocks(t *testing.T) (*balancesheet.Service, serviceMocks) {
	ctrl := gomock.NewController(t)
	mocks := serviceMocks{
		portfolios:  balancesheet.NewMockPortfolioProvider(ctrl),
		liabilities: balancesheet.NewMockLiabilityProvider(ctrl),
		assets:      balancesheet.NewMockAssetProvider(ctrl),
		scalars:     balancesheet.NewMockScalarProvider(ctrl),
	}
	svc := balancesheet.NewService(mocks.portfolios, mocks.liabilities, mocks.assets, mocks.scalars)
	return svc, mocks
}

func TestService_Compose(t *testing.T) {
	svc, mocks := newServiceMocks(t)

	mocks.portfolios.EXPECT().Portfolio(gomock.Any()).Return(&portfolio.Snapshot{
		Holdings: []portfolio.Holding{
			{Symbol: "INFY", Quantity: 10, AverageCost: 1500, CurrentValue: 17000},
		},
	}, nil)
	mocks.liabilities.EXPECT().List(gomock.Any()).Return([]liability.Liability{
		{Type: liability.TypeLoan, CurrentBalance: 10000},
	}, nil)
	mocks.assets.EXPECT().List(gomock.Any()).Return([]asset.Asset{
		{Name: "FD", Type: asset.TypeFixedDeposit, CurrentValue: 50000, Active: true},
		{Name: "Matured FD", Type: asset.TypeFixedDeposit, CurrentValue: 30000, Active: false},
	}, nil)
	mocks.scalars.EXPECT().Cash(gomock.Any()).Return(5000.0, nil)
	mocks.scalars.EXPECT().OtherAssets(gomock.Any()).Return(2000.0, nil)
	mocks.scalars.EXPECT().OtherLiabilities(gomock.Any()).Return(1000.0, nil)

	sheet, err := svc.Compose(context.Background())
	require.NoError(t, err)

	// Only the active asset contributes.
	assert.InDelta(t, 50000, sheet.Assets.MiscAssets, 1e-9)
	assert.InDelta(t, 17000+5000+50000+2000, sheet.Assets.Total, 1e-9)
	assert.InDelta(t, 11000, sheet.Liabilities.Total, 1e-9)
	assert.InDelta(t, 74000-11000, sheet.NetWorth, 1e-9)
}

func TestService_Compose_PortfolioError(t *testing.T) {
	svc, mocks := newServiceMocks(t)

	mocks.portfolios.EXPECT().Portfolio(gomock.Any()).Return(nil, errors.New("db error"))

	_, err := svc.Compose(context.Background())
	assert.ErrorContains(t, err, "loading portfolio")
}

func TestService_Compose_ScalarError(t *testing.T) {
	svc, mocks := newServiceMocks(t)

	mocks.portfolios.EXPECT().Portfolio(gomock.Any()).Return(&portfolio.Snapshot{}, nil)
	mocks.liabilities.EXPECT().List(gomock.Any()).Return(nil, nil)
	mocks.assets.EXPECT().List(gomock.Any()).Return(nil, nil)
	mocks.scalars.EXPECT().Cash(gomock.Any()).Return(0.0, errors.New("db error"))

	_, err := svc.Compose(context.Background())
	assert.ErrorContains(t, err, "loading cash value")
}
