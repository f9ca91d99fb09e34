package balancesheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onion2907/nivesh/internal/asset"
	"github.com/onion2907/nivesh/internal/balancesheet"
	"github.com/onion2907/nivesh/internal/liability"
	"github.com/onion2907/nivesh/internal/portfolio"
)

func TestCompose(t *testing.T) {
	type testCase struct {
		name             string
		holdings         []portfolio.Holding
		liabilities      []liability.Liability
		cash             float64
		otherAssets      float64
		otherLiabilities float64
		miscAssets       []asset.Asset
		wantAssets       balancesheet.Assets
		wantLiabilities  balancesheet.Liabilities
		wantNetWorth     float64
	}

	tests := []testCase{
		{
			name:         "Empty",
			wantNetWorth: 0,
		},
		{
			name:             "ScalarsOnly",
			cash:             1000,
			otherAssets:      500,
			otherLiabilities: 200,
			wantAssets:       balancesheet.Assets{Cash: 1000, Other: 500, Total: 1500},
			wantLiabilities:  balancesheet.Liabilities{Total: 200},
			wantNetWorth:     1300,
		},
		{
			name: "HoldingsFeedStocks",
			holdings: []portfolio.Holding{
				{Symbol: "INFY", Quantity: 10, AverageCost: 1500, CurrentValue: 17000},
				{Symbol: "TCS", Quantity: 5, AverageCost: 3500, CurrentValue: 20000},
			},
			wantAssets:   balancesheet.Assets{Stocks: 37000, Total: 37000},
			wantNetWorth: 37000,
		},
		{
			name: "MiscAssetsAlwaysCounted",
			miscAssets: []asset.Asset{
				{Name: "FD", Type: asset.TypeFixedDeposit, CurrentValue: 100000},
				{Name: "Gold", Type: asset.TypeGold, CurrentValue: 72500},
			},
			wantAssets:   balancesheet.Assets{MiscAssets: 172500, Total: 172500},
			wantNetWorth: 172500,
		},
		{
			name: "LiabilityBuckets",
			liabilities: []liability.Liability{
				{Type: liability.TypeMortgage, CurrentBalance: 4000000},
				{Type: liability.TypeCarLoan, CurrentBalance: 300000},
				{Type: liability.TypeCreditCard, CurrentBalance: 45000},
				{Type: liability.TypePayable, CurrentBalance: 12000},
				{Type: liability.TypeCommittedExpense, CurrentBalance: 8000},
				{Type: liability.TypeOther, CurrentBalance: 5000},
			},
			wantLiabilities: balancesheet.Liabilities{
				Loans:       4300000,
				CreditCards: 45000,
				Payables:    20000,
				Other:       5000,
				Total:       4370000,
			},
			wantNetWorth: -4370000,
		},
		{
			name: "AllSources",
			holdings: []portfolio.Holding{
				{Symbol: "INFY", Quantity: 10, AverageCost: 1500, CurrentValue: 17000},
			},
			liabilities: []liability.Liability{
				{Type: liability.TypeLoan, CurrentBalance: 10000, Category: liability.CategorySecured},
			},
			cash:             5000,
			otherAssets:      2000,
			otherLiabilities: 1000,
			miscAssets: []asset.Asset{
				{Name: "Bonds", Type: asset.TypeBonds, CurrentValue: 3000},
			},
			wantAssets:      balancesheet.Assets{Stocks: 17000, Cash: 5000, MiscAssets: 3000, Other: 2000, Total: 27000},
			wantLiabilities: balancesheet.Liabilities{Loans: 10000, Total: 11000},
			wantNetWorth:    16000,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sheet := balancesheet.Compose(tc.holdings, tc.liabilities, tc.cash, tc.otherAssets, tc.otherLiabilities, tc.miscAssets)

			assert.Equal(t, tc.wantAssets, sheet.Assets)
			assert.Equal(t, tc.wantLiabilities, sheet.Liabilities)
			assert.InDelta(t, tc.wantNetWorth, sheet.NetWorth, 1e-9)
			assert.False(t, sheet.GeneratedAt.IsZero())
		})
	}
}

func TestCompose_NestedMetrics(t *testing.T) {
	holdings := []portfolio.Holding{
		{Symbol: "INFY", Quantity: 10, AverageCost: 1500, CurrentValue: 17000},
	}
	liabilities := []liability.Liability{
		{Type: liability.TypeLoan, CurrentBalance: 1000, Category: liability.CategorySecured, InterestRate: 10},
		{Type: liability.TypeCreditCard, CurrentBalance: 500, Category: liability.CategoryUnsecured, InterestRate: 34},
	}

	sheet := balancesheet.Compose(holdings, liabilities, 0, 0, 0, nil)

	assert.InDelta(t, 17000, sheet.PortfolioMetrics.TotalValue, 1e-9)
	assert.InDelta(t, 15000, sheet.PortfolioMetrics.TotalCost, 1e-9)
	assert.InDelta(t, 1000, sheet.LiabilityMetrics.SecuredDebt, 1e-9)
	assert.InDelta(t, 500, sheet.LiabilityMetrics.UnsecuredDebt, 1e-9)
	assert.InDelta(t, 22, sheet.LiabilityMetrics.AverageInterestRate, 1e-9)
}
