package portfolio_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onion2907/nivesh/internal/portfolio"
)

func buy(symbol string, qty, price float64) *portfolio.Transaction {
	return &portfolio.Transaction{
		ID:       uuid.New(),
		Symbol:   symbol,
		Kind:     portfolio.KindBuy,
		Quantity: qty,
		Price:    price,
		Date:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Currency: "INR",
		Exchange: "NSE",
	}
}

func sell(symbol string, qty, price float64) *portfolio.Transaction {
	tx := buy(symbol, qty, price)
	tx.Kind = portfolio.KindSell

	return tx
}

func TestDeriveHoldings(t *testing.T) {
	type testCase struct {
		name string
		txs  []*portfolio.Transaction
		want []portfolio.Holding
	}

	tests := []testCase{
		{
			name: "Empty",
			txs:  nil,
			want: nil,
		},
		{
			name: "WeightedAverageCost",
			txs: []*portfolio.Transaction{
				buy("INFY", 10, 100),
				buy("INFY", 10, 200),
			},
			want: []portfolio.Holding{
				{Symbol: "INFY", Quantity: 20, AverageCost: 150, LastTradedPrice: 200},
			},
		},
		{
			name: "FullCloseIsPruned",
			txs: []*portfolio.Transaction{
				buy("TCS", 10, 100),
				sell("TCS", 10, 120),
			},
			want: nil,
		},
		{
			name: "OversellClampsToZero",
			txs: []*portfolio.Transaction{
				buy("TCS", 5, 100),
				sell("TCS", 8, 120),
			},
			want: nil,
		},
		{
			name: "PartialSellKeepsAverageCost",
			txs: []*portfolio.Transaction{
				buy("RELIANCE", 10, 100),
				sell("RELIANCE", 4, 150),
			},
			want: []portfolio.Holding{
				{Symbol: "RELIANCE", Quantity: 6, AverageCost: 100, LastTradedPrice: 150},
			},
		},
		{
			name: "CostBasisResetsAfterFullClose",
			txs: []*portfolio.Transaction{
				buy("HDFC", 10, 500),
				sell("HDFC", 10, 600),
				buy("HDFC", 5, 200),
			},
			want: []portfolio.Holding{
				{Symbol: "HDFC", Quantity: 5, AverageCost: 200, LastTradedPrice: 200},
			},
		},
		{
			name: "LedgerOrderNotDateOrder",
			txs: func() []*portfolio.Transaction {
				later := buy("ITC", 10, 300)
				later.Date = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
				earlier := buy("ITC", 10, 100)
				earlier.Date = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

				// The fold follows entry order, so the entry at price 100
				// lands second and the last traded price is 100.
				return []*portfolio.Transaction{later, earlier}
			}(),
			want: []portfolio.Holding{
				{Symbol: "ITC", Quantity: 20, AverageCost: 200, LastTradedPrice: 100},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := portfolio.DeriveHoldings(tt.txs)

			require.Len(t, got, len(tt.want))

			for i, want := range tt.want {
				assert.Equal(t, want.Symbol, got[i].Symbol)
				assert.InDelta(t, want.Quantity, got[i].Quantity, 1e-9)
				assert.InDelta(t, want.AverageCost, got[i].AverageCost, 1e-9)
				assert.InDelta(t, want.LastTradedPrice, got[i].LastTradedPrice, 1e-9)
			}
		})
	}
}

func TestDeriveHoldings_NoNonPositiveQuantities(t *testing.T) {
	txs := []*portfolio.Transaction{
		buy("A", 10, 100),
		sell("A", 10, 110),
		buy("B", 3, 50),
		sell("B", 5, 40),
		buy("C", 1, 10),
	}

	for _, h := range portfolio.DeriveHoldings(txs) {
		assert.Greater(t, h.Quantity, 0.0, "symbol %s", h.Symbol)
	}
}

func TestDeriveHoldings_DerivedFields(t *testing.T) {
	got := portfolio.DeriveHoldings([]*portfolio.Transaction{
		buy("INFY", 10, 100),
		buy("INFY", 10, 200),
	})

	require.Len(t, got, 1)
	h := got[0]

	assert.InDelta(t, 20*200, h.CurrentValue, 1e-9)
	assert.InDelta(t, 4000-3000, h.ProfitLoss, 1e-9)
	assert.InDelta(t, 1000.0/3000*100, h.ProfitLossPercent, 1e-9)
	assert.Zero(t, h.DayChange)
	assert.Zero(t, h.DayChangePercent)
	assert.Len(t, h.TransactionIDs, 2)
}

func TestSymbols(t *testing.T) {
	txs := []*portfolio.Transaction{
		buy("A", 1, 1),
		buy("B", 1, 1),
		sell("A", 1, 1),
	}

	assert.Equal(t, []string{"A", "B"}, portfolio.Symbols(txs))
}
