package refresh_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onion2907/nivesh/internal/portfolio"
	"github.com/onion2907/nivesh/internal/price"
	"github.com/onion2907/nivesh/internal/refresh"
)

// fakeProvider serves canned quotes per symbol and records which symbols
// were requested.
type fakeProvider struct {
	mu     sync.Mutex
	quotes map[string]price.Quote
	fails  map[string]bool
	seen   []string
}

func (f *fakeProvider) Quote(_ context.Context, symbol string) (price.Quote, error) {
	f.mu.Lock()
	f.seen = append(f.seen, symbol)
	f.mu.Unlock()

	if f.fails[symbol] {
		return price.Quote{}, price.ErrNotFound
	}

	return f.quotes[symbol], nil
}

func tx(symbol string, kind portfolio.Kind, qty, px float64) *portfolio.Transaction {
	return &portfolio.Transaction{
		ID:       uuid.New(),
		Symbol:   symbol,
		Kind:     kind,
		Quantity: qty,
		Price:    px,
		Date:     time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Currency: "INR",
	}
}

func TestOrchestrator_Refresh(t *testing.T) {
	provider := &fakeProvider{
		quotes: map[string]price.Quote{
			"INFY": {Symbol: "INFY", Price: 1700, Change: 20, ChangePercent: 1.19},
			"TCS":  {Symbol: "TCS", Price: 4000, Change: -30, ChangePercent: -0.74},
		},
	}

	txs := []*portfolio.Transaction{
		tx("INFY", portfolio.KindBuy, 10, 1500),
		tx("TCS", portfolio.KindBuy, 5, 3500),
	}

	holdings, metrics := refresh.NewOrchestrator(provider).Refresh(context.Background(), txs)

	require.Len(t, holdings, 2)

	infy := holdings[0]
	assert.Equal(t, "INFY", infy.Symbol)
	assert.InDelta(t, 1700, infy.LastTradedPrice, 1e-9)
	assert.InDelta(t, 17000, infy.CurrentValue, 1e-9)
	assert.InDelta(t, 2000, infy.ProfitLoss, 1e-9)
	assert.InDelta(t, 200, infy.DayChange, 1e-9)
	assert.InDelta(t, 1.19, infy.DayChangePercent, 1e-9)

	assert.InDelta(t, 17000+20000, metrics.TotalValue, 1e-9)
	assert.InDelta(t, 15000+17500, metrics.TotalCost, 1e-9)
}

func TestOrchestrator_PartialFailureKeepsOldPrice(t *testing.T) {
	provider := &fakeProvider{
		quotes: map[string]price.Quote{
			"A": {Symbol: "A", Price: 110},
			"C": {Symbol: "C", Price: 330},
		},
		fails: map[string]bool{"B": true},
	}

	txs := []*portfolio.Transaction{
		tx("A", portfolio.KindBuy, 1, 100),
		tx("B", portfolio.KindBuy, 1, 200),
		tx("C", portfolio.KindBuy, 1, 300),
	}

	holdings, _ := refresh.NewOrchestrator(provider).Refresh(context.Background(), txs)

	require.Len(t, holdings, 3)

	bySymbol := make(map[string]portfolio.Holding, len(holdings))
	for _, h := range holdings {
		bySymbol[h.Symbol] = h
	}

	// The failed symbol keeps its ledger-derived price and value.
	assert.InDelta(t, 200, bySymbol["B"].LastTradedPrice, 1e-9)
	assert.InDelta(t, 200, bySymbol["B"].CurrentValue, 1e-9)
	assert.InDelta(t, 110, bySymbol["A"].LastTradedPrice, 1e-9)
	assert.InDelta(t, 330, bySymbol["C"].LastTradedPrice, 1e-9)
}

func TestOrchestrator_FetchesEachSymbolOnce(t *testing.T) {
	provider := &fakeProvider{quotes: map[string]price.Quote{"A": {Price: 1}}}

	txs := []*portfolio.Transaction{
		tx("A", portfolio.KindBuy, 1, 1),
		tx("A", portfolio.KindBuy, 2, 2),
		tx("A", portfolio.KindSell, 1, 3),
	}

	refresh.NewOrchestrator(provider).Refresh(context.Background(), txs)

	assert.Len(t, provider.seen, 1)
}

func TestOrchestrator_EmptyLedger(t *testing.T) {
	provider := &fakeProvider{}

	holdings, metrics := refresh.NewOrchestrator(provider).Refresh(context.Background(), nil)

	assert.Empty(t, holdings)
	assert.Zero(t, metrics.TotalValue)
	assert.Empty(t, provider.seen)
}
