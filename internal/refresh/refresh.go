// Package refresh coordinates re-fetching live prices for held symbols and
// rebuilding holdings and metrics from them.
package refresh

import (
	"context"
	"log/slog"
	"sync"

	"github.com/onion2907/nivesh/internal/portfolio"
	"github.com/onion2907/nivesh/internal/price"
)

type Orchestrator struct {
	provider price.Provider
}

func NewOrchestrator(provider price.Provider) *Orchestrator {
	return &Orchestrator{provider: provider}
}

// Refresh fetches a quote for every distinct symbol in the ledger, one
// request per symbol in parallel, then re-derives holdings and patches in
// the fetched prices. A failed fetch leaves that symbol's derived values
// untouched; it never fails the whole refresh. The returned slice is newly
// built, never a mutated view of previously returned holdings.
func (o *Orchestrator) Refresh(ctx context.Context, transactions []*portfolio.Transaction) ([]portfolio.Holding, portfolio.Metrics) {
	symbols := portfolio.Symbols(transactions)

	quotes := make(map[string]price.Quote, len(symbols))

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	for _, symbol := range symbols {
		wg.Add(1)

		go func() {
			defer wg.Done()

			q, err := o.provider.Quote(ctx, symbol)
			if err != nil {
				slog.Warn("price fetch failed, keeping previous value", "symbol", symbol, "error", err)
				return
			}

			mu.Lock()
			quotes[symbol] = q
			mu.Unlock()
		}()
	}

	wg.Wait()

	derived := portfolio.DeriveHoldings(transactions)
	holdings := make([]portfolio.Holding, 0, len(derived))

	for _, h := range derived {
		if q, ok := quotes[h.Symbol]; ok {
			h.LastTradedPrice = q.Price
			h.CurrentValue = h.Quantity * q.Price
			cost := h.Quantity * h.AverageCost
			h.ProfitLoss = h.CurrentValue - cost

			if cost != 0 {
				h.ProfitLossPercent = h.ProfitLoss / cost * 100
			} else {
				h.ProfitLossPercent = 0
			}

			h.DayChange = q.Change * h.Quantity
			h.DayChangePercent = q.ChangePercent
		}

		holdings = append(holdings, h)
	}

	return holdings, portfolio.ComputeMetrics(holdings)
}
