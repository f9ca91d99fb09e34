package portfolio

// DeriveHoldings folds the ledger into current positions using weighted
// average cost. Transactions are processed in ledger order (the order they
// were entered), not calendar order: editing a date does not re-sequence the
// fold. Positions that end at zero quantity are pruned from the result, and
// a sell that would drive quantity negative clamps the position to zero and
// erases its cost basis.
func DeriveHoldings(transactions []*Transaction) []Holding {
	bySymbol := make(map[string]*Holding, len(transactions))

	// Preserves first-appearance order so the output is deterministic.
	var order []string

	for _, tx := range transactions {
		h, ok := bySymbol[tx.Symbol]
		if !ok {
			h = &Holding{
				Symbol:          tx.Symbol,
				Name:            tx.Name,
				LastTradedPrice: tx.Price,
				Currency:        tx.Currency,
				Exchange:        tx.Exchange,
			}
			bySymbol[tx.Symbol] = h

			order = append(order, tx.Symbol)
		}

		switch tx.Kind {
		case KindBuy:
			totalCost := h.AverageCost*h.Quantity + tx.Price*tx.Quantity
			h.Quantity += tx.Quantity
			h.AverageCost = totalCost / h.Quantity
		case KindSell:
			h.Quantity -= tx.Quantity
			if h.Quantity <= 0 {
				h.Quantity = 0
				h.AverageCost = 0
			}
		}

		h.LastTradedPrice = tx.Price
		h.TransactionIDs = append(h.TransactionIDs, tx.ID)
	}

	var holdings []Holding

	for _, symbol := range order {
		h := bySymbol[symbol]
		if h.Quantity == 0 {
			continue
		}

		h.CurrentValue = h.Quantity * h.LastTradedPrice
		cost := h.Quantity * h.AverageCost
		h.ProfitLoss = h.CurrentValue - cost

		if cost != 0 {
			h.ProfitLossPercent = h.ProfitLoss / cost * 100
		}

		holdings = append(holdings, *h)
	}

	return holdings
}

// Symbols returns the distinct symbols present in the ledger, in
// first-appearance order.
func Symbols(transactions []*Transaction) []string {
	seen := make(map[string]struct{}, len(transactions))

	var symbols []string

	for _, tx := range transactions {
		if _, ok := seen[tx.Symbol]; ok {
			continue
		}

		seen[tx.Symbol] = struct{}{}

		symbols = append(symbols, tx.Symbol)
	}

	return symbols
}
