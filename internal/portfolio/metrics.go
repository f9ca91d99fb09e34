package portfolio

// Metrics aggregates value, cost and gain/loss figures over a holdings set.
type Metrics struct {
	TotalValue              float64
	TotalCost               float64
	TotalGainLoss           float64
	TotalGainLossPercentage float64
	DayChange               float64
	DayChangePercentage     float64
}

// ComputeMetrics sums value and cost basis across holdings. Day-change
// figures are carried from the holdings themselves, which hold zeros until a
// refresh populates them from a live quote.
func ComputeMetrics(holdings []Holding) Metrics {
	var m Metrics

	for _, h := range holdings {
		m.TotalValue += h.CurrentValue
		m.TotalCost += h.Quantity * h.AverageCost
		m.DayChange += h.DayChange
	}

	m.TotalGainLoss = m.TotalValue - m.TotalCost

	if m.TotalCost != 0 {
		m.TotalGainLossPercentage = m.TotalGainLoss / m.TotalCost * 100
	}

	prevValue := m.TotalValue - m.DayChange
	if prevValue != 0 && m.DayChange != 0 {
		m.DayChangePercentage = m.DayChange / prevValue * 100
	}

	return m
}
