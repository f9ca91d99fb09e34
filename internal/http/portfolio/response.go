package portfolio

import (
	"time"

	"github.com/google/uuid"

	"github.com/onion2907/nivesh/internal/portfolio"
	"github.com/onion2907/nivesh/internal/price/alphavantage"
)

type transactionResponse struct {
	ID        uuid.UUID      `json:"id"`
	Symbol    string         `json:"symbol"`
	Name      string         `json:"name,omitempty"`
	Kind      portfolio.Kind `json:"kind"`
	Quantity  float64        `json:"quantity"`
	Price     float64        `json:"price"`
	Date      time.Time      `json:"date"`
	Currency  string         `json:"currency"`
	Exchange  string         `json:"exchange,omitempty"`
	Notes     string         `json:"notes,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt *time.Time     `json:"updated_at,omitempty"`
}

type holdingResponse struct {
	Symbol            string      `json:"symbol"`
	Name              string      `json:"name,omitempty"`
	Quantity          float64     `json:"quantity"`
	AverageCost       float64     `json:"average_cost"`
	LastTradedPrice   float64     `json:"last_traded_price"`
	CurrentValue      float64     `json:"current_value"`
	ProfitLoss        float64     `json:"profit_loss"`
	ProfitLossPercent float64     `json:"profit_loss_percent"`
	DayChange         float64     `json:"day_change"`
	DayChangePercent  float64     `json:"day_change_percent"`
	Currency          string      `json:"currency"`
	Exchange          string      `json:"exchange,omitempty"`
	TransactionIDs    []uuid.UUID `json:"transaction_ids"`
}

type metricsResponse struct {
	TotalValue              float64 `json:"total_value"`
	TotalCost               float64 `json:"total_cost"`
	TotalGainLoss           float64 `json:"total_gain_loss"`
	TotalGainLossPercentage float64 `json:"total_gain_loss_percentage"`
	DayChange               float64 `json:"day_change"`
	DayChangePercentage     float64 `json:"day_change_percentage"`
}

type snapshotResponse struct {
	Holdings        []holdingResponse     `json:"holdings"`
	Transactions    []transactionResponse `json:"transactions"`
	Metrics         metricsResponse       `json:"metrics"`
	LastUpdated     time.Time             `json:"last_updated"`
	LastRefreshTime *time.Time            `json:"last_refresh_time,omitempty"`
}

type searchResponse struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Region   string `json:"region,omitempty"`
	Currency string `json:"currency,omitempty"`
}

func toSearchResponseList(results []alphavantage.SearchResult) []searchResponse {
	resp := make([]searchResponse, len(results))
	for i, m := range results {
		resp[i] = searchResponse{
			Symbol:   m.Symbol,
			Name:     m.Name,
			Region:   m.Region,
			Currency: m.Currency,
		}
	}

	return resp
}

func toResponse(tx *portfolio.Transaction) transactionResponse {
	return transactionResponse{
		ID:        tx.ID,
		Symbol:    tx.Symbol,
		Name:      tx.Name,
		Kind:      tx.Kind,
		Quantity:  tx.Quantity,
		Price:     tx.Price,
		Date:      tx.Date,
		Currency:  tx.Currency,
		Exchange:  tx.Exchange,
		Notes:     tx.Notes,
		CreatedAt: tx.CreatedAt,
		UpdatedAt: tx.UpdatedAt,
	}
}

func toResponseList(txs []*portfolio.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}

func toHoldingResponse(h portfolio.Holding) holdingResponse {
	return holdingResponse{
		Symbol:            h.Symbol,
		Name:              h.Name,
		Quantity:          h.Quantity,
		AverageCost:       h.AverageCost,
		LastTradedPrice:   h.LastTradedPrice,
		CurrentValue:      h.CurrentValue,
		ProfitLoss:        h.ProfitLoss,
		ProfitLossPercent: h.ProfitLossPercent,
		DayChange:         h.DayChange,
		DayChangePercent:  h.DayChangePercent,
		Currency:          h.Currency,
		Exchange:          h.Exchange,
		TransactionIDs:    h.TransactionIDs,
	}
}

func toSnapshotResponse(snap *portfolio.Snapshot) snapshotResponse {
	resp := snapshotResponse{
		Holdings:     make([]holdingResponse, len(snap.Holdings)),
		Transactions: toResponseList(snap.Transactions),
		Metrics: metricsResponse{
			TotalValue:              snap.Metrics.TotalValue,
			TotalCost:               snap.Metrics.TotalCost,
			TotalGainLoss:           snap.Metrics.TotalGainLoss,
			TotalGainLossPercentage: snap.Metrics.TotalGainLossPercentage,
			DayChange:               snap.Metrics.DayChange,
			DayChangePercentage:     snap.Metrics.DayChangePercentage,
		},
		LastUpdated:     snap.LastUpdated,
		LastRefreshTime: snap.LastRefreshTime,
	}

	for i, h := range snap.Holdings {
		resp.Holdings[i] = toHoldingResponse(h)
	}

	return resp
}
