package balancesheet

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/onion2907/nivesh/internal/balancesheet"
)

type Handler struct {
	svc *balancesheet.Service
}

func NewHandler(svc *balancesheet.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.compose)
}

type assetsResponse struct {
	Stocks     float64 `json:"stocks"`
	Cash       float64 `json:"cash"`
	MiscAssets float64 `json:"misc_assets"`
	Other      float64 `json:"other"`
	Total      float64 `json:"total"`
}

type liabilitiesResponse struct {
	Loans       float64 `json:"loans"`
	CreditCards float64 `json:"credit_cards"`
	Payables    float64 `json:"payables"`
	Other       float64 `json:"other"`
	Total       float64 `json:"total"`
}

type portfolioMetricsResponse struct {
	TotalValue              float64 `json:"total_value"`
	TotalCost               float64 `json:"total_cost"`
	TotalGainLoss           float64 `json:"total_gain_loss"`
	TotalGainLossPercentage float64 `json:"total_gain_loss_percentage"`
	DayChange               float64 `json:"day_change"`
	DayChangePercentage     float64 `json:"day_change_percentage"`
}

type liabilityMetricsResponse struct {
	TotalLiabilities    float64 `json:"total_liabilities"`
	SecuredDebt         float64 `json:"secured_debt"`
	UnsecuredDebt       float64 `json:"unsecured_debt"`
	ShortTermDebt       float64 `json:"short_term_debt"`
	LongTermDebt        float64 `json:"long_term_debt"`
	TotalMonthlyPayment float64 `json:"total_monthly_payment"`
	AverageInterestRate float64 `json:"average_interest_rate"`
}

type balanceSheetResponse struct {
	Assets           assetsResponse           `json:"assets"`
	Liabilities      liabilitiesResponse      `json:"liabilities"`
	NetWorth         float64                  `json:"net_worth"`
	PortfolioMetrics portfolioMetricsResponse `json:"portfolio_metrics"`
	LiabilityMetrics liabilityMetricsResponse `json:"liability_metrics"`
	GeneratedAt      time.Time                `json:"generated_at"`
}

func toResponse(sheet balancesheet.BalanceSheet) balanceSheetResponse {
	return balanceSheetResponse{
		Assets: assetsResponse{
			Stocks:     sheet.Assets.Stocks,
			Cash:       sheet.Assets.Cash,
			MiscAssets: sheet.Assets.MiscAssets,
			Other:      sheet.Assets.Other,
			Total:      sheet.Assets.Total,
		},
		Liabilities: liabilitiesResponse{
			Loans:       sheet.Liabilities.Loans,
			CreditCards: sheet.Liabilities.CreditCards,
			Payables:    sheet.Liabilities.Payables,
			Other:       sheet.Liabilities.Other,
			Total:       sheet.Liabilities.Total,
		},
		NetWorth: sheet.NetWorth,
		PortfolioMetrics: portfolioMetricsResponse{
			TotalValue:              sheet.PortfolioMetrics.TotalValue,
			TotalCost:               sheet.PortfolioMetrics.TotalCost,
			TotalGainLoss:           sheet.PortfolioMetrics.TotalGainLoss,
			TotalGainLossPercentage: sheet.PortfolioMetrics.TotalGainLossPercentage,
			DayChange:               sheet.PortfolioMetrics.DayChange,
			DayChangePercentage:     sheet.PortfolioMetrics.DayChangePercentage,
		},
		LiabilityMetrics: liabilityMetricsResponse{
			TotalLiabilities:    sheet.LiabilityMetrics.TotalLiabilities,
			SecuredDebt:         sheet.LiabilityMetrics.SecuredDebt,
			UnsecuredDebt:       sheet.LiabilityMetrics.UnsecuredDebt,
			ShortTermDebt:       sheet.LiabilityMetrics.ShortTermDebt,
			LongTermDebt:        sheet.LiabilityMetrics.LongTermDebt,
			TotalMonthlyPayment: sheet.LiabilityMetrics.TotalMonthlyPayment,
			AverageInterestRate: sheet.LiabilityMetrics.AverageInterestRate,
		},
		GeneratedAt: sheet.GeneratedAt,
	}
}

func (h *Handler) compose(w http.ResponseWriter, r *http.Request) {
	sheet, err := h.svc.Compose(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(sheet)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
