package liability

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/onion2907/nivesh/internal/liability"
)

type Handler struct {
	svc *liability.Service
}

func NewHandler(svc *liability.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/metrics", h.metrics)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type liabilityRequest struct {
	Name           string             `json:"name"`
	Type           liability.Type     `json:"type"`
	Category       liability.Category `json:"category"`
	Term           liability.Term     `json:"term"`
	OriginalAmount float64            `json:"original_amount"`
	CurrentBalance float64            `json:"current_balance"`
	InterestRate   float64            `json:"interest_rate"`
	MonthlyPayment float64            `json:"monthly_payment"`
	StartDate      time.Time          `json:"start_date"`
	EndDate        *time.Time         `json:"end_date,omitempty"`
	Currency       string             `json:"currency"`
	Lender         string             `json:"lender,omitempty"`
	Description    string             `json:"description,omitempty"`
	Active         *bool              `json:"active,omitempty"`
}

type liabilityResponse struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name"`
	Type           liability.Type     `json:"type"`
	Category       liability.Category `json:"category"`
	Term           liability.Term     `json:"term"`
	OriginalAmount float64            `json:"original_amount"`
	CurrentBalance float64            `json:"current_balance"`
	InterestRate   float64            `json:"interest_rate"`
	MonthlyPayment float64            `json:"monthly_payment"`
	StartDate      time.Time          `json:"start_date"`
	EndDate        *time.Time         `json:"end_date,omitempty"`
	Currency       string             `json:"currency"`
	Lender         string             `json:"lender,omitempty"`
	Description    string             `json:"description,omitempty"`
	Active         bool               `json:"active"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      *time.Time         `json:"updated_at,omitempty"`
}

type metricsResponse struct {
	TotalLiabilities    float64 `json:"total_liabilities"`
	SecuredDebt         float64 `json:"secured_debt"`
	UnsecuredDebt       float64 `json:"unsecured_debt"`
	ShortTermDebt       float64 `json:"short_term_debt"`
	LongTermDebt        float64 `json:"long_term_debt"`
	TotalMonthlyPayment float64 `json:"total_monthly_payment"`
	AverageInterestRate float64 `json:"average_interest_rate"`
}

func toResponse(l *liability.Liability) liabilityResponse {
	return liabilityResponse{
		ID:             l.ID,
		Name:           l.Name,
		Type:           l.Type,
		Category:       l.Category,
		Term:           l.Term,
		OriginalAmount: l.OriginalAmount,
		CurrentBalance: l.CurrentBalance,
		InterestRate:   l.InterestRate,
		MonthlyPayment: l.MonthlyPayment,
		StartDate:      l.StartDate,
		EndDate:        l.EndDate,
		Currency:       l.Currency,
		Lender:         l.Lender,
		Description:    l.Description,
		Active:         l.Active,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req liabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	l, err := h.svc.Create(r.Context(), liability.CreateParams{
		Name:           req.Name,
		Type:           req.Type,
		Category:       req.Category,
		Term:           req.Term,
		OriginalAmount: req.OriginalAmount,
		CurrentBalance: req.CurrentBalance,
		InterestRate:   req.InterestRate,
		MonthlyPayment: req.MonthlyPayment,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Currency:       req.Currency,
		Lender:         req.Lender,
		Description:    req.Description,
	})
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusCreated, toResponse(l))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	liabilities, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]liabilityResponse, len(liabilities))
	for i := range liabilities {
		resp[i] = toResponse(&liabilities[i])
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) metrics(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Metrics(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, metricsResponse{
		TotalLiabilities:    m.TotalLiabilities,
		SecuredDebt:         m.SecuredDebt,
		UnsecuredDebt:       m.UnsecuredDebt,
		ShortTermDebt:       m.ShortTermDebt,
		LongTermDebt:        m.LongTermDebt,
		TotalMonthlyPayment: m.TotalMonthlyPayment,
		AverageInterestRate: m.AverageInterestRate,
	})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	l, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, liability.ErrNotFound) {
			http.Error(w, "liability not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(l))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	l, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, liability.ErrNotFound) {
			http.Error(w, "liability not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	var req liabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	l.Name = req.Name
	l.Type = req.Type
	l.Category = req.Category
	l.Term = req.Term
	l.OriginalAmount = req.OriginalAmount
	l.CurrentBalance = req.CurrentBalance
	l.InterestRate = req.InterestRate
	l.MonthlyPayment = req.MonthlyPayment
	l.StartDate = req.StartDate
	l.EndDate = req.EndDate
	l.Currency = req.Currency
	l.Lender = req.Lender
	l.Description = req.Description

	if req.Active != nil {
		l.Active = *req.Active
	}

	if err := h.svc.Update(r.Context(), l); err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(l))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, liability.ErrNotFound) {
			http.Error(w, "liability not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func isValidationError(err error) bool {
	return errors.Is(err, liability.ErrNegativeBalance) ||
		errors.Is(err, liability.ErrBalanceExceeds)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
