package portfolio

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/onion2907/nivesh/internal/portfolio"
	"github.com/onion2907/nivesh/internal/price/alphavantage"
	"github.com/onion2907/nivesh/internal/refresh"
)

// SymbolSearcher finds ticker symbols matching free-text keywords.
type SymbolSearcher interface {
	Search(ctx context.Context, keywords string) ([]alphavantage.SearchResult, error)
}

type Handler struct {
	svc          *portfolio.Service
	orchestrator *refresh.Orchestrator
	searcher     SymbolSearcher
}

func NewHandler(svc *portfolio.Service, orchestrator *refresh.Orchestrator, searcher SymbolSearcher) *Handler {
	return &Handler{svc: svc, orchestrator: orchestrator, searcher: searcher}
}

// TransactionRoutes mounts the ledger CRUD endpoints.
func (h *Handler) TransactionRoutes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

// PortfolioRoutes mounts the derived portfolio view and refresh trigger.
func (h *Handler) PortfolioRoutes(r chi.Router) {
	r.Get("/", h.portfolio)
	r.Post("/refresh", h.refresh)
}

// SymbolRoutes mounts the ticker symbol lookup used by the add-transaction
// form.
func (h *Handler) SymbolRoutes(r chi.Router) {
	r.Get("/search", h.searchSymbols)
}

type transactionRequest struct {
	Symbol   string         `json:"symbol"`
	Name     string         `json:"name"`
	Kind     portfolio.Kind `json:"kind"`
	Quantity float64        `json:"quantity"`
	Price    float64        `json:"price"`
	Date     time.Time      `json:"date"`
	Currency string         `json:"currency"`
	Exchange string         `json:"exchange"`
	Notes    string         `json:"notes"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Create(r.Context(), portfolio.CreateParams{
		Symbol:   req.Symbol,
		Name:     req.Name,
		Kind:     req.Kind,
		Quantity: req.Quantity,
		Price:    req.Price,
		Date:     req.Date,
		Currency: req.Currency,
		Exchange: req.Exchange,
		Notes:    req.Notes,
	})
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusCreated, toResponse(tx))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(txs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, portfolio.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(tx))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, portfolio.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx.Symbol = req.Symbol
	tx.Name = req.Name
	tx.Kind = req.Kind
	tx.Quantity = req.Quantity
	tx.Price = req.Price
	tx.Date = req.Date
	tx.Currency = req.Currency
	tx.Exchange = req.Exchange
	tx.Notes = req.Notes

	if err := h.svc.Update(r.Context(), tx); err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(tx))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, portfolio.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) portfolio(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Portfolio(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toSnapshotResponse(snap))
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	holdings, metrics := h.orchestrator.Refresh(r.Context(), txs)

	snap, err := h.svc.SaveRefreshed(r.Context(), holdings, metrics)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toSnapshotResponse(snap))
}

func (h *Handler) searchSymbols(w http.ResponseWriter, r *http.Request) {
	keywords := r.URL.Query().Get("query")
	if keywords == "" {
		http.Error(w, "missing query parameter", http.StatusBadRequest)
		return
	}

	results, err := h.searcher.Search(r.Context(), keywords)
	if err != nil {
		http.Error(w, "symbol search unavailable", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, toSearchResponseList(results))
}

func isValidationError(err error) bool {
	return errors.Is(err, portfolio.ErrInvalidKind) ||
		errors.Is(err, portfolio.ErrInvalidQuantity) ||
		errors.Is(err, portfolio.ErrInvalidPrice)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
