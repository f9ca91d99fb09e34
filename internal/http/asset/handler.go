package asset

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/onion2907/nivesh/internal/asset"
)

type Handler struct {
	svc *asset.Service
}

func NewHandler(svc *asset.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type assetRequest struct {
	Name         string          `json:"name"`
	Type         asset.Type      `json:"type"`
	Currency     string          `json:"currency"`
	Active       *bool           `json:"active,omitempty"`
	CurrentValue float64         `json:"current_value"`
	Detail       json.RawMessage `json:"detail,omitempty"`
}

type assetResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Type         asset.Type      `json:"type"`
	Currency     string          `json:"currency"`
	Active       bool            `json:"active"`
	CurrentValue float64         `json:"current_value"`
	LastUpdated  time.Time       `json:"last_updated"`
	Detail       json.RawMessage `json:"detail,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    *time.Time      `json:"updated_at,omitempty"`
}

func toResponse(a *asset.Asset) (assetResponse, error) {
	resp := assetResponse{
		ID:           a.ID,
		Name:         a.Name,
		Type:         a.Type,
		Currency:     a.Currency,
		Active:       a.Active,
		CurrentValue: a.CurrentValue,
		LastUpdated:  a.LastUpdated,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}

	if a.Detail != nil {
		raw, err := asset.MarshalDetail(a.Detail)
		if err != nil {
			return assetResponse{}, err
		}

		resp.Detail = raw
	}

	return resp, nil
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req assetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	detail, err := decodeDetail(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.svc.Create(r.Context(), asset.CreateParams{
		Name:         req.Name,
		Type:         req.Type,
		Currency:     req.Currency,
		CurrentValue: req.CurrentValue,
		Detail:       detail,
	})
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	writeAsset(w, http.StatusCreated, a)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	assets, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]assetResponse, 0, len(assets))

	for i := range assets {
		ar, err := toResponse(&assets[i])
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp = append(resp, ar)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, asset.ErrNotFound) {
			http.Error(w, "asset not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeAsset(w, http.StatusOK, a)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, asset.ErrNotFound) {
			http.Error(w, "asset not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	var req assetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	detail, err := decodeDetail(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a.Name = req.Name
	a.Type = req.Type
	a.Currency = req.Currency
	a.CurrentValue = req.CurrentValue
	a.Detail = detail

	if req.Active != nil {
		a.Active = *req.Active
	}

	if err := h.svc.Update(r.Context(), a); err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	writeAsset(w, http.StatusOK, a)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, asset.ErrNotFound) {
			http.Error(w, "asset not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeDetail(req assetRequest) (asset.Detail, error) {
	if len(req.Detail) == 0 {
		return nil, nil
	}

	return asset.UnmarshalDetail(req.Type, req.Detail)
}

func isValidationError(err error) bool {
	return errors.Is(err, asset.ErrNegativeValue) ||
		errors.Is(err, asset.ErrDetailMismatch) ||
		errors.Is(err, asset.ErrMissingWeight) ||
		errors.Is(err, asset.ErrUnknownType)
}

func writeAsset(w http.ResponseWriter, status int, a *asset.Asset) {
	resp, err := toResponse(a)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
