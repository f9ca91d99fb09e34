package scalars

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/onion2907/nivesh/internal/scalars"
)

type Handler struct {
	svc *scalars.Service
}

func NewHandler(svc *scalars.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{key}", h.get)
	r.Put("/{key}", h.set)
}

type scalarResponse struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

type setRequest struct {
	Value float64 `json:"value"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	value, err := h.svc.Get(r.Context(), key)
	if err != nil {
		if errors.Is(err, scalars.ErrUnknownKey) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	writeJSON(w, scalarResponse{Key: key, Value: value})
}

func (h *Handler) set(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var req setRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Set(r.Context(), key, req.Value); err != nil {
		if errors.Is(err, scalars.ErrUnknownKey) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		if errors.Is(err, scalars.ErrNegativeValue) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	writeJSON(w, scalarResponse{Key: key, Value: req.Value})
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
