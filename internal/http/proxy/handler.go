// Package proxy forwards price lookups the browser cannot make itself
// because of cross-origin restrictions. Upstream JSON is passed through
// verbatim.
package proxy

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/onion2907/nivesh/internal/price/metals"
)

type Handler struct {
	metals *metals.Client
}

func NewHandler(metalsClient *metals.Client) *Handler {
	return &Handler{metals: metalsClient}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/metal/{symbol}", h.metal)
	r.Get("/fx/usd-inr", h.usdINR)
}

func (h *Handler) metal(w http.ResponseWriter, r *http.Request) {
	var symbol string

	switch strings.ToLower(chi.URLParam(r, "symbol")) {
	case "gold", "xau":
		symbol = metals.SymbolGold
	case "silver", "xag":
		symbol = metals.SymbolSilver
	default:
		writeError(w, http.StatusNotFound, "unknown_metal")
		return
	}

	body, err := h.metals.RawSpot(r.Context(), symbol)
	if err != nil {
		slog.Warn("metal price upstream failed", "symbol", symbol, "error", err)
		writeError(w, http.StatusBadGateway, "metal_price_unavailable")

		return
	}

	writeUpstream(w, body)
}

func (h *Handler) usdINR(w http.ResponseWriter, r *http.Request) {
	body, err := h.metals.RawUSDINR(r.Context())
	if err != nil {
		slog.Warn("fx rate upstream failed", "error", err)
		writeError(w, http.StatusBadGateway, "fx_rate_unavailable")

		return
	}

	writeUpstream(w, body)
}

func writeUpstream(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")

	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, tag string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(map[string]string{"error": tag}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
