package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/onion2907/nivesh/internal/importer"
	"github.com/onion2907/nivesh/internal/portfolio"
)

type Handler struct {
	importSvc *importer.Service
	ledgerSvc *portfolio.Service
}

func NewHandler(importSvc *importer.Service, ledgerSvc *portfolio.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		ledgerSvc: ledgerSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type transactionResponse struct {
	ID       uuid.UUID      `json:"id"`
	Symbol   string         `json:"symbol"`
	Kind     portfolio.Kind `json:"kind"`
	Quantity float64        `json:"quantity"`
	Price    float64        `json:"price"`
	Date     time.Time      `json:"date"`
}

type importSuccessResponse struct {
	Imported     int                   `json:"imported"`
	Transactions []transactionResponse `json:"transactions"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	broker := importer.Broker(r.FormValue("broker"))
	if broker == "" {
		http.Error(w, "broker field is required", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(broker, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	txs, err := h.ledgerSvc.CreateBatch(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := importSuccessResponse{
		Imported:     len(txs),
		Transactions: make([]transactionResponse, 0, len(txs)),
	}

	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, transactionResponse{
			ID:       tx.ID,
			Symbol:   tx.Symbol,
			Kind:     tx.Kind,
			Quantity: tx.Quantity,
			Price:    tx.Price,
			Date:     tx.Date,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
