// Package export writes the transaction ledger out as CSV. The column
// layout mirrors the tradebook format the importer accepts, so an export
// can be re-imported into an empty ledger.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/onion2907/nivesh/internal/portfolio"
)

var header = []string{"symbol", "name", "trade_type", "quantity", "price", "trade_date", "currency", "exchange", "notes"}

// TransactionLister supplies the ledger in persisted order.
type TransactionLister interface {
	List(ctx context.Context) ([]*portfolio.Transaction, error)
}

type Service struct {
	transactions TransactionLister
}

func NewService(transactions TransactionLister) *Service {
	return &Service{transactions: transactions}
}

// Export writes the full ledger to w as CSV, one row per transaction,
// in ledger order.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	txs, err := s.transactions.List(ctx)
	if err != nil {
		return fmt.Errorf("listing transactions: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, tx := range txs {
		row := []string{
			tx.Symbol,
			tx.Name,
			tradeType(tx.Kind),
			strconv.FormatFloat(tx.Quantity, 'f', -1, 64),
			strconv.FormatFloat(tx.Price, 'f', -1, 64),
			tx.Date.Format("2006-01-02"),
			tx.Currency,
			tx.Exchange,
			tx.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing transaction %s: %w", tx.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return nil
}

func tradeType(k portfolio.Kind) string {
	if k == portfolio.KindSell {
		return "sell"
	}
	return "buy"
}
