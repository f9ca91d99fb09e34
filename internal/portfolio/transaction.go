package portfolio

import (
	"time"

	"github.com/google/uuid"
)

// Kind tells whether a transaction added to or reduced a position.
type Kind string

const (
	KindBuy  Kind = "BUY"
	KindSell Kind = "SELL"
)

// Transaction is one buy or sell event recorded in the ledger. Transactions
// are the source of truth for stock positions; holdings are always derived
// from them and never edited directly.
type Transaction struct {
	ID        uuid.UUID
	Symbol    string
	Name      string
	Kind      Kind
	Quantity  float64
	Price     float64
	Date      time.Time
	Currency  string
	Exchange  string
	Notes     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
