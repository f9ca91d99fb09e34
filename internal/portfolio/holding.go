package portfolio

import (
	"time"

	"github.com/google/uuid"
)

// Holding is the current aggregated position for one symbol. It has no
// existence apart from the transactions that produce it: every ledger
// mutation recomputes the full holdings set from scratch.
type Holding struct {
	Symbol            string
	Name              string
	Quantity          float64
	AverageCost       float64
	LastTradedPrice   float64
	CurrentValue      float64
	ProfitLoss        float64
	ProfitLossPercent float64
	DayChange         float64
	DayChangePercent  float64
	Currency          string
	Exchange          string

	// TransactionIDs is a read-only back-reference to the ledger entries
	// that contributed to this position.
	TransactionIDs []uuid.UUID
}

// Snapshot is the persisted portfolio container: the ledger plus the derived
// holdings and metrics cached at the time of the last recomputation.
type Snapshot struct {
	Holdings        []Holding
	Transactions    []*Transaction
	Metrics         Metrics
	LastUpdated     time.Time
	LastRefreshTime *time.Time
}
