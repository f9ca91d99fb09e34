package price

import (
	"context"
	"errors"
	"time"
)

// Quote is a live market quote for one symbol.
type Quote struct {
	Symbol        string
	Price         float64
	Change        float64
	ChangePercent float64
	Currency      string
	Timestamp     time.Time
}

// Provider fetches a live quote for a symbol. Implementations are safe for
// concurrent use; the refresh orchestrator fans out one call per symbol.
type Provider interface {
	Quote(ctx context.Context, symbol string) (Quote, error)
}

var (
	ErrNotFound    = errors.New("price: symbol not found")
	ErrRateLimited = errors.New("price: upstream rate limit")
)

// Fallback chains two providers: the primary is tried first and the
// secondary only consulted when the primary fails. Used to put the
// Indian-market API in front of the general quote API.
type Fallback struct {
	Primary   Provider
	Secondary Provider
}

func (f Fallback) Quote(ctx context.Context, symbol string) (Quote, error) {
	q, err := f.Primary.Quote(ctx, symbol)
	if err == nil {
		return q, nil
	}

	if f.Secondary == nil {
		return Quote{}, err
	}

	return f.Secondary.Quote(ctx, symbol)
}
