package refresh

import (
	"context"
	"fmt"
	"time"

	"github.com/onion2907/nivesh/internal/portfolio"
)

// Ledger is the slice of the portfolio service the job needs.
type Ledger interface {
	List(ctx context.Context) ([]*portfolio.Transaction, error)
	SaveRefreshed(ctx context.Context, holdings []portfolio.Holding, metrics portfolio.Metrics) (*portfolio.Snapshot, error)
}

// Job refreshes the portfolio on a schedule.
type Job struct {
	orchestrator *Orchestrator
	ledger       Ledger
	timeout      time.Duration
}

func NewJob(orchestrator *Orchestrator, ledger Ledger, timeout time.Duration) *Job {
	return &Job{
		orchestrator: orchestrator,
		ledger:       ledger,
		timeout:      timeout,
	}
}

func (j *Job) Name() string { return "portfolio-refresh" }

func (j *Job) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	txs, err := j.ledger.List(ctx)
	if err != nil {
		return fmt.Errorf("listing transactions: %w", err)
	}
	if len(txs) == 0 {
		return nil
	}

	holdings, metrics := j.orchestrator.Refresh(ctx, txs)

	if _, err := j.ledger.SaveRefreshed(ctx, holdings, metrics); err != nil {
		return fmt.Errorf("saving refreshed snapshot: %w", err)
	}

	return nil
}
