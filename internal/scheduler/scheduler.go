// Package scheduler runs background jobs on cron schedules, used for
// unattended portfolio price refreshes.
package scheduler

import (
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Job is a named unit of background work.
type Job interface {
	Name() string
	Run() error
}

type Scheduler struct {
	cron *cron.Cron
}

func New() *Scheduler {
	return &Scheduler{cron: cron.New()}
}

// AddJob registers job on the given cron schedule. Standard 5-field
// expressions and descriptors like "@hourly" or "@every 15m" are
// accepted.
func (s *Scheduler) AddJob(schedule string, job Job) error {
	_, err := s.cron.AddFunc(schedule, func() {
		if err := job.Run(); err != nil {
			slog.Error("scheduled job failed", "job", job.Name(), "error", err)
			return
		}
		slog.Debug("scheduled job completed", "job", job.Name())
	})
	if err != nil {
		return fmt.Errorf("registering job %s: %w", job.Name(), err)
	}

	slog.Info("scheduled job registered", "job", job.Name(), "schedule", schedule)
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("scheduler started")
}

// Stop halts the schedule and waits for any running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("scheduler stopped")
}
