// Package jobs holds periodic background work run by the worker process.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"service-dispatch/internal/logx"
)

type expirer interface {
	ExpireStale(ctx context.Context, olderThan time.Duration) (int64, error)
}

type adder interface {
	Add(float64)
}

// StaleSweeper periodically flips drivers that stopped reporting to unavailable.
type StaleSweeper struct {
	registry  expirer
	spec      string
	olderThan time.Duration
	expired   adder
	cron      *cron.Cron
	logger    logx.Logger
}

// NewStaleSweeper creates a sweeper. spec is a cron expression with a seconds
// field or a descriptor such as "@every 30s". expired may be nil.
func NewStaleSweeper(registry expirer, spec string, olderThan time.Duration, expired adder, logger logx.Logger) *StaleSweeper {
	if logger == nil {
		logger = logx.Nop()
	}
	return &StaleSweeper{
		registry:  registry,
		spec:      spec,
		olderThan: olderThan,
		expired:   expired,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With(logx.String("component", "stale_sweeper")),
	}
}

// RunOnce performs a single sweep and returns the number of expired records.
func (s *StaleSweeper) RunOnce(ctx context.Context) (int64, error) {
	n, err := s.registry.ExpireStale(ctx, s.olderThan)
	if err != nil {
		return 0, err
	}
	if s.expired != nil && n > 0 {
		s.expired.Add(float64(n))
	}
	return n, nil
}

// Start schedules the sweep. Runs never overlap; a slow sweep skips the next tick.
func (s *StaleSweeper) Start(ctx context.Context) error {
	job := cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(cron.FuncJob(func() {
		if _, err := s.RunOnce(ctx); err != nil {
			s.logger.Error("stale sweep failed", logx.Err(err))
		}
	}))
	if _, err := s.cron.AddJob(s.spec, job); err != nil {
		return fmt.Errorf("schedule stale sweeper %q: %w", s.spec, err)
	}
	s.cron.Start()
	s.logger.Info("stale sweeper started",
		logx.String("spec", s.spec),
		logx.Duration("older_than", s.olderThan),
	)
	return nil
}

// Stop halts scheduling and waits for a running sweep to finish.
func (s *StaleSweeper) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("stale sweeper stopped")
}

// Run starts the sweeper and blocks until ctx is done.
func (s *StaleSweeper) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	s.Stop()
	return ctx.Err()
}
