package app

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/dig"

	"service-dispatch/internal/jobs"
	"service-dispatch/internal/logx"
	"service-dispatch/internal/transport/kafka"
)

// WorkerRunner runs location ingestion and the stale sweeper.
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun blocks until the worker stops and panics on an unexpected error.
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

type workerIn struct {
	dig.In

	Ctx            context.Context
	Logger         logx.Logger
	Stores         *stores
	Consumer       *kafka.Consumer `optional:"true"`
	Sweeper        *jobs.StaleSweeper
	NotifiersClose notifiersCloser `optional:"true"`
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

type runnable interface {
	Run(ctx context.Context) error
}

func workerRun(in workerIn) error {
	if in.Sweeper == nil {
		return errors.New("stale sweeper is nil: worker container misconfigured")
	}
	defer closeWorker(in)

	tasks := []runnable{in.Sweeper}
	if in.Consumer != nil {
		tasks = append(tasks, in.Consumer)
	} else {
		in.Logger.Warn("kafka not configured, location ingestion disabled")
	}

	in.Logger.Info("service-dispatch-worker started", logx.Int("tasks", len(tasks)))
	return runAll(in.Ctx, tasks...)
}

// runAll runs every task until ctx is done or one of them fails; a failure
// stops the others. The first error is returned.
func runAll(ctx context.Context, tasks ...runnable) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	for _, t := range tasks {
		wg.Add(1)
		go func(t runnable) {
			defer wg.Done()
			if err := t.Run(ctx); err != nil {
				once.Do(func() { firstErr = err })
				cancel()
			}
		}(t)
	}
	wg.Wait()
	return firstErr
}

func closeWorker(in workerIn) {
	if in.Consumer != nil {
		if err := in.Consumer.Close(); err != nil {
			in.Logger.Error("kafka close error", logx.Err(err))
		}
	}
	closeResources(in.Logger, in.Stores, nil, in.NotifiersClose)
}
