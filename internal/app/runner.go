package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"go.uber.org/dig"

	"service-dispatch/internal/logx"
	"service-dispatch/internal/transport/ws"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the HTTP service.
type Runner struct {
	runFn func(*dig.Container) error
}

// NewRunner returns a Runner bound to the default run loop.
func NewRunner() *Runner {
	return &Runner{runFn: run}
}

// MustRun starts the HTTP server using the provided DI container
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := containerLogger(container)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		log.Fatalf("run error: %v", err)
	}
}

func containerLogger(container *dig.Container) logx.Logger {
	logger := logx.Nop()
	_ = container.Invoke(func(l logx.Logger) { logger = l })
	return logger
}

type runIn struct {
	dig.In

	Ctx            context.Context
	Logger         logx.Logger
	Server         *http.Server
	Pprof          *http.Server `name:"pprof_server" optional:"true"`
	Hub            *ws.Hub      `optional:"true"`
	Stores         *stores
	UsersCloser    usersConnCloser `optional:"true"`
	NotifiersClose notifiersCloser `optional:"true"`
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

func appRun(in runIn) error {
	errCh := make(chan error, 2)
	startServer(in.Server, in.Logger, "service-dispatch", errCh)
	if in.Pprof != nil {
		startServer(in.Pprof, in.Logger, "pprof", errCh)
	}

	var runErr error
	select {
	case <-in.Ctx.Done():
		in.Logger.Info("shutting down service-dispatch")
		runErr = in.Ctx.Err()
	case err := <-errCh:
		runErr = err
	}

	gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
	if in.Pprof != nil {
		gracefulShutdown(in.Pprof, in.Logger, time.Second)
	}
	if in.Hub != nil {
		in.Hub.Close()
	}
	closeResources(in.Logger, in.Stores, in.UsersCloser, in.NotifiersClose)
	return runErr
}

func startServer(srv *http.Server, logger logx.Logger, name string, errCh chan<- error) {
	go func() {
		logger.Info("listening", logx.String("server", name), logx.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
	}
}

func closeResources(logger logx.Logger, st *stores, usersCloser usersConnCloser, notifiersClose notifiersCloser) {
	if notifiersClose != nil {
		if err := notifiersClose(); err != nil {
			logger.Error("notifiers close error", logx.Err(err))
		}
	}
	if usersCloser != nil {
		if err := usersCloser(); err != nil {
			logger.Error("users gateway close error", logx.Err(err))
		}
	}
	if st != nil {
		if err := st.Close(); err != nil {
			logger.Error("storage close error", logx.Err(err))
		}
	}
}
