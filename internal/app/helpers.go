package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"service-dispatch/internal/logx"
	"service-dispatch/internal/repository"
)

var newPool = func(ctx context.Context, dsn string, maxConns int32) (*pgxpool.Pool, error) {
	return repository.NewPool(ctx, dsn, maxConns)
}

type dbConnectFunc func(ctx context.Context, logger logx.Logger, dsn string, maxConns int32, retries int, delay time.Duration) (*pgxpool.Pool, error)

func connectDbWithRetry(
	ctx context.Context,
	logger logx.Logger,
	dsn string,
	maxConns int32,
	retries int,
	delay time.Duration,
) (*pgxpool.Pool, error) {
	var lastErr error
	const attemptTimeout = 3 * time.Second
	for i := 1; i <= retries; i++ {
		retriesCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		pool, err := newPool(retriesCtx, dsn, maxConns)
		cancel()
		if err == nil {
			logger.Info("db connected", logx.Int("attempt", i))
			return pool, nil
		}
		lastErr = err
		logger.Warn("db connect failed",
			logx.Int("attempt", i),
			logx.Int("retries", retries),
			logx.Err(err),
		)
		if i < retries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return nil, fmt.Errorf("db connect failed after %d attempts: %w", retries, lastErr)
}
