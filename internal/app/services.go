package app

import (
	"errors"
	"time"

	"go.uber.org/dig"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"service-dispatch/internal/config"
	"service-dispatch/internal/gateway/users"
	"service-dispatch/internal/logx"
	"service-dispatch/internal/notify"
	"service-dispatch/internal/repository/memory"
	"service-dispatch/internal/service/delivery"
	"service-dispatch/internal/service/location"
	"service-dispatch/internal/service/matching"
	"service-dispatch/internal/service/pricing"
)

type usersConnCloser func() error

var dialUsers = func(addr string) (*grpc.ClientConn, error) {
	return grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

var errNoUsersSource = errors.New("no users source: set USERS_GRPC_ADDR or MEMORY_USERS")

// provideUsers prefers the users gRPC service, then the users table, then the
// directory seeded from MEMORY_USERS.
func provideUsers(cfg *config.Config, st *stores, m metricsIn, logger logx.Logger) (userResolver, usersConnCloser, error) {
	if cfg.UsersGateway.Addr == "" {
		if st.Users != nil {
			return st.Users, func() error { return nil }, nil
		}
		if len(cfg.SeedUsers) == 0 {
			return nil, nil, errNoUsersSource
		}
		logger.Info("users resolved from seeded directory", logx.Int("users", len(cfg.SeedUsers)))
		return memory.NewUserDirectory(cfg.SeedUsers...), func() error { return nil }, nil
	}

	conn, err := dialUsers(cfg.UsersGateway.Addr)
	if err != nil {
		return nil, nil, err
	}
	gw := users.NewRetryingGateway(users.NewGRPCGateway(conn), logger, m.GatewayRetriesTotal, users.RetryConfig{
		MaxAttempts: cfg.UsersGateway.MaxAttempts,
		BaseDelay:   cfg.UsersGateway.BaseDelay,
		MaxDelay:    cfg.UsersGateway.MaxDelay,
	})
	logger.Info("users resolved over grpc", logx.String("addr", cfg.UsersGateway.Addr))
	return gw, conn.Close, nil
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config) time.Duration { return cfg.OperationTimeout },
		func(cfg *config.Config) (*pricing.Engine, error) {
			return pricing.NewEngine(cfg.Pricing)
		},
		func(
			st *stores,
			pub notify.Notifier,
			m metricsIn,
			timeout time.Duration,
			logger logx.Logger,
		) *location.Registry {
			return location.NewRegistry(st.Locations, st.Deliveries, pub, m.NotifyFailuresTotal, timeout, logger)
		},
		func(
			cfg *config.Config,
			reg *location.Registry,
			resolver userResolver,
			pub notify.Notifier,
			m metricsIn,
			timeout time.Duration,
			logger logx.Logger,
		) *matching.Engine {
			return matching.NewEngine(reg, resolver, pub, m.NotifyFailuresTotal,
				matching.Config{Freshness: cfg.Matching.Freshness}, timeout, logger)
		},
		func(
			cfg *config.Config,
			st *stores,
			resolver userResolver,
			engine *matching.Engine,
			reg *location.Registry,
			fares *pricing.Engine,
			pub notify.Notifier,
			m metricsIn,
			logger logx.Logger,
		) *delivery.Service {
			return delivery.NewService(st.Deliveries, resolver, engine, reg, fares, pub,
				delivery.Config{
					OperationTimeout:       cfg.OperationTimeout,
					MaxCandidateDistanceKm: cfg.Matching.MaxDistanceKm,
				},
				delivery.Metrics{
					NotifyFailures:  m.NotifyFailuresTotal,
					AcceptConflicts: m.AcceptConflictsTotal,
					Transitions:     m.Transitions,
				},
				logger,
			)
		},
	)
}
