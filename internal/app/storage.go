package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"service-dispatch/internal/config"
	"service-dispatch/internal/domain"
	"service-dispatch/internal/http/handlers"
	"service-dispatch/internal/logx"
	"service-dispatch/internal/repository"
	"service-dispatch/internal/repository/memory"
	"service-dispatch/internal/repository/redisloc"
	"service-dispatch/internal/service/location"
)

type deliveryStore interface {
	Create(ctx context.Context, d *domain.Delivery) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Delivery, error)
	Accept(ctx context.Context, id, driverID uuid.UUID, at time.Time) (*domain.Delivery, error)
	UpdateStatus(ctx context.Context, t domain.Transition) (*domain.Delivery, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, p domain.Page) (domain.DeliveryPage, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID, p domain.Page) (domain.DeliveryPage, error)
	ListAll(ctx context.Context, p domain.Page) (domain.DeliveryPage, error)
	ActiveDeliveryIDs(ctx context.Context, driverID uuid.UUID) ([]uuid.UUID, error)
}

type userResolver interface {
	Resolve(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// stores holds the selected persistence backends.
type stores struct {
	Deliveries deliveryStore
	Locations  location.Store
	// Users is nil in memory mode.
	Users userResolver

	pool  *pgxpool.Pool
	redis redis.UniversalClient
}

// Close releases pool and client connections.
func (s *stores) Close() error {
	var err error
	if s.redis != nil {
		err = s.redis.Close()
	}
	if s.pool != nil {
		s.pool.Close()
	}
	return err
}

// checks probes the external backends; memory mode has none.
func (s *stores) checks() map[string]handlers.Check {
	out := make(map[string]handlers.Check, 2)
	if s.pool != nil {
		out["postgres"] = s.pool.Ping
	}
	if s.redis != nil {
		rdb := s.redis
		out["redis"] = func(ctx context.Context) error { return pingRedis(ctx, rdb) }
	}
	return out
}

var pingRedis = func(ctx context.Context, rdb redis.UniversalClient) error {
	return rdb.Ping(ctx).Err()
}

func newStores(ctx context.Context, cfg *config.Config, logger logx.Logger, connect dbConnectFunc) (*stores, error) {
	if cfg.LocationStore == config.StoreMemory {
		logger.Warn("using in-memory storage, data is lost on restart")
		return &stores{
			Deliveries: memory.NewDeliveryStore(),
			Locations:  memory.NewLocationStore(),
		}, nil
	}

	var rdb redis.UniversalClient
	if cfg.LocationStore == config.StoreRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := pingRedis(pingCtx, client)
		cancel()
		if err != nil {
			return nil, errors.Join(fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err), client.Close())
		}
		rdb = client
	}

	pool, err := connect(ctx, logger, cfg.DB.DSN(), cfg.DB.MaxConns, 10, time.Second)
	if err != nil {
		if rdb != nil {
			_ = rdb.Close()
		}
		return nil, err
	}
	s := &stores{
		Deliveries: repository.NewDeliveryRepo(pool),
		Locations:  repository.NewLocationRepo(pool),
		Users:      repository.NewUserRepo(pool),
		pool:       pool,
	}
	if rdb != nil {
		s.redis = rdb
		s.Locations = redisloc.NewStore(rdb, cfg.Redis.Prefix)
		logger.Info("driver locations stored in redis", logx.String("addr", cfg.Redis.Addr))
	}
	return s, nil
}
