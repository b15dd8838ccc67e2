//go:generate mockgen -source=contracts.go -destination=location_mocks_test.go -package=location

package location

import (
	"context"
	"time"

	"github.com/google/uuid"

	"service-dispatch/internal/domain"
)

// Store persists one live location record per driver.
// Reads return nil, nil when the driver has no record.
type Store interface {
	// Upsert writes coordinates and refreshes the timestamp; availability is kept,
	// and a new record starts available.
	Upsert(ctx context.Context, r domain.LocationReport, at time.Time) (*domain.DriverLocation, error)
	// SetAvailability returns nil, nil when the driver has no record.
	SetAvailability(ctx context.Context, driverID uuid.UUID, available bool) (*domain.DriverLocation, error)
	Get(ctx context.Context, driverID uuid.UUID) (*domain.DriverLocation, error)
	ListAvailable(ctx context.Context) ([]domain.DriverLocation, error)
	// ExpireStale marks available records written before the cutoff unavailable.
	ExpireStale(ctx context.Context, before time.Time) (int64, error)
}

type activeDeliveries interface {
	ActiveDeliveryIDs(ctx context.Context, driverID uuid.UUID) ([]uuid.UUID, error)
}

type publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

type counter interface {
	Inc()
}
