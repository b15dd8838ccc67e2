//go:generate mockgen -source=contracts.go -destination=delivery_mocks_test.go -package=delivery

package delivery

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"service-dispatch/internal/domain"
)

// deliveryRepository persists deliveries. Reads and conditional writes return
// nil, nil when the row is absent or its status no longer matches.
type deliveryRepository interface {
	Create(ctx context.Context, d *domain.Delivery) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Delivery, error)
	Accept(ctx context.Context, id, driverID uuid.UUID, at time.Time) (*domain.Delivery, error)
	UpdateStatus(ctx context.Context, t domain.Transition) (*domain.Delivery, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, p domain.Page) (domain.DeliveryPage, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID, p domain.Page) (domain.DeliveryPage, error)
	ListAll(ctx context.Context, p domain.Page) (domain.DeliveryPage, error)
}

type userResolver interface {
	Resolve(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type matcher interface {
	Announce(ctx context.Context, d domain.Delivery) (int, error)
	FindBestCandidate(ctx context.Context, pickupLat, pickupLon, maxDistanceKm float64) (domain.Candidate, error)
	Offer(ctx context.Context, d domain.Delivery, c domain.Candidate) error
}

type locator interface {
	GetLocation(ctx context.Context, driverID uuid.UUID) (*domain.DriverLocation, bool)
}

type fareSplitter interface {
	Split(total decimal.Decimal) (domain.FareResult, error)
}

type publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

type counter interface {
	Inc()
}

type transitionCounter interface {
	Inc(from, to domain.DeliveryStatus)
}
