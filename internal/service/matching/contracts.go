//go:generate mockgen -source=contracts.go -destination=matching_mocks_test.go -package=matching

package matching

import (
	"context"

	"github.com/google/uuid"

	"service-dispatch/internal/domain"
)

type locationSource interface {
	ListAvailable(ctx context.Context) ([]domain.DriverLocation, error)
}

// userResolver supplies driver ratings. Unknown users resolve to nil, nil.
type userResolver interface {
	Resolve(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

type counter interface {
	Inc()
}
