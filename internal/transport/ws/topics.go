package ws

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"service-dispatch/internal/domain"
	"service-dispatch/internal/http/middleware/auth"
)

var (
	errBadTopic  = errors.New("unknown topic")
	errForbidden = errors.New("topic not allowed")
)

// DeliveryGuard reports whether the caller may watch the delivery.
type DeliveryGuard func(ctx context.Context, who auth.Identity, deliveryID uuid.UUID) error

var suffixes = map[string]map[string]struct{}{
	"delivery": {"status": {}, "location": {}},
	"driver":   {"location": {}, "newDeliveryOffer": {}},
	"user":     {"deliveries": {}},
}

// authorize checks the topic shape and whether who may subscribe to it.
func authorize(ctx context.Context, who auth.Identity, topic string, guard DeliveryGuard) error {
	parts := strings.Split(topic, ".")
	if len(parts) != 3 {
		return errBadTopic
	}
	allowed, ok := suffixes[parts[0]]
	if !ok {
		return errBadTopic
	}
	if _, ok := allowed[parts[2]]; !ok {
		return errBadTopic
	}
	id, err := uuid.Parse(parts[1])
	if err != nil {
		return errBadTopic
	}

	if who.Role == domain.RoleAdmin {
		return nil
	}
	switch parts[0] {
	case "driver", "user":
		if id != who.UserID {
			return errForbidden
		}
		return nil
	default:
		if guard == nil {
			return nil
		}
		if err := guard(ctx, who, id); err != nil {
			return errForbidden
		}
		return nil
	}
}
