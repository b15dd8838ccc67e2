package delivery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
	"service-dispatch/internal/logx"
)

// CreateInput is a customer's delivery request.
type CreateInput struct {
	CustomerID      uuid.UUID
	PickupAddress   string
	DeliveryAddress string
	Price           decimal.Decimal
	Description     string
	PickupPoint     *domain.Point
	// EstimatedMinutes, when set, stamps EstimatedDeliveryTime relative to creation.
	EstimatedMinutes *int
	Policy           AssignmentPolicy
}

func validateCreate(in *CreateInput) error {
	in.PickupAddress = strings.TrimSpace(in.PickupAddress)
	in.DeliveryAddress = strings.TrimSpace(in.DeliveryAddress)
	in.Description = strings.TrimSpace(in.Description)

	if in.PickupAddress == "" {
		return apperr.Invalid("pickup_address", "must not be blank")
	}
	if in.DeliveryAddress == "" {
		return apperr.Invalid("delivery_address", "must not be blank")
	}
	if !in.Price.IsPositive() {
		return apperr.Invalid("price", "must be greater than zero")
	}
	if !in.Price.Equal(in.Price.Round(2)) {
		return apperr.Invalid("price", "must have at most 2 decimal places")
	}
	if in.PickupPoint != nil && !in.PickupPoint.Valid() {
		return apperr.Invalid("pickup_point", "coordinates out of range")
	}
	if in.EstimatedMinutes != nil && *in.EstimatedMinutes < 0 {
		return apperr.Invalid("estimated_minutes", "must not be negative")
	}
	if !in.Policy.Valid() {
		return apperr.Invalid("policy", fmt.Sprintf("unknown assignment policy %q", in.Policy))
	}
	if in.Policy == "" {
		in.Policy = PolicyBroadcast
	}
	if in.Policy == PolicyNearest && in.PickupPoint == nil {
		return apperr.Invalid("pickup_point", "is required for the nearest policy")
	}
	return nil
}

// Create stores a new PENDING delivery for the customer and then hands it to
// matching. Matching failures are logged; the delivery stays PENDING.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Delivery, error) {
	if err := validateCreate(&in); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.resolveRole(ctx, in.CustomerID, domain.RoleCustomer); err != nil {
		return nil, err
	}

	now := s.now()
	d := &domain.Delivery{
		ID:              uuid.New(),
		CustomerID:      in.CustomerID,
		PickupAddress:   in.PickupAddress,
		DeliveryAddress: in.DeliveryAddress,
		PickupPoint:     in.PickupPoint,
		Price:           in.Price,
		Status:          domain.StatusPending,
		Description:     in.Description,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if in.EstimatedMinutes != nil {
		eta := now.Add(time.Duration(*in.EstimatedMinutes) * time.Minute)
		d.EstimatedDeliveryTime = &eta
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}

	s.logger.Info("delivery created",
		logx.Event("delivery_created"),
		logx.ID("delivery_id", d.ID),
		logx.ID("customer_id", d.CustomerID),
		logx.String("price", d.Price.StringFixed(2)),
		logx.String("policy", string(in.Policy)),
	)

	s.publish(ctx, domain.UserDeliveriesTopic(d.CustomerID), statusEvent(d, "", nil))
	s.dispatch(ctx, *d, in.Policy)

	return d, nil
}

func (s *Service) dispatch(ctx context.Context, d domain.Delivery, policy AssignmentPolicy) {
	if s.matching == nil {
		return
	}

	if policy != PolicyNearest {
		if _, err := s.matching.Announce(ctx, d); err != nil {
			s.logger.Warn("announce failed",
				logx.ID("delivery_id", d.ID),
				logx.Err(err),
			)
		}
		return
	}

	c, err := s.matching.FindBestCandidate(ctx, d.PickupPoint.Lat, d.PickupPoint.Lon, s.maxDistanceKm)
	if err != nil {
		s.logger.Warn("no candidate for delivery",
			logx.Event("candidate_not_found"),
			logx.ID("delivery_id", d.ID),
			logx.Err(err),
		)
		return
	}
	if err := s.matching.Offer(ctx, d, c); err != nil {
		s.logger.Warn("offer failed",
			logx.ID("delivery_id", d.ID),
			logx.ID("driver_id", c.Location.DriverID),
			logx.Err(err),
		)
	}
}
