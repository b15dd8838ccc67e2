package delivery

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
	"service-dispatch/internal/logx"
)

// Accept binds the driver to a PENDING delivery. Concurrent accepts are
// arbitrated by the store: exactly one wins and the rest get an invalid state error.
func (s *Service) Accept(ctx context.Context, deliveryID, driverID uuid.UUID) (*domain.Delivery, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.resolveRole(ctx, driverID, domain.RoleDriver); err != nil {
		return nil, err
	}

	d, err := s.repo.Accept(ctx, deliveryID, driverID, s.now())
	if err != nil {
		return nil, fmt.Errorf("accept delivery: %w", err)
	}
	if d == nil {
		cur, err := s.repo.Get(ctx, deliveryID)
		if err != nil {
			return nil, fmt.Errorf("get delivery: %w", err)
		}
		if cur == nil {
			return nil, apperr.NotFound("delivery", deliveryID)
		}
		if s.metrics.AcceptConflicts != nil {
			s.metrics.AcceptConflicts.Inc()
		}
		return nil, &apperr.StateError{
			DeliveryID: deliveryID.String(),
			Current:    cur.Status.String(),
			Reason:     "delivery no longer available",
		}
	}

	s.countTransition(domain.StatusPending, domain.StatusDriverAssigned)
	s.logger.Info("delivery accepted",
		logx.Event("delivery_accepted"),
		logx.ID("delivery_id", d.ID),
		logx.ID("driver_id", driverID),
	)
	s.emitStatus(ctx, d, domain.StatusPending, nil)

	return d, nil
}

// UpdateStatus moves a delivery along the state machine on behalf of its driver.
// A PENDING delivery has no driver yet: DRIVER_ASSIGNED is treated as Accept,
// and only the customer may cancel it.
func (s *Service) UpdateStatus(ctx context.Context, deliveryID, driverID uuid.UUID, next domain.DeliveryStatus) (*domain.Delivery, error) {
	if !next.Valid() {
		return nil, apperr.Invalid("status", fmt.Sprintf("unknown status %q", next))
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.repo.Get(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	if d == nil {
		return nil, apperr.NotFound("delivery", deliveryID)
	}

	if d.Status == domain.StatusPending {
		switch next {
		case domain.StatusDriverAssigned:
			return s.Accept(ctx, deliveryID, driverID)
		case domain.StatusCancelled:
			return nil, apperr.Forbidden(driverID, "only the customer can cancel an unassigned delivery")
		default:
			return nil, transitionError(d, next)
		}
	}

	if !d.AssignedTo(driverID) {
		return nil, apperr.Forbidden(driverID, "driver not assigned to this delivery")
	}
	if !d.Status.CanTransitionTo(next) {
		return nil, transitionError(d, next)
	}

	return s.apply(ctx, d, next)
}

// Cancel cancels a delivery on behalf of its customer or its assigned driver.
func (s *Service) Cancel(ctx context.Context, deliveryID, userID uuid.UUID) (*domain.Delivery, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.repo.Get(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	if d == nil {
		return nil, apperr.NotFound("delivery", deliveryID)
	}
	if d.CustomerID != userID && !d.AssignedTo(userID) {
		return nil, apperr.Forbidden(userID, "only the customer or the assigned driver can cancel")
	}
	if !d.Status.CanTransitionTo(domain.StatusCancelled) {
		return nil, transitionError(d, domain.StatusCancelled)
	}

	return s.apply(ctx, d, domain.StatusCancelled)
}

// apply writes the transition conditionally on d's current status and emits it.
func (s *Service) apply(ctx context.Context, d *domain.Delivery, next domain.DeliveryStatus) (*domain.Delivery, error) {
	from := d.Status
	updated, err := s.repo.UpdateStatus(ctx, domain.Transition{
		DeliveryID: d.ID,
		From:       from,
		To:         next,
		At:         s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("update delivery status: %w", err)
	}
	if updated == nil {
		// status moved underneath us; report against what is stored now
		cur, err := s.repo.Get(ctx, d.ID)
		if err != nil {
			return nil, fmt.Errorf("get delivery: %w", err)
		}
		if cur == nil {
			return nil, apperr.NotFound("delivery", d.ID)
		}
		return nil, transitionError(cur, next)
	}

	var fare *domain.FareResult
	if next == domain.StatusDelivered && s.fares != nil {
		res, err := s.fares.Split(updated.Price)
		if err != nil {
			s.logger.Error("fare split failed",
				logx.ID("delivery_id", updated.ID),
				logx.Err(err),
			)
		} else {
			fare = &res
		}
	}

	s.countTransition(from, next)
	fields := []logx.Field{
		logx.Event("delivery_status_changed"),
		logx.ID("delivery_id", updated.ID),
		logx.String("from", from.String()),
		logx.String("to", next.String()),
	}
	if fare != nil {
		fields = append(fields,
			logx.String("driver_amount", fare.DriverAmount.StringFixed(2)),
			logx.String("platform_fee", fare.PlatformFee.StringFixed(2)),
		)
	}
	s.logger.Info("delivery status changed", fields...)
	s.emitStatus(ctx, updated, from, fare)

	return updated, nil
}

func transitionError(d *domain.Delivery, to domain.DeliveryStatus) error {
	return &apperr.TransitionError{
		DeliveryID: d.ID.String(),
		From:       d.Status.String(),
		To:         to.String(),
	}
}
