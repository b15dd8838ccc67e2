package delivery

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
)

func normalizePage(p domain.Page) (domain.Page, error) {
	if p.Limit < 0 {
		return p, apperr.Invalid("limit", "must not be negative")
	}
	if p.Offset < 0 {
		return p, apperr.Invalid("offset", "must not be negative")
	}
	if p.Limit == 0 {
		p.Limit = defaultPageLimit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
	return p, nil
}

// ListForUser pages through the deliveries visible to the user: drivers see
// assigned jobs, customers see their requests, admins see everything.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID, p domain.Page) (domain.DeliveryPage, error) {
	p, err := normalizePage(p)
	if err != nil {
		return domain.DeliveryPage{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	u, err := s.users.Resolve(ctx, userID)
	if err != nil {
		return domain.DeliveryPage{}, fmt.Errorf("resolve user: %w", err)
	}
	if u == nil {
		return domain.DeliveryPage{}, apperr.NotFound("user", userID)
	}
	if !u.Active {
		return domain.DeliveryPage{}, apperr.Forbidden(userID, "user is not active")
	}

	var page domain.DeliveryPage
	switch u.Role {
	case domain.RoleDriver:
		page, err = s.repo.ListByDriver(ctx, userID, p)
	case domain.RoleCustomer:
		page, err = s.repo.ListByCustomer(ctx, userID, p)
	case domain.RoleAdmin:
		page, err = s.repo.ListAll(ctx, p)
	default:
		return domain.DeliveryPage{}, apperr.Forbidden(userID, fmt.Sprintf("role %q may not list deliveries", u.Role))
	}
	if err != nil {
		return domain.DeliveryPage{}, fmt.Errorf("list deliveries: %w", err)
	}
	if page.Items == nil {
		page.Items = []domain.Delivery{}
	}
	return page, nil
}

// Get returns the delivery with its driver's last known location, if any.
func (s *Service) Get(ctx context.Context, deliveryID uuid.UUID) (*domain.DeliveryView, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.repo.Get(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	if d == nil {
		return nil, apperr.NotFound("delivery", deliveryID)
	}

	view := &domain.DeliveryView{Delivery: *d}
	if d.DriverID != nil && s.locations != nil {
		if loc, ok := s.locations.GetLocation(ctx, *d.DriverID); ok {
			view.DriverLocation = loc
		}
	}
	return view, nil
}
