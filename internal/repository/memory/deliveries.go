package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
)

// DeliveryStore keeps deliveries in memory. Status writes are compare-and-swap
// on the current status under a single mutex.
type DeliveryStore struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]domain.Delivery
}

// NewDeliveryStore returns an empty DeliveryStore.
func NewDeliveryStore() *DeliveryStore {
	return &DeliveryStore{byID: make(map[uuid.UUID]domain.Delivery)}
}

// Create stores a new delivery.
func (s *DeliveryStore) Create(_ context.Context, d *domain.Delivery) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[d.ID]; ok {
		return apperr.ErrConflict
	}
	s.byID[d.ID] = cloneDelivery(*d)
	return nil
}

// Get returns nil, nil when the delivery does not exist.
func (s *DeliveryStore) Get(_ context.Context, id uuid.UUID) (*domain.Delivery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	out := cloneDelivery(d)
	return &out, nil
}

// Accept binds the driver if the delivery is still PENDING. It returns nil, nil
// when the delivery is missing or no longer PENDING.
func (s *DeliveryStore) Accept(_ context.Context, id, driverID uuid.UUID, at time.Time) (*domain.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.byID[id]
	if !ok || d.Status != domain.StatusPending {
		return nil, nil
	}
	drv := driverID
	d.DriverID = &drv
	d.Status = domain.StatusDriverAssigned
	d.UpdatedAt = at
	s.byID[id] = d

	out := cloneDelivery(d)
	return &out, nil
}

// UpdateStatus applies t if the delivery is still in t.From. It returns nil, nil
// when the delivery is missing or its status has moved on.
func (s *DeliveryStore) UpdateStatus(_ context.Context, t domain.Transition) (*domain.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.byID[t.DeliveryID]
	if !ok || d.Status != t.From {
		return nil, nil
	}
	d.Status = t.To
	d.UpdatedAt = t.At
	at := t.At
	switch t.To {
	case domain.StatusPickedUp:
		d.PickedUpAt = &at
	case domain.StatusDelivered:
		d.DeliveredAt = &at
	}
	s.byID[t.DeliveryID] = d

	out := cloneDelivery(d)
	return &out, nil
}

// ListByCustomer pages through deliveries requested by the customer.
func (s *DeliveryStore) ListByCustomer(_ context.Context, customerID uuid.UUID, p domain.Page) (domain.DeliveryPage, error) {
	return s.list(p, func(d domain.Delivery) bool { return d.CustomerID == customerID }), nil
}

// ListByDriver pages through deliveries assigned to the driver.
func (s *DeliveryStore) ListByDriver(_ context.Context, driverID uuid.UUID, p domain.Page) (domain.DeliveryPage, error) {
	return s.list(p, func(d domain.Delivery) bool { return d.AssignedTo(driverID) }), nil
}

// ListAll pages through every delivery.
func (s *DeliveryStore) ListAll(_ context.Context, p domain.Page) (domain.DeliveryPage, error) {
	return s.list(p, func(domain.Delivery) bool { return true }), nil
}

// ActiveDeliveryIDs returns deliveries the driver is currently working on.
func (s *DeliveryStore) ActiveDeliveryIDs(_ context.Context, driverID uuid.UUID) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []uuid.UUID
	for id, d := range s.byID {
		if d.AssignedTo(driverID) && !d.Status.Terminal() {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// list returns matches newest first.
func (s *DeliveryStore) list(p domain.Page, match func(domain.Delivery) bool) domain.DeliveryPage {
	s.mu.RLock()
	all := make([]domain.Delivery, 0)
	for _, d := range s.byID {
		if match(d) {
			all = append(all, cloneDelivery(d))
		}
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID.String() < all[j].ID.String()
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	page := domain.DeliveryPage{Total: int64(len(all)), Limit: p.Limit, Offset: p.Offset}
	if p.Offset >= len(all) {
		page.Items = []domain.Delivery{}
		return page
	}
	end := len(all)
	if p.Limit > 0 && p.Offset+p.Limit < end {
		end = p.Offset + p.Limit
	}
	page.Items = all[p.Offset:end]
	return page
}

func cloneDelivery(d domain.Delivery) domain.Delivery {
	if d.DriverID != nil {
		v := *d.DriverID
		d.DriverID = &v
	}
	if d.PickupPoint != nil {
		v := *d.PickupPoint
		d.PickupPoint = &v
	}
	d.PickedUpAt = copyTime(d.PickedUpAt)
	d.DeliveredAt = copyTime(d.DeliveredAt)
	d.EstimatedDeliveryTime = copyTime(d.EstimatedDeliveryTime)
	return d
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
