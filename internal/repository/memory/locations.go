// Package memory holds mutex-guarded stores for single-process deployments and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"service-dispatch/internal/domain"
)

// LocationStore keeps driver locations in a map keyed by driver.
type LocationStore struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]domain.DriverLocation
}

// NewLocationStore returns an empty LocationStore.
func NewLocationStore() *LocationStore {
	return &LocationStore{byID: make(map[uuid.UUID]domain.DriverLocation)}
}

// Upsert writes the report, keeping the availability flag of an existing record.
func (s *LocationStore) Upsert(_ context.Context, r domain.LocationReport, at time.Time) (*domain.DriverLocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loc, ok := s.byID[r.DriverID]
	if !ok {
		loc = domain.DriverLocation{DriverID: r.DriverID, Available: true}
	}
	loc.Latitude = r.Latitude
	loc.Longitude = r.Longitude
	loc.Speed = copyFloat(r.Speed)
	loc.Heading = copyFloat(r.Heading)
	loc.UpdatedAt = at
	s.byID[r.DriverID] = loc

	return cloneLocation(loc), nil
}

// SetAvailability returns nil, nil when the driver has never reported.
func (s *LocationStore) SetAvailability(_ context.Context, driverID uuid.UUID, available bool) (*domain.DriverLocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loc, ok := s.byID[driverID]
	if !ok {
		return nil, nil
	}
	loc.Available = available
	s.byID[driverID] = loc
	return cloneLocation(loc), nil
}

// Get returns nil, nil when the driver has never reported.
func (s *LocationStore) Get(_ context.Context, driverID uuid.UUID) (*domain.DriverLocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	loc, ok := s.byID[driverID]
	if !ok {
		return nil, nil
	}
	return cloneLocation(loc), nil
}

// ListAvailable returns available records ordered by last update.
func (s *LocationStore) ListAvailable(_ context.Context) ([]domain.DriverLocation, error) {
	s.mu.RLock()
	out := make([]domain.DriverLocation, 0, len(s.byID))
	for _, loc := range s.byID {
		if loc.Available {
			out = append(out, *cloneLocation(loc))
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.Before(out[j].UpdatedAt) })
	return out, nil
}

// ExpireStale marks available records written before the cutoff unavailable.
func (s *LocationStore) ExpireStale(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, loc := range s.byID {
		if loc.Available && loc.UpdatedAt.Before(before) {
			loc.Available = false
			s.byID[id] = loc
			n++
		}
	}
	return n, nil
}

func cloneLocation(l domain.DriverLocation) *domain.DriverLocation {
	l.Speed = copyFloat(l.Speed)
	l.Heading = copyFloat(l.Heading)
	return &l
}

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
