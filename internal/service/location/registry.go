// Package location owns the live driver position and availability registry.
package location

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
	"service-dispatch/internal/logx"
)

// Registry is the single writer of driver location records.
type Registry struct {
	store            Store
	deliveries       activeDeliveries
	notifier         publisher
	notifyFailures   counter
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewRegistry creates a Registry. deliveries and notifyFailures may be nil.
func NewRegistry(
	store Store,
	deliveries activeDeliveries,
	notifier publisher,
	notifyFailures counter,
	timeout time.Duration,
	logger logx.Logger,
) *Registry {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Registry{
		store:            store,
		deliveries:       deliveries,
		notifier:         notifier,
		notifyFailures:   notifyFailures,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (r *Registry) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.operationTimeout)
}

func validateReport(rep domain.LocationReport) error {
	if rep.DriverID == uuid.Nil {
		return apperr.Invalid("driver_id", "is required")
	}
	if !domain.ValidLatitude(rep.Latitude) {
		return apperr.Invalid("latitude", "must be within [-90, 90]")
	}
	if !domain.ValidLongitude(rep.Longitude) {
		return apperr.Invalid("longitude", "must be within [-180, 180]")
	}
	if rep.Speed != nil && (math.IsNaN(*rep.Speed) || math.IsInf(*rep.Speed, 0) || *rep.Speed < 0) {
		return apperr.Invalid("speed", "must be a non-negative number")
	}
	if rep.Heading != nil && (math.IsNaN(*rep.Heading) || *rep.Heading < 0 || *rep.Heading >= 360) {
		return apperr.Invalid("heading", "must be within [0, 360)")
	}
	return nil
}

// ReportLocation upserts the driver's position. The record is stamped with the
// arrival time, so the last report to arrive wins.
func (r *Registry) ReportLocation(ctx context.Context, rep domain.LocationReport) (*domain.DriverLocation, error) {
	if err := validateReport(rep); err != nil {
		return nil, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	loc, err := r.store.Upsert(ctx, rep, r.now())
	if err != nil {
		return nil, fmt.Errorf("upsert location: %w", err)
	}

	ev := domain.LocationEvent{
		DriverID:  loc.DriverID,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Speed:     loc.Speed,
		Heading:   loc.Heading,
		At:        loc.UpdatedAt,
	}
	r.publish(ctx, domain.DriverLocationTopic(loc.DriverID), ev)

	if r.deliveries != nil {
		ids, err := r.deliveries.ActiveDeliveryIDs(ctx, loc.DriverID)
		if err != nil {
			r.logger.Warn("active deliveries lookup failed",
				logx.ID("driver_id", loc.DriverID),
				logx.Err(err),
			)
		}
		for _, id := range ids {
			dev := ev
			dev.DeliveryID = &id
			r.publish(ctx, domain.DeliveryLocationTopic(id), dev)
		}
	}

	return loc, nil
}

// SetAvailability flips the availability flag of an existing record.
func (r *Registry) SetAvailability(ctx context.Context, driverID uuid.UUID, available bool) (*domain.DriverLocation, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	loc, err := r.store.SetAvailability(ctx, driverID, available)
	if err != nil {
		return nil, fmt.Errorf("set availability: %w", err)
	}
	if loc == nil {
		return nil, apperr.NotFound("driver location", driverID)
	}

	r.logger.Info("driver availability changed",
		logx.Event("availability_changed"),
		logx.ID("driver_id", driverID),
		logx.Bool("available", available),
	)
	return loc, nil
}

// GetLocation returns the driver's record. Storage errors are logged and
// reported as absent.
func (r *Registry) GetLocation(ctx context.Context, driverID uuid.UUID) (*domain.DriverLocation, bool) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	loc, err := r.store.Get(ctx, driverID)
	if err != nil {
		r.logger.Warn("location lookup failed",
			logx.ID("driver_id", driverID),
			logx.Err(err),
		)
		return nil, false
	}
	if loc == nil {
		return nil, false
	}
	return loc, true
}

// ListAvailable returns every record flagged available, stale ones included.
func (r *Registry) ListAvailable(ctx context.Context) ([]domain.DriverLocation, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	out, err := r.store.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available: %w", err)
	}
	return out, nil
}

// ExpireStale marks drivers that have not reported for olderThan as unavailable.
func (r *Registry) ExpireStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, apperr.Invalid("older_than", "must be positive")
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	n, err := r.store.ExpireStale(ctx, r.now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("expire stale locations: %w", err)
	}
	if n > 0 {
		r.logger.Info("stale drivers marked unavailable",
			logx.Event("locations_expired"),
			logx.Int64("count", n),
		)
	}
	return n, nil
}

func (r *Registry) publish(ctx context.Context, topic string, payload any) {
	if r.notifier == nil {
		return
	}
	if err := r.notifier.Publish(ctx, topic, payload); err != nil {
		if r.notifyFailures != nil {
			r.notifyFailures.Inc()
		}
		r.logger.Error("notify failed",
			logx.Event("notify_failed"),
			logx.String("topic", topic),
			logx.Err(err),
		)
	}
}
