// Package matching finds drivers for pending deliveries.
//
// Two policies are supported. Announce fans an offer out to every fresh
// available driver and lets the first accept win. FindBestCandidate with Offer
// picks a single driver by distance to the pickup point.
package matching

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
	"service-dispatch/internal/logx"
)

// Config tunes candidate selection.
type Config struct {
	// Freshness is the maximum age of a location record used for matching.
	// Zero disables the filter.
	Freshness time.Duration
}

// Engine reads the location registry and publishes offers.
type Engine struct {
	locations        locationSource
	users            userResolver
	notifier         publisher
	notifyFailures   counter
	cfg              Config
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewEngine creates a matching Engine. users and notifyFailures may be nil.
func NewEngine(
	locations locationSource,
	users userResolver,
	notifier publisher,
	notifyFailures counter,
	cfg Config,
	timeout time.Duration,
	logger logx.Logger,
) *Engine {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Engine{
		locations:        locations,
		users:            users,
		notifier:         notifier,
		notifyFailures:   notifyFailures,
		cfg:              cfg,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (e *Engine) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, e.operationTimeout)
}

func (e *Engine) freshAvailable(ctx context.Context) ([]domain.DriverLocation, error) {
	all, err := e.locations.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available drivers: %w", err)
	}
	now := e.now()
	out := make([]domain.DriverLocation, 0, len(all))
	for _, loc := range all {
		if loc.Available && loc.FreshAt(now, e.cfg.Freshness) {
			out = append(out, loc)
		}
	}
	return out, nil
}

// Announce offers the delivery to every fresh available driver and returns how
// many offers were published. A failed publish is logged and skipped.
func (e *Engine) Announce(ctx context.Context, d domain.Delivery) (int, error) {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	drivers, err := e.freshAvailable(ctx)
	if err != nil {
		return 0, err
	}

	ev := newOffer(d, nil, e.now())
	notified := 0
	for _, loc := range drivers {
		if err := e.notifier.Publish(ctx, domain.DriverOfferTopic(loc.DriverID), ev); err != nil {
			e.notifyFailed(domain.DriverOfferTopic(loc.DriverID), err)
			continue
		}
		notified++
	}

	e.logger.Info("delivery announced",
		logx.Event("delivery_announced"),
		logx.ID("delivery_id", d.ID),
		logx.Int("candidates", len(drivers)),
		logx.Int("notified", notified),
	)
	return notified, nil
}

// FindBestCandidate returns the nearest fresh available driver within maxDistanceKm
// of the pickup point. Ties go to the higher rating, then to the earlier update.
func (e *Engine) FindBestCandidate(ctx context.Context, pickupLat, pickupLon, maxDistanceKm float64) (domain.Candidate, error) {
	pickup := domain.Point{Lat: pickupLat, Lon: pickupLon}
	if !pickup.Valid() {
		return domain.Candidate{}, apperr.Invalid("pickup", "coordinates out of range")
	}
	if math.IsNaN(maxDistanceKm) || maxDistanceKm <= 0 {
		return domain.Candidate{}, apperr.Invalid("max_distance_km", "must be positive")
	}

	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	drivers, err := e.freshAvailable(ctx)
	if err != nil {
		return domain.Candidate{}, err
	}
	if len(drivers) == 0 {
		return domain.Candidate{}, apperr.ErrNoDriversAvailable
	}

	candidates := make([]domain.Candidate, 0, len(drivers))
	for _, loc := range drivers {
		dist := pickup.DistanceKm(loc.Point())
		if dist > maxDistanceKm {
			continue
		}
		candidates = append(candidates, domain.Candidate{
			Location:   loc,
			DistanceKm: dist,
			Rating:     e.rating(ctx, loc),
		})
	}
	if len(candidates) == 0 {
		return domain.Candidate{}, apperr.ErrNoCandidateFound
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.DistanceKm != b.DistanceKm {
			return a.DistanceKm < b.DistanceKm
		}
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		return a.Location.UpdatedAt.Before(b.Location.UpdatedAt)
	})
	return candidates[0], nil
}

// Offer publishes a single offer to the chosen candidate.
func (e *Engine) Offer(ctx context.Context, d domain.Delivery, c domain.Candidate) error {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	topic := domain.DriverOfferTopic(c.Location.DriverID)
	dist := c.DistanceKm
	if err := e.notifier.Publish(ctx, topic, newOffer(d, &dist, e.now())); err != nil {
		e.notifyFailed(topic, err)
		return fmt.Errorf("publish offer: %w", err)
	}

	e.logger.Info("delivery offered",
		logx.Event("delivery_offered"),
		logx.ID("delivery_id", d.ID),
		logx.ID("driver_id", c.Location.DriverID),
		logx.Float64("distance_km", c.DistanceKm),
	)
	return nil
}

// rating degrades to zero when the user service cannot answer.
func (e *Engine) rating(ctx context.Context, loc domain.DriverLocation) float64 {
	if e.users == nil {
		return 0
	}
	u, err := e.users.Resolve(ctx, loc.DriverID)
	if err != nil {
		e.logger.Warn("driver rating lookup failed",
			logx.ID("driver_id", loc.DriverID),
			logx.Err(err),
		)
		return 0
	}
	if u == nil {
		return 0
	}
	return u.Rating
}

func (e *Engine) notifyFailed(topic string, err error) {
	if e.notifyFailures != nil {
		e.notifyFailures.Inc()
	}
	e.logger.Error("notify failed",
		logx.Event("notify_failed"),
		logx.String("topic", topic),
		logx.Err(err),
	)
}

func newOffer(d domain.Delivery, dist *float64, at time.Time) domain.OfferEvent {
	return domain.OfferEvent{
		DeliveryID:      d.ID,
		PickupAddress:   d.PickupAddress,
		DeliveryAddress: d.DeliveryAddress,
		Price:           d.Price.StringFixed(2),
		DistanceKm:      dist,
		At:              at,
	}
}
