package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"service-dispatch/internal/domain"
)

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewGatewayRetriesTotal returns a Prometheus counter for the number of retry attempts performed by the users gateway
func NewGatewayRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "users_gateway_retries_total",
		Help: "Total number of retry attempts performed by the users gateway",
	})
}

// NewNotifyFailuresTotal counts events that were persisted but could not be published.
func NewNotifyFailuresTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notify_failures_total",
		Help: "Total number of events that failed to publish",
	})
}

// NewAcceptConflictsTotal counts accept attempts lost to a concurrent accept.
func NewAcceptConflictsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "delivery_accept_conflicts_total",
		Help: "Total number of accept attempts that lost the race",
	})
}

// NewStaleLocationsExpiredTotal counts drivers flipped to unavailable by the sweeper.
func NewStaleLocationsExpiredTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "driver_locations_expired_total",
		Help: "Total number of drivers marked unavailable because their location went stale",
	})
}

// Transitions counts committed delivery status changes by edge.
type Transitions struct {
	vec *prometheus.CounterVec
}

func NewDeliveryTransitionsTotal() *Transitions {
	return &Transitions{vec: prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_transitions_total",
			Help: "Total number of committed delivery status transitions",
		},
		[]string{"from", "to"},
	)}
}

func (t *Transitions) Inc(from, to domain.DeliveryStatus) {
	t.vec.WithLabelValues(string(from), string(to)).Inc()
}

// Register adds the vector to reg. If an identical vector is already
// registered, t switches to it.
func (t *Transitions) Register(reg prometheus.Registerer) error {
	err := reg.Register(t.vec)
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if vec, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
			t.vec = vec
			return nil
		}
	}
	return err
}

// Collector exposes the underlying vector for registration.
func (t *Transitions) Collector() prometheus.Collector { return t.vec }

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
