package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-dispatch/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal     prometheus.Counter `name:"rate_limit_exceeded_total"`
	GatewayRetriesTotal        prometheus.Counter `name:"users_gateway_retries_total"`
	NotifyFailuresTotal        prometheus.Counter `name:"notify_failures_total"`
	AcceptConflictsTotal       prometheus.Counter `name:"accept_conflicts_total"`
	StaleLocationsExpiredTotal prometheus.Counter `name:"stale_locations_expired_total"`
	Transitions                *metrics.Transitions
}

type metricsIn struct {
	dig.In

	GatewayRetriesTotal        prometheus.Counter `name:"users_gateway_retries_total"`
	NotifyFailuresTotal        prometheus.Counter `name:"notify_failures_total"`
	AcceptConflictsTotal       prometheus.Counter `name:"accept_conflicts_total"`
	StaleLocationsExpiredTotal prometheus.Counter `name:"stale_locations_expired_total"`
	Transitions                *metrics.Transitions
}

// provideMetrics registers the domain counters in the default registry.
// Counters registered earlier are reused.
func provideMetrics() (metricsOut, error) {
	var (
		out metricsOut
		err error
	)
	counters := []struct {
		name string
		dst  *prometheus.Counter
		c    prometheus.Counter
	}{
		{"rate_limit_exceeded_total", &out.RateLimitExceededTotal, metrics.NewRateLimitExceededTotal()},
		{"users_gateway_retries_total", &out.GatewayRetriesTotal, metrics.NewGatewayRetriesTotal()},
		{"notify_failures_total", &out.NotifyFailuresTotal, metrics.NewNotifyFailuresTotal()},
		{"accept_conflicts_total", &out.AcceptConflictsTotal, metrics.NewAcceptConflictsTotal()},
		{"stale_locations_expired_total", &out.StaleLocationsExpiredTotal, metrics.NewStaleLocationsExpiredTotal()},
	}
	for _, c := range counters {
		if *c.dst, err = registerCounter(c.c); err != nil {
			return metricsOut{}, fmt.Errorf("register %s: %w", c.name, err)
		}
	}

	out.Transitions = metrics.NewDeliveryTransitionsTotal()
	if err := out.Transitions.Register(prometheus.DefaultRegisterer); err != nil {
		return metricsOut{}, fmt.Errorf("register delivery_transitions_total: %w", err)
	}
	return out, nil
}

func registerCounter(c prometheus.Counter) (prometheus.Counter, error) {
	err := prometheus.DefaultRegisterer.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
			return existing, nil
		}
	}
	return nil, err
}
