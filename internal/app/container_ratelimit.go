package app

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-dispatch/internal/config"
	"service-dispatch/internal/domain"
	"service-dispatch/internal/http/middleware/ratelimit"
	"service-dispatch/internal/logx"
)

func newRateLimiter(cfg *config.Config) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return ratelimit.NopLimiter{}
	}
	lc := ratelimit.PerWindow(rl.Limit, rl.Window)
	lc.TTL = rl.TTL
	lc.MaxBuckets = rl.MaxBuckets
	// водители шлют координаты чаще остальных
	lc.Scale = map[string]float64{strings.ToLower(string(domain.RoleDriver)): rl.DriverFactor}
	return ratelimit.NewTokenBucketLimiter(nil, lc)
}

type rateLimitIn struct {
	dig.In
	Logger  logx.Logger
	Counter prometheus.Counter `name:"rate_limit_exceeded_total"`
	Limiter ratelimit.Limiter
}

func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	return ratelimit.New(in.Logger, in.Counter, in.Limiter)
}
