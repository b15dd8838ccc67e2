package ratelimit

import "time"

// Limiter is a rate limiter
type Limiter interface {
	Allow(key string) bool
}

// Clock provides current time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// NopLimiter lets every request through.
type NopLimiter struct{}

func (NopLimiter) Allow(string) bool { return true }
