package ratelimit

import (
	"strings"
	"sync"
	"time"
)

// Config stores TokenBucketLimiter settings.
type Config struct {
	Rate       float64       // tokens per second
	Burst      int           // bucket capacity
	TTL        time.Duration // idle buckets older than this are dropped, 0 keeps them
	MaxBuckets int           // 0 is unlimited
	// Scale multiplies Rate and Burst for keys of a class ("driver" in "driver:<id>").
	Scale map[string]float64
}

// PerWindow returns a Config allowing limit requests per window with a burst of limit.
func PerWindow(limit int, window time.Duration) Config {
	if window <= 0 {
		window = time.Second
	}
	if limit <= 0 {
		limit = 1
	}
	return Config{Rate: float64(limit) / window.Seconds(), Burst: limit}
}

type bucket struct {
	tokens float64
	last   time.Time
	rate   float64
	burst  float64
}

// take refills the bucket up to now and spends one token if there is one.
func (b *bucket) take(now time.Time) bool {
	if dt := now.Sub(b.last); dt > 0 {
		b.tokens = min(b.tokens+dt.Seconds()*b.rate, b.burst)
	}
	b.last = now
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// TokenBucketLimiter keeps one bucket per caller key.
type TokenBucketLimiter struct {
	cfg   Config
	clock Clock

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

// NewTokenBucketLimiter creates a limiter; clock may be nil.
func NewTokenBucketLimiter(clock Clock, cfg Config) *TokenBucketLimiter {
	if clock == nil {
		clock = realClock{}
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	cfg.Burst = max(cfg.Burst, 1)
	cfg.MaxBuckets = max(cfg.MaxBuckets, 0)
	return &TokenBucketLimiter{
		cfg:     cfg,
		clock:   clock,
		buckets: make(map[string]*bucket),
	}
}

// RetryAfter is the time one token takes to refill for an unscaled key.
func (l *TokenBucketLimiter) RetryAfter() time.Duration {
	return time.Duration(float64(time.Second) / l.cfg.Rate)
}

// Allow takes a token from key's bucket.
func (l *TokenBucketLimiter) Allow(key string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.evictIdle(now)

	b, ok := l.buckets[key]
	if !ok {
		if l.cfg.MaxBuckets > 0 && len(l.buckets) >= l.cfg.MaxBuckets {
			return false
		}
		b = l.newBucket(key, now)
		l.buckets[key] = b
	}
	return b.take(now)
}

func (l *TokenBucketLimiter) newBucket(key string, now time.Time) *bucket {
	f := 1.0
	if class, _, ok := strings.Cut(key, ":"); ok {
		if s, found := l.cfg.Scale[class]; found && s > 0 {
			f = s
		}
	}
	burst := max(float64(l.cfg.Burst)*f, 1)
	return &bucket{tokens: burst, last: now, rate: l.cfg.Rate * f, burst: burst}
}

// evictIdle runs at most once per max(TTL/2, 1m). Caller holds mu.
func (l *TokenBucketLimiter) evictIdle(now time.Time) {
	if l.cfg.TTL <= 0 {
		return
	}
	if !l.lastSweep.IsZero() && now.Sub(l.lastSweep) < max(l.cfg.TTL/2, time.Minute) {
		return
	}
	l.lastSweep = now

	for k, b := range l.buckets {
		if now.Sub(b.last) > l.cfg.TTL {
			delete(l.buckets, k)
		}
	}
}
