package ratelimit

import (
	"io"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"service-dispatch/internal/http/middleware/auth"
	"service-dispatch/internal/logx"
)

// Middleware представляет собой middleware для ограничения количества запросов
type Middleware struct {
	logger     logx.Logger
	counter    prometheus.Counter
	limiter    Limiter
	retryAfter string
}

// New creates a Middleware. A limiter exposing RetryAfter sets the Retry-After header.
func New(logger logx.Logger, counter prometheus.Counter, limiter Limiter) *Middleware {
	if limiter == nil {
		limiter = NopLimiter{}
	}
	if logger == nil {
		logger = logx.Nop()
	}
	retry := "1"
	if ra, ok := limiter.(interface{ RetryAfter() time.Duration }); ok {
		retry = strconv.Itoa(int(math.Ceil(ra.RetryAfter().Seconds())))
	}
	return &Middleware{logger: logger, counter: counter, limiter: limiter, retryAfter: retry}
}

// Handler returns chi-style middleware.
func (m *Middleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := callerKey(r)
			if m.limiter.Allow(key) {
				next.ServeHTTP(w, r)
				return
			}

			if m.counter != nil {
				m.counter.Inc()
			}
			m.logger.Warn("rate limit exceeded",
				logx.String("caller", key),
				logx.String("method", r.Method),
				logx.String("path", r.URL.Path),
			)
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", m.retryAfter)
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := io.WriteString(w, `{"error":"too many requests"}`); err != nil {
				// клиент мог оборвать соединение
				m.logger.Debug("rate limit response write failed", logx.Err(err))
			}
		})
	}
}

// callerKey buckets authenticated callers by role and user, the rest by address.
func callerKey(r *http.Request) string {
	if id, ok := auth.FromContext(r.Context()); ok {
		return strings.ToLower(string(id.Role)) + ":" + id.UserID.String()
	}
	return "ip:" + clientIP(r)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
