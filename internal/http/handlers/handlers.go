package handlers

import (
	"context"
	"net/http"
	"time"

	"service-dispatch/internal/logx"
)

const checkTimeout = 2 * time.Second

// Check probes one dependency, e.g. Postgres or Redis.
type Check func(ctx context.Context) error

type namedCheck struct {
	name string
	fn   Check
}

// Handlers serves the ambient endpoints.
type Handlers struct {
	Logger logx.Logger
	checks []namedCheck
}

// New creates a Handlers instance; a nil logger is replaced with a no-op one.
func New(logger logx.Logger) *Handlers {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Handlers{Logger: logger}
}

// WithCheck adds a dependency probe to the healthcheck.
func (h *Handlers) WithCheck(name string, fn Check) *Handlers {
	if fn != nil {
		h.checks = append(h.checks, namedCheck{name: name, fn: fn})
	}
	return h
}

// Ping handles GET /ping and returns 200 with {"message":"pong"}.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, map[string]string{"message": "pong"})
}

// HealthcheckHead handles HEAD /healthcheck: 204 when every probe passes, 503 otherwise.
func (h *Handlers) HealthcheckHead(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	for _, c := range h.checks {
		if err := c.fn(ctx); err != nil {
			h.Logger.Warn("healthcheck failed", logx.String("check", c.name), logx.Err(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// NotFound returns a JSON 404 error for unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusNotFound, "route not found")
}

// MethodNotAllowed returns a JSON 405 error.
func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusMethodNotAllowed, "method not allowed")
}
