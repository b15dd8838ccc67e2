package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"service-dispatch/internal/http/handlers"
	mw "service-dispatch/internal/http/middleware"
	"service-dispatch/internal/http/middleware/auth"
	"service-dispatch/internal/http/middleware/ratelimit"
	"service-dispatch/internal/logx"
	"service-dispatch/internal/metrics"
)

const requestTimeout = 5 * time.Second

// Deps groups everything the router mounts.
type Deps struct {
	Base       *handlers.Handlers
	Deliveries *handlers.DeliveryHandler
	Drivers    *handlers.DriverHandler
	Dispatch   *handlers.DispatchHandler
	// Stream serves GET /ws. Nil disables the endpoint.
	Stream    http.Handler
	Verifier  *auth.Verifier
	RateLimit *ratelimit.Middleware
	Logger    logx.Logger
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	if d.Logger == nil {
		d.Logger = logx.Nop()
	}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.Observability(d.Logger))
	r.Use(middleware.Recoverer)

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.NotFound(d.Base.NotFound)
	r.MethodNotAllowed(d.Base.MethodNotAllowed)

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(d.Verifier, d.Logger))
		if d.RateLimit != nil {
			r.Use(d.RateLimit.Handler())
		}

		if d.Stream != nil {
			r.Method(http.MethodGet, "/ws", d.Stream)
		}

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(requestTimeout))

			r.Route("/deliveries", func(r chi.Router) {
				r.Post("/", d.Deliveries.Create)
				r.Get("/", d.Deliveries.List)
				r.Get("/{id}", d.Deliveries.Get)
				r.Post("/{id}/accept", d.Deliveries.Accept)
				r.Patch("/{id}/status", d.Deliveries.UpdateStatus)
				r.Post("/{id}/cancel", d.Deliveries.Cancel)
			})

			r.Route("/drivers", func(r chi.Router) {
				r.Put("/me/location", d.Drivers.ReportLocation)
				r.Put("/me/availability", d.Drivers.SetAvailability)
				r.Get("/available", d.Drivers.ListAvailable)
				r.Get("/{id}/location", d.Drivers.GetLocation)
			})

			r.Get("/matching/candidate", d.Dispatch.Candidate)
			r.Post("/fares/quote", d.Dispatch.Quote)
		})
	})

	return r
}
