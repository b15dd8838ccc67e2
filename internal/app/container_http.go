package app

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/dig"

	"service-dispatch/internal/config"
	"service-dispatch/internal/http/handlers"
	"service-dispatch/internal/http/middleware/auth"
	"service-dispatch/internal/http/middleware/ratelimit"
	"service-dispatch/internal/http/pprofserver"
	"service-dispatch/internal/http/router"
	"service-dispatch/internal/logx"
	"service-dispatch/internal/service/delivery"
	"service-dispatch/internal/service/location"
	"service-dispatch/internal/service/matching"
	"service-dispatch/internal/service/pricing"
	"service-dispatch/internal/transport/ws"
)

type routerIn struct {
	dig.In

	Base       *handlers.Handlers
	Deliveries *handlers.DeliveryHandler
	Drivers    *handlers.DriverHandler
	Dispatch   *handlers.DispatchHandler
	Hub        *ws.Hub
	Verifier   *auth.Verifier
	RateLimit  *ratelimit.Middleware
	Logger     logx.Logger
}

type pprofServerOut struct {
	dig.Out
	Server *http.Server `name:"pprof_server"`
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Deps{
		Base:       in.Base,
		Deliveries: in.Deliveries,
		Drivers:    in.Drivers,
		Dispatch:   in.Dispatch,
		Stream:     in.Hub,
		Verifier:   in.Verifier,
		RateLimit:  in.RateLimit,
		Logger:     in.Logger,
	})
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	// nil when disabled
	pprofProvider := func(cfg *config.Config) pprofServerOut {
		if !cfg.Debug.Enabled {
			return pprofServerOut{}
		}
		return pprofServerOut{Server: &http.Server{
			Addr:              cfg.Debug.Addr,
			Handler:           pprofserver.Handler(pprofserver.Config{User: cfg.Debug.User, Pass: cfg.Debug.Pass}),
			ReadHeaderTimeout: 5 * time.Second,
		}}
	}
	baseProvider := func(logger logx.Logger, st *stores) *handlers.Handlers {
		h := handlers.New(logger)
		for name, check := range st.checks() {
			h.WithCheck(name, check)
		}
		return h
	}
	return provideAll(container,
		baseProvider,
		func(logger logx.Logger, svc *delivery.Service) *handlers.DeliveryHandler {
			return handlers.NewDeliveryHandler(logger, svc)
		},
		func(logger logx.Logger, reg *location.Registry) *handlers.DriverHandler {
			return handlers.NewDriverHandler(logger, reg)
		},
		func(cfg *config.Config, logger logx.Logger, engine *matching.Engine, fares *pricing.Engine) *handlers.DispatchHandler {
			return handlers.NewDispatchHandler(logger, engine, fares, cfg.Matching.MaxDistanceKm)
		},
		func(cfg *config.Config) (*auth.Verifier, error) {
			return auth.NewVerifier(cfg.Auth.JWTSecret)
		},
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		serverProvider,
		pprofProvider,
	)
}
