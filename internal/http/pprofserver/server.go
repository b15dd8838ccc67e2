// Package pprofserver exposes runtime profiles on a separate debug listener.
package pprofserver

import (
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const realm = "dispatch-debug"

// Config stores debug endpoint credentials. Loopback callers skip the check.
type Config struct {
	User string
	Pass string
}

func (c Config) complete() bool { return c.User != "" && c.Pass != "" }

// Handler serves /debug/pprof and /debug/vars.
func Handler(cfg Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.NoCache)
	r.Use(localOr(guard(cfg)))
	r.Mount("/debug", middleware.Profiler())
	return r
}

// guard demands basic auth. Without configured credentials every remote call is refused.
func guard(cfg Config) func(http.Handler) http.Handler {
	if !cfg.complete() {
		return func(http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("WWW-Authenticate", `Basic realm="`+realm+`"`)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
			})
		}
	}
	return middleware.BasicAuth(realm, map[string]string{cfg.User: cfg.Pass})
}

// localOr lets loopback callers through and sends the rest to mw.
func localOr(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		remote := mw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isLoopback(r.RemoteAddr) {
				next.ServeHTTP(w, r)
				return
			}
			remote.ServeHTTP(w, r)
		})
	}
}

func isLoopback(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	ip := net.ParseIP(strings.TrimSpace(host))
	return ip != nil && ip.IsLoopback()
}
