package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-dispatch/internal/domain"
	"service-dispatch/internal/http/handlers"
	"service-dispatch/internal/http/middleware/auth"
	"service-dispatch/internal/http/middleware/ratelimit"
	"service-dispatch/internal/http/router"
)

type env struct {
	h        http.Handler
	verifier *auth.Verifier
}

func newEnv(t *testing.T, rl *ratelimit.Middleware) env {
	t.Helper()

	v, err := auth.NewVerifier("router-test-secret")
	require.NoError(t, err)

	stream := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	h := router.New(router.Deps{
		Base:       handlers.New(nil),
		Deliveries: handlers.NewDeliveryHandler(nil, nil),
		Drivers:    handlers.NewDriverHandler(nil, nil),
		Dispatch:   handlers.NewDispatchHandler(nil, nil, nil, 10),
		Stream:     stream,
		Verifier:   v,
		RateLimit:  rl,
	})
	return env{h: h, verifier: v}
}

func (e env) do(t *testing.T, method, target, body string, role domain.Role) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if role != "" {
		tok, err := e.verifier.Issue(uuid.New(), role, time.Minute)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	rr := httptest.NewRecorder()
	e.h.ServeHTTP(rr, req)
	return rr
}

func TestRouter_PublicRoutes(t *testing.T) {
	t.Parallel()

	e := newEnv(t, nil)

	assert.Equal(t, http.StatusOK, e.do(t, http.MethodGet, "/ping", "", "").Code)
	assert.Equal(t, http.StatusNoContent, e.do(t, http.MethodHead, "/healthcheck", "", "").Code)
	assert.Equal(t, http.StatusOK, e.do(t, http.MethodGet, "/metrics", "", "").Code)

	rr := e.do(t, http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"route not found"}`, rr.Body.String())

	assert.Equal(t, http.StatusMethodNotAllowed, e.do(t, http.MethodPost, "/ping", "", "").Code)
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	t.Parallel()

	e := newEnv(t, nil)
	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/deliveries"},
		{http.MethodGet, "/deliveries"},
		{http.MethodGet, "/deliveries/" + uuid.NewString()},
		{http.MethodPost, "/deliveries/" + uuid.NewString() + "/accept"},
		{http.MethodPatch, "/deliveries/" + uuid.NewString() + "/status"},
		{http.MethodPost, "/deliveries/" + uuid.NewString() + "/cancel"},
		{http.MethodPut, "/drivers/me/location"},
		{http.MethodPut, "/drivers/me/availability"},
		{http.MethodGet, "/drivers/available"},
		{http.MethodGet, "/drivers/" + uuid.NewString() + "/location"},
		{http.MethodGet, "/matching/candidate"},
		{http.MethodPost, "/fares/quote"},
		{http.MethodGet, "/ws"},
	} {
		rr := e.do(t, tc.method, tc.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRouter_RoutesReachHandlers(t *testing.T) {
	t.Parallel()

	e := newEnv(t, nil)

	// Each request fails inside the handler before any use case is called.
	assert.Equal(t, http.StatusBadRequest, e.do(t, http.MethodPost, "/deliveries", "{", domain.RoleCustomer).Code)
	assert.Equal(t, http.StatusBadRequest, e.do(t, http.MethodGet, "/deliveries?limit=x", "", domain.RoleCustomer).Code)
	assert.Equal(t, http.StatusBadRequest, e.do(t, http.MethodGet, "/deliveries/not-a-uuid", "", domain.RoleCustomer).Code)
	assert.Equal(t, http.StatusBadRequest, e.do(t, http.MethodPatch, "/deliveries/"+uuid.NewString()+"/status", `{"status":"LOST"}`, domain.RoleDriver).Code)
	assert.Equal(t, http.StatusForbidden, e.do(t, http.MethodPut, "/drivers/me/location", `{"latitude":1,"longitude":1}`, domain.RoleCustomer).Code)
	assert.Equal(t, http.StatusBadRequest, e.do(t, http.MethodGet, "/drivers/x/location", "", domain.RoleAdmin).Code)
	assert.Equal(t, http.StatusBadRequest, e.do(t, http.MethodGet, "/matching/candidate?lon=1", "", domain.RoleAdmin).Code)
	assert.Equal(t, http.StatusBadRequest, e.do(t, http.MethodPost, "/fares/quote", "[]", domain.RoleAdmin).Code)
	assert.Equal(t, http.StatusTeapot, e.do(t, http.MethodGet, "/ws", "", domain.RoleCustomer).Code)
}

func TestRouter_RateLimitAppliesPerCaller(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.NewTokenBucketLimiter(nil, ratelimit.PerWindow(1, time.Hour))
	e := newEnv(t, ratelimit.New(nil, nil, limiter))

	tok, err := e.verifier.Issue(uuid.New(), domain.RoleCustomer, time.Minute)
	require.NoError(t, err)

	send := func() int {
		req := httptest.NewRequest(http.MethodGet, "/deliveries?limit=x", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		rr := httptest.NewRecorder()
		e.h.ServeHTTP(rr, req)
		return rr.Code
	}
	assert.Equal(t, http.StatusBadRequest, send())
	assert.Equal(t, http.StatusTooManyRequests, send())

	// другой пользователь получает свой бакет
	assert.Equal(t, http.StatusBadRequest, e.do(t, http.MethodGet, "/deliveries?limit=x", "", domain.RoleCustomer).Code)

	// public routes are not limited
	assert.Equal(t, http.StatusOK, e.do(t, http.MethodGet, "/ping", "", "").Code)
	assert.Equal(t, http.StatusOK, e.do(t, http.MethodGet, "/ping", "", "").Code)
}
