package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/ordermanager/pkg/migration"
	"github.com/shashiranjanraj/ordermanager/pkg/router"
)

func TestHandlerServesRoutesAndOperationalEndpoints(t *testing.T) {
	a := New().WithLimits(Limits{}).Routes(func(r *router.Router) {
		r.Get("/ping", "ping", func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("pong")) //nolint:errcheck
		})
		r.Get("/boom", "boom", func(http.ResponseWriter, *http.Request) { panic("boom") })
	})
	defer a.Close()
	h := a.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ordermanager_http_requests_total")
}

func TestHealthReportsFailingChecks(t *testing.T) {
	a := New().WithLimits(Limits{}).
		HealthCheck("database", func(context.Context) error { return nil }).
		HealthCheck("redis", func(context.Context) error { return errors.New("connection refused") })
	defer a.Close()

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body struct {
		Data []checkResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []checkResult{
		{Name: "database", Status: "up"},
		{Name: "redis", Status: "down", Error: "connection refused"},
	}, body.Data)
}

func TestRateLimiterRejectsBursts(t *testing.T) {
	a := New().WithLimits(Limits{RPS: 1, Burst: 1, Idle: 0})
	defer a.Close()
	h := a.Handler()

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestPrintTables(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintRoutes(&buf, []router.Route{
		{Method: "GET", Path: "/api/orders", Name: "orders.index"},
		{Method: "POST", Path: "/api/v1/auth/register", Name: "auth.register", Public: true},
	}))
	assert.Contains(t, buf.String(), "orders.index")
	assert.Contains(t, buf.String(), "bearer")

	buf.Reset()
	require.NoError(t, PrintMigrationStatus(&buf, []migration.Status{
		{Name: "0001_initial", Ran: true, Batch: 1},
		{Name: "0002_next"},
	}))
	assert.Contains(t, buf.String(), "0001_initial")
	assert.Contains(t, buf.String(), "yes")
	assert.Contains(t, buf.String(), "no")

	buf.Reset()
	require.NoError(t, PrintRoutes(&buf, nil))
	assert.Equal(t, "No routes registered.\n", buf.String())
}
