package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/ordermanager/pkg/metrics"
)

func scrape(t *testing.T) string {
	t.Helper()
	rec := httptest.NewRecorder()
	metrics.Handler()(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(metrics.Middleware())
	r.Get("/api/orders/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, id := range []string{"1", "2", "3"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/orders/"+id, nil))
	}

	assert.Contains(t, scrape(t),
		`ordermanager_http_requests_total{method="GET",route="/api/orders/{id}",status="418"} 3`)
}

func TestHandlerExposesRegistry(t *testing.T) {
	metrics.AuthFailures.WithLabelValues("test").Inc()

	body := scrape(t)
	assert.Contains(t, body, "ordermanager_auth_failures_total")
	assert.Contains(t, body, "go_goroutines")
}
