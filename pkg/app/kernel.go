package app

import (
	"context"
	"net/http"
	"time"

	"github.com/shashiranjanraj/ordermanager/config"
	"github.com/shashiranjanraj/ordermanager/pkg/logger"
	"github.com/shashiranjanraj/ordermanager/pkg/metrics"
	"github.com/shashiranjanraj/ordermanager/pkg/middleware"
	"github.com/shashiranjanraj/ordermanager/pkg/reqid"
	"github.com/shashiranjanraj/ordermanager/pkg/response"
	"github.com/shashiranjanraj/ordermanager/pkg/router"
)

const healthTimeout = 2 * time.Second

// Limits configures the per-client token bucket.
type Limits struct {
	RPS   float64
	Burst int
	Idle  time.Duration
}

// DefaultLimits reads RATE_LIMIT_RPS and RATE_LIMIT_BURST.
func DefaultLimits() Limits {
	return Limits{RPS: config.RateLimitRPS(), Burst: config.RateLimitBurst(), Idle: 10 * time.Minute}
}

func (a *Application) build() *router.Router {
	r := router.New()

	// Outermost first: metrics see the full latency, Recovery catches panics
	// from everything below, and the request id exists before anything logs.
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	if a.limits.RPS > 0 {
		a.limiter = middleware.NewRateLimiter(a.limits.RPS, a.limits.Burst, a.limits.Idle)
		r.Use(a.limiter.Handler)
	}

	r.Get("/metrics", "metrics", metrics.Handler())
	r.Get("/health", "health", a.health)

	for _, fn := range a.routesFns {
		fn(r)
	}
	return r
}

type checkResult struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// health runs every check and answers 503 when any of them fails.
func (a *Application) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	status := http.StatusOK
	results := make([]checkResult, 0, len(a.checks))
	for _, c := range a.checks {
		res := checkResult{Name: c.name, Status: "up"}
		if err := c.check(ctx); err != nil {
			logger.WithCtx(ctx).Warn("health check failed", "check", c.name, "error", err)
			res.Status, res.Error = "down", err.Error()
			status = http.StatusServiceUnavailable
		}
		results = append(results, res)
	}
	response.Write(w, status, response.Envelope{
		Status:  status,
		Message: http.StatusText(status),
		Data:    results,
	})
}
