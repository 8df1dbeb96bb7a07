// Package app assembles the HTTP kernel: the global middleware stack, the
// operational endpoints and the route callbacks supplied by the caller.
//
//	a := app.New().
//	    Routes(routes.API(db, authn)).
//	    HealthCheck("database", database.Ping(db))
//	defer a.Close()
//	return server.Run(ctx, a.Handler(), server.Options{...})
//
// Nothing in here imports project code; everything is injected through the
// builder methods.
package app

import (
	"context"
	"net/http"
	"sync"

	"github.com/shashiranjanraj/ordermanager/pkg/middleware"
	"github.com/shashiranjanraj/ordermanager/pkg/router"
)

// Check reports whether a dependency is usable.
type Check func(ctx context.Context) error

type namedCheck struct {
	name  string
	check Check
}

// Application is the builder for the HTTP kernel.
type Application struct {
	routesFns []func(*router.Router)
	checks    []namedCheck
	limits    Limits

	once    sync.Once
	router  *router.Router
	limiter *middleware.RateLimiter
}

// New returns an Application using the configured rate limits.
func New() *Application {
	return &Application{limits: DefaultLimits()}
}

// Routes registers a route callback. Callbacks run in registration order
// when the router is first built.
func (a *Application) Routes(fn func(*router.Router)) *Application {
	a.routesFns = append(a.routesFns, fn)
	return a
}

// HealthCheck adds a named check to GET /health.
func (a *Application) HealthCheck(name string, fn Check) *Application {
	a.checks = append(a.checks, namedCheck{name: name, check: fn})
	return a
}

// WithLimits overrides the per-client rate limits. A zero RPS disables the
// limiter.
func (a *Application) WithLimits(l Limits) *Application {
	a.limits = l
	return a
}

// Router builds the router once and returns it.
func (a *Application) Router() *router.Router {
	a.once.Do(func() { a.router = a.build() })
	return a.router
}

// Handler is Router().Handler().
func (a *Application) Handler() http.Handler {
	return a.Router().Handler()
}

// Close stops the rate limiter's background sweep.
func (a *Application) Close() {
	if a.limiter != nil {
		a.limiter.Close()
	}
}
