// Package router wraps chi with named routes and prefix groups. The named
// route table backs route:list and the OpenAPI document.
package router

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/ordermanager/pkg/response"
)

type Middleware func(http.Handler) http.Handler

// Route is one registered endpoint.
type Route struct {
	Method string
	Path   string
	Name   string
	// Public marks routes reachable without a bearer token.
	Public bool
	// AliasOf names the canonical route of a deprecated alias.
	AliasOf string
}

type Router struct {
	mux    chi.Router
	mu     sync.RWMutex
	routes []Route
	byName map[string]string
}

type Group struct {
	router      *Router
	prefix      string
	middlewares []Middleware
	public      bool
}

func New() *Router {
	mux := chi.NewRouter()
	mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusNotFound, "Not found")
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
	return &Router{mux: mux, byName: make(map[string]string)}
}

func (r *Router) Handler() http.Handler {
	return r.mux
}

// Use adds global middleware. It must be called before any route is added.
func (r *Router) Use(middlewares ...Middleware) {
	for _, mw := range middlewares {
		r.mux.Use(mw)
	}
}

func (r *Router) Group(prefix string, middlewares ...Middleware) *Group {
	return &Group{
		router:      r,
		prefix:      normalizePath(prefix),
		middlewares: append([]Middleware(nil), middlewares...),
	}
}

func (r *Router) Get(path, name string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.mount(http.MethodGet, normalizePath(path), name, true, handler, middlewares...)
}

func (r *Router) Post(path, name string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.mount(http.MethodPost, normalizePath(path), name, true, handler, middlewares...)
}

func (r *Router) Put(path, name string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.mount(http.MethodPut, normalizePath(path), name, true, handler, middlewares...)
}

func (r *Router) Delete(path, name string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.mount(http.MethodDelete, normalizePath(path), name, true, handler, middlewares...)
}

// Path returns the pattern registered under name.
func (r *Router) Path(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	path, ok := r.byName[name]
	return path, ok
}

// URL fills the {placeholders} of a named route.
func (r *Router) URL(name string, params map[string]string) (string, error) {
	path, ok := r.Path(name)
	if !ok {
		return "", fmt.Errorf("route %q not found", name)
	}

	for key, value := range params {
		path = strings.ReplaceAll(path, "{"+key+"}", value)
	}

	if strings.Contains(path, "{") {
		return "", fmt.Errorf("missing parameters for route %q", name)
	}

	return path, nil
}

// Routes returns every registered route sorted by path then method.
func (r *Router) Routes() []Route {
	r.mu.RLock()
	out := append([]Route(nil), r.routes...)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out
}

func (r *Router) mount(method, fullPath, name string, public bool, handler http.Handler, middlewares ...Middleware) {
	r.mountRoute(Route{Method: method, Path: fullPath, Name: name, Public: public}, handler, middlewares...)
}

func (r *Router) mountRoute(rt Route, handler http.Handler, middlewares ...Middleware) {
	r.mux.Method(rt.Method, rt.Path, chain(handler, middlewares...))

	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, rt)
	if rt.Name != "" {
		r.byName[rt.Name] = rt.Path
	}
}

// Group nests a prefix and appends middleware.
func (g *Group) Group(prefix string, middlewares ...Middleware) *Group {
	return &Group{
		router:      g.router,
		prefix:      joinPath(g.prefix, prefix),
		middlewares: append(append([]Middleware(nil), g.middlewares...), middlewares...),
		public:      g.public,
	}
}

// Protected marks the group's routes as requiring authentication in the
// route table. It does not add middleware by itself.
func (g *Group) Protected() *Group {
	c := *g
	c.public = false
	return &c
}

// Public marks the group's routes as reachable without a token.
func (g *Group) Public() *Group {
	c := *g
	c.public = true
	return &c
}

func (g *Group) Get(path, name string, handler http.HandlerFunc, middlewares ...Middleware) {
	g.mount(http.MethodGet, path, name, handler, middlewares...)
}

func (g *Group) Post(path, name string, handler http.HandlerFunc, middlewares ...Middleware) {
	g.mount(http.MethodPost, path, name, handler, middlewares...)
}

func (g *Group) Put(path, name string, handler http.HandlerFunc, middlewares ...Middleware) {
	g.mount(http.MethodPut, path, name, handler, middlewares...)
}

func (g *Group) Delete(path, name string, handler http.HandlerFunc, middlewares ...Middleware) {
	g.mount(http.MethodDelete, path, name, handler, middlewares...)
}

// Alias serves GET path with handler as a deprecated spelling of the route
// named target. Responses carry Deprecation and a Link to the canonical URL.
func (g *Group) Alias(path, name, target string, handler http.HandlerFunc, middlewares ...Middleware) {
	r := g.router
	wrapped := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if url, err := r.URL(target, urlParams(req)); err == nil {
			if req.URL.RawQuery != "" {
				url += "?" + req.URL.RawQuery
			}
			w.Header().Set("Link", "<"+url+">; rel=\"canonical\"")
		}
		w.Header().Set("Deprecation", "true")
		handler(w, req)
	})
	combined := append(append([]Middleware(nil), g.middlewares...), middlewares...)
	r.mountRoute(Route{
		Method: http.MethodGet, Path: joinPath(g.prefix, path), Name: name, Public: g.public, AliasOf: target,
	}, wrapped, combined...)
}

func urlParams(req *http.Request) map[string]string {
	rctx := chi.RouteContext(req.Context())
	if rctx == nil {
		return nil
	}
	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		params[key] = rctx.URLParams.Values[i]
	}
	return params
}

func (g *Group) mount(method, path, name string, handler http.HandlerFunc, middlewares ...Middleware) {
	combined := append(append([]Middleware(nil), g.middlewares...), middlewares...)
	g.router.mount(method, joinPath(g.prefix, path), name, g.public, handler, combined...)
}

func chain(handler http.Handler, middlewares ...Middleware) http.Handler {
	wrapped := handler
	for i := len(middlewares) - 1; i >= 0; i-- {
		wrapped = middlewares[i](wrapped)
	}
	return wrapped
}

func joinPath(parts ...string) string {
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.Trim(part, "/"); trimmed != "" {
			segments = append(segments, trimmed)
		}
	}
	if len(segments) == 0 {
		return "/"
	}
	return "/" + strings.Join(segments, "/")
}

func normalizePath(path string) string {
	return joinPath(path)
}
