// Package ctx provides a gin.Context-inspired request context for handlers.
//
// Instead of accepting (http.ResponseWriter, *http.Request), a handler
// receives a single *Context:
//
//	func (h *OrderController) Show(c *ctx.Context) {
//	    id, err := c.ParamUint("id")
//	    if err != nil {
//	        c.Fail(err)
//	        return
//	    }
//	    ...
//	    c.Success(order)
//	}
//
//	router.Get("/orders/{id}", "orders.show", ctx.Wrap(h.Show))
package ctx

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/ordermanager/app/dto"
	"github.com/shashiranjanraj/ordermanager/pkg/apperr"
	"github.com/shashiranjanraj/ordermanager/pkg/auth"
	"github.com/shashiranjanraj/ordermanager/pkg/bind"
	"github.com/shashiranjanraj/ordermanager/pkg/logger"
	"github.com/shashiranjanraj/ordermanager/pkg/orm"
	"github.com/shashiranjanraj/ordermanager/pkg/response"
	"github.com/shashiranjanraj/ordermanager/pkg/validate"
)

// HandlerFunc is the context-aware handler signature.
type HandlerFunc func(c *Context)

// Wrap converts a HandlerFunc to a standard http.HandlerFunc.
func Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := acquire(w, r)
		defer release(c)
		h(c)
	}
}

// Context wraps a request/response pair.
type Context struct {
	W      http.ResponseWriter
	R      *http.Request
	status int
}

var pool = sync.Pool{
	New: func() any { return &Context{} },
}

func acquire(w http.ResponseWriter, r *http.Request) *Context {
	c := pool.Get().(*Context)
	c.W = w
	c.R = r
	c.status = 0
	return c
}

func release(c *Context) {
	c.W = nil
	c.R = nil
	pool.Put(c)
}

// ─── Request helpers ──────────────────────────────────────────────────────────

// Param returns a URL path parameter.
func (c *Context) Param(key string) string {
	return chi.URLParam(c.R, key)
}

// Query returns a query-string value, "" when absent.
func (c *Context) Query(key string) string {
	return c.R.URL.Query().Get(key)
}

func (c *Context) Header(key string) string {
	return c.R.Header.Get(key)
}

func (c *Context) Method() string { return c.R.Method }

func (c *Context) Path() string { return c.R.URL.Path }

// Context returns the underlying request context.
func (c *Context) Context() context.Context { return c.R.Context() }

// Principal returns the authenticated caller.
func (c *Context) Principal() (auth.Principal, bool) {
	return auth.FromContext(c.R.Context())
}

// ─── Typed parameters ─────────────────────────────────────────────────────────
//
// Each parser reads a path parameter (Param*) or a required query value
// (Query*) and returns a 400 *apperr.Error naming the parameter on failure.

type source struct {
	kind string
	get  func(string) string
}

func (c *Context) path() source  { return source{"path parameter", c.Param} }
func (c *Context) query() source { return source{"query parameter", c.Query} }

func (s source) raw(key string) (string, error) {
	v := strings.TrimSpace(s.get(key))
	if v == "" {
		return "", apperr.BadRequest(fmt.Sprintf("Missing %s '%s'", s.kind, key))
	}
	return v, nil
}

func (s source) bad(key, want string) error {
	return apperr.BadRequest(fmt.Sprintf("Invalid %s '%s': expected %s", s.kind, key, want))
}

func (s source) uint(key string) (uint, error) {
	v, err := s.raw(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(v, 10, 0)
	if err != nil {
		return 0, s.bad(key, "a positive integer")
	}
	return uint(n), nil
}

func (s source) int(key string) (int, error) {
	v, err := s.raw(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, s.bad(key, "an integer")
	}
	return n, nil
}

func (s source) decimal(key string) (decimal.Decimal, error) {
	v, err := s.raw(key)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, s.bad(key, "a number")
	}
	return d, nil
}

func (s source) date(key string) (dto.Date, error) {
	v, err := s.raw(key)
	if err != nil {
		return dto.Date{}, err
	}
	d, err := dto.ParseDate(v)
	if err != nil {
		return dto.Date{}, s.bad(key, "a date (YYYY-MM-DD)")
	}
	return d, nil
}

func (s source) time(key string) (time.Time, error) {
	v, err := s.raw(key)
	if err != nil {
		return time.Time{}, err
	}
	t, err := dto.ParseTimestamp(v)
	if err != nil {
		return time.Time{}, s.bad(key, "a timestamp (RFC 3339 or YYYY-MM-DD)")
	}
	return t, nil
}

func (c *Context) ParamString(key string) (string, error)           { return c.path().raw(key) }
func (c *Context) ParamUint(key string) (uint, error)               { return c.path().uint(key) }
func (c *Context) ParamInt(key string) (int, error)                 { return c.path().int(key) }
func (c *Context) ParamDecimal(key string) (decimal.Decimal, error) { return c.path().decimal(key) }
func (c *Context) ParamDate(key string) (dto.Date, error)           { return c.path().date(key) }
func (c *Context) ParamTime(key string) (time.Time, error)          { return c.path().time(key) }

func (c *Context) QueryString(key string) (string, error)           { return c.query().raw(key) }
func (c *Context) QueryUint(key string) (uint, error)               { return c.query().uint(key) }
func (c *Context) QueryInt(key string) (int, error)                 { return c.query().int(key) }
func (c *Context) QueryDecimal(key string) (decimal.Decimal, error) { return c.query().decimal(key) }
func (c *Context) QueryDate(key string) (dto.Date, error)           { return c.query().date(key) }
func (c *Context) QueryTime(key string) (time.Time, error)          { return c.query().time(key) }

// PageParams reports whether the client asked for a page (page or limit in
// the query) and returns the requested values. Clamping is left to orm.
func (c *Context) PageParams() (page, limit int, paged bool, err error) {
	q := c.R.URL.Query()
	if !q.Has("page") && !q.Has("limit") {
		return 0, 0, false, nil
	}
	if q.Has("page") {
		if page, err = c.QueryInt("page"); err != nil {
			return 0, 0, true, err
		}
	}
	if q.Has("limit") {
		if limit, err = c.QueryInt("limit"); err != nil {
			return 0, 0, true, err
		}
	}
	return page, limit, true, nil
}

// ─── Binding / Validation ─────────────────────────────────────────────────────

// BindJSON decodes and validates the JSON body into dest. On failure it
// writes a 400 (malformed body or field errors) and returns false.
//
//	var input dto.Order
//	if !c.BindJSON(&input) {
//	    return // response already sent
//	}
func (c *Context) BindJSON(dest any) bool {
	errs, err := bind.JSON(c.R, dest)
	if err != nil {
		c.Error(http.StatusBadRequest, err.Error())
		return false
	}
	if validate.HasErrors(errs) {
		c.ValidationError(errs)
		return false
	}
	return true
}

// ─── Response helpers ─────────────────────────────────────────────────────────

func (c *Context) SetHeader(key, value string) {
	c.W.Header().Set(key, value)
}

// Status writes just the HTTP status code with an empty body.
func (c *Context) Status(code int) {
	c.status = code
	c.W.WriteHeader(code)
}

func (c *Context) write(code int, body response.Envelope) {
	c.status = code
	response.Write(c.W, code, body)
}

// Success sends a 200 envelope: {"status":200,"data":...}
func (c *Context) Success(data any) {
	c.write(http.StatusOK, response.Envelope{Status: http.StatusOK, Data: data})
}

// Created sends a 201 envelope.
func (c *Context) Created(data any) {
	c.write(http.StatusCreated, response.Envelope{Status: http.StatusCreated, Data: data})
}

// NoContent sends a bare 204.
func (c *Context) NoContent() {
	c.Status(http.StatusNoContent)
}

// Paginated sends a 200 envelope holding items and pagination.
func (c *Context) Paginated(items any, p orm.Pagination) {
	c.Success(response.Page{Items: items, Pagination: p})
}

// Error sends an error envelope with the given status and message.
func (c *Context) Error(code int, message string) {
	c.write(code, response.Envelope{Status: code, Message: message})
}

// ValidationError sends a 400 with field-level errors.
func (c *Context) ValidationError(errs map[string]string) {
	c.write(http.StatusBadRequest, response.Envelope{
		Status:  http.StatusBadRequest,
		Message: "Validation failed",
		Errors:  errs,
	})
}

// Fail writes err with its apperr status. Server-side failures are logged
// with their cause, which never reaches the client.
func (c *Context) Fail(err error) {
	e := apperr.From(err)
	if e.StatusCode >= http.StatusInternalServerError {
		logger.WithCtx(c.Context()).Error("request failed",
			"method", c.R.Method,
			"path", c.R.URL.Path,
			"error", err.Error(),
		)
	}
	c.status = e.StatusCode
	response.Fail(c.W, e)
}

// WrittenStatus returns the status written so far, or 0.
func (c *Context) WrittenStatus() int { return c.status }
