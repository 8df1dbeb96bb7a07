// Package controllers turns HTTP requests into service calls. Handlers parse
// path and query parameters, bind bodies, call one service method and write
// the envelope.
package controllers

import (
	"context"

	"github.com/shashiranjanraj/ordermanager/pkg/ctx"
	"github.com/shashiranjanraj/ordermanager/pkg/orm"
)

// index answers a collection endpoint. It pages only when the client sends
// page or limit.
func index[D any](
	c *ctx.Context,
	all func(context.Context) ([]D, error),
	page func(context.Context, int, int) ([]D, orm.Pagination, error),
) {
	p, limit, paged, err := c.PageParams()
	if err != nil {
		c.Fail(err)
		return
	}
	if paged {
		rows, pagination, err := page(c.Context(), p, limit)
		if err != nil {
			c.Fail(err)
			return
		}
		c.Paginated(rows, pagination)
		return
	}
	rows, err := all(c.Context())
	reply(c, rows, err)
}

func reply(c *ctx.Context, data any, err error) {
	if err != nil {
		c.Fail(err)
		return
	}
	c.Success(data)
}

func created(c *ctx.Context, data any, err error) {
	if err != nil {
		c.Fail(err)
		return
	}
	c.Created(data)
}

func deleted(c *ctx.Context, err error) {
	if err != nil {
		c.Fail(err)
		return
	}
	c.NoContent()
}

// firstErr returns the first non-nil error among parameter parses.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
