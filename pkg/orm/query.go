// Package orm holds the gorm helpers shared by every repository: pagination,
// transactions and query instrumentation.
package orm

import (
	"context"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/pkg/metrics"
)

const (
	DefaultLimit = 20
	MaxLimit     = 200
	// MaxPage keeps the OFFSET of the last page inside a 32-bit integer.
	MaxPage = math.MaxInt32 / MaxLimit
)

// Pagination is returned next to every paginated list.
type Pagination struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	Limit    int   `json:"limit"`
	LastPage int   `json:"last_page"`
}

// NewPagination clamps page/limit and computes the last page.
func NewPagination(page, limit int, total int64) Pagination {
	page, limit = clamp(page, limit)
	last := int(math.Ceil(float64(total) / float64(limit)))
	if last < 1 {
		last = 1
	}
	return Pagination{Total: total, Page: page, Limit: limit, LastPage: last}
}

func clamp(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// Paginate is a gorm scope applying LIMIT/OFFSET for page and limit.
func Paginate(page, limit int) func(*gorm.DB) *gorm.DB {
	page, limit = clamp(page, limit)
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}

// FindPage counts the rows matched by q and loads one page of them into dest.
func FindPage(q *gorm.DB, dest interface{}, page, limit int) (Pagination, error) {
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Pagination{}, err
	}
	if err := q.Session(&gorm.Session{}).Scopes(Paginate(page, limit)).Find(dest).Error; err != nil {
		return Pagination{}, err
	}
	return NewPagination(page, limit, total), nil
}

// Transaction runs fn inside a transaction bound to ctx.
func Transaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}

const startKey = "metrics:start"

// Instrument registers gorm callbacks that time every statement into
// metrics.DBQueryDuration.
func Instrument(db *gorm.DB) error {
	before := func(tx *gorm.DB) { tx.InstanceSet(startKey, time.Now()) }
	after := func(op string) func(*gorm.DB) {
		return func(tx *gorm.DB) {
			v, ok := tx.InstanceGet(startKey)
			if !ok {
				return
			}
			start, ok := v.(time.Time)
			if !ok {
				return
			}
			table := tx.Statement.Table
			if table == "" {
				table = "raw"
			}
			metrics.ObserveDBQuery(op, table, start)
		}
	}

	cb := db.Callback()
	steps := []struct {
		op       string
		register func(name string, fn func(*gorm.DB)) error
		after    func(name string, fn func(*gorm.DB)) error
	}{
		{"create", cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register},
		{"query", cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register},
		{"update", cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register},
		{"delete", cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register},
		{"row", cb.Row().Before("gorm:row").Register, cb.Row().After("gorm:row").Register},
		{"raw", cb.Raw().Before("gorm:raw").Register, cb.Raw().After("gorm:raw").Register},
	}
	for _, s := range steps {
		if err := s.register("metrics:before_"+s.op, before); err != nil {
			return err
		}
		if err := s.after("metrics:after_"+s.op, after(s.op)); err != nil {
			return err
		}
	}
	return nil
}
