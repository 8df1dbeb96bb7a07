// Package repositories holds the gorm-backed store access for every entity.
// Repositories return raw gorm errors; services translate them.
package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/pkg/orm"
)

// base implements the operations shared by every table.
type base[T any] struct {
	db    *gorm.DB
	order string
}

func (r base[T]) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(new(T))
}

// list runs a filtered query with the repository's default ordering. The
// result is never nil so it serialises as [].
func (r base[T]) list(q *gorm.DB) ([]T, error) {
	out := make([]T, 0)
	err := q.Order(r.order).Find(&out).Error
	return out, err
}

func (r base[T]) where(ctx context.Context, cond string, args ...interface{}) ([]T, error) {
	return r.list(r.query(ctx).Where(cond, args...))
}

// All returns every row.
func (r base[T]) All(ctx context.Context) ([]T, error) {
	return r.list(r.query(ctx))
}

// Page returns one page of rows plus totals.
func (r base[T]) Page(ctx context.Context, page, limit int) ([]T, orm.Pagination, error) {
	out := make([]T, 0)
	p, err := orm.FindPage(r.query(ctx).Order(r.order), &out, page, limit)
	return out, p, err
}

func (r base[T]) Create(ctx context.Context, m *T) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// Save writes every column of m, inserting when the primary key is zero.
func (r base[T]) Save(ctx context.Context, m *T) error {
	return r.db.WithContext(ctx).Save(m).Error
}

// entity adds the single-column "id" primary key operations.
type entity[T any] struct {
	base[T]
}

// Find returns gorm.ErrRecordNotFound when id is absent.
func (r entity[T]) Find(ctx context.Context, id uint) (T, error) {
	var m T
	err := r.db.WithContext(ctx).First(&m, id).Error
	return m, err
}

func (r entity[T]) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.query(ctx).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r entity[T]) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(new(T), id).Error
}

// likeEscaper escapes LIKE metacharacters with '!', which every supported
// dialect accepts as an ESCAPE character.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
