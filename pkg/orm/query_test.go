package orm_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/pkg/orm"
	"github.com/shashiranjanraj/ordermanager/pkg/testkit"
)

type item struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func seeded(t *testing.T, n int) *gorm.DB {
	t.Helper()
	db := testkit.SQLite(t)
	require.NoError(t, db.AutoMigrate(&item{}))
	for i := 0; i < n; i++ {
		require.NoError(t, db.Create(&item{Name: "item"}).Error)
	}
	return db
}

func TestNewPaginationClamps(t *testing.T) {
	p := orm.NewPagination(0, 0, 45)
	assert.Equal(t, orm.Pagination{Total: 45, Page: 1, Limit: orm.DefaultLimit, LastPage: 3}, p)

	p = orm.NewPagination(2, 1000, 0)
	assert.Equal(t, orm.MaxLimit, p.Limit)
	assert.Equal(t, 1, p.LastPage)

	p = orm.NewPagination(math.MaxInt, 20, 5)
	assert.Equal(t, orm.MaxPage, p.Page)
}

func TestFindPage(t *testing.T) {
	db := seeded(t, 5)

	var rows []item
	p, err := orm.FindPage(db.Model(&item{}).Order("id"), &rows, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, orm.Pagination{Total: 5, Page: 2, Limit: 2, LastPage: 3}, p)
	require.Len(t, rows, 2)
	assert.Equal(t, uint(3), rows[0].ID)
}

func TestFindPageHugePageIsEmpty(t *testing.T) {
	db := seeded(t, 3)

	var rows []item
	p, err := orm.FindPage(db.Model(&item{}), &rows, math.MaxInt, orm.MaxLimit)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, orm.MaxPage, p.Page)
	assert.Equal(t, int64(3), p.Total)
}

func TestTransactionRollsBack(t *testing.T) {
	db := seeded(t, 0)
	boom := errors.New("boom")

	err := orm.Transaction(context.Background(), db, func(tx *gorm.DB) error {
		require.NoError(t, tx.Create(&item{Name: "lost"}).Error)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var n int64
	require.NoError(t, db.Model(&item{}).Count(&n).Error)
	assert.Zero(t, n)
}
