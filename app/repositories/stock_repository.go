package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/app/models"
)

// StockRepository handles database operations for Stock.
type StockRepository struct {
	entity[models.Stock]
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{entity[models.Stock]{base[models.Stock]{db: db, order: "stocks.id"}}}
}

func (r *StockRepository) WithTx(tx *gorm.DB) *StockRepository {
	return NewStockRepository(tx)
}

func (r *StockRepository) ByProduct(ctx context.Context, productID uint) ([]models.Stock, error) {
	return r.where(ctx, "product_id = ?", productID)
}

func (r *StockRepository) ByQuantity(ctx context.Context, quantity int) ([]models.Stock, error) {
	return r.where(ctx, "quantity = ?", quantity)
}

func (r *StockRepository) ByProductAndQuantity(ctx context.Context, productID uint, quantity int) ([]models.Stock, error) {
	return r.where(ctx, "product_id = ? AND quantity = ?", productID, quantity)
}

func (r *StockRepository) QuantityGreaterThan(ctx context.Context, quantity int) ([]models.Stock, error) {
	return r.where(ctx, "quantity > ?", quantity)
}

func (r *StockRepository) ByProductQuantityGreaterThan(ctx context.Context, productID uint, quantity int) ([]models.Stock, error) {
	return r.where(ctx, "product_id = ? AND quantity > ?", productID, quantity)
}

// UpdatedBetween is inclusive on both ends.
func (r *StockRepository) UpdatedBetween(ctx context.Context, start, end time.Time) ([]models.Stock, error) {
	return r.where(ctx, "updated_at BETWEEN ? AND ?", start, end)
}

// UpdatedOnDays matches every timestamp on the calendar days from start to
// end, both included.
func (r *StockRepository) UpdatedOnDays(ctx context.Context, start, end time.Time) ([]models.Stock, error) {
	return r.where(ctx, "updated_at >= ? AND updated_at < ?", start, end.AddDate(0, 0, 1))
}

func (r *StockRepository) ByProductUpdatedBetween(ctx context.Context, productID uint, start, end time.Time) ([]models.Stock, error) {
	return r.where(ctx, "product_id = ? AND updated_at BETWEEN ? AND ?", productID, start, end)
}

func (r *StockRepository) DeleteByProduct(ctx context.Context, productID uint) error {
	return r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.Stock{}).Error
}
