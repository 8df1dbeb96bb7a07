package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/app/models"
)

// OrderRepository handles database operations for Order.
type OrderRepository struct {
	entity[models.Order]
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{entity[models.Order]{base[models.Order]{db: db, order: "orders.id"}}}
}

func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository {
	return NewOrderRepository(tx)
}

func (r *OrderRepository) ByCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	return r.where(ctx, "customer_id = ?", customerID)
}

func (r *OrderRepository) IDsByCustomer(ctx context.Context, customerID uint) ([]uint, error) {
	var ids []uint
	err := r.query(ctx).Where("customer_id = ?", customerID).Pluck("id", &ids).Error
	return ids, err
}

func (r *OrderRepository) ByOrderAt(ctx context.Context, at time.Time) ([]models.Order, error) {
	return r.where(ctx, "order_at = ?", at)
}

func (r *OrderRepository) OrderedBetween(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	return r.where(ctx, "order_at BETWEEN ? AND ?", start, end)
}

func (r *OrderRepository) ByCustomerOrderedBetween(ctx context.Context, customerID uint, start, end time.Time) ([]models.Order, error) {
	return r.where(ctx, "customer_id = ? AND order_at BETWEEN ? AND ?", customerID, start, end)
}

// ByCustomerName matches the owning customer's first and last name.
func (r *OrderRepository) ByCustomerName(ctx context.Context, firstName, lastName string) ([]models.Order, error) {
	q := r.query(ctx).
		Select("orders.*").
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Where("customers.first_name = ? AND customers.last_name = ?", firstName, lastName)
	return r.list(q)
}

func (r *OrderRepository) withTotals(ctx context.Context) *gorm.DB {
	return r.query(ctx).
		Select("orders.*").
		Joins("LEFT JOIN product_orders ON product_orders.order_id = orders.id").
		Group("orders.id, orders.customer_id, orders.order_at")
}

// TotalLessThan returns orders whose line total is strictly below price.
// Orders without lines total zero.
func (r *OrderRepository) TotalLessThan(ctx context.Context, price decimal.Decimal) ([]models.Order, error) {
	q := r.withTotals(ctx).Having(models.OrderTotal+" < CAST(? AS DECIMAL(12,2))", price.String())
	return r.list(q)
}

// ByTotalDesc returns every order, largest line total first.
func (r *OrderRepository) ByTotalDesc(ctx context.Context) ([]models.Order, error) {
	out := make([]models.Order, 0)
	err := r.withTotals(ctx).Order(models.OrderTotal + " DESC").Order("orders.id").Find(&out).Error
	return out, err
}

func (r *OrderRepository) DeleteByCustomer(ctx context.Context, customerID uint) error {
	return r.db.WithContext(ctx).Where("customer_id = ?", customerID).Delete(&models.Order{}).Error
}
