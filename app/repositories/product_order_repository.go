package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/app/models"
)

// ProductOrderRepository handles the (product, order) association. Rows are
// addressed by their composite key, so it has no id-based Find/Delete.
type ProductOrderRepository struct {
	base[models.ProductOrder]
}

func NewProductOrderRepository(db *gorm.DB) *ProductOrderRepository {
	return &ProductOrderRepository{base[models.ProductOrder]{db: db, order: "product_orders.order_id, product_orders.product_id"}}
}

func (r *ProductOrderRepository) WithTx(tx *gorm.DB) *ProductOrderRepository {
	return NewProductOrderRepository(tx)
}

func (r *ProductOrderRepository) key(ctx context.Context, productID, orderID uint) *gorm.DB {
	return r.query(ctx).Where("product_id = ? AND order_id = ?", productID, orderID)
}

// Find returns gorm.ErrRecordNotFound when the pair is absent.
func (r *ProductOrderRepository) Find(ctx context.Context, productID, orderID uint) (models.ProductOrder, error) {
	var po models.ProductOrder
	err := r.key(ctx, productID, orderID).First(&po).Error
	return po, err
}

func (r *ProductOrderRepository) Exists(ctx context.Context, productID, orderID uint) (bool, error) {
	var n int64
	err := r.key(ctx, productID, orderID).Count(&n).Error
	return n > 0, err
}

func (r *ProductOrderRepository) Delete(ctx context.Context, productID, orderID uint) error {
	return r.db.WithContext(ctx).
		Where("product_id = ? AND order_id = ?", productID, orderID).
		Delete(&models.ProductOrder{}).Error
}

func (r *ProductOrderRepository) ByKey(ctx context.Context, productID, orderID uint) ([]models.ProductOrder, error) {
	return r.list(r.key(ctx, productID, orderID))
}

func (r *ProductOrderRepository) ByProduct(ctx context.Context, productID uint) ([]models.ProductOrder, error) {
	return r.where(ctx, "product_id = ?", productID)
}

func (r *ProductOrderRepository) ByOrder(ctx context.Context, orderID uint) ([]models.ProductOrder, error) {
	return r.where(ctx, "order_id = ?", orderID)
}

func (r *ProductOrderRepository) QuantityGreaterThan(ctx context.Context, quantity int) ([]models.ProductOrder, error) {
	return r.where(ctx, "quantity > ?", quantity)
}

func (r *ProductOrderRepository) QuantityBetween(ctx context.Context, min, max int) ([]models.ProductOrder, error) {
	return r.where(ctx, "quantity BETWEEN ? AND ?", min, max)
}

func (r *ProductOrderRepository) PriceGreaterThan(ctx context.Context, price decimal.Decimal) ([]models.ProductOrder, error) {
	return r.where(ctx, "price > ?", price)
}

func (r *ProductOrderRepository) DeleteByProduct(ctx context.Context, productID uint) error {
	return r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.ProductOrder{}).Error
}

func (r *ProductOrderRepository) DeleteByOrders(ctx context.Context, orderIDs []uint) error {
	if len(orderIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("order_id IN ?", orderIDs).Delete(&models.ProductOrder{}).Error
}
