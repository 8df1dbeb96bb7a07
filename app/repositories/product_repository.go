package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/app/models"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	entity[models.Product]
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{entity[models.Product]{base[models.Product]{db: db, order: "products.id"}}}
}

func (r *ProductRepository) WithTx(tx *gorm.DB) *ProductRepository {
	return NewProductRepository(tx)
}

func (r *ProductRepository) BySlug(ctx context.Context, slug string) ([]models.Product, error) {
	return r.where(ctx, "slug = ?", slug)
}

// NameContains matches case-insensitively anywhere in the name.
func (r *ProductRepository) NameContains(ctx context.Context, name string) ([]models.Product, error) {
	return r.where(ctx, "LOWER(name) LIKE ? ESCAPE '!'", containsPattern(name))
}

func (r *ProductRepository) ByReference(ctx context.Context, reference string) ([]models.Product, error) {
	return r.where(ctx, "reference = ?", reference)
}

// PriceBetween is inclusive on both ends.
func (r *ProductRepository) PriceBetween(ctx context.Context, min, max decimal.Decimal) ([]models.Product, error) {
	return r.where(ctx, "price BETWEEN ? AND ?", min, max)
}

func (r *ProductRepository) PriceLessThan(ctx context.Context, price decimal.Decimal) ([]models.Product, error) {
	return r.where(ctx, "price < ?", price)
}

func (r *ProductRepository) ByVAT(ctx context.Context, vat decimal.Decimal) ([]models.Product, error) {
	return r.where(ctx, "vat = ?", vat)
}

func (r *ProductRepository) VATGreaterThan(ctx context.Context, vat decimal.Decimal) ([]models.Product, error) {
	return r.where(ctx, "vat > ?", vat)
}

func (r *ProductRepository) VATBetween(ctx context.Context, min, max decimal.Decimal) ([]models.Product, error) {
	return r.where(ctx, "vat BETWEEN ? AND ?", min, max)
}

func (r *ProductRepository) Stockable(ctx context.Context) ([]models.Product, error) {
	return r.where(ctx, "stockable = ?", true)
}

func (r *ProductRepository) ByPriceDesc(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, 0)
	err := r.query(ctx).Order("price DESC").Order("products.id").Find(&out).Error
	return out, err
}
