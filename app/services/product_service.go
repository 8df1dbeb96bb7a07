package services

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/app/dto"
	"github.com/shashiranjanraj/ordermanager/app/mapper"
	"github.com/shashiranjanraj/ordermanager/app/repositories"
	"github.com/shashiranjanraj/ordermanager/pkg/orm"
)

type ProductService struct {
	db       *gorm.DB
	products *repositories.ProductRepository
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db, products: repositories.NewProductRepository(db)}
}

func (s *ProductService) List(ctx context.Context) ([]dto.Product, error) {
	rows, err := s.products.All(ctx)
	return mapped(rows, err, mapper.ProductToDTO)
}

func (s *ProductService) Page(ctx context.Context, page, limit int) ([]dto.Product, orm.Pagination, error) {
	rows, p, err := s.products.Page(ctx, page, limit)
	out, err := mapped(rows, err, mapper.ProductToDTO)
	return out, p, err
}

func (s *ProductService) Get(ctx context.Context, id uint) (dto.Product, error) {
	p, err := s.products.Find(ctx, id)
	if err != nil {
		return dto.Product{}, lookupErr(err, "Product", "id", id)
	}
	return mapper.ProductToDTO(p), nil
}

func (s *ProductService) Create(ctx context.Context, d dto.Product) (dto.Product, error) {
	m := mapper.ProductFromDTO(d)
	if err := s.products.Create(ctx, &m); err != nil {
		return dto.Product{}, storeErr(err)
	}
	return mapper.ProductToDTO(m), nil
}

func (s *ProductService) Update(ctx context.Context, id uint, d dto.Product) (dto.Product, error) {
	p, err := s.products.Find(ctx, id)
	if err != nil {
		return dto.Product{}, lookupErr(err, "Product", "id", id)
	}
	mapper.ApplyProduct(&p, d)
	if err := s.products.Save(ctx, &p); err != nil {
		return dto.Product{}, storeErr(err)
	}
	return mapper.ProductToDTO(p), nil
}

// Delete removes the product with its stocks and order lines in one
// transaction.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	ok, err := s.products.Exists(ctx, id)
	if err := mustExist(ok, err, "Product", id); err != nil {
		return err
	}
	err = orm.Transaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := repositories.NewStockRepository(tx).DeleteByProduct(ctx, id); err != nil {
			return err
		}
		if err := repositories.NewProductOrderRepository(tx).DeleteByProduct(ctx, id); err != nil {
			return err
		}
		return s.products.WithTx(tx).Delete(ctx, id)
	})
	return storeErr(err)
}

func (s *ProductService) BySlug(ctx context.Context, slug string) ([]dto.Product, error) {
	rows, err := s.products.BySlug(ctx, slug)
	return mapped(rows, err, mapper.ProductToDTO)
}

func (s *ProductService) NameContains(ctx context.Context, name string) ([]dto.Product, error) {
	rows, err := s.products.NameContains(ctx, name)
	return mapped(rows, err, mapper.ProductToDTO)
}

func (s *ProductService) ByReference(ctx context.Context, reference string) ([]dto.Product, error) {
	rows, err := s.products.ByReference(ctx, reference)
	return mapped(rows, err, mapper.ProductToDTO)
}

func (s *ProductService) PriceBetween(ctx context.Context, min, max decimal.Decimal) ([]dto.Product, error) {
	rows, err := s.products.PriceBetween(ctx, min, max)
	return mapped(rows, err, mapper.ProductToDTO)
}

func (s *ProductService) PriceLessThan(ctx context.Context, price decimal.Decimal) ([]dto.Product, error) {
	rows, err := s.products.PriceLessThan(ctx, price)
	return mapped(rows, err, mapper.ProductToDTO)
}

func (s *ProductService) ByVAT(ctx context.Context, vat decimal.Decimal) ([]dto.Product, error) {
	rows, err := s.products.ByVAT(ctx, vat)
	return mapped(rows, err, mapper.ProductToDTO)
}

func (s *ProductService) VATGreaterThan(ctx context.Context, vat decimal.Decimal) ([]dto.Product, error) {
	rows, err := s.products.VATGreaterThan(ctx, vat)
	return mapped(rows, err, mapper.ProductToDTO)
}

func (s *ProductService) VATBetween(ctx context.Context, min, max decimal.Decimal) ([]dto.Product, error) {
	rows, err := s.products.VATBetween(ctx, min, max)
	return mapped(rows, err, mapper.ProductToDTO)
}

// InStock lists the stockable products.
func (s *ProductService) InStock(ctx context.Context) ([]dto.Product, error) {
	rows, err := s.products.Stockable(ctx)
	return mapped(rows, err, mapper.ProductToDTO)
}

func (s *ProductService) ByPriceDesc(ctx context.Context) ([]dto.Product, error) {
	rows, err := s.products.ByPriceDesc(ctx)
	return mapped(rows, err, mapper.ProductToDTO)
}
