package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/app/dto"
	"github.com/shashiranjanraj/ordermanager/app/mapper"
	"github.com/shashiranjanraj/ordermanager/app/repositories"
	"github.com/shashiranjanraj/ordermanager/pkg/apperr"
	"github.com/shashiranjanraj/ordermanager/pkg/orm"
)

type ProductOrderService struct {
	db       *gorm.DB
	lines    *repositories.ProductOrderRepository
	products *repositories.ProductRepository
	orders   *repositories.OrderRepository
}

func NewProductOrderService(db *gorm.DB) *ProductOrderService {
	return &ProductOrderService{
		db:       db,
		lines:    repositories.NewProductOrderRepository(db),
		products: repositories.NewProductRepository(db),
		orders:   repositories.NewOrderRepository(db),
	}
}

func keyString(productID, orderID uint) string {
	return fmt.Sprintf("%d/%d", productID, orderID)
}

func (s *ProductOrderService) List(ctx context.Context) ([]dto.ProductOrder, error) {
	rows, err := s.lines.All(ctx)
	return mapped(rows, err, mapper.ProductOrderToDTO)
}

func (s *ProductOrderService) Page(ctx context.Context, page, limit int) ([]dto.ProductOrder, orm.Pagination, error) {
	rows, p, err := s.lines.Page(ctx, page, limit)
	out, err := mapped(rows, err, mapper.ProductOrderToDTO)
	return out, p, err
}

func (s *ProductOrderService) Get(ctx context.Context, productID, orderID uint) (dto.ProductOrder, error) {
	po, err := s.lines.Find(ctx, productID, orderID)
	if err != nil {
		return dto.ProductOrder{}, lookupErr(err, "ProductOrder", "id", keyString(productID, orderID))
	}
	return mapper.ProductOrderToDTO(po), nil
}

// Create links an existing product to an existing order. A pair can only be
// linked once. The checks and the insert share a transaction.
func (s *ProductOrderService) Create(ctx context.Context, d dto.ProductOrder) (dto.ProductOrder, error) {
	m := mapper.ProductOrderFromDTO(d)
	err := orm.Transaction(ctx, s.db, func(tx *gorm.DB) error {
		ok, err := s.products.WithTx(tx).Exists(ctx, d.ProductID)
		if err := mustExist(ok, err, "Product", d.ProductID); err != nil {
			return err
		}
		ok, err = s.orders.WithTx(tx).Exists(ctx, d.OrderID)
		if err := mustExist(ok, err, "Order", d.OrderID); err != nil {
			return err
		}
		lines := s.lines.WithTx(tx)
		taken, err := lines.Exists(ctx, d.ProductID, d.OrderID)
		if err != nil {
			return err
		}
		if taken {
			return apperr.Conflict("ProductOrder already exists with id : '" + keyString(d.ProductID, d.OrderID) + "'")
		}
		return lines.Create(ctx, &m)
	})
	if err != nil {
		return dto.ProductOrder{}, storeErr(err)
	}
	return mapper.ProductOrderToDTO(m), nil
}

// Update overwrites quantity, price and VAT. The key in d is ignored.
func (s *ProductOrderService) Update(ctx context.Context, productID, orderID uint, d dto.ProductOrder) (dto.ProductOrder, error) {
	po, err := s.lines.Find(ctx, productID, orderID)
	if err != nil {
		return dto.ProductOrder{}, lookupErr(err, "ProductOrder", "id", keyString(productID, orderID))
	}
	mapper.ApplyProductOrder(&po, d)
	if err := s.lines.Save(ctx, &po); err != nil {
		return dto.ProductOrder{}, storeErr(err)
	}
	return mapper.ProductOrderToDTO(po), nil
}

func (s *ProductOrderService) Delete(ctx context.Context, productID, orderID uint) error {
	ok, err := s.lines.Exists(ctx, productID, orderID)
	if err != nil {
		return storeErr(err)
	}
	if !ok {
		return apperr.NotFound("ProductOrder", "id", keyString(productID, orderID))
	}
	return storeErr(s.lines.Delete(ctx, productID, orderID))
}

// ByKey is the list form of Get: zero or one line.
func (s *ProductOrderService) ByKey(ctx context.Context, productID, orderID uint) ([]dto.ProductOrder, error) {
	rows, err := s.lines.ByKey(ctx, productID, orderID)
	return mapped(rows, err, mapper.ProductOrderToDTO)
}

func (s *ProductOrderService) ByProduct(ctx context.Context, productID uint) ([]dto.ProductOrder, error) {
	rows, err := s.lines.ByProduct(ctx, productID)
	return mapped(rows, err, mapper.ProductOrderToDTO)
}

func (s *ProductOrderService) ByOrder(ctx context.Context, orderID uint) ([]dto.ProductOrder, error) {
	rows, err := s.lines.ByOrder(ctx, orderID)
	return mapped(rows, err, mapper.ProductOrderToDTO)
}

func (s *ProductOrderService) QuantityGreaterThan(ctx context.Context, quantity int) ([]dto.ProductOrder, error) {
	rows, err := s.lines.QuantityGreaterThan(ctx, quantity)
	return mapped(rows, err, mapper.ProductOrderToDTO)
}

func (s *ProductOrderService) QuantityBetween(ctx context.Context, min, max int) ([]dto.ProductOrder, error) {
	rows, err := s.lines.QuantityBetween(ctx, min, max)
	return mapped(rows, err, mapper.ProductOrderToDTO)
}

func (s *ProductOrderService) PriceGreaterThan(ctx context.Context, price decimal.Decimal) ([]dto.ProductOrder, error) {
	rows, err := s.lines.PriceGreaterThan(ctx, price)
	return mapped(rows, err, mapper.ProductOrderToDTO)
}
