package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/app/dto"
	"github.com/shashiranjanraj/ordermanager/app/mapper"
	"github.com/shashiranjanraj/ordermanager/app/repositories"
	"github.com/shashiranjanraj/ordermanager/pkg/orm"
)

type StockService struct {
	db       *gorm.DB
	stocks   *repositories.StockRepository
	products *repositories.ProductRepository
}

func NewStockService(db *gorm.DB) *StockService {
	return &StockService{
		db:       db,
		stocks:   repositories.NewStockRepository(db),
		products: repositories.NewProductRepository(db),
	}
}

func (s *StockService) List(ctx context.Context) ([]dto.Stock, error) {
	rows, err := s.stocks.All(ctx)
	return mapped(rows, err, mapper.StockToDTO)
}

func (s *StockService) Page(ctx context.Context, page, limit int) ([]dto.Stock, orm.Pagination, error) {
	rows, p, err := s.stocks.Page(ctx, page, limit)
	out, err := mapped(rows, err, mapper.StockToDTO)
	return out, p, err
}

func (s *StockService) Get(ctx context.Context, id uint) (dto.Stock, error) {
	st, err := s.stocks.Find(ctx, id)
	if err != nil {
		return dto.Stock{}, lookupErr(err, "Stock", "id", id)
	}
	return mapper.StockToDTO(st), nil
}

// Create checks the product and inserts the row in one transaction.
func (s *StockService) Create(ctx context.Context, d dto.Stock) (dto.Stock, error) {
	m := mapper.StockFromDTO(d)
	err := orm.Transaction(ctx, s.db, func(tx *gorm.DB) error {
		ok, err := s.products.WithTx(tx).Exists(ctx, d.ProductID)
		if err := mustExist(ok, err, "Product", d.ProductID); err != nil {
			return err
		}
		return s.stocks.WithTx(tx).Create(ctx, &m)
	})
	if err != nil {
		return dto.Stock{}, storeErr(err)
	}
	return mapper.StockToDTO(m), nil
}

// Update sets the quantity and its timestamp. The product reference is
// fixed once a stock row exists.
func (s *StockService) Update(ctx context.Context, id uint, d dto.Stock) (dto.Stock, error) {
	st, err := s.stocks.Find(ctx, id)
	if err != nil {
		return dto.Stock{}, lookupErr(err, "Stock", "id", id)
	}
	mapper.ApplyStock(&st, d)
	if err := s.stocks.Save(ctx, &st); err != nil {
		return dto.Stock{}, storeErr(err)
	}
	return mapper.StockToDTO(st), nil
}

func (s *StockService) Delete(ctx context.Context, id uint) error {
	ok, err := s.stocks.Exists(ctx, id)
	if err := mustExist(ok, err, "Stock", id); err != nil {
		return err
	}
	return storeErr(s.stocks.Delete(ctx, id))
}

func (s *StockService) ByProduct(ctx context.Context, productID uint) ([]dto.Stock, error) {
	rows, err := s.stocks.ByProduct(ctx, productID)
	return mapped(rows, err, mapper.StockToDTO)
}

func (s *StockService) ByQuantity(ctx context.Context, quantity int) ([]dto.Stock, error) {
	rows, err := s.stocks.ByQuantity(ctx, quantity)
	return mapped(rows, err, mapper.StockToDTO)
}

func (s *StockService) ByProductAndQuantity(ctx context.Context, productID uint, quantity int) ([]dto.Stock, error) {
	rows, err := s.stocks.ByProductAndQuantity(ctx, productID, quantity)
	return mapped(rows, err, mapper.StockToDTO)
}

func (s *StockService) QuantityGreaterThan(ctx context.Context, quantity int) ([]dto.Stock, error) {
	rows, err := s.stocks.QuantityGreaterThan(ctx, quantity)
	return mapped(rows, err, mapper.StockToDTO)
}

func (s *StockService) ByProductQuantityGreaterThan(ctx context.Context, productID uint, quantity int) ([]dto.Stock, error) {
	rows, err := s.stocks.ByProductQuantityGreaterThan(ctx, productID, quantity)
	return mapped(rows, err, mapper.StockToDTO)
}

func (s *StockService) UpdatedBetween(ctx context.Context, start, end time.Time) ([]dto.Stock, error) {
	rows, err := s.stocks.UpdatedBetween(ctx, start.UTC(), end.UTC())
	return mapped(rows, err, mapper.StockToDTO)
}

// UpdatedOnDays matches whole calendar days, start and end included.
func (s *StockService) UpdatedOnDays(ctx context.Context, start, end dto.Date) ([]dto.Stock, error) {
	rows, err := s.stocks.UpdatedOnDays(ctx, start.Time, end.Time)
	return mapped(rows, err, mapper.StockToDTO)
}

func (s *StockService) ByProductUpdatedBetween(ctx context.Context, productID uint, start, end time.Time) ([]dto.Stock, error) {
	rows, err := s.stocks.ByProductUpdatedBetween(ctx, productID, start.UTC(), end.UTC())
	return mapped(rows, err, mapper.StockToDTO)
}
