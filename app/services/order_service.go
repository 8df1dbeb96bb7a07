package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/app/dto"
	"github.com/shashiranjanraj/ordermanager/app/mapper"
	"github.com/shashiranjanraj/ordermanager/app/models"
	"github.com/shashiranjanraj/ordermanager/app/repositories"
	"github.com/shashiranjanraj/ordermanager/pkg/orm"
)

type OrderService struct {
	db        *gorm.DB
	orders    *repositories.OrderRepository
	customers *repositories.CustomerRepository
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		db:        db,
		orders:    repositories.NewOrderRepository(db),
		customers: repositories.NewCustomerRepository(db),
	}
}

func (s *OrderService) List(ctx context.Context) ([]dto.Order, error) {
	rows, err := s.orders.All(ctx)
	return mapped(rows, err, mapper.OrderToDTO)
}

func (s *OrderService) Page(ctx context.Context, page, limit int) ([]dto.Order, orm.Pagination, error) {
	rows, p, err := s.orders.Page(ctx, page, limit)
	out, err := mapped(rows, err, mapper.OrderToDTO)
	return out, p, err
}

func (s *OrderService) Get(ctx context.Context, id uint) (dto.Order, error) {
	o, err := s.orders.Find(ctx, id)
	if err != nil {
		return dto.Order{}, lookupErr(err, "Order", "id", id)
	}
	return mapper.OrderToDTO(o), nil
}

func (s *OrderService) customerExists(ctx context.Context, tx *gorm.DB, id uint) error {
	ok, err := s.customers.WithTx(tx).Exists(ctx, id)
	return mustExist(ok, err, "Customer", id)
}

// Create rejects an order whose customer does not exist. The check and the
// insert share a transaction.
func (s *OrderService) Create(ctx context.Context, d dto.Order) (dto.Order, error) {
	m := mapper.OrderFromDTO(d)
	err := orm.Transaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.customerExists(ctx, tx, d.CustomerID); err != nil {
			return err
		}
		return s.orders.WithTx(tx).Create(ctx, &m)
	})
	if err != nil {
		return dto.Order{}, storeErr(err)
	}
	return mapper.OrderToDTO(m), nil
}

// Update moves the order to another existing customer and/or date. The
// order id never changes.
func (s *OrderService) Update(ctx context.Context, id uint, d dto.Order) (dto.Order, error) {
	var o models.Order
	err := orm.Transaction(ctx, s.db, func(tx *gorm.DB) error {
		orders := s.orders.WithTx(tx)
		var err error
		if o, err = orders.Find(ctx, id); err != nil {
			return lookupErr(err, "Order", "id", id)
		}
		if d.CustomerID != o.CustomerID {
			if err := s.customerExists(ctx, tx, d.CustomerID); err != nil {
				return err
			}
		}
		mapper.ApplyOrder(&o, d)
		return orders.Save(ctx, &o)
	})
	if err != nil {
		return dto.Order{}, storeErr(err)
	}
	return mapper.OrderToDTO(o), nil
}

// Delete removes the order and its lines in one transaction.
func (s *OrderService) Delete(ctx context.Context, id uint) error {
	ok, err := s.orders.Exists(ctx, id)
	if err := mustExist(ok, err, "Order", id); err != nil {
		return err
	}
	err = orm.Transaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := repositories.NewProductOrderRepository(tx).DeleteByOrders(ctx, []uint{id}); err != nil {
			return err
		}
		return s.orders.WithTx(tx).Delete(ctx, id)
	})
	return storeErr(err)
}

func (s *OrderService) ByCustomer(ctx context.Context, customerID uint) ([]dto.Order, error) {
	rows, err := s.orders.ByCustomer(ctx, customerID)
	return mapped(rows, err, mapper.OrderToDTO)
}

func (s *OrderService) ByOrderAt(ctx context.Context, at time.Time) ([]dto.Order, error) {
	rows, err := s.orders.ByOrderAt(ctx, at.UTC())
	return mapped(rows, err, mapper.OrderToDTO)
}

func (s *OrderService) OrderedBetween(ctx context.Context, start, end time.Time) ([]dto.Order, error) {
	rows, err := s.orders.OrderedBetween(ctx, start.UTC(), end.UTC())
	return mapped(rows, err, mapper.OrderToDTO)
}

func (s *OrderService) ByCustomerOrderedBetween(ctx context.Context, customerID uint, start, end time.Time) ([]dto.Order, error) {
	rows, err := s.orders.ByCustomerOrderedBetween(ctx, customerID, start.UTC(), end.UTC())
	return mapped(rows, err, mapper.OrderToDTO)
}

func (s *OrderService) ByCustomerName(ctx context.Context, firstName, lastName string) ([]dto.Order, error) {
	rows, err := s.orders.ByCustomerName(ctx, firstName, lastName)
	return mapped(rows, err, mapper.OrderToDTO)
}

// TotalLessThan filters on Σ quantity × price of each order's lines.
func (s *OrderService) TotalLessThan(ctx context.Context, price decimal.Decimal) ([]dto.Order, error) {
	rows, err := s.orders.TotalLessThan(ctx, price)
	return mapped(rows, err, mapper.OrderToDTO)
}

func (s *OrderService) ByTotalDesc(ctx context.Context) ([]dto.Order, error) {
	rows, err := s.orders.ByTotalDesc(ctx)
	return mapped(rows, err, mapper.OrderToDTO)
}
