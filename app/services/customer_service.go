package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/app/dto"
	"github.com/shashiranjanraj/ordermanager/app/mapper"
	"github.com/shashiranjanraj/ordermanager/app/models"
	"github.com/shashiranjanraj/ordermanager/app/repositories"
	"github.com/shashiranjanraj/ordermanager/pkg/apperr"
	"github.com/shashiranjanraj/ordermanager/pkg/auth"
	"github.com/shashiranjanraj/ordermanager/pkg/orm"
	"github.com/shashiranjanraj/ordermanager/pkg/rbac"
)

// TokenRevoker revokes every token a customer holds. *auth.Authenticator
// satisfies it whatever store backs it.
type TokenRevoker interface {
	RevokeAll(ctx context.Context, customerID uint) error
}

type CustomerService struct {
	db        *gorm.DB
	customers *repositories.CustomerRepository
	revoker   TokenRevoker
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db, customers: repositories.NewCustomerRepository(db)}
}

// WithRevoker makes Delete revoke the customer's tokens through r.
func (s *CustomerService) WithRevoker(r TokenRevoker) *CustomerService {
	s.revoker = r
	return s
}

func (s *CustomerService) List(ctx context.Context) ([]dto.Customer, error) {
	rows, err := s.customers.All(ctx)
	return mapped(rows, err, mapper.CustomerToDTO)
}

func (s *CustomerService) Page(ctx context.Context, page, limit int) ([]dto.Customer, orm.Pagination, error) {
	rows, p, err := s.customers.Page(ctx, page, limit)
	out, err := mapped(rows, err, mapper.CustomerToDTO)
	return out, p, err
}

func (s *CustomerService) Get(ctx context.Context, id uint) (dto.Customer, error) {
	c, err := s.customers.Find(ctx, id)
	if err != nil {
		return dto.Customer{}, lookupErr(err, "Customer", "id", id)
	}
	return mapper.CustomerToDTO(c), nil
}

// Create stores a new USER customer. The password is required here even
// though updates do not accept one.
func (s *CustomerService) Create(ctx context.Context, d dto.Customer) (dto.Customer, error) {
	if d.Password == "" {
		return dto.Customer{}, apperr.Validation(map[string]string{"password": "The password field is required."})
	}
	m := mapper.CustomerFromDTO(d)
	m.Role = rbac.RoleUser
	if err := s.insert(ctx, &m); err != nil {
		return dto.Customer{}, err
	}
	return mapper.CustomerToDTO(m), nil
}

// CreateWithRole stores a customer with an explicit role. Management and the
// account seeder use it.
func (s *CustomerService) CreateWithRole(ctx context.Context, d dto.Register, role rbac.Role) (dto.Customer, error) {
	m := mapper.RegisterToCustomer(d, role)
	if err := s.insert(ctx, &m); err != nil {
		return dto.Customer{}, err
	}
	return mapper.CustomerToDTO(m), nil
}

// insert hashes the password and stores m, rejecting a taken email with 409.
func (s *CustomerService) insert(ctx context.Context, m *models.Customer) error {
	taken, err := s.customers.ExistsByEmail(ctx, m.Email)
	if err != nil {
		return storeErr(err)
	}
	if taken {
		return apperr.Conflict("Email is already taken")
	}
	hash, err := auth.HashPassword(m.Password)
	if err != nil {
		return apperr.Store(err)
	}
	m.ID = 0
	m.Password = hash
	return storeErr(s.customers.Create(ctx, m))
}

// Update overwrites the name and birth date only. Email, password and role
// have dedicated flows.
func (s *CustomerService) Update(ctx context.Context, id uint, d dto.CustomerUpdate) (dto.Customer, error) {
	c, err := s.customers.Find(ctx, id)
	if err != nil {
		return dto.Customer{}, lookupErr(err, "Customer", "id", id)
	}
	mapper.ApplyCustomer(&c, d)
	if err := s.customers.Save(ctx, &c); err != nil {
		return dto.Customer{}, storeErr(err)
	}
	return mapper.CustomerToDTO(c), nil
}

// Delete revokes the customer's tokens, then removes the customer together
// with its orders, their lines and its token rows in one transaction.
func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	ok, err := s.customers.Exists(ctx, id)
	if err := mustExist(ok, err, "Customer", id); err != nil {
		return err
	}
	if s.revoker != nil {
		if err := s.revoker.RevokeAll(ctx, id); err != nil {
			return storeErr(err)
		}
	}
	err = orm.Transaction(ctx, s.db, func(tx *gorm.DB) error {
		orders := repositories.NewOrderRepository(tx)
		ids, err := orders.IDsByCustomer(ctx, id)
		if err != nil {
			return err
		}
		if err := repositories.NewProductOrderRepository(tx).DeleteByOrders(ctx, ids); err != nil {
			return err
		}
		if err := orders.DeleteByCustomer(ctx, id); err != nil {
			return err
		}
		if err := repositories.NewTokenRepository(tx).DeleteByCustomer(ctx, id); err != nil {
			return err
		}
		return s.customers.WithTx(tx).Delete(ctx, id)
	})
	return storeErr(err)
}

func (s *CustomerService) ByFirstName(ctx context.Context, firstName string) ([]dto.Customer, error) {
	rows, err := s.customers.ByFirstName(ctx, firstName)
	return mapped(rows, err, mapper.CustomerToDTO)
}

func (s *CustomerService) ByLastName(ctx context.Context, lastName string) ([]dto.Customer, error) {
	rows, err := s.customers.ByLastName(ctx, lastName)
	return mapped(rows, err, mapper.CustomerToDTO)
}

func (s *CustomerService) ByName(ctx context.Context, firstName, lastName string) ([]dto.Customer, error) {
	rows, err := s.customers.ByName(ctx, firstName, lastName)
	return mapped(rows, err, mapper.CustomerToDTO)
}

func (s *CustomerService) BornOn(ctx context.Context, day dto.Date) ([]dto.Customer, error) {
	rows, err := s.customers.BornAt(ctx, day.Time)
	return mapped(rows, err, mapper.CustomerToDTO)
}

func (s *CustomerService) BornBefore(ctx context.Context, day dto.Date) ([]dto.Customer, error) {
	rows, err := s.customers.BornBefore(ctx, day.Time)
	return mapped(rows, err, mapper.CustomerToDTO)
}

func (s *CustomerService) BornBetween(ctx context.Context, start, end dto.Date) ([]dto.Customer, error) {
	rows, err := s.customers.BornBetween(ctx, start.Time, end.Time)
	return mapped(rows, err, mapper.CustomerToDTO)
}
