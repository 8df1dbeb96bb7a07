package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/app/models"
)

// CustomerRepository handles database operations for Customer.
type CustomerRepository struct {
	entity[models.Customer]
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{entity[models.Customer]{base[models.Customer]{db: db, order: "customers.id"}}}
}

// WithTx returns a copy bound to tx.
func (r *CustomerRepository) WithTx(tx *gorm.DB) *CustomerRepository {
	return NewCustomerRepository(tx)
}

// FindByEmail looks up a customer by their email address.
func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (models.Customer, error) {
	var c models.Customer
	err := r.query(ctx).Where("email = ?", email).First(&c).Error
	return c, err
}

func (r *CustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	err := r.query(ctx).Where("email = ?", email).Count(&n).Error
	return n > 0, err
}

func (r *CustomerRepository) ByFirstName(ctx context.Context, firstName string) ([]models.Customer, error) {
	return r.where(ctx, "first_name = ?", firstName)
}

func (r *CustomerRepository) ByLastName(ctx context.Context, lastName string) ([]models.Customer, error) {
	return r.where(ctx, "last_name = ?", lastName)
}

func (r *CustomerRepository) ByName(ctx context.Context, firstName, lastName string) ([]models.Customer, error) {
	return r.where(ctx, "first_name = ? AND last_name = ?", firstName, lastName)
}

func (r *CustomerRepository) BornAt(ctx context.Context, day time.Time) ([]models.Customer, error) {
	return r.where(ctx, "born_at = ?", day)
}

func (r *CustomerRepository) BornBefore(ctx context.Context, day time.Time) ([]models.Customer, error) {
	return r.where(ctx, "born_at < ?", day)
}

// BornBetween is inclusive on both ends.
func (r *CustomerRepository) BornBetween(ctx context.Context, start, end time.Time) ([]models.Customer, error) {
	return r.where(ctx, "born_at BETWEEN ? AND ?", start, end)
}
