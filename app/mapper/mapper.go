// Package mapper converts between persistence models and API DTOs. Every
// pair has an explicit function so a renamed field fails to compile instead
// of silently dropping data.
package mapper

import (
	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/ordermanager/app/dto"
	"github.com/shashiranjanraj/ordermanager/app/models"
	"github.com/shashiranjanraj/ordermanager/pkg/collection"
	"github.com/shashiranjanraj/ordermanager/pkg/rbac"
)

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func decVal(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// ── Customer ─────────────────────────────────────────────────────────────────

// CustomerToDTO never copies the password hash.
func CustomerToDTO(m models.Customer) dto.Customer {
	return dto.Customer{
		ID:        m.ID,
		Email:     m.Email,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		BornAt:    dto.NewDate(m.BornAt),
		Role:      string(m.Role),
	}
}

// CustomerFromDTO ignores ID and Role; both are assigned by the service.
// The password is copied as given and must be hashed by the caller.
func CustomerFromDTO(d dto.Customer) models.Customer {
	return models.Customer{
		Email:     d.Email,
		Password:  d.Password,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		BornAt:    d.BornAt.UTC(),
	}
}

// ApplyCustomer copies the updatable customer fields. Email, password and
// role are never taken from an update.
func ApplyCustomer(m *models.Customer, d dto.CustomerUpdate) {
	m.FirstName = d.FirstName
	m.LastName = d.LastName
	m.BornAt = d.BornAt.UTC()
}

func RegisterToCustomer(d dto.Register, role rbac.Role) models.Customer {
	return models.Customer{
		Email:     d.Email,
		Password:  d.Password,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		BornAt:    d.BornAt.UTC(),
		Role:      role,
	}
}

func CustomersToDTO(ms []models.Customer) []dto.Customer {
	return collection.Map(ms, CustomerToDTO)
}

// ── Order ────────────────────────────────────────────────────────────────────

func OrderToDTO(m models.Order) dto.Order {
	return dto.Order{ID: m.ID, CustomerID: m.CustomerID, OrderAt: m.OrderAt.UTC()}
}

func OrderFromDTO(d dto.Order) models.Order {
	return models.Order{CustomerID: d.CustomerID, OrderAt: d.OrderAt.UTC()}
}

// ApplyOrder moves m to d's customer and date. m.ID is kept.
func ApplyOrder(m *models.Order, d dto.Order) {
	m.CustomerID = d.CustomerID
	m.OrderAt = d.OrderAt.UTC()
}

func OrdersToDTO(ms []models.Order) []dto.Order {
	return collection.Map(ms, OrderToDTO)
}

// ── Product ──────────────────────────────────────────────────────────────────

func ProductToDTO(m models.Product) dto.Product {
	return dto.Product{
		ID:        m.ID,
		Slug:      m.Slug,
		Name:      m.Name,
		Reference: m.Reference,
		Price:     decPtr(m.Price),
		VAT:       decPtr(m.VAT),
		Stockable: m.Stockable,
	}
}

func ProductFromDTO(d dto.Product) models.Product {
	return models.Product{
		Slug:      d.Slug,
		Name:      d.Name,
		Reference: d.Reference,
		Price:     decVal(d.Price),
		VAT:       decVal(d.VAT),
		Stockable: d.Stockable,
	}
}

func ApplyProduct(m *models.Product, d dto.Product) {
	m.Slug = d.Slug
	m.Name = d.Name
	m.Reference = d.Reference
	m.Price = decVal(d.Price)
	m.VAT = decVal(d.VAT)
	m.Stockable = d.Stockable
}

func ProductsToDTO(ms []models.Product) []dto.Product {
	return collection.Map(ms, ProductToDTO)
}

// ── Stock ────────────────────────────────────────────────────────────────────

func StockToDTO(m models.Stock) dto.Stock {
	return dto.Stock{ID: m.ID, ProductID: m.ProductID, Quantity: m.Quantity, UpdatedAt: m.UpdatedAt.UTC()}
}

func StockFromDTO(d dto.Stock) models.Stock {
	return models.Stock{ProductID: d.ProductID, Quantity: d.Quantity, UpdatedAt: d.UpdatedAt.UTC()}
}

// ApplyStock sets quantity and timestamp. The product reference is fixed.
func ApplyStock(m *models.Stock, d dto.Stock) {
	m.Quantity = d.Quantity
	m.UpdatedAt = d.UpdatedAt.UTC()
}

func StocksToDTO(ms []models.Stock) []dto.Stock {
	return collection.Map(ms, StockToDTO)
}

// ── ProductOrder ─────────────────────────────────────────────────────────────

func ProductOrderToDTO(m models.ProductOrder) dto.ProductOrder {
	return dto.ProductOrder{
		ProductID: m.ProductID,
		OrderID:   m.OrderID,
		Quantity:  m.Quantity,
		Price:     decPtr(m.Price),
		VAT:       decPtr(m.VAT),
	}
}

func ProductOrderFromDTO(d dto.ProductOrder) models.ProductOrder {
	return models.ProductOrder{
		ProductID: d.ProductID,
		OrderID:   d.OrderID,
		Quantity:  d.Quantity,
		Price:     decVal(d.Price),
		VAT:       decVal(d.VAT),
	}
}

// ApplyProductOrder overwrites quantity, price and VAT. The key in d is
// ignored.
func ApplyProductOrder(m *models.ProductOrder, d dto.ProductOrder) {
	m.Quantity = d.Quantity
	m.Price = decVal(d.Price)
	m.VAT = decVal(d.VAT)
}

func ProductOrdersToDTO(ms []models.ProductOrder) []dto.ProductOrder {
	return collection.Map(ms, ProductOrderToDTO)
}
