// Package dto holds the request and response shapes of the HTTP API.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer never exposes the password: it is accepted on create and
// left empty on every response.
type Customer struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"              validate:"required,email,max=255"`
	Password  string `json:"password,omitempty" validate:"nullable,min=8,max=72"`
	FirstName string `json:"firstName"          validate:"required,max=100"`
	LastName  string `json:"lastName"           validate:"required,max=100"`
	BornAt    Date   `json:"bornAt"             validate:"required"`
	Role      string `json:"role,omitempty"`
}

// CustomerUpdate is the PUT body for a customer. ID, Email, Password and Role
// are accepted so a client can send back what it read, but they are ignored.
type CustomerUpdate struct {
	ID        uint   `json:"id,omitempty"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password,omitempty"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName"  validate:"required,max=100"`
	BornAt    Date   `json:"bornAt"    validate:"required"`
	Role      string `json:"role,omitempty"`
}

type Order struct {
	ID         uint      `json:"id"`
	CustomerID uint      `json:"customerId" validate:"required"`
	OrderAt    time.Time `json:"orderAt"    validate:"required"`
}

type Product struct {
	ID        uint             `json:"id"`
	Slug      string           `json:"slug"      validate:"required,max=255"`
	Name      string           `json:"name"      validate:"required,max=255"`
	Reference string           `json:"reference" validate:"required,max=100"`
	Price     *decimal.Decimal `json:"price"     validate:"required,gt=0"`
	VAT       *decimal.Decimal `json:"vat"       validate:"required,gt=0"`
	Stockable bool             `json:"stockable"`
}

type Stock struct {
	ID        uint      `json:"id"`
	ProductID uint      `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity"  validate:"gte=0"`
	UpdatedAt time.Time `json:"updatedAt" validate:"required"`
}

type ProductOrder struct {
	ProductID uint             `json:"productId" validate:"required"`
	OrderID   uint             `json:"orderId"   validate:"required"`
	Quantity  int              `json:"quantity"  validate:"gte=0"`
	Price     *decimal.Decimal `json:"price"     validate:"required,gte=0"`
	VAT       *decimal.Decimal `json:"vat"       validate:"required,gte=0"`
}

// ── Auth ─────────────────────────────────────────────────────────────────────

type Register struct {
	Email     string `json:"email"     validate:"required,email,max=255"`
	Password  string `json:"password"  validate:"required,min=8,max=72"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName"  validate:"required,max=100"`
	BornAt    Date   `json:"bornAt"    validate:"required"`
}

type Authenticate struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ── Management ───────────────────────────────────────────────────────────────

type ManagedCustomer struct {
	Register
	Role string `json:"role" validate:"required,in=USER,MANAGER,ADMIN"`
}

type RoleChange struct {
	Role string `json:"role" validate:"required,in=USER,MANAGER,ADMIN"`
}

// ── Export ───────────────────────────────────────────────────────────────────

// OrderSnapshot is the document written by orders:export.
type OrderSnapshot struct {
	ExportedAt time.Time     `json:"exportedAt"`
	Orders     []OrderExport `json:"orders"`
}

type OrderExport struct {
	Order
	Total decimal.Decimal `json:"total"`
	Lines []ProductOrder  `json:"lines"`
}
