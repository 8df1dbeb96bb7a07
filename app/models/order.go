package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID         uint      `gorm:"primaryKey"`
	CustomerID uint      `gorm:"not null;index"`
	OrderAt    time.Time `gorm:"not null;index"`

	Customer *Customer `gorm:"constraint:OnDelete:CASCADE"`
}

// ProductOrder is one line of an order, keyed by (product, order).
type ProductOrder struct {
	ProductID uint            `gorm:"primaryKey;autoIncrement:false"`
	OrderID   uint            `gorm:"primaryKey;autoIncrement:false;index"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	VAT       decimal.Decimal `gorm:"column:vat;type:decimal(5,2);not null"`

	Product *Product `gorm:"constraint:OnDelete:CASCADE"`
	Order   *Order   `gorm:"constraint:OnDelete:CASCADE"`
}

// OrderTotal is Σ quantity × price over an order's lines, as SQL.
const OrderTotal = "COALESCE(SUM(product_orders.quantity * product_orders.price), 0)"
