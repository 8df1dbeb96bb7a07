package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a product in the catalogue.
type Product struct {
	ID        uint            `gorm:"primaryKey"`
	Slug      string          `gorm:"size:255;not null;index"`
	Name      string          `gorm:"size:255;not null;index"`
	Reference string          `gorm:"size:100;not null;index"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	VAT       decimal.Decimal `gorm:"column:vat;type:decimal(5,2);not null"`
	Stockable bool            `gorm:"not null;default:false"`
}

// Stock is an inventory level for a product. UpdatedAt is client-supplied,
// so gorm's automatic timestamping is switched off.
type Stock struct {
	ID        uint      `gorm:"primaryKey"`
	ProductID uint      `gorm:"not null;index"`
	Quantity  int       `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`

	Product *Product `gorm:"constraint:OnDelete:CASCADE"`
}
