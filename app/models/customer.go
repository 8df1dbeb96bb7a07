package models

import (
	"time"

	"github.com/shashiranjanraj/ordermanager/pkg/rbac"
)

// Customer is both a buyer and the authentication principal.
type Customer struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"size:255;not null;uniqueIndex"`
	Password  string    `gorm:"size:255;not null"` // bcrypt hash
	FirstName string    `gorm:"size:100;not null;index"`
	LastName  string    `gorm:"size:100;not null;index"`
	BornAt    time.Time `gorm:"type:date;not null;index"`
	Role      rbac.Role `gorm:"size:20;not null;default:USER"`
}

// Token is an issued bearer token. Revoked tokens never authenticate.
type Token struct {
	ID         uint      `gorm:"primaryKey"`
	Token      string    `gorm:"size:512;not null;uniqueIndex"`
	TokenType  string    `gorm:"size:20;not null;default:access"`
	Revoked    bool      `gorm:"not null;default:false"`
	Expired    bool      `gorm:"not null;default:false"`
	CustomerID uint      `gorm:"not null;index"`
	ExpiresAt  time.Time `gorm:"not null"`

	Customer *Customer `gorm:"constraint:OnDelete:CASCADE"`
}
