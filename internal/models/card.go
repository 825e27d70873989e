package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Card represents an issued credit card. The card number is the
// cardholder-facing identifier: the first 6 digits are the product
// code, the remaining 10 are generated at issuance.
type Card struct {
	ID             uint            `gorm:"primarykey"`
	CardNumber     string          `gorm:"size:16;not null;uniqueIndex"`
	HolderName     string          `gorm:"size:50;not null"`
	ExpirationDate string          `gorm:"size:7;not null"` // MM/yyyy
	Active         bool            `gorm:"default:false"`
	Blocked        bool            `gorm:"default:true"`
	Balance        decimal.Decimal `gorm:"type:decimal(10,2);default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (c *Card) BeforeCreate(tx *gorm.DB) error {
	// Cards are issued blocked with no spending limit
	c.Active = false
	c.Blocked = true
	c.Balance = decimal.Zero
	return nil
}
