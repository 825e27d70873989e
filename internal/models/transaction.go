package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction records a single purchase against a card. CardNumber is
// denormalized from the owning card so that ownership checks compare
// stored numbers instead of walking the relation.
type Transaction struct {
	ID         string          `gorm:"primarykey;size:36"`
	CardID     uint            `gorm:"not null;index"`
	CardNumber string          `gorm:"size:16;not null;index"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Timestamp  time.Time       `gorm:"not null"`
	Anulated   bool            `gorm:"default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
