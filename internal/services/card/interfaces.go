package card

import (
	"context"

	"bankinc/internal/models"

	"github.com/shopspring/decimal"
)

// Service defines the card lifecycle and balance primitives.
type Service interface {
	// Lifecycle
	IssueCard(ctx context.Context, productCode string) (string, error)
	Activate(ctx context.Context, cardNumber string) error
	Block(ctx context.Context, cardNumber string) error

	// Balance operations
	Recharge(ctx context.Context, cardNumber string, amount decimal.Decimal) error
	GetBalance(ctx context.Context, cardNumber string) (decimal.Decimal, error)

	// Primitives used by the transaction service
	GetCard(ctx context.Context, cardNumber string) (*models.Card, error)
	UpdateCard(ctx context.Context, card *models.Card) error
}
