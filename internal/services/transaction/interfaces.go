package transaction

import (
	"context"

	"bankinc/internal/models"

	"github.com/shopspring/decimal"
)

// Service defines the purchase and anulation operations.
type Service interface {
	Purchase(ctx context.Context, cardNumber string, price decimal.Decimal) (string, error)
	GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error)
	AnulateTransaction(ctx context.Context, cardNumber, transactionID string) (bool, error)
}
