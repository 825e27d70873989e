package repositories

import (
	"errors"

	"bankinc/internal/models"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// TransactionRepository defines the interface for ledger persistence.
// It also exposes the card primitives needed inside the purchase and
// anulation units, so a balance write and a ledger write can share one
// database transaction.
type TransactionRepository interface {
	Create(tx *models.Transaction) error
	GetByID(id string) (*models.Transaction, error)
	Update(tx *models.Transaction) error

	GetCardForUpdate(number string) (*models.Card, error)
	UpdateCard(card *models.Card) error

	ExecuteInTransaction(fn func(TransactionRepository) error) error
}
