package repositories

import (
	"errors"

	"bankinc/internal/models"
)

var (
	ErrCardNotFound    = errors.New("card not found")
	ErrInvalidCardData = errors.New("invalid card data")
	ErrDuplicateCard   = errors.New("card number already exists")
)

// CardRepository defines the interface for card persistence.
type CardRepository interface {
	Create(card *models.Card) error
	GetByNumber(number string) (*models.Card, error)
	GetActiveByNumber(number string) (*models.Card, error)
	// GetByNumberForUpdate locks the card row for the duration of the
	// surrounding transaction. Outside a transaction it behaves like
	// GetByNumber.
	GetByNumberForUpdate(number string) (*models.Card, error)
	Update(card *models.Card) error

	ExecuteInTransaction(fn func(CardRepository) error) error
}
