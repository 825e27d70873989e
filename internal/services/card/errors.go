package card

import "errors"

// Service errors
var (
	ErrInvalidProductCode = errors.New("product code must be a 6-digit number")
	ErrInvalidCard        = errors.New("invalid card data")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrCardNotFound       = errors.New("card not found")
	ErrCardAlreadyActive  = errors.New("card is already active")
	ErrCardAlreadyBlocked = errors.New("card is already blocked")
	ErrCardBlocked        = errors.New("card is blocked")
	ErrCardPersistence    = errors.New("failed to persist card")
)
