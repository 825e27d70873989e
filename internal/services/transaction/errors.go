package transaction

import "errors"

// Service errors
var (
	ErrInvalidAmount         = errors.New("transaction amount must be greater than zero")
	ErrInvalidTransactionID  = errors.New("invalid transaction id format")
	ErrInvalidExpiry         = errors.New("invalid expiration date format")
	ErrTransactionNotFound   = errors.New("transaction not found")
	ErrCardNotActive         = errors.New("card is not activated")
	ErrCardExpired           = errors.New("card is expired")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrNotCardTransaction    = errors.New("transaction does not belong to this card")
	ErrAnulationWindowClosed = errors.New("transaction cannot be anulated after 24 hours")
	ErrAlreadyAnulated       = errors.New("transaction already anulated")
	ErrProcessingFailed      = errors.New("transaction processing failed")
)
