package transaction

import (
	"time"

	"bankinc/internal/services/card"
)

// expirationInstant parses an MM/yyyy expiration date and returns the
// last instant the card is usable. The card covers the entire stated
// month, so a card expiring 04/2026 works through 2026-04-30 23:59:59.
// Years must be four digits; anything ambiguous is a parsing error.
func expirationInstant(expiration string) (time.Time, error) {
	if len(expiration) != len("MM/yyyy") {
		return time.Time{}, ErrInvalidExpiry
	}
	t, err := time.Parse(card.ExpirationLayout, expiration)
	if err != nil {
		return time.Time{}, ErrInvalidExpiry
	}
	return t.AddDate(0, 1, 0).Add(-time.Second), nil
}

func isCardExpired(expiration string, now time.Time) (bool, error) {
	last, err := expirationInstant(expiration)
	if err != nil {
		return false, err
	}
	return now.After(last), nil
}
