package card

import "time"

// Card number layout: 6-digit product code followed by 10 generated digits.
const (
	CardNumberLength  = 16
	ProductCodeLength = 6
)

// Expiration settings
const (
	ExpirationYears  = 3
	ExpirationLayout = "01/2006" // MM/yyyy
)

// Cache settings
const (
	CardCacheDuration = 5 * time.Minute
)

// Holder name pools. Placeholder for a real cardholder binding, a name
// is picked at random when the card is issued.
var (
	holderNames    = []string{"Juan", "Maria", "Carlos", "Ana", "Luis", "Sofia", "Pedro"}
	holderSurnames = []string{"Gomez", "Perez", "Lopez", "Rodriguez", "Martinez", "Fernandez"}
)
