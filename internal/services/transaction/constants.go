package transaction

import "time"

// AnulationWindow is how long after a purchase it can still be reversed.
const AnulationWindow = 24 * time.Hour

// Cache settings
const (
	TransactionCachePrefix   = "transaction:"
	TransactionCacheDuration = time.Hour
)
