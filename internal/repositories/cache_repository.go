package repositories

import (
	"context"
	"time"

	"bankinc/internal/models"
)

// CacheRepository defines the caching operations used by the services.
type CacheRepository interface {
	GetCard(ctx context.Context, number string) (*models.Card, error)
	SetCard(ctx context.Context, card *models.Card, expiration time.Duration) error
	DeleteCard(ctx context.Context, number string) error

	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}
