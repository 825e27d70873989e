package repositories

import (
	"context"
	"encoding/json"
	"time"

	"bankinc/internal/models"

	"github.com/redis/go-redis/v9"
)

const cardCacheKeyPrefix = "card:"

type RedisCacheRepository struct {
	client *redis.Client
}

func NewRedisCacheRepository(client *redis.Client) CacheRepository {
	return &RedisCacheRepository{
		client: client,
	}
}

func (r *RedisCacheRepository) GetCard(ctx context.Context, number string) (*models.Card, error) {
	val, err := r.client.Get(ctx, cardCacheKeyPrefix+number).Result()
	if err != nil {
		return nil, err
	}

	var card models.Card
	if err := json.Unmarshal([]byte(val), &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *RedisCacheRepository) SetCard(ctx context.Context, card *models.Card, expiration time.Duration) error {
	data, err := json.Marshal(card)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, cardCacheKeyPrefix+card.CardNumber, data, expiration).Err()
}

func (r *RedisCacheRepository) DeleteCard(ctx context.Context, number string) error {
	return r.client.Del(ctx, cardCacheKeyPrefix+number).Err()
}

func (r *RedisCacheRepository) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

func (r *RedisCacheRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, expiration).Err()
}

func (r *RedisCacheRepository) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
