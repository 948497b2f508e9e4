package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

type Redis struct {
	client redisClient
}

func NewRedis(client redisClient) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) (float64, error) {
	v, err := r.client.Get(ctx, key).Float64()
	if errors.Is(err, redis.Nil) {
		return 0, ErrMiss
	}

	if err != nil {
		return 0, fmt.Errorf("redis.Get: %w", err)
	}

	return v, nil
}

func (r *Redis) Set(ctx context.Context, key string, value float64, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis.Set: %w", err)
	}

	return nil
}
