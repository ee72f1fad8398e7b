package storage

import (
	"context"
	"errors"
	"time"

	"rental-cart/internal/infra"
	"rental-cart/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
)

// Redis stores each cart state as a plain string value. A zero ttl keeps
// keys forever; otherwise every save refreshes the expiry.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, shared.ErrStateNotFound
	}
	if err != nil {
		return nil, infra.WrapStorageErr("failed to load cart state", err, infra.KindUnavailable)
	}
	return data, nil
}

func (r *Redis) Save(ctx context.Context, key string, data []byte) error {
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return infra.WrapStorageErr("failed to save cart state", err, infra.KindUnavailable)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return infra.WrapStorageErr("failed to delete cart state", err, infra.KindUnavailable)
	}
	return nil
}

// Ping verifies the connection at startup.
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return infra.WrapStorageErr("redis unreachable", err, infra.KindUnavailable)
	}
	return nil
}
