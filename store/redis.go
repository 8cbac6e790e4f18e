package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisBackend keeps the document under a single Redis key.
type RedisBackend struct {
	client *redis.Client
}

func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client}
}

func (b *RedisBackend) Load(ctx context.Context) ([]byte, error) {
	data, err := b.client.Get(ctx, StorageKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	return data, nil
}

func (b *RedisBackend) Save(ctx context.Context, data []byte) error {
	if err := b.client.Set(ctx, StorageKey, data, 0).Err(); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}
