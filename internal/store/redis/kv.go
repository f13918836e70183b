package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// KV stores each collection document as a plain string value. Documents are
// small (a single operator's portfolio and order book), so whole-value
// GET/SET round-trips are fine.
type KV struct {
	client *redis.Client
}

func NewKV(client *redis.Client) *KV {
	return &KV{client: client}
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := k.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, true, nil
}

func (k *KV) Set(ctx context.Context, key string, data []byte) error {
	if err := k.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (k *KV) Ping(ctx context.Context) error {
	return k.client.Ping(ctx).Err()
}
