package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-copper-beam/internal/logger"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to url and pings it. It returns (nil, nil) when
// url is empty, meaning the shared tier is disabled.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

// Redis is a [Cache] keyed by strings that stores JSON-encoded values in
// Redis with a per-key TTL. Redis failures are logged and behave as
// misses, so the shared tier can never fail a request.
type Redis[V any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedis returns a Redis cache whose keys are prefix+key.
func NewRedis[V any](client *redis.Client, prefix string, ttl time.Duration) *Redis[V] {
	return &Redis[V]{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *Redis[V]) Get(ctx context.Context, key string) (V, bool) {
	var value V

	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return value, false
	}
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("key", c.prefix+key).Msg("redis cache read failed")
		return value, false
	}

	if err := json.Unmarshal(data, &value); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("key", c.prefix+key).Msg("redis cache entry is corrupt")
		return value, false
	}

	return value, true
}

func (c *Redis[V]) Set(ctx context.Context, key string, value V) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("key", c.prefix+key).Msg("redis cache entry cannot be encoded")
		return
	}

	if err := c.client.Set(ctx, c.prefix+key, data, c.ttl).Err(); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("key", c.prefix+key).Msg("redis cache write failed")
	}
}

func (c *Redis[V]) Remove(ctx context.Context, key string) {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("key", c.prefix+key).Msg("redis cache delete failed")
	}
}
