// Package cache provides the TTL caches that front Postgres reads: a
// bounded in-process LRU with per-entry expiry, an optional Redis tier
// shared between instances, and a combinator that layers the two.
//
// Caches are read-through/write-through helpers only. Callers populate
// them after a successful storage read or write and rely on TTL expiry
// instead of explicit invalidation.
package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache is a key/value cache with fixed-TTL entries.
type Cache[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V)
	Remove(ctx context.Context, key K)
}

// LRU is an in-process [Cache] with bounded capacity. Entries expire
// after the TTL given to [NewLRU]; when full, the least recently used
// entry is evicted.
type LRU[K comparable, V any] struct {
	lru *expirable.LRU[K, V]
}

// NewLRU returns an LRU holding at most size entries for ttl each.
func NewLRU[K comparable, V any](size int, ttl time.Duration) *LRU[K, V] {
	return &LRU[K, V]{lru: expirable.NewLRU[K, V](size, nil, ttl)}
}

func (c *LRU[K, V]) Get(_ context.Context, key K) (V, bool) {
	return c.lru.Get(key)
}

func (c *LRU[K, V]) Set(_ context.Context, key K, value V) {
	c.lru.Add(key, value)
}

func (c *LRU[K, V]) Remove(_ context.Context, key K) {
	c.lru.Remove(key)
}

// Len returns the number of live entries.
func (c *LRU[K, V]) Len() int {
	return c.lru.Len()
}
