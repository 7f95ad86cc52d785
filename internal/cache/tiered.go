package cache

import "context"

// Tiered layers a fast local cache over a shared one. Reads try local
// first and backfill it from shared; writes and removals go to both.
type Tiered[K comparable, V any] struct {
	local  Cache[K, V]
	shared Cache[K, V]
}

// NewTiered returns local alone when shared is nil.
func NewTiered[K comparable, V any](local, shared Cache[K, V]) Cache[K, V] {
	if shared == nil {
		return local
	}
	return &Tiered[K, V]{local: local, shared: shared}
}

func (c *Tiered[K, V]) Get(ctx context.Context, key K) (V, bool) {
	if value, ok := c.local.Get(ctx, key); ok {
		return value, true
	}

	value, ok := c.shared.Get(ctx, key)
	if ok {
		c.local.Set(ctx, key, value)
	}
	return value, ok
}

func (c *Tiered[K, V]) Set(ctx context.Context, key K, value V) {
	c.local.Set(ctx, key, value)
	c.shared.Set(ctx, key, value)
}

func (c *Tiered[K, V]) Remove(ctx context.Context, key K) {
	c.local.Remove(ctx, key)
	c.shared.Remove(ctx, key)
}
