// Package ttlcache is a small keyed cache that spares the console a
// network round trip when the same entity is asked for again within a
// short window. Staleness is a TTL comparison against the stored fetch
// time; there are no invalidation events. Callers that need fresh data
// pass force to GetOrFetch.
package ttlcache

import (
	"context"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
)

type entry[V any] struct {
	value     V
	fetchedAt time.Time
}

// Cache caches values under comparable keys. A ttl of zero means entries
// never expire (the problem-detail cache wants this).
type Cache[K comparable, V any] struct {
	entries *xsync.MapOf[K, entry[V]]
	ttl     time.Duration
	now     func() time.Time
}

type Option[K comparable, V any] func(*Cache[K, V])

// WithClock injects the time source. Tests control expiry with it.
func WithClock[K comparable, V any](now func() time.Time) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.now = now
	}
}

func New[K comparable, V any](ttl time.Duration, opts ...Option[K, V]) *Cache[K, V] {
	c := &Cache[K, V]{
		entries: xsync.NewMapOf[K, entry[V]](),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached value when present and not expired.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	var zero V
	e, ok := c.entries.Load(key)
	if !ok {
		return zero, false
	}
	if c.expired(e) {
		c.entries.Delete(key)
		return zero, false
	}
	return e.value, true
}

func (c *Cache[K, V]) Put(key K, value V) {
	c.entries.Store(key, entry[V]{value: value, fetchedAt: c.now()})
}

func (c *Cache[K, V]) Invalidate(key K) {
	c.entries.Delete(key)
}

func (c *Cache[K, V]) Purge() {
	c.entries.Clear()
}

// GetOrFetch answers from cache unless the entry is missing, expired or
// force is set; fetch results are stored on success only.
func (c *Cache[K, V]) GetOrFetch(
	ctx context.Context,
	key K,
	force bool,
	fetch func(ctx context.Context) (V, error),
) (V, error) {
	if !force {
		if v, ok := c.Get(key); ok {
			return v, nil
		}
	}
	v, err := fetch(ctx)
	if err != nil {
		var zero V
		return zero, err
	}
	c.Put(key, v)
	return v, nil
}

func (c *Cache[K, V]) expired(e entry[V]) bool {
	if c.ttl <= 0 {
		return false
	}
	return c.now().Sub(e.fetchedAt) >= c.ttl
}
