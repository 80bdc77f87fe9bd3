package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache is a thin generic wrapper around ristretto used for the parcel
// record set and derived data.
type Cache[T any] struct {
	impl      *ristretto.Cache[string, T]
	cacheType string
}

// New creates a new cache with the given cost function and cache type
func New[T any](costFunc func(T) int64, cacheType string) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: 1e5,     // number of keys to track frequency of
		MaxCost:     1 << 26, // maximum cost of cache (64MB)
		BufferItems: 64,      // number of keys per Get buffer
		Metrics:     true,
		Cost:        costFunc,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{
		impl:      impl,
		cacheType: cacheType,
	}, nil
}

// Get retrieves a value from the cache
func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores a value in the cache with no expiry.  The parcel set lives
// until an explicit refresh.
func (c *Cache[T]) Set(key string, value T, cost int64) bool {
	return c.impl.Set(key, value, cost)
}

// SetWithTTL stores a value in the cache with a specific TTL
func (c *Cache[T]) SetWithTTL(key string, value T, cost int64, ttl time.Duration) bool {
	return c.impl.SetWithTTL(key, value, cost, ttl)
}

// Clear removes all items from the cache
func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait waits for the cache to finish processing
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

// GetItemCount returns the current number of items in the cache
func (c *Cache[T]) GetItemCount() int64 {
	return int64(c.impl.Metrics.KeysAdded() - c.impl.Metrics.KeysEvicted())
}
