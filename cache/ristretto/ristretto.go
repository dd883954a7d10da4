package ristretto

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/reelmark/reelmark/cache"
)

// Cache adapts a ristretto cache to the cache.Cache interface. Keys are
// strings; the value type is the caller's choice.
type Cache[V any] struct {
	cache *ristretto.Cache[string, V]
}

func (rc *Cache[V]) Get(key string) (V, bool) {
	return rc.cache.Get(key)
}

func (rc *Cache[V]) Set(key string, value V, cost int64) bool {
	return rc.cache.Set(key, value, cost)
}

func (rc *Cache[V]) SetWithTTL(key string, value V, cost int64, ttl time.Duration) bool {
	return rc.cache.SetWithTTL(key, value, cost, ttl)
}

func (rc *Cache[V]) Delete(key string) {
	rc.cache.Del(key)
}

// sizeParams maps a named size level to ristretto tuning parameters.
// NumCounters should be roughly 10x the expected number of live items.
func sizeParams(level string) (numCounters, maxCost int64, err error) {
	switch level {
	case "small":
		return 1e4, 1 << 20, nil // ~1k items, 1MB
	case "medium":
		return 1e5, 1 << 24, nil // ~10k items, 16MB
	case "large":
		return 1e6, 1 << 27, nil // ~100k items, 128MB
	case "very-large":
		return 1e7, 1 << 30, nil // ~1M items, 1GB
	default:
		return 0, 0, fmt.Errorf("unknown cache size level: %q", level)
	}
}

// New creates a string-keyed ristretto cache sized by level: "small",
// "medium", "large" or "very-large".
func New[V any](level string) (cache.Cache[string, V], error) {
	numCounters, maxCost, err := sizeParams(level)
	if err != nil {
		return nil, err
	}

	c, err := ristretto.NewCache(&ristretto.Config[string, V]{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		return nil, err
	}

	return &Cache[V]{cache: c}, nil
}
