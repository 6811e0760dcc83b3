package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

// ResultCache 按请求键缓存计分结果，每个条目成本为 1
type ResultCache[V any] struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// NewResultCache maxEntries 为最多缓存的结果数，ttl 为 0 时不过期
func NewResultCache[V any](maxEntries int64, ttl time.Duration) (*ResultCache[V], error) {
	if maxEntries <= 0 {
		return nil, fmt.Errorf("cache size must be positive, got %d", maxEntries)
	}
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create ristretto cache: %w", err)
	}
	return &ResultCache[V]{cache: cache, ttl: ttl}, nil
}

// Put 写入是异步的，可能被准入策略丢弃
func (c *ResultCache[V]) Put(key string, value V) bool {
	return c.PutWithTTL(key, value, c.ttl)
}

func (c *ResultCache[V]) PutWithTTL(key string, value V, ttl time.Duration) bool {
	return c.cache.SetWithTTL(key, value, 1, ttl)
}

func (c *ResultCache[V]) Lookup(key string) (V, bool) {
	var zero V
	v, ok := c.cache.Get(key)
	if !ok {
		return zero, false
	}
	value, ok := v.(V)
	if !ok {
		return zero, false
	}
	return value, true
}

// Flush 等待缓冲区中的写入生效
func (c *ResultCache[V]) Flush() {
	c.cache.Wait()
}

func (c *ResultCache[V]) Evict(key string) {
	c.cache.Del(key)
}

func (c *ResultCache[V]) Close() {
	c.cache.Close()
}
