package cache

import (
	"sync"
	"time"
)

type basicCacheEntry[T any] struct {
	data      T
	expiresAt time.Time
}

// basicCache is a map-backed Cache with an injectable clock. Expiry is
// checked lazily on get, which is enough for the tiny fixed keyspace.
type basicCache[T any] struct {
	ttl     time.Duration
	nowFunc func() time.Time

	cacheLock sync.Mutex
	cache     map[Key]basicCacheEntry[T]
}

func (c *basicCache[T]) get(key Key) (T, bool) {
	c.cacheLock.Lock()
	defer c.cacheLock.Unlock()

	entry, ok := c.cache[key]
	if !ok {
		var empty T
		return empty, false
	}

	if !c.nowFunc().Before(entry.expiresAt) {
		delete(c.cache, key)
		var empty T
		return empty, false
	}

	return entry.data, true
}

func (c *basicCache[T]) set(key Key, data T) {
	c.cacheLock.Lock()
	defer c.cacheLock.Unlock()

	c.cache[key] = basicCacheEntry[T]{
		data:      data,
		expiresAt: c.nowFunc().Add(c.ttl),
	}
}

func (c *basicCache[T]) delete(key Key) {
	c.cacheLock.Lock()
	defer c.cacheLock.Unlock()

	delete(c.cache, key)
}

func NewBasicCache[T any](ttl time.Duration, nowFunc func() time.Time) Cache[T] {
	return &basicCache[T]{
		ttl:     ttl,
		nowFunc: nowFunc,
		cache:   make(map[Key]basicCacheEntry[T]),
	}
}
