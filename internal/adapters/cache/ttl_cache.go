package cache

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
)

type ttlCache[T any] struct {
	cache *ttlcache.Cache[Key, T]
}

func (c *ttlCache[T]) get(key Key) (T, bool) {
	item := c.cache.Get(key)
	if item == nil {
		var empty T
		return empty, false
	}
	return item.Value(), true
}

func (c *ttlCache[T]) set(key Key, data T) {
	c.cache.Set(key, data, ttlcache.DefaultTTL)
}

func (c *ttlCache[T]) delete(key Key) {
	c.cache.Delete(key)
}

func NewTTLCache[T any](ttl time.Duration) Cache[T] {
	backing := ttlcache.New[Key, T](
		ttlcache.WithTTL[Key, T](ttl),
		ttlcache.WithDisableTouchOnHit[Key, T](),
	)
	go backing.Start()
	return &ttlCache[T]{cache: backing}
}
