package cache

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/FinnDore/spot/internal/logging"
)

// Coordinator serializes upstream fetches per key. Concurrent callers during
// a miss join a single in-flight fetch and all receive its result, success or
// failure.
type Coordinator[T any] struct {
	store Cache[T]

	group singleflight.Group

	generationLock sync.Mutex
	generations    map[Key]uint64
}

func NewCoordinator[T any](store Cache[T]) *Coordinator[T] {
	return &Coordinator[T]{
		store:       store,
		generations: make(map[Key]uint64),
	}
}

func (c *Coordinator[T]) generation(key Key) uint64 {
	c.generationLock.Lock()
	defer c.generationLock.Unlock()
	return c.generations[key]
}

// setUnlessInvalidated stores the fetched value, unless the key was
// invalidated while the fetch was in flight. A fetch started before an
// invalidation must not resurrect the state it observed.
func (c *Coordinator[T]) setUnlessInvalidated(key Key, data T, generation uint64) {
	c.generationLock.Lock()
	defer c.generationLock.Unlock()

	if c.generations[key] != generation {
		return
	}
	c.store.set(key, data)
}

// GetOrFetch returns the cached value for key, or performs a single upstream
// fetch shared by every concurrent caller that misses during the same
// episode. Nothing is cached when the fetch fails, and every waiter receives
// the same error.
//
// Cancelling ctx only abandons the caller's wait. The shared fetch keeps
// running and still populates the cache for the remaining waiters.
func (c *Coordinator[T]) GetOrFetch(ctx context.Context, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	logger := logging.FromContext(ctx)

	if data, ok := c.store.get(key); ok {
		logger.InfoContext(ctx, "Cache lookup", "key", string(key), "cache", "hit")
		return data, nil
	}

	logger.InfoContext(ctx, "Cache lookup", "key", string(key), "cache", "miss")

	// The fetch must outlive the caller that happened to initiate it
	fetchCtx := context.WithoutCancel(ctx)

	results := c.group.DoChan(string(key), func() (interface{}, error) {
		// Another caller may have populated the store between our lookup and
		// the start of this flight
		if data, ok := c.store.get(key); ok {
			return data, nil
		}

		generation := c.generation(key)

		data, err := fetch(fetchCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", string(key), err)
		}

		c.setUnlessInvalidated(key, data, generation)
		return data, nil
	})

	select {
	case result := <-results:
		if result.Err != nil {
			var empty T
			return empty, result.Err
		}
		return result.Val.(T), nil
	case <-ctx.Done():
		var empty T
		return empty, ctx.Err()
	}
}

// Invalidate removes any cached value for key. A fetch already in flight is
// forgotten: later callers start a fresh fetch instead of joining it, and its
// result is discarded rather than stored.
func (c *Coordinator[T]) Invalidate(key Key) {
	c.generationLock.Lock()
	c.generations[key]++
	c.generationLock.Unlock()

	c.group.Forget(string(key))
	c.store.delete(key)
}
