package cache

import (
	"fmt"

	"github.com/DarinM223/arenacache/internal/arena"
)

// lruCache composes the three collaborators from the package docs:
// the store owns entry storage, the recency list owns ordering, and the
// index owns key→handle resolution. lruCache itself only orchestrates.
//
// Invariant after every completed operation:
//
//	len(index) == list.len == store.len() <= capacity
type lruCache[K comparable, V any] struct {
	capacity int
	store    *store[K, V]
	list     recencyList[K, V]
	index    map[K]arena.Handle

	opt Options[K, V]
}

// New constructs a cache with the provided Options.
// Defaults:
//   - nil Metrics -> NoopMetrics
//
// Capacity must be non-negative; a negative capacity panics. A capacity of
// zero is legal and yields a cache on which Set never stores anything.
func New[K comparable, V any](opt Options[K, V]) Cache[K, V] {
	if opt.Capacity < 0 {
		panic(fmt.Sprintf("cache: negative capacity %d", opt.Capacity))
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}

	s := newStore[K, V](opt.Capacity)
	// return pointer-to-impl as the interface (avoids unexported-return lint)
	c := &lruCache[K, V]{
		capacity: opt.Capacity,
		store:    s,
		list:     recencyList[K, V]{s: s},
		index:    make(map[K]arena.Handle, opt.Capacity),
		opt:      opt,
	}
	return c
}

// Get returns the value for k and promotes the entry to MRU on a hit.
// A miss has no side effects and never counts as an error.
func (c *lruCache[K, V]) Get(k K) (V, bool) {
	h, ok := c.index[k]
	if !ok {
		c.opt.Metrics.Miss()
		var zero V
		return zero, false
	}
	c.list.moveToFront(h)
	c.opt.Metrics.Hit()
	return c.store.get(h).val, true
}

// Set inserts or updates k→v as the most-recently-used entry.
//
// Updating an existing key replaces its value in place and re-threads the
// entry to the front; Len is unchanged. Inserting a new key into a full
// cache evicts the current LRU entry first, so Len never exceeds Cap after
// Set returns. On a zero-capacity cache Set is a no-op.
func (c *lruCache[K, V]) Set(k K, v V) {
	if h, ok := c.index[k]; ok {
		c.list.unlink(h)
		c.store.get(h).val = v
		c.list.pushFront(h)
		return
	}

	if c.capacity == 0 {
		return
	}
	if c.list.len == c.capacity {
		c.evictLRU()
	}

	h := c.store.create(k, v)
	c.list.pushFront(h)
	c.index[k] = h
	c.opt.Metrics.Size(c.list.len)
}

// Len returns the number of resident entries.
func (c *lruCache[K, V]) Len() int { return c.list.len }

// Cap returns the configured capacity.
func (c *lruCache[K, V]) Cap() int { return c.capacity }

// Purge releases every resident entry exactly once and leaves the cache
// empty but usable.
func (c *lruCache[K, V]) Purge() {
	c.store.releaseAll()
	c.list.reset()
	clear(c.index)
	c.opt.Metrics.Size(0)
}

// Close releases all entries. It exists so callers can treat the cache as
// an io.Closer-shaped resource; there are no background workers to stop.
func (c *lruCache[K, V]) Close() error {
	c.Purge()
	return nil
}

// evictLRU removes the least-recently-used entry: index first, then list,
// then storage, so the store's release precondition (entry unlinked and
// unindexed) holds.
func (c *lruCache[K, V]) evictLRU() {
	h := c.list.tail()
	if h.IsNull() {
		// Unreachable while the len==capacity bookkeeping is intact.
		panic("cache: eviction requested with an empty recency list")
	}
	e := c.store.get(h)
	k, v := e.key, e.val

	delete(c.index, k)
	c.list.unlink(h)
	c.store.release(h)

	c.opt.Metrics.Evict()
	if cb := c.opt.OnEvict; cb != nil {
		cb(k, v)
	}
}
