// Package cache provides a generic, capacity-bounded in-memory cache with
// least-recently-used eviction in amortized O(1) per operation.
//
// # Design
//
//   - Storage: entries live in a growable arena (internal/arena). Every
//     reference to an entry — the recency links inside entries, the values
//     of the key index — is a stable arena handle, never a raw pointer.
//     Handles carry a per-slot generation, so a handle held across a
//     free/reuse cycle is caught as stale instead of silently aliasing the
//     slot's new occupant. This is what makes the intrusive unlink/relink
//     bookkeeping safe: links can be copied freely and a freed slot can be
//     recycled without a dangling-pointer class of bug.
//
//   - Ordering: an intrusive doubly linked recency list threads through
//     the arena, front = most recently used, back = least recently used.
//     Unlink from any position (front, back, interior) and insert-at-front
//     are O(1); "already at front" is decided by handle equality.
//
//   - Lookup: a map[K]Handle resolves keys in O(1). Only the recency list
//     encodes order; the index encodes nothing but membership.
//
//   - Eviction: strict LRU. Inserting a new key into a full cache first
//     removes the entry at the back of the recency list. After every
//     completed Set, Len() <= Cap(). Get never evicts.
//
//   - Capacity zero: a Cache constructed with Capacity 0 never retains an
//     entry; Set on it is a no-op and Get always misses. This is a
//     documented degenerate case, not an error.
//
//   - Concurrency: a Cache from New is single-owner — no internal locking,
//     no goroutines, no suspension points. Synced wraps one behind a
//     single exclusive mutex held for the whole of each operation, and
//     adds GetOrLoad with singleflight load coalescing.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Size signals.
//     By default NoopMetrics is used; plug the Prometheus adapter from
//     metrics/prom to export them.
//
//   - Callbacks: Options.OnEvict(k, v) is called for every capacity
//     eviction, after the entry has been removed.
//
// # Basic usage
//
//	c := cache.New[int, string](cache.Options[int, string]{Capacity: 3})
//	c.Set(1, "one")
//	if v, ok := c.Get(1); ok {
//	    _ = v
//	}
//
// # Shared across goroutines
//
//	s := cache.NewSynced[string, []byte](cache.Options[string, []byte]{
//	    Capacity: 10_000,
//	    Loader: func(ctx context.Context, k string) ([]byte, error) {
//	        return fetch(ctx, k) // e.g. read from a backing store
//	    },
//	})
//	v, err := s.GetOrLoad(ctx, "key")
//
// # Exporting metrics
//
//	m := prom.New(nil, "arenacache", "demo", nil) // implements cache.Metrics
//	c := cache.New[string, []byte](cache.Options[string, []byte]{
//	    Capacity: 10_000,
//	    Metrics:  m,
//	})
package cache
