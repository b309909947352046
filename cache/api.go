package cache

// Cache is an in-memory key/value cache with LRU eviction.
//
// Implementations returned by New are single-owner: no internal locking,
// no background goroutines. Wrap with Synced when the cache is shared
// across goroutines.
//
// Typical complexity for operations is amortized O(1):
// a map lookup plus constant-time recency-list adjustments.
type Cache[K comparable, V any] interface {
	// Set inserts or updates k→v and makes it the most-recently-used
	// entry. Inserting into a full cache first evicts the
	// least-recently-used entry. On a zero-capacity cache Set stores
	// nothing.
	Set(k K, v V)

	// Get returns the value for k and a boolean flag indicating presence.
	// A hit promotes the entry to most-recently-used; a miss has no side
	// effects. Get never evicts.
	Get(k K) (V, bool)

	// Len returns the number of resident entries.
	Len() int

	// Cap returns the capacity the cache was constructed with.
	Cap() int

	// Purge releases every resident entry. The cache remains usable.
	Purge()

	// Close releases all entries and marks the cache closed.
	// Current implementation is a soft close and returns nil.
	Close() error
}
