package cache

import "github.com/DarinM223/arenacache/internal/arena"

// entry is one cached item together with its intrusive recency links.
// Entries live in the entry store's arena; prev/next are handles into that
// same arena rather than pointers, so links can be copied freely and a
// handle kept past release is detectably stale instead of dangling.
type entry[K comparable, V any] struct {
	key K
	val V

	// Recency links: front is MRU, back is LRU.
	// prev points toward the front, next toward the back.
	// A null handle terminates the chain on either side.
	prev arena.Handle
	next arena.Handle
}
