package cache

import "github.com/DarinM223/arenacache/internal/arena"

// store owns all entry payload storage. It is the only component that
// allocates or frees entries; the recency list and the key index deal in
// handles only.
//
// The creates/releases counters exist so teardown tests can assert that
// every allocated entry is released exactly once.
type store[K comparable, V any] struct {
	slots    *arena.Arena[entry[K, V]]
	creates  uint64
	releases uint64
}

func newStore[K comparable, V any](capacity int) *store[K, V] {
	return &store[K, V]{slots: arena.New[entry[K, V]](capacity)}
}

// create allocates one entry with detached recency links.
func (s *store[K, V]) create(k K, v V) arena.Handle {
	s.creates++
	return s.slots.Alloc(entry[K, V]{key: k, val: v})
}

// get returns the entry for h. The pointer must not be retained across a
// release; h must be live (a stale handle panics in the arena).
func (s *store[K, V]) get(h arena.Handle) *entry[K, V] {
	return s.slots.Get(h)
}

// release frees the entry's slot. The caller must already have unlinked h
// from the recency list and removed its key from the index; releasing a
// still-linked entry is a use-after-release programming error.
func (s *store[K, V]) release(h arena.Handle) {
	s.releases++
	s.slots.Free(h)
}

// releaseAll frees every live entry at once (whole-cache teardown).
func (s *store[K, V]) releaseAll() {
	s.releases += uint64(s.slots.Len())
	s.slots.Reset()
}

func (s *store[K, V]) len() int { return s.slots.Len() }
