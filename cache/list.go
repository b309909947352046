package cache

import "github.com/DarinM223/arenacache/internal/arena"

// recencyList keeps live entries in strict most-to-least-recently-used
// order. It manipulates only the intrusive links inside entries; the store
// owns the storage and the orchestrator owns the key index.
//
// All operations are O(1): the list never scans.
type recencyList[K comparable, V any] struct {
	s     *store[K, V]
	front arena.Handle // MRU; null iff the list is empty
	back  arena.Handle // LRU; null iff the list is empty
	len   int
}

// pushFront inserts h as the new most-recently-used entry.
// h must be detached (freshly created or just unlinked).
func (l *recencyList[K, V]) pushFront(h arena.Handle) {
	e := l.s.get(h)
	e.prev = arena.Handle{}
	e.next = l.front
	if l.front.IsNull() {
		l.back = h
	} else {
		l.s.get(l.front).prev = h
	}
	l.front = h
	l.len++
}

// unlink detaches h from wherever it sits: front, back, or interior.
// Interior removal matters: updating an already-cached key unlinks it from
// its current position before re-inserting at the front.
func (l *recencyList[K, V]) unlink(h arena.Handle) {
	e := l.s.get(h)
	if e.prev.IsNull() {
		l.front = e.next
	} else {
		l.s.get(e.prev).next = e.next
	}
	if e.next.IsNull() {
		l.back = e.prev
	} else {
		l.s.get(e.next).prev = e.prev
	}
	e.prev, e.next = arena.Handle{}, arena.Handle{}
	l.len--
}

// moveToFront promotes h to MRU. Already-front is detected by handle
// equality — never by comparing storage addresses, which may be reused.
func (l *recencyList[K, V]) moveToFront(h arena.Handle) {
	if h == l.front {
		return
	}
	l.unlink(h)
	l.pushFront(h)
}

// tail returns the least-recently-used handle without mutating the list,
// or the null handle when the list is empty.
func (l *recencyList[K, V]) tail() arena.Handle { return l.back }

// reset forgets all links at once; used by teardown after the store has
// released every entry.
func (l *recencyList[K, V]) reset() {
	l.front, l.back = arena.Handle{}, arena.Handle{}
	l.len = 0
}
