// Package arena provides a growable slot table that hands out stable,
// comparable handles in place of raw pointers.
//
// A Handle is an (index, generation) pair. Freed slots are recycled through
// an internal free-list; every Free bumps the slot's generation, so a handle
// kept across a free/realloc cycle is detectably stale instead of silently
// aliasing the new occupant. Linked structures built on top of an arena
// (intrusive lists, graph node tables) store handles in their link fields
// and never hold pointers into the table.
package arena

import (
	"fmt"

	"github.com/DarinM223/arenacache/internal/util"
)

// Handle is a stable reference to one arena slot. Handles are plain values:
// they may be copied, compared with ==, and stored in maps. The zero Handle
// refers to no slot.
type Handle struct {
	index uint32 // slot index + 1; 0 means "no slot"
	gen   uint32
}

// IsNull reports whether h refers to no slot.
func (h Handle) IsNull() bool { return h.index == 0 }

// String implements fmt.Stringer for debug output.
func (h Handle) String() string {
	if h.IsNull() {
		return "arena.Handle(null)"
	}
	return fmt.Sprintf("arena.Handle(%d@%d)", h.index-1, h.gen)
}

type slot[T any] struct {
	val  T
	gen  uint32
	next uint32 // free-list link (index+1); 0 terminates the list
	live bool
}

// Arena is a growable table of T slots. It is the sole owner of the values
// it stores; callers interact with slots only through handles.
//
// An Arena is not safe for concurrent use. The zero value is ready to use.
type Arena[T any] struct {
	slots []slot[T]
	free  uint32 // head of the free-list (index+1); 0 when empty
	live  int
}

// New returns an arena pre-sized for about capacity live values.
// The backing table still grows on demand past that point.
func New[T any](capacity int) *Arena[T] {
	a := &Arena[T]{}
	if capacity > 0 {
		a.slots = make([]slot[T], 0, util.NextPow2(uint64(capacity)))
	}
	return a
}

// Alloc stores v in a slot and returns its handle. Freed slots are reused
// before the table grows.
func (a *Arena[T]) Alloc(v T) Handle {
	if a.free != 0 {
		i := a.free - 1
		s := &a.slots[i]
		a.free = s.next
		s.next = 0
		s.val = v
		s.live = true
		a.live++
		return Handle{index: i + 1, gen: s.gen}
	}
	a.slots = append(a.slots, slot[T]{val: v, live: true})
	a.live++
	return Handle{index: uint32(len(a.slots))}
}

// Get returns a pointer to the value identified by h. The pointer is valid
// until the slot is freed; callers must not retain it across Free or Reset.
//
// Passing a null, freed, or stale handle is a use-after-release programming
// error and panics.
func (a *Arena[T]) Get(h Handle) *T {
	return &a.check(h).val
}

// Free releases the slot identified by h and recycles it. The slot's
// generation is bumped so outstanding handles to it become stale.
// Panics on a null, freed, or stale handle (double free).
func (a *Arena[T]) Free(h Handle) {
	s := a.check(h)
	var zero T
	s.val = zero // drop references so the GC can reclaim the payload
	s.gen++
	s.live = false
	s.next = a.free
	a.free = h.index
	a.live--
}

// Len returns the number of live slots.
func (a *Arena[T]) Len() int { return a.live }

// Alive reports whether h refers to a live slot (neither null nor stale).
func (a *Arena[T]) Alive(h Handle) bool {
	if h.IsNull() || int(h.index) > len(a.slots) {
		return false
	}
	s := &a.slots[h.index-1]
	return s.live && s.gen == h.gen
}

// Reset frees every live slot at once. All outstanding handles become
// stale; the backing table is kept for reuse.
func (a *Arena[T]) Reset() {
	var zero T
	a.free = 0
	for i := range a.slots {
		s := &a.slots[i]
		if s.live {
			s.val = zero
			s.gen++
			s.live = false
		}
		s.next = a.free
		a.free = uint32(i) + 1
	}
	a.live = 0
}

func (a *Arena[T]) check(h Handle) *slot[T] {
	if h.IsNull() {
		panic("arena: null handle")
	}
	if int(h.index) > len(a.slots) {
		panic(fmt.Sprintf("arena: handle %v out of range", h))
	}
	s := &a.slots[h.index-1]
	if !s.live {
		panic(fmt.Sprintf("arena: use of freed slot %v", h))
	}
	if s.gen != h.gen {
		panic(fmt.Sprintf("arena: stale handle %v (slot reused)", h))
	}
	return s
}
