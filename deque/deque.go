// Package deque implements a double-ended queue over an arena-backed
// doubly linked list.
//
// Nodes live in an internal/arena table and link to each other by handle,
// not by pointer. Ownership is therefore one-directional by construction:
// the arena is the sole owner of every node, and both link directions are
// plain lookup aids with no ownership weight — no retain cycles, no weak
// references, no dangling back-links.
package deque

import "github.com/DarinM223/arenacache/internal/arena"

type node[T any] struct {
	data T
	prev arena.Handle // toward the front
	next arena.Handle // toward the back
}

// Deque is a FIFO/LIFO double-ended queue. All operations are O(1).
//
// Not safe for concurrent use.
type Deque[T any] struct {
	nodes *arena.Arena[node[T]]
	front arena.Handle
	back  arena.Handle
	size  int
}

// New returns an empty deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{nodes: arena.New[node[T]](0)}
}

// PushFront inserts data at the front.
func (d *Deque[T]) PushFront(data T) {
	h := d.nodes.Alloc(node[T]{data: data})
	if d.front.IsNull() {
		d.front, d.back = h, h
	} else {
		d.nodes.Get(h).next = d.front
		d.nodes.Get(d.front).prev = h
		d.front = h
	}
	d.size++
}

// PushBack inserts data at the back.
func (d *Deque[T]) PushBack(data T) {
	h := d.nodes.Alloc(node[T]{data: data})
	if d.back.IsNull() {
		d.front, d.back = h, h
	} else {
		d.nodes.Get(h).prev = d.back
		d.nodes.Get(d.back).next = h
		d.back = h
	}
	d.size++
}

// PopFront removes and returns the front element.
// The second result is false when the deque is empty.
func (d *Deque[T]) PopFront() (T, bool) {
	if d.front.IsNull() {
		var zero T
		return zero, false
	}
	h := d.front
	n := d.nodes.Get(h)
	data := n.data

	d.front = n.next
	if d.front.IsNull() {
		d.back = arena.Handle{}
	} else {
		d.nodes.Get(d.front).prev = arena.Handle{}
	}
	d.nodes.Free(h)
	d.size--
	return data, true
}

// PopBack removes and returns the back element.
// The second result is false when the deque is empty.
func (d *Deque[T]) PopBack() (T, bool) {
	if d.back.IsNull() {
		var zero T
		return zero, false
	}
	h := d.back
	n := d.nodes.Get(h)
	data := n.data

	d.back = n.prev
	if d.back.IsNull() {
		d.front = arena.Handle{}
	} else {
		d.nodes.Get(d.back).next = arena.Handle{}
	}
	d.nodes.Free(h)
	d.size--
	return data, true
}

// Empty reports whether the deque has no elements.
func (d *Deque[T]) Empty() bool { return d.size == 0 }

// Len returns the number of elements.
func (d *Deque[T]) Len() int { return d.size }
