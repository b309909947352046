// Package queue implements a FIFO queue built from two LIFO stacks.
//
// Enqueue pushes onto an inbox stack; Dequeue pops from an outbox stack,
// and when the outbox runs dry the whole inbox is reversed onto it in one
// batch. Each element is moved at most twice, so the amortized cost per
// operation is O(1) — but the dequeue that triggers the reversal pays for
// everything enqueued since the last flip, a latency spike callers should
// expect on rare operations.
package queue

// Queue is a two-stack FIFO queue. The zero value is an empty queue ready
// for use.
//
// Not safe for concurrent use.
type Queue[T any] struct {
	inbox  []T
	outbox []T
}

// New returns an empty queue. Equivalent to new(Queue[T]).
func New[T any]() *Queue[T] { return &Queue[T]{} }

// Enqueue appends data to the back of the queue. Always O(1).
func (q *Queue[T]) Enqueue(data T) {
	q.inbox = append(q.inbox, data)
}

// Dequeue removes and returns the front of the queue. The second result is
// false when the queue is empty. Amortized O(1); the call that flips the
// inbox is O(n) in the number of elements flipped.
func (q *Queue[T]) Dequeue() (T, bool) {
	if len(q.outbox) == 0 {
		if len(q.inbox) == 0 {
			var zero T
			return zero, false
		}
		// Reverse the inbox onto the outbox.
		for i := len(q.inbox) - 1; i >= 0; i-- {
			q.outbox = append(q.outbox, q.inbox[i])
		}
		clear(q.inbox)
		q.inbox = q.inbox[:0]
	}
	last := len(q.outbox) - 1
	data := q.outbox[last]
	var zero T
	q.outbox[last] = zero // drop the reference for the GC
	q.outbox = q.outbox[:last]
	return data, true
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return len(q.inbox) + len(q.outbox) }
