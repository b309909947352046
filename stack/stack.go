// Package stack implements a LIFO stack over an owned singly linked chain.
package stack

type node[T any] struct {
	data T
	next *node[T]
}

// Stack is a singly linked LIFO stack. Each node is owned by exactly one
// link (the stack's head or a predecessor's next), so there is no sharing
// to reason about. The zero value is an empty stack ready for use.
//
// Not safe for concurrent use.
type Stack[T any] struct {
	head *node[T]
	size int
}

// New returns an empty stack. Equivalent to new(Stack[T]).
func New[T any]() *Stack[T] { return &Stack[T]{} }

// Push places data on top of the stack.
func (s *Stack[T]) Push(data T) {
	s.head = &node[T]{data: data, next: s.head}
	s.size++
}

// Pop removes and returns the top of the stack.
// The second result is false when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}
	top := s.head
	s.head = top.next
	top.next = nil
	s.size--
	return top.data, true
}

// Peek returns the top of the stack without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}
	return s.head.data, true
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int { return s.size }

// Each calls visit for every element from top to bottom.
func (s *Stack[T]) Each(visit func(T)) {
	for n := s.head; n != nil; n = n.next {
		visit(n.data)
	}
}
