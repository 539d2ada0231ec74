// Package stack provides a slice-backed LIFO stack. The catalog uses it for
// its action history.
package stack

import "errors"

// ErrEmpty is returned by Pop and Peek when the stack holds no elements.
var ErrEmpty = errors.New("stack is empty")

// Stack is a last-in-first-out sequence. The zero value is ready to use.
// A Stack is not safe for concurrent mutation.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the most recently pushed element. It returns
// ErrEmpty when there is nothing to pop.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmpty
	}
	idx := len(s.items) - 1
	item := s.items[idx]
	s.items[idx] = zero // drop the reference so the caller owns it alone
	s.items = s.items[:idx]
	return item, nil
}

// Peek returns the top element without removing it. It returns ErrEmpty
// when the stack is empty.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.items[len(s.items)-1], nil
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Clear removes every element.
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Snapshot returns a copy of the stack's elements ordered from most recently
// pushed to least recently pushed. The stack itself is left untouched.
func (s *Stack[T]) Snapshot() []T {
	out := make([]T, len(s.items))
	for i, item := range s.items {
		out[len(s.items)-1-i] = item
	}
	return out
}
