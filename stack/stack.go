// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package stack provides a last-in-first-out container on top of the
// circular-buffer deque.
package stack

import (
	"github.com/juju/errors"

	"github.com/juju/deque"
)

// Stack is a LIFO container backed by a deque.Deque. Pushed items sit at
// the front of the deque, so the most recently pushed item is popped
// first. Like the deque it wraps, a Stack is not safe for concurrent use
// without external synchronisation.
type Stack[T any] struct {
	d *deque.Deque[T]
}

// New returns a stack holding items pushed in argument order, leaving the
// last argument on top.
func New[T any](items ...T) *Stack[T] {
	s := &Stack[T]{d: deque.New[T]()}
	s.Push(items...)
	return s
}

// NewWithCapacity returns a stack able to hold capacity items before
// growing, holding items pushed in argument order. It returns an error
// satisfying errors.NotValid if capacity is negative.
func NewWithCapacity[T any](capacity int, items ...T) (*Stack[T], error) {
	d, err := deque.NewWithCapacity[T](capacity)
	if err != nil {
		return nil, errors.Trace(err)
	}
	s := &Stack[T]{d: d}
	s.Push(items...)
	return s, nil
}

// Push adds items to the top of the stack in argument order, so the last
// item pushed becomes the new top.
func (s *Stack[T]) Push(items ...T) {
	for _, item := range items {
		s.d.PushFront(item)
	}
}

// Pop removes and returns the item on top of the stack, returning false
// if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	return s.d.PopFront()
}

// Peek returns the item on top of the stack without removing it,
// returning false if the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	return s.d.PeekFront()
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int {
	return s.d.Len()
}

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool {
	return s.d.IsEmpty()
}

// Values returns the items in pop order, top first.
func (s *Stack[T]) Values() []T {
	return s.d.Values()
}

// Clear removes all items from the stack.
func (s *Stack[T]) Clear() {
	s.d.Clear()
}

// Clone returns an independent copy of the stack.
func (s *Stack[T]) Clone() *Stack[T] {
	return &Stack[T]{d: s.d.Clone()}
}
