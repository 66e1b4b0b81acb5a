// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package queue provides a first-in-first-out container on top of the
// circular-buffer deque.
package queue

import (
	"github.com/juju/errors"

	"github.com/juju/deque"
)

// Queue is a FIFO container backed by a deque.Deque. Items join at the
// back and leave from the front. Like the deque it wraps, a Queue is not
// safe for concurrent use without external synchronisation.
type Queue[T any] struct {
	d *deque.Deque[T]
}

// New returns a queue holding items, the first argument at the front.
func New[T any](items ...T) *Queue[T] {
	return &Queue[T]{d: deque.New(items...)}
}

// NewWithCapacity returns a queue able to hold capacity items before
// growing. It returns an error satisfying errors.NotValid if capacity is
// negative.
func NewWithCapacity[T any](capacity int, items ...T) (*Queue[T], error) {
	d, err := deque.NewWithCapacity(capacity, items...)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return &Queue[T]{d: d}, nil
}

// Enqueue adds items to the back of the queue.
func (q *Queue[T]) Enqueue(items ...T) {
	q.d.PushBackAll(items...)
}

// Dequeue removes and returns the item at the front of the queue,
// returning false if the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	return q.d.PopFront()
}

// Peek returns the item at the front of the queue without removing it,
// returning false if the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	return q.d.PeekFront()
}

// Len returns the number of items in the queue.
func (q *Queue[T]) Len() int {
	return q.d.Len()
}

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool {
	return q.d.IsEmpty()
}

// Values returns the items in dequeue order, front first.
func (q *Queue[T]) Values() []T {
	return q.d.Values()
}

// Clear removes all items from the queue.
func (q *Queue[T]) Clear() {
	q.d.Clear()
}

// Clone returns an independent copy of the queue.
func (q *Queue[T]) Clone() *Queue[T] {
	return &Queue[T]{d: q.d.Clone()}
}
