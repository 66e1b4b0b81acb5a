// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package deque provides a generic double-ended queue backed by a resizable
// circular array.
//
// Elements can be pushed and popped at either end in amortized constant
// time, read and written by position in constant time, and inserted or
// removed at an arbitrary position in O(min(i, n-i)) time. The package is a
// sibling of github.com/juju/collections/deque; it trades that package's
// stable per-block allocation for contiguous storage, positional access and
// in-place editing.
package deque

import (
	"fmt"
	"math/bits"

	"github.com/juju/errors"
)

// ErrIndexOutOfRange is returned by position-taking operations when the
// supplied index falls outside the deque's current bounds.
const ErrIndexOutOfRange = errors.ConstError("index out of range")

// minCapacity is the smallest physical buffer ever allocated. Buffers are
// always a power of two so that logical positions translate to physical
// slots with a bitwise AND rather than a modulus.
const minCapacity = 8

// Deque is a double-ended queue of values of type T stored in a circular
// buffer. One buffer slot is always kept free, so a deque of capacity C
// holds at most C-1 elements; the buffer is grown before the last free slot
// would be consumed.
//
// A Deque must be created with New or NewWithCapacity. It is not safe for
// concurrent use: exactly one goroutine may read or mutate a Deque at a
// time, and callers requiring shared access must supply their own
// synchronisation.
type Deque[T any] struct {
	buf        []T
	start, end int
}

// New returns a deque holding the given items in order, front first.
func New[T any](items ...T) *Deque[T] {
	d := &Deque[T]{buf: make([]T, bufferLen(len(items)))}
	d.PushBackAll(items...)
	return d
}

// NewWithCapacity returns a deque sized to hold at least capacity elements
// before it needs to grow, holding the given items in order. It returns an
// error if capacity is negative.
func NewWithCapacity[T any](capacity int, items ...T) (*Deque[T], error) {
	if capacity < 0 {
		return nil, errors.NotValidf("capacity %d", capacity)
	}
	d := &Deque[T]{buf: make([]T, bufferLen(max(capacity, len(items))))}
	d.PushBackAll(items...)
	return d, nil
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int {
	return (d.end - d.start) & d.mask()
}

// Cap returns the number of elements the deque can hold before its buffer
// is next reallocated.
func (d *Deque[T]) Cap() int {
	return len(d.buf) - 1
}

// IsEmpty returns whether the deque holds no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.start == d.end
}

// PushBack adds an item to the back of the deque.
func (d *Deque[T]) PushBack(item T) {
	d.ensureSpace(1)
	d.buf[d.end] = item
	d.end = (d.end + 1) & d.mask()
}

// PushBackAll adds the items to the back of the deque, preserving their
// order, growing the buffer at most once.
func (d *Deque[T]) PushBackAll(items ...T) {
	d.ensureSpace(len(items))
	for _, item := range items {
		d.buf[d.end] = item
		d.end = (d.end + 1) & d.mask()
	}
}

// PushFront adds an item to the front of the deque.
func (d *Deque[T]) PushFront(item T) {
	d.ensureSpace(1)
	d.start = (d.start - 1) & d.mask()
	d.buf[d.start] = item
}

// PushFrontAll adds the items to the front of the deque, preserving their
// order, growing the buffer at most once. Afterwards the first item given
// is the new front, as if the items had been pushed one at a time in
// reverse.
func (d *Deque[T]) PushFrontAll(items ...T) {
	d.ensureSpace(len(items))
	d.start = (d.start - len(items)) & d.mask()
	for i, item := range items {
		d.buf[d.slot(i)] = item
	}
}

// PopFront removes the front element and returns it. The returned flag is
// false, and the deque unchanged, if the deque is empty.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.IsEmpty() {
		return zero, false
	}
	item := d.buf[d.start]
	d.buf[d.start] = zero
	d.start = (d.start + 1) & d.mask()
	return item, true
}

// PopBack removes the back element and returns it. The returned flag is
// false, and the deque unchanged, if the deque is empty.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.IsEmpty() {
		return zero, false
	}
	d.end = (d.end - 1) & d.mask()
	item := d.buf[d.end]
	d.buf[d.end] = zero
	return item, true
}

// PeekFront returns the front element without removing it. The returned
// flag is false if the deque is empty.
func (d *Deque[T]) PeekFront() (T, bool) {
	if d.IsEmpty() {
		var zero T
		return zero, false
	}
	return d.buf[d.start], true
}

// PeekBack returns the back element without removing it. The returned flag
// is false if the deque is empty.
func (d *Deque[T]) PeekBack() (T, bool) {
	if d.IsEmpty() {
		var zero T
		return zero, false
	}
	return d.buf[(d.end-1)&d.mask()], true
}

// Get returns the element at position i, where position 0 is the front.
// It returns an error satisfying ErrIndexOutOfRange if i is not in
// [0, Len()).
func (d *Deque[T]) Get(i int) (T, error) {
	if err := d.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return d.buf[d.slot(i)], nil
}

// Set overwrites the element at position i. It returns an error satisfying
// ErrIndexOutOfRange if i is not in [0, Len()).
func (d *Deque[T]) Set(i int, item T) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.buf[d.slot(i)] = item
	return nil
}

// Clear removes all elements. The old buffer is dropped and replaced with a
// fresh minimum-capacity one, so any references held by the elements are
// released rather than retained by vacated slots.
func (d *Deque[T]) Clear() {
	if d.IsEmpty() {
		return
	}
	d.buf = make([]T, minCapacity)
	d.start, d.end = 0, 0
}

// Clone returns a deque with the same elements, capacity and cursor
// positions as d, backed by its own buffer. Mutating the clone never
// affects the original.
func (d *Deque[T]) Clone() *Deque[T] {
	buf := make([]T, len(d.buf))
	copy(buf, d.buf)
	return &Deque[T]{buf: buf, start: d.start, end: d.end}
}

// Shrink reallocates the buffer down to the smallest capacity that can hold
// the current elements, if that is smaller than the current buffer.
func (d *Deque[T]) Shrink() {
	if n := bufferLen(d.Len()); n != len(d.buf) {
		d.rebuffer(n)
	}
}

// mask converts physical positions to buffer slots. The buffer length is a
// power of two, so ANDing with mask is (x mod len) for any x, including the
// negative differences produced by wrapped cursors.
func (d *Deque[T]) mask() int {
	return len(d.buf) - 1
}

// slot translates logical position i to a physical buffer slot.
func (d *Deque[T]) slot(i int) int {
	return (d.start + i) & d.mask()
}

func (d *Deque[T]) checkIndex(i int) error {
	if i < 0 || i >= d.Len() {
		return d.outOfRange(i)
	}
	return nil
}

func (d *Deque[T]) outOfRange(i int) error {
	return fmt.Errorf("index %d with length %d: %w", i, d.Len(), ErrIndexOutOfRange)
}

// box clamps a range endpoint into [0, Len()]. Range operations accept
// out-of-range endpoints rather than rejecting them.
func (d *Deque[T]) box(i int) int {
	if i <= 0 {
		return 0
	}
	if n := d.Len(); i >= n {
		return n
	}
	return i
}

// ensureSpace grows the buffer if adding n more elements would consume the
// free slot that separates end from start.
func (d *Deque[T]) ensureSpace(n int) {
	if d.Len()+n < len(d.buf) {
		return
	}
	d.rebuffer(bufferLen(d.Len() + n))
}

// rebuffer repacks the elements, in logical order, into the first slots of
// a fresh buffer of length newLen and resets the cursors. newLen must be a
// power of two able to hold the current elements plus the free slot.
func (d *Deque[T]) rebuffer(newLen int) {
	size := d.Len()
	buf := make([]T, newLen)
	d.copyRange(buf[:size], 0)
	d.buf = buf
	d.start = 0
	d.end = size
}

// copyRange copies len(dst) elements into dst, starting at logical position
// from. The copy is split into at most two contiguous runs when the source
// range wraps the physical end of the buffer. len(dst) must not exceed
// Len()-from.
func (d *Deque[T]) copyRange(dst []T, from int) {
	p := d.slot(from)
	n := copy(dst, d.buf[p:])
	if n < len(dst) {
		copy(dst[n:], d.buf[:d.end])
	}
}

// bufferLen returns the length of a physical buffer able to hold n
// elements: the next power of two strictly above n, so that one slot is
// always free, floored at minCapacity.
func bufferLen(n int) int {
	return max(minCapacity, ceilPow2(n+1))
}

// ceilPow2 rounds n up to the nearest power of two.
func ceilPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
