// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package deque

import (
	"fmt"
	"iter"

	"github.com/juju/errors"
)

// CopyTo copies elements into dst, reading from logical position from and
// writing from position dstStart, copying at most maxItems elements. Like
// the built-in copy it stops early when either side runs out of room,
// returning the number of elements copied. It returns an error satisfying
// ErrIndexOutOfRange if from is not in [0, Len()] or dstStart is not in
// [0, len(dst)]; nothing is copied when it errors.
func (d *Deque[T]) CopyTo(dst []T, from, dstStart, maxItems int) (int, error) {
	if from < 0 || from > d.Len() {
		return 0, d.outOfRange(from)
	}
	if dstStart < 0 || dstStart > len(dst) {
		return 0, fmt.Errorf("destination index %d with length %d: %w", dstStart, len(dst), ErrIndexOutOfRange)
	}
	n := min(maxItems, d.Len()-from, len(dst)-dstStart)
	if n <= 0 {
		return 0, nil
	}
	d.copyRange(dst[dstStart:dstStart+n], from)
	return n, nil
}

// Values returns a freshly allocated slice holding the deque's elements in
// logical order, front first.
func (d *Deque[T]) Values() []T {
	out := make([]T, d.Len())
	d.copyRange(out, 0)
	return out
}

// Slice returns a new deque holding copies of the elements in positions
// [from, until). The endpoints are clamped into range rather than rejected:
// an empty or inverted range yields a new empty deque, and a range covering
// the whole deque yields a clone. The result never shares its buffer with d.
func (d *Deque[T]) Slice(from, until int) *Deque[T] {
	from = d.box(from)
	until = d.box(until)
	n := until - from
	if n <= 0 {
		return New[T]()
	}
	if n >= d.Len() {
		return d.Clone()
	}
	buf := make([]T, bufferLen(n))
	d.copyRange(buf[:n], from)
	return &Deque[T]{buf: buf, start: 0, end: n}
}

// Sliding returns a lazy sequence of deques holding copies of the elements
// in positions [i, i+window) for i = 0, step, 2*step, … while i < Len().
// The final window is truncated when the deque's length is not aligned with
// the step. The sequence can be ranged over any number of times. It returns
// an error satisfying errors.NotValid if window or step is less than one.
func (d *Deque[T]) Sliding(window, step int) (iter.Seq[*Deque[T]], error) {
	if window < 1 {
		return nil, errors.NotValidf("window %d", window)
	}
	if step < 1 {
		return nil, errors.NotValidf("step %d", step)
	}
	return func(yield func(*Deque[T]) bool) {
		for i := 0; i < d.Len(); i += step {
			if !yield(d.Slice(i, i+window)) {
				return
			}
		}
	}, nil
}

// Grouped returns a lazy sequence of deques holding copies of the elements
// in consecutive non-overlapping runs of n, the final run truncated when n
// does not divide Len(). It is Sliding(n, n). It returns an error
// satisfying errors.NotValid if n is less than one.
func (d *Deque[T]) Grouped(n int) (iter.Seq[*Deque[T]], error) {
	if n < 1 {
		return nil, errors.NotValidf("group size %d", n)
	}
	return d.Sliding(n, n)
}

// All returns a sequence of (position, element) pairs in logical order. The
// sequence iterates over a snapshot taken each time it is ranged over, so
// mutating the deque mid-iteration does not disturb an iteration already in
// progress.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range d.Values() {
			if !yield(i, item) {
				return
			}
		}
	}
}
