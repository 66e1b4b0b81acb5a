// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package deque

// Insert places the items before the element at position i, so that after
// the call the first item given is at position i. Position Len() appends.
// It returns an error satisfying ErrIndexOutOfRange if i is not in
// [0, Len()].
//
// The elements from position i onwards are always the ones moved to make
// room, so the cost is O(Len()-i+len(items)) even when i is small, unlike
// RemoveRange which shifts whichever side of the range is shorter.
func (d *Deque[T]) Insert(i int, items ...T) error {
	if i < 0 || i > d.Len() {
		return d.outOfRange(i)
	}
	if i == 0 {
		d.PushFrontAll(items...)
		return nil
	}
	if len(items) == 0 {
		return nil
	}

	// Detach the suffix, truncate to i, then append the new items followed
	// by the detached elements.
	suffix := make([]T, d.Len()-i)
	d.copyRange(suffix, i)
	d.end = d.slot(i)
	d.PushBackAll(items...)
	d.PushBackAll(suffix...)
	return nil
}

// Remove removes the element at position i and returns it. It returns an
// error satisfying ErrIndexOutOfRange if i is not in [0, Len()).
func (d *Deque[T]) Remove(i int) (T, error) {
	item, err := d.Get(i)
	if err != nil {
		return item, err
	}
	return item, d.RemoveRange(i, 1)
}

// RemoveRange removes up to count elements starting at position i; count is
// clamped to the number of elements from i to the back, and a clamped count
// of zero or less removes nothing. It returns an error satisfying
// ErrIndexOutOfRange if i is not in [0, Len()).
//
// Whichever of the elements before the removed range or after it are fewer
// are the ones shifted to close the gap, so removing near either end of the
// deque costs O(min(i, Len()-i)) for small counts.
func (d *Deque[T]) RemoveRange(i, count int) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	n := d.Len()
	if count > n-i {
		count = n - i
	}
	if count <= 0 {
		return nil
	}

	var zero T
	if n-i <= i+count {
		// The tail is the shorter side: shift [i+count, n) left by count,
		// then clear the vacated tail slots.
		for j := i; j+count < n; j++ {
			d.buf[d.slot(j)] = d.buf[d.slot(j+count)]
		}
		for j := n - count; j < n; j++ {
			d.buf[d.slot(j)] = zero
		}
		d.end = (d.end - count) & d.mask()
	} else {
		// The head is the shorter side: shift [0, i) right by count,
		// walking backwards so nothing is overwritten before it is read,
		// then clear the vacated head slots.
		for j := i + count - 1; j >= count; j-- {
			d.buf[d.slot(j)] = d.buf[d.slot(j-count)]
		}
		for j := 0; j < count; j++ {
			d.buf[d.slot(j)] = zero
		}
		d.start = (d.start + count) & d.mask()
	}
	return nil
}
