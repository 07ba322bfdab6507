package array

import (
	"fmt"

	"go.uber.org/zap"
)

// Subview returns the elements in the inclusive range [start, end].
//
// With clone set, the result is an independent owning array with
// Len() == Cap() == end-start+1. Otherwise the result is a view over a's
// storage: no elements are copied, writes through the view land in a, and
// the view never reallocates. The view stays valid only until a reallocates
// or is destroyed.
//
// Both kinds inherit a's growth policy, finalizer and logger.
func (a *Array[T]) Subview(start, end int, clone bool) (*Array[T], error) {
	s := a.live()
	if start < 0 || end < start || end >= len(s) {
		a.logger.Warn("invalid subview range",
			zap.Int("start", start),
			zap.Int("end", end),
			zap.Int("len", len(s)),
		)
		return nil, fmt.Errorf("%w: [%d, %d] with length %d", ErrInvalidRange, start, end, len(s))
	}
	n := end - start + 1

	if clone {
		c := a.spawn(n)
		copy(c.buf.items, s[start:end+1])
		c.length = n
		return c, nil
	}

	return &Array[T]{
		buf:         a.buf,
		off:         a.off + start,
		length:      n,
		capacity:    n,
		growth:      a.growth,
		view:        true,
		finalize:    a.finalize,
		maxCapacity: a.maxCapacity,
		logger:      a.logger,
	}, nil
}

// Clone returns an independent owning array with a's capacity, growth
// policy and finalizer, holding a copy of a's live elements. Cloning a view
// yields an owning array.
func (a *Array[T]) Clone() *Array[T] {
	s := a.live()
	c := a.spawn(a.capacity)
	copy(c.buf.items, s)
	c.length = len(s)
	return c
}

// CopyInto overwrites dst with src: dst takes src's growth policy, capacity
// and live elements. dst's previous elements are discarded without running
// its finalizer; dst keeps its own finalizer and logger.
//
// An owning dst gets a new buffer, which invalidates views cut from it. A
// view dst keeps its window, and fails with [ErrFixedCapacity] when src has
// more live elements than the window holds.
//
// An owning dst created with [WithMaxCapacity] keeps its bound: the new
// capacity is clamped to it, and the copy fails with [ErrAllocationFailed]
// when src has more live elements than the bound allows.
func CopyInto[T any](dst, src *Array[T]) error {
	s := src.live()
	dst.mustBeLive()

	if dst.view {
		if len(s) > dst.capacity {
			dst.logger.Warn("view is full",
				zap.Int("capacity", dst.capacity),
				zap.Int("required", len(s)),
			)
			return fmt.Errorf("%w: capacity %d, need %d", ErrFixedCapacity, dst.capacity, len(s))
		}
		w := dst.window()
		copy(w, s)
		if dst.length > len(s) {
			clear(w[len(s):dst.length])
		}
		dst.length = len(s)
		dst.growth = src.growth
		return nil
	}

	n := src.capacity
	if dst.maxCapacity > 0 && n > dst.maxCapacity {
		if len(s) > dst.maxCapacity {
			dst.logger.Warn("copy rejected",
				zap.Int("max_capacity", dst.maxCapacity),
				zap.Int("required", len(s)),
			)
			return fmt.Errorf("%w: max capacity %d, need %d", ErrAllocationFailed, dst.maxCapacity, len(s))
		}
		n = dst.maxCapacity
	}
	items, err := allocate[T](n)
	if err != nil {
		dst.logger.Warn("copy rejected", zap.Int("capacity", n), zap.Error(err))
		return err
	}
	copy(items, s)
	dst.replace(items)
	dst.length = len(s)
	dst.growth = src.growth
	return nil
}
