package array

import (
	"fmt"

	"go.uber.org/zap"
)

// reserve makes room for one more element, reallocating an owning array
// when it is full.
func (a *Array[T]) reserve() error {
	if a.length < a.capacity {
		return nil
	}
	if a.view {
		a.logger.Warn("view is full", zap.Int("capacity", a.capacity))
		return fmt.Errorf("%w: capacity %d", ErrFixedCapacity, a.capacity)
	}

	next, err := a.growth.Next(a.capacity)
	if err == nil && a.maxCapacity > 0 && next > a.maxCapacity {
		if a.capacity >= a.maxCapacity {
			err = fmt.Errorf("%w: maximum capacity %d reached", ErrAllocationFailed, a.maxCapacity)
		} else {
			next = a.maxCapacity
		}
	}
	if err != nil {
		a.logger.Warn("growth rejected", zap.Int("capacity", a.capacity), zap.Error(err))
		return err
	}
	return a.resize(next)
}

// resize moves the live elements of an owning array into a new buffer of n
// slots. The old buffer is marked released so that views cut from it fail
// fast instead of silently reading stale storage.
func (a *Array[T]) resize(n int) error {
	items, err := allocate[T](n)
	if err != nil {
		a.logger.Warn("growth rejected", zap.Int("capacity", a.capacity), zap.Error(err))
		return err
	}
	copy(items, a.live())
	a.replace(items)
	a.logger.Debug("reallocated",
		zap.Int("capacity", n),
		zap.Int("len", a.length),
		zap.Stringer("growth", a.growth),
	)
	return nil
}

// replace installs items as a's storage and releases the previous buffer.
func (a *Array[T]) replace(items []T) {
	a.buf.released = true
	a.buf = &buffer[T]{items: items}
	a.off = 0
	a.capacity = len(items)
	a.reallocations++
}

// allocate turns a refused allocation into ErrAllocationFailed.
func allocate[T any](n int) (items []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			items = nil
			err = fmt.Errorf("%w: %d elements: %v", ErrAllocationFailed, n, r)
		}
	}()
	return make([]T, n), nil
}
