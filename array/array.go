package array

import (
	"fmt"
	"iter"
	"slices"
	"unsafe"

	"go.uber.org/zap"
)

// Finalizer is called on an element immediately before it is removed, and
// on every live element of an owning array when it is destroyed. The
// pointer must not be retained past the call: the slot is about to be
// overwritten or released.
//
// A finalizer must not mutate the array it belongs to. Remove and
// RemoveUnordered re-read storage after the call, so an append made by the
// finalizer is kept, but an insert or removal shifts which slot is deleted.
type Finalizer[T any] func(index int, item *T)

// Comparator is a three-way ordering function: negative when a precedes b,
// zero when they are equal-order, positive when a follows b.
type Comparator[T any] func(a, b T) int

// buffer is the backing storage of an owning array. Views hold a pointer to
// the buffer of the array they were cut from, so releasing it (on
// reallocation or Destroy) is visible to every view.
type buffer[T any] struct {
	items    []T
	released bool
}

// Array is a growable array of fixed-size elements.
//
// An owning array holds exclusive storage and reallocates it according to
// its [Growth] policy. A view (see [Array.Subview]) borrows a window of
// another array's storage: writes through the view are visible in the
// source, and the view never reallocates. A view must not outlive its
// source's buffer; using it after the source has reallocated or been
// destroyed panics with [ErrUseAfterFree].
//
// # Creating an array
//
//	a := array.New[int](16, nil)
//	a := array.NewExtended[point](4, 15, true, false, freePoint)
//
// Array is not safe for concurrent use.
type Array[T any] struct {
	buf      *buffer[T]
	off      int
	length   int
	capacity int

	growth      Growth
	view        bool
	finalize    Finalizer[T]
	maxCapacity int
	logger      *zap.Logger

	reallocations uint64
	finalized     uint64
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an owning array with room for capacity elements, additive
// growth of [DefaultIncrement] (unless overridden by [WithGrowth]) and an
// optional finalizer.
func New[T any](capacity int, finalize Finalizer[T], opts ...Option) *Array[T] {
	s := newSettings(opts)
	g := DefaultGrowth()
	if s.growth != nil {
		g = *s.growth
	}
	return newArray(capacity, g, false, finalize, s)
}

// NewExtended creates an array with an explicit growth policy.
//
// When view is true the array never reallocates: appends beyond capacity
// fail with [ErrFixedCapacity], and Destroy does not run the finalizer
// because a view does not own its elements.
func NewExtended[T any](capacity, increment int, multiplicative, view bool, finalize Finalizer[T], opts ...Option) *Array[T] {
	s := newSettings(opts)
	g := Growth{Increment: increment, Multiplicative: multiplicative}
	return newArray(capacity, g, view, finalize, s)
}

func newArray[T any](capacity int, g Growth, view bool, finalize Finalizer[T], s settings) *Array[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Array[T]{
		buf:         &buffer[T]{items: make([]T, capacity)},
		capacity:    capacity,
		growth:      g.normalize(),
		view:        view,
		finalize:    finalize,
		maxCapacity: s.maxCapacity,
		logger:      s.logger,
	}
}

// spawn creates an empty owning array with a's settings.
func (a *Array[T]) spawn(capacity int) *Array[T] {
	return &Array[T]{
		buf:         &buffer[T]{items: make([]T, capacity)},
		capacity:    capacity,
		growth:      a.growth,
		finalize:    a.finalize,
		maxCapacity: a.maxCapacity,
		logger:      a.logger,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of live elements.
func (a *Array[T]) Len() int { return a.length }

// Cap returns the number of element slots currently addressable.
func (a *Array[T]) Cap() int { return a.capacity }

// IsEmpty reports whether the array holds no live elements.
func (a *Array[T]) IsEmpty() bool { return a.length == 0 }

// IsView reports whether the array borrows its storage.
func (a *Array[T]) IsView() bool { return a.view }

// Growth returns the array's growth policy.
func (a *Array[T]) Growth() Growth { return a.growth }

// ElementSize returns the size in bytes of one element.
func (a *Array[T]) ElementSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Get returns a reference to the element at index. The reference aliases
// the array's storage and is invalidated by the next reallocation.
func (a *Array[T]) Get(index int) (*T, error) {
	s := a.live()
	if index < 0 || index >= len(s) {
		return nil, a.outOfRange("get", index)
	}
	return &s[index], nil
}

// Values returns a copy of the live elements.
func (a *Array[T]) Values() []T {
	return slices.Clone(a.live())
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// ForEach calls fn(index, item) for every live element in ascending index
// order.
func (a *Array[T]) ForEach(fn func(index int, item *T)) {
	s := a.live()
	for i := range s {
		fn(i, &s[i])
	}
}

// All returns an iterator over (index, reference) pairs of the live
// elements. Each range over it starts from index 0.
func (a *Array[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		s := a.live()
		for i := range s {
			if !yield(i, &s[i]) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Add
// ─────────────────────────────────────────────────────────────────────────────

// Append copies item into the slot after the last live element, growing the
// array first if it is full. It returns the new element's index.
func (a *Array[T]) Append(item T) (int, error) {
	a.mustBeLive()
	if err := a.reserve(); err != nil {
		return -1, err
	}
	a.buf.items[a.off+a.length] = item
	a.length++
	return a.length - 1, nil
}

// AppendMove appends *item and then zeroes *item, transferring ownership of
// the value to the array. On failure *item is left untouched.
func (a *Array[T]) AppendMove(item *T) (int, error) {
	if item == nil {
		return -1, ErrNilElement
	}
	i, err := a.Append(*item)
	if err != nil {
		return -1, err
	}
	var zero T
	*item = zero
	return i, nil
}

// Insert places item at index, shifting the elements at index and after one
// slot to the right. index == Len() appends.
func (a *Array[T]) Insert(item T, index int) (int, error) {
	a.mustBeLive()
	if index < 0 || index > a.length {
		return -1, a.outOfRange("insert", index)
	}
	if err := a.reserve(); err != nil {
		return -1, err
	}
	s := a.buf.items[a.off : a.off+a.length+1]
	copy(s[index+1:], s[index:a.length])
	s[index] = item
	a.length++
	return index, nil
}

// InsertMove inserts *item at index and then zeroes *item. On failure
// *item is left untouched.
func (a *Array[T]) InsertMove(item *T, index int) (int, error) {
	if item == nil {
		return -1, ErrNilElement
	}
	i, err := a.Insert(*item, index)
	if err != nil {
		return -1, err
	}
	var zero T
	*item = zero
	return i, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Remove
// ─────────────────────────────────────────────────────────────────────────────

// Remove finalizes the element at index and closes the gap by shifting the
// following elements left, preserving their order.
func (a *Array[T]) Remove(index int) error {
	s := a.live()
	if index < 0 || index >= len(s) {
		return a.outOfRange("remove", index)
	}
	a.finalizeAt(index, &s[index])
	s = a.live()
	copy(s[index:], s[index+1:])
	var zero T
	s[len(s)-1] = zero
	a.length--
	return nil
}

// RemoveUnordered finalizes the element at index and overwrites it with the
// last element. It runs in constant time and does not preserve order.
func (a *Array[T]) RemoveUnordered(index int) error {
	s := a.live()
	if index < 0 || index >= len(s) {
		return a.outOfRange("remove unordered", index)
	}
	a.finalizeAt(index, &s[index])
	s = a.live()
	last := len(s) - 1
	s[index] = s[last]
	var zero T
	s[last] = zero
	a.length--
	return nil
}

// Clear zeroes the live elements and sets the length to 0. Capacity is
// kept. Clear does not run the finalizer.
func (a *Array[T]) Clear() {
	clear(a.live())
	a.length = 0
}

// Destroy finalizes every live element of an owning array, in index order,
// and releases its storage. Views are only detached: they own neither the
// elements nor the storage.
//
// Any use of the array after Destroy panics with [ErrUseAfterFree]; so does
// a second Destroy.
func (a *Array[T]) Destroy() {
	if a.buf == nil {
		panic(fmt.Errorf("%w: destroy of a destroyed array", ErrUseAfterFree))
	}
	if !a.view {
		s := a.live()
		for i := range s {
			a.finalizeAt(i, &s[i])
		}
		clear(a.buf.items)
		a.buf.released = true
	}
	a.buf = nil
	a.length = 0
	a.capacity = 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Sort & Search
// ─────────────────────────────────────────────────────────────────────────────

// Sort orders the live elements in place by cmp. The sort is not stable.
func (a *Array[T]) Sort(cmp Comparator[T]) {
	slices.SortFunc(a.live(), cmp)
}

// BinarySearch returns a reference to an element that compares equal to key.
// The array must already be sorted by cmp; otherwise the result is
// unspecified.
func (a *Array[T]) BinarySearch(key T, cmp Comparator[T]) (*T, bool) {
	s := a.live()
	i, found := slices.BinarySearchFunc(s, key, cmp)
	if !found {
		return nil, false
	}
	return &s[i], true
}

// ─────────────────────────────────────────────────────────────────────────────
// Internals
// ─────────────────────────────────────────────────────────────────────────────

// mustBeLive panics if a has been destroyed or its borrowed buffer has been
// released.
func (a *Array[T]) mustBeLive() {
	if a.buf == nil {
		panic(fmt.Errorf("%w: array was destroyed", ErrUseAfterFree))
	}
	if a.buf.released {
		panic(fmt.Errorf("%w: source buffer of view was reallocated or released", ErrUseAfterFree))
	}
}

// live returns the live elements.
func (a *Array[T]) live() []T {
	a.mustBeLive()
	return a.buf.items[a.off : a.off+a.length]
}

// window returns every addressable slot, live or not.
func (a *Array[T]) window() []T {
	return a.buf.items[a.off : a.off+a.capacity]
}

func (a *Array[T]) finalizeAt(index int, item *T) {
	if a.finalize == nil {
		return
	}
	a.finalize(index, item)
	a.finalized++
}

func (a *Array[T]) outOfRange(op string, index int) error {
	a.logger.Warn("invalid index",
		zap.String("op", op),
		zap.Int("index", index),
		zap.Int("len", a.length),
	)
	return fmt.Errorf("%w: %s at %d with length %d", ErrIndexOutOfRange, op, index, a.length)
}
