// Package array provides a generic growable array with an explicit growth
// policy, per-element finalizers, and subarray views that either alias or
// copy a contiguous range of another array.
//
// # Overview
//
// The central type is [Array][T]. Elements live in a contiguous buffer of
// Cap() slots, of which the first Len() are live:
//
//	a := array.New[int](2, nil)
//	a.Append(10)
//	a.Append(20)
//	a.Append(30)          // grows by DefaultIncrement slots
//	a.Insert(5, 0)        // [5 10 20 30]
//	a.RemoveUnordered(1)  // [5 30 20]
//
// # Growth
//
// When an append or insert finds the array full, capacity grows by a fixed
// increment or, with multiplicative growth, by a multiplier expressed in
// tenths (increment 15 means 1.5x). Growth always adds at least one slot.
// [WithMaxCapacity] bounds it; hitting the bound returns
// [ErrAllocationFailed].
//
// # Finalizers
//
// A [Finalizer] runs on an element right before Remove or RemoveUnordered
// discards it, and on every live element when an owning array is
// destroyed. Clear and CopyInto do not run it.
//
// # Views
//
// [Array.Subview] with clone=false returns a view: an array over a window
// of the source's buffer. Writes through the view are visible in the
// source. A view never reallocates; appending to a full view returns
// [ErrFixedCapacity]. When the source reallocates or is destroyed its old
// buffer is marked released, and any further use of the view panics with
// an error wrapping [ErrUseAfterFree].
//
// # Errors and diagnostics
//
// Misuse that the caller can recover from (a bad index, a full view, a
// refused allocation) is returned as an error wrapping one of the sentinel
// values in this package and is logged at Warn level on the logger set by
// [WithLogger]. Use after free is a programming error and panics.
//
// # Configuration
//
// [Config] holds the construction parameters and can be loaded from YAML
// with [LoadConfig] or [ParseConfig]; see [NewFromConfig].
//
// # Concurrency
//
// Arrays are not safe for concurrent use. Callers that share one across
// goroutines must serialise access.
package array
