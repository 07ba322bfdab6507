package array

import "errors"

// Sentinel errors returned by Array operations.
//
// Use [errors.Is] for comparisons; returned errors wrap these values with
// the offending index or size:
//
//	if _, err := a.Get(i); errors.Is(err, array.ErrIndexOutOfRange) {
//	    // i was not a live position
//	}
var (
	// ErrIndexOutOfRange is returned when an index fails the bounds rule:
	// [0, Len()-1] for Get / Remove / RemoveUnordered and [0, Len()] for
	// Insert.
	ErrIndexOutOfRange = errors.New("array: index out of range")

	// ErrInvalidRange is returned by Subview when [start, end] is not a
	// non-empty range of live positions.
	ErrInvalidRange = errors.New("array: invalid subview range")

	// ErrFixedCapacity is returned when an operation would need to
	// reallocate a view. Views never reallocate; the operation writes
	// nothing.
	ErrFixedCapacity = errors.New("array: view cannot grow beyond its window")

	// ErrAllocationFailed is returned when growth cannot obtain a larger
	// buffer: the configured maximum capacity is reached, the new capacity
	// overflows int, or the runtime refuses the allocation.
	ErrAllocationFailed = errors.New("array: allocation failed")

	// ErrNilElement is returned by AppendMove / InsertMove when the element
	// pointer is nil.
	ErrNilElement = errors.New("array: nil element")

	// ErrInvalidConfig is returned by Config.Validate and the loaders.
	ErrInvalidConfig = errors.New("array: invalid config")

	// ErrUseAfterFree is the panic value (wrapped) raised when a destroyed
	// array is used, or when a view outlives the buffer it borrows.
	// It reports a programming error and is never returned.
	ErrUseAfterFree = errors.New("array: use after free")
)
