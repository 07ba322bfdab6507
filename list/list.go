package list

import "github.com/hasbyte1/go-bunarr/array"

// List is a growable array. See [array.Array].
type List[T any] = array.Array[T]

// Finalizer is called on an element right before it is discarded.
type Finalizer[T any] = array.Finalizer[T]

// Comparator is a three-way ordering function.
type Comparator[T any] = array.Comparator[T]

// DefaultIncrement is the additive growth step used by [New].
const DefaultIncrement = array.DefaultIncrement

// New creates an owning list. See [array.New].
func New[T any](capacity int, finalize Finalizer[T], opts ...array.Option) *List[T] {
	return array.New(capacity, finalize, opts...)
}

// NewExtended creates a list with an explicit growth policy.
// See [array.NewExtended].
func NewExtended[T any](capacity, increment int, multiplicative, view bool, finalize Finalizer[T], opts ...array.Option) *List[T] {
	return array.NewExtended(capacity, increment, multiplicative, view, finalize, opts...)
}

// CopyInto overwrites dst with src. See [array.CopyInto].
func CopyInto[T any](dst, src *List[T]) error {
	return array.CopyInto(dst, src)
}
