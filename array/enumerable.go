package array

// Enumerable is the read-only surface satisfied by [Array][T].
//
// Accept Enumerable in your own functions so that they work on owning
// arrays and views alike without depending on the concrete *Array type.
type Enumerable[T any] interface {
	// Len returns the number of live elements.
	Len() int

	// IsEmpty reports whether there are no live elements.
	IsEmpty() bool

	// Get returns a reference to the element at index, or an error
	// wrapping ErrIndexOutOfRange.
	Get(index int) (*T, error)

	// ForEach calls fn(index, item) for every live element in order.
	ForEach(fn func(index int, item *T))

	// Values returns a copy of the live elements.
	Values() []T
}

var _ Enumerable[int] = (*Array[int])(nil)
