package array

// Metrics is a snapshot of an array's size and activity.
type Metrics struct {
	Len           int     // Live elements
	Cap           int     // Addressable slots
	ElementSize   int     // Bytes per element
	Reallocations uint64  // Buffer replacements by growth or CopyInto
	Finalized     uint64  // Finalizer calls
	Utilization   float64 // Len / Cap (0.0-1.0)
	View          bool    // Storage is borrowed
}

// Metrics returns a snapshot of a's statistics. It is safe to call on a
// destroyed array, which reports zero length and capacity.
func (a *Array[T]) Metrics() Metrics {
	m := Metrics{
		Len:           a.length,
		Cap:           a.capacity,
		ElementSize:   a.ElementSize(),
		Reallocations: a.reallocations,
		Finalized:     a.finalized,
		View:          a.view,
	}
	if a.capacity > 0 {
		m.Utilization = float64(a.length) / float64(a.capacity)
	}
	return m
}
