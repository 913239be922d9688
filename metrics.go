package vector

import "github.com/pavanmanishd/vector/internal/rawbuf"

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() Metrics {
	elemSize := rawbuf.SlotSize[T]()
	return Metrics{
		Size:          v.size,
		Capacity:      v.Capacity(),
		ElementSize:   elemSize,
		CapacityBytes: elemSize * v.Capacity(),
		Reallocations: v.reallocations,
		Relocated:     v.relocated,
		Utilization:   v.Utilization(),
	}
}

// Metrics contains statistical information about a vector.
type Metrics struct {
	Size          int     // Live elements
	Capacity      int     // Element slots in the buffer
	ElementSize   int     // Bytes per slot
	CapacityBytes int     // Bytes held by the buffer
	Reallocations int     // Buffers replaced by growth
	Relocated     int     // Elements moved or copied across reallocations
	Utilization   float64 // Ratio of size to capacity (0.0-1.0)
}
