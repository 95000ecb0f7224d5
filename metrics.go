package vector

// ElemSize returns the size in bytes of one element.
func (v *Vector[T]) ElemSize() int {
	return int(elemSize[T]())
}

// SizeInBytes returns the number of bytes held by the elements in use.
func (v *Vector[T]) SizeInBytes() int {
	return v.size * v.ElemSize()
}

// CapacityInBytes returns the byte size of the whole buffer.
func (v *Vector[T]) CapacityInBytes() int {
	return len(v.data) * v.ElemSize()
}

// Utilization returns the ratio of size to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	if len(v.data) == 0 {
		return 0
	}
	return float64(v.size) / float64(len(v.data))
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Size:            v.Size(),
		Capacity:        v.Capacity(),
		ElemSize:        v.ElemSize(),
		SizeInBytes:     v.SizeInBytes(),
		CapacityInBytes: v.CapacityInBytes(),
		Utilization:     v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Size            int     // Elements in use
	Capacity        int     // Allocated slots
	ElemSize        int     // Bytes per element
	SizeInBytes     int     // Bytes in use
	CapacityInBytes int     // Bytes allocated
	Utilization     float64 // Ratio of size to capacity (0.0-1.0)
}
