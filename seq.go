package vector

import "iter"

// All yields index/value pairs from front to back. The range is fixed when
// All is called; writes through Set during iteration are visible.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	data := v.data[:v.size]
	return func(yield func(int, T) bool) {
		for i, x := range data {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Backward yields index/value pairs from back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	data := v.data[:v.size]
	return func(yield func(int, T) bool) {
		for i := len(data) - 1; i >= 0; i-- {
			if !yield(i, data[i]) {
				return
			}
		}
	}
}
