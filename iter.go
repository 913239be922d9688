package vector

import "iter"

// All yields the index and a pointer to each live element in index order.
// The sequence may be ranged over any number of times; it must not be used
// across a mutation that reallocates.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.At(i)) {
				return
			}
		}
	}
}

// Values yields a copy of each live element in index order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.buf.At(i)) {
				return
			}
		}
	}
}

// Backward yields the live elements from the back to the front.
func (v *Vector[T]) Backward() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf.At(i)) {
				return
			}
		}
	}
}
