// Package vector implements a generic growable array over one contiguous buffer.
// Typical usage: create a vector, PushBack values, read them back by index or
// through an Iterator, and Reserve ahead of time when the final size is known.
package vector

import (
	"fmt"
	"slices"
)

// Vector is a growable array backed by a single, exclusively owned buffer.
// Not goroutine-safe. The zero value is an empty vector ready to use.
type Vector[T any] struct {
	data []T // backing buffer, len(data) is the capacity
	size int // number of meaningful elements at the front of data
}

// Int32Vector is a vector of 32-bit integers.
type Int32Vector = Vector[int32]

// New creates an empty vector with no allocated slots.
func New[T any]() *Vector[T] {
	return &Vector[T]{data: []T{}}
}

// NewWithSize creates a vector holding n zero values, with capacity exactly n.
// Returns ErrOutOfMemory if the buffer cannot be allocated (including n < 0).
func NewWithSize[T any](n int) (*Vector[T], error) {
	data, err := allocBuffer[T](n)
	if err != nil {
		return nil, vectorErrorf("NewWithSize", err)
	}
	return &Vector[T]{data: data, size: n}, nil
}

// Of creates a vector holding a copy of values, in order.
// Size and capacity are both len(values).
func Of[T any](values ...T) *Vector[T] {
	data := make([]T, len(values))
	copy(data, values)
	return &Vector[T]{data: data, size: len(values)}
}

// Clone returns a deep copy with the same size and capacity.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	data, err := allocBuffer[T](len(v.data))
	if err != nil {
		return nil, vectorErrorf("Clone", err)
	}
	copy(data, v.data[:v.size])
	return &Vector[T]{data: data, size: v.size}, nil
}

// CopyFrom replaces the contents of v with a deep copy of src, taking on
// src's size and capacity. Copying a vector onto itself does nothing.
// On error v is left as it was.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	data, err := allocBuffer[T](len(src.data))
	if err != nil {
		return vectorErrorf("CopyFrom", err)
	}
	copy(data, src.data[:src.size])
	v.data, v.size = data, src.size
	return nil
}

// Move returns a new vector that owns src's buffer. src is left empty with
// zero capacity.
func Move[T any](src *Vector[T]) *Vector[T] {
	v := &Vector[T]{data: src.data, size: src.size}
	src.data, src.size = nil, 0
	return v
}

// MoveFrom drops v's buffer and takes over src's. src is left empty with
// zero capacity. Moving a vector onto itself does nothing.
func (v *Vector[T]) MoveFrom(src *Vector[T]) *Vector[T] {
	if v == src {
		return v
	}
	v.data, v.size = src.data, src.size
	src.data, src.size = nil, 0
	return v
}

// Swap exchanges buffers, sizes and capacities with other and returns v.
func (v *Vector[T]) Swap(other *Vector[T]) *Vector[T] {
	v.data, other.data = other.data, v.data
	v.size, other.size = other.size, v.size
	return v
}

// At returns element i without checking it against Size().
// The caller must ensure 0 <= i < Size(). Indices in [Size(), Capacity())
// yield unspecified values; anything outside the buffer panics.
func (v *Vector[T]) At(i int) T {
	return v.data[i]
}

// Ref returns a pointer to element i, under the same precondition as At.
// The pointer refers to the current buffer and goes stale after a reallocation.
func (v *Vector[T]) Ref(i int) *T {
	return &v.data[i]
}

// Set assigns element i, under the same precondition as At.
func (v *Vector[T]) Set(i int, x T) {
	v.data[i] = x
}

// Get returns element i, or ErrOutOfRange if i is not in [0, Size()).
func (v *Vector[T]) Get(i int) (T, error) {
	if err := v.checkIndex(i); err != nil {
		var zero T
		return zero, vectorErrorf("Get", err)
	}
	return v.data[i], nil
}

// Store assigns element i, or returns ErrOutOfRange if i is not in [0, Size()).
func (v *Vector[T]) Store(i int, x T) error {
	if err := v.checkIndex(i); err != nil {
		return vectorErrorf("Store", err)
	}
	v.data[i] = x
	return nil
}

func (v *Vector[T]) checkIndex(i int) error {
	if i < 0 || i >= v.size {
		return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, v.size)
	}
	return nil
}

// Size returns the number of elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of allocated slots.
func (v *Vector[T]) Capacity() int {
	return len(v.data)
}

// PushBack appends x. When the buffer is full the capacity doubles
// (an empty buffer grows to one slot) and the elements are copied across.
// On ErrOutOfMemory the vector is unchanged.
func (v *Vector[T]) PushBack(x T) error {
	if v.size < len(v.data) {
		v.data[v.size] = x
		v.size++
		return nil
	}

	n, err := grownCapacity(len(v.data))
	if err == nil {
		err = v.realloc(n)
	}
	if err != nil {
		return vectorErrorf("PushBack", err)
	}
	v.data[v.size] = x
	v.size++
	return nil
}

// PopBack removes the last element. The slot is neither zeroed nor released.
// Returns ErrUnderflow on an empty vector.
func (v *Vector[T]) PopBack() error {
	if v.size == 0 {
		return vectorErrorf("PopBack", ErrUnderflow)
	}
	v.size--
	return nil
}

// Back returns the last element, or ErrUnderflow on an empty vector.
func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, vectorErrorf("Back", ErrUnderflow)
	}
	return v.data[v.size-1], nil
}

// Clear sets the size to zero and keeps the buffer.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Reserve grows the buffer to exactly n slots if n exceeds the capacity.
// It never shrinks and never changes the size.
func (v *Vector[T]) Reserve(n int) error {
	if n <= len(v.data) {
		return nil
	}
	if err := v.realloc(n); err != nil {
		return vectorErrorf("Reserve", err)
	}
	return nil
}

// Release drops the buffer and leaves v empty with zero capacity.
// v remains usable.
func (v *Vector[T]) Release() {
	v.data = nil
	v.size = 0
}

// realloc moves the elements into a fresh buffer of n slots.
// v is not touched unless the allocation succeeds.
func (v *Vector[T]) realloc(n int) error {
	data, err := allocBuffer[T](n)
	if err != nil {
		return err
	}
	copy(data, v.data[:v.size])
	v.data = data
	return nil
}

// Begin returns an iterator at the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{buf: v.data, pos: 0}
}

// End returns an iterator one past the last element as of this call.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{buf: v.data, pos: v.size}
}

// Values returns a copy of the elements.
func (v *Vector[T]) Values() []T {
	return slices.Clone(v.data[:v.size:v.size])
}

// String formats the elements like a slice, e.g. "[1 2 3]".
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.data[:v.size])
}

// EqualValues reports whether a and b hold the same elements in the same
// order. Capacities are not compared.
func EqualValues[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.data[:a.size], b.data[:b.size])
}
