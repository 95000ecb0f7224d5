package vector

import "cmp"

// Iterator is a random-access cursor into a vector's buffer.
//
// It holds the buffer the vector had when Begin or End was called and an index
// into it. After the vector reallocates (PushBack past capacity, Reserve,
// CopyFrom, MoveFrom, Swap, Release) the iterator still reads the old buffer
// and must not be used. Operations that keep the buffer (PushBack within
// capacity, PopBack, Clear, Set) leave the iterator valid. Stepping is never
// checked. Dereferencing outside the buffer panics instead of reading
// arbitrary memory; slots past the size read unspecified values.
//
// The zero Iterator is a null cursor: it compares equal to other zero
// iterators and must not be dereferenced.
type Iterator[T any] struct {
	buf []T
	pos int
}

// Value returns the element under the cursor.
func (it Iterator[T]) Value() T {
	return it.buf[it.pos]
}

// Ptr returns a pointer to the element under the cursor.
func (it Iterator[T]) Ptr() *T {
	return &it.buf[it.pos]
}

// Set writes x to the element under the cursor.
func (it Iterator[T]) Set(x T) {
	it.buf[it.pos] = x
}

// At returns the element n positions away, the same as it.Add(n).Value().
func (it Iterator[T]) At(n int) T {
	return it.buf[it.pos+n]
}

// Next moves the cursor forward by one and returns the moved cursor.
func (it *Iterator[T]) Next() Iterator[T] {
	it.pos++
	return *it
}

// PostInc moves the cursor forward by one and returns the cursor as it was.
func (it *Iterator[T]) PostInc() Iterator[T] {
	old := *it
	it.pos++
	return old
}

// Prev moves the cursor back by one and returns the moved cursor.
func (it *Iterator[T]) Prev() Iterator[T] {
	it.pos--
	return *it
}

// PostDec moves the cursor back by one and returns the cursor as it was.
func (it *Iterator[T]) PostDec() Iterator[T] {
	old := *it
	it.pos--
	return old
}

// Advance moves the cursor by n, backwards when n is negative.
func (it *Iterator[T]) Advance(n int) *Iterator[T] {
	it.pos += n
	return it
}

// Add returns a cursor n positions ahead. n may be negative.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.pos += n
	return it
}

// Sub returns a cursor n positions back. n may be negative.
func (it Iterator[T]) Sub(n int) Iterator[T] {
	it.pos -= n
	return it
}

// Distance returns the signed number of elements from `from` to it,
// so that from.Add(it.Distance(from)) equals it.
func (it Iterator[T]) Distance(from Iterator[T]) int {
	return it.pos - from.pos
}

// Compare returns -1, 0 or +1 as it is before, at or after o.
// Both cursors must come from the same vector.
func (it Iterator[T]) Compare(o Iterator[T]) int {
	return cmp.Compare(it.pos, o.pos)
}

// Equal reports whether it and o are at the same position.
func (it Iterator[T]) Equal(o Iterator[T]) bool { return it.pos == o.pos }

// NotEqual reports whether it and o are at different positions.
func (it Iterator[T]) NotEqual(o Iterator[T]) bool { return it.pos != o.pos }

// Less reports whether it is before o.
func (it Iterator[T]) Less(o Iterator[T]) bool { return it.pos < o.pos }

// LessEqual reports whether it is before or at o.
func (it Iterator[T]) LessEqual(o Iterator[T]) bool { return it.pos <= o.pos }

// Greater reports whether it is after o.
func (it Iterator[T]) Greater(o Iterator[T]) bool { return it.pos > o.pos }

// GreaterEqual reports whether it is after or at o.
func (it Iterator[T]) GreaterEqual(o Iterator[T]) bool { return it.pos >= o.pos }
