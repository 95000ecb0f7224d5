// Package vector implements a generic growable array (dynamic array) for Go.
//
// # Overview
//
// A Vector owns one contiguous buffer and tracks two counters: the size, the
// number of elements in use, and the capacity, the number of allocated slots.
// Appending is amortized O(1): when the buffer is full its capacity doubles,
// starting from one slot, so the capacities seen while pushing into an empty
// vector are exactly 0, 1, 2, 4, 8, ...
//
// # Basic Usage
//
//	v := vector.New[int32]()
//	v.PushBack(1)
//	v.PushBack(2)
//	v.PushBack(3)
//
//	v.Size()     // 3
//	v.Capacity() // 4
//	v.At(0)      // 1
//
//	// Preallocate when the final size is known
//	v.Reserve(1024)
//
//	// Drop elements, keep the buffer
//	v.Clear()
//
// # Construction, Copy and Move
//
//	vector.New[T]()          // empty, capacity 0
//	vector.NewWithSize[T](n) // n zero values, capacity n
//	vector.Of(5, 6, 7)       // literal values, capacity 3
//	v.Clone()                // deep copy with its own buffer
//	v.CopyFrom(src)          // deep copy assignment
//	vector.Move(src)         // takes src's buffer, src becomes empty
//	v.MoveFrom(src)          // move assignment
//	v.Swap(other)            // exchanges buffers in O(1)
//
// # Iterators
//
// Begin and End return random-access cursors over the elements present at the
// time of the call:
//
//	for it, end := v.Begin(), v.End(); it.Less(end); it.Next() {
//		fmt.Println(it.Value())
//	}
//
// All and Backward provide the same traversal for range-over-func loops.
//
// # Important Notes
//
//   - Not goroutine-safe; callers synchronize concurrent use
//   - At, Ref, Set and iterator dereferences do not check the size; use Get
//     and Store for checked access
//   - Pointers from Ref and iterators refer to the current buffer and must not
//     be used after the vector reallocates
//   - Allocation failures return ErrOutOfMemory and leave the vector unchanged
//   - PopBack and Back on an empty vector return ErrUnderflow
//
// # Metrics
//
// The vector reports its memory footprint:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Bytes in use: %d\n", m.SizeInBytes)
//	fmt.Printf("Bytes allocated: %d\n", m.CapacityInBytes)
package vector
