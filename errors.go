package vector

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "vector: ". Operations wrap these sentinels
// with method context, so callers match them with errors.Is.
var (
	// ErrOutOfMemory is returned when a buffer cannot be allocated: negative
	// lengths, lengths whose byte size exceeds the address space, or a
	// runtime refusal to make the slice. The receiver is left unchanged.
	ErrOutOfMemory = errors.New("vector: out of memory")

	// ErrUnderflow is returned by PopBack and Back on an empty vector.
	ErrUnderflow = errors.New("vector: underflow on empty vector")

	// ErrOutOfRange is returned by the checked accessors Get and Store.
	ErrOutOfRange = errors.New("vector: index out of range")
)

// vectorErrorf wraps an underlying error with Vector method context.
func vectorErrorf(method string, err error) error {
	return fmt.Errorf("Vector.%s: %w", method, err)
}
