package vector

import (
	"fmt"
	"math"
	"unsafe"
)

// maxAllocBytes caps the byte size of a single buffer: 1<<47 on 64-bit
// platforms and 1<<31 on 32-bit ones, the same order as the runtime's limit.
const maxAllocBytes = 1 << (31 + 16*(^uint(0)>>63))

// elemSize returns the size in bytes of one T.
func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// allocBuffer returns a zeroed buffer of exactly n elements, len == cap == n.
// Failures are reported as ErrOutOfMemory instead of crashing the caller.
func allocBuffer[T any](n int) (buf []T, err error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrOutOfMemory, n)
	}
	if size := elemSize[T](); size > 0 && uint64(n) > uint64(maxAllocBytes)/uint64(size) {
		return nil, fmt.Errorf("%w: %d elements of %d bytes", ErrOutOfMemory, n, size)
	}

	// make panics with a runtime error when the length is still too large
	// for this platform.
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%w: %v", ErrOutOfMemory, r)
		}
	}()
	return make([]T, n), nil
}

// grownCapacity returns the capacity after one growth step: 0 becomes 1,
// anything else doubles.
func grownCapacity(c int) (int, error) {
	if c == 0 {
		return 1, nil
	}
	if c > math.MaxInt/2 {
		return 0, fmt.Errorf("%w: cannot double capacity %d", ErrOutOfMemory, c)
	}
	return 2 * c, nil
}
