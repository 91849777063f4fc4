package sequences

import (
	"fmt"

	"github.com/npillmayer/spella"
)

// Errors of this package are re-exported from package spella.
const (
	// ErrIndexOutOfBounds signals an element index outside [0, len).
	ErrIndexOutOfBounds = spella.ErrIndexOutOfBounds
	// ErrInvalidRange signals a range with start > end or end > len.
	ErrInvalidRange = spella.ErrInvalidRange
	// ErrLengthOverflow signals a length whose internal padding overflows int.
	ErrLengthOverflow = spella.ErrLengthOverflow
	// ErrBrokenInvariant is reported by the Check methods.
	ErrBrokenInvariant = spella.ErrBrokenInvariant
)

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// violation logs a precondition violation and panics with it.
func violation(err error) {
	tracer().Errorf("%v", err)
	panic(err)
}

func checkIndex(index, length int) {
	if index < 0 || index >= length {
		violation(fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, index, length))
	}
}

func checkRange(start, end, length int) {
	if start < 0 || start > end || end > length {
		violation(fmt.Errorf("%w: [%d, %d), length %d", ErrInvalidRange, start, end, length))
	}
}

func checkLength(n int) {
	if n < 0 {
		violation(fmt.Errorf("%w: negative length %d", ErrInvalidRange, n))
	}
}
