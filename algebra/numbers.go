package algebra

import (
	"math"
	"unsafe"
)

// Signed is the set of signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the set of integer types.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of floating-point types.
type Float interface {
	~float32 | ~float64
}

// Number is the set of types with built-in + and *.
type Number interface {
	Integer | Float
}

// Bounded is the set of ordered types with a least and a greatest value.
// For floats, the bounds are the infinities.
type Bounded interface {
	Integer | Float
}

// MaxValue returns the greatest value of T.
func MaxValue[T Bounded]() T {
	var v T
	if isFloat(v) {
		return T(math.Inf(1))
	}
	v--
	if v > 0 { // unsigned: all bits set
		return v
	}
	bits := unsafe.Sizeof(v) * 8
	return T(uint64(1)<<(bits-1) - 1)
}

// MinValue returns the least value of T.
func MinValue[T Bounded]() T {
	var v T
	if isFloat(v) {
		return T(math.Inf(-1))
	}
	v--
	if v > 0 { // unsigned
		return 0
	}
	return -MaxValue[T]() - 1
}

func isFloat[T Bounded](v T) bool {
	v = 1
	v /= 2
	return v != 0
}
