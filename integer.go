package safeint

import "unsafe"

// Signed is the closed set of signed integer types supported by Int.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Unsigned is the closed set of unsigned integer types supported by Int.
// Bitwise, shift and complement operations are only defined for these.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Integer is the union of all integer types supported by Int.
type Integer interface {
	Signed | Unsigned
}

// BitsOf returns the width of T in bits.
func BitsOf[T Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// MaxOf returns the largest value representable by T.
func MaxOf[T Integer]() T {
	var zero T
	if !isSigned[T]() {
		return ^zero
	}
	return ^(T(1) << (BitsOf[T]() - 1))
}

// MinOf returns the smallest value representable by T.
func MinOf[T Integer]() T {
	var zero T
	if !isSigned[T]() {
		return zero
	}
	// 1 << (bits-1) wraps to the most negative value.
	return T(1) << (BitsOf[T]() - 1)
}

// isSigned reports whether T is a signed type. The complement of zero is
// -1 for signed types and the maximum for unsigned types.
func isSigned[T Integer]() bool {
	var zero T
	return ^zero < zero
}
