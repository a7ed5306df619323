package safeint

// Bitwise, shift and complement operations. These are defined for unsigned
// types only, enforced at compile time through the Unsigned constraint.
// They are information-preserving over the bit pattern, so unlike
// arithmetic they never mark their result unchecked: a poisoned operand
// still propagates, but a valid result can be read immediately.

// And returns lhs&rhs, propagating poison from rhs.
func And[T Unsigned](lhs, rhs Int[T]) Int[T] {
	ret := lhs
	ret.val &= rhs.val
	ret.updatePoisoned(rhs.IsInvalid())
	ret.markCheckedIfValid()
	return ret
}

// AndVal returns lhs&rhs for a raw scalar. A scalar has no poison to
// propagate, so the validity flags are untouched.
func AndVal[T Unsigned](lhs Int[T], rhs T) Int[T] {
	ret := lhs
	ret.val &= rhs
	return ret
}

// Or returns lhs|rhs, propagating poison from rhs.
func Or[T Unsigned](lhs, rhs Int[T]) Int[T] {
	ret := lhs
	ret.val |= rhs.val
	ret.updatePoisoned(rhs.IsInvalid())
	ret.markCheckedIfValid()
	return ret
}

// OrVal returns lhs|rhs for a raw scalar, leaving the validity flags
// untouched.
func OrVal[T Unsigned](lhs Int[T], rhs T) Int[T] {
	ret := lhs
	ret.val |= rhs
	return ret
}

// Xor returns lhs^rhs, propagating poison from rhs.
func Xor[T Unsigned](lhs, rhs Int[T]) Int[T] {
	ret := lhs
	ret.val ^= rhs.val
	ret.updatePoisoned(rhs.IsInvalid())
	ret.markCheckedIfValid()
	return ret
}

// XorVal returns lhs^rhs for a raw scalar, leaving the validity flags
// untouched.
func XorVal[T Unsigned](lhs Int[T], rhs T) Int[T] {
	ret := lhs
	ret.val ^= rhs
	return ret
}

// Not returns the bit complement of v. A pure bit operation: the validity
// flags carry over unchanged.
func Not[T Unsigned](v Int[T]) Int[T] {
	ret := v
	ret.val = ^ret.val
	return ret
}

// Shl returns lhs shifted left by rhs bits, propagating poison from rhs.
// The shift count is reduced modulo the bit width of T.
func Shl[T Unsigned](lhs, rhs Int[T]) Int[T] {
	ret := lhs
	ret.val = shlWrap(ret.val, uint(rhs.val))
	ret.updatePoisoned(rhs.IsInvalid())
	ret.markCheckedIfValid()
	return ret
}

// ShlVal returns lhs shifted left by n bits for a raw scalar count.
func ShlVal[T Unsigned](lhs Int[T], n uint) Int[T] {
	ret := lhs
	ret.val = shlWrap(ret.val, n)
	ret.markCheckedIfValid()
	return ret
}

// Shr returns lhs shifted right by rhs bits, propagating poison from rhs.
// The shift count is reduced modulo the bit width of T.
func Shr[T Unsigned](lhs, rhs Int[T]) Int[T] {
	ret := lhs
	ret.val = shrWrap(ret.val, uint(rhs.val))
	ret.updatePoisoned(rhs.IsInvalid())
	ret.markCheckedIfValid()
	return ret
}

// ShrVal returns lhs shifted right by n bits for a raw scalar count.
func ShrVal[T Unsigned](lhs Int[T], n uint) Int[T] {
	ret := lhs
	ret.val = shrWrap(ret.val, n)
	ret.markCheckedIfValid()
	return ret
}

func shlWrap[T Unsigned](v T, n uint) T {
	return v << (n % uint(BitsOf[T]()))
}

func shrWrap[T Unsigned](v T, n uint) T {
	return v >> (n % uint(BitsOf[T]()))
}
