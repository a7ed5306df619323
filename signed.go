package safeint

// Operations defined for signed types only, enforced at compile time
// through the Signed constraint.

// Neg returns -v. Negating the minimum value of T is not representable and
// poisons the result; poison from v itself carries over unchanged.
func Neg[T Signed](v Int[T]) Int[T] {
	ret := v
	if val, ok := NegChecked(ret.val); ok {
		ret.val = val
	} else {
		ret.updatePoisoned(true)
	}
	return ret
}

// IsNeg reports whether v is less than zero. Same read contract as Get.
func IsNeg[T Signed](v Int[T]) bool {
	return v.getWithLoc(Here(1)) < 0
}
