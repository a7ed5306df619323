package safeint

// Overflow-checked primitive operations. These are the leaves the Int
// state machine is built on: plain machine arithmetic plus wrap detection,
// reporting success through a comma-ok boolean. They never panic and never
// allocate. On failure the returned value is the zero value of T.

// AddChecked returns a+b and reports whether the sum is representable.
func AddChecked[T Integer](a, b T) (T, bool) {
	var zero T

	sum := a + b
	if isSigned[T]() {
		if (b > 0 && sum < a) || (b < 0 && sum > a) {
			return zero, false
		}
		return sum, true
	}

	if sum < a {
		return zero, false
	}
	return sum, true
}

// SubChecked returns a-b and reports whether the difference is representable.
func SubChecked[T Integer](a, b T) (T, bool) {
	var zero T

	diff := a - b
	if isSigned[T]() {
		if (b > 0 && diff > a) || (b < 0 && diff < a) {
			return zero, false
		}
		return diff, true
	}

	if b > a {
		return zero, false
	}
	return diff, true
}

// MulChecked returns a*b and reports whether the product is representable.
func MulChecked[T Integer](a, b T) (T, bool) {
	var zero T

	if a == 0 || b == 0 {
		return zero, true
	}

	// MinOf * -1 is the one signed product whose wrap the division check
	// below cannot probe without faulting. For unsigned types MinOf is 0,
	// which the fast path above already excluded.
	if (a == MinOf[T]() && b == ^zero) || (b == MinOf[T]() && a == ^zero) {
		return zero, false
	}

	prod := a * b
	if prod/b != a {
		return zero, false
	}
	return prod, true
}

// DivChecked returns a/b and reports whether the quotient is representable.
// Division fails when b is zero, or when dividing the signed minimum by -1.
func DivChecked[T Integer](a, b T) (T, bool) {
	var zero T

	if b == 0 {
		return zero, false
	}
	if isSigned[T]() && a == MinOf[T]() && b == ^zero {
		return zero, false
	}
	return a / b, true
}

// RemChecked returns a%b and reports whether the remainder is representable.
// The failure cases are the same as DivChecked.
func RemChecked[T Integer](a, b T) (T, bool) {
	var zero T

	if b == 0 {
		return zero, false
	}
	if isSigned[T]() && a == MinOf[T]() && b == ^zero {
		return zero, false
	}
	return a % b, true
}

// NegChecked returns -v and reports whether the negation is representable.
// It fails only for the minimum value of T.
func NegChecked[T Signed](v T) (T, bool) {
	var zero T

	if v == MinOf[T]() {
		return zero, false
	}
	return -v, true
}
