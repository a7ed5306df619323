package safeint

// Rational operators. Semantically these are plain value comparisons, but
// they are gated by the same read contract as Get: comparing a poisoned or
// unchecked operand is a contract violation in debug builds. The method
// forms attribute a violation to the comparison call site; the located
// forms attribute it to each operand's own capture site.

// Eq reports whether s == rhs.
func (s Int[T]) Eq(rhs Int[T]) bool {
	loc := Here(1)
	return s.getWithLoc(loc) == rhs.getWithLoc(loc)
}

// Ne reports whether s != rhs.
func (s Int[T]) Ne(rhs Int[T]) bool {
	loc := Here(1)
	return s.getWithLoc(loc) != rhs.getWithLoc(loc)
}

// Lt reports whether s < rhs.
func (s Int[T]) Lt(rhs Int[T]) bool {
	loc := Here(1)
	return s.getWithLoc(loc) < rhs.getWithLoc(loc)
}

// Le reports whether s <= rhs.
func (s Int[T]) Le(rhs Int[T]) bool {
	loc := Here(1)
	return s.getWithLoc(loc) <= rhs.getWithLoc(loc)
}

// Gt reports whether s > rhs.
func (s Int[T]) Gt(rhs Int[T]) bool {
	loc := Here(1)
	return s.getWithLoc(loc) > rhs.getWithLoc(loc)
}

// Ge reports whether s >= rhs.
func (s Int[T]) Ge(rhs Int[T]) bool {
	loc := Here(1)
	return s.getWithLoc(loc) >= rhs.getWithLoc(loc)
}

// EqVal reports whether s equals a raw scalar.
func (s Int[T]) EqVal(rhs T) bool {
	return s.getWithLoc(Here(1)) == rhs
}

// NeVal reports whether s differs from a raw scalar.
func (s Int[T]) NeVal(rhs T) bool {
	return s.getWithLoc(Here(1)) != rhs
}

// LtVal reports whether s is less than a raw scalar.
func (s Int[T]) LtVal(rhs T) bool {
	return s.getWithLoc(Here(1)) < rhs
}

// LeVal reports whether s is at most a raw scalar.
func (s Int[T]) LeVal(rhs T) bool {
	return s.getWithLoc(Here(1)) <= rhs
}

// GtVal reports whether s is greater than a raw scalar.
func (s Int[T]) GtVal(rhs T) bool {
	return s.getWithLoc(Here(1)) > rhs
}

// GeVal reports whether s is at least a raw scalar.
func (s Int[T]) GeVal(rhs T) bool {
	return s.getWithLoc(Here(1)) >= rhs
}

// Eq compares two located operands, attributing any read-contract
// violation to the operand's own capture site rather than the comparison.
func Eq[T Integer](lhs, rhs Located[Int[T]]) bool {
	return lhs.Get().getWithLoc(lhs.Sloc()) == rhs.Get().getWithLoc(rhs.Sloc())
}

// Ne compares two located operands. See Eq.
func Ne[T Integer](lhs, rhs Located[Int[T]]) bool {
	return lhs.Get().getWithLoc(lhs.Sloc()) != rhs.Get().getWithLoc(rhs.Sloc())
}

// Lt compares two located operands. See Eq.
func Lt[T Integer](lhs, rhs Located[Int[T]]) bool {
	return lhs.Get().getWithLoc(lhs.Sloc()) < rhs.Get().getWithLoc(rhs.Sloc())
}

// Le compares two located operands. See Eq.
func Le[T Integer](lhs, rhs Located[Int[T]]) bool {
	return lhs.Get().getWithLoc(lhs.Sloc()) <= rhs.Get().getWithLoc(rhs.Sloc())
}

// Gt compares two located operands. See Eq.
func Gt[T Integer](lhs, rhs Located[Int[T]]) bool {
	return lhs.Get().getWithLoc(lhs.Sloc()) > rhs.Get().getWithLoc(rhs.Sloc())
}

// Ge compares two located operands. See Eq.
func Ge[T Integer](lhs, rhs Located[Int[T]]) bool {
	return lhs.Get().getWithLoc(lhs.Sloc()) >= rhs.Get().getWithLoc(rhs.Sloc())
}
