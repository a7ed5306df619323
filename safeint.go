package safeint

import "strconv"

// Int wraps a single fixed-width integer together with a validity contract:
// a poisoned bit recording whether the value ever passed through an unsafe
// operation (overflow, underflow, divide-by-zero, lossy conversion), and,
// in debug builds, an unchecked bit recording whether the caller has
// confirmed validity since the last arithmetic operation.
//
// The rules are small but strict:
//
//   - Every arithmetic operation marks its result unchecked, whether or not
//     it poisoned. The caller owes exactly one validity query per result.
//   - IsPoisoned is the canonical query: it reports poison and clears the
//     unchecked bit on a valid value.
//   - Reading an unchecked or poisoned value (Get, IsZero, IsPos, the
//     comparisons) is a fatal contract violation in debug builds. In
//     release builds the bookkeeping is compiled out and the raw payload
//     is returned as-is.
//   - Bitwise, shift and complement operations preserve the bit pattern
//     and therefore never require re-checking.
//   - Poison is contagious: once set it survives every subsequent
//     operation until the caller inspects it and decides how to recover.
//
// Int is a plain value type: no heap allocation, trivially copyable, and
// as safe to share across goroutines as a built-in integer (which is to
// say: not, without external synchronization of the shared instance).
type Int[T Integer] struct {
	val       T
	poisoned  bool
	unchecked bool
}

// Shorthand aliases for the supported widths.
type (
	// I8 is an Int over int8.
	I8 = Int[int8]
	// I16 is an Int over int16.
	I16 = Int[int16]
	// I32 is an Int over int32.
	I32 = Int[int32]
	// I64 is an Int over int64.
	I64 = Int[int64]
	// U8 is an Int over uint8.
	U8 = Int[uint8]
	// U16 is an Int over uint16.
	U16 = Int[uint16]
	// U32 is an Int over uint32.
	U32 = Int[uint32]
	// U64 is an Int over uint64.
	U64 = Int[uint64]
	// UMax is an Int over the machine-width uint.
	UMax = Int[uint]
	// UPtr is an Int over uintptr.
	UPtr = Int[uintptr]
)

// New returns a valid, checked Int holding val. Construction never
// converts: width or signedness changes must go through the conversion
// layer so that data loss is always accounted for.
func New[T Integer](val T) Int[T] {
	return Int[T]{val: val}
}

// Failure returns the canonical invalid Int: poisoned, unchecked, zero
// payload. It is the library's error return, used in place of exceptions
// or error values.
func Failure[T Integer]() Int[T] {
	return Int[T]{poisoned: true, unchecked: true}
}

// MaxValue returns a valid Int holding the largest value T can represent.
func MaxValue[T Integer]() Int[T] {
	return New(MaxOf[T]())
}

// MinValue returns a valid Int holding the smallest value T can represent.
func MinValue[T Integer]() Int[T] {
	return New(MinOf[T]())
}

// getWithLoc returns the raw value, enforcing the read contract at loc.
func (s Int[T]) getWithLoc(loc Loc) T {
	if s.poisoned {
		violation("a poisoned Int was read", loc)
	}
	s.verifyChecked(loc)
	return s.val
}

// Get returns the wrapped value. In debug builds reading a poisoned or
// unchecked Int fatally reports the call site through the violation
// handler; in release builds the raw payload is returned unconditionally.
func (s Int[T]) Get() T {
	return s.getWithLoc(Here(1))
}

// GetAt is Get with an explicit location, for wrappers that want the
// diagnostic attributed to their own caller.
func (s Int[T]) GetAt(loc Loc) T {
	return s.getWithLoc(loc)
}

// IsZero reports whether the value is zero. Same read contract as Get.
func (s Int[T]) IsZero() bool {
	return s.getWithLoc(Here(1)) == 0
}

// IsPos reports whether the value is greater than zero. Same read contract
// as Get.
func (s Int[T]) IsPos() bool {
	return s.getWithLoc(Here(1)) > 0
}

// IsPoisoned reports whether the Int is invalid, and marks a valid Int as
// checked. This is the canonical way to discharge the must-check
// obligation after arithmetic.
func (s *Int[T]) IsPoisoned() bool {
	s.markCheckedIfValid()
	return s.poisoned
}

// IsInvalid reports whether the Int is poisoned without touching the
// checked state. Use it to branch on validity without committing to
// treating the value as checked.
func (s Int[T]) IsInvalid() bool {
	return s.poisoned
}

// IsValid is the complement of IsInvalid.
func (s Int[T]) IsValid() bool {
	return !s.poisoned
}

// IsZeroOrPoisoned reports whether the Int is zero or invalid, marking a
// valid Int as checked.
func (s *Int[T]) IsZeroOrPoisoned() bool {
	if s.IsPoisoned() {
		return true
	}
	return s.val == 0
}

// IsZeroOrInvalid reports whether the Int is zero or invalid without
// touching the checked state.
func (s Int[T]) IsZeroOrInvalid() bool {
	if s.IsInvalid() {
		return true
	}
	return s.val == 0
}

// Checked returns a copy with the unchecked bit cleared. Use it only when
// analysis or tests have proven the producing expression cannot poison;
// calling it on a poisoned Int is itself a contract violation.
func (s Int[T]) Checked() Int[T] {
	if s.poisoned {
		violation("Checked was called on a poisoned Int", Here(1))
	}
	return Int[T]{val: s.val, poisoned: s.poisoned}
}

// IsUnchecked reports whether a validity query is still owed for this
// value. Always false in release builds.
func (s Int[T]) IsUnchecked() bool {
	return s.isUnchecked()
}

// IsChecked is the complement of IsUnchecked.
func (s Int[T]) IsChecked() bool {
	return !s.isUnchecked()
}

// IsValidAndChecked reports whether the value is safe to read. Release
// builds collapse this to IsValid.
func (s Int[T]) IsValidAndChecked() bool {
	return s.IsValid() && s.IsChecked()
}

// Add returns s+rhs. The result is unchecked; it is poisoned when the sum
// overflows or when either operand was already invalid.
func (s Int[T]) Add(rhs Int[T]) Int[T] {
	ret := s
	if val, ok := AddChecked(ret.val, rhs.val); ok {
		ret.val = val
		ret.updatePoisoned(rhs.IsInvalid())
	} else {
		ret.updatePoisoned(true)
	}
	return ret
}

// AddVal returns s+rhs for a raw scalar, which carries no poison of its
// own. The result is unchecked.
func (s Int[T]) AddVal(rhs T) Int[T] {
	ret := s
	if val, ok := AddChecked(ret.val, rhs); ok {
		ret.val = val
		ret.markUnchecked()
	} else {
		ret.updatePoisoned(true)
	}
	return ret
}

// Sub returns s-rhs. Same contract as Add.
func (s Int[T]) Sub(rhs Int[T]) Int[T] {
	ret := s
	if val, ok := SubChecked(ret.val, rhs.val); ok {
		ret.val = val
		ret.updatePoisoned(rhs.IsInvalid())
	} else {
		ret.updatePoisoned(true)
	}
	return ret
}

// SubVal returns s-rhs for a raw scalar. Same contract as AddVal.
func (s Int[T]) SubVal(rhs T) Int[T] {
	ret := s
	if val, ok := SubChecked(ret.val, rhs); ok {
		ret.val = val
		ret.markUnchecked()
	} else {
		ret.updatePoisoned(true)
	}
	return ret
}

// Mul returns s*rhs. Same contract as Add.
func (s Int[T]) Mul(rhs Int[T]) Int[T] {
	ret := s
	if val, ok := MulChecked(ret.val, rhs.val); ok {
		ret.val = val
		ret.updatePoisoned(rhs.IsInvalid())
	} else {
		ret.updatePoisoned(true)
	}
	return ret
}

// MulVal returns s*rhs for a raw scalar. Same contract as AddVal.
func (s Int[T]) MulVal(rhs T) Int[T] {
	ret := s
	if val, ok := MulChecked(ret.val, rhs); ok {
		ret.val = val
		ret.markUnchecked()
	} else {
		ret.updatePoisoned(true)
	}
	return ret
}

// Div returns s/rhs. The result is poisoned on division by zero, on the
// signed-minimum/-1 case, or when either operand was already invalid.
func (s Int[T]) Div(rhs Int[T]) Int[T] {
	ret := s
	if val, ok := DivChecked(ret.val, rhs.val); ok {
		ret.val = val
		ret.updatePoisoned(rhs.IsInvalid())
	} else {
		ret.updatePoisoned(true)
	}
	return ret
}

// DivVal returns s/rhs for a raw scalar. Same contract as Div.
func (s Int[T]) DivVal(rhs T) Int[T] {
	ret := s
	if val, ok := DivChecked(ret.val, rhs); ok {
		ret.val = val
		ret.markUnchecked()
	} else {
		ret.updatePoisoned(true)
	}
	return ret
}

// Rem returns the remainder s%rhs (truncated division, matching Go's %).
// Failure cases mirror Div.
func (s Int[T]) Rem(rhs Int[T]) Int[T] {
	ret := s
	if val, ok := RemChecked(ret.val, rhs.val); ok {
		ret.val = val
		ret.updatePoisoned(rhs.IsInvalid())
	} else {
		ret.updatePoisoned(true)
	}
	return ret
}

// RemVal returns s%rhs for a raw scalar. Same contract as Rem.
func (s Int[T]) RemVal(rhs T) Int[T] {
	ret := s
	if val, ok := RemChecked(ret.val, rhs); ok {
		ret.val = val
		ret.markUnchecked()
	} else {
		ret.updatePoisoned(true)
	}
	return ret
}

// Max returns the greater of s and rhs as a fresh, checked value, or
// Failure when either operand is invalid.
func (s Int[T]) Max(rhs Int[T]) Int[T] {
	if s.IsInvalid() || rhs.IsInvalid() {
		return Failure[T]()
	}
	if s.val > rhs.val {
		return New(s.val)
	}
	return New(rhs.val)
}

// Min returns the lesser of s and rhs as a fresh, checked value, or
// Failure when either operand is invalid.
func (s Int[T]) Min(rhs Int[T]) Int[T] {
	if s.IsInvalid() || rhs.IsInvalid() {
		return Failure[T]()
	}
	if s.val < rhs.val {
		return New(s.val)
	}
	return New(rhs.val)
}

// String renders the value for diagnostics: "[error]" for an invalid Int,
// the decimal value otherwise. Display does not consume or enforce the
// checked state, so values can be logged mid-computation.
func (s Int[T]) String() string {
	if s.IsInvalid() {
		return "[error]"
	}
	if isSigned[T]() {
		return strconv.FormatInt(int64(s.val), 10)
	}
	return strconv.FormatUint(uint64(s.val), 10)
}
