package safeint

import "strconv"

// Idx is the narrow-contract relative of Int, intended for loop counters
// and container indices: an unsigned machine-width value with only a
// poisoned bit. Its usage pattern (bounded counters) is expected never to
// overflow in practice, so the must-check bookkeeping is dropped and reads
// assert only on poison. Poison propagation itself is identical to Int.
type Idx struct {
	val      uint
	poisoned bool
}

// NewIdx returns a valid Idx holding val.
func NewIdx(val uint) Idx {
	return Idx{val: val}
}

// IdxFailure returns the canonical poisoned Idx.
func IdxFailure() Idx {
	return Idx{poisoned: true}
}

// MaxIdx returns a valid Idx holding the largest representable index.
func MaxIdx() Idx {
	return NewIdx(MaxOf[uint]())
}

// IdxFromInt builds an Idx from a safe uint. Building one from an invalid
// value is a contract violation in debug builds; the resulting Idx is
// poisoned either way.
func IdxFromInt(v UMax) Idx {
	if v.IsInvalid() {
		violation("an Idx was built from an invalid value", Here(1))
		return IdxFailure()
	}
	return Idx{val: v.val}
}

// getWithLoc returns the raw value, asserting on poison at loc.
func (i Idx) getWithLoc(loc Loc) uint {
	if i.poisoned {
		violation("a poisoned Idx was read", loc)
	}
	return i.val
}

// Get returns the wrapped index. In debug builds reading a poisoned Idx
// fatally reports the call site; in release builds the raw payload is
// returned unconditionally.
func (i Idx) Get() uint {
	return i.getWithLoc(Here(1))
}

// IsPos reports whether the index is greater than zero. Same read contract
// as Get.
func (i Idx) IsPos() bool {
	return i.getWithLoc(Here(1)) > 0
}

// IsZero reports whether the index is zero. Same read contract as Get.
func (i Idx) IsZero() bool {
	return i.getWithLoc(Here(1)) == 0
}

// IsInvalid reports whether the Idx is poisoned.
func (i Idx) IsInvalid() bool {
	return i.poisoned
}

// IsValid is the complement of IsInvalid.
func (i Idx) IsValid() bool {
	return !i.poisoned
}

// ToInt returns the Idx as a safe uint, poisoned when the Idx is.
func (i Idx) ToInt() UMax {
	if i.IsInvalid() {
		return Failure[uint]()
	}
	return New(i.val)
}

// Add returns i+rhs, poisoned on overflow or when either operand was
// already invalid.
func (i Idx) Add(rhs Idx) Idx {
	ret := i
	if val, ok := AddChecked(ret.val, rhs.val); ok {
		ret.val = val
		ret.poisoned = ret.poisoned || rhs.poisoned
	} else {
		ret.poisoned = true
	}
	return ret
}

// AddVal returns i+rhs for a raw scalar.
func (i Idx) AddVal(rhs uint) Idx {
	ret := i
	if val, ok := AddChecked(ret.val, rhs); ok {
		ret.val = val
	} else {
		ret.poisoned = true
	}
	return ret
}

// Sub returns i-rhs, poisoned on underflow or when either operand was
// already invalid.
func (i Idx) Sub(rhs Idx) Idx {
	ret := i
	if val, ok := SubChecked(ret.val, rhs.val); ok {
		ret.val = val
		ret.poisoned = ret.poisoned || rhs.poisoned
	} else {
		ret.poisoned = true
	}
	return ret
}

// SubVal returns i-rhs for a raw scalar.
func (i Idx) SubVal(rhs uint) Idx {
	ret := i
	if val, ok := SubChecked(ret.val, rhs); ok {
		ret.val = val
	} else {
		ret.poisoned = true
	}
	return ret
}

// Inc advances the index by one in place.
func (i *Idx) Inc() {
	*i = i.AddVal(1)
}

// Dec moves the index back by one in place, poisoning on underflow.
func (i *Idx) Dec() {
	*i = i.SubVal(1)
}

// Eq reports whether i == rhs. Reading a poisoned operand is a contract
// violation, as with Get.
func (i Idx) Eq(rhs Idx) bool {
	loc := Here(1)
	return i.getWithLoc(loc) == rhs.getWithLoc(loc)
}

// Ne reports whether i != rhs.
func (i Idx) Ne(rhs Idx) bool {
	loc := Here(1)
	return i.getWithLoc(loc) != rhs.getWithLoc(loc)
}

// Lt reports whether i < rhs.
func (i Idx) Lt(rhs Idx) bool {
	loc := Here(1)
	return i.getWithLoc(loc) < rhs.getWithLoc(loc)
}

// Le reports whether i <= rhs.
func (i Idx) Le(rhs Idx) bool {
	loc := Here(1)
	return i.getWithLoc(loc) <= rhs.getWithLoc(loc)
}

// Gt reports whether i > rhs.
func (i Idx) Gt(rhs Idx) bool {
	loc := Here(1)
	return i.getWithLoc(loc) > rhs.getWithLoc(loc)
}

// Ge reports whether i >= rhs.
func (i Idx) Ge(rhs Idx) bool {
	loc := Here(1)
	return i.getWithLoc(loc) >= rhs.getWithLoc(loc)
}

// EqVal reports whether i equals a raw scalar.
func (i Idx) EqVal(rhs uint) bool {
	return i.getWithLoc(Here(1)) == rhs
}

// LtVal reports whether i is less than a raw scalar.
func (i Idx) LtVal(rhs uint) bool {
	return i.getWithLoc(Here(1)) < rhs
}

// String renders the index for diagnostics: "[error]" when poisoned, the
// decimal value otherwise.
func (i Idx) String() string {
	if i.IsInvalid() {
		return "[error]"
	}
	return strconv.FormatUint(uint64(i.val), 10)
}
