package safeint

// The conversion layer. All width and signedness changes go through
// Convert (or the named wrappers below), which bounds-check the value
// against the destination's representable range and poison the result
// exactly when data would be lost. Poison is contagious: a conversion
// never launders an invalid source.

// Convert moves v to the destination type. When the value is representable
// the result carries the source's validity flags unchanged (an unchecked
// source stays unchecked); when it is not, the result is Failure.
func Convert[To, From Integer](v Int[From]) Int[To] {
	if !fits[To](v.val) {
		return Failure[To]()
	}
	return Int[To]{val: To(v.val), poisoned: v.poisoned, unchecked: v.unchecked}
}

// ConvertVal converts a raw scalar. The result is poisoned only when the
// value does not fit the destination range.
func ConvertVal[To, From Integer](v From) Int[To] {
	if !fits[To](v) {
		return Failure[To]()
	}
	return New(To(v))
}

// fits reports whether v is representable by To.
func fits[To, From Integer](v From) bool {
	if isSigned[From]() && int64(v) < 0 {
		return isSigned[To]() && int64(v) >= int64(MinOf[To]())
	}
	return uint64(v) <= uint64(MaxOf[To]())
}

// ToI8 returns v converted to an Int over int8.
func ToI8[From Integer](v Int[From]) I8 { return Convert[int8](v) }

// ToI16 returns v converted to an Int over int16.
func ToI16[From Integer](v Int[From]) I16 { return Convert[int16](v) }

// ToI32 returns v converted to an Int over int32.
func ToI32[From Integer](v Int[From]) I32 { return Convert[int32](v) }

// ToI64 returns v converted to an Int over int64.
func ToI64[From Integer](v Int[From]) I64 { return Convert[int64](v) }

// ToU8 returns v converted to an Int over uint8.
func ToU8[From Integer](v Int[From]) U8 { return Convert[uint8](v) }

// ToU16 returns v converted to an Int over uint16.
func ToU16[From Integer](v Int[From]) U16 { return Convert[uint16](v) }

// ToU32 returns v converted to an Int over uint32.
func ToU32[From Integer](v Int[From]) U32 { return Convert[uint32](v) }

// ToU64 returns v converted to an Int over uint64.
func ToU64[From Integer](v Int[From]) U64 { return Convert[uint64](v) }

// ToUMax returns v converted to an Int over the machine-width uint.
func ToUMax[From Integer](v Int[From]) UMax { return Convert[uint](v) }

// ToUPtr returns v converted to an Int over uintptr.
func ToUPtr[From Integer](v Int[From]) UPtr { return Convert[uintptr](v) }

// truncate converts between unsigned widths by plain bit truncation,
// keeping the source's validity flags.
func truncate[To, From Unsigned](v Int[From]) Int[To] {
	return Int[To]{val: To(v.val), poisoned: v.poisoned, unchecked: v.unchecked}
}

// ToU8Unsafe truncates v to uint8, keeping the low bits and the source's
// validity flags. Use only where discarding high bits is the intent.
func ToU8Unsafe[From Unsigned](v Int[From]) U8 { return truncate[uint8](v) }

// ToU16Unsafe truncates v to uint16. See ToU8Unsafe.
func ToU16Unsafe[From Unsigned](v Int[From]) U16 { return truncate[uint16](v) }

// ToU32Unsafe truncates v to uint32. See ToU8Unsafe.
func ToU32Unsafe[From Unsigned](v Int[From]) U32 { return truncate[uint32](v) }

// ToU64Unsafe truncates v to uint64. See ToU8Unsafe.
func ToU64Unsafe[From Unsigned](v Int[From]) U64 { return truncate[uint64](v) }

// ToUMaxUnsafe truncates v to uint. See ToU8Unsafe.
func ToUMaxUnsafe[From Unsigned](v Int[From]) UMax { return truncate[uint](v) }

// ToIdx converts v to an Idx. An invalid or non-representable source
// yields a poisoned Idx.
func ToIdx[From Integer](v Int[From]) Idx {
	if v.IsInvalid() || !fits[uint](v.val) {
		return IdxFailure()
	}
	return Idx{val: uint(v.val)}
}
