// Package safeint provides validity-tracked integer arithmetic: fixed-width
// values whose every arithmetic operation is checked for overflow,
// underflow, division by zero and lossy conversion, with the outcome
// recorded in the value itself instead of being thrown, returned or
// silently wrapped.
//
// # The contract
//
// An Int carries its value plus a poisoned flag. Arithmetic never panics
// and never wraps silently: an operation that would lose information
// poisons its result, and poison is contagious through every subsequent
// operation. Before reading a result the caller must query validity
// exactly once:
//
//	a := safeint.New(uint8(254))
//	b := a.AddVal(1)
//	if b.IsPoisoned() {
//	    return safeint.Failure[uint8]()
//	}
//	use(b.Get()) // 255
//
// In debug builds (the default) a second flag tracks whether that query
// happened; calling Get on an unchecked or poisoned value fatally reports
// the call site through an injectable violation handler. Building with
// -tags safeint_release compiles the bookkeeping and the fatal paths out,
// leaving only the overflow detection itself.
//
// # Types
//
//   - Int[T]: the validity-tracked integral, for any of the ten supported
//     widths (aliases I8..I64, U8..U64, UMax, UPtr).
//   - Idx: a narrow-contract companion for loop counters and container
//     indices; poison tracking without the must-check obligation.
//   - Located: an argument carrier binding a value to its capture site,
//     used by the located comparison forms for precise attribution.
//
// # Conversions
//
// Construction never converts. Width or signedness changes go through
// Convert or the named helpers (ToU8, ToI32, ToUMax, ...), which poison
// the result exactly when the value does not fit the destination:
//
//	v := safeint.ToU8(safeint.New(int32(200)))  // valid, 200
//	w := safeint.ToI8(safeint.New(int32(200)))  // poisoned, 200 > MaxInt8
//
// # Checked primitives
//
// The leaves everything is built on are exported too: AddChecked,
// SubChecked, MulChecked, DivChecked, RemChecked and NegChecked operate on
// plain machine integers and report success through a comma-ok boolean.
package safeint
