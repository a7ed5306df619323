package safeint

import (
	"fmt"
	"runtime"
)

// Loc identifies a call site. It is captured automatically by the read
// accessors and attached to every contract-violation diagnostic.
type Loc struct {
	File string
	Line int
}

// Here captures a caller's source location. A skip of 0 names the caller
// of Here itself, 1 names that function's caller, and so on, following
// runtime.Caller semantics.
func Here(skip int) Loc {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Loc{File: "unknown"}
	}
	return Loc{File: file, Line: line}
}

// String returns the location in file:line form.
func (l Loc) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Located binds a value to the source location where it was captured.
// It is an ephemeral carrier used by the located comparison forms so a
// fatal validity violation can be attributed to the exact operand that
// caused it, not just the comparison expression.
type Located[T any] struct {
	val T
	loc Loc
}

// Arg captures val together with the caller's source location.
func Arg[T any](val T) Located[T] {
	return Located[T]{val: val, loc: Here(1)}
}

// Get returns the captured value.
func (l Located[T]) Get() T { return l.val }

// Sloc returns the location of the capture site.
func (l Located[T]) Sloc() Loc { return l.loc }
