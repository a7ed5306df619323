// Package arguments provides non-allocating access to a command line,
// returning validity-tracked values instead of errors.
//
// Positional arguments are addressed by their position once every optional
// argument (anything starting with "-") is removed. A consequence is that a
// negative integral cannot be passed positionally; it reads as an option
// and must use the -name=value form instead. Optional arguments use the
// -name or -name=value form, may appear anywhere, and are resolved in
// reverse order so that later occurrences override earlier ones. A missing
// or malformed integral argument yields a poisoned value, never an error:
//
//	args := arguments.New([]string{"app", "16", "-verbose"})
//	port := arguments.Int[uint16](args, safeint.NewIdx(1))
//	if port.IsPoisoned() {
//	    port = safeint.New(uint16(8080))
//	}
package arguments

import (
	"strings"

	"github.com/hupe1980/safeint"
)

// Args wraps a command line and a cursor into its positional arguments.
// It holds only the slice it was given; each accessor walks the arguments
// independently, trading lookup speed for zero bookkeeping.
type Args struct {
	args []string
	i    safeint.Idx
}

// New returns Args over the given command line, cursor at the front.
func New(args []string) *Args {
	return &Args{args: args, i: safeint.NewIdx(0)}
}

// Index returns the cursor into the positional arguments.
func (a *Args) Index() safeint.Idx {
	return a.i
}

// Next advances the cursor past the current positional argument.
func (a *Args) Next() {
	a.i.Inc()
}

// Remaining returns the number of positional arguments at or past the
// cursor. The count is checked by construction.
func (a *Args) Remaining() safeint.UMax {
	total := uint(0)
	for _, arg := range a.args {
		if !isOpt(arg) {
			total++
		}
	}
	if a.i.IsInvalid() || a.i.Get() >= total {
		return safeint.New(uint(0))
	}
	return safeint.New(total - a.i.Get())
}

// Empty reports whether no positional arguments remain.
func (a *Args) Empty() bool {
	return a.Remaining().IsZero()
}

// positional returns the pos'th non-option argument, counted from the
// start of the command line (the cursor is not applied).
func (a *Args) positional(pos safeint.Idx) (string, bool) {
	if pos.IsInvalid() {
		return "", false
	}
	n := uint(0)
	for _, arg := range a.args {
		if isOpt(arg) {
			continue
		}
		if n == pos.Get() {
			return arg, true
		}
		n++
	}
	return "", false
}

// option returns the value of the named optional argument. Options are
// resolved in reverse order so the last occurrence wins. The presence form
// ("-name") yields an empty value.
func (a *Args) option(name string) (string, bool) {
	for i := len(a.args) - 1; i >= 0; i-- {
		arg := a.args[i]
		if !isOpt(arg) {
			continue
		}
		if arg == name {
			return "", true
		}
		if rest, ok := strings.CutPrefix(arg, name+"="); ok {
			return rest, true
		}
	}
	return "", false
}

func isOpt(arg string) bool {
	return strings.HasPrefix(arg, "-")
}

// String returns the positional argument at pos, or "" when absent.
func String(a *Args, pos safeint.Idx) string {
	s, _ := a.positional(pos)
	return s
}

// StringAt returns the positional argument at pos relative to the cursor.
func StringAt(a *Args, pos safeint.Idx) string {
	return String(a, pos.Add(a.i))
}

// FrontString returns the positional argument at the cursor.
func FrontString(a *Args) string {
	return StringAt(a, safeint.NewIdx(0))
}

// Bool returns the positional argument at pos interpreted as a boolean.
// "true" and "1" are true; anything else, including absence, is false.
func Bool(a *Args, pos safeint.Idx) bool {
	s, ok := a.positional(pos)
	if !ok {
		return false
	}
	return s == "true" || s == "1"
}

// BoolAt returns the boolean at pos relative to the cursor.
func BoolAt(a *Args, pos safeint.Idx) bool {
	return Bool(a, pos.Add(a.i))
}

// Int returns the positional argument at pos parsed as T. A missing
// argument, a malformed number or a value outside T's range yields
// Failure.
func Int[T safeint.Integer](a *Args, pos safeint.Idx) safeint.Int[T] {
	s, ok := a.positional(pos)
	if !ok {
		return safeint.Failure[T]()
	}
	return parse[T](s)
}

// IntAt returns the integral at pos relative to the cursor.
func IntAt[T safeint.Integer](a *Args, pos safeint.Idx) safeint.Int[T] {
	return Int[T](a, pos.Add(a.i))
}

// FrontInt returns the integral at the cursor.
func FrontInt[T safeint.Integer](a *Args) safeint.Int[T] {
	return IntAt[T](a, safeint.NewIdx(0))
}

// OptBool reports whether the named optional argument is present.
func OptBool(a *Args, name string) bool {
	_, ok := a.option(name)
	return ok
}

// OptString returns the value of the named optional argument
// ("-name=value"), or "" when absent or given without a value.
func OptString(a *Args, name string) string {
	s, _ := a.option(name)
	return s
}

// OptInt returns the value of the named optional argument parsed as T.
// Absence or a malformed value yields Failure.
func OptInt[T safeint.Integer](a *Args, name string) safeint.Int[T] {
	s, ok := a.option(name)
	if !ok {
		return safeint.Failure[T]()
	}
	return parse[T](s)
}
