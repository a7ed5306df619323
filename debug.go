//go:build !safeint_release

package safeint

// ReleaseMode reports whether the must-check bookkeeping and the fatal
// violation paths were compiled out.
const ReleaseMode = false

// violation reports a contract violation through the injected handler.
func violation(msg string, loc Loc) {
	if currentHandler != nil {
		currentHandler(msg, loc)
		return
	}
	defaultHandler(msg, loc)
}

func (s *Int[T]) updatePoisoned(poisoned bool) {
	s.poisoned = s.poisoned || poisoned
	s.unchecked = true
}

func (s *Int[T]) markUnchecked() {
	s.unchecked = true
}

func (s *Int[T]) markCheckedIfValid() {
	s.unchecked = s.poisoned
}

func (s Int[T]) verifyChecked(loc Loc) {
	if s.unchecked {
		violation("Ints must be checked before use", loc)
	}
}

func (s Int[T]) isUnchecked() bool {
	return s.unchecked
}
