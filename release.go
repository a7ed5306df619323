//go:build safeint_release

package safeint

// ReleaseMode reports whether the must-check bookkeeping and the fatal
// violation paths were compiled out.
const ReleaseMode = true

// violation is compiled out in release builds: misuse silently yields the
// raw (stale or zero) payload instead of aborting.
func violation(msg string, loc Loc) {}

func (s *Int[T]) updatePoisoned(poisoned bool) {
	s.poisoned = s.poisoned || poisoned
}

func (s *Int[T]) markUnchecked() {}

func (s *Int[T]) markCheckedIfValid() {}

func (s Int[T]) verifyChecked(loc Loc) {}

func (s Int[T]) isUnchecked() bool {
	return false
}
