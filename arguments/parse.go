package arguments

import (
	"strconv"
	"strings"

	"github.com/hupe1980/safeint"
)

// parse converts a decimal (or, for unsigned types, 0x-prefixed
// hexadecimal) string to a safe integral. Parse failures and out-of-range
// values yield Failure; the result never needs a format-error channel.
func parse[T safeint.Integer](s string) safeint.Int[T] {
	if s == "" {
		return safeint.Failure[T]()
	}

	if signed[T]() {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return safeint.Failure[T]()
		}
		return safeint.ConvertVal[T](v)
	}

	base := 10
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		s, base = rest, 16
		if s == "" {
			return safeint.Failure[T]()
		}
	}
	v, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return safeint.Failure[T]()
	}
	return safeint.ConvertVal[T](v)
}

func signed[T safeint.Integer]() bool {
	return safeint.MinOf[T]() != 0
}
