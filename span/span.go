// Package span provides a bounds-checked view over a slice, addressed by
// validity-tracked indices. Out-of-bounds access returns nil instead of
// panicking, and every size and position flows through the safeint types
// so that index arithmetic carries its own validity.
package span

import (
	"iter"

	"github.com/hupe1980/safeint"
)

// Span is a non-owning view over a contiguous sequence of elements. The
// zero Span is valid and empty.
type Span[T any] struct {
	data []T
}

// New returns a Span viewing data. The Span aliases the slice; it copies
// nothing.
func New[T any](data []T) Span[T] {
	return Span[T]{data: data}
}

// At returns a pointer to the element at pos, or nil when pos is poisoned
// or out of bounds.
func (s Span[T]) At(pos safeint.Idx) *T {
	if pos.IsInvalid() {
		return nil
	}
	i := pos.Get()
	if i >= uint(len(s.data)) {
		return nil
	}
	return &s.data[i]
}

// Front returns a pointer to the first element, or nil when the Span is
// empty.
func (s Span[T]) Front() *T {
	return s.At(safeint.NewIdx(0))
}

// Back returns a pointer to the last element, or nil when the Span is
// empty.
func (s Span[T]) Back() *T {
	if len(s.data) == 0 {
		return nil
	}
	return &s.data[len(s.data)-1]
}

// Size returns the number of elements as a checked safe integral.
func (s Span[T]) Size() safeint.UMax {
	return safeint.New(uint(len(s.data)))
}

// Empty reports whether the Span has no elements.
func (s Span[T]) Empty() bool {
	return len(s.data) == 0
}

// First returns a Span over the first count elements. An invalid count
// yields the empty Span; a count past the end is clamped. The count must
// be checked, per the usual read contract.
func (s Span[T]) First(count safeint.UMax) Span[T] {
	if count.IsInvalid() {
		return Span[T]{}
	}
	n := count.Get()
	if n > uint(len(s.data)) {
		n = uint(len(s.data))
	}
	return Span[T]{data: s.data[:n]}
}

// Last returns a Span over the last count elements. Same contract as
// First.
func (s Span[T]) Last(count safeint.UMax) Span[T] {
	if count.IsInvalid() {
		return Span[T]{}
	}
	n := count.Get()
	if n > uint(len(s.data)) {
		n = uint(len(s.data))
	}
	return Span[T]{data: s.data[uint(len(s.data))-n:]}
}

// Subspan returns a Span over count elements starting at pos. An invalid
// pos or count, or a pos past the end, yields the empty Span; the count is
// clamped to what remains.
func (s Span[T]) Subspan(pos safeint.Idx, count safeint.UMax) Span[T] {
	if pos.IsInvalid() || count.IsInvalid() {
		return Span[T]{}
	}
	p := pos.Get()
	if p >= uint(len(s.data)) {
		return Span[T]{}
	}
	n := count.Get()
	if rest := uint(len(s.data)) - p; n > rest {
		n = rest
	}
	return Span[T]{data: s.data[p : p+n]}
}

// All iterates the elements front to back, yielding each index with a
// pointer to its element.
func (s Span[T]) All() iter.Seq2[safeint.Idx, *T] {
	return func(yield func(safeint.Idx, *T) bool) {
		for i := range s.data {
			if !yield(safeint.NewIdx(uint(i)), &s.data[i]) {
				return
			}
		}
	}
}

// Backward iterates the elements back to front.
func (s Span[T]) Backward() iter.Seq2[safeint.Idx, *T] {
	return func(yield func(safeint.Idx, *T) bool) {
		for i := len(s.data) - 1; i >= 0; i-- {
			if !yield(safeint.NewIdx(uint(i)), &s.data[i]) {
				return
			}
		}
	}
}
