package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/safeint"
)

func TestAt(t *testing.T) {
	s := New([]int{10, 20, 30})

	p := s.At(safeint.NewIdx(1))
	require.NotNil(t, p)
	assert.Equal(t, 20, *p)

	assert.Nil(t, s.At(safeint.NewIdx(3)))
	assert.Nil(t, s.At(safeint.IdxFailure()))

	t.Run("Aliasing", func(t *testing.T) {
		data := []int{1, 2, 3}
		s := New(data)

		*s.At(safeint.NewIdx(0)) = 99
		assert.Equal(t, 99, data[0])
	})
}

func TestFrontBack(t *testing.T) {
	s := New([]string{"a", "b", "c"})

	require.NotNil(t, s.Front())
	assert.Equal(t, "a", *s.Front())
	require.NotNil(t, s.Back())
	assert.Equal(t, "c", *s.Back())

	empty := New[string](nil)
	assert.Nil(t, empty.Front())
	assert.Nil(t, empty.Back())
}

func TestSizeEmpty(t *testing.T) {
	s := New([]byte{1, 2, 3, 4})
	assert.Equal(t, uint(4), s.Size().Get())
	assert.False(t, s.Empty())

	var zero Span[byte]
	assert.True(t, zero.Empty())
	assert.True(t, zero.Size().IsZero())
}

func TestFirstLast(t *testing.T) {
	s := New([]int{1, 2, 3, 4, 5})

	t.Run("First", func(t *testing.T) {
		f := s.First(safeint.New(uint(2)))
		assert.Equal(t, uint(2), f.Size().Get())
		assert.Equal(t, 1, *f.Front())

		// A count past the end is clamped.
		f = s.First(safeint.New(uint(99)))
		assert.Equal(t, uint(5), f.Size().Get())

		assert.True(t, s.First(safeint.Failure[uint]()).Empty())
	})

	t.Run("Last", func(t *testing.T) {
		l := s.Last(safeint.New(uint(2)))
		assert.Equal(t, uint(2), l.Size().Get())
		assert.Equal(t, 4, *l.Front())
		assert.Equal(t, 5, *l.Back())

		l = s.Last(safeint.New(uint(99)))
		assert.Equal(t, uint(5), l.Size().Get())

		assert.True(t, s.Last(safeint.Failure[uint]()).Empty())
	})
}

func TestSubspan(t *testing.T) {
	s := New([]int{1, 2, 3, 4, 5})

	sub := s.Subspan(safeint.NewIdx(1), safeint.New(uint(3)))
	require.Equal(t, uint(3), sub.Size().Get())
	assert.Equal(t, 2, *sub.Front())
	assert.Equal(t, 4, *sub.Back())

	t.Run("CountClamped", func(t *testing.T) {
		sub := s.Subspan(safeint.NewIdx(3), safeint.New(uint(99)))
		assert.Equal(t, uint(2), sub.Size().Get())
	})

	t.Run("PosPastEnd", func(t *testing.T) {
		assert.True(t, s.Subspan(safeint.NewIdx(5), safeint.New(uint(1))).Empty())
	})

	t.Run("InvalidOperands", func(t *testing.T) {
		assert.True(t, s.Subspan(safeint.IdxFailure(), safeint.New(uint(1))).Empty())
		assert.True(t, s.Subspan(safeint.NewIdx(0), safeint.Failure[uint]()).Empty())
	})
}

func TestIteration(t *testing.T) {
	s := New([]int{10, 20, 30})

	t.Run("All", func(t *testing.T) {
		var idxs []uint
		var vals []int
		for i, p := range s.All() {
			idxs = append(idxs, i.Get())
			vals = append(vals, *p)
		}
		assert.Equal(t, []uint{0, 1, 2}, idxs)
		assert.Equal(t, []int{10, 20, 30}, vals)
	})

	t.Run("Backward", func(t *testing.T) {
		var vals []int
		for _, p := range s.Backward() {
			vals = append(vals, *p)
		}
		assert.Equal(t, []int{30, 20, 10}, vals)
	})

	t.Run("EarlyStop", func(t *testing.T) {
		n := 0
		for range s.All() {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})
}
