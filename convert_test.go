//go:build !safeint_release

package safeint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	t.Run("WidthChange", func(t *testing.T) {
		v := ToU8(New(int32(200)))
		require.True(t, v.IsValid())
		assert.Equal(t, uint8(200), v.Get())

		assert.True(t, ToI8(New(int32(200))).IsInvalid())
		assert.True(t, ToU8(New(int32(256))).IsInvalid())
	})

	t.Run("SignednessChange", func(t *testing.T) {
		assert.True(t, ToU32(New(int32(-1))).IsInvalid())
		assert.True(t, ToU64(New(int8(-1))).IsInvalid())

		v := ToI64(New(uint64(1) << 62))
		require.True(t, v.IsValid())
		assert.Equal(t, int64(1)<<62, v.Get())

		assert.True(t, ToI64(MaxValue[uint64]()).IsInvalid())
	})

	t.Run("Widening", func(t *testing.T) {
		v := ToI32(New(int8(-128)))
		require.True(t, v.IsValid())
		assert.Equal(t, int32(-128), v.Get())

		v2 := ToU64(New(uint8(255)))
		require.True(t, v2.IsValid())
		assert.Equal(t, uint64(255), v2.Get())
	})

	t.Run("PoisonCarriesOver", func(t *testing.T) {
		assert.True(t, ToU16(Failure[uint32]()).IsInvalid())

		// A poisoned source never launders, even when the payload fits.
		bad := MaxValue[uint8]().AddVal(1)
		require.True(t, bad.IsInvalid())
		assert.True(t, ToU32(bad).IsInvalid())
	})

	t.Run("UncheckedCarriesOver", func(t *testing.T) {
		sum := New(uint8(1)).AddVal(1)
		require.True(t, sum.IsUnchecked())

		wide := ToU32(sum)
		assert.True(t, wide.IsUnchecked())
		require.False(t, wide.IsPoisoned())
		assert.Equal(t, uint32(2), wide.Get())
	})

	t.Run("ConvertVal", func(t *testing.T) {
		v := ConvertVal[uint16](int64(65535))
		require.True(t, v.IsValid())
		assert.Equal(t, uint16(65535), v.Get())

		assert.True(t, ConvertVal[uint16](int64(65536)).IsInvalid())
		assert.True(t, ConvertVal[uint16](int64(-1)).IsInvalid())
	})
}

func TestTruncatingConversions(t *testing.T) {
	v := ToU8Unsafe(New(uint32(0x1_02)))
	require.True(t, v.IsValid())
	assert.Equal(t, uint8(0x02), v.Get())

	v16 := ToU16Unsafe(New(uint64(0xABCD_1234)))
	assert.Equal(t, uint16(0x1234), v16.Get())

	// Truncation keeps the validity flags; it never launders.
	assert.True(t, ToU8Unsafe(Failure[uint64]()).IsInvalid())

	sum := New(uint32(1)).AddVal(1)
	trunc := ToU8Unsafe(sum)
	assert.True(t, trunc.IsUnchecked())
}

func TestToIdx(t *testing.T) {
	i := ToIdx(New(uint64(7)))
	require.True(t, i.IsValid())
	assert.Equal(t, uint(7), i.Get())

	assert.True(t, ToIdx(New(int32(-1))).IsInvalid())
	assert.True(t, ToIdx(Failure[uint32]()).IsInvalid())
}
