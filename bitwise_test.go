//go:build !safeint_release

package safeint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnd(t *testing.T) {
	v := And(New(uint8(0b1100)), New(uint8(0b1010)))
	assert.Equal(t, uint8(0b1000), v.Get())
	// Bit operations never owe a check.
	assert.True(t, v.IsValidAndChecked())

	v = And(New(uint8(0b1100)), Failure[uint8]())
	assert.True(t, v.IsInvalid())

	v = AndVal(New(uint8(0b1100)), 0b1010)
	assert.Equal(t, uint8(0b1000), v.Get())
}

func TestOr(t *testing.T) {
	v := Or(New(uint8(0b1100)), New(uint8(0b1010)))
	assert.Equal(t, uint8(0b1110), v.Get())
	assert.True(t, v.IsValidAndChecked())

	v = Or(New(uint8(0)), Failure[uint8]())
	assert.True(t, v.IsInvalid())

	v = OrVal(New(uint8(0b1100)), 0b0011)
	assert.Equal(t, uint8(0b1111), v.Get())
}

func TestXor(t *testing.T) {
	v := Xor(New(uint16(0xFF00)), New(uint16(0x0FF0)))
	assert.Equal(t, uint16(0xF0F0), v.Get())
	assert.True(t, v.IsValidAndChecked())

	v = Xor(New(uint16(1)), Failure[uint16]())
	assert.True(t, v.IsInvalid())

	v = XorVal(New(uint16(0xFFFF)), 0xFFFF)
	assert.Equal(t, uint16(0), v.Get())
}

func TestNot(t *testing.T) {
	v := Not(New(uint8(0b0000_1111)))
	assert.Equal(t, uint8(0b1111_0000), v.Get())
	assert.True(t, v.IsValidAndChecked())

	// Complement preserves poison.
	assert.True(t, Not(Failure[uint8]()).IsInvalid())
}

func TestShl(t *testing.T) {
	v := Shl(New(uint8(1)), New(uint8(3)))
	assert.Equal(t, uint8(8), v.Get())
	assert.True(t, v.IsValidAndChecked())

	t.Run("DiscardsHighBits", func(t *testing.T) {
		v := ShlVal(New(uint8(0b1000_0001)), 1)
		assert.Equal(t, uint8(0b0000_0010), v.Get())
		assert.True(t, v.IsValid())
	})

	t.Run("CountWrapsAtWidth", func(t *testing.T) {
		v := ShlVal(New(uint8(1)), 8)
		assert.Equal(t, uint8(1), v.Get())

		v = ShlVal(New(uint8(1)), 9)
		assert.Equal(t, uint8(2), v.Get())
	})

	t.Run("PoisonedCount", func(t *testing.T) {
		v := Shl(New(uint8(1)), Failure[uint8]())
		assert.True(t, v.IsInvalid())
	})
}

func TestShr(t *testing.T) {
	v := Shr(New(uint8(8)), New(uint8(3)))
	assert.Equal(t, uint8(1), v.Get())
	assert.True(t, v.IsValidAndChecked())

	t.Run("DiscardsLowBits", func(t *testing.T) {
		v := ShrVal(New(uint8(0b0000_0011)), 1)
		assert.Equal(t, uint8(0b0000_0001), v.Get())
	})

	t.Run("CountWrapsAtWidth", func(t *testing.T) {
		v := ShrVal(New(uint8(128)), 8)
		assert.Equal(t, uint8(128), v.Get())
	})

	t.Run("PoisonedCount", func(t *testing.T) {
		v := Shr(New(uint8(8)), Failure[uint8]())
		assert.True(t, v.IsInvalid())
	})
}

// A poisoned value that flows through a bit operation stays poisoned and
// keeps tripping the read contract.
func TestBitwisePoisonStaysUnchecked(t *testing.T) {
	msgs := captureViolations(t)

	v := Or(Failure[uint8](), New(uint8(1)))
	require.True(t, v.IsInvalid())
	assert.True(t, v.IsUnchecked())

	_ = v.Get()
	assert.NotEmpty(t, *msgs)
}
