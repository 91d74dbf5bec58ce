package number

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestI32DivS(t *testing.T) {
	v, trap := I32DivS(7, 2)
	assert.Equal(t, NoTrap, trap)
	assert.Equal(t, int32(3), v)

	_, trap = I32DivS(1, 0)
	assert.Equal(t, DivideByZero, trap)

	_, trap = I32DivS(math.MinInt32, -1)
	assert.Equal(t, IntegerOverflow, trap)
}

func TestI32RemS(t *testing.T) {
	v, trap := I32RemS(7, 2)
	assert.Equal(t, NoTrap, trap)
	assert.Equal(t, int32(1), v)

	// MinInt32 % -1 is well defined, unlike division.
	v, trap = I32RemS(math.MinInt32, -1)
	assert.Equal(t, NoTrap, trap)
	assert.Equal(t, int32(0), v)

	_, trap = I32RemS(1, 0)
	assert.Equal(t, DivideByZero, trap)
}

func TestI64DivUAndRemU(t *testing.T) {
	v, trap := I64DivU(20, 6)
	assert.Equal(t, NoTrap, trap)
	assert.Equal(t, uint64(3), v)

	r, trap := I64RemU(20, 6)
	assert.Equal(t, NoTrap, trap)
	assert.Equal(t, uint64(2), r)

	_, trap = I64DivU(1, 0)
	assert.Equal(t, DivideByZero, trap)
}

func TestRotateAndCount(t *testing.T) {
	assert.Equal(t, uint32(0x00000003), Rotl32(0xC0000000, 2))
	assert.Equal(t, uint32(0x00000003), Rotr32(0xC0000000, 30))
	assert.Equal(t, uint32(2), Clz32(0x3fffffff))
	assert.Equal(t, uint32(1), Ctz32(0x2))
	assert.Equal(t, uint32(4), Popcnt32(0xF0))
	assert.Equal(t, uint64(3), Ctz64(0x8))
}

func TestBoolToI32(t *testing.T) {
	assert.Equal(t, int32(1), BoolToI32(true))
	assert.Equal(t, int32(0), BoolToI32(false))
}
