package number

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncF64(t *testing.T) {
	v, trap := TruncF64(3.9, TruncI32S)
	assert.Equal(t, NoTrap, trap)
	assert.Equal(t, int32(3), int32(uint32(v)))

	_, trap = TruncF64(math.NaN(), TruncI32S)
	assert.Equal(t, InvalidConversion, trap)

	_, trap = TruncF64(1e10, TruncI32S)
	assert.Equal(t, InvalidConversion, trap)

	_, trap = TruncF64(math.Inf(1), TruncI64U)
	assert.Equal(t, InvalidConversion, trap)
}

func TestTruncSignedLowBoundaryRoundsIntoRange(t *testing.T) {
	// trunc(-2147483648.9) == -2147483648, exactly MinInt32: must succeed,
	// not trap, even though the input itself is below MinInt32.
	v, trap := TruncF64(-2147483648.9, TruncI32S)
	assert.Equal(t, NoTrap, trap)
	assert.Equal(t, int32(math.MinInt32), int32(uint32(v)))

	v, trap = TruncF64(float64(math.MinInt64), TruncI64S)
	assert.Equal(t, NoTrap, trap)
	assert.Equal(t, int64(math.MinInt64), int64(v))
}

func TestTruncUnsignedNegativeOneTraps(t *testing.T) {
	_, trap := TruncF64(-1.0, TruncI32U)
	assert.Equal(t, InvalidConversion, trap)

	_, trap = TruncF32(-1.0, TruncI32U)
	assert.Equal(t, InvalidConversion, trap)

	_, trap = TruncF64(-1.0, TruncI64U)
	assert.Equal(t, InvalidConversion, trap)

	_, trap = TruncF32(-1.0, TruncI64U)
	assert.Equal(t, InvalidConversion, trap)
}

func TestTruncUnsignedSmallNegativeRoundsToZero(t *testing.T) {
	// trunc(-0.9) == -0.0, which is in range ( > -1 ): must succeed as 0,
	// not trap.
	v, trap := TruncF32(-0.9, TruncI32U)
	assert.Equal(t, NoTrap, trap)
	assert.Equal(t, uint32(0), uint32(v))
}

func TestTruncSatF64(t *testing.T) {
	assert.Equal(t, uint64(0), TruncSatF64(math.NaN(), TruncI32S))
	assert.Equal(t, uint64(uint32(math.MaxInt32)), TruncSatF64(1e10, TruncI32S))
	assert.Equal(t, uint64(uint32(int32(math.MinInt32))), TruncSatF64(-1e10, TruncI32S))
	assert.Equal(t, uint64(3), TruncSatF64(3.9, TruncI32U))
}

func TestConvertRoundTrip(t *testing.T) {
	assert.Equal(t, float32(-5), ConvertI32SToF32(-5))
	assert.Equal(t, float64(5), ConvertI32UToF64(5))
	assert.Equal(t, float32(42), ConvertI64SToF32(42))
}

func TestDemoteAndPromote(t *testing.T) {
	assert.Equal(t, float32(1.5), DemoteF64ToF32(1.5))
	assert.Equal(t, 1.5, PromoteF32ToF64(1.5))
	assert.True(t, math.IsNaN(float64(DemoteF64ToF32(math.NaN()))))
}
