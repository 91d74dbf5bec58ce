package number

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestF32ArithmeticNaNPropagation(t *testing.T) {
	arithNaN := math32.Float32frombits(0x7FC00001) // arithmetic NaN, MSB mantissa bit set
	got := F32Add(arithNaN, 1.0)
	assert.True(t, math32.IsNaN(got))
	assert.Equal(t, math32.Float32bits(arithNaN), math32.Float32bits(got))
}

func TestF32CanonicalNaNForNonArithmeticInput(t *testing.T) {
	signalingNaN := math32.Float32frombits(0x7F800001) // NaN, MSB mantissa bit clear
	got := F32Mul(signalingNaN, 2.0)
	assert.Equal(t, CanonicalNaN32, math32.Float32bits(got))
}

func TestF32MinMaxSignedZero(t *testing.T) {
	assert.True(t, math32.Signbit(F32Min(0.0, math32.Float32frombits(0x80000000))))
	assert.False(t, math32.Signbit(F32Max(0.0, math32.Float32frombits(0x80000000))))
}

func TestF32Nearest(t *testing.T) {
	assert.Equal(t, float32(2), F32Nearest(2.5)) // tie rounds to even
	assert.Equal(t, float32(4), F32Nearest(3.5)) // tie rounds to even
	assert.Equal(t, float32(3), F32Nearest(3.2))
}

func TestF32NearestPreservesSignOfZero(t *testing.T) {
	assert.True(t, math32.Signbit(F32Nearest(-0.5)))  // tie rounds to even (0), sign from input
	assert.True(t, math32.Signbit(F32Nearest(-0.3)))  // rounds down to 0, sign from input
	assert.False(t, math32.Signbit(F32Nearest(0.3)))
}

func TestF64ArithmeticNaNPropagation(t *testing.T) {
	arithNaN := math.Float64frombits(0x7FF8000000000001)
	got := F64Sub(arithNaN, 1.0)
	assert.Equal(t, math.Float64bits(arithNaN), math.Float64bits(got))
}

func TestF64Nearest(t *testing.T) {
	assert.Equal(t, 2.0, F64Nearest(2.5))
	assert.Equal(t, -2.0, F64Nearest(-2.5))
}

func TestF64NearestPreservesSignOfZero(t *testing.T) {
	assert.True(t, math.Signbit(F64Nearest(-0.5)))
	assert.True(t, math.Signbit(F64Nearest(-0.3)))
	assert.False(t, math.Signbit(F64Nearest(0.3)))
}
