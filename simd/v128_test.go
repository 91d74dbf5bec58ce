package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplatAndExtractLane(t *testing.T) {
	v := I32x4Splat(7)
	for lane := byte(0); lane < 4; lane++ {
		assert.Equal(t, int32(7), I32x4ExtractLane(v, lane))
	}

	v2 := I8x16ReplaceLane(v, 1, 99)
	assert.Equal(t, int32(99), I8x16ExtractLaneU(v2, 1))

	f := F32x4Splat(1.5)
	assert.Equal(t, float32(1.5), F32x4ExtractLane(f, 2))
}

func TestI8x16Shuffle(t *testing.T) {
	var a, b V128
	for i := 0; i < 16; i++ {
		a[i] = byte(i)
		b[i] = byte(i + 16)
	}
	var indices [16]byte
	for i := range indices {
		indices[i] = byte(31 - i) // reverse, taking entirely from b
	}
	r := I8x16Shuffle(a, b, indices)
	for i := 0; i < 16; i++ {
		assert.Equal(t, b[15-i], r[i])
	}
}

func TestI8x16Swizzle(t *testing.T) {
	var a V128
	for i := 0; i < 16; i++ {
		a[i] = byte(i * 2)
	}
	s := I8x16Splat(0)
	s = I8x16ReplaceLane(s, 0, 20) // out of range -> 0
	s = I8x16ReplaceLane(s, 1, 3)
	r := I8x16Swizzle(a, s)
	assert.Equal(t, byte(0), r[0])
	assert.Equal(t, byte(6), r[1])
}

func TestV128Bitwise(t *testing.T) {
	a := I32x4Splat(int32(0x0F0F0F0F))
	b := I32x4Splat(int32(0x00FF00FF))
	assert.Equal(t, I32x4Splat(int32(0x000F000F)), V128And(a, b))
	assert.Equal(t, I32x4Splat(int32(0x0FFF0FFF)), V128Or(a, b))
	assert.Equal(t, int32(1), V128AnyTrue(I32x4Splat(1)))
	assert.Equal(t, int32(0), V128AnyTrue(I32x4Splat(0)))
}

func TestI32x4Compare(t *testing.T) {
	a := I32x4Splat(3)
	b := I32x4Splat(5)
	lt := I32x4LtS(a, b)
	for lane := byte(0); lane < 4; lane++ {
		assert.Equal(t, int32(-1), I32x4ExtractLane(lt, lane)) // all-ones lane as i32 is -1
	}
}

func TestI16x8AddSatS(t *testing.T) {
	a := I16x8Splat(32000)
	b := I16x8Splat(1000)
	r := I16x8AddSatS(a, b)
	assert.Equal(t, int32(32767), I16x8ExtractLaneS(r, 0))
}
