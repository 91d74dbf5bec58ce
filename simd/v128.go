// Package simd implements the lane-wise v128 numeric operations of the
// SIMD proposal. The teacher has no SIMD support at all, so this package
// has no direct teacher file to generalize; it is grounded instead on two
// ideas the teacher does carry: package number's per-type scalar helpers
// (every float arithmetic, NaN-handling and saturating-conversion lane op
// here is a loop calling into number; the integer lane arithmetic is
// written out in this package) and the opcode-range dispatch idiom of
// vm/vm.go, which the vm package's SIMD dispatch reuses to route an
// Opcode to one of the functions below.
package simd

import (
	"math"

	"github.com/chewxy/math32"
)

// V128 is the 128-bit vector value, stored as raw little-endian bytes
// exactly as it appears in a v128.const immediate or a memory load.
type V128 [16]byte

func (v V128) i8(i int) int8    { return int8(v[i]) }
func (v V128) u8(i int) uint8   { return v[i] }
func (v V128) i16(i int) int16  { return int16(v.u16(i)) }
func (v V128) u16(i int) uint16 { return uint16(v[2*i]) | uint16(v[2*i+1])<<8 }
func (v V128) i32(i int) int32  { return int32(v.u32(i)) }
func (v V128) u32(i int) uint32 {
	return uint32(v[4*i]) | uint32(v[4*i+1])<<8 | uint32(v[4*i+2])<<16 | uint32(v[4*i+3])<<24
}
func (v V128) i64(i int) int64 { return int64(v.u64(i)) }
func (v V128) u64(i int) uint64 {
	var r uint64
	for b := 0; b < 8; b++ {
		r |= uint64(v[8*i+b]) << (8 * b)
	}
	return r
}
func (v V128) f32(i int) float32 { return math32.Float32frombits(v.u32(i)) }
func (v V128) f64(i int) float64 { return math.Float64frombits(v.u64(i)) }

func putU8(v *V128, i int, x uint8)  { v[i] = x }
func putU16(v *V128, i int, x uint16) {
	v[2*i] = byte(x)
	v[2*i+1] = byte(x >> 8)
}
func putU32(v *V128, i int, x uint32) {
	for b := 0; b < 4; b++ {
		v[4*i+b] = byte(x >> (8 * b))
	}
}
func putU64(v *V128, i int, x uint64) {
	for b := 0; b < 8; b++ {
		v[8*i+b] = byte(x >> (8 * b))
	}
}
func putF32(v *V128, i int, x float32) { putU32(v, i, math32.Float32bits(x)) }
func putF64(v *V128, i int, x float64) { putU64(v, i, math.Float64bits(x)) }

// Splat* broadcast a scalar across every lane of the shape.
func I8x16Splat(x int8) V128 {
	var v V128
	for i := 0; i < 16; i++ {
		putU8(&v, i, uint8(x))
	}
	return v
}

func I16x8Splat(x int16) V128 {
	var v V128
	for i := 0; i < 8; i++ {
		putU16(&v, i, uint16(x))
	}
	return v
}

func I32x4Splat(x int32) V128 {
	var v V128
	for i := 0; i < 4; i++ {
		putU32(&v, i, uint32(x))
	}
	return v
}

func I64x2Splat(x int64) V128 {
	var v V128
	for i := 0; i < 2; i++ {
		putU64(&v, i, uint64(x))
	}
	return v
}

func F32x4Splat(x float32) V128 {
	var v V128
	for i := 0; i < 4; i++ {
		putF32(&v, i, x)
	}
	return v
}

func F64x2Splat(x float64) V128 {
	var v V128
	for i := 0; i < 2; i++ {
		putF64(&v, i, x)
	}
	return v
}

// Extract/Replace lane accessors.
func I8x16ExtractLaneS(v V128, lane byte) int32 { return int32(v.i8(int(lane))) }
func I8x16ExtractLaneU(v V128, lane byte) int32 { return int32(v.u8(int(lane))) }
func I16x8ExtractLaneS(v V128, lane byte) int32 { return int32(v.i16(int(lane))) }
func I16x8ExtractLaneU(v V128, lane byte) int32 { return int32(v.u16(int(lane))) }
func I32x4ExtractLane(v V128, lane byte) int32  { return v.i32(int(lane)) }
func I64x2ExtractLane(v V128, lane byte) int64  { return v.i64(int(lane)) }
func F32x4ExtractLane(v V128, lane byte) float32 { return v.f32(int(lane)) }
func F64x2ExtractLane(v V128, lane byte) float64 { return v.f64(int(lane)) }

func I8x16ReplaceLane(v V128, lane byte, x int32) V128 {
	putU8(&v, int(lane), uint8(x))
	return v
}

func I16x8ReplaceLane(v V128, lane byte, x int32) V128 {
	putU16(&v, int(lane), uint16(x))
	return v
}

func I32x4ReplaceLane(v V128, lane byte, x int32) V128 {
	putU32(&v, int(lane), uint32(x))
	return v
}

func I64x2ReplaceLane(v V128, lane byte, x int64) V128 {
	putU64(&v, int(lane), uint64(x))
	return v
}

func F32x4ReplaceLane(v V128, lane byte, x float32) V128 {
	putF32(&v, int(lane), x)
	return v
}

func F64x2ReplaceLane(v V128, lane byte, x float64) V128 {
	putF64(&v, int(lane), x)
	return v
}

// I8x16Shuffle selects 16 bytes from the concatenation of a and b using
// indices in [0,32).
func I8x16Shuffle(a, b V128, indices [16]byte) V128 {
	var r V128
	cat := make([]byte, 32)
	copy(cat[:16], a[:])
	copy(cat[16:], b[:])
	for i, idx := range indices {
		r[i] = cat[idx]
	}
	return r
}

// I8x16Swizzle replaces each lane of a with the byte of a selected by the
// corresponding lane of s, or 0 if that index is out of range.
func I8x16Swizzle(a, s V128) V128 {
	var r V128
	for i := 0; i < 16; i++ {
		idx := s.u8(i)
		if idx < 16 {
			r[i] = a[idx]
		}
	}
	return r
}
