package vm

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/vertexdlt/vertexvm2/simd"
)

// Value is a single operand-stack slot. Every scalar type (i32/i64/f32/f64,
// funcref/externref) fits in Lo; Hi only carries bits for a v128 value.
// This generalizes the teacher's single-int64-stack idiom (vm/vm.go's
// `stack []int64`, reinterpreted per opcode) to the wider WebAssembly 2.0
// value set instead of adding a second, differently-shaped stack for
// vectors.
type Value struct {
	Lo, Hi uint64
}

// NullRef is the Lo payload of a null reference value.
const NullRef = ^uint64(0)

func I32Val(v int32) Value  { return Value{Lo: uint64(uint32(v))} }
func I64Val(v int64) Value  { return Value{Lo: uint64(v)} }
func U32Val(v uint32) Value { return Value{Lo: uint64(v)} }
func U64Val(v uint64) Value { return Value{Lo: v} }

func F32Val(v float32) Value { return Value{Lo: uint64(math32.Float32bits(v))} }
func F64Val(v float64) Value { return Value{Lo: math.Float64bits(v)} }

func V128Val(v simd.V128) Value {
	var lo, hi uint64
	for i := 0; i < 8; i++ {
		lo |= uint64(v[i]) << (8 * i)
		hi |= uint64(v[i+8]) << (8 * i)
	}
	return Value{Lo: lo, Hi: hi}
}

// RefVal holds a function's address in Store.Funcs; NullRef denotes ref.null.
func RefVal(idx uint32) Value { return Value{Lo: uint64(idx)} }

// NullRefVal is the value produced by ref.null.
func NullRefVal() Value { return Value{Lo: NullRef} }

func (v Value) I32() int32   { return int32(uint32(v.Lo)) }
func (v Value) U32() uint32  { return uint32(v.Lo) }
func (v Value) I64() int64   { return int64(v.Lo) }
func (v Value) U64() uint64  { return v.Lo }
func (v Value) F32() float32 { return math32.Float32frombits(uint32(v.Lo)) }
func (v Value) F64() float64 { return math.Float64frombits(v.Lo) }

func (v Value) V128() simd.V128 {
	var r simd.V128
	for i := 0; i < 8; i++ {
		r[i] = byte(v.Lo >> (8 * i))
		r[i+8] = byte(v.Hi >> (8 * i))
	}
	return r
}

func (v Value) IsNullRef() bool { return v.Lo == NullRef }

func (v Value) Bool() bool { return v.Lo != 0 }

func boolVal(b bool) Value {
	if b {
		return I32Val(1)
	}
	return I32Val(0)
}
