package simd

// Comparison ops produce an all-ones or all-zero lane per the spec's
// "boolean vector" convention, one lane-width-sized mask element per lane.

func cmp8(a, b V128, f func(x, y int8) bool) V128 {
	var r V128
	for i := 0; i < 16; i++ {
		if f(a.i8(i), b.i8(i)) {
			putU8(&r, i, 0xFF)
		}
	}
	return r
}

func cmp8u(a, b V128, f func(x, y uint8) bool) V128 {
	var r V128
	for i := 0; i < 16; i++ {
		if f(a.u8(i), b.u8(i)) {
			putU8(&r, i, 0xFF)
		}
	}
	return r
}

func cmp16(a, b V128, f func(x, y int16) bool) V128 {
	var r V128
	for i := 0; i < 8; i++ {
		if f(a.i16(i), b.i16(i)) {
			putU16(&r, i, 0xFFFF)
		}
	}
	return r
}

func cmp16u(a, b V128, f func(x, y uint16) bool) V128 {
	var r V128
	for i := 0; i < 8; i++ {
		if f(a.u16(i), b.u16(i)) {
			putU16(&r, i, 0xFFFF)
		}
	}
	return r
}

func cmp32(a, b V128, f func(x, y int32) bool) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		if f(a.i32(i), b.i32(i)) {
			putU32(&r, i, 0xFFFFFFFF)
		}
	}
	return r
}

func cmp32u(a, b V128, f func(x, y uint32) bool) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		if f(a.u32(i), b.u32(i)) {
			putU32(&r, i, 0xFFFFFFFF)
		}
	}
	return r
}

func cmp64(a, b V128, f func(x, y int64) bool) V128 {
	var r V128
	for i := 0; i < 2; i++ {
		if f(a.i64(i), b.i64(i)) {
			putU64(&r, i, 0xFFFFFFFFFFFFFFFF)
		}
	}
	return r
}

func cmpF32(a, b V128, f func(x, y float32) bool) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		if f(a.f32(i), b.f32(i)) {
			putU32(&r, i, 0xFFFFFFFF)
		}
	}
	return r
}

func cmpF64(a, b V128, f func(x, y float64) bool) V128 {
	var r V128
	for i := 0; i < 2; i++ {
		if f(a.f64(i), b.f64(i)) {
			putU64(&r, i, 0xFFFFFFFFFFFFFFFF)
		}
	}
	return r
}

func I8x16Eq(a, b V128) V128  { return cmp8(a, b, func(x, y int8) bool { return x == y }) }
func I8x16Ne(a, b V128) V128  { return cmp8(a, b, func(x, y int8) bool { return x != y }) }
func I8x16LtS(a, b V128) V128 { return cmp8(a, b, func(x, y int8) bool { return x < y }) }
func I8x16GtS(a, b V128) V128 { return cmp8(a, b, func(x, y int8) bool { return x > y }) }
func I8x16LeS(a, b V128) V128 { return cmp8(a, b, func(x, y int8) bool { return x <= y }) }
func I8x16GeS(a, b V128) V128 { return cmp8(a, b, func(x, y int8) bool { return x >= y }) }
func I8x16LtU(a, b V128) V128 { return cmp8u(a, b, func(x, y uint8) bool { return x < y }) }
func I8x16GtU(a, b V128) V128 { return cmp8u(a, b, func(x, y uint8) bool { return x > y }) }
func I8x16LeU(a, b V128) V128 { return cmp8u(a, b, func(x, y uint8) bool { return x <= y }) }
func I8x16GeU(a, b V128) V128 { return cmp8u(a, b, func(x, y uint8) bool { return x >= y }) }

func I16x8Eq(a, b V128) V128  { return cmp16(a, b, func(x, y int16) bool { return x == y }) }
func I16x8Ne(a, b V128) V128  { return cmp16(a, b, func(x, y int16) bool { return x != y }) }
func I16x8LtS(a, b V128) V128 { return cmp16(a, b, func(x, y int16) bool { return x < y }) }
func I16x8GtS(a, b V128) V128 { return cmp16(a, b, func(x, y int16) bool { return x > y }) }
func I16x8LeS(a, b V128) V128 { return cmp16(a, b, func(x, y int16) bool { return x <= y }) }
func I16x8GeS(a, b V128) V128 { return cmp16(a, b, func(x, y int16) bool { return x >= y }) }
func I16x8LtU(a, b V128) V128 { return cmp16u(a, b, func(x, y uint16) bool { return x < y }) }
func I16x8GtU(a, b V128) V128 { return cmp16u(a, b, func(x, y uint16) bool { return x > y }) }
func I16x8LeU(a, b V128) V128 { return cmp16u(a, b, func(x, y uint16) bool { return x <= y }) }
func I16x8GeU(a, b V128) V128 { return cmp16u(a, b, func(x, y uint16) bool { return x >= y }) }

func I32x4Eq(a, b V128) V128  { return cmp32(a, b, func(x, y int32) bool { return x == y }) }
func I32x4Ne(a, b V128) V128  { return cmp32(a, b, func(x, y int32) bool { return x != y }) }
func I32x4LtS(a, b V128) V128 { return cmp32(a, b, func(x, y int32) bool { return x < y }) }
func I32x4GtS(a, b V128) V128 { return cmp32(a, b, func(x, y int32) bool { return x > y }) }
func I32x4LeS(a, b V128) V128 { return cmp32(a, b, func(x, y int32) bool { return x <= y }) }
func I32x4GeS(a, b V128) V128 { return cmp32(a, b, func(x, y int32) bool { return x >= y }) }
func I32x4LtU(a, b V128) V128 { return cmp32u(a, b, func(x, y uint32) bool { return x < y }) }
func I32x4GtU(a, b V128) V128 { return cmp32u(a, b, func(x, y uint32) bool { return x > y }) }
func I32x4LeU(a, b V128) V128 { return cmp32u(a, b, func(x, y uint32) bool { return x <= y }) }
func I32x4GeU(a, b V128) V128 { return cmp32u(a, b, func(x, y uint32) bool { return x >= y }) }

func I64x2Eq(a, b V128) V128  { return cmp64(a, b, func(x, y int64) bool { return x == y }) }
func I64x2Ne(a, b V128) V128  { return cmp64(a, b, func(x, y int64) bool { return x != y }) }
func I64x2LtS(a, b V128) V128 { return cmp64(a, b, func(x, y int64) bool { return x < y }) }
func I64x2GtS(a, b V128) V128 { return cmp64(a, b, func(x, y int64) bool { return x > y }) }
func I64x2LeS(a, b V128) V128 { return cmp64(a, b, func(x, y int64) bool { return x <= y }) }
func I64x2GeS(a, b V128) V128 { return cmp64(a, b, func(x, y int64) bool { return x >= y }) }

func F32x4Eq(a, b V128) V128 { return cmpF32(a, b, func(x, y float32) bool { return x == y }) }
func F32x4Ne(a, b V128) V128 { return cmpF32(a, b, func(x, y float32) bool { return x != y }) }
func F32x4Lt(a, b V128) V128 { return cmpF32(a, b, func(x, y float32) bool { return x < y }) }
func F32x4Gt(a, b V128) V128 { return cmpF32(a, b, func(x, y float32) bool { return x > y }) }
func F32x4Le(a, b V128) V128 { return cmpF32(a, b, func(x, y float32) bool { return x <= y }) }
func F32x4Ge(a, b V128) V128 { return cmpF32(a, b, func(x, y float32) bool { return x >= y }) }

func F64x2Eq(a, b V128) V128 { return cmpF64(a, b, func(x, y float64) bool { return x == y }) }
func F64x2Ne(a, b V128) V128 { return cmpF64(a, b, func(x, y float64) bool { return x != y }) }
func F64x2Lt(a, b V128) V128 { return cmpF64(a, b, func(x, y float64) bool { return x < y }) }
func F64x2Gt(a, b V128) V128 { return cmpF64(a, b, func(x, y float64) bool { return x > y }) }
func F64x2Le(a, b V128) V128 { return cmpF64(a, b, func(x, y float64) bool { return x <= y }) }
func F64x2Ge(a, b V128) V128 { return cmpF64(a, b, func(x, y float64) bool { return x >= y }) }
