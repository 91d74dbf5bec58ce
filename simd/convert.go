package simd

import "github.com/vertexdlt/vertexvm2/number"

// I32x4TruncSatF32x4S/U saturating-convert each f32x4 lane to i32, per
// lane, reusing package number's scalar saturating truncation rather than
// duplicating its NaN/overflow handling.
func I32x4TruncSatF32x4S(a V128) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		putU32(&r, i, uint32(number.TruncSatF32(a.f32(i), number.TruncI32S)))
	}
	return r
}

func I32x4TruncSatF32x4U(a V128) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		putU32(&r, i, uint32(number.TruncSatF32(a.f32(i), number.TruncI32U)))
	}
	return r
}

// I32x4TruncSatF64x2SZero/UZero convert the two f64x2 lanes to the low two
// i32x4 lanes, zeroing the high two lanes (the "Zero" suffix in the
// instruction name).
func I32x4TruncSatF64x2SZero(a V128) V128 {
	var r V128
	putU32(&r, 0, uint32(number.TruncSatF64(a.f64(0), number.TruncI32S)))
	putU32(&r, 1, uint32(number.TruncSatF64(a.f64(1), number.TruncI32S)))
	return r
}

func I32x4TruncSatF64x2UZero(a V128) V128 {
	var r V128
	putU32(&r, 0, uint32(number.TruncSatF64(a.f64(0), number.TruncI32U)))
	putU32(&r, 1, uint32(number.TruncSatF64(a.f64(1), number.TruncI32U)))
	return r
}

func F32x4ConvertI32x4S(a V128) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		putF32(&r, i, number.ConvertI32SToF32(a.i32(i)))
	}
	return r
}

func F32x4ConvertI32x4U(a V128) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		putF32(&r, i, number.ConvertI32UToF32(a.u32(i)))
	}
	return r
}

func F64x2ConvertLowI32x4S(a V128) V128 {
	var r V128
	putF64(&r, 0, number.ConvertI32SToF64(a.i32(0)))
	putF64(&r, 1, number.ConvertI32SToF64(a.i32(1)))
	return r
}

func F64x2ConvertLowI32x4U(a V128) V128 {
	var r V128
	putF64(&r, 0, number.ConvertI32UToF64(a.u32(0)))
	putF64(&r, 1, number.ConvertI32UToF64(a.u32(1)))
	return r
}
