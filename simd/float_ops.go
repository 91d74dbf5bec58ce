package simd

import "github.com/vertexdlt/vertexvm2/number"

func lanewiseF32(a, b V128, f func(x, y float32) float32) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		putF32(&r, i, f(a.f32(i), b.f32(i)))
	}
	return r
}

func unaryF32(a V128, f func(x float32) float32) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		putF32(&r, i, f(a.f32(i)))
	}
	return r
}

func lanewiseF64(a, b V128, f func(x, y float64) float64) V128 {
	var r V128
	for i := 0; i < 2; i++ {
		putF64(&r, i, f(a.f64(i), b.f64(i)))
	}
	return r
}

func unaryF64(a V128, f func(x float64) float64) V128 {
	var r V128
	for i := 0; i < 2; i++ {
		putF64(&r, i, f(a.f64(i)))
	}
	return r
}

func F32x4Add(a, b V128) V128 { return lanewiseF32(a, b, number.F32Add) }
func F32x4Sub(a, b V128) V128 { return lanewiseF32(a, b, number.F32Sub) }
func F32x4Mul(a, b V128) V128 { return lanewiseF32(a, b, number.F32Mul) }
func F32x4Div(a, b V128) V128 { return lanewiseF32(a, b, number.F32Div) }
func F32x4Min(a, b V128) V128 { return lanewiseF32(a, b, number.F32Min) }
func F32x4Max(a, b V128) V128 { return lanewiseF32(a, b, number.F32Max) }

// F32x4Pmin and F32x4Pmax implement the SIMD proposal's "pseudo" min/max:
// unlike F32x4Min/Max they do not canonicalize NaN, instead behaving like a
// plain select on the raw comparison (b < a ? b : a).
func F32x4Pmin(a, b V128) V128 {
	return lanewiseF32(a, b, func(x, y float32) float32 {
		if y < x {
			return y
		}
		return x
	})
}
func F32x4Pmax(a, b V128) V128 {
	return lanewiseF32(a, b, func(x, y float32) float32 {
		if y > x {
			return y
		}
		return x
	})
}

func F32x4Abs(a V128) V128     { return unaryF32(a, number.F32Abs) }
func F32x4Neg(a V128) V128     { return unaryF32(a, number.F32Neg) }
func F32x4Ceil(a V128) V128    { return unaryF32(a, number.F32Ceil) }
func F32x4Floor(a V128) V128   { return unaryF32(a, number.F32Floor) }
func F32x4Trunc(a V128) V128   { return unaryF32(a, number.F32Trunc) }
func F32x4Nearest(a V128) V128 { return unaryF32(a, number.F32Nearest) }
func F32x4Sqrt(a V128) V128    { return unaryF32(a, number.F32Sqrt) }

func F64x2Add(a, b V128) V128 { return lanewiseF64(a, b, number.F64Add) }
func F64x2Sub(a, b V128) V128 { return lanewiseF64(a, b, number.F64Sub) }
func F64x2Mul(a, b V128) V128 { return lanewiseF64(a, b, number.F64Mul) }
func F64x2Div(a, b V128) V128 { return lanewiseF64(a, b, number.F64Div) }
func F64x2Min(a, b V128) V128 { return lanewiseF64(a, b, number.F64Min) }
func F64x2Max(a, b V128) V128 { return lanewiseF64(a, b, number.F64Max) }

func F64x2Pmin(a, b V128) V128 {
	return lanewiseF64(a, b, func(x, y float64) float64 {
		if y < x {
			return y
		}
		return x
	})
}
func F64x2Pmax(a, b V128) V128 {
	return lanewiseF64(a, b, func(x, y float64) float64 {
		if y > x {
			return y
		}
		return x
	})
}

func F64x2Abs(a V128) V128     { return unaryF64(a, number.F64Abs) }
func F64x2Neg(a V128) V128     { return unaryF64(a, number.F64Neg) }
func F64x2Ceil(a V128) V128    { return unaryF64(a, number.F64Ceil) }
func F64x2Floor(a V128) V128   { return unaryF64(a, number.F64Floor) }
func F64x2Trunc(a V128) V128   { return unaryF64(a, number.F64Trunc) }
func F64x2Nearest(a V128) V128 { return unaryF64(a, number.F64Nearest) }
func F64x2Sqrt(a V128) V128    { return unaryF64(a, number.F64Sqrt) }

func F32x4DemoteF64x2Zero(a V128) V128 {
	var r V128
	putF32(&r, 0, number.DemoteF64ToF32(a.f64(0)))
	putF32(&r, 1, number.DemoteF64ToF32(a.f64(1)))
	return r
}

func F64x2PromoteLowF32x4(a V128) V128 {
	var r V128
	putF64(&r, 0, number.PromoteF32ToF64(a.f32(0)))
	putF64(&r, 1, number.PromoteF32ToF64(a.f32(1)))
	return r
}
