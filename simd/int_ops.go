package simd

import "math/bits"

func satI8(x int32) int8 {
	if x < -128 {
		return -128
	}
	if x > 127 {
		return 127
	}
	return int8(x)
}

func satU8(x int32) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}

func satI16(x int32) int16 {
	if x < -32768 {
		return -32768
	}
	if x > 32767 {
		return 32767
	}
	return int16(x)
}

func satU16(x int32) uint16 {
	if x < 0 {
		return 0
	}
	if x > 65535 {
		return 65535
	}
	return uint16(x)
}

// lanewise8/16/32/64 apply f to every lane of a, b and assemble the result;
// used by the many binary integer ops below to avoid sixteen near-identical
// loop bodies.
func lanewise8(a, b V128, f func(x, y int8) int8) V128 {
	var r V128
	for i := 0; i < 16; i++ {
		putU8(&r, i, uint8(f(a.i8(i), b.i8(i))))
	}
	return r
}

func lanewise16(a, b V128, f func(x, y int16) int16) V128 {
	var r V128
	for i := 0; i < 8; i++ {
		putU16(&r, i, uint16(f(a.i16(i), b.i16(i))))
	}
	return r
}

func lanewise32(a, b V128, f func(x, y int32) int32) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		putU32(&r, i, uint32(f(a.i32(i), b.i32(i))))
	}
	return r
}

func lanewise64(a, b V128, f func(x, y int64) int64) V128 {
	var r V128
	for i := 0; i < 2; i++ {
		putU64(&r, i, uint64(f(a.i64(i), b.i64(i))))
	}
	return r
}

// -- i8x16 --

func I8x16Add(a, b V128) V128 { return lanewise8(a, b, func(x, y int8) int8 { return x + y }) }
func I8x16Sub(a, b V128) V128 { return lanewise8(a, b, func(x, y int8) int8 { return x - y }) }

func I8x16AddSatS(a, b V128) V128 {
	return lanewise8(a, b, func(x, y int8) int8 { return satI8(int32(x) + int32(y)) })
}
func I8x16AddSatU(a, b V128) V128 {
	var r V128
	for i := 0; i < 16; i++ {
		putU8(&r, i, satU8(int32(a.u8(i))+int32(b.u8(i))))
	}
	return r
}
func I8x16SubSatS(a, b V128) V128 {
	return lanewise8(a, b, func(x, y int8) int8 { return satI8(int32(x) - int32(y)) })
}
func I8x16SubSatU(a, b V128) V128 {
	var r V128
	for i := 0; i < 16; i++ {
		putU8(&r, i, satU8(int32(a.u8(i))-int32(b.u8(i))))
	}
	return r
}

func I8x16Neg(a V128) V128 {
	var r V128
	for i := 0; i < 16; i++ {
		putU8(&r, i, uint8(-a.i8(i)))
	}
	return r
}

func I8x16Abs(a V128) V128 {
	var r V128
	for i := 0; i < 16; i++ {
		x := a.i8(i)
		if x < 0 {
			x = -x
		}
		putU8(&r, i, uint8(x))
	}
	return r
}

func I8x16Popcnt(a V128) V128 {
	var r V128
	for i := 0; i < 16; i++ {
		putU8(&r, i, uint8(bits.OnesCount8(a.u8(i))))
	}
	return r
}

func I8x16MinS(a, b V128) V128 {
	return lanewise8(a, b, func(x, y int8) int8 {
		if x < y {
			return x
		}
		return y
	})
}
func I8x16MaxS(a, b V128) V128 {
	return lanewise8(a, b, func(x, y int8) int8 {
		if x > y {
			return x
		}
		return y
	})
}
func I8x16MinU(a, b V128) V128 { return minMaxU8(a, b, true) }
func I8x16MaxU(a, b V128) V128 { return minMaxU8(a, b, false) }

func minMaxU8(a, b V128, min bool) V128 {
	var r V128
	for i := 0; i < 16; i++ {
		x, y := a.u8(i), b.u8(i)
		pick := x
		if (min && y < x) || (!min && y > x) {
			pick = y
		}
		putU8(&r, i, pick)
	}
	return r
}

func I8x16AvgrU(a, b V128) V128 {
	var r V128
	for i := 0; i < 16; i++ {
		putU8(&r, i, uint8((uint16(a.u8(i))+uint16(b.u8(i))+1)/2))
	}
	return r
}

func I8x16Shl(a V128, n uint32) V128 {
	s := n % 8
	var r V128
	for i := 0; i < 16; i++ {
		putU8(&r, i, a.u8(i)<<s)
	}
	return r
}
func I8x16ShrS(a V128, n uint32) V128 {
	s := n % 8
	var r V128
	for i := 0; i < 16; i++ {
		putU8(&r, i, uint8(a.i8(i)>>s))
	}
	return r
}
func I8x16ShrU(a V128, n uint32) V128 {
	s := n % 8
	var r V128
	for i := 0; i < 16; i++ {
		putU8(&r, i, a.u8(i)>>s)
	}
	return r
}

func I8x16AllTrue(a V128) int32 {
	for i := 0; i < 16; i++ {
		if a.u8(i) == 0 {
			return 0
		}
	}
	return 1
}

func I8x16Bitmask(a V128) int32 {
	var m int32
	for i := 0; i < 16; i++ {
		if a.i8(i) < 0 {
			m |= 1 << uint(i)
		}
	}
	return m
}

func I8x16NarrowI16x8S(a, b V128) V128 {
	var r V128
	for i := 0; i < 8; i++ {
		putU8(&r, i, uint8(satI8(int32(a.i16(i)))))
	}
	for i := 0; i < 8; i++ {
		putU8(&r, i+8, uint8(satI8(int32(b.i16(i)))))
	}
	return r
}

func I8x16NarrowI16x8U(a, b V128) V128 {
	var r V128
	for i := 0; i < 8; i++ {
		putU8(&r, i, satU8(int32(a.i16(i))))
	}
	for i := 0; i < 8; i++ {
		putU8(&r, i+8, satU8(int32(b.i16(i))))
	}
	return r
}

// -- i16x8 --

func I16x8Add(a, b V128) V128 { return lanewise16(a, b, func(x, y int16) int16 { return x + y }) }
func I16x8Sub(a, b V128) V128 { return lanewise16(a, b, func(x, y int16) int16 { return x - y }) }
func I16x8Mul(a, b V128) V128 { return lanewise16(a, b, func(x, y int16) int16 { return x * y }) }

func I16x8AddSatS(a, b V128) V128 {
	return lanewise16(a, b, func(x, y int16) int16 { return satI16(int32(x) + int32(y)) })
}
func I16x8AddSatU(a, b V128) V128 {
	var r V128
	for i := 0; i < 8; i++ {
		putU16(&r, i, satU16(int32(a.u16(i))+int32(b.u16(i))))
	}
	return r
}
func I16x8SubSatS(a, b V128) V128 {
	return lanewise16(a, b, func(x, y int16) int16 { return satI16(int32(x) - int32(y)) })
}
func I16x8SubSatU(a, b V128) V128 {
	var r V128
	for i := 0; i < 8; i++ {
		putU16(&r, i, satU16(int32(a.u16(i))-int32(b.u16(i))))
	}
	return r
}

func I16x8Neg(a V128) V128 {
	var r V128
	for i := 0; i < 8; i++ {
		putU16(&r, i, uint16(-a.i16(i)))
	}
	return r
}

func I16x8Abs(a V128) V128 {
	var r V128
	for i := 0; i < 8; i++ {
		x := a.i16(i)
		if x < 0 {
			x = -x
		}
		putU16(&r, i, uint16(x))
	}
	return r
}

func I16x8MinS(a, b V128) V128 {
	return lanewise16(a, b, func(x, y int16) int16 {
		if x < y {
			return x
		}
		return y
	})
}
func I16x8MaxS(a, b V128) V128 {
	return lanewise16(a, b, func(x, y int16) int16 {
		if x > y {
			return x
		}
		return y
	})
}
func I16x8MinU(a, b V128) V128 { return minMaxU16(a, b, true) }
func I16x8MaxU(a, b V128) V128 { return minMaxU16(a, b, false) }

func minMaxU16(a, b V128, min bool) V128 {
	var r V128
	for i := 0; i < 8; i++ {
		x, y := a.u16(i), b.u16(i)
		pick := x
		if (min && y < x) || (!min && y > x) {
			pick = y
		}
		putU16(&r, i, pick)
	}
	return r
}

func I16x8AvgrU(a, b V128) V128 {
	var r V128
	for i := 0; i < 8; i++ {
		putU16(&r, i, uint16((uint32(a.u16(i))+uint32(b.u16(i))+1)/2))
	}
	return r
}

func I16x8Shl(a V128, n uint32) V128 {
	s := n % 16
	var r V128
	for i := 0; i < 8; i++ {
		putU16(&r, i, a.u16(i)<<s)
	}
	return r
}
func I16x8ShrS(a V128, n uint32) V128 {
	s := n % 16
	var r V128
	for i := 0; i < 8; i++ {
		putU16(&r, i, uint16(a.i16(i)>>s))
	}
	return r
}
func I16x8ShrU(a V128, n uint32) V128 {
	s := n % 16
	var r V128
	for i := 0; i < 8; i++ {
		putU16(&r, i, a.u16(i)>>s)
	}
	return r
}

func I16x8AllTrue(a V128) int32 {
	for i := 0; i < 8; i++ {
		if a.u16(i) == 0 {
			return 0
		}
	}
	return 1
}

func I16x8Bitmask(a V128) int32 {
	var m int32
	for i := 0; i < 8; i++ {
		if a.i16(i) < 0 {
			m |= 1 << uint(i)
		}
	}
	return m
}

func I16x8NarrowI32x4S(a, b V128) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		putU16(&r, i, uint16(satI16(a.i32(i))))
	}
	for i := 0; i < 4; i++ {
		putU16(&r, i+4, uint16(satI16(b.i32(i))))
	}
	return r
}

func I16x8NarrowI32x4U(a, b V128) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		putU16(&r, i, satU16(a.i32(i)))
	}
	for i := 0; i < 4; i++ {
		putU16(&r, i+4, satU16(b.i32(i)))
	}
	return r
}

func I16x8ExtaddPairwiseI8x16S(a V128) V128 {
	var r V128
	for i := 0; i < 8; i++ {
		putU16(&r, i, uint16(int32(a.i8(2*i))+int32(a.i8(2*i+1))))
	}
	return r
}
func I16x8ExtaddPairwiseI8x16U(a V128) V128 {
	var r V128
	for i := 0; i < 8; i++ {
		putU16(&r, i, uint16(uint32(a.u8(2*i))+uint32(a.u8(2*i+1))))
	}
	return r
}

func I16x8ExtendLowI8x16S(a V128) V128 {
	var r V128
	for i := 0; i < 8; i++ {
		putU16(&r, i, uint16(int16(a.i8(i))))
	}
	return r
}
func I16x8ExtendHighI8x16S(a V128) V128 {
	var r V128
	for i := 0; i < 8; i++ {
		putU16(&r, i, uint16(int16(a.i8(i+8))))
	}
	return r
}
func I16x8ExtendLowI8x16U(a V128) V128 {
	var r V128
	for i := 0; i < 8; i++ {
		putU16(&r, i, uint16(a.u8(i)))
	}
	return r
}
func I16x8ExtendHighI8x16U(a V128) V128 {
	var r V128
	for i := 0; i < 8; i++ {
		putU16(&r, i, uint16(a.u8(i+8)))
	}
	return r
}

func I16x8ExtmulLowI8x16S(a, b V128) V128 {
	var r V128
	for i := 0; i < 8; i++ {
		putU16(&r, i, uint16(int16(a.i8(i))*int16(b.i8(i))))
	}
	return r
}
func I16x8ExtmulHighI8x16S(a, b V128) V128 {
	var r V128
	for i := 0; i < 8; i++ {
		putU16(&r, i, uint16(int16(a.i8(i+8))*int16(b.i8(i+8))))
	}
	return r
}
func I16x8ExtmulLowI8x16U(a, b V128) V128 {
	var r V128
	for i := 0; i < 8; i++ {
		putU16(&r, i, uint16(a.u8(i))*uint16(b.u8(i)))
	}
	return r
}
func I16x8ExtmulHighI8x16U(a, b V128) V128 {
	var r V128
	for i := 0; i < 8; i++ {
		putU16(&r, i, uint16(a.u8(i+8))*uint16(b.u8(i+8)))
	}
	return r
}

// I16x8Q15mulrSatS implements the Q15 fixed-point rounding saturating
// multiply used by relaxed-simd's predecessor, the MVP q15mulr_sat_s op.
func I16x8Q15mulrSatS(a, b V128) V128 {
	var r V128
	for i := 0; i < 8; i++ {
		prod := int32(a.i16(i))*int32(b.i16(i)) + (1 << 14)
		prod >>= 15
		putU16(&r, i, uint16(satI16(prod)))
	}
	return r
}

// -- i32x4 --

func I32x4Add(a, b V128) V128 { return lanewise32(a, b, func(x, y int32) int32 { return x + y }) }
func I32x4Sub(a, b V128) V128 { return lanewise32(a, b, func(x, y int32) int32 { return x - y }) }
func I32x4Mul(a, b V128) V128 { return lanewise32(a, b, func(x, y int32) int32 { return x * y }) }

func I32x4Neg(a V128) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		putU32(&r, i, uint32(-a.i32(i)))
	}
	return r
}

func I32x4Abs(a V128) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		x := a.i32(i)
		if x < 0 {
			x = -x
		}
		putU32(&r, i, uint32(x))
	}
	return r
}

func I32x4MinS(a, b V128) V128 {
	return lanewise32(a, b, func(x, y int32) int32 {
		if x < y {
			return x
		}
		return y
	})
}
func I32x4MaxS(a, b V128) V128 {
	return lanewise32(a, b, func(x, y int32) int32 {
		if x > y {
			return x
		}
		return y
	})
}
func I32x4MinU(a, b V128) V128 { return minMaxU32(a, b, true) }
func I32x4MaxU(a, b V128) V128 { return minMaxU32(a, b, false) }

func minMaxU32(a, b V128, min bool) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		x, y := a.u32(i), b.u32(i)
		pick := x
		if (min && y < x) || (!min && y > x) {
			pick = y
		}
		putU32(&r, i, pick)
	}
	return r
}

func I32x4Shl(a V128, n uint32) V128 {
	s := n % 32
	var r V128
	for i := 0; i < 4; i++ {
		putU32(&r, i, a.u32(i)<<s)
	}
	return r
}
func I32x4ShrS(a V128, n uint32) V128 {
	s := n % 32
	var r V128
	for i := 0; i < 4; i++ {
		putU32(&r, i, uint32(a.i32(i)>>s))
	}
	return r
}
func I32x4ShrU(a V128, n uint32) V128 {
	s := n % 32
	var r V128
	for i := 0; i < 4; i++ {
		putU32(&r, i, a.u32(i)>>s)
	}
	return r
}

func I32x4AllTrue(a V128) int32 {
	for i := 0; i < 4; i++ {
		if a.u32(i) == 0 {
			return 0
		}
	}
	return 1
}

func I32x4Bitmask(a V128) int32 {
	var m int32
	for i := 0; i < 4; i++ {
		if a.i32(i) < 0 {
			m |= 1 << uint(i)
		}
	}
	return m
}

func I32x4ExtaddPairwiseI16x8S(a V128) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		putU32(&r, i, uint32(int32(a.i16(2*i))+int32(a.i16(2*i+1))))
	}
	return r
}
func I32x4ExtaddPairwiseI16x8U(a V128) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		putU32(&r, i, uint32(a.u16(2*i))+uint32(a.u16(2*i+1)))
	}
	return r
}

func I32x4ExtendLowI16x8S(a V128) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		putU32(&r, i, uint32(int32(a.i16(i))))
	}
	return r
}
func I32x4ExtendHighI16x8S(a V128) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		putU32(&r, i, uint32(int32(a.i16(i+4))))
	}
	return r
}
func I32x4ExtendLowI16x8U(a V128) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		putU32(&r, i, uint32(a.u16(i)))
	}
	return r
}
func I32x4ExtendHighI16x8U(a V128) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		putU32(&r, i, uint32(a.u16(i+4)))
	}
	return r
}

func I32x4ExtmulLowI16x8S(a, b V128) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		putU32(&r, i, uint32(int32(a.i16(i))*int32(b.i16(i))))
	}
	return r
}
func I32x4ExtmulHighI16x8S(a, b V128) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		putU32(&r, i, uint32(int32(a.i16(i+4))*int32(b.i16(i+4))))
	}
	return r
}
func I32x4ExtmulLowI16x8U(a, b V128) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		putU32(&r, i, uint32(a.u16(i))*uint32(b.u16(i)))
	}
	return r
}
func I32x4ExtmulHighI16x8U(a, b V128) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		putU32(&r, i, uint32(a.u16(i+4))*uint32(b.u16(i+4)))
	}
	return r
}

func I32x4DotI16x8S(a, b V128) V128 {
	var r V128
	for i := 0; i < 4; i++ {
		lo := int32(a.i16(2*i)) * int32(b.i16(2*i))
		hi := int32(a.i16(2*i+1)) * int32(b.i16(2*i+1))
		putU32(&r, i, uint32(lo+hi))
	}
	return r
}

// -- i64x2 --

func I64x2Add(a, b V128) V128 { return lanewise64(a, b, func(x, y int64) int64 { return x + y }) }
func I64x2Sub(a, b V128) V128 { return lanewise64(a, b, func(x, y int64) int64 { return x - y }) }
func I64x2Mul(a, b V128) V128 { return lanewise64(a, b, func(x, y int64) int64 { return x * y }) }

func I64x2Neg(a V128) V128 {
	var r V128
	for i := 0; i < 2; i++ {
		putU64(&r, i, uint64(-a.i64(i)))
	}
	return r
}

func I64x2Abs(a V128) V128 {
	var r V128
	for i := 0; i < 2; i++ {
		x := a.i64(i)
		if x < 0 {
			x = -x
		}
		putU64(&r, i, uint64(x))
	}
	return r
}

func I64x2Shl(a V128, n uint32) V128 {
	s := uint64(n) % 64
	var r V128
	for i := 0; i < 2; i++ {
		putU64(&r, i, a.u64(i)<<s)
	}
	return r
}
func I64x2ShrS(a V128, n uint32) V128 {
	s := uint64(n) % 64
	var r V128
	for i := 0; i < 2; i++ {
		putU64(&r, i, uint64(a.i64(i)>>s))
	}
	return r
}
func I64x2ShrU(a V128, n uint32) V128 {
	s := uint64(n) % 64
	var r V128
	for i := 0; i < 2; i++ {
		putU64(&r, i, a.u64(i)>>s)
	}
	return r
}

func I64x2AllTrue(a V128) int32 {
	for i := 0; i < 2; i++ {
		if a.u64(i) == 0 {
			return 0
		}
	}
	return 1
}

func I64x2Bitmask(a V128) int32 {
	var m int32
	for i := 0; i < 2; i++ {
		if a.i64(i) < 0 {
			m |= 1 << uint(i)
		}
	}
	return m
}

func I64x2ExtendLowI32x4S(a V128) V128 {
	var r V128
	for i := 0; i < 2; i++ {
		putU64(&r, i, uint64(int64(a.i32(i))))
	}
	return r
}
func I64x2ExtendHighI32x4S(a V128) V128 {
	var r V128
	for i := 0; i < 2; i++ {
		putU64(&r, i, uint64(int64(a.i32(i+2))))
	}
	return r
}
func I64x2ExtendLowI32x4U(a V128) V128 {
	var r V128
	for i := 0; i < 2; i++ {
		putU64(&r, i, uint64(a.u32(i)))
	}
	return r
}
func I64x2ExtendHighI32x4U(a V128) V128 {
	var r V128
	for i := 0; i < 2; i++ {
		putU64(&r, i, uint64(a.u32(i+2)))
	}
	return r
}

func I64x2ExtmulLowI32x4S(a, b V128) V128 {
	var r V128
	for i := 0; i < 2; i++ {
		putU64(&r, i, uint64(int64(a.i32(i))*int64(b.i32(i))))
	}
	return r
}
func I64x2ExtmulHighI32x4S(a, b V128) V128 {
	var r V128
	for i := 0; i < 2; i++ {
		putU64(&r, i, uint64(int64(a.i32(i+2))*int64(b.i32(i+2))))
	}
	return r
}
func I64x2ExtmulLowI32x4U(a, b V128) V128 {
	var r V128
	for i := 0; i < 2; i++ {
		putU64(&r, i, uint64(a.u32(i))*uint64(b.u32(i)))
	}
	return r
}
func I64x2ExtmulHighI32x4U(a, b V128) V128 {
	var r V128
	for i := 0; i < 2; i++ {
		putU64(&r, i, uint64(a.u32(i+2))*uint64(b.u32(i+2)))
	}
	return r
}
