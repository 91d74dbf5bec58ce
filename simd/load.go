package simd

// The Load*x8/x4/x2 helpers widen eight/four/two narrow lanes read from
// linear memory into the wider lane shape used by the v128.loadNxM_s/u
// instruction family. They take raw little-endian bytes (exactly as read
// from memory) rather than reaching into the vm package's memory
// instance, keeping simd free of any dependency on vm.

// Load8x8S/U widen 8 bytes into an i16x8.
func Load8x8S(b []byte) V128 {
	var v V128
	for i := 0; i < 8; i++ {
		putU16(&v, i, uint16(int16(int8(b[i]))))
	}
	return v
}

func Load8x8U(b []byte) V128 {
	var v V128
	for i := 0; i < 8; i++ {
		putU16(&v, i, uint16(b[i]))
	}
	return v
}

// Load16x4S/U widen 4 little-endian 16-bit values into an i32x4.
func Load16x4S(b []byte) V128 {
	var v V128
	for i := 0; i < 4; i++ {
		x := int16(uint16(b[2*i]) | uint16(b[2*i+1])<<8)
		putU32(&v, i, uint32(int32(x)))
	}
	return v
}

func Load16x4U(b []byte) V128 {
	var v V128
	for i := 0; i < 4; i++ {
		x := uint16(b[2*i]) | uint16(b[2*i+1])<<8
		putU32(&v, i, uint32(x))
	}
	return v
}

// Load32x2S/U widen 2 little-endian 32-bit values into an i64x2.
func Load32x2S(b []byte) V128 {
	var v V128
	for i := 0; i < 2; i++ {
		x := int32(uint32(b[4*i]) | uint32(b[4*i+1])<<8 | uint32(b[4*i+2])<<16 | uint32(b[4*i+3])<<24)
		putU64(&v, i, uint64(int64(x)))
	}
	return v
}

func Load32x2U(b []byte) V128 {
	var v V128
	for i := 0; i < 2; i++ {
		x := uint32(b[4*i]) | uint32(b[4*i+1])<<8 | uint32(b[4*i+2])<<16 | uint32(b[4*i+3])<<24
		putU64(&v, i, uint64(x))
	}
	return v
}

// Load8Splat etc. broadcast a single memory-width value across the full
// lane shape, used by the v128.loadN_splat instructions.
func Load8Splat(b byte) V128   { return I8x16Splat(int8(b)) }
func Load16Splat(lo, hi byte) V128 {
	return I16x8Splat(int16(uint16(lo) | uint16(hi)<<8))
}

func Load32Splat(b []byte) V128 {
	x := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return I32x4Splat(int32(x))
}

func Load64Splat(b []byte) V128 {
	var x uint64
	for i := 0; i < 8; i++ {
		x |= uint64(b[i]) << (8 * i)
	}
	return I64x2Splat(int64(x))
}

// Load32Zero/Load64Zero place a scalar value in lane 0, zeroing the rest.
func Load32Zero(b []byte) V128 {
	var v V128
	x := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	putU32(&v, 0, x)
	return v
}

func Load64Zero(b []byte) V128 {
	var v V128
	var x uint64
	for i := 0; i < 8; i++ {
		x |= uint64(b[i]) << (8 * i)
	}
	putU64(&v, 0, x)
	return v
}

// LaneBytes8/16/32/64 extract the raw little-endian bytes of lane i, for
// the v128.storeN_lane instructions which write a single lane back to
// memory.
func LaneBytes8(v V128, lane byte) byte { return v[lane] }

func LaneBytes16(v V128, lane byte) [2]byte {
	var b [2]byte
	b[0] = v[2*lane]
	b[1] = v[2*lane+1]
	return b
}

func LaneBytes32(v V128, lane byte) [4]byte {
	var b [4]byte
	copy(b[:], v[4*lane:4*lane+4])
	return b
}

func LaneBytes64(v V128, lane byte) [8]byte {
	var b [8]byte
	copy(b[:], v[8*lane:8*lane+8])
	return b
}

// PutLaneBytes16/32/64 write raw little-endian bytes into lane i, for the
// v128.loadN_lane instructions (which load a single lane, leaving the rest
// of an existing vector unchanged).
func PutLaneBytes8(v V128, lane byte, b byte) V128 {
	v[lane] = b
	return v
}

func PutLaneBytes16(v V128, lane byte, b [2]byte) V128 {
	v[2*lane] = b[0]
	v[2*lane+1] = b[1]
	return v
}

func PutLaneBytes32(v V128, lane byte, b [4]byte) V128 {
	copy(v[4*lane:4*lane+4], b[:])
	return v
}

func PutLaneBytes64(v V128, lane byte, b [8]byte) V128 {
	copy(v[8*lane:8*lane+8], b[:])
	return v
}
