package number

import "math"

// TruncKind selects the integer width and signedness of a float-to-int
// truncation target.
type TruncKind int

const (
	TruncI32S TruncKind = iota
	TruncI32U
	TruncI64S
	TruncI64U
)

// truncBounds returns the range of float values that can be truncated to
// kind without overflow. hi is exclusive; lo is inclusive for the signed
// kinds and exclusive (-1) for the unsigned kinds. Grounded on the
// teacher's number/conversion.go CanTruncate, generalized from four
// hand-written type-pair cases into one table covering both source widths
// and all four destination kinds.
func truncBounds(kind TruncKind) (lo, hi float64) {
	switch kind {
	case TruncI32S:
		return math.MinInt32, math.MaxInt32 + 1
	case TruncI32U:
		return -1, math.MaxUint32 + 1
	case TruncI64S:
		return math.MinInt64, math.MaxInt64 + 1
	case TruncI64U:
		return -1, math.MaxUint64 + 1
	}
	panic("number: invalid trunc kind")
}

// TruncF32 converts a binary32 value to an integer per kind, trapping on
// NaN, infinity, or a value outside the representable range - the
// non-saturating `i32.trunc_f32_s` family of instructions.
func TruncF32(f float32, kind TruncKind) (uint64, TrapCode) {
	return truncFloat(float64(f), kind, math.IsNaN(float64(f)))
}

// TruncF64 is the binary64 analogue of TruncF32.
func TruncF64(f float64, kind TruncKind) (uint64, TrapCode) {
	return truncFloat(f, kind, math.IsNaN(f))
}

func truncFloat(f float64, kind TruncKind, isNaN bool) (uint64, TrapCode) {
	if isNaN {
		return 0, InvalidConversion
	}
	lo, hi := truncBounds(kind)
	// Compare the truncated value against the bounds rather than f itself:
	// trunc(f) drops exactly the fractional part, so e.g. trunc(-2147483648.9)
	// lands on lo and is in range, while comparing f directly against lo
	// would reject it. Truncating first also sidesteps lo-1 losing precision
	// at i64 magnitude, where float64's ulp exceeds 1.
	t := math.Trunc(f)
	var valid bool
	if isSignedTrunc(kind) {
		valid = t >= lo && t < hi
	} else {
		// unsigned low bound is -1; t == -1 must still trap.
		valid = t > lo && t < hi
	}
	if !valid {
		return 0, InvalidConversion
	}
	return encodeTrunc(t, kind), NoTrap
}

func isSignedTrunc(kind TruncKind) bool {
	return kind == TruncI32S || kind == TruncI64S
}

func encodeTrunc(f float64, kind TruncKind) uint64 {
	switch kind {
	case TruncI32S:
		return uint64(uint32(int32(f)))
	case TruncI32U:
		return uint64(uint32(f))
	case TruncI64S:
		return uint64(int64(f))
	case TruncI64U:
		return uint64(f)
	}
	panic("number: invalid trunc kind")
}

// TruncSatF32 converts a binary32 value to an integer per kind, saturating
// instead of trapping: NaN becomes 0, and out-of-range values clamp to the
// nearest representable bound.
func TruncSatF32(f float32, kind TruncKind) uint64 {
	return truncSat(float64(f), kind, math32IsNaN(f))
}

// TruncSatF64 is the binary64 analogue of TruncSatF32.
func TruncSatF64(f float64, kind TruncKind) uint64 {
	return truncSat(f, kind, math.IsNaN(f))
}

func math32IsNaN(f float32) bool { return f != f }

func truncSat(f float64, kind TruncKind, isNaN bool) uint64 {
	if isNaN {
		return 0
	}
	lo, hi := truncBounds(kind)
	if f <= lo {
		return minBound(kind)
	}
	if f >= hi {
		return maxBound(kind)
	}
	return encodeTrunc(math.Trunc(f), kind)
}

func minBound(kind TruncKind) uint64 {
	switch kind {
	case TruncI32S:
		v := int32(math.MinInt32)
		return uint64(uint32(v))
	case TruncI32U:
		return 0
	case TruncI64S:
		v := int64(math.MinInt64)
		return uint64(v)
	case TruncI64U:
		return 0
	}
	panic("number: invalid trunc kind")
}

func maxBound(kind TruncKind) uint64 {
	switch kind {
	case TruncI32S:
		return uint64(uint32(math.MaxInt32))
	case TruncI32U:
		return uint64(uint32(math.MaxUint32))
	case TruncI64S:
		return uint64(int64(math.MaxInt64))
	case TruncI64U:
		return math.MaxUint64
	}
	panic("number: invalid trunc kind")
}

// ConvertI32SToF32 etc. implement the int-to-float conversion family; Go's
// numeric conversions already round correctly, these exist so the vm
// package never performs a raw Go type conversion on interpreter values
// (keeping every numeric op routed through package number for uniformity
// and testability).
func ConvertI32SToF32(v int32) float32  { return float32(v) }
func ConvertI32UToF32(v uint32) float32 { return float32(v) }
func ConvertI64SToF32(v int64) float32  { return float32(v) }
func ConvertI64UToF32(v uint64) float32 { return float32(v) }
func ConvertI32SToF64(v int32) float64  { return float64(v) }
func ConvertI32UToF64(v uint32) float64 { return float64(v) }
func ConvertI64SToF64(v int64) float64  { return float64(v) }
func ConvertI64UToF64(v uint64) float64 { return float64(v) }

// DemoteF64ToF32 narrows a binary64 value to binary32, per spec rounding
// (round to nearest, ties to even - Go's float32() conversion already
// implements this).
func DemoteF64ToF32(v float64) float32 {
	if math.IsNaN(v) {
		bits := math.Float64bits(v)
		if F64IsArithmeticNaN(bits) {
			return math.Float32frombits(CanonicalNaN32) // payload not preserved across width change
		}
		return math.Float32frombits(CanonicalNaN32)
	}
	return float32(v)
}

// PromoteF32ToF64 widens a binary32 value to binary64.
func PromoteF32ToF64(v float32) float64 { return float64(v) }
