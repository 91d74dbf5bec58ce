// Package number implements the scalar integer and floating-point
// semantics mandated by the WebAssembly numeric instructions: wrapping
// arithmetic, trapping division, NaN-propagating float ops, and the
// trapping/saturating float-to-int conversions. It is grounded on the
// teacher's number/conversion.go and number/limit.go, generalized from
// truncation-only helpers into the full scalar instruction set. The float
// and saturating-conversion lane ops in package simd call these same
// helpers one lane at a time; simd's integer lane arithmetic is written
// out in that package.
package number

import "math/bits"

// TrapCode distinguishes the numeric traps the spec mandates, letting
// package vm map a number-layer fault to its own Trap without the two
// packages needing to share an error type.
type TrapCode int

const (
	NoTrap TrapCode = iota
	DivideByZero
	IntegerOverflow
	InvalidConversion
)

// I32DivS performs signed 32-bit division, trapping on division by zero and
// on the one case of signed overflow (MinInt32 / -1).
func I32DivS(a, b int32) (int32, TrapCode) {
	if b == 0 {
		return 0, DivideByZero
	}
	if a == -2147483648 && b == -1 {
		return 0, IntegerOverflow
	}
	return a / b, NoTrap
}

// I32DivU performs unsigned 32-bit division, trapping on division by zero.
func I32DivU(a, b uint32) (uint32, TrapCode) {
	if b == 0 {
		return 0, DivideByZero
	}
	return a / b, NoTrap
}

// I32RemS performs signed 32-bit remainder; MinInt32 % -1 is well-defined
// (0), unlike division.
func I32RemS(a, b int32) (int32, TrapCode) {
	if b == 0 {
		return 0, DivideByZero
	}
	if b == -1 {
		return 0, NoTrap
	}
	return a % b, NoTrap
}

// I32RemU performs unsigned 32-bit remainder.
func I32RemU(a, b uint32) (uint32, TrapCode) {
	if b == 0 {
		return 0, DivideByZero
	}
	return a % b, NoTrap
}

// I64DivS performs signed 64-bit division, trapping on division by zero and
// on MinInt64 / -1.
func I64DivS(a, b int64) (int64, TrapCode) {
	if b == 0 {
		return 0, DivideByZero
	}
	if a == -9223372036854775808 && b == -1 {
		return 0, IntegerOverflow
	}
	return a / b, NoTrap
}

// I64DivU performs unsigned 64-bit division, trapping on division by zero.
func I64DivU(a, b uint64) (uint64, TrapCode) {
	if b == 0 {
		return 0, DivideByZero
	}
	return a / b, NoTrap
}

// I64RemS performs signed 64-bit remainder.
func I64RemS(a, b int64) (int64, TrapCode) {
	if b == 0 {
		return 0, DivideByZero
	}
	if b == -1 {
		return 0, NoTrap
	}
	return a % b, NoTrap
}

// I64RemU performs unsigned 64-bit remainder.
func I64RemU(a, b uint64) (uint64, TrapCode) {
	if b == 0 {
		return 0, DivideByZero
	}
	return a % b, NoTrap
}

// Rotl32 rotates v left by n bits, n taken modulo 32.
func Rotl32(v uint32, n uint32) uint32 { return bits.RotateLeft32(v, int(n%32)) }

// Rotr32 rotates v right by n bits, n taken modulo 32.
func Rotr32(v uint32, n uint32) uint32 { return bits.RotateLeft32(v, -int(n%32)) }

// Rotl64 rotates v left by n bits, n taken modulo 64.
func Rotl64(v uint64, n uint64) uint64 { return bits.RotateLeft64(v, int(n%64)) }

// Rotr64 rotates v right by n bits, n taken modulo 64.
func Rotr64(v uint64, n uint64) uint64 { return bits.RotateLeft64(v, -int(n%64)) }

// Clz32 counts leading zero bits of a 32-bit value.
func Clz32(v uint32) uint32 { return uint32(bits.LeadingZeros32(v)) }

// Ctz32 counts trailing zero bits of a 32-bit value.
func Ctz32(v uint32) uint32 { return uint32(bits.TrailingZeros32(v)) }

// Popcnt32 counts set bits of a 32-bit value.
func Popcnt32(v uint32) uint32 { return uint32(bits.OnesCount32(v)) }

// Clz64 counts leading zero bits of a 64-bit value.
func Clz64(v uint64) uint64 { return uint64(bits.LeadingZeros64(v)) }

// Ctz64 counts trailing zero bits of a 64-bit value.
func Ctz64(v uint64) uint64 { return uint64(bits.TrailingZeros64(v)) }

// Popcnt64 counts set bits of a 64-bit value.
func Popcnt64(v uint64) uint64 { return uint64(bits.OnesCount64(v)) }

// BoolToI32 renders a comparison result as the wasm i32 0/1 convention.
func BoolToI32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
