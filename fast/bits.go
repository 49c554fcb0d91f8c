package fast

import (
	"math"
)

// Exponent field layout for the two IEEE 754 binary formats. An exponent
// field of all ones encodes either an infinity or a NaN.
const (
	mask32  = 0xFF
	shift32 = 32 - 8 - 1

	mask64  = 0x7FF
	shift64 = 64 - 11 - 1
)

// Bad reports whether v is NaN or an infinity.
func Bad[T Float](v T) bool {
	if is32[T]() {
		bits := math.Float32bits(float32(v))
		return (bits>>shift32)&mask32 == mask32
	}
	bits := math.Float64bits(float64(v))
	return (bits>>shift64)&mask64 == mask64
}

// Bits returns the IEEE 754 bit pattern of v. For 32-bit representations
// only the low 32 bits are used.
func Bits[T Float](v T) uint64 {
	if is32[T]() {
		return uint64(math.Float32bits(float32(v)))
	}
	return math.Float64bits(float64(v))
}

// FromBits is the inverse of Bits.
func FromBits[T Float](b uint64) T {
	if is32[T]() {
		return T(math.Float32frombits(uint32(b)))
	}
	return T(math.Float64frombits(b))
}
