package fast

import (
	"math"

	"github.com/chewxy/math32"
)

// The elementary functions below forward to math32 for 32-bit
// representations and to math for 64-bit ones. Unlike Add and friends they
// are defined for every input.

func unary[T Float](v T, f32 func(float32) float32, f64 func(float64) float64) T {
	if is32[T]() {
		return T(f32(float32(v)))
	}
	return T(f64(float64(v)))
}

func binary[T Float](a, b T, f32 func(float32, float32) float32, f64 func(float64, float64) float64) T {
	if is32[T]() {
		return T(f32(float32(a), float32(b)))
	}
	return T(f64(float64(a), float64(b)))
}

func Sin[T Float](v T) T   { return unary(v, math32.Sin, math.Sin) }
func Asin[T Float](v T) T  { return unary(v, math32.Asin, math.Asin) }
func Sinh[T Float](v T) T  { return unary(v, math32.Sinh, math.Sinh) }
func Asinh[T Float](v T) T { return unary(v, math32.Asinh, math.Asinh) }
func Cos[T Float](v T) T   { return unary(v, math32.Cos, math.Cos) }
func Acos[T Float](v T) T  { return unary(v, math32.Acos, math.Acos) }
func Cosh[T Float](v T) T  { return unary(v, math32.Cosh, math.Cosh) }
func Acosh[T Float](v T) T { return unary(v, math32.Acosh, math.Acosh) }
func Tan[T Float](v T) T   { return unary(v, math32.Tan, math.Tan) }
func Atan[T Float](v T) T  { return unary(v, math32.Atan, math.Atan) }
func Tanh[T Float](v T) T  { return unary(v, math32.Tanh, math.Tanh) }
func Atanh[T Float](v T) T { return unary(v, math32.Atanh, math.Atanh) }

// Atan2 returns the arc tangent of y/x, using the signs of both to pick the
// quadrant.
func Atan2[T Float](y, x T) T { return binary(y, x, math32.Atan2, math.Atan2) }

func Floor[T Float](v T) T { return unary(v, math32.Floor, math.Floor) }
func Ceil[T Float](v T) T  { return unary(v, math32.Ceil, math.Ceil) }
func Trunc[T Float](v T) T { return unary(v, math32.Trunc, math.Trunc) }

// Round rounds half away from zero. Every float32 is exactly representable
// as a float64 and so is the rounded result, so the 32-bit case goes
// through math.Round.
func Round[T Float](v T) T { return T(math.Round(float64(v))) }

func Abs[T Float](v T) T   { return unary(v, math32.Abs, math.Abs) }
func Sqrt[T Float](v T) T  { return unary(v, math32.Sqrt, math.Sqrt) }
func Cbrt[T Float](v T) T  { return unary(v, math32.Cbrt, math.Cbrt) }
func Exp2[T Float](v T) T  { return unary(v, math32.Exp2, math.Exp2) }
func Log[T Float](v T) T   { return unary(v, math32.Log, math.Log) }
func Log2[T Float](v T) T  { return unary(v, math32.Log2, math.Log2) }
func Log10[T Float](v T) T { return unary(v, math32.Log10, math.Log10) }

func Pow[T Float](x, y T) T   { return binary(x, y, math32.Pow, math.Pow) }
func Hypot[T Float](p, q T) T { return binary(p, q, math32.Hypot, math.Hypot) }
func Min[T Float](a, b T) T   { return binary(a, b, math32.Min, math.Min) }
func Max[T Float](a, b T) T   { return binary(a, b, math32.Max, math.Max) }

// Powi raises v to an integer power.
func Powi[T Float](v T, n int) T { return Pow(v, T(n)) }

// LogBase returns the logarithm of v in the given base.
func LogBase[T Float](v, base T) T { return Log(v) / Log(base) }

// Fract returns the fractional part of v, with the sign of v.
func Fract[T Float](v T) T { return v - Trunc(v) }

// MaxValue and MinValue are the largest finite values of T.
func MaxValue[T Float]() T {
	if is32[T]() {
		var m float32 = math.MaxFloat32
		return T(m)
	}
	var m float64 = math.MaxFloat64
	return T(m)
}

func MinValue[T Float]() T { return -MaxValue[T]() }
