package ffloat

import (
	"github.com/shabbyrobe/go-ffloat/fast"
)

// Float32 and Float64 are the plain representations of the numeric
// interfaces: a float32 or float64 with methods and no invariant.
// Arithmetic uses the ordinary operators and everything else forwards to
// the function of the same name in package fast. They are what
// generic code runs on when it does not want FFloat.
type (
	Float32 float32
	Float64 float64
)

func (f Float32) New(v float32) Float32 { return Float32(v) }
func (f Float32) Take() float32         { return float32(f) }

func (f Float32) Zero() Float32     { return 0 }
func (f Float32) One() Float32      { return 1 }
func (f Float32) MinValue() Float32 { return Float32(fast.MinValue[float32]()) }
func (f Float32) MaxValue() Float32 { return Float32(fast.MaxValue[float32]()) }

func (f Float32) Add(n Float32) Float32 { return f + n }
func (f Float32) Sub(n Float32) Float32 { return f - n }
func (f Float32) Mul(n Float32) Float32 { return f * n }
func (f Float32) Div(n Float32) Float32 { return f / n }
func (f Float32) Rem(n Float32) Float32 { return Float32(fast.Rem(float32(f), float32(n))) }
func (f Float32) Neg() Float32          { return -f }

func (f Float32) AddFloat(n float32) Float32 { return f + Float32(n) }
func (f Float32) SubFloat(n float32) Float32 { return f - Float32(n) }
func (f Float32) MulFloat(n float32) Float32 { return f * Float32(n) }
func (f Float32) DivFloat(n float32) Float32 { return f / Float32(n) }
func (f Float32) RemFloat(n float32) Float32 { return f.Rem(Float32(n)) }

func (f *Float32) AddAssign(n Float32)      { *f = f.Add(n) }
func (f *Float32) AddAssignFloat(n float32) { *f = f.AddFloat(n) }
func (f *Float32) SubAssign(n Float32)      { *f = f.Sub(n) }
func (f *Float32) SubAssignFloat(n float32) { *f = f.SubFloat(n) }
func (f *Float32) MulAssign(n Float32)      { *f = f.Mul(n) }
func (f *Float32) MulAssignFloat(n float32) { *f = f.MulFloat(n) }
func (f *Float32) DivAssign(n Float32)      { *f = f.Div(n) }
func (f *Float32) DivAssignFloat(n float32) { *f = f.DivFloat(n) }
func (f *Float32) RemAssign(n Float32)      { *f = f.Rem(n) }
func (f *Float32) RemAssignFloat(n float32) { *f = f.RemFloat(n) }

func (f Float32) Equal(n Float32) bool                 { return f == n }
func (f Float32) EqualFloat(n float32) bool            { return float32(f) == n }
func (f Float32) GreaterThan(n Float32) bool           { return f > n }
func (f Float32) GreaterThanFloat(n float32) bool      { return float32(f) > n }
func (f Float32) GreaterOrEqualTo(n Float32) bool      { return f >= n }
func (f Float32) GreaterOrEqualToFloat(n float32) bool { return float32(f) >= n }
func (f Float32) LessThan(n Float32) bool              { return f < n }
func (f Float32) LessThanFloat(n float32) bool         { return float32(f) < n }
func (f Float32) LessOrEqualTo(n Float32) bool         { return f <= n }
func (f Float32) LessOrEqualToFloat(n float32) bool    { return float32(f) <= n }

func (f Float32) Sin() Float32   { return Float32(fast.Sin(float32(f))) }
func (f Float32) Asin() Float32  { return Float32(fast.Asin(float32(f))) }
func (f Float32) Sinh() Float32  { return Float32(fast.Sinh(float32(f))) }
func (f Float32) Asinh() Float32 { return Float32(fast.Asinh(float32(f))) }
func (f Float32) Cos() Float32   { return Float32(fast.Cos(float32(f))) }
func (f Float32) Acos() Float32  { return Float32(fast.Acos(float32(f))) }
func (f Float32) Cosh() Float32  { return Float32(fast.Cosh(float32(f))) }
func (f Float32) Acosh() Float32 { return Float32(fast.Acosh(float32(f))) }
func (f Float32) Tan() Float32   { return Float32(fast.Tan(float32(f))) }
func (f Float32) Atan() Float32  { return Float32(fast.Atan(float32(f))) }
func (f Float32) Tanh() Float32  { return Float32(fast.Tanh(float32(f))) }
func (f Float32) Atanh() Float32 { return Float32(fast.Atanh(float32(f))) }
func (f Float32) Floor() Float32 { return Float32(fast.Floor(float32(f))) }
func (f Float32) Ceil() Float32  { return Float32(fast.Ceil(float32(f))) }
func (f Float32) Round() Float32 { return Float32(fast.Round(float32(f))) }
func (f Float32) Trunc() Float32 { return Float32(fast.Trunc(float32(f))) }
func (f Float32) Fract() Float32 { return Float32(fast.Fract(float32(f))) }
func (f Float32) Abs() Float32   { return Float32(fast.Abs(float32(f))) }
func (f Float32) Sqrt() Float32  { return Float32(fast.Sqrt(float32(f))) }
func (f Float32) Cbrt() Float32  { return Float32(fast.Cbrt(float32(f))) }
func (f Float32) Exp2() Float32  { return Float32(fast.Exp2(float32(f))) }
func (f Float32) Log2() Float32  { return Float32(fast.Log2(float32(f))) }
func (f Float32) Log10() Float32 { return Float32(fast.Log10(float32(f))) }
func (f Float32) Ln() Float32    { return Float32(fast.Log(float32(f))) }

func (f Float32) Atan2(x Float32) Float32     { return Float32(fast.Atan2(float32(f), float32(x))) }
func (f Float32) Log(base Float32) Float32    { return Float32(fast.LogBase(float32(f), float32(base))) }
func (f Float32) Powi(n int) Float32          { return Float32(fast.Powi(float32(f), n)) }
func (f Float32) Powf(n Float32) Float32      { return Float32(fast.Pow(float32(f), float32(n))) }
func (f Float32) Hypot(other Float32) Float32 { return Float32(fast.Hypot(float32(f), float32(other))) }
func (f Float32) Min(other Float32) Float32   { return Float32(fast.Min(float32(f), float32(other))) }
func (f Float32) Max(other Float32) Float32   { return Float32(fast.Max(float32(f), float32(other))) }

func (f Float64) New(v float64) Float64 { return Float64(v) }
func (f Float64) Take() float64         { return float64(f) }

func (f Float64) Zero() Float64     { return 0 }
func (f Float64) One() Float64      { return 1 }
func (f Float64) MinValue() Float64 { return Float64(fast.MinValue[float64]()) }
func (f Float64) MaxValue() Float64 { return Float64(fast.MaxValue[float64]()) }

func (f Float64) Add(n Float64) Float64 { return f + n }
func (f Float64) Sub(n Float64) Float64 { return f - n }
func (f Float64) Mul(n Float64) Float64 { return f * n }
func (f Float64) Div(n Float64) Float64 { return f / n }
func (f Float64) Rem(n Float64) Float64 { return Float64(fast.Rem(float64(f), float64(n))) }
func (f Float64) Neg() Float64          { return -f }

func (f Float64) AddFloat(n float64) Float64 { return f + Float64(n) }
func (f Float64) SubFloat(n float64) Float64 { return f - Float64(n) }
func (f Float64) MulFloat(n float64) Float64 { return f * Float64(n) }
func (f Float64) DivFloat(n float64) Float64 { return f / Float64(n) }
func (f Float64) RemFloat(n float64) Float64 { return f.Rem(Float64(n)) }

func (f *Float64) AddAssign(n Float64)      { *f = f.Add(n) }
func (f *Float64) AddAssignFloat(n float64) { *f = f.AddFloat(n) }
func (f *Float64) SubAssign(n Float64)      { *f = f.Sub(n) }
func (f *Float64) SubAssignFloat(n float64) { *f = f.SubFloat(n) }
func (f *Float64) MulAssign(n Float64)      { *f = f.Mul(n) }
func (f *Float64) MulAssignFloat(n float64) { *f = f.MulFloat(n) }
func (f *Float64) DivAssign(n Float64)      { *f = f.Div(n) }
func (f *Float64) DivAssignFloat(n float64) { *f = f.DivFloat(n) }
func (f *Float64) RemAssign(n Float64)      { *f = f.Rem(n) }
func (f *Float64) RemAssignFloat(n float64) { *f = f.RemFloat(n) }

func (f Float64) Equal(n Float64) bool                 { return f == n }
func (f Float64) EqualFloat(n float64) bool            { return float64(f) == n }
func (f Float64) GreaterThan(n Float64) bool           { return f > n }
func (f Float64) GreaterThanFloat(n float64) bool      { return float64(f) > n }
func (f Float64) GreaterOrEqualTo(n Float64) bool      { return f >= n }
func (f Float64) GreaterOrEqualToFloat(n float64) bool { return float64(f) >= n }
func (f Float64) LessThan(n Float64) bool              { return f < n }
func (f Float64) LessThanFloat(n float64) bool         { return float64(f) < n }
func (f Float64) LessOrEqualTo(n Float64) bool         { return f <= n }
func (f Float64) LessOrEqualToFloat(n float64) bool    { return float64(f) <= n }

func (f Float64) Sin() Float64   { return Float64(fast.Sin(float64(f))) }
func (f Float64) Asin() Float64  { return Float64(fast.Asin(float64(f))) }
func (f Float64) Sinh() Float64  { return Float64(fast.Sinh(float64(f))) }
func (f Float64) Asinh() Float64 { return Float64(fast.Asinh(float64(f))) }
func (f Float64) Cos() Float64   { return Float64(fast.Cos(float64(f))) }
func (f Float64) Acos() Float64  { return Float64(fast.Acos(float64(f))) }
func (f Float64) Cosh() Float64  { return Float64(fast.Cosh(float64(f))) }
func (f Float64) Acosh() Float64 { return Float64(fast.Acosh(float64(f))) }
func (f Float64) Tan() Float64   { return Float64(fast.Tan(float64(f))) }
func (f Float64) Atan() Float64  { return Float64(fast.Atan(float64(f))) }
func (f Float64) Tanh() Float64  { return Float64(fast.Tanh(float64(f))) }
func (f Float64) Atanh() Float64 { return Float64(fast.Atanh(float64(f))) }
func (f Float64) Floor() Float64 { return Float64(fast.Floor(float64(f))) }
func (f Float64) Ceil() Float64  { return Float64(fast.Ceil(float64(f))) }
func (f Float64) Round() Float64 { return Float64(fast.Round(float64(f))) }
func (f Float64) Trunc() Float64 { return Float64(fast.Trunc(float64(f))) }
func (f Float64) Fract() Float64 { return Float64(fast.Fract(float64(f))) }
func (f Float64) Abs() Float64   { return Float64(fast.Abs(float64(f))) }
func (f Float64) Sqrt() Float64  { return Float64(fast.Sqrt(float64(f))) }
func (f Float64) Cbrt() Float64  { return Float64(fast.Cbrt(float64(f))) }
func (f Float64) Exp2() Float64  { return Float64(fast.Exp2(float64(f))) }
func (f Float64) Log2() Float64  { return Float64(fast.Log2(float64(f))) }
func (f Float64) Log10() Float64 { return Float64(fast.Log10(float64(f))) }
func (f Float64) Ln() Float64    { return Float64(fast.Log(float64(f))) }

func (f Float64) Atan2(x Float64) Float64     { return Float64(fast.Atan2(float64(f), float64(x))) }
func (f Float64) Log(base Float64) Float64    { return Float64(fast.LogBase(float64(f), float64(base))) }
func (f Float64) Powi(n int) Float64          { return Float64(fast.Powi(float64(f), n)) }
func (f Float64) Powf(n Float64) Float64      { return Float64(fast.Pow(float64(f), float64(n))) }
func (f Float64) Hypot(other Float64) Float64 { return Float64(fast.Hypot(float64(f), float64(other))) }
func (f Float64) Min(other Float64) Float64   { return Float64(fast.Min(float64(f), float64(other))) }
func (f Float64) Max(other Float64) Float64   { return Float64(fast.Max(float64(f), float64(other))) }
