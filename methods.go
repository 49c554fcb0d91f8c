package ffloat

import (
	"github.com/shabbyrobe/go-ffloat/fast"
)

// This file implements Float for FFloat. Every method checks the receiver,
// forwards to package fast and wraps the result through New, so every
// method carries the caller promise documented on New.

func (f FFloat[T]) New(v T) FFloat[T] { return wrap("new", v) }
func (f FFloat[T]) Take() T           { return f.v }

func (f FFloat[T]) Zero() FFloat[T]     { return wrap("zero", T(0)) }
func (f FFloat[T]) One() FFloat[T]      { return wrap("one", T(1)) }
func (f FFloat[T]) MinValue() FFloat[T] { return wrap("minvalue", fast.MinValue[T]()) }
func (f FFloat[T]) MaxValue() FFloat[T] { return wrap("maxvalue", fast.MaxValue[T]()) }

// unary is the shape shared by every single-argument method.
func (f FFloat[T]) unary(fn func(T) T, name string) FFloat[T] {
	f.check(name)
	return wrap(name, fn(f.v))
}

func (f FFloat[T]) binary(fn func(T, T) T, n FFloat[T], name string) FFloat[T] {
	f.check(name)
	return wrap(name, fn(f.v, n.v))
}

func (f FFloat[T]) Sin() FFloat[T]   { return f.unary(fast.Sin[T], "sin") }
func (f FFloat[T]) Asin() FFloat[T]  { return f.unary(fast.Asin[T], "asin") }
func (f FFloat[T]) Sinh() FFloat[T]  { return f.unary(fast.Sinh[T], "sinh") }
func (f FFloat[T]) Asinh() FFloat[T] { return f.unary(fast.Asinh[T], "asinh") }
func (f FFloat[T]) Cos() FFloat[T]   { return f.unary(fast.Cos[T], "cos") }
func (f FFloat[T]) Acos() FFloat[T]  { return f.unary(fast.Acos[T], "acos") }
func (f FFloat[T]) Cosh() FFloat[T]  { return f.unary(fast.Cosh[T], "cosh") }
func (f FFloat[T]) Acosh() FFloat[T] { return f.unary(fast.Acosh[T], "acosh") }
func (f FFloat[T]) Tan() FFloat[T]   { return f.unary(fast.Tan[T], "tan") }
func (f FFloat[T]) Atan() FFloat[T]  { return f.unary(fast.Atan[T], "atan") }
func (f FFloat[T]) Tanh() FFloat[T]  { return f.unary(fast.Tanh[T], "tanh") }
func (f FFloat[T]) Atanh() FFloat[T] { return f.unary(fast.Atanh[T], "atanh") }

func (f FFloat[T]) Floor() FFloat[T] { return f.unary(fast.Floor[T], "floor") }
func (f FFloat[T]) Ceil() FFloat[T]  { return f.unary(fast.Ceil[T], "ceil") }
func (f FFloat[T]) Round() FFloat[T] { return f.unary(fast.Round[T], "round") }

func (f FFloat[T]) Trunc() FFloat[T] { return f.unary(fast.Trunc[T], "trunc") }
func (f FFloat[T]) Fract() FFloat[T] { return f.unary(fast.Fract[T], "fract") }
func (f FFloat[T]) Abs() FFloat[T]   { return f.unary(fast.Abs[T], "abs") }
func (f FFloat[T]) Sqrt() FFloat[T]  { return f.unary(fast.Sqrt[T], "sqrt") }
func (f FFloat[T]) Cbrt() FFloat[T]  { return f.unary(fast.Cbrt[T], "cbrt") }
func (f FFloat[T]) Exp2() FFloat[T]  { return f.unary(fast.Exp2[T], "exp2") }

func (f FFloat[T]) Log2() FFloat[T]  { return f.unary(fast.Log2[T], "log2") }
func (f FFloat[T]) Log10() FFloat[T] { return f.unary(fast.Log10[T], "log10") }
func (f FFloat[T]) Ln() FFloat[T]    { return f.unary(fast.Log[T], "ln") }

func (f FFloat[T]) Atan2(x FFloat[T]) FFloat[T]     { return f.binary(fast.Atan2[T], x, "atan2") }
func (f FFloat[T]) Log(base FFloat[T]) FFloat[T]    { return f.binary(fast.LogBase[T], base, "log") }
func (f FFloat[T]) Powf(n FFloat[T]) FFloat[T]      { return f.binary(fast.Pow[T], n, "powf") }
func (f FFloat[T]) Hypot(other FFloat[T]) FFloat[T] { return f.binary(fast.Hypot[T], other, "hypot") }
func (f FFloat[T]) Min(other FFloat[T]) FFloat[T]   { return f.binary(fast.Min[T], other, "min") }
func (f FFloat[T]) Max(other FFloat[T]) FFloat[T]   { return f.binary(fast.Max[T], other, "max") }

func (f FFloat[T]) Powi(n int) FFloat[T] {
	f.check("powi")
	return wrap("powi", fast.Powi(f.v, n))
}
