package ffloat

import (
	"github.com/shabbyrobe/go-ffloat/fast"
)

// The interfaces in this file let numeric code be written once and run over
// either a plain float (Float32, Float64) or an FFloat. Each covers one
// area so a representation can implement a subset; Float is the umbrella
// most code should accept.
//
// Every method on an FFloat follows the same shape: check the receiver,
// forward to package fast, and wrap the result through New. That means the
// caller promise documented on New applies to all of them: an FFloat
// method that would produce NaN or Inf (Sqrt of a negative, Log of zero,
// Acos outside [-1, 1]) breaks the invariant.
//
// The Constructors methods ignore their receiver, so the zero value of S
// can be used to call them:
//
//	var z S
//	one := z.One()

// Trig is implemented by representations with trigonometric functions.
type Trig[S any] interface {
	Sin() S
	Asin() S
	Sinh() S
	Asinh() S
	Cos() S
	Acos() S
	Cosh() S
	Acosh() S
	Tan() S
	Atan() S

	// Atan2 returns the arc tangent of s/x.
	Atan2(x S) S
	Tanh() S
	Atanh() S
}

type Rounding[S any] interface {
	Floor() S
	Ceil() S

	// Round rounds half away from zero.
	Round() S
}

type Logarithm[S any] interface {
	Log(base S) S
	Log2() S
	Log10() S

	// Ln is the natural logarithm.
	Ln() S
}

// Constructors build the constants of a representation. For an FFloat
// they go through New like everything else, even though none of these
// values can break the invariant.
type Constructors[S any] interface {
	Zero() S
	One() S

	// MinValue is the most negative finite value.
	MinValue() S

	// MaxValue is the largest finite value.
	MaxValue() S
}

// Methods groups the elementary functions.
type Methods[S any] interface {
	Trig[S]
	Rounding[S]
	Logarithm[S]

	Trunc() S
	Fract() S
	Abs() S
	Powi(n int) S
	Powf(n S) S
	Sqrt() S
	Cbrt() S
	Hypot(other S) S
	Exp2() S
	Min(other S) S
	Max(other S) S
}

type Arithmetic[S any] interface {
	Add(n S) S
	Sub(n S) S
	Mul(n S) S
	Div(n S) S
	Rem(n S) S
	Neg() S
}

// BaseArithmetic is Arithmetic against the base representation B.
type BaseArithmetic[S any, B fast.Float] interface {
	AddFloat(n B) S
	SubFloat(n B) S
	MulFloat(n B) S
	DivFloat(n B) S
	RemFloat(n B) S
}

type Comparison[S any] interface {
	Equal(n S) bool
	GreaterThan(n S) bool
	GreaterOrEqualTo(n S) bool
	LessThan(n S) bool
	LessOrEqualTo(n S) bool
}

// BaseComparison is Comparison against the base representation B.
type BaseComparison[S any, B fast.Float] interface {
	EqualFloat(n B) bool
	GreaterThanFloat(n B) bool
	GreaterOrEqualToFloat(n B) bool
	LessThanFloat(n B) bool
	LessOrEqualToFloat(n B) bool
}

// Alone is a float that needs nothing but itself.
type Alone[S any] interface {
	comparable
	Comparison[S]
	Constructors[S]
	Methods[S]
	Arithmetic[S]
}

// Float is implemented by Float32, Float64 and FFloat. B is the base
// representation, float32 or float64, that S can be built from, combined
// with and compared with:
//
//	// Accepts Float32 and F32.
//	func takesFloat[F ffloat.Float[F, float32]](f F) {}
type Float[S any, B fast.Float] interface {
	Alone[S]
	BaseArithmetic[S, B]
	BaseComparison[S, B]

	// New builds an S from v. The receiver is ignored. For an FFloat this
	// is the New function, with its caller promise.
	New(v B) S

	// Take returns the value as B.
	Take() B
}

// Assigner is the compound assignment set, implemented by *FFloat,
// *Float32 and *Float64.
type Assigner[S any, B fast.Float] interface {
	AddAssign(n S)
	AddAssignFloat(n B)
	SubAssign(n S)
	SubAssignFloat(n B)
	MulAssign(n S)
	MulAssignFloat(n B)
	DivAssign(n S)
	DivAssignFloat(n B)
	RemAssign(n S)
	RemAssignFloat(n B)
}

// FloatPtr constrains a pointer to S that can be compound-assigned:
//
//	func scale[S Float[S, B], B float32|float64, P FloatPtr[S, B]](xs []S, by B) {
//		for i := range xs {
//			P(&xs[i]).MulAssignFloat(by)
//		}
//	}
type FloatPtr[S any, B fast.Float] interface {
	*S
	Assigner[S, B]
}
