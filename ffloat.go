package ffloat

import (
	"fmt"

	"github.com/shabbyrobe/go-ffloat/fast"
)

// FFloat is a float that is never NaN and never infinite, and whose
// arithmetic goes through package fast.
//
// Nothing in the type system enforces that. The invariant is a promise made
// by whoever calls New, and every operation re-checks it in strict mode
// (see Mode). Because NaN is excluded FFloat is totally ordered, and
// because -0 and +0 hash alike it is safe to use as a key.
//
// An FFloat[T] has exactly the size, alignment and bit pattern of T. Code
// may rely on this to reinterpret memory between the two; see Floats and
// FromFloats.
//
// The zero value holds 0 and is valid.
type FFloat[T fast.Float] struct {
	v T
}

type (
	F32 = FFloat[float32]
	F64 = FFloat[float64]
)

// New wraps v.
//
// The caller promises that v is neither NaN nor Inf, and that nothing the
// program goes on to do with the result will produce NaN or Inf. In strict
// mode a broken promise panics with an *InvariantError naming the value,
// either here or at the first operation that sees it. In fast mode it is
// not detected and every later result is unspecified.
//
// Use NewChecked where v comes from somewhere that has not already been
// validated.
func New[T fast.Float](v T) FFloat[T] {
	return wrap("new", v)
}

func NewF32(v float32) F32 { return wrap("new", v) }
func NewF64(v float64) F64 { return wrap("new", v) }

// NewChecked wraps v if it is neither NaN nor Inf, and otherwise returns an
// *InvariantError. It validates in every Mode.
func NewChecked[T fast.Float](v T) (out FFloat[T], err error) {
	if fast.Bad(v) {
		return out, &InvariantError{Value: float64(v), Op: "new"}
	}
	return FFloat[T]{v: v}, nil
}

func wrap[T fast.Float](op string, v T) FFloat[T] {
	f := FFloat[T]{v: v}
	f.check(op)
	return f
}

func (f FFloat[T]) check(op string) {
	if checked && fast.Bad(f.v) {
		violation(op, float64(f.v))
	}
}

// Float returns the wrapped value. It never validates.
func (f FFloat[T]) Float() T { return f.v }

func (f FFloat[T]) IsZero() bool {
	f.check("iszero")
	return f.v == 0
}

// Sign returns -1, 0 or 1. Both zeros return 0.
func (f FFloat[T]) Sign() int {
	f.check("sign")
	if f.v < 0 {
		return -1
	} else if f.v > 0 {
		return 1
	}
	return 0
}

func (f FFloat[T]) String() string {
	return fmt.Sprint(f.v)
}

func (f FFloat[T]) Format(s fmt.State, c rune) {
	fmt.Fprintf(s, fmt.FormatString(s, c), f.v)
}

func (f FFloat[T]) Add(n FFloat[T]) FFloat[T] {
	f.check("add")
	return wrap("add", fast.Add(f.v, n.v))
}

func (f FFloat[T]) AddFloat(n T) FFloat[T] {
	f.check("add")
	return wrap("add", fast.Add(f.v, n))
}

func (f FFloat[T]) Sub(n FFloat[T]) FFloat[T] {
	f.check("sub")
	return wrap("sub", fast.Sub(f.v, n.v))
}

func (f FFloat[T]) SubFloat(n T) FFloat[T] {
	f.check("sub")
	return wrap("sub", fast.Sub(f.v, n))
}

func (f FFloat[T]) Mul(n FFloat[T]) FFloat[T] {
	f.check("mul")
	return wrap("mul", fast.Mul(f.v, n.v))
}

func (f FFloat[T]) MulFloat(n T) FFloat[T] {
	f.check("mul")
	return wrap("mul", fast.Mul(f.v, n))
}

// Div divides f by n. A zero divisor produces Inf or NaN and so breaks the
// invariant.
func (f FFloat[T]) Div(n FFloat[T]) FFloat[T] {
	f.check("div")
	return wrap("div", fast.Div(f.v, n.v))
}

func (f FFloat[T]) DivFloat(n T) FFloat[T] {
	f.check("div")
	return wrap("div", fast.Div(f.v, n))
}

// Rem returns the remainder of f/n with the sign of f, as math.Mod does.
func (f FFloat[T]) Rem(n FFloat[T]) FFloat[T] {
	f.check("rem")
	return wrap("rem", fast.Rem(f.v, n.v))
}

func (f FFloat[T]) RemFloat(n T) FFloat[T] {
	f.check("rem")
	return wrap("rem", fast.Rem(f.v, n))
}

func (f FFloat[T]) Neg() FFloat[T] {
	f.check("neg")
	return wrap("neg", -f.v)
}

func (f *FFloat[T]) AddAssign(n FFloat[T]) { *f = f.Add(n) }
func (f *FFloat[T]) AddAssignFloat(n T)    { *f = f.AddFloat(n) }
func (f *FFloat[T]) SubAssign(n FFloat[T]) { *f = f.Sub(n) }
func (f *FFloat[T]) SubAssignFloat(n T)    { *f = f.SubFloat(n) }
func (f *FFloat[T]) MulAssign(n FFloat[T]) { *f = f.Mul(n) }
func (f *FFloat[T]) MulAssignFloat(n T)    { *f = f.MulFloat(n) }
func (f *FFloat[T]) DivAssign(n FFloat[T]) { *f = f.Div(n) }
func (f *FFloat[T]) DivAssignFloat(n T)    { *f = f.DivFloat(n) }
func (f *FFloat[T]) RemAssign(n FFloat[T]) { *f = f.Rem(n) }
func (f *FFloat[T]) RemAssignFloat(n T)    { *f = f.RemFloat(n) }
