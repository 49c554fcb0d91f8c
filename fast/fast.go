// Package fast provides the reduced-guarantee float arithmetic that ffloat
// builds on.
//
// None of these functions handle NaN or Inf. Passing either, or producing
// either, leaves the result unspecified; callers are expected to have ruled
// that out already. Bad is the only function here that is safe to call on
// any value.
package fast

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"

	"golang.org/x/exp/constraints"
)

// Float is satisfied by any floating point representation.
type Float interface {
	constraints.Float
}

// Width returns the bit width of T, either 32 or 64.
func Width[T Float]() int {
	var v T
	return int(unsafe.Sizeof(v)) * 8
}

func is32[T Float]() bool {
	var v T
	return unsafe.Sizeof(v) == 4
}

func Add[T Float](a, b T) T { return a + b }
func Sub[T Float](a, b T) T { return a - b }
func Mul[T Float](a, b T) T { return a * b }
func Div[T Float](a, b T) T { return a / b }

// Rem returns the remainder of a/b with the sign of a, as math.Mod does.
// The result is exact however large the quotient.
func Rem[T Float](a, b T) T {
	return binary(a, b, math32.Mod, math.Mod)
}
