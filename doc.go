/*
Package ffloat provides FFloat, a float32 or float64 wrapper that is never
NaN or Inf and that does its arithmetic through package fast.

Excluding NaN buys properties a bare float lacks: FFloat is totally ordered
(Cmp never has to report "unordered"), Equal is reflexive, and Hash is
consistent with Equal, -0 and +0 included. It is a value type; all
operations return new values, and the compound assignment methods on
*FFloat replace the held value.

Simple example:

	f := ffloat.NewF64(5)
	f.MulAssignFloat(7)
	fmt.Println(f)
	// Output: 35

The invariant is a promise made by the caller of New, not something the
type system enforces. What happens when the promise is broken depends on
the build:

	default              strict: every construction and every operation
	                     validates, and a NaN or Inf panics with an
	                     *InvariantError naming the value.
	-tags ffloat_fast    fast: nothing is validated; an FFloat holding NaN
	                     or Inf is out of contract and every result derived
	                     from it is unspecified.

NewChecked, FromFloats and the unmarshallers always validate and return an
error instead.

FFloat[T] has the same size, alignment and bit pattern as T:

	Floats(fs []FFloat[T]) []T
	FromFloats(vs []T) ([]FFloat[T], error)

reinterpret slices in place.

Generic code that should run over both plain floats and FFloat accepts the
Float interface:

	func halve[F ffloat.Float[F, float64]](f F) F { return f.DivFloat(2) }

	halve(ffloat.Float64(3))
	halve(ffloat.NewF64(3))

FFloat supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package ffloat
