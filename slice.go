package ffloat

import (
	"unsafe"

	"github.com/shabbyrobe/go-ffloat/fast"
)

// Floats returns fs viewed as a []T. No copy is made; writes through either
// slice are visible in the other. Writing NaN or Inf through the returned
// slice breaks the invariant of the corresponding FFloat.
func Floats[T fast.Float](fs []FFloat[T]) []T {
	if len(fs) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&fs[0])), len(fs))
}

// FromFloats returns vs viewed as a []FFloat[T] after checking every
// element. No copy is made. The returned error is the *InvariantError for
// the first bad element; the returned slice is nil in that case.
func FromFloats[T fast.Float](vs []T) ([]FFloat[T], error) {
	for _, v := range vs {
		if fast.Bad(v) {
			return nil, &InvariantError{Value: float64(v), Op: "fromfloats"}
		}
	}
	return FromFloatsUnchecked(vs), nil
}

// FromFloatsUnchecked is FromFloats without the validation. It carries the
// same caller promise as New, for every element.
func FromFloatsUnchecked[T fast.Float](vs []T) []FFloat[T] {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice((*FFloat[T])(unsafe.Pointer(&vs[0])), len(vs))
}
