package ffloat

import (
	"github.com/shabbyrobe/go-ffloat/fast"
)

// Cmp compares f and n and returns -1, 0 or +1. The order is total: with
// NaN excluded every pair of values is ordered, and -0 compares equal to +0.
func (f FFloat[T]) Cmp(n FFloat[T]) int {
	f.check("cmp")
	if f.v < n.v {
		return -1
	} else if f.v > n.v {
		return 1
	}
	return 0
}

// CmpFloat compares f with a bare value. ok is false if and only if n is
// NaN, in which case there is no order.
func (f FFloat[T]) CmpFloat(n T) (cmp int, ok bool) {
	f.check("cmp")
	if f.v < n {
		return -1, true
	} else if f.v > n {
		return 1, true
	} else if f.v == n {
		return 0, true
	}
	return 0, false
}

// Compare is FFloat.Cmp as a function, for use with slices.SortFunc and
// friends.
func Compare[T fast.Float](a, b FFloat[T]) int {
	return a.Cmp(b)
}

func (f FFloat[T]) Equal(n FFloat[T]) bool {
	f.check("equal")
	return f.v == n.v
}

func (f FFloat[T]) EqualFloat(n T) bool {
	f.check("equal")
	return f.v == n
}

func (f FFloat[T]) GreaterThan(n FFloat[T]) bool {
	f.check("gt")
	return f.v > n.v
}

func (f FFloat[T]) GreaterThanFloat(n T) bool {
	f.check("gt")
	return f.v > n
}

func (f FFloat[T]) GreaterOrEqualTo(n FFloat[T]) bool {
	f.check("gte")
	return f.v >= n.v
}

func (f FFloat[T]) GreaterOrEqualToFloat(n T) bool {
	f.check("gte")
	return f.v >= n
}

func (f FFloat[T]) LessThan(n FFloat[T]) bool {
	f.check("lt")
	return f.v < n.v
}

func (f FFloat[T]) LessThanFloat(n T) bool {
	f.check("lt")
	return f.v < n
}

func (f FFloat[T]) LessOrEqualTo(n FFloat[T]) bool {
	f.check("lte")
	return f.v <= n.v
}

func (f FFloat[T]) LessOrEqualToFloat(n T) bool {
	f.check("lte")
	return f.v <= n
}
