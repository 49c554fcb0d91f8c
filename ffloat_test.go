package ffloat

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var f64 = NewF64

func TestNewReadsBack(t *testing.T) {
	for idx, v := range []float64{
		0, 1, -1, 0.1, 27, 42109, 1136943,
		math.MaxFloat64, -math.MaxFloat64, math.SmallestNonzeroFloat64,
	} {
		t.Run(fmt.Sprintf("%d/%v", idx, v), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(v, NewF64(v).Float())
			tt.MustEqual(v, New(v).Take())
			if math.Abs(v) <= math.MaxFloat32 {
				tt.MustEqual(float32(v), NewF32(float32(v)).Float())
			}
		})
	}
}

func TestNewChecked(t *testing.T) {
	tt := assert.WrapTB(t)

	v, err := NewChecked(2.5)
	tt.MustOK(err)
	tt.MustEqual(2.5, v.Float())

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		v, err := NewChecked(bad)
		tt.MustAssert(err != nil)
		tt.MustEqual(F64{}, v)

		ie, ok := err.(*InvariantError)
		tt.MustAssert(ok, "%T", err)
		tt.MustEqual("new", ie.Op)
	}

	_, err = NewChecked(float32(math.Inf(1)))
	tt.MustAssert(err != nil)
}

func TestMulScenario(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(1136943.0, f64(27).Mul(f64(42109)).Float())
	tt.MustEqual(1136943.0, f64(27).MulFloat(42109).Float())
	tt.MustEqual(float32(1136943), NewF32(27).MulFloat(42109).Float())
}

func TestAddScenario(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(4.0, f64(2).Add(f64(2)).Float())
}

func TestMulAssignScenario(t *testing.T) {
	tt := assert.WrapTB(t)
	f := f64(5)
	f.MulAssignFloat(7)
	tt.MustEqual(35.0, f.Float())
}

func TestArith(t *testing.T) {
	for idx, tc := range []struct {
		op   string
		a, b float64
		c    float64
	}{
		{"+", 2, 3, 5},
		{"+", -2, 2, 0},
		{"-", 2, 3, -1},
		{"-", 0.5, 0.25, 0.25},
		{"*", -4, 2.5, -10},
		{"/", 7, 2, 3.5},
		{"/", 1, -4, -0.25},
		{"%", 7, 2, 1},
		{"%", -7, 2, -1},
		{"%", 7, -2, 1},
		{"%", 5.5, 1.5, 1},
	} {
		t.Run(fmt.Sprintf("%d/%v%s%v=%v", idx, tc.a, tc.op, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			a, b := f64(tc.a), f64(tc.b)

			var wrapped, bare FFloat[float64]
			assigned, assignedF := a, a
			switch tc.op {
			case "+":
				wrapped, bare = a.Add(b), a.AddFloat(tc.b)
				assigned.AddAssign(b)
				assignedF.AddAssignFloat(tc.b)
			case "-":
				wrapped, bare = a.Sub(b), a.SubFloat(tc.b)
				assigned.SubAssign(b)
				assignedF.SubAssignFloat(tc.b)
			case "*":
				wrapped, bare = a.Mul(b), a.MulFloat(tc.b)
				assigned.MulAssign(b)
				assignedF.MulAssignFloat(tc.b)
			case "/":
				wrapped, bare = a.Div(b), a.DivFloat(tc.b)
				assigned.DivAssign(b)
				assignedF.DivAssignFloat(tc.b)
			case "%":
				wrapped, bare = a.Rem(b), a.RemFloat(tc.b)
				assigned.RemAssign(b)
				assignedF.RemAssignFloat(tc.b)
			}

			for _, r := range []F64{wrapped, bare, assigned, assignedF} {
				tt.MustAssert(math.Abs(tc.c-r.Float()) < 1e-12, "exp %v, got %v", tc.c, r)
			}
		})
	}
}

func TestRemLargeQuotient(t *testing.T) {
	for idx, tc := range []struct {
		a, b float64
	}{
		{1e17, 3},
		{1e300, 7},
		{math.MaxFloat64, 0.5},
		{1e300, 1e-300},
		{-1e300, 1e-300},
	} {
		t.Run(fmt.Sprintf("%d/%v%%%v", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			exp := math.Mod(tc.a, tc.b)
			tt.MustEqual(exp, f64(tc.a).Rem(f64(tc.b)).Float())
			tt.MustEqual(exp, f64(tc.a).RemFloat(tc.b).Float())
			tt.MustEqual(Float64(exp), Float64(tc.a).Rem(Float64(tc.b)))

			v := f64(tc.a)
			v.RemAssign(f64(tc.b))
			tt.MustEqual(exp, v.Float())
		})
	}

	tt := assert.WrapTB(t)
	tt.MustEqual(1.0, f64(1e17).Rem(f64(3)).Float())
	tt.MustEqual(float32(1), NewF32(1e10).RemFloat(3).Float())
	tt.MustEqual(Float32(1), Float32(1e10).RemFloat(3))
}

func TestNeg(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(-3.0, f64(3).Neg().Float())
	tt.MustEqual(3.0, f64(-3).Neg().Float())
	tt.MustAssert(math.Signbit(f64(0).Neg().Float()))
}

func TestCmp(t *testing.T) {
	for idx, tc := range []struct {
		a, b F64
		c    int
	}{
		{f64(1), f64(2), -1},
		{f64(2), f64(1), 1},
		{f64(2), f64(2), 0},
		{f64(-1), f64(1), -1},
		{f64(0), f64(negZero), 0},
		{f64(-math.MaxFloat64), f64(math.MaxFloat64), -1},
	} {
		t.Run(fmt.Sprintf("%d/%v<=>%v", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, tc.a.Cmp(tc.b))
			tt.MustEqual(tc.c, Compare(tc.a, tc.b))
			tt.MustEqual(tc.c == 0, tc.a.Equal(tc.b))
			tt.MustEqual(tc.c < 0, tc.a.LessThan(tc.b))
			tt.MustEqual(tc.c <= 0, tc.a.LessOrEqualTo(tc.b))
			tt.MustEqual(tc.c > 0, tc.a.GreaterThan(tc.b))
			tt.MustEqual(tc.c >= 0, tc.a.GreaterOrEqualTo(tc.b))

			b := tc.b.Float()
			cmp, ok := tc.a.CmpFloat(b)
			tt.MustAssert(ok)
			tt.MustEqual(tc.c, cmp)
			tt.MustEqual(tc.c == 0, tc.a.EqualFloat(b))
			tt.MustEqual(tc.c < 0, tc.a.LessThanFloat(b))
			tt.MustEqual(tc.c <= 0, tc.a.LessOrEqualToFloat(b))
			tt.MustEqual(tc.c > 0, tc.a.GreaterThanFloat(b))
			tt.MustEqual(tc.c >= 0, tc.a.GreaterOrEqualToFloat(b))
		})
	}
}

func TestCmpFloatNaN(t *testing.T) {
	tt := assert.WrapTB(t)
	_, ok := f64(1).CmpFloat(math.NaN())
	tt.MustAssert(!ok)
	tt.MustAssert(!f64(1).EqualFloat(math.NaN()))
	tt.MustAssert(!f64(1).LessThanFloat(math.NaN()))
	tt.MustAssert(!f64(1).GreaterOrEqualToFloat(math.NaN()))
}

func TestTotalOrder(t *testing.T) {
	tt := assert.WrapTB(t)

	vals := make([]F64, 300)
	for i := range vals {
		vals[i] = f64(randFinite(globalRNG, 60))
	}
	vals = append(vals, f64(0), f64(negZero), vals[0], vals[1])

	for _, a := range vals {
		for _, b := range vals {
			n := 0
			if a.LessThan(b) {
				n++
			}
			if a.Equal(b) {
				n++
			}
			if a.GreaterThan(b) {
				n++
			}
			tt.MustEqual(1, n, "trichotomy failed for %v, %v", a, b)
			tt.MustEqual(-a.Cmp(b), b.Cmp(a))
		}
	}

	sorted := append([]F64(nil), vals...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })
	for i := 1; i < len(sorted); i++ {
		tt.MustAssert(sorted[i-1].LessOrEqualTo(sorted[i]))
		for j := i + 1; j < len(sorted); j += 17 {
			// a <= b and b <= c implies a <= c
			tt.MustAssert(sorted[i-1].LessOrEqualTo(sorted[j]))
		}
	}
}

func TestIsZeroSign(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(f64(0).IsZero())
	tt.MustAssert(f64(negZero).IsZero())
	tt.MustAssert(!f64(1).IsZero())
	tt.MustEqual(0, f64(negZero).Sign())
	tt.MustEqual(-1, f64(-0.5).Sign())
	tt.MustEqual(1, f64(0.5).Sign())
}

func TestZeroValueIsValid(t *testing.T) {
	tt := assert.WrapTB(t)
	var f F64
	tt.MustEqual(1.0, f.AddFloat(1).Float())
	tt.MustEqual(f64(0), f)
}

func TestFormat(t *testing.T) {
	for idx, tc := range []struct {
		f   interface{}
		fmt string
		out string
	}{
		{f64(35), "%v", "35"},
		{f64(1.5), "%s", "%!s(float64=1.5)"},
		{f64(1.5), "%.3f", "1.500"},
		{f64(-2), "%+g", "-2"},
		{f64(1136943), "%e", "1.136943e+06"},
		{NewF32(0.1), "%v", "0.1"},
		{f64(12), "%6.1f", "  12.0"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.fmt), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, fmt.Sprintf(tc.fmt, tc.f))
		})
	}
}

func TestString(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("35", f64(35).String())
	tt.MustEqual("0.1", NewF32(0.1).String())
	tt.MustEqual("-0", f64(negZero).String())
}
