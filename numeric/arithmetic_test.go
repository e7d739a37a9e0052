// SPDX-License-Identifier: MIT

package numeric_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/numeric"
)

func TestIntegerRoots(t *testing.T) {
	i64 := numeric.For[int64]()
	cases := []struct {
		x, want int64
		n       int
	}{
		{0, 0, 2},
		{1, 1, 2},
		{17, 4, 2},
		{16, 4, 2},
		{27, 3, 3},
		{26, 2, 3},
		{math.MaxInt64, 3037000499, 2},
		{1 << 62, 1 << 31, 2},
		{math.MaxInt64, 1, 64},
	}
	for _, tc := range cases {
		got, err := i64.NthRoot(tc.x, tc.n)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "root(%d, %d)", tc.x, tc.n)
	}

	i8 := numeric.For[int8]()
	got, err := i8.NthRoot(127, 8)
	require.NoError(t, err)
	require.Equal(t, int8(1), got)

	_, err = i8.Sqrt(-4)
	require.ErrorIs(t, err, numeric.ErrNegativeRadicand)
	require.True(t, errors.Is(err, numeric.ErrArithmetic))
	_, err = i8.NthRoot(4, 0)
	require.ErrorIs(t, err, numeric.ErrInvalidRoot)
}

func TestFloatRoots(t *testing.T) {
	f64 := numeric.For[float64]()
	got, err := f64.Sqrt(2)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt2, got, 1e-15)

	got, err = f64.NthRoot(1e-300, 3)
	require.NoError(t, err)
	require.InEpsilon(t, 1e-100, got, 1e-12)

	f32 := numeric.For[float32]()
	g32, err := f32.NthRoot(81, 4)
	require.NoError(t, err)
	require.InDelta(t, 3, float64(g32), 1e-6)

	_, err = f64.Sqrt(-1)
	require.ErrorIs(t, err, numeric.ErrNegativeRadicand)
}

func TestDecimalArithmetic(t *testing.T) {
	d := numeric.For[numeric.Dec]()
	sum := d.Add(numeric.MustDec("0.1"), numeric.MustDec("0.2"))
	require.True(t, d.Equal(sum, numeric.MustDec("0.3")), sum.String())
	require.Equal(t, "0.3", sum.String())

	q := d.Div(d.One(), d.FromInt64(3))
	require.Equal(t, "0.3333333333333333333333333333333333", q.String())

	require.Equal(t, -1, d.Cmp(d.Neg(d.One()), d.Zero()))
	require.Equal(t, "2.5", d.Abs(numeric.MustDec("-2.5")).String())
	require.InDelta(t, 2.5, d.Float64(numeric.MustDec("2.5")), 0)
	require.Equal(t, "0.1", d.FromFloat64(0.1).String())
	require.True(t, d.IsZero(numeric.Dec{}))
}

func TestDecimalRoots(t *testing.T) {
	d := numeric.For[numeric.Dec]()
	tol := numeric.MustDec("1e-30")

	for _, lit := range []string{"2", "1e-5", "123456789012345678901234567890", "0.25"} {
		x := numeric.MustDec(lit)
		r, err := d.Sqrt(x)
		require.NoError(t, err, lit)
		diff := d.Abs(d.Sub(d.Mul(r, r), x))
		rel := d.Div(diff, x)
		require.True(t, d.Cmp(rel, tol) <= 0, "sqrt(%s)=%s", lit, r)
	}

	r, err := d.NthRoot(d.FromInt64(27), 3)
	require.NoError(t, err)
	require.InDelta(t, 3, r.Float64(), 1e-12)

	_, err = d.Sqrt(numeric.MustDec("-1"))
	require.ErrorIs(t, err, numeric.ErrNegativeRadicand)
}

func TestDecimalPrecision(t *testing.T) {
	d := numeric.NewDecimal(5)
	q := d.Div(d.One(), d.FromInt64(3))
	require.Equal(t, "0.33333", q.String())
}

func TestDecStringDropsTrailingZeros(t *testing.T) {
	require.Equal(t, "2.5", numeric.MustDec("2.500").String())
	require.Equal(t, "100", numeric.MustDec("100").String())
	require.Equal(t, "100", numeric.MustDec("1E+2").String())
	require.Equal(t, "0", numeric.MustDec("0.000").String())

	d := numeric.NewDecimal(10)
	require.Equal(t, "0.5", d.Div(d.One(), d.FromInt64(2)).String())
}

func TestPow(t *testing.T) {
	i64 := numeric.For[int64]()
	v, err := i64.Pow(2, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1024), v)

	v, err = i64.Pow(2, -1)
	require.NoError(t, err)
	require.Equal(t, int64(0), v)

	v, err = i64.Pow(-1, -3)
	require.NoError(t, err)
	require.Equal(t, int64(-1), v)

	_, err = i64.Pow(0, 0)
	require.ErrorIs(t, err, numeric.ErrZeroPower)

	// 2^8 wraps to 0 in int8; the reciprocal truncates to 0 instead of dividing by zero.
	i8 := numeric.For[int8]()
	w, err := i8.Pow(2, -8)
	require.NoError(t, err)
	require.Equal(t, int8(0), w)

	s, err := numeric.Pow(numeric.Of(int8(2)), -8)
	require.NoError(t, err)
	require.Equal(t, int64(0), s.Int64())
	require.Equal(t, numeric.Int8, s.Kind())

	f64 := numeric.For[float64]()
	f, err := f64.Pow(2, -2)
	require.NoError(t, err)
	require.Equal(t, 0.25, f)

	d := numeric.For[numeric.Dec]()
	p, err := d.Pow(numeric.MustDec("1.5"), 3)
	require.NoError(t, err)
	require.Equal(t, "3.375", p.String())
}

func TestIntegerWrap(t *testing.T) {
	i8 := numeric.For[int8]()
	require.Equal(t, int8(-128), i8.Add(127, 1))
	require.Equal(t, int8(12), i8.FromFloat64(12.9))
	require.Equal(t, int8(-12), i8.FromFloat64(-12.9))
}
