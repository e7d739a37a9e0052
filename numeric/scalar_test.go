// SPDX-License-Identifier: MIT

package numeric_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/numeric"
)

func TestScalarRoundTrip(t *testing.T) {
	s := numeric.Of(int16(-7))
	require.Equal(t, numeric.Int16, s.Kind())
	v, err := numeric.Value[int16](s)
	require.NoError(t, err)
	require.Equal(t, int16(-7), v)

	_, err = numeric.Value[int32](s)
	require.ErrorIs(t, err, numeric.ErrUnsupportedKind)

	d := numeric.Of(numeric.MustDec("1.25"))
	require.Equal(t, "1.25", d.String())
	require.InDelta(t, 1.25, d.Float64(), 0)
}

func TestScalarConvert(t *testing.T) {
	s, err := numeric.FromFloat64(numeric.Int8, 300.7)
	require.NoError(t, err)
	require.Equal(t, int64(44), s.Int64())

	s, err = numeric.FromFloat64(numeric.Decimal, 0.1)
	require.NoError(t, err)
	require.Equal(t, "0.1", s.String())

	s, err = numeric.Convert(numeric.Of(int64(9)), numeric.Float32)
	require.NoError(t, err)
	require.Equal(t, numeric.Float32, s.Kind())
	require.Equal(t, "9", s.String())

	one, err := numeric.One(numeric.Decimal)
	require.NoError(t, err)
	require.Equal(t, "1", one.String())

	zero, err := numeric.Zero(numeric.Float64)
	require.NoError(t, err)
	require.True(t, zero.IsZero())

	_, err = numeric.FromInt64(numeric.Invalid, 1)
	require.ErrorIs(t, err, numeric.ErrUnsupportedKind)
}

func TestScalarKernel(t *testing.T) {
	a, b := numeric.Of(int64(7)), numeric.Of(int64(2))

	sum, err := numeric.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, int64(9), sum.Int64())

	diff, err := numeric.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, int64(5), diff.Int64())

	prod, err := numeric.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, int64(14), prod.Int64())

	quo, err := numeric.Div(a, b)
	require.NoError(t, err)
	require.Equal(t, int64(3), quo.Int64())

	neg, err := numeric.Neg(a)
	require.NoError(t, err)
	abs, err := numeric.Abs(neg)
	require.NoError(t, err)
	eq, err := numeric.Equal(abs, a)
	require.NoError(t, err)
	require.True(t, eq)

	c, err := numeric.Cmp(b, a)
	require.NoError(t, err)
	require.Equal(t, -1, c)

	r, err := numeric.Sqrt(numeric.Of(int64(50)))
	require.NoError(t, err)
	require.Equal(t, int64(7), r.Int64())

	p, err := numeric.Pow(numeric.Of(3.0), 3)
	require.NoError(t, err)
	require.InDelta(t, 27.0, p.Float64(), 0)

	r, err = numeric.NthRoot(numeric.Of(float32(8)), 3)
	require.NoError(t, err)
	require.InDelta(t, 2.0, r.Float64(), 1e-6)
}

func TestScalarKernelErrors(t *testing.T) {
	_, err := numeric.Add(numeric.Of(int8(1)), numeric.Of(int16(1)))
	require.ErrorIs(t, err, numeric.ErrUnsupportedKind)

	_, err = numeric.Div(numeric.Of(int64(1)), numeric.Of(int64(0)))
	require.ErrorIs(t, err, numeric.ErrDivisionByZero)
	require.True(t, errors.Is(err, numeric.ErrArithmetic))

	_, err = numeric.Div(numeric.Of(numeric.DecFromInt64(1)), numeric.Of(numeric.Dec{}))
	require.ErrorIs(t, err, numeric.ErrDivisionByZero)

	inf, err := numeric.Div(numeric.Of(1.0), numeric.Of(0.0))
	require.NoError(t, err)
	require.Greater(t, inf.Float64(), 1e308)

	_, err = numeric.Neg(numeric.Scalar{})
	require.ErrorIs(t, err, numeric.ErrUnsupportedKind)

	_, err = numeric.Equal(numeric.Of(1.0), numeric.Of(float32(1)))
	require.ErrorIs(t, err, numeric.ErrUnsupportedKind)
}
