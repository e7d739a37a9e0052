// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the arithmetic API.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/matrix"
	"github.com/katalvlaran/densela/numeric"
)

func TestElementwise_AllKinds(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			a := MustDense(t, kind, [][]float64{{1, 2}, {3, 4}})
			b := MustDense(t, kind, [][]float64{{5, 6}, {7, 8}})

			sum, err := matrix.Add(a, b)
			require.NoError(t, err)
			require.Equal(t, kind, sum.Kind())
			AssertClose(t, [][]float64{{6, 8}, {10, 12}}, sum, 0)

			diff, err := matrix.Sub(a, b)
			require.NoError(t, err)
			AssertClose(t, [][]float64{{-4, -4}, {-4, -4}}, diff, 0)

			h, err := matrix.Hadamard(a, b)
			require.NoError(t, err)
			AssertClose(t, [][]float64{{5, 12}, {21, 32}}, h, 0)

			two, err := numeric.FromInt64(kind, 2)
			require.NoError(t, err)
			s, err := matrix.Scale(a, two)
			require.NoError(t, err)
			AssertClose(t, [][]float64{{2, 4}, {6, 8}}, s, 0)

			// inputs are untouched
			AssertClose(t, [][]float64{{1, 2}, {3, 4}}, a, 0)
		})
	}
}

func TestElementwise_Errors(t *testing.T) {
	a := MustDense(t, numeric.Float64, [][]float64{{1, 2}})
	_, err := matrix.Add(a, MustDense(t, numeric.Float64, [][]float64{{1}, {2}}))
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorContains(t, err, "Add:")

	_, err = matrix.Sub(a, MustDense(t, numeric.Int64, [][]float64{{1, 2}}))
	AssertErrorIs(t, err, matrix.ErrUnsupportedKind)

	_, err = matrix.Hadamard(nil, a)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Scale(a, numeric.Of(int8(2)))
	AssertErrorIs(t, err, matrix.ErrUnsupportedKind)
}

func TestIntegerWrap(t *testing.T) {
	a := MustDense(t, numeric.Int8, [][]float64{{100}})
	sum, err := matrix.Add(a, a)
	require.NoError(t, err)
	require.Equal(t, -56.0, MustAt(t, sum, 0, 0), "int8 arithmetic wraps")
}

func TestTranspose(t *testing.T) {
	m := MustDense(t, numeric.Int16, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	AssertClose(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr, 0)
}

func TestMul(t *testing.T) {
	a := MustDense(t, numeric.Int64, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustDense(t, numeric.Int64, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, numeric.Int64, p.Kind())
	AssertClose(t, [][]float64{{58, 64}, {139, 154}}, p, 0)

	col := MustDense(t, numeric.Int64, [][]float64{{1}, {0}, {-1}})
	mv, err := matrix.Mul(a, col)
	require.NoError(t, err)
	AssertClose(t, [][]float64{{-2}, {-2}}, mv, 0)

	row := MustDense(t, numeric.Int64, [][]float64{{1, -1}})
	vm, err := matrix.Mul(row, a)
	require.NoError(t, err)
	AssertClose(t, [][]float64{{-3, -3, -3}}, vm, 0)

	one := MustDense(t, numeric.Int64, [][]float64{{3}})
	s, err := matrix.Mul(one, one)
	require.NoError(t, err)
	AssertClose(t, [][]float64{{9}}, s, 0)
}

func TestMul_Errors(t *testing.T) {
	a := MustDense(t, numeric.Float64, [][]float64{{1, 2}, {3, 4}})
	_, err := matrix.Mul(a, MustDense(t, numeric.Float64, [][]float64{{1, 2, 3}}))
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)

	row := MustDense(t, numeric.Float64, [][]float64{{1, 2}})
	col := MustDense(t, numeric.Float64, [][]float64{{3}, {4}})
	_, err = matrix.Mul(row, col)
	AssertErrorIs(t, err, matrix.ErrVectorProduct)
	AssertErrorIs(t, err, matrix.ErrUnsupportedOperation)

	_, err = matrix.Mul(a, MustDense(t, numeric.Decimal, [][]float64{{1}, {2}}))
	AssertErrorIs(t, err, matrix.ErrUnsupportedKind)
}

func TestDot(t *testing.T) {
	row := MustDense(t, numeric.Decimal, [][]float64{{0.1, 0.2}})
	col := MustDense(t, numeric.Decimal, [][]float64{{0.1}, {0.2}})
	d, err := matrix.Dot(row, col)
	require.NoError(t, err)
	require.Equal(t, "0.05", d.String(), "decimal dot is exact")

	_, err = matrix.Dot(row, MustDense(t, numeric.Decimal, [][]float64{{1, 2, 3}}))
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Dot(MustIdentity(t, numeric.Decimal, 2), col)
	AssertErrorIs(t, err, matrix.ErrNotVector)
}

func TestTrace(t *testing.T) {
	tr, err := matrix.Trace(MustDense(t, numeric.Int32, [][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	require.Equal(t, numeric.Int32, tr.Kind())
	require.Equal(t, int64(5), tr.Int64())

	_, err = matrix.Trace(MustDense(t, numeric.Int32, [][]float64{{1, 2}}))
	AssertErrorIs(t, err, matrix.ErrNonSquare)
}

func TestPower(t *testing.T) {
	fib := MustDense(t, numeric.Int64, [][]float64{{1, 1}, {1, 0}})
	p, err := matrix.Power(fib, 10)
	require.NoError(t, err)
	require.Equal(t, numeric.Int64, p.Kind())
	AssertClose(t, [][]float64{{89, 55}, {55, 34}}, p, 0)

	id, err := matrix.Power(fib, 0)
	require.NoError(t, err)
	require.True(t, matrix.IsIdentity(id))

	inv2, err := matrix.Power(MustDense(t, numeric.Float64, [][]float64{{2, 0}, {0, 4}}), -2)
	require.NoError(t, err)
	AssertClose(t, [][]float64{{0.25, 0}, {0, 1.0 / 16}}, inv2, tol)

	_, err = matrix.Power(MustDense(t, numeric.Float64, [][]float64{{1, 2}, {2, 4}}), -1)
	AssertErrorIs(t, err, matrix.ErrSingular)
}

func TestFrobeniusNorm(t *testing.T) {
	n, err := matrix.FrobeniusNorm(MustDense(t, numeric.Int8, [][]float64{{3, 4}}))
	require.NoError(t, err)
	require.Equal(t, 5.0, n)

	n, err = matrix.FrobeniusNorm(MustIdentity(t, numeric.Decimal, 4))
	require.NoError(t, err)
	require.Equal(t, 2.0, n)
}

func TestMul_FloatKeepsNonFinite(t *testing.T) {
	a := MustDense(t, numeric.Float64, [][]float64{{0, 1}, {1, 0}})
	b := MustDense(t, numeric.Float64, [][]float64{{math.Inf(1), 0}, {0, 1}})
	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.True(t, math.IsNaN(p.Float64At(0, 0)), "0·Inf + 1·0 is NaN")
	require.True(t, math.IsInf(p.Float64At(1, 0), 1))

	d, err := matrix.Determinant(MustDense(t, numeric.Float64, [][]float64{{0, 1, 0}, {1, math.Inf(1), 0}, {0, 0, 1}}))
	require.NoError(t, err)
	require.True(t, math.IsNaN(d.Float64()), "0·det(minor) with an infinite minor is NaN")

	// integer kinds still skip zeros and stay exact
	ai := MustDense(t, numeric.Int64, [][]float64{{0, 1}, {1, 0}})
	p, err = matrix.Mul(ai, MustDense(t, numeric.Int64, [][]float64{{7, 0}, {0, 1}}))
	require.NoError(t, err)
	AssertClose(t, [][]float64{{0, 1}, {7, 0}}, p, 0)
}
