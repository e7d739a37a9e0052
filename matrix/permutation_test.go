// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/matrix"
	"github.com/katalvlaran/densela/numeric"
)

func TestPermutationMatrix(t *testing.T) {
	p, err := matrix.PermutationMatrix(numeric.Int8, []int{2, 0, 1})
	require.NoError(t, err)
	AssertClose(t, [][]float64{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}}, p, 0)
	require.True(t, matrix.IsOrthogonal(p, 0))

	// P·A lists the rows of A in perm order
	a := MustDense(t, numeric.Int8, [][]float64{{1, 1}, {2, 2}, {3, 3}})
	AssertClose(t, [][]float64{{3, 3}, {1, 1}, {2, 2}}, MustMul(t, p, a), 0)

	for _, bad := range [][]int{nil, {0, 0}, {1, 2}, {-1, 0}} {
		_, err = matrix.PermutationMatrix(numeric.Int8, bad)
		AssertErrorIs(t, err, matrix.ErrInvalidPermutation)
	}
}

func TestRandomPermutation_Reproducible(t *testing.T) {
	p1, perm1, err := matrix.RandomPermutation(numeric.Float64, 6, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	p2, perm2, err := matrix.RandomPermutation(numeric.Float64, 6, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.Equal(t, perm1, perm2)
	AssertSame(t, p1, p2, 0)
	require.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5}, perm1)

	// a nil generator still yields a valid permutation
	p, perm, err := matrix.RandomPermutation(numeric.Decimal, 4, nil)
	require.NoError(t, err)
	require.Len(t, perm, 4)
	require.True(t, matrix.IsOrthogonal(p, 0))

	_, _, err = matrix.RandomPermutation(numeric.Float64, 0, nil)
	AssertErrorIs(t, err, matrix.ErrBadShape)
}

func TestPermutationSign(t *testing.T) {
	cases := []struct {
		perm []int
		want int
	}{
		{[]int{0, 1, 2}, 1},
		{[]int{1, 0, 2}, -1},
		{[]int{1, 2, 0}, 1},
		{[]int{3, 2, 1, 0}, 1},
		{[]int{0}, 1},
	}
	for _, tc := range cases {
		got, err := matrix.PermutationSign(tc.perm)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "%v", tc.perm)
	}
	_, err := matrix.PermutationSign([]int{0, 2})
	AssertErrorIs(t, err, matrix.ErrInvalidPermutation)
}

func TestPermutationSign_MatchesDeterminant(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 10; i++ {
		p, perm, err := matrix.RandomPermutation(numeric.Int64, 5, rng)
		require.NoError(t, err)
		sign, err := matrix.PermutationSign(perm)
		require.NoError(t, err)
		det, err := matrix.Determinant(p)
		require.NoError(t, err)
		require.Equal(t, int64(sign), det.Int64())
	}
}
