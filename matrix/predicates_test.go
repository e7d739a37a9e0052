// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/matrix"
	"github.com/katalvlaran/densela/numeric"
)

func TestPredicates(t *testing.T) {
	var nilDense *matrix.Dense
	diag := MustDense(t, numeric.Int64, [][]float64{{2, 0}, {0, 3}})
	upper := MustDense(t, numeric.Float64, [][]float64{{1, 2}, {0, 3}})
	sym := MustDense(t, numeric.Decimal, [][]float64{{1, 0.1}, {0.1, 5}})
	row := MustDense(t, numeric.Int8, [][]float64{{1, 2, 3}})

	cases := []struct {
		name string
		fn   func(*matrix.Dense) bool
		yes  []*matrix.Dense
		no   []*matrix.Dense
	}{
		{"square", matrix.IsSquare, []*matrix.Dense{diag, sym}, []*matrix.Dense{row, nilDense}},
		{"vector", matrix.IsVector, []*matrix.Dense{row, MustTranspose(t, row)}, []*matrix.Dense{diag, nilDense}},
		{"identity", matrix.IsIdentity, []*matrix.Dense{MustIdentity(t, numeric.Float32, 3)}, []*matrix.Dense{diag, row, nilDense}},
		{"diagonal", matrix.IsDiagonal, []*matrix.Dense{diag, MustIdentity(t, numeric.Decimal, 2)}, []*matrix.Dense{upper, sym}},
		{"symmetric", matrix.IsSymmetric, []*matrix.Dense{diag, sym}, []*matrix.Dense{upper, row}},
		{"upper", matrix.IsUpperTriangular, []*matrix.Dense{diag, upper}, []*matrix.Dense{sym, MustTranspose(t, upper)}},
		{"lower", matrix.IsLowerTriangular, []*matrix.Dense{diag, MustTranspose(t, upper)}, []*matrix.Dense{upper, row}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for i, m := range tc.yes {
				require.True(t, tc.fn(m), "yes[%d]", i)
			}
			for i, m := range tc.no {
				require.False(t, tc.fn(m), "no[%d]", i)
			}
		})
	}
}

func TestIsOrthogonal(t *testing.T) {
	c, s := math.Cos(0.3), math.Sin(0.3)
	rot := MustDense(t, numeric.Float64, [][]float64{{c, -s}, {s, c}})
	require.True(t, matrix.IsOrthogonal(rot, 1e-12))
	require.True(t, matrix.IsOrthogonal(MustIdentity(t, numeric.Int16, 3), 0))
	require.False(t, matrix.IsOrthogonal(MustDense(t, numeric.Float64, [][]float64{{1, 1}, {0, 1}}), 1e-6))
	require.False(t, matrix.IsOrthogonal(MustDense(t, numeric.Float64, [][]float64{{1, 0}}), 1))
}

func TestEqualApprox(t *testing.T) {
	a := MustDense(t, numeric.Float64, [][]float64{{1, 2}, {3, 4}})
	b := MustDense(t, numeric.Float64, [][]float64{{1, 2}, {3, 4 + 1e-9}})
	require.True(t, matrix.EqualApprox(a, b, 1e-8))
	require.False(t, matrix.EqualApprox(a, b, 1e-10))

	// kinds may differ
	require.True(t, matrix.EqualApprox(a, MustDense(t, numeric.Int32, [][]float64{{1, 2}, {3, 4}}), 0))
	wide := MustDense(t, numeric.Float64, [][]float64{{1, 2, 3}})
	require.False(t, matrix.EqualApprox(wide, MustTranspose(t, wide), 10), "shape matters")
	require.False(t, matrix.EqualApprox(a, nil, 1))
}
