// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/matrix"
	"github.com/katalvlaran/densela/numeric"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(kind numeric.Kind, r, c int) matrix.Matrix {
		m, err := matrix.NewDense(kind, r, c)
		require.NoError(t, err)
		return m
	}
	var typedNil *matrix.Dense

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"typed nil", typedNil, zeros(numeric.Int8, 2, 2), matrix.ErrNilMatrix},
		{"zero value", &matrix.Dense{}, zeros(numeric.Int8, 2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(numeric.Int8, 2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(numeric.Float64, 2, 3), zeros(numeric.Float64, 2, 3), nil},
		{"row mismatch", zeros(numeric.Float64, 2, 3), zeros(numeric.Float64, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(numeric.Float64, 2, 3), zeros(numeric.Float64, 2, 4), matrix.ErrDimensionMismatch},
		{"kind mismatch", zeros(numeric.Float64, 2, 3), zeros(numeric.Decimal, 2, 3), matrix.ErrUnsupportedKind},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidateShapes(t *testing.T) {
	t.Parallel()

	sq := MustIdentity(t, numeric.Float64, 4)
	three := MustIdentity(t, numeric.Float64, 3)
	row := MustDense(t, numeric.Float64, [][]float64{{1, 2, 3, 4}})

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(row), matrix.ErrNonSquare)

	require.NoError(t, matrix.ValidatePowerOfTwo(sq))
	require.ErrorIs(t, matrix.ValidatePowerOfTwo(three), matrix.ErrNotPowerOfTwo)
	require.ErrorIs(t, matrix.ValidatePowerOfTwo(row), matrix.ErrNonSquare)

	require.NoError(t, matrix.ValidateVector(row))
	require.ErrorIs(t, matrix.ValidateVector(sq), matrix.ErrNotVector)

	require.NoError(t, matrix.ValidateMulCompatible(row, sq))
	require.ErrorIs(t, matrix.ValidateMulCompatible(sq, row), matrix.ErrDimensionMismatch)

	require.ErrorIs(t, matrix.ValidateSameKind(sq, MustIdentity(t, numeric.Int8, 4)), matrix.ErrUnsupportedKind)
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	near := MustDense(t, numeric.Float64, [][]float64{{1, 2}, {2 + 1e-12, 1}})
	require.NoError(t, matrix.ValidateSymmetric(near, 1e-10))
	err := matrix.ValidateSymmetric(near, 0)
	require.ErrorIs(t, err, matrix.ErrNotSymmetric)
	require.ErrorContains(t, err, "ValidateSymmetric")

	require.ErrorIs(t, matrix.ValidateSymmetric(nil, 0), matrix.ErrNilMatrix)
}
