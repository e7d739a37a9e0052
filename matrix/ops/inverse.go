// SPDX-License-Identifier: MIT

package ops

import (
	"github.com/katalvlaran/densela/matrix"
	"github.com/katalvlaran/densela/numeric"
)

// Determinant computes det(m) with the named method: cofactor (exact, native
// kind), lu/lup, or one of the QR strategies.
func Determinant(method string, m *matrix.Dense) (numeric.Scalar, error) {
	key := canonical(method)
	switch key {
	case MethodCofactor:
		return matrix.Determinant(m)
	case MethodLU, MethodLUP:
		return matrix.DeterminantLU(m)
	}
	if qm, ok := qrMethod(key); ok {
		return matrix.DeterminantQR(m, qm)
	}

	return numeric.Scalar{}, unknown("Determinant", method)
}

// Inverse inverts m with the named method: comatrix, gaussjordan, lu or lup.
// opts reach the Gauss-Jordan logger.
func Inverse(method string, m *matrix.Dense, opts ...matrix.Option) (*matrix.Dense, error) {
	switch canonical(method) {
	case MethodComatrix:
		return matrix.InverseComatrix(m)
	case MethodGaussJordan:
		return matrix.InverseGaussJordan(m, opts...)
	case MethodLU:
		return matrix.InverseLU(m)
	case MethodLUP:
		return matrix.InverseLUP(m)
	}

	return nil, unknown("Inverse", method)
}
