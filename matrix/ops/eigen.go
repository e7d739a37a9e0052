// SPDX-License-Identifier: MIT

package ops

import "github.com/katalvlaran/densela/matrix"

// Eigen returns eigenvalues (n×1) and eigenvectors (columns) with the named
// method: jacobi (symmetric input), qrstep (single A' = R·Q estimate) or
// qriterated. The QR methods use Householder; pass a QR strategy name
// ("givens", "gramschmidt") as qrName to override, or "" for the default.
func Eigen(method, qrName string, m *matrix.Dense, opts ...matrix.Option) (values, vectors *matrix.Dense, err error) {
	key := canonical(method)
	if key == MethodJacobi {
		return matrix.Jacobi(m, opts...)
	}
	qm := matrix.Householder
	if qrName != "" {
		var ok bool
		if qm, ok = qrMethod(canonical(qrName)); !ok {
			return nil, nil, unknown("Eigen", qrName)
		}
	}
	switch key {
	case MethodQRStep:
		return matrix.EigenQRStep(m, qm)
	case MethodQRIterated:
		return matrix.EigenQRIterated(m, qm, opts...)
	}

	return nil, nil, unknown("Eigen", method)
}

// SingularValues returns the descending singular values of m computed by
// SVD with the named QR strategy.
func SingularValues(method string, m *matrix.Dense, opts ...matrix.Option) ([]float64, error) {
	qm, ok := qrMethod(canonical(method))
	if !ok {
		return nil, unknown("SingularValues", method)
	}

	return matrix.SingularValues(m, qm, opts...)
}

// SVD factors m as U·Σ·Vᵀ with the named QR strategy.
func SVD(method string, m *matrix.Dense, opts ...matrix.Option) (u, sigma, vt *matrix.Dense, err error) {
	qm, ok := qrMethod(canonical(method))
	if !ok {
		return nil, nil, nil, unknown("SVD", method)
	}

	return matrix.SVD(m, qm, opts...)
}
