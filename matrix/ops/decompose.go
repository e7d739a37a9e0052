// SPDX-License-Identifier: MIT

package ops

import "github.com/katalvlaran/densela/matrix"

// Factors holds the result of Decompose. Only the factors produced by the
// chosen method are set: L,U for "lu"; P,L,U for "lup"; L for "cholesky";
// Q,R for the QR strategies.
type Factors struct {
	P, L, U *matrix.Dense
	Q, R    *matrix.Dense
}

// Decompose factors m with the named method: lu, lup, cholesky,
// householder, givens or gramschmidt.
func Decompose(method string, m *matrix.Dense) (Factors, error) {
	var (
		f   Factors
		err error
	)
	key := canonical(method)
	switch key {
	case MethodLU:
		f.L, f.U, err = matrix.LU(m)
	case MethodLUP:
		f.P, f.L, f.U, err = matrix.LUP(m)
	case MethodCholesky:
		f.L, err = matrix.Cholesky(m)
	default:
		qm, ok := qrMethod(key)
		if !ok {
			return Factors{}, unknown("Decompose", method)
		}
		f.Q, f.R, err = matrix.QR(m, qm)
	}
	if err != nil {
		return Factors{}, err
	}

	return f, nil
}

// Solve solves a·x = b with the named method: lu or lup.
func Solve(method string, a, b *matrix.Dense) (*matrix.Dense, error) {
	switch canonical(method) {
	case MethodLU:
		return matrix.SolveLU(a, b)
	case MethodLUP:
		return matrix.SolveLUP(a, b)
	}

	return nil, unknown("Solve", method)
}
