// SPDX-License-Identifier: MIT
// Package matrix: public factorization and solver API.
//
// Every routine here needs fractional division, so integer-kind inputs are
// promoted to a Float64 copy and the factors come back as Float64. Float and
// Decimal inputs keep their kind (and Decimal its precision).

package matrix

import "github.com/katalvlaran/densela/numeric"

// LU factors a square m as L·U without pivoting (Doolittle: L has a unit
// diagonal). Any zero pivot fails with ErrSingular; LUP factors every square
// input and is the fallback.
//
// Complexity: O(n³) time, O(n²) space.
func LU(m *Dense) (l, u *Dense, err error) {
	if err = ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	le, ue, err := fractional(m.e).lu()
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	return wrap(le), wrap(ue), nil
}

// LUP factors a square m as P·L·U with partial pivoting by magnitude.
// P is a permutation matrix, L unit lower-triangular, U upper-triangular.
// Singular input still factors; U then has a zero on its diagonal.
func LUP(m *Dense) (p, l, u *Dense, err error) {
	if err = ValidateSquare(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLUP, err)
	}
	pe, le, ue, _ := fractional(m.e).lup()

	return wrap(pe), wrap(le), wrap(ue), nil
}

// Cholesky returns lower-triangular L with m = L·Lᵀ. Only the lower triangle
// of m is read. Input with a non-positive diagonal entry or radicand fails
// with ErrNotPositiveDefinite.
func Cholesky(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	l, err := fractional(m.e).cholesky()
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	return wrap(l), nil
}

// QR factors m (any shape) with the given strategy so that Q·R = m.
// Householder and Givens return the full factorization (Q m×m, R m×n);
// GramSchmidt returns the thin one (Q m×n, R n×n).
func QR(m *Dense, method QRMethod) (q, r *Dense, err error) {
	if err = ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	if !method.valid() {
		return nil, nil, matrixErrorf(opQR, ErrUnknownMethod)
	}
	qe, re, err := fractional(m.e).qr(method)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	return wrap(qe), wrap(re), nil
}

// QRHouseholder is QR(m, Householder).
func QRHouseholder(m *Dense) (q, r *Dense, err error) { return QR(m, Householder) }

// QRGivens is QR(m, Givens).
func QRGivens(m *Dense) (q, r *Dense, err error) { return QR(m, Givens) }

// QRGramSchmidt is QR(m, GramSchmidt).
func QRGramSchmidt(m *Dense) (q, r *Dense, err error) { return QR(m, GramSchmidt) }

// DecomposeQR selects the QR strategy by name ("householder", "givens",
// "gram-schmidt"); unknown names fail with ErrUnknownMethod.
func DecomposeQR(method string, m *Dense) (q, r *Dense, err error) {
	qm, err := ParseQRMethod(method)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	return QR(m, qm)
}

// ForwardSubstitution solves L·X = B for lower-triangular L (n×n) and B (n×k).
// A zero diagonal entry fails with ErrSingular.
func ForwardSubstitution(l, b *Dense) (*Dense, error) {
	return substitute(l, b, true, opForward)
}

// BackwardSubstitution solves U·X = B for upper-triangular U (n×n) and B (n×k).
func BackwardSubstitution(u, b *Dense) (*Dense, error) {
	return substitute(u, b, false, opBackward)
}

func substitute(t, b *Dense, lower bool, tag string) (*Dense, error) {
	if err := validateSystem(t, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	te, be := promotePair(t.e, b.e)
	x, err := te.substitute(be, lower)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return wrap(x), nil
}

// SolveLU solves A·X = B through LU without pivoting.
func SolveLU(a, b *Dense) (*Dense, error) { return solve(a, b, false, opSolveLU) }

// SolveLUP solves A·X = B through LUP; the robust default.
func SolveLUP(a, b *Dense) (*Dense, error) { return solve(a, b, true, opSolveLUP) }

func solve(a, b *Dense, pivot bool, tag string) (*Dense, error) {
	if err := validateSystem(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	ae, be := promotePair(a.e, b.e)
	x, err := ae.solve(be, pivot)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return wrap(x), nil
}

// validateSystem requires square a, a.Rows == b.Rows and a shared kind.
func validateSystem(a, b *Dense) error {
	if err := ValidateSquare(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() {
		return ErrDimensionMismatch
	}

	return ValidateSameKind(a, b)
}

// promotePair promotes both operands of a solver to the fractional kind.
func promotePair(a, b engine) (engine, engine) { return fractional(a), fractional(b) }

// RidgeRegression returns the weights w of the Tikhonov-regularized least
// squares problem, solving (XᵀX + λI)·w = Xᵀb through LU (no pivoting).
// x is r×c with r observations, b is r×k and w is c×k. lambda is converted
// to the working kind; λ > 0 keeps the system positive definite. Integer
// kinds promote to Float64.
func RidgeRegression(x, b *Dense, lambda numeric.Scalar) (*Dense, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, matrixErrorf(opRidge, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opRidge, err)
	}
	if x.Rows() != b.Rows() {
		return nil, matrixErrorf(opRidge, ErrDimensionMismatch)
	}
	if err := ValidateSameKind(x, b); err != nil {
		return nil, matrixErrorf(opRidge, err)
	}
	xe, be := promotePair(x.e, b.e)
	l, err := numeric.Convert(lambda, xe.kind())
	if err != nil {
		return nil, matrixErrorf(opRidge, err)
	}
	xt := xe.transpose()
	gram, err := xt.mul(xe)
	if err != nil {
		return nil, matrixErrorf(opRidge, err)
	}
	shift, err := gram.identity(x.Cols()).scale(l)
	if err != nil {
		return nil, matrixErrorf(opRidge, err)
	}
	a, err := gram.elementwise(shift, ewAdd)
	if err != nil {
		return nil, matrixErrorf(opRidge, err)
	}
	rhs, err := xt.mul(be)
	if err != nil {
		return nil, matrixErrorf(opRidge, err)
	}
	w, err := a.solve(rhs, false)
	if err != nil {
		return nil, matrixErrorf(opRidge, err)
	}

	return wrap(w), nil
}
