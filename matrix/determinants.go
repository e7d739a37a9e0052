// SPDX-License-Identifier: MIT
// Package matrix: determinants, minors, cofactors and inverses.
//
// Determinant, Minor, CofactorAt, Comatrix and Adjugate stay in the input's
// kind, so integer matrices get exact integer results. DeterminantLU,
// DeterminantQR and every inverse need division and promote integer kinds to
// Float64.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/densela/numeric"
)

// Determinant returns det(m) by recursive cofactor expansion along row 0.
//
// Exact in the native kind, but O(n!) time: intended for small matrices.
// DeterminantLU and DeterminantQR are the O(n³) alternatives.
func Determinant(m *Dense) (numeric.Scalar, error) {
	if err := ValidateSquare(m); err != nil {
		return numeric.Scalar{}, matrixErrorf(opDeterminant, err)
	}

	return m.e.det(), nil
}

// DeterminantLU returns the product of U's diagonal from LUP, negated when
// the permutation is odd. Singular input yields zero.
func DeterminantLU(m *Dense) (numeric.Scalar, error) {
	if err := ValidateSquare(m); err != nil {
		return numeric.Scalar{}, matrixErrorf(opDeterminantLU, err)
	}

	return fractional(m.e).detLU(), nil
}

// DeterminantQR returns the product of R's diagonal times det(Q) = ±1.
func DeterminantQR(m *Dense, method QRMethod) (numeric.Scalar, error) {
	if err := ValidateSquare(m); err != nil {
		return numeric.Scalar{}, matrixErrorf(opDeterminantQR, err)
	}
	if !method.valid() {
		return numeric.Scalar{}, matrixErrorf(opDeterminantQR, ErrUnknownMethod)
	}
	d, err := fractional(m.e).detQR(method)
	if err != nil {
		return numeric.Scalar{}, matrixErrorf(opDeterminantQR, err)
	}

	return d, nil
}

// checkMinorIndex requires a square m of size >= 2 and (r,c) in range.
func checkMinorIndex(m *Dense, r, c int) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.Rows()
	if n < 2 {
		return ErrBadShape
	}
	if r < 0 || r >= n || c < 0 || c >= n {
		return fmt.Errorf("%w: (%d,%d) in %d×%d", ErrOutOfRange, r, c, n, n)
	}

	return nil
}

// Minor returns m without row r and column c.
func Minor(m *Dense, r, c int) (*Dense, error) {
	if err := checkMinorIndex(m, r, c); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return wrap(m.e.minor(r, c)), nil
}

// CofactorAt returns (−1)^(r+c)·det(Minor(m, r, c)).
func CofactorAt(m *Dense, r, c int) (numeric.Scalar, error) {
	if err := checkMinorIndex(m, r, c); err != nil {
		return numeric.Scalar{}, matrixErrorf(opCofactor, err)
	}

	return m.e.cofactor(r, c), nil
}

// Comatrix returns the matrix of cofactors. A 1×1 input yields [[1]].
func Comatrix(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opComatrix, err)
	}

	return wrap(m.e.comatrix()), nil
}

// Adjugate returns the transposed comatrix, so that m·adj(m) = det(m)·I.
func Adjugate(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return wrap(m.e.comatrix().transpose()), nil
}

func invert(m *Dense, method inverseMethod, tag string, opts []Option) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	inv, err := fractional(m.e).inverse(method, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return wrap(inv), nil
}

// InverseComatrix returns adj(m)/det(m); ErrSingular when det(m) = 0.
// Costs O(n!) through the cofactor determinant.
func InverseComatrix(m *Dense) (*Dense, error) {
	return invert(m, invComatrix, opInverseCom, nil)
}

// InverseGaussJordan reduces [m | I] to [I | m⁻¹] with partial pivoting.
// Pivot swaps are logged at Debug level through WithLogger.
func InverseGaussJordan(m *Dense, opts ...Option) (*Dense, error) {
	return invert(m, invGaussJordan, opInverseGJ, opts)
}

// InverseLU solves m·X = I through LU without pivoting; any zero pivot fails.
func InverseLU(m *Dense) (*Dense, error) {
	return invert(m, invLU, opInverseLU, nil)
}

// InverseLUP solves m·X = I through LUP.
func InverseLUP(m *Dense) (*Dense, error) {
	return invert(m, invLUP, opInverseLUP, nil)
}

// Inverse is InverseLUP.
func Inverse(m *Dense) (*Dense, error) {
	return invert(m, invLUP, opInverse, nil)
}

// PseudoInverse returns the Moore-Penrose inverse of a full-rank m:
// (mᵀm)⁻¹mᵀ when rows >= cols and mᵀ(mmᵀ)⁻¹ otherwise.
// A rank-deficient m makes the Gram matrix singular and fails with ErrSingular.
func PseudoInverse(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}
	var (
		a      = fractional(m.e)
		at     = a.transpose()
		gram   engine
		gramIn engine
		out    engine
		err    error
	)
	tall := m.Rows() >= m.Cols()
	if tall {
		gram, err = at.mul(a)
	} else {
		gram, err = a.mul(at)
	}
	if err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}
	if gramIn, err = gram.inverse(invLUP, gatherOptions()); err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}
	if tall {
		out, err = gramIn.mul(at)
	} else {
		out, err = at.mul(gramIn)
	}
	if err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}

	return wrap(out), nil
}
