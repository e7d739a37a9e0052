// SPDX-License-Identifier: MIT
// Package matrix: eigen-decomposition, SVD and the quantities derived from
// singular values (rank, condition number, spectral and Ky Fan norms, the
// full-rank, singular and positive-definite predicates).
//
// All routines promote integer kinds to Float64. Iteration limits and
// tolerances come from WithEpsilon and WithMaxIterations; reaching the cap is
// not an error, the current estimate is returned.

package matrix

import (
	"fmt"
	"math"
)

// Jacobi diagonalizes a symmetric m with Jacobi rotations.
//
// Implementation:
//   - Stage 1: ValidateSymmetric with the configured epsilon.
//   - Stage 2: rotate away the largest off-diagonal entry, applying each
//     rotation to rows and columns (A ← JᵀAJ) and accumulating V ← V·J.
//   - Stage 3: stop once the off-diagonal Frobenius norm is below epsilon.
//
// Returns:
//   - values: n×1 column of eigenvalues (the final diagonal, unsorted).
//   - vectors: n×n matrix whose column i is the unit eigenvector of values[i].
//
// Complexity: O(n²) per rotation for the pivot search plus O(n) for the update.
func Jacobi(m *Dense, opts ...Option) (values, vectors *Dense, err error) {
	cfg := gatherOptions(opts...)
	if err = ValidateSymmetric(m, cfg.eps); err != nil {
		return nil, nil, matrixErrorf(opJacobi, err)
	}
	vals, vecs, err := fractional(m.e).jacobi(cfg)
	if err != nil {
		return nil, nil, matrixErrorf(opJacobi, err)
	}

	return wrap(vals), wrap(vecs), nil
}

// EigenQRStep is the single-step QR eigen estimate: with m = Q·R it forms
// A' = R·Q and reads eigenvalues from diag(A') and eigenvectors from Q's
// columns.
//
// Accuracy: one step is exact only when m is already (nearly) upper
// triangular; use EigenQRIterated or Jacobi for converged results.
func EigenQRStep(m *Dense, method QRMethod) (values, vectors *Dense, err error) {
	return eigenQR(m, method, false, opEigenQRStep, nil)
}

// EigenQRIterated repeats A ← R·Q, accumulating V ← V·Q, until the strictly
// lower triangle of A is below epsilon. For symmetric input the columns of V
// converge to eigenvectors; otherwise diag(A) converges to the real
// eigenvalues when they are distinct in magnitude.
func EigenQRIterated(m *Dense, method QRMethod, opts ...Option) (values, vectors *Dense, err error) {
	return eigenQR(m, method, true, opEigenQRIter, opts)
}

func eigenQR(m *Dense, method QRMethod, iterate bool, tag string, opts []Option) (*Dense, *Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	if !method.valid() {
		return nil, nil, matrixErrorf(tag, ErrUnknownMethod)
	}
	vals, vecs, err := fractional(m.e).eigenQR(method, iterate, gatherOptions(opts...))
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}

	return wrap(vals), wrap(vecs), nil
}

// SVD factors m (r×c, k = min(r,c)) as U·Σ·Vᵀ with U r×k, Σ k×k diagonal
// and Vᵀ k×c, using repeated QR of shrinking trailing sub-blocks with the
// chosen strategy. Singular values are non-negative and sorted descending.
func SVD(m *Dense, method QRMethod, opts ...Option) (u, sigma, vt *Dense, err error) {
	if err = ValidateNotNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opSVD, err)
	}
	if !method.valid() {
		return nil, nil, nil, matrixErrorf(opSVD, ErrUnknownMethod)
	}
	ue, se, ve, err := fractional(m.e).svd(method, gatherOptions(opts...))
	if err != nil {
		return nil, nil, nil, matrixErrorf(opSVD, err)
	}

	return wrap(ue), wrap(se), wrap(ve), nil
}

// SingularValues returns the diagonal of Σ as float64, descending.
func SingularValues(m *Dense, method QRMethod, opts ...Option) ([]float64, error) {
	sv, err := singularValues(m, method, opts)
	if err != nil {
		return nil, matrixErrorf(opSingularValues, err)
	}

	return sv, nil
}

func singularValues(m *Dense, method QRMethod, opts []Option) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if !method.valid() {
		return nil, ErrUnknownMethod
	}
	_, s, _, err := fractional(m.e).svd(method, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}
	n, _ := s.dims()
	flat := s.floats()
	out := make([]float64, n)
	for i := range out {
		out[i] = flat[i*n+i]
	}

	return out, nil
}

// Rank counts singular values strictly above the rank tolerance
// (DefaultRankTolerance, override with WithRankTolerance).
func Rank(m *Dense, opts ...Option) (int, error) {
	sv, err := singularValues(m, Householder, opts)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	tol := gatherOptions(opts...).rankTol
	rank := 0
	for _, s := range sv {
		if s > tol {
			rank++
		}
	}

	return rank, nil
}

// ConditionNumber returns σmax/σmin in the 2-norm, or +Inf when σmin is zero.
func ConditionNumber(m *Dense, opts ...Option) (float64, error) {
	sv, err := singularValues(m, Householder, opts)
	if err != nil {
		return 0, matrixErrorf(opCondition, err)
	}
	smax, smin := sv[0], sv[len(sv)-1]
	if smin == 0 {
		return math.Inf(1), nil
	}

	return smax / smin, nil
}

// Norm2 returns the spectral norm σmax (Householder SVD).
func Norm2(m *Dense, opts ...Option) (float64, error) {
	sv, err := singularValues(m, Householder, opts)
	if err != nil {
		return 0, matrixErrorf(opNorm2, err)
	}

	return sv[0], nil
}

// KyFanNorm returns the sum of the k largest singular values,
// 1 <= k <= min(rows, cols). k = 1 is Norm2; k = min(rows, cols) is the
// nuclear norm.
func KyFanNorm(m *Dense, k int, opts ...Option) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opKyFan, err)
	}
	if k < 1 || k > min(m.Rows(), m.Cols()) {
		return 0, matrixErrorf(opKyFan, fmt.Errorf("%w: k=%d", ErrInvalidNormOrder, k))
	}
	sv, err := singularValues(m, Householder, opts)
	if err != nil {
		return 0, matrixErrorf(opKyFan, err)
	}
	var sum float64
	for _, s := range sv[:k] {
		sum += s
	}

	return sum, nil
}

// IsPositiveDefinite reports a symmetric matrix (within WithEpsilon) whose
// Cholesky factorization succeeds.
func IsPositiveDefinite(m *Dense, opts ...Option) bool {
	if isNil(m) || ValidateSymmetric(m, gatherOptions(opts...).eps) != nil {
		return false
	}
	_, err := fractional(m.e).cholesky()

	return err == nil
}

// IsFullRank reports Rank(m) == min(rows, cols) under the rank tolerance.
func IsFullRank(m *Dense, opts ...Option) bool {
	if isNil(m) {
		return false
	}
	rank, err := Rank(m, opts...)

	return err == nil && rank == min(m.Rows(), m.Cols())
}

// IsSingular reports a square matrix that is not of full rank. Rank is
// read from the singular values, so nearly singular float input within
// the rank tolerance counts as singular too. Non-square input is neither
// singular nor regular and reports false.
func IsSingular(m *Dense, opts ...Option) bool {
	return IsSquare(m) && !IsFullRank(m, opts...)
}
