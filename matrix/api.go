// SPDX-License-Identifier: MIT
// Package matrix: public arithmetic API (Add, Sub, Hadamard, Scale,
// Transpose, Mul, Dot, Trace, Power, FrobeniusNorm).
// These keep the operands' native kind: integer matrices multiply as
// integers. Inputs are validated, never mutated, and results are fresh.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/densela/numeric"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd            = "Add"
	opSub            = "Sub"
	opHadamard       = "Hadamard"
	opScale          = "Scale"
	opTranspose      = "Transpose"
	opMul            = "Mul"
	opDot            = "Dot"
	opTrace          = "Trace"
	opPower          = "Power"
	opNorm           = "FrobeniusNorm"
	opConvert        = "Convert"
	opStrassen       = "Strassen"
	opLU             = "LU"
	opLUP            = "LUP"
	opCholesky       = "Cholesky"
	opQR             = "QR"
	opForward        = "ForwardSubstitution"
	opBackward       = "BackwardSubstitution"
	opSolveLU        = "SolveLU"
	opSolveLUP       = "SolveLUP"
	opDeterminant    = "Determinant"
	opDeterminantLU  = "DeterminantLU"
	opDeterminantQR  = "DeterminantQR"
	opMinor          = "Minor"
	opCofactor       = "Cofactor"
	opComatrix       = "Comatrix"
	opAdjugate       = "Adjugate"
	opInverse        = "Inverse"
	opInverseCom     = "InverseComatrix"
	opInverseGJ      = "InverseGaussJordan"
	opInverseLU      = "InverseLU"
	opInverseLUP     = "InverseLUP"
	opPseudoInverse  = "PseudoInverse"
	opJacobi         = "Jacobi"
	opEigenQRStep    = "EigenQRStep"
	opEigenQRIter    = "EigenQRIterated"
	opSVD            = "SVD"
	opSingularValues = "SingularValues"
	opRank           = "Rank"
	opCondition      = "ConditionNumber"
	opPermutation    = "PermutationMatrix"
	opNormL1         = "NormL1"
	opNormInf        = "NormInf"
	opNormLp         = "NormLp"
	opNormPQ         = "NormPQ"
	opNorm2          = "Norm2"
	opKyFan          = "KyFanNorm"
	opKronecker      = "Kronecker"
	opOuter          = "Outer"
	opRidge          = "RidgeRegression"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

func elementwise(a, b *Dense, op ewOp, tag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	e, err := a.e.elementwise(b.e, op)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return wrap(e), nil
}

// Add returns a + b. Shapes and kinds must match.
func Add(a, b *Dense) (*Dense, error) { return elementwise(a, b, ewAdd, opAdd) }

// Sub returns a − b. Shapes and kinds must match.
func Sub(a, b *Dense) (*Dense, error) { return elementwise(a, b, ewSub, opSub) }

// Hadamard returns the elementwise product a ⊙ b.
func Hadamard(a, b *Dense) (*Dense, error) { return elementwise(a, b, ewMul, opHadamard) }

// Scale returns alpha·m; alpha must carry m's kind.
func Scale(m *Dense, alpha numeric.Scalar) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	e, err := m.e.scale(alpha)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return wrap(e), nil
}

// Transpose returns mᵀ.
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return wrap(m.e.transpose()), nil
}

// Mul returns the direct product a·b (a.Cols == b.Rows).
//
// Matrix×matrix, matrix×column and row×matrix are served. Two vectors are
// rejected with ErrVectorProduct: their inner product belongs to Dot and
// keeping it out of Mul avoids a silent 1×1 result. 1×1 operands count as
// scalars, not vectors.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if isVector(a) && isVector(b) && a.Len() > 1 && b.Len() > 1 {
		return nil, matrixErrorf(opMul, ErrVectorProduct)
	}
	e, err := a.e.mul(b.e)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return wrap(e), nil
}

// Dot returns Σ a[k]·b[k] for two vectors of equal length (any orientation).
func Dot(a, b *Dense) (numeric.Scalar, error) {
	if err := ValidateVector(a); err != nil {
		return numeric.Scalar{}, matrixErrorf(opDot, err)
	}
	if err := ValidateVector(b); err != nil {
		return numeric.Scalar{}, matrixErrorf(opDot, err)
	}
	if a.Len() != b.Len() {
		return numeric.Scalar{}, matrixErrorf(opDot, ErrDimensionMismatch)
	}
	if err := ValidateSameKind(a, b); err != nil {
		return numeric.Scalar{}, matrixErrorf(opDot, err)
	}
	s, err := a.e.dot(b.e)
	if err != nil {
		return numeric.Scalar{}, matrixErrorf(opDot, err)
	}

	return s, nil
}

// Trace returns the sum of the main diagonal of a square matrix.
func Trace(m *Dense) (numeric.Scalar, error) {
	if err := ValidateSquare(m); err != nil {
		return numeric.Scalar{}, matrixErrorf(opTrace, err)
	}

	return m.e.trace(), nil
}

// Power returns m^k by repeated squaring in m's kind. k = 0 yields the
// identity; k < 0 raises the LUP inverse (Float64 for integer kinds).
func Power(m *Dense, k int) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	base := m.e
	if k < 0 {
		inv, err := fractional(m.e).inverse(invLUP, gatherOptions())
		if err != nil {
			return nil, matrixErrorf(opPower, err)
		}
		base, k = inv, -k
	}
	var (
		result = base.identity(m.Rows())
		err    error
	)
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			if result, err = result.mul(base); err != nil {
				return nil, matrixErrorf(opPower, err)
			}
		}
		if k > 1 {
			if base, err = base.mul(base); err != nil {
				return nil, matrixErrorf(opPower, err)
			}
		}
	}

	return wrap(result), nil
}

// FrobeniusNorm returns √(Σ m[i,j]²) computed in float64.
func FrobeniusNorm(m *Dense) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	var acc float64
	for _, v := range m.e.floats() {
		acc += v * v
	}

	return math.Sqrt(acc), nil
}

// Strassen returns a·b for square operands of equal power-of-two size using
// Strassen's seven-product recursion, switching to the direct product at or
// below the threshold (DefaultStrassenThreshold, WithStrassenThreshold).
// Inputs are never padded. The result keeps the operands' kind.
func Strassen(a, b *Dense, opts ...Option) (*Dense, error) {
	if err := ValidatePowerOfTwo(a); err != nil {
		return nil, matrixErrorf(opStrassen, err)
	}
	if err := ValidatePowerOfTwo(b); err != nil {
		return nil, matrixErrorf(opStrassen, err)
	}
	if a.Rows() != b.Rows() {
		return nil, matrixErrorf(opStrassen, ErrDimensionMismatch)
	}
	if err := ValidateSameKind(a, b); err != nil {
		return nil, matrixErrorf(opStrassen, err)
	}
	e, err := a.e.strassen(b.e, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opStrassen, err)
	}

	return wrap(e), nil
}

// NormL1 returns the entrywise Σ|m[i,j]| in float64.
func NormL1(m *Dense) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNormL1, err)
	}

	return entrywiseNorm(m.e.floats(), 1), nil
}

// NormInf returns the largest |m[i,j]| in float64.
func NormInf(m *Dense) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNormInf, err)
	}
	var best float64
	for _, v := range m.e.floats() {
		best = math.Max(best, math.Abs(v))
	}

	return best, nil
}

// NormLp returns the entrywise (Σ|m[i,j]|^p)^(1/p) for p >= 1.
// NormLp(m, 2) equals FrobeniusNorm(m).
func NormLp(m *Dense, p int) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNormLp, err)
	}
	if p < 1 {
		return 0, matrixErrorf(opNormLp, fmt.Errorf("%w: p=%d", ErrInvalidNormOrder, p))
	}

	return entrywiseNorm(m.e.floats(), p), nil
}

// NormPQ returns the L_{p,q} norm (Σ_j ‖m[:,j]‖_p^q)^(1/q): the p-norm of
// every column, then the q-norm of those. NormPQ(m, 2, 2) is FrobeniusNorm.
func NormPQ(m *Dense, p, q int) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNormPQ, err)
	}
	if p < 1 || q < 1 {
		return 0, matrixErrorf(opNormPQ, fmt.Errorf("%w: p=%d q=%d", ErrInvalidNormOrder, p, q))
	}
	var (
		r, c = m.Shape()
		flat = m.e.floats()
		cols = make([]float64, c)
		col  = make([]float64, r)
	)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			col[i] = flat[i*c+j]
		}
		cols[j] = entrywiseNorm(col, p)
	}

	return entrywiseNorm(cols, q), nil
}

func entrywiseNorm(xs []float64, p int) float64 {
	var acc float64
	switch p {
	case 1:
		for _, v := range xs {
			acc += math.Abs(v)
		}
		return acc
	case 2:
		for _, v := range xs {
			acc += v * v
		}
		return math.Sqrt(acc)
	}
	for _, v := range xs {
		acc += math.Pow(math.Abs(v), float64(p))
	}

	return math.Pow(acc, 1/float64(p))
}

// Kronecker returns the (ra·rb)×(ca·cb) block matrix whose block (i,j) is
// a[i,j]·b, in the operands' shared kind.
func Kronecker(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	if err := ValidateSameKind(a, b); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	e, err := a.e.kronecker(b.e)
	if err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}

	return wrap(e), nil
}

// Outer returns the len(u)×len(v) matrix u·vᵀ for two vectors of any
// orientation and a shared kind.
func Outer(u, v *Dense) (*Dense, error) {
	if err := ValidateVector(u); err != nil {
		return nil, matrixErrorf(opOuter, err)
	}
	if err := ValidateVector(v); err != nil {
		return nil, matrixErrorf(opOuter, err)
	}
	if err := ValidateSameKind(u, v); err != nil {
		return nil, matrixErrorf(opOuter, err)
	}
	col, row := u.e.duplicate(), v.e.duplicate()
	col.reshape(u.Len(), 1)
	row.reshape(1, v.Len())
	e, err := col.kronecker(row)
	if err != nil {
		return nil, matrixErrorf(opOuter, err)
	}

	return wrap(e), nil
}
