// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Four categories mirror the failure classes of the engine: invalid
// dimensions, unsupported element kind, arithmetic failure (singular input,
// division by zero) and unsupported operation. Specific sentinels wrap their
// category, so callers may test either with errors.Is.
// Panics are reserved for programmer errors in option constructors.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/densela/numeric"
)

// NOTE ON WRAPPING
// ----------------
// Public entry points wrap the detected sentinel with the operation name via
// matrixErrorf ("LU: matrix: singular matrix"). Never compare errors with ==.

var (
	// ErrInvalidDimensions is the category for non-positive, mismatched or
	// incompatible row/column counts.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrBadShape is returned when a requested shape has r<=0 or c<=0, or a
	// reshape changes the element count.
	ErrBadShape = fmt.Errorf("%w: bad shape", ErrInvalidDimensions)

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Add with different shapes or Mul with a.Cols != b.Rows.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrInvalidDimensions)

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrInvalidDimensions)

	// ErrNotPowerOfTwo signals a Strassen operand whose size is not 2^k.
	ErrNotPowerOfTwo = fmt.Errorf("%w: size is not a power of two", ErrInvalidDimensions)

	// ErrNotVector signals that a 1×n or n×1 operand was required.
	ErrNotVector = fmt.Errorf("%w: operand is not a vector", ErrInvalidDimensions)

	// ErrOutOfRange indicates a row, column or linear index outside bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix is returned when a nil *Dense is passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidPermutation is returned when a slice is not a permutation of 0..n-1.
	ErrInvalidPermutation = errors.New("matrix: invalid permutation")

	// ErrUnsupportedKind covers kinds outside the closed set and operands of
	// different kinds. Same value as numeric.ErrUnsupportedKind.
	ErrUnsupportedKind = numeric.ErrUnsupportedKind

	// ErrArithmetic is the category of value-level failures. Same value as
	// numeric.ErrArithmetic, so numeric.ErrDivisionByZero matches it too.
	ErrArithmetic = numeric.ErrArithmetic

	// ErrSingular signals a zero pivot or a zero determinant.
	ErrSingular = fmt.Errorf("%w: matrix: singular matrix", ErrArithmetic)

	// ErrNotPositiveDefinite signals a Cholesky input with a non-positive
	// radicand or pivot.
	ErrNotPositiveDefinite = fmt.Errorf("%w: matrix: not positive definite", ErrArithmetic)

	// ErrUnsupportedOperation is the category for requests the engine does
	// not serve on the given input.
	ErrUnsupportedOperation = errors.New("matrix: unsupported operation")

	// ErrUnknownMethod is returned for an unknown decomposition method name.
	ErrUnknownMethod = fmt.Errorf("%w: unknown method", ErrUnsupportedOperation)

	// ErrVectorProduct is returned when Mul receives two vectors; use Dot.
	ErrVectorProduct = fmt.Errorf("%w: vector by vector product, use Dot", ErrUnsupportedOperation)

	// ErrNotSymmetric is returned by Jacobi for an asymmetric input.
	ErrNotSymmetric = fmt.Errorf("%w: matrix is not symmetric", ErrUnsupportedOperation)

	// ErrInvalidNormOrder is returned for a norm order p, q < 1 or a Ky Fan
	// index outside [1, min(rows, cols)].
	ErrInvalidNormOrder = fmt.Errorf("%w: invalid norm order", ErrUnsupportedOperation)
)
