// SPDX-License-Identifier: MIT
// Package matrix: central validators shared by every public entry point.
// Each returns nil or a sentinel wrapped with the validator name, so
// errors.Is works through the extra context.

package matrix

import (
	"fmt"
	"math"
)

func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil rejects a nil Matrix, including a typed nil *Dense and a
// zero Dense{}.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && (d == nil || d.e == nil) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare requires a non-nil square matrix.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSameKind requires both operands to share one element kind.
func ValidateSameKind(a, b Matrix) error {
	if a.Kind() != b.Kind() {
		return validatorErrorf("ValidateSameKind", fmt.Errorf("%w: %s with %s", ErrUnsupportedKind, a.Kind(), b.Kind()))
	}

	return nil
}

// ValidateSameShape requires non-nil operands of identical shape and kind.
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return ValidateSameKind(a, b)
}

// ValidateMulCompatible requires a.Cols == b.Rows and a shared kind.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return ValidateSameKind(a, b)
}

// ValidateVector requires a 1×n or n×1 matrix.
func ValidateVector(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if !isVector(m) {
		return validatorErrorf("ValidateVector", ErrNotVector)
	}

	return nil
}

// ValidatePowerOfTwo requires a square matrix whose size is 2^k.
func ValidatePowerOfTwo(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if n := m.Rows(); n&(n-1) != 0 {
		return validatorErrorf("ValidatePowerOfTwo", ErrNotPowerOfTwo)
	}

	return nil
}

// ValidateSymmetric requires a square matrix with |a[i,j] − a[j,i]| <= eps
// (compared in float64).
func ValidateSymmetric(m *Dense, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.Rows()
	flat := m.e.floats()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(flat[i*n+j]-flat[j*n+i]) > eps {
				return validatorErrorf("ValidateSymmetric", ErrNotSymmetric)
			}
		}
	}

	return nil
}

func isVector(m Matrix) bool { return m.Rows() == 1 || m.Cols() == 1 }
