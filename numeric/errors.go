// SPDX-License-Identifier: MIT
// Package numeric: sentinel error set.
// Category sentinels are plain errors.New values; specific sentinels wrap
// their category so errors.Is matches both levels.

package numeric

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedKind is returned for an element kind outside the closed set,
	// or for a binary operation whose operands carry different kinds.
	ErrUnsupportedKind = errors.New("numeric: unsupported element kind")

	// ErrArithmetic is the category of all value-level failures
	// (division by zero, negative radicand, undefined power).
	ErrArithmetic = errors.New("numeric: arithmetic error")

	// ErrDivisionByZero signals a divisor equal to the additive identity on a
	// kind that has no IEEE-754 infinity.
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrArithmetic)

	// ErrNegativeRadicand signals a root of a negative value.
	ErrNegativeRadicand = fmt.Errorf("%w: negative radicand", ErrArithmetic)

	// ErrZeroPower signals 0 raised to a non-positive exponent.
	ErrZeroPower = fmt.Errorf("%w: zero base with non-positive exponent", ErrArithmetic)

	// ErrInvalidRoot signals a root degree below 1.
	ErrInvalidRoot = fmt.Errorf("%w: root degree must be >= 1", ErrArithmetic)

	// ErrParse is returned when a textual value or kind name cannot be parsed.
	ErrParse = errors.New("numeric: parse error")
)
