// SPDX-License-Identifier: MIT

package numeric

import (
	"github.com/cockroachdb/apd/v3"
)

// Element is the closed set of Go types backing the supported kinds.
type Element interface {
	int8 | int16 | int32 | int64 | float32 | float64 | Dec
}

// Arithmetic is the primitive kernel over one element type. Every matrix
// algorithm is written against it; an implementation is resolved once per
// matrix, never per scalar operation.
//
// Div does not check for a zero divisor: integer kinds panic like native Go
// division, float kinds yield ±Inf/NaN, Decimal panics. Callers that divide
// detect singular pivots before calling it.
type Arithmetic[T Element] interface {
	Kind() Kind
	Zero() T
	One() T
	Add(a, b T) T
	Sub(a, b T) T
	Neg(a T) T
	Mul(a, b T) T
	Div(a, b T) T
	Cmp(a, b T) int
	Equal(a, b T) bool
	Abs(a T) T
	IsZero(a T) bool

	// Sqrt and NthRoot refine a root with Newton's method until two successive
	// iterates are equal (integer kinds return the floor root).
	Sqrt(a T) (T, error)
	NthRoot(a T, n int) (T, error)
	// Pow raises a to an integer power by repeated squaring.
	Pow(a T, n int) (T, error)

	FromInt64(v int64) T
	FromFloat64(v float64) T
	Float64(a T) float64
}

var defaultDecimal = NewDecimal(DefaultDecimalPrecision)

// For returns the shared kernel for T. Decimal uses DefaultDecimalPrecision.
func For[T Element]() Arithmetic[T] {
	var (
		zero T
		ar   any
	)
	switch any(zero).(type) {
	case int8:
		ar = intOps[int8]{kind: Int8}
	case int16:
		ar = intOps[int16]{kind: Int16}
	case int32:
		ar = intOps[int32]{kind: Int32}
	case int64:
		ar = intOps[int64]{kind: Int64}
	case float32:
		ar = floatOps[float32]{kind: Float32}
	case float64:
		ar = floatOps[float64]{kind: Float64}
	case Dec:
		ar = defaultDecimal
	}

	return ar.(Arithmetic[T])
}

// NewDecimal returns a Decimal kernel rounding every result to precision
// significant digits. A zero precision selects DefaultDecimalPrecision.
func NewDecimal(precision uint32) Arithmetic[Dec] {
	if precision == 0 {
		precision = DefaultDecimalPrecision
	}

	return decOps{ctx: apd.BaseContext.WithPrecision(precision)}
}
