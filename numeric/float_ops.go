// SPDX-License-Identifier: MIT

package numeric

import "math"

// floatOps implements Arithmetic for float32 and float64.
type floatOps[T float32 | float64] struct{ kind Kind }

func (o floatOps[T]) Kind() Kind            { return o.kind }
func (floatOps[T]) Zero() T                 { return 0 }
func (floatOps[T]) One() T                  { return 1 }
func (floatOps[T]) Add(a, b T) T            { return a + b }
func (floatOps[T]) Sub(a, b T) T            { return a - b }
func (floatOps[T]) Neg(a T) T               { return -a }
func (floatOps[T]) Mul(a, b T) T            { return a * b }
func (floatOps[T]) Div(a, b T) T            { return a / b }
func (floatOps[T]) Equal(a, b T) bool       { return a == b }
func (floatOps[T]) IsZero(a T) bool         { return a == 0 }
func (floatOps[T]) Abs(a T) T               { return T(math.Abs(float64(a))) }
func (floatOps[T]) FromInt64(v int64) T     { return T(v) }
func (floatOps[T]) FromFloat64(v float64) T { return T(v) }
func (floatOps[T]) Float64(a T) float64     { return float64(a) }
func (o floatOps[T]) Sqrt(a T) (T, error)   { return o.NthRoot(a, 2) }

func (floatOps[T]) Cmp(a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

func (o floatOps[T]) NthRoot(a T, n int) (T, error) {
	if n < 1 {
		return 0, ErrInvalidRoot
	}
	if a < 0 {
		return 0, ErrNegativeRadicand
	}
	if a == 0 || n == 1 || math.IsInf(float64(a), 1) {
		return a, nil
	}
	guess := T(math.Pow(float64(a), 1/float64(n)))
	if guess == 0 {
		return guess, nil
	}

	return newtonRoot[T](o, a, n, guess), nil
}

func (o floatOps[T]) Pow(a T, n int) (T, error) { return powOf[T](o, a, n) }
