// SPDX-License-Identifier: MIT

package numeric

import "math"

type signedInt interface {
	int8 | int16 | int32 | int64
}

// intOps implements Arithmetic for the fixed-width integer kinds.
// Overflow wraps, exactly as Go's native operators do.
type intOps[T signedInt] struct{ kind Kind }

func (o intOps[T]) Kind() Kind          { return o.kind }
func (intOps[T]) Zero() T               { return 0 }
func (intOps[T]) One() T                { return 1 }
func (intOps[T]) Add(a, b T) T          { return a + b }
func (intOps[T]) Sub(a, b T) T          { return a - b }
func (intOps[T]) Neg(a T) T             { return -a }
func (intOps[T]) Mul(a, b T) T          { return a * b }
func (intOps[T]) Div(a, b T) T          { return a / b }
func (intOps[T]) Equal(a, b T) bool     { return a == b }
func (intOps[T]) IsZero(a T) bool       { return a == 0 }
func (intOps[T]) FromInt64(v int64) T   { return T(v) }
func (intOps[T]) Float64(a T) float64   { return float64(a) }
func (o intOps[T]) Sqrt(a T) (T, error) { return o.NthRoot(a, 2) }

func (intOps[T]) Cmp(a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

func (intOps[T]) Abs(a T) T {
	if a < 0 {
		return -a
	}

	return a
}

// FromFloat64 truncates toward zero.
func (intOps[T]) FromFloat64(v float64) T { return T(math.Trunc(v)) }

func (intOps[T]) NthRoot(a T, n int) (T, error) {
	if n < 1 {
		return 0, ErrInvalidRoot
	}
	if a < 0 {
		return 0, ErrNegativeRadicand
	}

	return T(floorRoot(int64(a), n)), nil
}

func (o intOps[T]) Pow(a T, n int) (T, error) { return powOf[T](o, a, n) }

// floorRoot returns ⌊x^(1/n)⌋ for x >= 0.
// Newton on integers, started above the root, decreases strictly until it
// reaches the floor root; the first non-decreasing step ends the loop.
func floorRoot(x int64, n int) int64 {
	if x < 2 || n == 1 {
		return x
	}
	g := int64(math.Pow(float64(x), 1/float64(n))) + 1
	nm1, nn := int64(n-1), int64(n)
	for {
		var q int64
		if p, over := powCapped(g, n-1, x); !over {
			q = x / p
		}
		// ((n-1)·g + q) / n >= g exactly when q >= g
		if q >= g {
			return g
		}
		g = (nm1*g + q) / nn
	}
}

// powCapped computes g^k and reports over=true as soon as the partial
// product exceeds limit (the quotient x/g^k is then 0).
func powCapped(g int64, k int, limit int64) (p int64, over bool) {
	p = 1
	for ; k > 0; k-- {
		if p > limit/g {
			return 0, true
		}
		p *= g
	}

	return p, false
}
