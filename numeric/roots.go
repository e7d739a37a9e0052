// SPDX-License-Identifier: MIT

package numeric

// maxRootIterations caps Newton refinement for kinds whose rounding can
// settle into a longer cycle than the 2-cycle we detect.
const maxRootIterations = 500

// newtonRoot refines guess toward a^(1/n) with g' = ((n-1)·g + a/g^(n-1)) / n.
// It stops when an iterate equals its predecessor, or the one before it
// (rounding can make the last digit oscillate).
func newtonRoot[T Element](ar Arithmetic[T], a T, n int, guess T) T {
	var (
		nn   = ar.FromInt64(int64(n))
		nm1  = ar.FromInt64(int64(n - 1))
		cur  = guess
		prev = guess
		next T
		p    T
	)
	for i := 0; i < maxRootIterations; i++ {
		p = powNat(ar, cur, n-1)
		if ar.IsZero(p) {
			return cur
		}
		next = ar.Div(ar.Add(ar.Mul(nm1, cur), ar.Div(a, p)), nn)
		if ar.Equal(next, cur) || ar.Equal(next, prev) {
			return next
		}
		prev, cur = cur, next
	}

	return cur
}

// powNat computes x^k for k >= 0 by repeated squaring.
func powNat[T Element](ar Arithmetic[T], x T, k int) T {
	result := ar.One()
	for base := x; k > 0; k >>= 1 {
		if k&1 == 1 {
			result = ar.Mul(result, base)
		}
		if k > 1 {
			base = ar.Mul(base, base)
		}
	}

	return result
}

// powOf raises x to any integer power; negative powers go through One/x^|n|.
// An integer x^|n| that wraps to zero has |x| >= 2, so the truncated
// reciprocal is 0. Decimal underflow to zero reports ErrDivisionByZero;
// floats follow IEEE (+Inf).
func powOf[T Element](ar Arithmetic[T], x T, n int) (T, error) {
	if n <= 0 && ar.IsZero(x) {
		return ar.Zero(), ErrZeroPower
	}
	if n >= 0 {
		return powNat(ar, x, n), nil
	}
	p := powNat(ar, x, -n)
	if ar.IsZero(p) {
		switch k := ar.Kind(); {
		case k.IsInteger():
			return ar.Zero(), nil
		case k == Decimal:
			return ar.Zero(), ErrDivisionByZero
		}
	}

	return ar.Div(ar.One(), p), nil
}
