// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/densela/numeric"

// choleskyBlock computes lower-triangular L with a = L·Lᵀ, row by row
// (left-looking). Only the lower triangle of a is read.
// A non-positive diagonal entry, or a radicand <= 0 at any step, fails with
// ErrNotPositiveDefinite.
func choleskyBlock[T numeric.Element](a *block[T]) (*block[T], error) {
	var (
		n        = a.r
		ar       = a.ar
		l        = a.like(n, n)
		zero     = ar.Zero()
		i, j, k  int
		sum, rad T
		err      error
	)
	for i = 0; i < n; i++ {
		if ar.Cmp(a.at(i, i), zero) <= 0 {
			return nil, ErrNotPositiveDefinite
		}
	}
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			sum = zero
			for k = 0; k < j; k++ {
				sum = ar.Add(sum, ar.Mul(l.at(i, k), l.at(j, k)))
			}
			if i != j {
				l.set(i, j, ar.Div(ar.Sub(a.at(i, j), sum), l.at(j, j)))
				continue
			}
			rad = ar.Sub(a.at(i, i), sum)
			if ar.Cmp(rad, zero) <= 0 {
				return nil, ErrNotPositiveDefinite
			}
			if rad, err = ar.Sqrt(rad); err != nil {
				return nil, err
			}
			if ar.IsZero(rad) {
				return nil, ErrNotPositiveDefinite
			}
			l.set(i, i, rad)
		}
	}

	return l, nil
}
