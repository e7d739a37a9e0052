// SPDX-License-Identifier: MIT
// Package matrix: QR factorization strategies.
//
// Householder and Givens return the full factorization (Q is m×m orthogonal,
// R is m×n upper-trapezoidal). Gram-Schmidt returns the thin one (Q is m×n
// with orthonormal non-degenerate columns, R is n×n). In every case Q·R
// reproduces the input.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/densela/numeric"
)

// gsDegenerateTol is the relative norm below which a Gram-Schmidt column is
// considered linearly dependent on its predecessors.
const gsDegenerateTol = 1e-12

// qrBlock dispatches on method.
func qrBlock[T numeric.Element](a *block[T], method QRMethod) (*block[T], *block[T], error) {
	switch method {
	case Householder:
		return householderBlock(a)
	case Givens:
		return givensBlock(a)
	case GramSchmidt:
		return gramSchmidtBlock(a)
	}

	return nil, nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
}

// householderBlock reflects column k onto alpha·e_k for k < min(m-1, n),
// with alpha = −sign(x₀)·‖x‖ to avoid cancellation.
//
// Wide inputs (m <= n) build each plane reflector H = I − 2vvᵀ/(vᵀv) as an
// explicit m×m matrix and left-multiply it into R and the accumulator.
// Tall inputs (m > n) apply the reflection vector directly, which avoids
// m×m products per column. Q is the transposed accumulated product.
func householderBlock[T numeric.Element](a *block[T]) (*block[T], *block[T], error) {
	var (
		m, n    = a.r, a.c
		ar      = a.ar
		r       = a.copyOf()
		qt      = a.eye(m)
		two     = ar.FromInt64(2)
		wide    = m <= n
		i, j, k int
		x, v    []T
		norm    T
		alpha   T
		vtv     T
		s, f    T
		hRow    T
		h       *block[T]
	)
	// reflect applies I − 2vvᵀ/(vᵀv) to rows k.. of target in place.
	reflect := func(target *block[T]) {
		for j = 0; j < target.c; j++ {
			s = ar.Zero()
			for i = k; i < m; i++ {
				s = ar.Add(s, ar.Mul(v[i-k], target.at(i, j)))
			}
			if ar.IsZero(s) {
				continue
			}
			f = ar.Div(ar.Mul(two, s), vtv)
			for i = k; i < m; i++ {
				target.set(i, j, ar.Sub(target.at(i, j), ar.Mul(f, v[i-k])))
			}
		}
	}
	for k = 0; k < min(m-1, n); k++ {
		x = r.column(k)[k:]
		norm = r.norm2(x)
		if ar.IsZero(norm) {
			continue
		}
		alpha = ar.Neg(norm)
		if ar.Cmp(x[0], ar.Zero()) < 0 {
			alpha = norm
		}
		v = append([]T(nil), x...)
		v[0] = ar.Sub(x[0], alpha)
		vtv = ar.Zero()
		for _, vi := range v {
			vtv = ar.Add(vtv, ar.Mul(vi, vi))
		}
		if ar.IsZero(vtv) {
			continue
		}

		if wide {
			h = a.eye(m)
			for i = k; i < m; i++ {
				hRow = ar.Div(ar.Mul(two, v[i-k]), vtv)
				for j = k; j < m; j++ {
					h.set(i, j, ar.Sub(h.at(i, j), ar.Mul(hRow, v[j-k])))
				}
			}
			r = mulBlock(h, r)
			qt = mulBlock(h, qt)
		} else {
			reflect(r)
			reflect(qt)
		}

		r.set(k, k, alpha)
		for i = k + 1; i < m; i++ {
			r.set(i, k, ar.Zero())
		}
	}

	return transposeBlock(qt), r, nil
}

// givensBlock zeroes R[i][j] for each column j, walking i from the bottom
// row up, with the rotation that mixes rows i−1 and i. Q accumulates Gᵀ.
func givensBlock[T numeric.Element](a *block[T]) (*block[T], *block[T], error) {
	var (
		m, n          = a.r, a.c
		ar            = a.ar
		r             = a.copyOf()
		q             = a.eye(m)
		i, j, col     int
		top, bot, rad T
		c, s, x1, x2  T
		err           error
	)
	for j = 0; j < min(m-1, n); j++ {
		for i = m - 1; i > j; i-- {
			bot = r.at(i, j)
			if ar.IsZero(bot) {
				continue
			}
			top = r.at(i-1, j)
			if rad, err = ar.Sqrt(ar.Add(ar.Mul(top, top), ar.Mul(bot, bot))); err != nil {
				return nil, nil, err
			}
			c, s = ar.Div(top, rad), ar.Div(bot, rad)
			for col = 0; col < n; col++ {
				x1, x2 = r.at(i-1, col), r.at(i, col)
				r.set(i-1, col, ar.Add(ar.Mul(c, x1), ar.Mul(s, x2)))
				r.set(i, col, ar.Sub(ar.Mul(c, x2), ar.Mul(s, x1)))
			}
			for col = 0; col < m; col++ {
				x1, x2 = q.at(col, i-1), q.at(col, i)
				q.set(col, i-1, ar.Add(ar.Mul(c, x1), ar.Mul(s, x2)))
				q.set(col, i, ar.Sub(ar.Mul(c, x2), ar.Mul(s, x1)))
			}
			r.set(i, j, ar.Zero())
		}
	}

	return q, r, nil
}

// gramSchmidtBlock orthogonalizes each column against every previously
// computed orthonormal column (modified Gram-Schmidt). A column whose
// residual vanishes keeps a zero Q column and a zero R diagonal instead of
// a division by zero, so rank-deficient input stays well-defined.
func gramSchmidtBlock[T numeric.Element](a *block[T]) (*block[T], *block[T], error) {
	var (
		m, n     = a.r, a.c
		ar       = a.ar
		q        = a.like(m, n)
		r        = a.like(n, n)
		i, j, k  int
		v        []T
		rij, nv  T
		colNorm  float64
		residual float64
	)
	for j = 0; j < n; j++ {
		v = a.column(j)
		colNorm = ar.Float64(a.norm2(v))
		for i = 0; i < j; i++ {
			rij = ar.Zero()
			for k = 0; k < m; k++ {
				rij = ar.Add(rij, ar.Mul(q.at(k, i), v[k]))
			}
			r.set(i, j, rij)
			for k = 0; k < m; k++ {
				v[k] = ar.Sub(v[k], ar.Mul(rij, q.at(k, i)))
			}
		}
		nv = a.norm2(v)
		residual = ar.Float64(nv)
		if ar.IsZero(nv) || residual <= gsDegenerateTol*colNorm {
			continue
		}
		r.set(j, j, nv)
		for k = 0; k < m; k++ {
			q.set(k, j, ar.Div(v[k], nv))
		}
	}

	return q, r, nil
}
