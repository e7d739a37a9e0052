// SPDX-License-Identifier: MIT
// Package matrix: thin SVD by repeated sub-block QR.
//
// For m >= n the input is first reduced to a square R0 (a = Q0·R0). Then, for
// each k, the trailing block W[k:,k:] is alternately factored
//
//	W = Q·R,  Rᵀ = Q₂·R₂,  W ← R₂ᵀ
//
// which is the similarity W ← Qᵀ·W·Q₂. Q and Q₂ are embedded into identities
// and accumulated into U and V block-wise. Once row k and column k are
// negligible they are zeroed (deflation) and k advances, so each pass works
// on a strictly smaller sub-matrix. Singular values are the final diagonal,
// made non-negative by flipping U's columns and sorted in descending order.
// Wide inputs are handled through the transpose.

package matrix

import (
	"sort"

	"github.com/katalvlaran/densela/numeric"
)

func svdBlock[T numeric.Element](a *block[T], method QRMethod, cfg *Options) (*block[T], *block[T], *block[T], error) {
	if a.r < a.c {
		u, s, vt, err := svdBlock(transposeBlock(a), method, cfg)
		if err != nil {
			return nil, nil, nil, err
		}

		return transposeBlock(vt), s, transposeBlock(u), nil
	}

	var (
		m, n   = a.r, a.c
		ar     = a.ar
		uu     = a.eye(n)
		vv     = a.eye(n)
		i, k   int
		iter   int
		off    float64
		tol    float64
		q, r   *block[T]
		q2, r2 *block[T]
		err    error
	)
	q0, r0, err := qrBlock(a, method)
	if err != nil {
		return nil, nil, nil, err
	}
	q0, r0 = q0.window(0, 0, m, n), r0.window(0, 0, n, n)
	work := r0
	root, _ := ar.Sqrt(r0.sumSquares(false))
	tol = cfg.eps * ar.Float64(root)

	for k = 0; k < n-1; k++ {
		for iter = 0; iter < cfg.maxIter; iter++ {
			if off = crossNorm(work, k); off <= tol {
				break
			}
			if q, r, err = qrBlock(work.window(k, k, n-k, n-k), method); err != nil {
				return nil, nil, nil, err
			}
			if q2, r2, err = qrBlock(transposeBlock(r), method); err != nil {
				return nil, nil, nil, err
			}
			work.paste(k, k, transposeBlock(r2))
			uu = mulBlock(uu, work.embed(n, k, q))
			vv = mulBlock(vv, work.embed(n, k, q2))
		}
		cfg.logger.Debug().Int("index", k).Int("steps", iter).Float64("offdiag", off).Msg("svd deflation")
		for i = k + 1; i < n; i++ {
			work.set(k, i, ar.Zero())
			work.set(i, k, ar.Zero())
		}
	}

	u := mulBlock(q0, uu)
	sigma := work.diag().data
	for i = 0; i < n; i++ {
		if ar.Cmp(sigma[i], ar.Zero()) < 0 {
			sigma[i] = ar.Neg(sigma[i])
			for k = 0; k < m; k++ {
				u.set(k, i, ar.Neg(u.at(k, i)))
			}
		}
	}

	order := make([]int, n)
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return ar.Cmp(sigma[order[x]], sigma[order[y]]) > 0 })

	uOut, s, vOut := a.like(m, n), a.like(n, n), a.like(n, n)
	for i = 0; i < n; i++ {
		src := order[i]
		s.set(i, i, sigma[src])
		for k = 0; k < m; k++ {
			uOut.set(k, i, u.at(k, src))
		}
		for k = 0; k < n; k++ {
			vOut.set(k, i, vv.at(k, src))
		}
	}

	return uOut, s, transposeBlock(vOut), nil
}

// crossNorm is √(Σ_{j>k} W[k][j]² + Σ_{i>k} W[i][k]²) as float64.
func crossNorm[T numeric.Element](w *block[T], k int) float64 {
	ar := w.ar
	acc := ar.Zero()
	for j := k + 1; j < w.c; j++ {
		acc = ar.Add(acc, ar.Mul(w.at(k, j), w.at(k, j)))
	}
	for i := k + 1; i < w.r; i++ {
		acc = ar.Add(acc, ar.Mul(w.at(i, k), w.at(i, k)))
	}
	root, _ := ar.Sqrt(acc)

	return ar.Float64(root)
}
