// SPDX-License-Identifier: MIT
// Package matrix: eigen-decomposition kernels.
//
// jacobiBlock is the converging solver for symmetric input. eigenQRBlock
// offers the single-step estimate A' = R·Q (eigenvalues on diag(A'),
// eigenvectors in Q), which is exact only for inputs that are already
// (nearly) triangular, and an iterated variant that repeats the step until
// the sub-diagonal vanishes.

package matrix

import "github.com/katalvlaran/densela/numeric"

// jacobiBlock diagonalizes a symmetric block with Jacobi rotations.
//
// Each iteration picks the largest |A[p,q]| (p<q) and applies the rotation
// J(p,q,θ) as a similarity transform A ← JᵀAJ, which updates rows and
// columns p and q together, and accumulates V ← V·J. Iteration stops when the
// Frobenius norm of the off-diagonal part drops below cfg.eps or after
// cfg.maxIter rotations; hitting the cap is not an error.
func jacobiBlock[T numeric.Element](a *block[T], cfg *Options) (*block[T], *block[T], error) {
	var (
		n              = a.r
		ar             = a.ar
		w              = a.copyOf()
		v              = a.eye(n)
		one            = ar.One()
		two            = ar.FromInt64(2)
		iter, i, j     int
		p, q           int
		off            float64
		app, aqq, apq  T
		theta, t, c, s T
		aip, aiq       T
		root           T
	)
	for iter = 0; n > 1 && iter < cfg.maxIter; iter++ {
		root, _ = ar.Sqrt(w.sumSquares(true))
		if off = ar.Float64(root); off < cfg.eps {
			break
		}

		p, q = 0, 1
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if absGreater(ar, w.at(i, j), w.at(p, q)) {
					p, q = i, j
				}
			}
		}
		apq = w.at(p, q)
		if ar.IsZero(apq) {
			break
		}
		app, aqq = w.at(p, p), w.at(q, q)

		// θ = (aqq − app) / 2apq ; t = sign(θ) / (|θ| + √(θ²+1))
		theta = ar.Div(ar.Sub(aqq, app), ar.Mul(two, apq))
		root, _ = ar.Sqrt(ar.Add(ar.Mul(theta, theta), one))
		t = ar.Div(one, ar.Add(ar.Abs(theta), root))
		if ar.Cmp(theta, ar.Zero()) < 0 {
			t = ar.Neg(t)
		}
		root, _ = ar.Sqrt(ar.Add(ar.Mul(t, t), one))
		c = ar.Div(one, root)
		s = ar.Mul(t, c)

		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq = w.at(i, p), w.at(i, q)
			newP := ar.Sub(ar.Mul(c, aip), ar.Mul(s, aiq))
			newQ := ar.Add(ar.Mul(s, aip), ar.Mul(c, aiq))
			w.set(i, p, newP)
			w.set(p, i, newP)
			w.set(i, q, newQ)
			w.set(q, i, newQ)
		}
		// app' = c²app − 2cs·apq + s²aqq ; aqq' = s²app + 2cs·apq + c²aqq
		cc, ss, cs2 := ar.Mul(c, c), ar.Mul(s, s), ar.Mul(two, ar.Mul(c, s))
		w.set(p, p, ar.Add(ar.Sub(ar.Mul(cc, app), ar.Mul(cs2, apq)), ar.Mul(ss, aqq)))
		w.set(q, q, ar.Add(ar.Add(ar.Mul(ss, app), ar.Mul(cs2, apq)), ar.Mul(cc, aqq)))
		w.set(p, q, ar.Zero())
		w.set(q, p, ar.Zero())

		for i = 0; i < n; i++ {
			aip, aiq = v.at(i, p), v.at(i, q)
			v.set(i, p, ar.Sub(ar.Mul(c, aip), ar.Mul(s, aiq)))
			v.set(i, q, ar.Add(ar.Mul(s, aip), ar.Mul(c, aiq)))
		}
	}
	cfg.logger.Debug().Int("rotations", iter).Float64("offdiag", off).Msg("jacobi finished")

	return w.diag(), normalizeColumns(v), nil
}

// eigenQRBlock runs one A' = R·Q step, or repeats it when iterate is set
// until the strictly lower part of A' drops below cfg.eps.
func eigenQRBlock[T numeric.Element](a *block[T], method QRMethod, iterate bool, cfg *Options) (*block[T], *block[T], error) {
	q, r, err := qrBlock(a, method)
	if err != nil {
		return nil, nil, err
	}
	w, vecs := mulBlock(r, q), q
	if !iterate {
		return w.diag(), vecs, nil
	}

	var (
		iter  int
		lower float64
	)
	for iter = 1; iter < cfg.maxIter; iter++ {
		if lower = lowerNorm(w); lower < cfg.eps {
			break
		}
		if q, r, err = qrBlock(w, method); err != nil {
			return nil, nil, err
		}
		w = mulBlock(r, q)
		vecs = mulBlock(vecs, q)
	}
	cfg.logger.Debug().Int("steps", iter).Float64("subdiag", lower).Str("method", method.String()).Msg("qr eigen finished")

	return w.diag(), vecs, nil
}

// lowerNorm is the Frobenius norm of the strictly lower triangle, as float64.
func lowerNorm[T numeric.Element](a *block[T]) float64 {
	ar := a.ar
	acc := ar.Zero()
	for i := 1; i < a.r; i++ {
		for j := 0; j < i && j < a.c; j++ {
			acc = ar.Add(acc, ar.Mul(a.at(i, j), a.at(i, j)))
		}
	}
	root, _ := ar.Sqrt(acc)

	return ar.Float64(root)
}

// normalizeColumns scales every non-zero column of a to unit length.
func normalizeColumns[T numeric.Element](a *block[T]) *block[T] {
	out := a.copyOf()
	for j := 0; j < a.c; j++ {
		norm := a.norm2(a.column(j))
		if a.ar.IsZero(norm) {
			continue
		}
		for i := 0; i < a.r; i++ {
			out.set(i, j, a.ar.Div(a.at(i, j), norm))
		}
	}

	return out
}
