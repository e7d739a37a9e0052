// SPDX-License-Identifier: MIT
// Package matrix: LU (Doolittle), LUP (partial pivoting), triangular
// substitution and the solvers built on them.

package matrix

import "github.com/katalvlaran/densela/numeric"

// luBlock factors a = L·U without pivoting (Doolittle: unit diagonal in L).
//
//	U[i][k] = A[i][k] − Σ_{j<i} L[i][j]·U[j][k]        k >= i
//	L[k][i] = (A[k][i] − Σ_{j<i} L[k][j]·U[j][i]) / U[i][i]   k > i
//
// Any exact-zero pivot U[i][i] fails with ErrSingular.
func luBlock[T numeric.Element](a *block[T]) (*block[T], *block[T], error) {
	var (
		n       = a.r
		ar      = a.ar
		l       = a.like(n, n)
		u       = a.like(n, n)
		i, j, k int
		sum     T
	)
	for i = 0; i < n; i++ {
		for k = i; k < n; k++ {
			sum = ar.Zero()
			for j = 0; j < i; j++ {
				sum = ar.Add(sum, ar.Mul(l.at(i, j), u.at(j, k)))
			}
			u.set(i, k, ar.Sub(a.at(i, k), sum))
		}
		if ar.IsZero(u.at(i, i)) {
			return nil, nil, ErrSingular
		}
		l.set(i, i, ar.One())
		for k = i + 1; k < n; k++ {
			sum = ar.Zero()
			for j = 0; j < i; j++ {
				sum = ar.Add(sum, ar.Mul(l.at(k, j), u.at(j, i)))
			}
			l.set(k, i, ar.Div(ar.Sub(a.at(k, i), sum), u.at(i, i)))
		}
	}

	return l, u, nil
}

// lupBlock factors a = P·L·U with partial pivoting: at step k the row with
// the largest |U[i][k]|, i >= k, is swapped into place. A column whose
// remaining entries are all zero is skipped, so every square input factors;
// singularity then shows as a zero on U's diagonal. swaps counts row
// exchanges (det P = (−1)^swaps).
func lupBlock[T numeric.Element](a *block[T]) (p, l, u *block[T], swaps int) {
	var (
		n       = a.r
		ar      = a.ar
		perm    = make([]int, n)
		i, j, k int
		piv     int
		f       T
	)
	u = a.copyOf()
	l = a.like(n, n)
	for i = range perm {
		perm[i] = i
	}
	for k = 0; k < n; k++ {
		piv = k
		for i = k + 1; i < n; i++ {
			if absGreater(ar, u.at(i, k), u.at(piv, k)) {
				piv = i
			}
		}
		if piv != k {
			u.swapRowsInPlace(k, piv)
			for j = 0; j < k; j++ {
				lkj, lpj := l.at(k, j), l.at(piv, j)
				l.set(k, j, lpj)
				l.set(piv, j, lkj)
			}
			perm[k], perm[piv] = perm[piv], perm[k]
			swaps++
		}
		if ar.IsZero(u.at(k, k)) {
			continue
		}
		for i = k + 1; i < n; i++ {
			f = ar.Div(u.at(i, k), u.at(k, k))
			l.set(i, k, f)
			u.set(i, k, ar.Zero())
			for j = k + 1; j < n; j++ {
				u.set(i, j, ar.Sub(u.at(i, j), ar.Mul(f, u.at(k, j))))
			}
		}
	}
	one := ar.One()
	p = a.like(n, n)
	for i = 0; i < n; i++ {
		l.set(i, i, one)
		p.set(perm[i], i, one) // row i of L·U is row perm[i] of a
	}

	return p, l, u, swaps
}

// forwardBlock solves L·x = b for lower-triangular L, column by column.
// With unit=true the diagonal is taken as 1 and never read.
func forwardBlock[T numeric.Element](l, b *block[T], unit bool) (*block[T], error) {
	var (
		n       = l.r
		ar      = l.ar
		x       = b.like(b.r, b.c)
		i, j, c int
		sum     T
	)
	for c = 0; c < b.c; c++ {
		for i = 0; i < n; i++ {
			sum = b.at(i, c)
			for j = 0; j < i; j++ {
				sum = ar.Sub(sum, ar.Mul(l.at(i, j), x.at(j, c)))
			}
			if !unit {
				if ar.IsZero(l.at(i, i)) {
					return nil, ErrSingular
				}
				sum = ar.Div(sum, l.at(i, i))
			}
			x.set(i, c, sum)
		}
	}

	return x, nil
}

// backwardBlock solves U·x = b for upper-triangular U, column by column.
func backwardBlock[T numeric.Element](u, b *block[T]) (*block[T], error) {
	var (
		n       = u.r
		ar      = u.ar
		x       = b.like(b.r, b.c)
		i, j, c int
		sum     T
	)
	for c = 0; c < b.c; c++ {
		for i = n - 1; i >= 0; i-- {
			if ar.IsZero(u.at(i, i)) {
				return nil, ErrSingular
			}
			sum = b.at(i, c)
			for j = i + 1; j < n; j++ {
				sum = ar.Sub(sum, ar.Mul(u.at(i, j), x.at(j, c)))
			}
			x.set(i, c, ar.Div(sum, u.at(i, i)))
		}
	}

	return x, nil
}

// solveBlock solves a·x = b through LU (pivot=false) or LUP (pivot=true).
// For LUP, a = P·L·U gives L·U·x = Pᵀ·b.
func solveBlock[T numeric.Element](a, b *block[T], pivot bool) (*block[T], error) {
	var (
		l, u *block[T]
		rhs  = b
		err  error
	)
	if pivot {
		var p *block[T]
		p, l, u, _ = lupBlock(a)
		rhs = mulBlock(transposeBlock(p), b)
	} else if l, u, err = luBlock(a); err != nil {
		return nil, err
	}
	y, err := forwardBlock(l, rhs, true)
	if err != nil {
		return nil, err
	}

	return backwardBlock(u, y)
}
