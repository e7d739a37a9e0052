// SPDX-License-Identifier: MIT
// Package matrix: determinants, minors and cofactors.
//
// detCofactor is exact in the native kind (integers stay integers) but costs
// O(n!); detLUBlock and detQRBlock are the O(n³) alternatives and need a
// kind with fractional division.

package matrix

import "github.com/katalvlaran/densela/numeric"

// detCofactor expands along row 0 recursively; 1×1 and 2×2 are closed forms.
// Zero entries skip their minor except on float kinds (0·Inf is NaN).
func detCofactor[T numeric.Element](a *block[T]) T {
	ar := a.ar
	switch a.r {
	case 1:
		return a.data[0]
	case 2:
		return ar.Sub(ar.Mul(a.data[0], a.data[3]), ar.Mul(a.data[1], a.data[2]))
	}
	acc := ar.Zero()
	for j := 0; j < a.c; j++ {
		if skipsZero(ar, a.at(0, j)) {
			continue
		}
		term := ar.Mul(a.at(0, j), detCofactor(minorBlock(a, 0, j)))
		if j%2 == 1 {
			term = ar.Neg(term)
		}
		acc = ar.Add(acc, term)
	}

	return acc
}

// minorBlock removes row r and column c.
func minorBlock[T numeric.Element](a *block[T], r, c int) *block[T] {
	out := a.like(a.r-1, a.c-1)
	k := 0
	for i := 0; i < a.r; i++ {
		if i == r {
			continue
		}
		for j := 0; j < a.c; j++ {
			if j == c {
				continue
			}
			out.data[k] = a.at(i, j)
			k++
		}
	}

	return out
}

// cofactorAt returns (−1)^(r+c)·det(minor(r,c)); a 1×1 block has cofactor 1.
func cofactorAt[T numeric.Element](a *block[T], r, c int) T {
	if a.r == 1 {
		return a.ar.One()
	}
	d := detCofactor(minorBlock(a, r, c))
	if (r+c)%2 == 1 {
		return a.ar.Neg(d)
	}

	return d
}

// comatrixBlock returns the matrix of cofactors.
func comatrixBlock[T numeric.Element](a *block[T]) *block[T] {
	out := a.like(a.r, a.c)
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			out.set(i, j, cofactorAt(a, i, j))
		}
	}

	return out
}

// detLUBlock multiplies U's diagonal from LUP and applies det P = (−1)^swaps.
func detLUBlock[T numeric.Element](a *block[T]) T {
	_, _, u, swaps := lupBlock(a)
	d := prodDiag(u)
	if swaps%2 == 1 {
		return a.ar.Neg(d)
	}

	return d
}

// detQRBlock multiplies R's diagonal and applies det Q = ±1, whose sign is
// read from Q's own LUP determinant (reflections flip it, rotations do not,
// and Gram-Schmidt gives no closed form).
func detQRBlock[T numeric.Element](a *block[T], method QRMethod) (T, error) {
	q, r, err := qrBlock(a, method)
	if err != nil {
		return a.ar.Zero(), err
	}
	d := prodDiag(r)
	if a.ar.IsZero(d) {
		return d, nil
	}
	if a.ar.Cmp(detLUBlock(q), a.ar.Zero()) < 0 {
		d = a.ar.Neg(d)
	}

	return d, nil
}

func prodDiag[T numeric.Element](a *block[T]) T {
	d := a.ar.One()
	for i := 0; i < min(a.r, a.c); i++ {
		d = a.ar.Mul(d, a.at(i, i))
	}

	return d
}
