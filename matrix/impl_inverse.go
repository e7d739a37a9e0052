// SPDX-License-Identifier: MIT
// Package matrix: inversion strategies. All of them agree on non-singular,
// well-conditioned input; they differ in cost and in how singularity is
// detected (zero determinant, zero Gauss-Jordan pivot, zero LU pivot).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/densela/numeric"
)

func inverseBlock[T numeric.Element](a *block[T], method inverseMethod, cfg *Options) (*block[T], error) {
	switch method {
	case invComatrix:
		return inverseComatrixBlock(a)
	case invGaussJordan:
		return gaussJordanBlock(a, cfg)
	case invLU:
		return solveBlock(a, a.eye(a.r), false)
	case invLUP:
		return solveBlock(a, a.eye(a.r), true)
	}

	return nil, fmt.Errorf("%w: inverse method %d", ErrUnknownMethod, method)
}

// inverseComatrixBlock returns adj(a) / det(a).
func inverseComatrixBlock[T numeric.Element](a *block[T]) (*block[T], error) {
	d := detCofactor(a)
	if a.ar.IsZero(d) {
		return nil, ErrSingular
	}
	inv := transposeBlock(comatrixBlock(a))
	for k, v := range inv.data {
		inv.data[k] = a.ar.Div(v, d)
	}

	return inv, nil
}

// gaussJordanBlock reduces the augmented [A | I] to [I | A⁻¹] with partial
// pivoting by magnitude.
func gaussJordanBlock[T numeric.Element](a *block[T], cfg *Options) (*block[T], error) {
	var (
		n       = a.r
		ar      = a.ar
		aug     = a.like(n, 2*n)
		i, j, k int
		piv     int
		p, f    T
	)
	aug.paste(0, 0, a)
	aug.paste(0, n, a.eye(n))
	for k = 0; k < n; k++ {
		piv = k
		for i = k + 1; i < n; i++ {
			if absGreater(ar, aug.at(i, k), aug.at(piv, k)) {
				piv = i
			}
		}
		if ar.IsZero(aug.at(piv, k)) {
			return nil, ErrSingular
		}
		if piv != k {
			aug.swapRowsInPlace(k, piv)
			cfg.logger.Debug().Int("col", k).Int("row", piv).Msg("gauss-jordan pivot swap")
		}
		p = aug.at(k, k)
		for j = k; j < 2*n; j++ {
			aug.set(k, j, ar.Div(aug.at(k, j), p))
		}
		for i = 0; i < n; i++ {
			if i == k {
				continue
			}
			f = aug.at(i, k)
			if ar.IsZero(f) {
				continue
			}
			for j = k; j < 2*n; j++ {
				aug.set(i, j, ar.Sub(aug.at(i, j), ar.Mul(f, aug.at(k, j))))
			}
		}
	}

	return aug.window(0, n, n, n), nil
}
