// SPDX-License-Identifier: MIT
// Package matrix: generic arithmetic kernels (elementwise, transpose, scale,
// product, trace, dot). Inputs are never mutated; every kernel allocates its
// result through the source block so the arithmetic carries over.

package matrix

import "github.com/katalvlaran/densela/numeric"

// ewOp selects an elementwise binary operation.
type ewOp uint8

const (
	ewAdd ewOp = iota
	ewSub
	ewMul
)

// elementwiseBlock computes out[k] = a[k] op b[k]; shapes are pre-validated.
func elementwiseBlock[T numeric.Element](a, b *block[T], op ewOp) *block[T] {
	var (
		ar  = a.ar
		out = a.like(a.r, a.c)
		k   int
	)
	switch op {
	case ewAdd:
		for k = range out.data {
			out.data[k] = ar.Add(a.data[k], b.data[k])
		}
	case ewSub:
		for k = range out.data {
			out.data[k] = ar.Sub(a.data[k], b.data[k])
		}
	case ewMul:
		for k = range out.data {
			out.data[k] = ar.Mul(a.data[k], b.data[k])
		}
	}

	return out
}

// transposeBlock returns aᵀ.
func transposeBlock[T numeric.Element](a *block[T]) *block[T] {
	out := a.like(a.c, a.r)
	var i, j int
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			out.data[j*a.r+i] = a.data[i*a.c+j]
		}
	}

	return out
}

// scaleBlock returns alpha·a.
func scaleBlock[T numeric.Element](a *block[T], alpha T) *block[T] {
	out := a.like(a.r, a.c)
	for k, v := range a.data {
		out.data[k] = a.ar.Mul(alpha, v)
	}

	return out
}

// mulBlock is the direct triple-loop product in i-k-j order (row-major
// friendly). On integer and Decimal kinds zero entries of a skip their inner
// loop; float kinds run it so non-finite entries of b propagate.
func mulBlock[T numeric.Element](a, b *block[T]) *block[T] {
	var (
		ar      = a.ar
		out     = a.like(a.r, b.c)
		i, k, j int
		aik     T
		row     []T
		brow    []T
	)
	for i = 0; i < a.r; i++ {
		row = out.data[i*b.c : (i+1)*b.c]
		for k = 0; k < a.c; k++ {
			aik = a.data[i*a.c+k]
			if skipsZero(ar, aik) {
				continue
			}
			brow = b.data[k*b.c : (k+1)*b.c]
			for j = 0; j < b.c; j++ {
				row[j] = ar.Add(row[j], ar.Mul(aik, brow[j]))
			}
		}
	}

	return out
}

// traceBlock sums the main diagonal of a square block.
func traceBlock[T numeric.Element](a *block[T]) T {
	acc := a.ar.Zero()
	for i := 0; i < min(a.r, a.c); i++ {
		acc = a.ar.Add(acc, a.at(i, i))
	}

	return acc
}

// dotBlock sums a[k]·b[k] over the flat buffers (vectors of equal length).
func dotBlock[T numeric.Element](a, b *block[T]) T {
	acc := a.ar.Zero()
	for k := range a.data {
		acc = a.ar.Add(acc, a.ar.Mul(a.data[k], b.data[k]))
	}

	return acc
}

// kroneckerBlock places a[i,j]·b at block (i,j) of an (a.r·b.r)×(a.c·b.c) result.
func kroneckerBlock[T numeric.Element](a, b *block[T]) *block[T] {
	var (
		ar         = a.ar
		out        = a.like(a.r*b.r, a.c*b.c)
		i, j, k, l int
		aij        T
	)
	for i = 0; i < a.r; i++ {
		for k = 0; k < b.r; k++ {
			for j = 0; j < a.c; j++ {
				aij = a.at(i, j)
				for l = 0; l < b.c; l++ {
					out.set(i*b.r+k, j*b.c+l, ar.Mul(aij, b.at(k, l)))
				}
			}
		}
	}

	return out
}
