// SPDX-License-Identifier: MIT
// Package matrix: typed row-major storage behind *Dense.
//
// block[T] owns a flat []T of length r*c (offset = i*c + j) and the
// Arithmetic[T] resolved for it when the matrix was created. Every kernel in
// impl_*.go is written once against block[T]; derived blocks reuse the
// arithmetic of their source, so a Decimal matrix keeps its precision.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/densela/numeric"
)

type block[T numeric.Element] struct {
	r, c int
	ar   numeric.Arithmetic[T]
	data []T
}

// newBlock allocates a zeroed r×c block. The zero value of every element
// type is its additive identity (Dec{} is 0).
func newBlock[T numeric.Element](ar numeric.Arithmetic[T], r, c int) *block[T] {
	return &block[T]{r: r, c: c, ar: ar, data: make([]T, r*c)}
}

// newEngine allocates a zeroed block for kind k.
func newEngine(k numeric.Kind, r, c int, precision uint32) (engine, error) {
	switch k {
	case numeric.Int8:
		return newBlock(numeric.For[int8](), r, c), nil
	case numeric.Int16:
		return newBlock(numeric.For[int16](), r, c), nil
	case numeric.Int32:
		return newBlock(numeric.For[int32](), r, c), nil
	case numeric.Int64:
		return newBlock(numeric.For[int64](), r, c), nil
	case numeric.Float32:
		return newBlock(numeric.For[float32](), r, c), nil
	case numeric.Float64:
		return newBlock(numeric.For[float64](), r, c), nil
	case numeric.Decimal:
		if precision == numeric.DefaultDecimalPrecision {
			return newBlock(numeric.For[numeric.Dec](), r, c), nil
		}

		return newBlock(numeric.NewDecimal(precision), r, c), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, k)
}

// convertEngine copies src into a fresh block of kind k.
func convertEngine(src engine, k numeric.Kind, precision uint32) (engine, error) {
	if src.kind() == k {
		return src.duplicate(), nil
	}
	r, c := src.dims()
	dst, err := newEngine(k, r, c, precision)
	if err != nil {
		return nil, err
	}
	var s numeric.Scalar
	for idx := 0; idx < r*c; idx++ {
		if s, err = numeric.Convert(src.scalarAt(idx), k); err != nil {
			return nil, err
		}
		if err = dst.setScalarAt(idx, s); err != nil {
			return nil, err
		}
	}

	return dst, nil
}

// fractional returns e itself for kinds with exact or approximate division
// and a Float64 copy for integer kinds.
func fractional(e engine) engine {
	if !e.kind().IsInteger() {
		return e
	}
	f, _ := convertEngine(e, numeric.Float64, 0) // integer → float64 never fails

	return f
}

func (b *block[T]) at(i, j int) T     { return b.data[i*b.c+j] }
func (b *block[T]) set(i, j int, v T) { b.data[i*b.c+j] = v }

// like allocates a zeroed block sharing b's arithmetic.
func (b *block[T]) like(r, c int) *block[T] { return newBlock(b.ar, r, c) }

// eye returns the n×n identity in b's arithmetic.
func (b *block[T]) eye(n int) *block[T] {
	out := b.like(n, n)
	one := b.ar.One()
	for i := 0; i < n; i++ {
		out.data[i*n+i] = one
	}

	return out
}

// copyOf returns an independent copy of b.
func (b *block[T]) copyOf() *block[T] {
	out := b.like(b.r, b.c)
	copy(out.data, b.data)

	return out
}

// window copies the rows×cols sub-block starting at (r0,c0).
func (b *block[T]) window(r0, c0, rows, cols int) *block[T] {
	out := b.like(rows, cols)
	for i := 0; i < rows; i++ {
		copy(out.data[i*cols:(i+1)*cols], b.data[(r0+i)*b.c+c0:(r0+i)*b.c+c0+cols])
	}

	return out
}

// paste writes src into b with its top-left corner at (r0,c0).
func (b *block[T]) paste(r0, c0 int, src *block[T]) {
	for i := 0; i < src.r; i++ {
		copy(b.data[(r0+i)*b.c+c0:(r0+i)*b.c+c0+src.c], src.data[i*src.c:(i+1)*src.c])
	}
}

// embed returns the n×n identity with sub pasted at (k,k).
func (b *block[T]) embed(n, k int, sub *block[T]) *block[T] {
	out := b.eye(n)
	out.paste(k, k, sub)

	return out
}

// swapRowsInPlace exchanges rows i and j.
func (b *block[T]) swapRowsInPlace(i, j int) {
	if i == j {
		return
	}
	ri, rj := b.data[i*b.c:(i+1)*b.c], b.data[j*b.c:(j+1)*b.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// diag returns the main diagonal as an n×1 column.
func (b *block[T]) diag() *block[T] {
	n := min(b.r, b.c)
	out := b.like(n, 1)
	for i := 0; i < n; i++ {
		out.data[i] = b.at(i, i)
	}

	return out
}

// sumSquares returns Σ x² over every entry; with offDiag only i≠j entries count.
func (b *block[T]) sumSquares(offDiag bool) T {
	ar := b.ar
	acc := ar.Zero()
	for i := 0; i < b.r; i++ {
		for j := 0; j < b.c; j++ {
			if offDiag && i == j {
				continue
			}
			v := b.at(i, j)
			acc = ar.Add(acc, ar.Mul(v, v))
		}
	}

	return acc
}

// norm2 returns the Euclidean length of xs in b's arithmetic.
func (b *block[T]) norm2(xs []T) T {
	ar := b.ar
	acc := ar.Zero()
	for _, x := range xs {
		acc = ar.Add(acc, ar.Mul(x, x))
	}
	r, _ := ar.Sqrt(acc) // acc >= 0

	return r
}

// column copies column j.
func (b *block[T]) column(j int) []T {
	out := make([]T, b.r)
	for i := range out {
		out[i] = b.at(i, j)
	}

	return out
}

// skipsZero reports whether a zero factor v may short-circuit a product.
// Float kinds never skip, so 0·Inf still yields NaN.
func skipsZero[T numeric.Element](ar numeric.Arithmetic[T], v T) bool {
	return ar.IsZero(v) && !ar.Kind().IsFloat()
}

// absGreater reports |x| > |y|.
func absGreater[T numeric.Element](ar numeric.Arithmetic[T], x, y T) bool {
	return ar.Cmp(ar.Abs(x), ar.Abs(y)) > 0
}
