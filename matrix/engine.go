// SPDX-License-Identifier: MIT
// Package matrix: type-erased engine over block[T].
//
// *Dense carries an engine so the public API stays free of type parameters
// while every kernel runs on a concrete []T. Each method below is a thin
// adapter from the erased signature to a generic kernel in impl_*.go; the
// adapters return an untyped nil on failure so callers can test e == nil.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/densela/numeric"
)

type engine interface {
	kind() numeric.Kind
	dims() (int, int)
	scalarAt(k int) numeric.Scalar
	setScalarAt(k int, v numeric.Scalar) error
	floats() []float64
	duplicate() engine
	identity(n int) engine
	subEngine(r0, c0, rows, cols int) engine
	swapRows(i, j int)
	reshape(rows, cols int)

	transpose() engine
	elementwise(o engine, op ewOp) (engine, error)
	scale(s numeric.Scalar) (engine, error)
	mul(o engine) (engine, error)
	kronecker(o engine) (engine, error)
	strassen(o engine, cfg *Options) (engine, error)
	trace() numeric.Scalar
	dot(o engine) (numeric.Scalar, error)

	lu() (engine, engine, error)
	lup() (p, l, u engine, swaps int)
	cholesky() (engine, error)
	qr(method QRMethod) (engine, engine, error)
	substitute(b engine, lower bool) (engine, error)
	solve(b engine, pivot bool) (engine, error)

	det() numeric.Scalar
	detLU() numeric.Scalar
	detQR(method QRMethod) (numeric.Scalar, error)
	minor(r, c int) engine
	cofactor(r, c int) numeric.Scalar
	comatrix() engine
	inverse(method inverseMethod, cfg *Options) (engine, error)

	jacobi(cfg *Options) (vals, vecs engine, err error)
	eigenQR(method QRMethod, iterate bool, cfg *Options) (vals, vecs engine, err error)
	svd(method QRMethod, cfg *Options) (u, s, vt engine, err error)
}

// peer asserts that o stores the same element type as b.
func peer[T numeric.Element](b *block[T], o engine) (*block[T], error) {
	ob, ok := o.(*block[T])
	if !ok {
		return nil, fmt.Errorf("%w: %s with %s", ErrUnsupportedKind, b.ar.Kind(), o.kind())
	}

	return ob, nil
}

func (b *block[T]) kind() numeric.Kind            { return b.ar.Kind() }
func (b *block[T]) dims() (int, int)              { return b.r, b.c }
func (b *block[T]) scalarAt(k int) numeric.Scalar { return numeric.Of(b.data[k]) }
func (b *block[T]) duplicate() engine             { return b.copyOf() }
func (b *block[T]) identity(n int) engine         { return b.eye(n) }
func (b *block[T]) swapRows(i, j int)             { b.swapRowsInPlace(i, j) }
func (b *block[T]) transpose() engine             { return transposeBlock(b) }
func (b *block[T]) trace() numeric.Scalar         { return numeric.Of(traceBlock(b)) }
func (b *block[T]) det() numeric.Scalar           { return numeric.Of(detCofactor(b)) }
func (b *block[T]) detLU() numeric.Scalar         { return numeric.Of(detLUBlock(b)) }
func (b *block[T]) minor(r, c int) engine         { return minorBlock(b, r, c) }
func (b *block[T]) comatrix() engine              { return comatrixBlock(b) }

func (b *block[T]) cofactor(r, c int) numeric.Scalar {
	return numeric.Of(cofactorAt(b, r, c))
}

func (b *block[T]) subEngine(r0, c0, rows, cols int) engine {
	return b.window(r0, c0, rows, cols)
}

func (b *block[T]) setScalarAt(k int, v numeric.Scalar) error {
	x, err := numeric.Value[T](v)
	if err != nil {
		return err
	}
	b.data[k] = x

	return nil
}

func (b *block[T]) floats() []float64 {
	out := make([]float64, len(b.data))
	for k, v := range b.data {
		out[k] = b.ar.Float64(v)
	}

	return out
}

// reshape reinterprets the buffer; the caller has checked rows*cols.
func (b *block[T]) reshape(rows, cols int) { b.r, b.c = rows, cols }

func (b *block[T]) elementwise(o engine, op ewOp) (engine, error) {
	ob, err := peer(b, o)
	if err != nil {
		return nil, err
	}

	return elementwiseBlock(b, ob, op), nil
}

func (b *block[T]) scale(s numeric.Scalar) (engine, error) {
	alpha, err := numeric.Value[T](s)
	if err != nil {
		return nil, err
	}

	return scaleBlock(b, alpha), nil
}

func (b *block[T]) mul(o engine) (engine, error) {
	ob, err := peer(b, o)
	if err != nil {
		return nil, err
	}

	return mulBlock(b, ob), nil
}

func (b *block[T]) kronecker(o engine) (engine, error) {
	ob, err := peer(b, o)
	if err != nil {
		return nil, err
	}

	return kroneckerBlock(b, ob), nil
}

func (b *block[T]) strassen(o engine, cfg *Options) (engine, error) {
	ob, err := peer(b, o)
	if err != nil {
		return nil, err
	}

	return strassenBlock(b, ob, cfg, 0), nil
}

func (b *block[T]) dot(o engine) (numeric.Scalar, error) {
	ob, err := peer(b, o)
	if err != nil {
		return numeric.Scalar{}, err
	}

	return numeric.Of(dotBlock(b, ob)), nil
}

func (b *block[T]) lu() (engine, engine, error) {
	l, u, err := luBlock(b)
	if err != nil {
		return nil, nil, err
	}

	return l, u, nil
}

func (b *block[T]) lup() (engine, engine, engine, int) {
	p, l, u, swaps := lupBlock(b)

	return p, l, u, swaps
}

func (b *block[T]) cholesky() (engine, error) {
	l, err := choleskyBlock(b)
	if err != nil {
		return nil, err
	}

	return l, nil
}

func (b *block[T]) qr(method QRMethod) (engine, engine, error) {
	q, r, err := qrBlock(b, method)
	if err != nil {
		return nil, nil, err
	}

	return q, r, nil
}

func (b *block[T]) substitute(rhs engine, lower bool) (engine, error) {
	ob, err := peer(b, rhs)
	if err != nil {
		return nil, err
	}
	var x *block[T]
	if lower {
		x, err = forwardBlock(b, ob, false)
	} else {
		x, err = backwardBlock(b, ob)
	}
	if err != nil {
		return nil, err
	}

	return x, nil
}

func (b *block[T]) solve(rhs engine, pivot bool) (engine, error) {
	ob, err := peer(b, rhs)
	if err != nil {
		return nil, err
	}
	x, err := solveBlock(b, ob, pivot)
	if err != nil {
		return nil, err
	}

	return x, nil
}

func (b *block[T]) detQR(method QRMethod) (numeric.Scalar, error) {
	d, err := detQRBlock(b, method)
	if err != nil {
		return numeric.Scalar{}, err
	}

	return numeric.Of(d), nil
}

func (b *block[T]) inverse(method inverseMethod, cfg *Options) (engine, error) {
	inv, err := inverseBlock(b, method, cfg)
	if err != nil {
		return nil, err
	}

	return inv, nil
}

func (b *block[T]) jacobi(cfg *Options) (engine, engine, error) {
	vals, vecs, err := jacobiBlock(b, cfg)
	if err != nil {
		return nil, nil, err
	}

	return vals, vecs, nil
}

func (b *block[T]) eigenQR(method QRMethod, iterate bool, cfg *Options) (engine, engine, error) {
	vals, vecs, err := eigenQRBlock(b, method, iterate, cfg)
	if err != nil {
		return nil, nil, err
	}

	return vals, vecs, nil
}

func (b *block[T]) svd(method QRMethod, cfg *Options) (engine, engine, engine, error) {
	u, s, vt, err := svdBlock(b, method, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	return u, s, vt, nil
}
