// SPDX-License-Identifier: MIT
// Package matrix: column statistics (centering, covariance, correlation).
//
// These are compositions over Transpose, Mul and Scale, computed in Float64
// whatever the input kind: means and variances are fractional by nature.
// Observations are rows and features are columns. They feed Jacobi or SVD
// for principal-component style analyses.

package matrix

import (
	"math"

	"github.com/katalvlaran/densela/numeric"
)

const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
	opCorrelation   = "Correlation"
)

// CenterColumns subtracts the per-column mean from every entry and returns
// the centered Float64 copy together with the means (len = Cols).
// Complexity: O(r*c).
func CenterColumns(x *Dense) (*Dense, []float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	xc, means := centerColumns(x)

	return xc, means, nil
}

func centerColumns(x *Dense) (*Dense, []float64) {
	var (
		r, c  = x.Shape()
		flat  = x.e.floats()
		means = make([]float64, c)
		i, j  int
	)
	// Stage 1: column sums in fixed i→j order.
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			means[j] += flat[i*c+j]
		}
	}
	for j = 0; j < c; j++ {
		means[j] /= float64(r)
	}
	// Stage 2: broadcast-subtract into the flat copy.
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			flat[i*c+j] -= means[j]
		}
	}

	return wrap(floatBlock(r, c, flat)), means
}

// Covariance returns the sample covariance of the columns,
// Cov = (Xcᵀ·Xc)/(r−1), and the column means. At least two observations
// are required (ErrBadShape otherwise). The result is symmetric positive
// semi-definite up to rounding.
func Covariance(x *Dense) (*Dense, []float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	if x.Rows() < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrBadShape)
	}
	xc, means := centerColumns(x)
	cov, err := gramScaled(xc, x.Rows()-1)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return cov, means, nil
}

// Correlation returns the Pearson correlation of the columns via z-scoring,
// Corr = (Zᵀ·Z)/(r−1) with Z = Xc·diag(1/std), plus the means and sample
// standard deviations. A constant column (std == 0) yields a zero row and
// column in Corr, including its diagonal.
func Correlation(x *Dense) (corr *Dense, means, stds []float64, err error) {
	if err = ValidateNotNil(x); err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	r, c := x.Shape()
	if r < 2 {
		return nil, nil, nil, matrixErrorf(opCorrelation, ErrBadShape)
	}
	xc, means := centerColumns(x)
	flat := xc.e.floats()
	stds = make([]float64, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			stds[j] += flat[i*c+j] * flat[i*c+j]
		}
	}
	for j = 0; j < c; j++ {
		stds[j] = math.Sqrt(stds[j] / float64(r-1))
	}
	// Degenerate columns are zeroed rather than divided by zero.
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if stds[j] > 0 {
				flat[i*c+j] /= stds[j]
			} else {
				flat[i*c+j] = 0
			}
		}
	}
	if corr, err = gramScaled(wrap(floatBlock(r, c, flat)), r-1); err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	return corr, means, stds, nil
}

// gramScaled returns (xᵀ·x)/div for a Float64 x. It calls the engine
// product directly: a single-column x would otherwise be a vector×vector Mul.
func gramScaled(x *Dense, div int) (*Dense, error) {
	g, err := x.e.transpose().mul(x.e)
	if err != nil {
		return nil, err
	}

	return Scale(wrap(g), numeric.Of(1/float64(div)))
}

// floatBlock adopts flat as the row-major buffer of an r×c Float64 block.
func floatBlock(r, c int, flat []float64) *block[float64] {
	return &block[float64]{r: r, c: c, ar: numeric.For[float64](), data: flat}
}
