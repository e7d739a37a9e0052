// SPDX-License-Identifier: MIT
// Package matrix provides the dense multi-kind matrix and its algorithms.
// Dense is a concrete, row-major matrix whose element kind is chosen at run
// time; entries cross its boundary as numeric.Scalar values.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/densela/numeric"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of one element kind.
// It exclusively owns its buffer: every operation returns an independent
// copy, and only Set, SetIndex, SwapRows and Reshape mutate in place.
// A Dense is not safe for concurrent mutation.
type Dense struct {
	e engine
}

func wrap(e engine) *Dense { return &Dense{e: e} }

// NewDense creates a rows×cols matrix of kind filled with the additive identity.
// Stage 1 (Validate): rows, cols > 0 and kind in the closed set.
// Stage 2 (Prepare): allocate the typed buffer with the kind's arithmetic.
// Complexity: O(r*c) time and memory.
func NewDense(kind numeric.Kind, rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, denseErrorf("New", rows, cols, ErrBadShape)
	}
	o := gatherOptions(opts...)
	e, err := newEngine(kind, rows, cols, o.decimalPrecision)
	if err != nil {
		return nil, denseErrorf("New", rows, cols, err)
	}

	return wrap(e), nil
}

// NewFilled creates a rows×cols matrix with every entry equal to v.
// The kind is taken from v.
func NewFilled(rows, cols int, v numeric.Scalar, opts ...Option) (*Dense, error) {
	return NewGenerated(v.Kind(), rows, cols, func(int, int) numeric.Scalar { return v }, opts...)
}

// NewGenerated creates a rows×cols matrix with entry (i,j) = gen(i,j).
// gen must return Scalars of kind.
func NewGenerated(kind numeric.Kind, rows, cols int, gen func(i, j int) numeric.Scalar, opts ...Option) (*Dense, error) {
	m, err := NewDense(kind, rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if err = m.e.setScalarAt(i*cols+j, gen(i, j)); err != nil {
				return nil, denseErrorf("Generate", i, j, err)
			}
		}
	}

	return m, nil
}

// NewFromRows builds a matrix of kind from float64 rows (all of equal
// length). Integer kinds truncate; Decimal keeps the shortest decimal form.
func NewFromRows(kind numeric.Kind, rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, denseErrorf("FromRows", len(rows), 0, ErrBadShape)
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, denseErrorf("FromRows", i, len(row), ErrDimensionMismatch)
		}
	}
	if !kind.Valid() {
		return nil, denseErrorf("FromRows", len(rows), cols, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind))
	}

	return NewGenerated(kind, len(rows), cols, func(i, j int) numeric.Scalar {
		return numeric.MustFloat64(kind, rows[i][j])
	}, opts...)
}

// NewFromScalars builds a rows×cols matrix from row-major values of kind.
func NewFromScalars(kind numeric.Kind, rows, cols int, values []numeric.Scalar, opts ...Option) (*Dense, error) {
	if len(values) != rows*cols {
		return nil, denseErrorf("FromScalars", rows, cols, ErrDimensionMismatch)
	}

	return NewGenerated(kind, rows, cols, func(i, j int) numeric.Scalar { return values[i*cols+j] }, opts...)
}

// NewColumn builds an n×1 column vector of kind.
func NewColumn(kind numeric.Kind, values []float64, opts ...Option) (*Dense, error) {
	rows := make([][]float64, len(values))
	for i, v := range values {
		rows[i] = []float64{v}
	}

	return NewFromRows(kind, rows, opts...)
}

// Identity returns the n×n identity of kind.
func Identity(kind numeric.Kind, n int, opts ...Option) (*Dense, error) {
	one, err := numeric.One(kind)
	if err != nil {
		return nil, denseErrorf("Identity", n, n, err)
	}
	zero, _ := numeric.Zero(kind)

	return NewGenerated(kind, n, n, func(i, j int) numeric.Scalar {
		if i == j {
			return one
		}

		return zero
	}, opts...)
}

// Zeros is NewDense under its conventional name.
func Zeros(kind numeric.Kind, rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(kind, rows, cols, opts...)
}

// Ones returns a rows×cols matrix of ones.
func Ones(kind numeric.Kind, rows, cols int, opts ...Option) (*Dense, error) {
	one, err := numeric.One(kind)
	if err != nil {
		return nil, denseErrorf("Ones", rows, cols, err)
	}

	return NewFilled(rows, cols, one, opts...)
}

// Rows returns the number of rows.
func (m *Dense) Rows() int {
	r, _ := m.e.dims()

	return r
}

// Cols returns the number of columns.
func (m *Dense) Cols() int {
	_, c := m.e.dims()

	return c
}

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.e.dims() }

// Len returns rows*cols.
func (m *Dense) Len() int {
	r, c := m.e.dims()

	return r * c
}

// Kind returns the element kind.
func (m *Dense) Kind() numeric.Kind { return m.e.kind() }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	r, c := m.e.dims()
	if row < 0 || row >= r || col < 0 || col >= c {
		return 0, ErrOutOfRange
	}

	return row*c + col, nil
}

// At returns the element at (row, col).
func (m *Dense) At(row, col int) (numeric.Scalar, error) {
	k, err := m.indexOf(row, col)
	if err != nil {
		return numeric.Scalar{}, denseErrorf("At", row, col, err)
	}

	return m.e.scalarAt(k), nil
}

// Set writes v at (row, col). v must carry the matrix kind.
func (m *Dense) Set(row, col int, v numeric.Scalar) error {
	k, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	if err = m.e.setScalarAt(k, v); err != nil {
		return denseErrorf("Set", row, col, err)
	}

	return nil
}

// AtIndex returns the element at row-major offset k.
func (m *Dense) AtIndex(k int) (numeric.Scalar, error) {
	if k < 0 || k >= m.Len() {
		return numeric.Scalar{}, denseErrorf("AtIndex", k, 0, ErrOutOfRange)
	}

	return m.e.scalarAt(k), nil
}

// SetIndex writes v at row-major offset k.
func (m *Dense) SetIndex(k int, v numeric.Scalar) error {
	if k < 0 || k >= m.Len() {
		return denseErrorf("SetIndex", k, 0, ErrOutOfRange)
	}
	if err := m.e.setScalarAt(k, v); err != nil {
		return denseErrorf("SetIndex", k, 0, err)
	}

	return nil
}

// Float64At is At converted to float64; it panics on an out-of-range index.
// Intended for tests and display code that already checked bounds.
func (m *Dense) Float64At(row, col int) float64 {
	k, err := m.indexOf(row, col)
	if err != nil {
		panic(denseErrorf("Float64At", row, col, err))
	}

	return m.e.scalarAt(k).Float64()
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense { return wrap(m.e.duplicate()) }

// Convert returns a copy re-expressed in kind (see numeric.Convert for the
// rounding rules). Converting to the same kind is a Clone.
func (m *Dense) Convert(kind numeric.Kind, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	e, err := convertEngine(m.e, kind, o.decimalPrecision)
	if err != nil {
		return nil, matrixErrorf(opConvert, err)
	}

	return wrap(e), nil
}

// SubMatrix copies the rows×cols block whose top-left corner is (r0, c0).
func (m *Dense) SubMatrix(r0, c0, rows, cols int) (*Dense, error) {
	r, c := m.e.dims()
	if rows <= 0 || cols <= 0 {
		return nil, denseErrorf("SubMatrix", rows, cols, ErrBadShape)
	}
	if r0 < 0 || c0 < 0 || r0+rows > r || c0+cols > c {
		return nil, denseErrorf("SubMatrix", r0, c0, ErrOutOfRange)
	}

	return wrap(m.e.subEngine(r0, c0, rows, cols)), nil
}

// SwapRows exchanges rows i and j in place.
func (m *Dense) SwapRows(i, j int) error {
	if _, err := m.indexOf(i, 0); err != nil {
		return denseErrorf("SwapRows", i, j, err)
	}
	if _, err := m.indexOf(j, 0); err != nil {
		return denseErrorf("SwapRows", i, j, err)
	}
	m.e.swapRows(i, j)

	return nil
}

// Reshape reinterprets the row-major buffer as rows×cols in place.
// The element count must not change.
func (m *Dense) Reshape(rows, cols int) error {
	if rows <= 0 || cols <= 0 || rows*cols != m.Len() {
		return denseErrorf("Reshape", rows, cols, ErrBadShape)
	}
	m.e.reshape(rows, cols)

	return nil
}

// Snapshot returns a 2-D copy of the entries for display collaborators.
func Snapshot(m Matrix) ([][]numeric.Scalar, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	out := make([][]numeric.Scalar, m.Rows())
	var err error
	for i := range out {
		out[i] = make([]numeric.Scalar, m.Cols())
		for j := range out[i] {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// Float64s returns a 2-D float64 copy of the entries.
func (m *Dense) Float64s() [][]float64 {
	r, c := m.e.dims()
	flat := m.e.floats()
	out := make([][]float64, r)
	for i := range out {
		out[i] = flat[i*c : (i+1)*c : (i+1)*c]
	}

	return out
}

// String renders one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		r, c = m.e.dims()
		i, j int
	)
	for i = 0; i < r; i++ {
		sb.WriteByte('[')
		for j = 0; j < c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.e.scalarAt(i*c + j).String())
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
