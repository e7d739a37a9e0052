// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and comparison utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/matrix"
	"github.com/katalvlaran/densela/numeric"
)

// tol is the default absolute tolerance of float comparisons in tests.
const tol = 1e-9

// allKinds lists every element kind; fracKinds those with native division.
var (
	allKinds  = numeric.Kinds()
	fracKinds = []numeric.Kind{numeric.Float32, numeric.Float64, numeric.Decimal}
)

// MustDense BUILDS a matrix of kind from row literals or fails the test.
// Implementation:
//   - Stage 1: matrix.NewFromRows(kind, rows).
//   - Stage 2: t.Fatalf on error to abort the test early.
//
// Inputs:
//   - kind: element kind; values are converted with numeric.FromFloat64.
//   - rows: non-empty rectangular literal.
//
// Returns:
//   - *matrix.Dense owning a copy of rows.
//
// Notes:
//   - Integer kinds truncate fractional literals; use whole numbers there.
func MustDense(t testing.TB, kind numeric.Kind, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(kind, rows)
	if err != nil {
		t.Fatalf("NewFromRows(%s): %v", kind, err)
	}

	return m
}

// MustIdentity returns I_n of kind.
func MustIdentity(t testing.TB, kind numeric.Kind, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.Identity(kind, n)
	if err != nil {
		t.Fatalf("Identity(%s,%d): %v", kind, n, err)
	}

	return m
}

// MustMul returns a·b or fails the test.
func MustMul(t testing.TB, a, b *matrix.Dense) *matrix.Dense {
	t.Helper()
	p, err := matrix.Mul(a, b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}

	return p
}

// MustTranspose returns mᵀ or fails the test.
func MustTranspose(t testing.TB, m *matrix.Dense) *matrix.Dense {
	t.Helper()
	tr, err := matrix.Transpose(m)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}

	return tr
}

// MustAt reads (i,j) as float64 or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v.Float64()
}

// RandFilled RETURNS an r×c Float64 matrix with entries uniform in [-1, 1).
// Implementation:
//   - Stage 1: seed a local *rand.Rand (no global source).
//   - Stage 2: fill row-major through NewGenerated.
//
// Determinism:
//   - Same seed, same matrix.
func RandFilled(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewGenerated(numeric.Float64, r, c, func(int, int) numeric.Scalar {
		return numeric.Of(rng.Float64()*2 - 1)
	})
	if err != nil {
		t.Fatalf("NewGenerated: %v", err)
	}

	return m
}

// RandSPD returns the symmetric positive definite matrix XᵀX + n·I.
func RandSPD(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	x := RandFilled(t, n, n, seed)
	g := MustMul(t, MustTranspose(t, x), x)
	shift, err := matrix.Scale(MustIdentity(t, numeric.Float64, n), numeric.Of(float64(n)))
	require.NoError(t, err)
	s, err := matrix.Add(g, shift)
	require.NoError(t, err)

	return s
}

// RandSymmetric returns (X + Xᵀ)/2.
func RandSymmetric(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	x := RandFilled(t, n, n, seed)
	s, err := matrix.Add(x, MustTranspose(t, x))
	require.NoError(t, err)
	h, err := matrix.Scale(s, numeric.Of(0.5))
	require.NoError(t, err)

	return h
}

// AssertClose FAILS the test unless got and want have equal shape and agree
// entry-wise within eps (compared in float64).
func AssertClose(t testing.TB, want [][]float64, got *matrix.Dense, eps float64) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, len(want), got.Rows(), "rows")
	require.Equal(t, len(want[0]), got.Cols(), "cols")
	for i, row := range want {
		for j, w := range row {
			if g := got.Float64At(i, j); math.Abs(g-w) > eps {
				t.Fatalf("[%d,%d]: want %.12g; got %.12g (eps %g)", i, j, w, g, eps)
			}
		}
	}
}

// AssertSame compares two matrices entry-wise within eps.
func AssertSame(t testing.TB, want, got *matrix.Dense, eps float64) {
	t.Helper()
	AssertClose(t, want.Float64s(), got, eps)
}

// AssertErrorIs checks errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ExpectPanic ASSERTS that fn() panics (any value).
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	fn()
}
