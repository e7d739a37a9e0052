// SPDX-License-Identifier: MIT
// Package matrix: structural predicates.
// Exact predicates compare in the native kind (zero means the additive
// identity); IsOrthogonal and EqualApprox compare in float64 within tol.
// A nil matrix satisfies no predicate.

package matrix

import (
	"math"

	"github.com/katalvlaran/densela/numeric"
)

func isNil(m *Dense) bool { return m == nil || m.e == nil }

// IsSquare reports rows == cols.
func IsSquare(m *Dense) bool { return !isNil(m) && m.Rows() == m.Cols() }

// IsVector reports a 1×n or n×1 shape.
func IsVector(m *Dense) bool { return !isNil(m) && isVector(m) }

// everyEntry reports whether keep holds for each (i, j, value).
func everyEntry(m *Dense, keep func(i, j int, v numeric.Scalar) bool) bool {
	r, c := m.e.dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if !keep(i, j, m.e.scalarAt(i*c+j)) {
				return false
			}
		}
	}

	return true
}

// IsDiagonal reports a square matrix with zeros off the main diagonal.
func IsDiagonal(m *Dense) bool {
	return IsSquare(m) && everyEntry(m, func(i, j int, v numeric.Scalar) bool {
		return i == j || v.IsZero()
	})
}

// IsIdentity reports a square matrix with ones on the diagonal and zeros elsewhere.
func IsIdentity(m *Dense) bool {
	if !IsSquare(m) {
		return false
	}
	one, err := numeric.One(m.Kind())
	if err != nil {
		return false
	}

	return everyEntry(m, func(i, j int, v numeric.Scalar) bool {
		if i != j {
			return v.IsZero()
		}
		eq, _ := numeric.Equal(v, one)

		return eq
	})
}

// IsSymmetric reports m[i,j] == m[j,i] for every pair.
func IsSymmetric(m *Dense) bool {
	if !IsSquare(m) {
		return false
	}
	n := m.Rows()

	return everyEntry(m, func(i, j int, v numeric.Scalar) bool {
		if j <= i {
			return true
		}
		eq, _ := numeric.Equal(v, m.e.scalarAt(j*n+i))

		return eq
	})
}

// IsUpperTriangular reports zeros strictly below the main diagonal.
func IsUpperTriangular(m *Dense) bool {
	return IsSquare(m) && everyEntry(m, func(i, j int, v numeric.Scalar) bool {
		return i <= j || v.IsZero()
	})
}

// IsLowerTriangular reports zeros strictly above the main diagonal.
func IsLowerTriangular(m *Dense) bool {
	return IsSquare(m) && everyEntry(m, func(i, j int, v numeric.Scalar) bool {
		return i >= j || v.IsZero()
	})
}

// IsOrthogonal reports |(mᵀm)[i,j] − δij| <= tol for a square m.
func IsOrthogonal(m *Dense, tol float64) bool {
	if !IsSquare(m) {
		return false
	}
	var (
		n       = m.Rows()
		flat    = m.e.floats()
		i, j, k int
		dot     float64
		want    float64
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			dot = 0
			for k = 0; k < n; k++ {
				dot += flat[k*n+i] * flat[k*n+j]
			}
			want = 0
			if i == j {
				want = 1
			}
			if math.Abs(dot-want) > tol {
				return false
			}
		}
	}

	return true
}

// EqualApprox reports equal shapes and |a[i,j] − b[i,j]| <= tol everywhere,
// compared in float64. Kinds may differ.
func EqualApprox(a, b *Dense, tol float64) bool {
	if isNil(a) || isNil(b) || a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	fa, fb := a.e.floats(), b.e.floats()
	for k := range fa {
		if math.Abs(fa[k]-fb[k]) > tol || math.IsNaN(fa[k]) != math.IsNaN(fb[k]) {
			return false
		}
	}

	return true
}
