// Package densela is a dense linear-algebra toolkit for Go: one matrix type
// over integer, floating and decimal kinds, and the factorizations that
// numerical code reaches for first.
//
// What is inside?
//
//	numeric/    the Kind set, the tagged Scalar and per-kind arithmetic
//	            kernels (Decimal is backed by cockroachdb/apd)
//	matrix/     Dense, arithmetic, LU/LUP/Cholesky/QR, determinants,
//	            inverses, eigenvalues, SVD, rank and condition number
//	matrix/ops/ name-based dispatch ("lup", "givens", "jacobi", …)
//
// Why densela?
//
//   - Exact where it can be: integer determinants and products never
//     leave their kind, Decimal keeps 34 significant digits by default
//   - Predictable: validated inputs, wrapped sentinel errors, no mutation
//   - Observable: iterative algorithms report through an optional zerolog
//     logger
//
// Quick example:
//
//	a, _ := matrix.NewFromRows(numeric.Int64, [][]float64{{4, 3}, {6, 3}})
//	d, _ := matrix.Determinant(a) // -6, still int64
//
// See examples/ for a runnable tour.
//
//	go get github.com/katalvlaran/densela
package densela
