// Package matrix provides a dense, row-major matrix whose element kind is
// chosen at run time, together with the classic factorizations built on it.
//
// The matrix package provides:
//
//   - Dense: Int8, Int16, Int32, Int64, Float32, Float64 and Decimal entries
//     behind one concrete type; values cross the boundary as numeric.Scalar.
//   - Arithmetic: Add, Sub, Hadamard, Scale, Transpose, Mul, Dot, Trace,
//     Power and Strassen, all in the operands' native kind.
//   - Factorizations: LU, LUP, Cholesky and QR (Householder, Givens,
//     Gram-Schmidt) with forward/backward substitution and linear solves.
//   - Determinants, minors, cofactors, comatrix, adjugate and four inverses.
//   - Spectral tools: Jacobi and QR eigen estimates, SVD, Rank,
//     ConditionNumber, Norm2 and KyFanNorm.
//   - Entrywise norms (L1, infinity, Lp, Lpq), Kronecker and outer
//     products, and ridge regression.
//
// Algorithms that divide promote integer kinds to Float64; everything else
// keeps the input kind. Inputs are never mutated and every result is a fresh
// matrix. Behaviour is tuned with functional Options (tolerances, iteration
// caps, the Strassen cut-off, Decimal precision and a zerolog logger).
//
// See the examples in this package and the ops subpackage for the string
// dispatch facade.
package matrix
