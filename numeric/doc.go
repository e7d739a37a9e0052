// SPDX-License-Identifier: MIT

// Package numeric is the element-kind arithmetic kernel of densela.
//
// A matrix stores values of one runtime-selected Kind (Int8..Int64, Float32,
// Float64, Decimal). Algorithms never branch on the kind per operation:
// they are written once against Arithmetic[T] and the implementation for T
// is resolved a single time when the matrix is created (For, NewDecimal).
//
// The Decimal kind is backed by github.com/cockroachdb/apd/v3 with 34
// significant digits by default. Roots are refined with Newton's method and
// stop on the kind's own equality, so exact kinds never spin on a float
// tolerance.
//
// Scalar is the tagged value used at the public boundary; the package-level
// Add, Sub, Mul, Div, Neg, Abs, Cmp, Sqrt, NthRoot and Pow operate on Scalars
// and reject mixed kinds with ErrUnsupportedKind.
package numeric
