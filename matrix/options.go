// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option changes an algorithm and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/densela/numeric"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the convergence tolerance of iterative kernels
	// (Jacobi, iterated QR eigen, SVD) and the tolerance of structural predicates.
	DefaultEpsilon = 1e-10

	// DefaultMaxIterations caps iterative kernels. Reaching the cap is not an error.
	DefaultMaxIterations = 1000

	// DefaultStrassenThreshold is the size at or below which Strassen falls
	// back to direct multiplication.
	DefaultStrassenThreshold = 32

	// DefaultRankTolerance is the singular-value cutoff used by Rank.
	DefaultRankTolerance = 1e-10

	// DefaultDecimalPrecision is the significant-digit count of new Decimal matrices.
	DefaultDecimalPrecision = numeric.DefaultDecimalPrecision
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicMaxIterInvalid   = "matrix: WithMaxIterations: n must be >= 1"
	panicThresholdInvalid = "matrix: WithStrassenThreshold: threshold must be >= 1"
	panicRankTolInvalid   = "matrix: WithRankTolerance: tol must be finite, non-negative"
	panicPrecisionInvalid = "matrix: WithDecimalPrecision: precision must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps               float64        // DefaultEpsilon
	maxIter           int            // DefaultMaxIterations
	strassenThreshold int            // DefaultStrassenThreshold
	rankTol           float64        // DefaultRankTolerance
	decimalPrecision  uint32         // DefaultDecimalPrecision
	logger            zerolog.Logger // zerolog.Nop()
}

// WithEpsilon sets the tolerance of iterative kernels and predicates.
// Panics when eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIterations caps Jacobi sweeps, iterated QR steps and SVD steps per
// singular value. Panics when n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithStrassenThreshold sets the crossover size to direct multiplication.
// Panics when threshold < 1.
func WithStrassenThreshold(threshold int) Option {
	if threshold < 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.strassenThreshold = threshold }
}

// WithRankTolerance sets the singular-value cutoff used by Rank.
// Panics when tol is negative, NaN or infinite.
func WithRankTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicRankTolInvalid)
	}

	return func(o *Options) { o.rankTol = tol }
}

// WithDecimalPrecision sets the significant digits of Decimal matrices built
// by factories. Derived matrices inherit the precision of their source.
func WithDecimalPrecision(digits uint32) Option {
	if digits < 1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.decimalPrecision = digits }
}

// WithLogger routes debug events of iterative and recursive kernels
// (sweeps, convergence, recursion depth) to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// defaultOptions returns the zero-configuration state.
func defaultOptions() Options {
	return Options{
		eps:               DefaultEpsilon,
		maxIter:           DefaultMaxIterations,
		strassenThreshold: DefaultStrassenThreshold,
		rankTol:           DefaultRankTolerance,
		decimalPrecision:  DefaultDecimalPrecision,
		logger:            zerolog.Nop(),
	}
}

// gatherOptions applies opts over the defaults, skipping nil setters.
func gatherOptions(opts ...Option) *Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return &o
}
