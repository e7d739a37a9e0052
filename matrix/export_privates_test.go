// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the Options Snapshot
//
// Purpose:
//   - Expose a read-only view of the internal Options to matrix_test ONLY.
//   - Lives in a _test.go file of package matrix, so it never reaches
//     production builds and needs no build tags.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields. If Options
//     changes, update snapshotOf accordingly (tests will catch drift).

// OptionsSnapshot mirrors Options with exported fields.
type OptionsSnapshot struct {
	Eps               float64
	MaxIter           int
	StrassenThreshold int
	RankTol           float64
	DecimalPrecision  uint32
}

func snapshotOf(o *Options) OptionsSnapshot {
	return OptionsSnapshot{
		Eps:               o.eps,
		MaxIter:           o.maxIter,
		StrassenThreshold: o.strassenThreshold,
		RankTol:           o.rankTol,
		DecimalPrecision:  o.decimalPrecision,
	}
}

// GatherOptionsSnapshot_TestOnly applies opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly   = panicEpsilonInvalid
	PanicMaxIterInvalid_TestOnly   = panicMaxIterInvalid
	PanicThresholdInvalid_TestOnly = panicThresholdInvalid
	PanicRankTolInvalid_TestOnly   = panicRankTolInvalid
	PanicPrecisionInvalid_TestOnly = panicPrecisionInvalid
)
