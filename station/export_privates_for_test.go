package station

// Test-Bridge (White-Box) for Private Kernels
//
// Purpose:
//   - Expose unexported phase-sum and birth-death kernels to station_test ONLY,
//     without widening the production API.
//
// Provided Surface:
//   - ErlangCDF_TestOnly / ErlangThenExpCDF_TestOnly: pass-through to the wait-time kernels.
//   - BirthDeath_TestOnly: pass-through to the stationary-vector builder.
//
// Behavior & Determinism:
//   - Thin wrappers; no side effects, no extra allocations.

// ErlangCDF_TestOnly exposes erlangCDF for white-box tests.
func ErlangCDF_TestOnly(k int, rate, t float64) float64 { return erlangCDF(k, rate, t) }

// ErlangThenExpCDF_TestOnly exposes erlangThenExpCDF for white-box tests.
func ErlangThenExpCDF_TestOnly(k int, b, a, t float64) float64 { return erlangThenExpCDF(k, b, a, t) }

// BirthDeath_TestOnly exposes birthDeath for white-box tests.
func BirthDeath_TestOnly(top int, birth, death func(int) float64) []float64 {
	return birthDeath(top, birth, death)
}
