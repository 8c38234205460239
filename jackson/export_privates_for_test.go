package jackson

// Test-Bridge (White-Box) for Private Kernels
//
// Purpose:
//   - Expose the flat LU solver and the visit-ratio solve to jackson_test
//     ONLY, without widening the production API.
//
// Behavior & Determinism:
//   - Thin wrappers; no side effects, no extra allocations.

// SolveSquare_TestOnly exposes solveSquare for white-box tests.
func SolveSquare_TestOnly(a []float64, n int, b []float64) ([]float64, error) {
	return solveSquare(a, n, b)
}

// VisitRatios_TestOnly exposes visitRatios for white-box tests.
func VisitRatios_TestOnly(p RoutingMatrix) ([]float64, error) {
	return visitRatios(p)
}
