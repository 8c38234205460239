package jackson

import "fmt"

// opTraffic and opVisits tag solver errors at the facade, in the style of
// the package's validators.
const (
	opTraffic = "SolveTraffic"
	opVisits  = "visitRatios"
)

// SolveTraffic solves the traffic (flow-balance) equations of an open
// Jackson network:
//
//	λ_j = γ_j + Σ_i λ_i·P[i][j]   for all j,
//
// i.e. the linear system (I−Pᵀ)·λ⃗ = γ⃗, where γ_i is the rate of customers
// entering the network directly at node i (0 if none).
//
// The result is uniquely determined by (P, γ⃗): the solve is a deterministic
// LU factorization with no iteration-order dependence.
//
// Errors:
//   - ErrBadRouting        — malformed P (shape, range, row sums above 1).
//   - ErrDimensionMismatch — len(γ) ≠ dim(P).
//   - ErrNonPositiveRate   — a γ entry negative/non-finite, all γ zero, or a
//     solved λ_j ≤ 0 (the node would be inactive — a builder error, never
//     silently dropped).
//   - ErrUnstableTopology  — (I−Pᵀ) singular: unbounded recirculation.
//
// Complexity: Time O(J³), Space O(J²).
func SolveTraffic(p RoutingMatrix, gamma []float64) ([]float64, error) {
	if err := ValidateRouting(p); err != nil {
		return nil, fmt.Errorf("%s: %w", opTraffic, err)
	}
	if err := ValidateOpenRouting(p, DefaultEpsilon); err != nil {
		return nil, fmt.Errorf("%s: %w", opTraffic, err)
	}
	j := p.Dim()
	if err := ValidateArrivals(gamma, j); err != nil {
		return nil, fmt.Errorf("%s: %w", opTraffic, err)
	}

	// Assemble A = I − Pᵀ in flat row-major form: A[r][c] = δ_rc − P[c][r].
	a := make([]float64, j*j)
	var r, c int
	for r = 0; r < j; r++ {
		for c = 0; c < j; c++ {
			v := -p[c][r]
			if r == c {
				v++
			}
			a[r*j+c] = v
		}
	}

	lambda, err := solveSquare(a, j, gamma)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTraffic, err)
	}
	for i, l := range lambda {
		if l <= 0 {
			return nil, fmt.Errorf("%s: node %d: %w", opTraffic, i+1, ErrNonPositiveRate)
		}
	}

	return lambda, nil
}

// visitRatios solves the closed-network analogue of the traffic equations:
// the visit-ratio vector v⃗ satisfying v_j = Σ_i v_i·P[i][j] under the
// conservation constraint. The homogeneous system is rank-deficient by
// design (any multiple of a solution solves it), so the first node is pinned
// to v_1 = 1 and the remaining balance equations are solved around it:
// row 0 of (I−Pᵀ) is replaced by e₀ with right-hand side 1.
//
// Assumes ValidateRouting and ValidateClosedRouting have passed.
//
// Errors:
//   - ErrUnstableTopology — the pinned system is singular (the routing chain
//     is reducible: some node is unreachable from node 1).
//   - ErrNonPositiveRate  — a solved ratio v_j ≤ 0.
//
// Complexity: Time O(J³), Space O(J²).
func visitRatios(p RoutingMatrix) ([]float64, error) {
	j := p.Dim()
	a := make([]float64, j*j)
	b := make([]float64, j)

	// Pinned first row: v_1 = 1.
	a[0] = 1
	b[0] = 1

	var r, c int
	for r = 1; r < j; r++ {
		for c = 0; c < j; c++ {
			v := -p[c][r]
			if r == c {
				v++
			}
			a[r*j+c] = v
		}
	}

	visits, err := solveSquare(a, j, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opVisits, err)
	}
	for i, v := range visits {
		if v <= 0 {
			return nil, fmt.Errorf("%s: node %d: %w", opVisits, i+1, ErrNonPositiveRate)
		}
	}

	return visits, nil
}
