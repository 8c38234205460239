// Package jackson: canonical validators.
//
// Purpose:
//   - Provide a single source of truth for routing/spec/population checks.
//   - Keep constructors minimal by delegating all guard logic here.
//   - Return plain sentinels wrapped with a validator tag so call sites stay
//     uniform and tests can match via errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocation-free.
//   - Row-sum scans run in O(J²) over the routing matrix, fixed i→j order.

package jackson

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRouting checks the structural contract shared by open and closed
// networks: P is non-empty, square, and every entry is finite in [0,1].
//
// Errors: ErrBadRouting.
// Complexity: O(J²).
func ValidateRouting(p RoutingMatrix) error {
	j := p.Dim()
	if j == 0 {
		return validatorErrorf("ValidateRouting", ErrBadRouting)
	}
	for i, row := range p {
		if len(row) != j {
			return validatorErrorf(fmt.Sprintf("ValidateRouting: row %d", i), ErrBadRouting)
		}
		for _, v := range row {
			if math.IsNaN(v) || v < 0 || v > 1 {
				return validatorErrorf(fmt.Sprintf("ValidateRouting: row %d", i), ErrBadRouting)
			}
		}
	}

	return nil
}

// ValidateOpenRouting checks that every row sums to at most 1 within eps;
// the remainder is the probability of leaving the network at that node.
// Assumes ValidateRouting has passed.
//
// Errors: ErrBadRouting.
// Complexity: O(J²).
func ValidateOpenRouting(p RoutingMatrix, eps float64) error {
	for i, row := range p {
		var sum float64
		for _, v := range row {
			sum += v
		}
		if sum > 1+eps {
			return validatorErrorf(fmt.Sprintf("ValidateOpenRouting: row %d", i), ErrBadRouting)
		}
	}

	return nil
}

// ValidateClosedRouting checks that every row sums to exactly 1 within eps:
// customers never leave a closed network. Assumes ValidateRouting has passed.
//
// Errors: ErrNonConservativeRouting.
// Complexity: O(J²).
func ValidateClosedRouting(p RoutingMatrix, eps float64) error {
	for i, row := range p {
		var sum float64
		for _, v := range row {
			sum += v
		}
		if math.Abs(sum-1) > eps {
			return validatorErrorf(fmt.Sprintf("ValidateClosedRouting: row %d", i), ErrNonConservativeRouting)
		}
	}

	return nil
}

// ValidateNodeSpecs checks the per-node contracts against the routing
// dimension: count equality, positive finite service rates, legal server
// counts, and capacity rules (open networks reject finite capacities; any
// finite capacity must cover the server count).
//
// Errors: ErrNodeCountMismatch, ErrNonPositiveRate, ErrBadServers,
// ErrCapacityUnsupported, ErrBadCapacity.
// Complexity: O(J).
func ValidateNodeSpecs(specs []NodeSpec, dim int, open bool) error {
	if len(specs) != dim {
		return validatorErrorf("ValidateNodeSpecs", ErrNodeCountMismatch)
	}
	for i, s := range specs {
		tag := fmt.Sprintf("ValidateNodeSpecs: node %d", i+1)
		if math.IsNaN(s.Mu) || math.IsInf(s.Mu, 0) || s.Mu <= 0 {
			return validatorErrorf(tag, ErrNonPositiveRate)
		}
		if s.Servers < 1 && s.Servers != InfServers {
			return validatorErrorf(tag, ErrBadServers)
		}
		if s.Capacity == Unbounded {
			continue
		}
		if open {
			return validatorErrorf(tag, ErrCapacityUnsupported)
		}
		if s.Capacity < 1 || (s.Servers != InfServers && s.Capacity < s.Servers) {
			return validatorErrorf(tag, ErrBadCapacity)
		}
	}

	return nil
}

// ValidateArrivals checks the external arrival vector of an open network:
// length matches the node count, every entry is finite and non-negative, and
// at least one entry is positive (an open network with no external arrivals
// is empty, not a model).
//
// Errors: ErrDimensionMismatch, ErrNonPositiveRate.
// Complexity: O(J).
func ValidateArrivals(gamma []float64, dim int) error {
	if len(gamma) != dim {
		return validatorErrorf("ValidateArrivals", ErrDimensionMismatch)
	}
	var total float64
	for i, g := range gamma {
		if math.IsNaN(g) || math.IsInf(g, 0) || g < 0 {
			return validatorErrorf(fmt.Sprintf("ValidateArrivals: node %d", i+1), ErrNonPositiveRate)
		}
		total += g
	}
	if total <= 0 {
		return validatorErrorf("ValidateArrivals", ErrNonPositiveRate)
	}

	return nil
}
