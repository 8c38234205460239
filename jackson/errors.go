// Package jackson: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// jackson package. All operations return these sentinels and tests check them
// via errors.Is. No operation panics on user-triggered error conditions.

package jackson

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "jackson: ..." for consistency and easy
// grepping. Validators return plain sentinels; facades may wrap with
// fmt.Errorf("ctx: %w", ErrX) — callers still match via errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// routing shape/range -> node-count mismatch -> node-spec violations ->
// population violations -> solver failures -> query-time shape mismatches.

var (
	// ErrBadRouting indicates a malformed routing matrix: empty, non-square,
	// an entry outside [0,1] or non-finite, or an open-network row summing
	// above 1.
	ErrBadRouting = errors.New("jackson: invalid routing matrix")

	// ErrUnstableTopology indicates that (I−Pᵀ) is singular: the routing
	// implies unbounded recirculation and the traffic equations have no
	// unique solution.
	ErrUnstableTopology = errors.New("jackson: unstable network topology")

	// ErrNonPositiveRate indicates a rate that must be positive was not:
	// a NodeSpec service rate, an external arrival entry that is negative or
	// non-finite, or a solved per-node arrival rate ≤ 0 (an inactive node is
	// a network-builder error, never silently dropped).
	ErrNonPositiveRate = errors.New("jackson: node rate must be positive")

	// ErrNodeIndex indicates a 1-based node index outside 1..J.
	ErrNodeIndex = errors.New("jackson: node index out of range")

	// ErrDimensionMismatch indicates a vector whose length differs from the
	// node count (occupancy vectors, external arrival vectors).
	ErrDimensionMismatch = errors.New("jackson: vector length does not match node count")

	// ErrNodeCountMismatch indicates NodeSpec count ≠ routing matrix dimension.
	ErrNodeCountMismatch = errors.New("jackson: node count does not match routing dimension")

	// ErrNonConservativeRouting indicates a closed-network routing row that
	// does not sum to 1 within the configured tolerance.
	ErrNonConservativeRouting = errors.New("jackson: closed routing must conserve customers")

	// ErrNonPositivePopulation indicates a closed-network population < 1.
	ErrNonPositivePopulation = errors.New("jackson: population must be >= 1")

	// ErrPopulationMismatch indicates a joint occupancy vector whose sum
	// differs from the closed network's fixed population.
	ErrPopulationMismatch = errors.New("jackson: occupancy must sum to the population")

	// ErrCapacityUnsupported indicates a finite Capacity on an open-network
	// node; product form requires unbounded M/M/c or M/M/∞ stations.
	ErrCapacityUnsupported = errors.New("jackson: finite capacity unsupported in open networks")

	// ErrBadServers indicates a NodeSpec server count that is neither >= 1
	// nor InfServers.
	ErrBadServers = errors.New("jackson: server count must be >= 1 or InfServers")

	// ErrBadCapacity indicates a NodeSpec capacity below the server count,
	// or a closed network whose total capacity cannot hold the population.
	ErrBadCapacity = errors.New("jackson: invalid node capacity")
)
