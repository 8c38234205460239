// Package jackson: domain types shared by the open and closed network cores.
// Errors live in errors.go, validators in validate.go, per the package
// conventions.
package jackson

// DefaultEpsilon is the non-negative tolerance used by stochasticity checks
// (closed routing rows must sum to 1 within this bound) and by tests that
// verify probability mass sums.
const DefaultEpsilon = 1e-9

// InfServers marks a NodeSpec as an infinite-server (M/M/∞) station.
const InfServers = -1

// Unbounded is the zero Capacity value: the node imposes no occupancy limit.
const Unbounded = 0

// NodeSpec describes one station of a network. Immutable once a network is
// constructed from it.
//
// Fields:
//   - Mu       — service rate per server; must be positive and finite.
//   - Servers  — number of identical servers (>= 1), or InfServers for an
//     infinite-server station.
//   - Capacity — optional occupancy cap. Unbounded (the zero value) means no
//     cap. Finite capacities are honored only by closed networks, where they
//     fold into the per-state service weights; open networks reject them
//     (product form requires unbounded stations).
type NodeSpec struct {
	Mu       float64
	Servers  int
	Capacity int
}

// RoutingMatrix is a square matrix P with P[i][j] = probability a customer
// leaving node i routes to node j. Rows sum to <= 1 for open networks (the
// remainder exits the system) and to exactly 1 for closed networks. Diagonal
// entries (self-routing feedback) are allowed.
type RoutingMatrix [][]float64

// Dim returns the number of nodes J the matrix routes between.
func (p RoutingMatrix) Dim() int { return len(p) }
