package jackson

import (
	"fmt"

	"github.com/katalvlaran/queueing/station"
)

const opNewOpen = "NewOpen"

// OpenNetwork is an open Jackson network: J stations, a substochastic
// routing matrix, and external Poisson arrivals. By the product-form theorem
// its joint steady state factors into independent per-node M/M/c (or M/M/∞)
// marginals once the traffic equations are solved, so the per-node models
// are built once at construction and every query is a pure read.
//
// Instances are immutable after NewOpen; share them freely across
// goroutines. To change routing or rates, construct a new network.
type OpenNetwork struct {
	specs   []NodeSpec
	routing RoutingMatrix
	gamma   []float64
	lambda  []float64       // solved effective arrival rates, index 0..J−1
	nodes   []station.Model // per-node marginal models, index 0..J−1
	inflow  float64         // Σ γ_i, the total external arrival rate
}

// NewOpen constructs an open Jackson network from node specs, a routing
// matrix and an external arrival-rate vector (γ_i = 0 for nodes with no
// external stream).
//
// Construction validates all inputs, solves the traffic equations once, and
// instantiates one station model per node: M/M/c for finite server counts,
// M/M/∞ for InfServers. Station-level errors surface unchanged — in
// particular station.ErrSaturated when some λ_i ≥ c_i·μ_i, meaning the
// network has no steady state.
//
// Errors: ErrBadRouting, ErrNodeCountMismatch, ErrNonPositiveRate,
// ErrBadServers, ErrCapacityUnsupported, ErrDimensionMismatch,
// ErrUnstableTopology, station.ErrSaturated.
//
// Complexity: O(J³) for the traffic solve, O(Σc_i) for the station builds.
func NewOpen(specs []NodeSpec, routing RoutingMatrix, gamma []float64, opts ...Option) (*OpenNetwork, error) {
	o := gatherOptions(opts...)

	if err := ValidateRouting(routing); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewOpen, err)
	}
	if err := ValidateOpenRouting(routing, o.eps); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewOpen, err)
	}
	if err := ValidateNodeSpecs(specs, routing.Dim(), true); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewOpen, err)
	}

	lambda, err := SolveTraffic(routing, gamma)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewOpen, err)
	}

	nodes := make([]station.Model, len(specs))
	var inflow float64
	for i, s := range specs {
		var m station.Model
		if s.Servers == InfServers {
			m, err = station.NewMMInf(lambda[i], s.Mu)
		} else {
			m, err = station.NewMMC(lambda[i], s.Mu, s.Servers)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: node %d: %w", opNewOpen, i+1, err)
		}
		nodes[i] = m
	}
	for _, g := range gamma {
		inflow += g
	}

	return &OpenNetwork{
		specs:   append([]NodeSpec(nil), specs...),
		routing: routing,
		gamma:   append([]float64(nil), gamma...),
		lambda:  lambda,
		nodes:   nodes,
		inflow:  inflow,
	}, nil
}

// Size returns the number of nodes J.
func (n *OpenNetwork) Size() int { return len(n.nodes) }

// Node returns the single-station model of node i (1-based).
// Errors: ErrNodeIndex.
func (n *OpenNetwork) Node(i int) (station.Model, error) {
	if i < 1 || i > len(n.nodes) {
		return nil, ErrNodeIndex
	}

	return n.nodes[i-1], nil
}

// Lambda returns the solved effective arrival rate at node i (1-based).
// Errors: ErrNodeIndex.
func (n *OpenNetwork) Lambda(i int) (float64, error) {
	if i < 1 || i > len(n.lambda) {
		return 0, ErrNodeIndex
	}

	return n.lambda[i-1], nil
}

// Pn returns the joint steady-state probability of the occupancy vector occ
// (one entry per node): by product form, P(n⃗) = Π_i Pn_i(n_i).
// Errors: ErrDimensionMismatch when len(occ) ≠ node count.
func (n *OpenNetwork) Pn(occ []int) (float64, error) {
	if len(occ) != len(n.nodes) {
		return 0, ErrDimensionMismatch
	}
	prob := 1.0
	for i, m := range n.nodes {
		prob *= m.Pn(occ[i])
	}

	return prob, nil
}

// P0i returns the probability of zero customers at node i (1-based):
// shorthand for the node's marginal Pn(0).
// Errors: ErrNodeIndex.
func (n *OpenNetwork) P0i(i int) (float64, error) {
	if i < 1 || i > len(n.nodes) {
		return 0, ErrNodeIndex
	}

	return n.nodes[i-1].Pn(0), nil
}

// Pi0 returns the marginal probability of k customers at the first
// (reference/gateway) node — the same product-form marginal the aggregate
// formulas condition on.
func (n *OpenNetwork) Pi0(k int) float64 { return n.nodes[0].Pn(k) }

// L returns the mean total number of customers in the network: Σ_i L_i.
func (n *OpenNetwork) L() float64 {
	var sum float64
	for _, m := range n.nodes {
		sum += m.L()
	}

	return sum
}

// Lq returns the mean total number of waiting customers: Σ_i Lq_i.
func (n *OpenNetwork) Lq() float64 {
	var sum float64
	for _, m := range n.nodes {
		sum += m.Lq()
	}

	return sum
}

// W returns the mean end-to-end sojourn time L/Λ, with Λ = Σ γ_i the total
// external arrival rate (Little's law over the whole network).
func (n *OpenNetwork) W() float64 { return n.L() / n.inflow }

// Wq returns the mean total waiting time Lq/Λ.
func (n *OpenNetwork) Wq() float64 { return n.Lq() / n.inflow }
