package jackson

import "fmt"

const opNewClosed = "NewClosed"

// ClosedNetwork is a closed Jackson network: J stations, a stochastic
// routing matrix (customers are conserved), and a fixed population of N
// circulating customers. The normalization constant, the per-node weight
// tables and all marginal distributions are computed once at construction
// via the convolution algorithm and cached; every query is a pure read.
//
// Instances are immutable after NewClosed; share them freely across
// goroutines. To change routing, rates or the population, construct a new
// network.
type ClosedNetwork struct {
	specs      []NodeSpec
	routing    RoutingMatrix
	population int
	visits     []float64   // visit ratios, v_1 pinned to 1
	relUtil    []float64   // x_j = v_j / μ_j
	weights    [][]float64 // g_j(0..N) per node
	bigG       []float64   // G(J, 0..N)
	marginals  [][]float64 // P_j(0..N) per node
	cycleRate  float64     // G(N−1)/G(N): throughput at the reference node
}

// NewClosed constructs a closed Jackson network from node specs, a
// stochastic routing matrix and a fixed population N ≥ 1.
//
// Construction validates all inputs, solves the visit-ratio equations with
// the first node pinned to 1, runs the convolution recursion, and derives
// every per-node marginal by deconvolution.
//
// Errors: ErrNonPositivePopulation, ErrBadRouting, ErrNonConservativeRouting,
// ErrNodeCountMismatch, ErrNonPositiveRate, ErrBadServers, ErrBadCapacity
// (also raised when the summed node capacities cannot hold the population),
// ErrUnstableTopology.
//
// Complexity: Time O(J³ + J·N²), Space O(J·N).
func NewClosed(specs []NodeSpec, routing RoutingMatrix, population int, opts ...Option) (*ClosedNetwork, error) {
	o := gatherOptions(opts...)

	if population < 1 {
		return nil, fmt.Errorf("%s: %w", opNewClosed, ErrNonPositivePopulation)
	}
	if err := ValidateRouting(routing); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewClosed, err)
	}
	if err := ValidateClosedRouting(routing, o.eps); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewClosed, err)
	}
	if err := ValidateNodeSpecs(specs, routing.Dim(), false); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewClosed, err)
	}

	visits, err := visitRatios(routing)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewClosed, err)
	}

	j := len(specs)
	relUtil := make([]float64, j)
	weights := make([][]float64, j)
	for i, s := range specs {
		relUtil[i] = visits[i] / s.Mu
		weights[i] = nodeWeights(s, relUtil[i], population)
	}

	bigG := convolve(weights, population)
	if bigG[population] <= 0 {
		// every joint state carries zero weight: the capacities cannot hold N
		return nil, fmt.Errorf("%s: %w", opNewClosed, ErrBadCapacity)
	}

	marginals := make([][]float64, j)
	if j == 1 {
		// Degenerate single-node network: Σ n_j = N collapses the joint state
		// space to the point {N}, so the circulating-population marginal is
		// read off the weight curve directly, normalized over 0..N.
		var norm float64
		for _, w := range weights[0] {
			norm += w
		}
		pj := make([]float64, population+1)
		for n := 0; n <= population; n++ {
			pj[n] = weights[0][n] / norm
		}
		marginals[0] = pj
	} else {
		for i := range specs {
			excluded := deconvolve(bigG, weights[i])
			pj := make([]float64, population+1)
			for n := 0; n <= population; n++ {
				pj[n] = weights[i][n] * excluded[population-n] / bigG[population]
			}
			marginals[i] = pj
		}
	}

	return &ClosedNetwork{
		specs:      append([]NodeSpec(nil), specs...),
		routing:    routing,
		population: population,
		visits:     visits,
		relUtil:    relUtil,
		weights:    weights,
		bigG:       bigG,
		marginals:  marginals,
		cycleRate:  bigG[population-1] / bigG[population],
	}, nil
}

// Size returns the number of nodes J.
func (c *ClosedNetwork) Size() int { return len(c.specs) }

// MaxCustomers returns the fixed population N: unlike open networks, the
// reachable occupancy is finite by construction.
func (c *ClosedNetwork) MaxCustomers() float64 { return float64(c.population) }

// Pi returns the marginal probabilities P_j(n) of node j (1-based) for each
// occupancy in ns, in matching order. Entries outside 0..N map to 0.
// Errors: ErrNodeIndex.
func (c *ClosedNetwork) Pi(ns []int, j int) ([]float64, error) {
	if j < 1 || j > len(c.marginals) {
		return nil, ErrNodeIndex
	}
	pj := c.marginals[j-1]
	out := make([]float64, len(ns))
	for i, n := range ns {
		if n < 0 || n > c.population {
			continue // probability 0 outside the support
		}
		out[i] = pj[n]
	}

	return out, nil
}

// Pn returns the joint steady-state probability of the occupancy vector occ:
// Π_j g_j(n_j) / G(J,N).
//
// Errors:
//   - ErrNodeCountMismatch  — len(occ) ≠ node count.
//   - ErrPopulationMismatch — Σ occ ≠ N.
func (c *ClosedNetwork) Pn(occ []int) (float64, error) {
	if len(occ) != len(c.specs) {
		return 0, ErrNodeCountMismatch
	}
	total := 0
	for _, n := range occ {
		total += n
	}
	if total != c.population {
		return 0, ErrPopulationMismatch
	}

	prob := 1.0
	for i, n := range occ {
		if n < 0 || n > c.population {
			return 0, nil // a negative entry is an unreachable joint state
		}
		prob *= c.weights[i][n]
	}

	return prob / c.bigG[c.population], nil
}

// Visit returns the visit ratio v_j of node j (1-based), with v_1 = 1.
// Errors: ErrNodeIndex.
func (c *ClosedNetwork) Visit(j int) (float64, error) {
	if j < 1 || j > len(c.visits) {
		return 0, ErrNodeIndex
	}

	return c.visits[j-1], nil
}

// Throughput returns the steady-state throughput of node j (1-based):
// λ_j = v_j · G(N−1)/G(N).
// Errors: ErrNodeIndex.
func (c *ClosedNetwork) Throughput(j int) (float64, error) {
	if j < 1 || j > len(c.visits) {
		return 0, ErrNodeIndex
	}

	return c.visits[j-1] * c.cycleRate, nil
}

// SystemThroughput returns G(N−1)/G(N): the flow through the reference node
// (node 1, whose visit ratio is pinned to 1).
func (c *ClosedNetwork) SystemThroughput() float64 { return c.cycleRate }

// Utilization returns the per-server utilization of node j (1-based):
// λ_j/(c_j·μ_j), which reduces to x_j·G(N−1)/G(N) for a single server.
// Infinite-server nodes report 0.
// Errors: ErrNodeIndex.
func (c *ClosedNetwork) Utilization(j int) (float64, error) {
	if j < 1 || j > len(c.specs) {
		return 0, ErrNodeIndex
	}
	s := c.specs[j-1]
	if s.Servers == InfServers {
		return 0, nil
	}

	return c.relUtil[j-1] * c.cycleRate / float64(s.Servers), nil
}

// L returns the mean occupancy of node j (1-based): Σ n·P_j(n).
// Errors: ErrNodeIndex.
func (c *ClosedNetwork) L(j int) (float64, error) {
	if j < 1 || j > len(c.marginals) {
		return 0, ErrNodeIndex
	}
	var mean float64
	for n := 1; n <= c.population; n++ {
		mean += float64(n) * c.marginals[j-1][n]
	}

	return mean, nil
}
