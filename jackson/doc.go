// Package jackson composes single-station Markovian models into system-wide
// steady-state solutions for Open and Closed Jackson Networks.
//
// 🚀 What is a Jackson Network?
//
//	A network of J queueing stations with Markovian service, connected by a
//	routing probability matrix P: a customer leaving node i proceeds to node
//	j with probability P[i][j]. In an OPEN network customers also enter from
//	outside (rate vector γ) and the row remainder 1−ΣP[i][·] exits the
//	system; in a CLOSED network a fixed population of N customers circulates
//	forever (every row of P sums to exactly 1).
//
// ✨ What the package computes:
//
//   - Traffic equations — the effective per-node arrival rates λ⃗ solving
//     λ_j = γ_j + Σ_i λ_i·P[i][j], i.e. the linear system (I−Pᵀ)λ⃗ = γ⃗,
//     by a deterministic Doolittle LU solve without pivoting.
//   - Open networks — by the product-form theorem the joint occupancy
//     distribution factors into independent per-node M/M/c (or M/M/∞)
//     marginals once λ⃗ is known: P(n⃗) = Π_i Pn_i(n_i). The traffic solve is
//     the only coupled step; everything else is per-node.
//   - Closed networks — Buzen's convolution algorithm. With relative
//     utilizations x_j and per-node weights g_j(n) = x_jⁿ/Π_{k≤n} r_j(k),
//     the normalization constant builds node by node:
//
//     G(0,0) = 1, G(0,n>0) = 0
//     G(j,n) = Σ_{k=0}^{n} g_j(k)·G(j−1, n−k)
//
//     in O(J·N²) time and O(J·N) space, versus the O(N^J) joint-state
//     enumeration it replaces. Per-node marginals come from the node-excluded
//     constant G₋ⱼ (recovered by deconvolution), and throughput from the
//     classic identity G(N−1)/G(N).
//
// Both network types are constructed once from validated inputs and are then
// read-only: the solved rate vector, the convolution table and the marginal
// tables are derived state cached at construction, so all queries are pure
// reads and instances may be shared by concurrent readers without locks.
//
// Errors (sentinel):
//
//	– ErrBadRouting             malformed routing matrix (shape/range/row sums)
//	– ErrUnstableTopology       (I−Pᵀ) singular: unbounded recirculation
//	– ErrNonPositiveRate        a solved or supplied rate is not positive
//	– ErrNodeIndex              1-based node index out of range
//	– ErrDimensionMismatch      occupancy/arrival vector length ≠ node count
//	– ErrNodeCountMismatch      NodeSpec count ≠ routing matrix dimension
//	– ErrNonConservativeRouting closed routing row does not sum to 1
//	– ErrNonPositivePopulation  closed population < 1
//	– ErrPopulationMismatch     joint occupancy does not sum to the population
//	– ErrCapacityUnsupported    finite node capacity in an open network
//	– ErrBadServers/ErrBadCapacity  malformed NodeSpec
//
// Example usage:
//
//	specs := []jackson.NodeSpec{{Mu: 4, Servers: 1}, {Mu: 3, Servers: 1}}
//	routing := jackson.RoutingMatrix{{0, 0.5}, {0, 0}}
//	net, err := jackson.NewOpen(specs, routing, []float64{1, 0})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p, _ := net.Pn([]int{2, 1}) // joint P(2 at node 1, 1 at node 2)
package jackson
