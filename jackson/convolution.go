package jackson

// Convolution kernels for the closed-network normalization constant
// (Buzen's algorithm).
//
// Algorithm Outline:
//  1. For each node j build the unnormalized single-node weights
//     g_j(0) = 1,  g_j(n) = g_j(n−1) · x_j / r_j(n)
//     where x_j is the node's relative utilization (visit ratio over service
//     rate) and r_j(n) the number of busy servers in state n — so g_j(n)
//     reduces to x_jⁿ for a single-server node, to x_jⁿ/n! for an
//     infinite-server node, and to 0 beyond a finite capacity.
//  2. Fold the weight vectors node by node:
//     G(0,0) = 1, G(0,n>0) = 0
//     G(j,n) = Σ_{k=0}^{n} g_j(k) · G(j−1, n−k)
//     keeping only the running row (rolling state). G(J,N) is the network
//     normalization constant.
//  3. For marginals, recover the node-excluded constant G₋ⱼ from the full
//     table by deconvolution — the convolution is invertible because
//     g_j(0) = 1:
//     G₋ⱼ(n) = G(n) − Σ_{k=1}^{n} g_j(k) · G₋ⱼ(n−k).
//
// This is the O(J·N²)-time, O(J·N)-space reduction that replaces the
// O(N^J) joint-state enumeration; the deconvolution step makes each node's
// marginal an extra O(N²) instead of a full re-convolution of J−1 nodes.
//
// Determinism: fixed j-outer, n-inner, k-innermost loop orders throughout.

// nodeWeights builds g_j(0..pop) for one node with relative utilization x.
func nodeWeights(spec NodeSpec, x float64, pop int) []float64 {
	g := make([]float64, pop+1)
	g[0] = 1.0
	for n := 1; n <= pop; n++ {
		if spec.Capacity != Unbounded && n > spec.Capacity {
			// capacity folds into the weight curve: states beyond K carry no mass
			continue
		}
		busy := float64(n)
		if spec.Servers != InfServers && n > spec.Servers {
			busy = float64(spec.Servers)
		}
		g[n] = g[n-1] * x / busy
	}

	return g
}

// convolve folds the per-node weight vectors into G(J, 0..pop).
func convolve(g [][]float64, pop int) []float64 {
	acc := append([]float64(nil), g[0]...)
	next := make([]float64, pop+1)

	var j, n, k int
	var sum float64
	for j = 1; j < len(g); j++ {
		for n = 0; n <= pop; n++ {
			sum = 0
			for k = 0; k <= n; k++ {
				sum += g[j][k] * acc[n-k]
			}
			next[n] = sum
		}
		acc, next = next, acc
	}

	return acc
}

// deconvolve recovers the node-excluded table G₋ⱼ(0..N) from the full table
// and the node's own weights.
func deconvolve(full, gj []float64) []float64 {
	out := make([]float64, len(full))
	var n, k int
	var v float64
	for n = 0; n < len(full); n++ {
		v = full[n]
		for k = 1; k <= n; k++ {
			if gj[k] == 0 {
				continue
			}
			v -= gj[k] * out[n-k]
		}
		out[n] = v
	}

	return out
}
