package station

// birthDeath computes the stationary distribution of a finite birth-death
// chain on states 0..top.
//
// Algorithm Outline:
//  1. Set the unnormalized weight w[0] = 1.
//  2. For n = 1..top: w[n] = w[n-1] · birth(n-1) / death(n), the classic
//     detailed-balance product. birth(n) is the arrival rate in state n,
//     death(n) the service completion rate in state n (death(n) > 0 for
//     n ≥ 1 by construction of the callers).
//  3. Normalize by the running sum so that Σ p[n] = 1.
//
// The finite-support variants (M/M/1/K, M/M/c/K, finite-source) all reduce
// to this product once their state-dependent rate curves are fixed, which is
// why the chain solver lives here rather than in each variant.
//
// Determinism: single fixed-order pass n = 1..top; no data-dependent
// branching beyond the rate curves themselves.
//
// Complexity: Time O(top), Space O(top).
func birthDeath(top int, birth, death func(n int) float64) []float64 {
	w := make([]float64, top+1)
	w[0] = 1.0
	sum := 1.0

	var n int
	for n = 1; n <= top; n++ {
		w[n] = w[n-1] * birth(n-1) / death(n)
		sum += w[n]
	}
	for n = 0; n <= top; n++ {
		w[n] /= sum
	}

	return w
}

// meanOccupancy returns Σ n·p[n] over the finite distribution p.
func meanOccupancy(p []float64) float64 {
	var mean float64
	for n := 1; n < len(p); n++ {
		mean += float64(n) * p[n]
	}

	return mean
}

// meanQueue returns Σ max(n−servers, 0)·p[n]: the mean number of customers
// waiting behind the given number of servers.
func meanQueue(p []float64, servers int) float64 {
	var mean float64
	for n := servers + 1; n < len(p); n++ {
		mean += float64(n-servers) * p[n]
	}

	return mean
}
