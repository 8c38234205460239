package station

import "math"

// erlangCDF returns P(Erlang(k, rate) ≤ t): the probability that the sum of
// k independent Exp(rate) phases completes by time t.
//
// The k = 0 case is the empty sum (a wait of zero), so the CDF is 1 for any
// t ≥ 0. For k ≥ 1 the standard closed form is
//
//	F(t) = 1 − e^{−rt} · Σ_{j=0}^{k−1} (rt)^j / j!
//
// evaluated with a running term ((rt)^j/j! updated multiplicatively) to avoid
// explicit factorials. Deterministic j = 0..k−1 accumulation order.
//
// Complexity: Time O(k), Space O(1).
func erlangCDF(k int, rate, t float64) float64 {
	if t < 0 {
		return 0
	}
	if k <= 0 {
		return 1
	}

	rt := rate * t
	term := 1.0 // (rt)^j / j! at j=0
	sum := 1.0
	for j := 1; j < k; j++ {
		term *= rt / float64(j)
		sum += term
	}

	return 1 - math.Exp(-rt)*sum
}

// erlangThenExpCDF returns P(Erlang(k, b) + Exp(a) ≤ t) for independent
// phases: the system-wait CDF of a customer who must first see k departures
// at combined rate b and then receive its own Exp(a) service.
//
// Cases:
//   - k = 0      — pure Exp(a) service: 1 − e^{−at}.
//   - b = a      — the phases merge into an Erlang(k+1, a).
//   - b ≠ a      — hypoexponential tail, obtained by conditioning on the
//     Erlang completion point x and integrating the Exp(a) remainder:
//     F(t) = F_{E(k,b)}(t) − e^{−at} · (b/(b−a))^k · F_{E(k,b−a)}(t).
//
// Callers in this package always have b = c·μ and a = μ with c ≥ 1, so
// b − a = (c−1)·μ ≥ 0 and the b ≠ a branch only sees b > a.
//
// Complexity: Time O(k), Space O(1).
func erlangThenExpCDF(k int, b, a, t float64) float64 {
	if t < 0 {
		return 0
	}
	if k <= 0 {
		return 1 - math.Exp(-a*t)
	}
	if b == a {
		return erlangCDF(k+1, a, t)
	}

	scale := math.Pow(b/(b-a), float64(k))

	return erlangCDF(k, b, t) - math.Exp(-a*t)*scale*erlangCDF(k, b-a, t)
}
