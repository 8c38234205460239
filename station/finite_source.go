package station

import "math"

// FiniteSource — the machine-repair family M/M/c//H and M/M/c//H/Y: a pool
// of H operating sources, each failing at rate λ while operating, served by
// c repair servers at rate μ each, with Y ≥ 0 cold spares. A failed source
// is replaced by a spare when one is available, so the number of operating
// sources in state n (n = failed units in repair) is min(H, H+Y−n) and the
// state-dependent arrival curve is
//
//	a(n) = λ · min(H, H+Y−n),  n = 0..H+Y−1
//
// against death rate min(n,c)·μ. The chain is finite (support 0..H+Y), so a
// steady state always exists.
//
// Because the arrival rate is state-dependent, the arriving-customer view is
// NOT the time average: an arrival in state n occurs at rate a(n), so
//
//	Qn(n) = a(n)·Pn(n) / Σ_k a(k)·Pn(k)
//
// (the "arrival theorem" weighting that makes finite-source Qn differ from
// Pn, unlike the PASTA variants).
//
// Complexity: construction O(H+Y); Pn/Qn O(1); FW/FWq O((H+Y)·c) worst case.
type FiniteSource struct {
	lambda, mu float64
	servers    int
	sources    int // H
	spares     int // Y
	p          []float64 // steady-state distribution, indices 0..H+Y
	qn         []float64 // arriving-customer distribution, indices 0..H+Y−1
	throughput float64   // Σ min(n,c)·μ·Pn(n) = Σ a(n)·Pn(n)
	l, lq      float64
}

var _ Model = (*FiniteSource)(nil)

// NewMMCHY builds the general finite-source model M/M/c//H/Y.
//
// Errors:
//   - ErrNonPositiveRate — λ or μ is not positive and finite.
//   - ErrBadServers      — servers < 1.
//   - ErrBadPopulation   — sources < 1 or spares < 0.
func NewMMCHY(lambda, mu float64, servers, sources, spares int) (*FiniteSource, error) {
	if err := validRates(lambda, mu); err != nil {
		return nil, err
	}
	if servers < 1 {
		return nil, ErrBadServers
	}
	if sources < 1 || spares < 0 {
		return nil, ErrBadPopulation
	}

	top := sources + spares
	h := float64(sources)
	c := float64(servers)
	arrive := func(n int) float64 {
		return lambda * math.Min(h, float64(top-n))
	}
	p := birthDeath(top,
		arrive,
		func(n int) float64 { return math.Min(float64(n), c) * mu },
	)

	// Arrival-weighted view and throughput share the same normalizer.
	var weighted float64
	qn := make([]float64, top)
	for n := 0; n < top; n++ {
		qn[n] = arrive(n) * p[n]
		weighted += qn[n]
	}
	for n := 0; n < top; n++ {
		qn[n] /= weighted
	}

	return &FiniteSource{
		lambda:     lambda,
		mu:         mu,
		servers:    servers,
		sources:    sources,
		spares:     spares,
		p:          p,
		qn:         qn,
		throughput: weighted,
		l:          meanOccupancy(p),
		lq:         meanQueue(p, servers),
	}, nil
}

// NewMMCH builds M/M/c//H: finite source without spares.
func NewMMCH(lambda, mu float64, servers, sources int) (*FiniteSource, error) {
	return NewMMCHY(lambda, mu, servers, sources, 0)
}

// NewMM1H builds M/M/1//H: a single repair server, no spares.
func NewMM1H(lambda, mu float64, sources int) (*FiniteSource, error) {
	return NewMMCHY(lambda, mu, 1, sources, 0)
}

// Pn returns the steady-state probability of n failed units, 0 outside
// 0..H+Y.
func (m *FiniteSource) Pn(n int) float64 {
	if n < 0 || n >= len(m.p) {
		return 0
	}

	return m.p[n]
}

// Qn returns the probability an arriving (failing) unit finds n units
// already in repair. Differs from Pn: arrivals are rarer in loaded states.
func (m *FiniteSource) Qn(n int) float64 {
	if n < 0 || n >= len(m.qn) {
		return 0
	}

	return m.qn[n]
}

// FWq returns P(repair-queue wait ≤ t), conditioning on the occupancy found
// at arrival via Qn.
func (m *FiniteSource) FWq(t float64) float64 {
	if t < 0 {
		return 0
	}
	cMu := float64(m.servers) * m.mu
	var cdf float64
	for n := range m.qn {
		phases := n - m.servers + 1
		if phases < 0 {
			phases = 0
		}
		cdf += m.qn[n] * erlangCDF(phases, cMu, t)
	}

	return cdf
}

// FW returns P(total repair sojourn ≤ t): queue wait plus the unit's own
// Exp(μ) repair.
func (m *FiniteSource) FW(t float64) float64 {
	if t < 0 {
		return 0
	}
	cMu := float64(m.servers) * m.mu
	var cdf float64
	for n := range m.qn {
		phases := n - m.servers + 1
		if phases < 0 {
			phases = 0
		}
		cdf += m.qn[n] * erlangThenExpCDF(phases, cMu, m.mu, t)
	}

	return cdf
}

// MaxCustomers returns H+Y: all units down at once.
func (m *FiniteSource) MaxCustomers() float64 { return float64(m.sources + m.spares) }

// L returns the mean number of units in repair.
func (m *FiniteSource) L() float64 { return m.l }

// Lq returns the mean number of units waiting for a repair server.
func (m *FiniteSource) Lq() float64 { return m.lq }

// W returns L/throughput (Little's law over the failure flow).
func (m *FiniteSource) W() float64 { return m.l / m.throughput }

// Wq returns Lq/throughput.
func (m *FiniteSource) Wq() float64 { return m.lq / m.throughput }

// Rho returns the repair-server utilization throughput/(c·μ).
func (m *FiniteSource) Rho() float64 { return m.throughput / (float64(m.servers) * m.mu) }

// Throughput returns the long-run failure (= repair) rate Σ a(n)·Pn(n).
func (m *FiniteSource) Throughput() float64 { return m.throughput }
