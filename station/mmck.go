package station

import "math"

// MMCK — M/M/c/K: Poisson arrivals (rate λ), c exponential servers (rate μ
// each), total system capacity K ≥ c. Arrivals that find K customers in
// system are blocked and lost.
//
// The occupancy chain is a finite birth-death process with birth rate λ for
// n < K and death rate min(n,c)·μ, solved by the shared detailed-balance
// product. Because the state space is finite, a steady state exists for any
// ρ — there is no saturation condition.
//
// An arriving customer joins only when n < K, so the arriving-customer view
// conditions on non-blocking:
//
//	Qn(n) = Pn(n)/(1 − Pn(K)),  n = 0..K−1
//
// and the effective (carried) rate is λeff = λ·(1 − Pn(K)).
//
// Wait-time CDFs condition on n at arrival via Qn: a joiner who finds n ≥ c
// waits for n−c+1 departures at combined rate c·μ (Erlang phases), and the
// system wait appends the customer's own Exp(μ) service.
//
// Complexity: construction O(K); Pn/Qn O(1); FW/FWq O(K·c) worst case;
// aggregates O(1) after construction.
type MMCK struct {
	lambda, mu float64
	servers    int
	capacity   int
	p          []float64 // steady-state distribution, indices 0..K
	qn         []float64 // arriving-customer distribution, indices 0..K−1
	lambdaEff  float64
	l, lq      float64
}

var _ Model = (*MMCK)(nil)

// NewMMCK builds an M/M/c/K model.
//
// Errors:
//   - ErrNonPositiveRate — λ or μ is not positive and finite.
//   - ErrBadServers      — servers < 1.
//   - ErrBadCapacity     — capacity < max(1, servers).
func NewMMCK(lambda, mu float64, servers, capacity int) (*MMCK, error) {
	if err := validRates(lambda, mu); err != nil {
		return nil, err
	}
	if servers < 1 {
		return nil, ErrBadServers
	}
	if capacity < 1 || capacity < servers {
		return nil, ErrBadCapacity
	}

	c := float64(servers)
	p := birthDeath(capacity,
		func(int) float64 { return lambda },
		func(n int) float64 { return math.Min(float64(n), c) * mu },
	)

	joinProb := 1 - p[capacity]
	qn := make([]float64, capacity)
	for n := 0; n < capacity; n++ {
		qn[n] = p[n] / joinProb
	}

	return &MMCK{
		lambda:    lambda,
		mu:        mu,
		servers:   servers,
		capacity:  capacity,
		p:         p,
		qn:        qn,
		lambdaEff: lambda * joinProb,
		l:         meanOccupancy(p),
		lq:        meanQueue(p, servers),
	}, nil
}

// NewMM1K builds an M/M/1/K model: the single-server specialization of
// M/M/c/K with c = 1.
//
// Errors: as NewMMCK (servers is fixed to 1).
func NewMM1K(lambda, mu float64, capacity int) (*MMCK, error) {
	return NewMMCK(lambda, mu, 1, capacity)
}

// Pn returns the steady-state probability of n customers, 0 outside 0..K.
func (m *MMCK) Pn(n int) float64 {
	if n < 0 || n > m.capacity {
		return 0
	}

	return m.p[n]
}

// Qn returns the probability a joining arrival finds n customers. Arrivals
// that would find the system full are blocked, so the support is 0..K−1.
func (m *MMCK) Qn(n int) float64 {
	if n < 0 || n >= m.capacity {
		return 0
	}

	return m.qn[n]
}

// FWq returns P(queue wait ≤ t) for a joining customer, by conditioning on
// the occupancy found at arrival.
func (m *MMCK) FWq(t float64) float64 {
	if t < 0 {
		return 0
	}
	cMu := float64(m.servers) * m.mu
	var cdf float64
	for n := 0; n < m.capacity; n++ {
		phases := n - m.servers + 1
		if phases < 0 {
			phases = 0
		}
		cdf += m.qn[n] * erlangCDF(phases, cMu, t)
	}

	return cdf
}

// FW returns P(system wait ≤ t): the queue wait plus the customer's own
// Exp(μ) service, conditioned on the occupancy found at arrival.
func (m *MMCK) FW(t float64) float64 {
	if t < 0 {
		return 0
	}
	cMu := float64(m.servers) * m.mu
	var cdf float64
	for n := 0; n < m.capacity; n++ {
		phases := n - m.servers + 1
		if phases < 0 {
			phases = 0
		}
		cdf += m.qn[n] * erlangThenExpCDF(phases, cMu, m.mu, t)
	}

	return cdf
}

// MaxCustomers returns the system capacity K.
func (m *MMCK) MaxCustomers() float64 { return float64(m.capacity) }

// L returns the mean number in system.
func (m *MMCK) L() float64 { return m.l }

// Lq returns the mean number waiting.
func (m *MMCK) Lq() float64 { return m.lq }

// W returns L/λeff (Little's law over the carried flow).
func (m *MMCK) W() float64 { return m.l / m.lambdaEff }

// Wq returns Lq/λeff.
func (m *MMCK) Wq() float64 { return m.lq / m.lambdaEff }

// Rho returns the server utilization λeff/(c·μ).
func (m *MMCK) Rho() float64 { return m.lambdaEff / (float64(m.servers) * m.mu) }

// Throughput returns the carried rate λ·(1 − Pn(K)).
func (m *MMCK) Throughput() float64 { return m.lambdaEff }
