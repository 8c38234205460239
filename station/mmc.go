package station

import "math"

// MMC — M/M/c: Poisson arrivals (rate λ), c identical exponential servers
// (rate μ each), unbounded FIFO queue.
//
// With offered load a = λ/μ and per-server utilization ρ = a/c < 1:
//
//	P0 = [ Σ_{k=0}^{c−1} aᵏ/k!  +  aᶜ/(c!(1−ρ)) ]⁻¹
//	Pn = P0·aⁿ/n!              for n < c
//	Pn = P0·aⁿ/(c!·c^{n−c})    for n ≥ c
//
// The probability an arrival must wait is the Erlang-C value
// C = P0·aᶜ/(c!(1−ρ)), from which
//
//	Lq     = C·ρ/(1−ρ)
//	FWq(t) = 1 − C·e^{−cμ(1−ρ)t}
//
// The system-wait CDF uses the Gross–Harris closed form, with the removable
// singularity at a = c−1 evaluated by its limit.
//
// Complexity: construction O(c); Pn O(1) amortized via precomputed P0 and
// log-free powers; every aggregate O(1).
type MMC struct {
	lambda, mu float64
	servers    int
	a          float64 // offered load λ/μ
	rho        float64 // per-server utilization a/c
	p0         float64
	erlangC    float64 // P(arrival waits)
}

var _ Model = (*MMC)(nil)

// NewMMC builds an M/M/c model.
//
// Errors:
//   - ErrNonPositiveRate — λ or μ is not positive and finite.
//   - ErrBadServers      — servers < 1.
//   - ErrSaturated       — λ/(c·μ) ≥ 1 (no steady state).
func NewMMC(lambda, mu float64, servers int) (*MMC, error) {
	if err := validRates(lambda, mu); err != nil {
		return nil, err
	}
	if servers < 1 {
		return nil, ErrBadServers
	}
	a := lambda / mu
	rho := a / float64(servers)
	if rho >= 1 {
		return nil, ErrSaturated
	}

	// P0: accumulate aᵏ/k! with a running term, then add the tail block.
	term := 1.0 // aᵏ/k! at k=0
	sum := 1.0
	var k int
	for k = 1; k < servers; k++ {
		term *= a / float64(k)
		sum += term
	}
	tail := term * a / float64(servers) / (1 - rho) // aᶜ/(c!(1−ρ))
	p0 := 1 / (sum + tail)

	return &MMC{
		lambda:  lambda,
		mu:      mu,
		servers: servers,
		a:       a,
		rho:     rho,
		p0:      p0,
		erlangC: p0 * tail,
	}, nil
}

// Pn returns the steady-state probability of n customers in system.
func (m *MMC) Pn(n int) float64 {
	if n < 0 {
		return 0
	}
	c := m.servers
	if n < c {
		// aⁿ/n! via running product keeps the evaluation exact and cheap.
		term := 1.0
		for k := 1; k <= n; k++ {
			term *= m.a / float64(k)
		}
		return m.p0 * term
	}

	// n ≥ c: aᶜ/c! · ρ^{n−c}
	term := 1.0
	for k := 1; k <= c; k++ {
		term *= m.a / float64(k)
	}

	return m.p0 * term * math.Pow(m.rho, float64(n-c))
}

// Qn forwards to Pn (PASTA).
func (m *MMC) Qn(n int) float64 { return m.Pn(n) }

// FW returns P(system wait ≤ t) via the Gross–Harris formula
//
//	P(W > t) = e^{−μt}·[1 + C·(1 − e^{−μ(c−1−a)t})/(c−1−a)]
//
// with the a = c−1 case evaluated by its limit e^{−μt}·(1 + C·μt).
func (m *MMC) FW(t float64) float64 {
	if t < 0 {
		return 0
	}
	d := float64(m.servers-1) - m.a
	var tail float64
	if d == 0 {
		tail = math.Exp(-m.mu*t) * (1 + m.erlangC*m.mu*t)
	} else {
		tail = math.Exp(-m.mu*t) * (1 + m.erlangC*(1-math.Exp(-m.mu*d*t))/d)
	}

	return 1 - tail
}

// FWq returns P(queue wait ≤ t) = 1 − C·e^{−cμ(1−ρ)t}; the atom at zero is
// the probability 1−C of finding a free server.
func (m *MMC) FWq(t float64) float64 {
	if t < 0 {
		return 0
	}

	return 1 - m.erlangC*math.Exp(-float64(m.servers)*m.mu*(1-m.rho)*t)
}

// MaxCustomers returns +Inf: the queue is unbounded.
func (m *MMC) MaxCustomers() float64 { return math.Inf(1) }

// Lq returns C·ρ/(1−ρ).
func (m *MMC) Lq() float64 { return m.erlangC * m.rho / (1 - m.rho) }

// L returns Lq + a.
func (m *MMC) L() float64 { return m.Lq() + m.a }

// Wq returns Lq/λ.
func (m *MMC) Wq() float64 { return m.Lq() / m.lambda }

// W returns Wq + 1/μ.
func (m *MMC) W() float64 { return m.Wq() + 1/m.mu }

// Rho returns the per-server utilization λ/(c·μ).
func (m *MMC) Rho() float64 { return m.rho }

// Throughput returns λ.
func (m *MMC) Throughput() float64 { return m.lambda }
