package station

import "math"

// MM1 — M/M/1: Poisson arrivals (rate λ), a single exponential server
// (rate μ), unbounded FIFO queue.
//
// Steady state exists iff ρ = λ/μ < 1, in which case the occupancy is
// geometric:
//
//	Pn(n) = (1−ρ) · ρⁿ
//
// and both waiting times are exponential:
//
//	FW(t)  = 1 − e^{−(μ−λ)t}
//	FWq(t) = 1 − ρ·e^{−(μ−λ)t}
//
// Complexity: construction O(1); every query O(1).
type MM1 struct {
	lambda, mu float64
	rho        float64
}

var _ Model = (*MM1)(nil)

// NewMM1 builds an M/M/1 model.
//
// Errors:
//   - ErrNonPositiveRate — λ or μ is not positive and finite.
//   - ErrSaturated       — λ/μ ≥ 1 (no steady state).
func NewMM1(lambda, mu float64) (*MM1, error) {
	if err := validRates(lambda, mu); err != nil {
		return nil, err
	}
	rho := lambda / mu
	if rho >= 1 {
		return nil, ErrSaturated
	}

	return &MM1{lambda: lambda, mu: mu, rho: rho}, nil
}

// Pn returns (1−ρ)ρⁿ, 0 for n < 0.
func (m *MM1) Pn(n int) float64 {
	if n < 0 {
		return 0
	}

	return (1 - m.rho) * math.Pow(m.rho, float64(n))
}

// Qn forwards to Pn: Poisson arrivals see time averages (PASTA).
func (m *MM1) Qn(n int) float64 { return m.Pn(n) }

// FW returns P(system wait ≤ t) = 1 − e^{−(μ−λ)t}.
func (m *MM1) FW(t float64) float64 {
	if t < 0 {
		return 0
	}

	return 1 - math.Exp(-(m.mu-m.lambda)*t)
}

// FWq returns P(queue wait ≤ t) = 1 − ρ·e^{−(μ−λ)t}; the atom at zero is
// the probability 1−ρ of finding the server idle.
func (m *MM1) FWq(t float64) float64 {
	if t < 0 {
		return 0
	}

	return 1 - m.rho*math.Exp(-(m.mu-m.lambda)*t)
}

// MaxCustomers returns +Inf: the queue is unbounded.
func (m *MM1) MaxCustomers() float64 { return math.Inf(1) }

// L returns ρ/(1−ρ).
func (m *MM1) L() float64 { return m.rho / (1 - m.rho) }

// Lq returns ρ²/(1−ρ).
func (m *MM1) Lq() float64 { return m.rho * m.rho / (1 - m.rho) }

// W returns 1/(μ−λ).
func (m *MM1) W() float64 { return 1 / (m.mu - m.lambda) }

// Wq returns ρ/(μ−λ).
func (m *MM1) Wq() float64 { return m.rho / (m.mu - m.lambda) }

// Rho returns the server utilization λ/μ.
func (m *MM1) Rho() float64 { return m.rho }

// Throughput returns λ: nothing is lost in an unbounded queue.
func (m *MM1) Throughput() float64 { return m.lambda }
