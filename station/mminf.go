package station

import "math"

// MMInf — M/M/∞: Poisson arrivals (rate λ), an unlimited pool of exponential
// servers (rate μ each). Every customer starts service immediately, so the
// queue wait is identically zero and the occupancy is Poisson with mean
// a = λ/μ:
//
//	Pn(n) = e^{−a} · aⁿ/n!
//
// Complexity: construction O(1); Pn O(n); aggregates O(1).
type MMInf struct {
	lambda, mu float64
	a          float64 // mean occupancy λ/μ
}

var _ Model = (*MMInf)(nil)

// NewMMInf builds an M/M/∞ model. There is no stability condition: the
// state space is unbounded but always positive recurrent.
//
// Errors:
//   - ErrNonPositiveRate — λ or μ is not positive and finite.
func NewMMInf(lambda, mu float64) (*MMInf, error) {
	if err := validRates(lambda, mu); err != nil {
		return nil, err
	}

	return &MMInf{lambda: lambda, mu: mu, a: lambda / mu}, nil
}

// Pn returns the Poisson probability e^{−a}·aⁿ/n!.
func (m *MMInf) Pn(n int) float64 {
	if n < 0 {
		return 0
	}
	term := math.Exp(-m.a)
	for k := 1; k <= n; k++ {
		term *= m.a / float64(k)
	}

	return term
}

// Qn forwards to Pn (PASTA).
func (m *MMInf) Qn(n int) float64 { return m.Pn(n) }

// FW returns the service CDF 1 − e^{−μt}: the sojourn is the service itself.
func (m *MMInf) FW(t float64) float64 {
	if t < 0 {
		return 0
	}

	return 1 - math.Exp(-m.mu*t)
}

// FWq is the unit step at zero: no customer ever queues.
func (m *MMInf) FWq(t float64) float64 {
	if t < 0 {
		return 0
	}

	return 1
}

// MaxCustomers returns +Inf.
func (m *MMInf) MaxCustomers() float64 { return math.Inf(1) }

// L returns the mean occupancy a = λ/μ.
func (m *MMInf) L() float64 { return m.a }

// Lq returns 0: nobody waits.
func (m *MMInf) Lq() float64 { return 0 }

// W returns the mean service time 1/μ.
func (m *MMInf) W() float64 { return 1 / m.mu }

// Wq returns 0.
func (m *MMInf) Wq() float64 { return 0 }

// Rho returns 0: with unlimited servers there is no utilization bottleneck.
func (m *MMInf) Rho() float64 { return 0 }

// Throughput returns λ.
func (m *MMInf) Throughput() float64 { return m.lambda }
