package station

import (
	"errors"
	"math"
)

// Sentinel errors returned by station constructors.
// All messages are prefixed with "station: ..." for consistency and easy
// grepping. Constructors return plain sentinels; tests match via errors.Is.
var (
	// ErrNonPositiveRate indicates λ or μ that is zero, negative, NaN or ±Inf.
	ErrNonPositiveRate = errors.New("station: rate must be positive and finite")

	// ErrSaturated indicates an unbounded-queue model with ρ ≥ 1,
	// for which no steady state exists.
	ErrSaturated = errors.New("station: utilization must be < 1")

	// ErrBadServers indicates a server count below 1.
	ErrBadServers = errors.New("station: server count must be >= 1")

	// ErrBadCapacity indicates a system capacity below 1 or below the
	// configured server count.
	ErrBadCapacity = errors.New("station: capacity must be >= max(1, servers)")

	// ErrBadPopulation indicates a finite-source population below 1 or a
	// negative spare count.
	ErrBadPopulation = errors.New("station: population must be >= 1 and spares >= 0")
)

// Model is the closed operation set shared by every single-station variant.
// Implementations are immutable after construction; all methods are pure
// reads and safe for concurrent use.
//
// Conventions:
//   - Pn/Qn return 0 for n outside the model's support (n < 0 or beyond
//     capacity / source population).
//   - FW/FWq return 0 for t < 0 and are monotone non-decreasing CDFs.
//   - MaxCustomers returns math.Inf(1) for unbounded models so the bound is
//     directly comparable against float occupancies.
type Model interface {
	// Pn returns the steady-state probability of n customers in system.
	Pn(n int) float64

	// Qn returns the probability an arriving (joining) customer finds n
	// customers in system. Equals Pn under PASTA for Poisson arrivals.
	Qn(n int) float64

	// FW returns P(system wait ≤ t): time from arrival to service completion.
	FW(t float64) float64

	// FWq returns P(queue wait ≤ t): time from arrival to service start.
	FWq(t float64) float64

	// MaxCustomers returns the largest reachable occupancy, +Inf if unbounded.
	MaxCustomers() float64

	// L returns the mean number of customers in system.
	L() float64

	// Lq returns the mean number of customers waiting in queue.
	Lq() float64

	// W returns the mean system (sojourn) time.
	W() float64

	// Wq returns the mean queue waiting time.
	Wq() float64

	// Rho returns the server utilization in [0,1].
	Rho() float64

	// Throughput returns the effective departure rate (equals λ for
	// non-blocking models, λ·(1−P_block) for loss models).
	Throughput() float64
}

// validRates enforces the shared positivity/finiteness policy on λ and μ.
func validRates(lambda, mu float64) error {
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) || lambda <= 0 {
		return ErrNonPositiveRate
	}
	if math.IsNaN(mu) || math.IsInf(mu, 0) || mu <= 0 {
		return ErrNonPositiveRate
	}

	return nil
}
