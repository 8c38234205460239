// Package jackson: functional configuration for network constructors.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on nonsensical option values
//     (programmer error); user-triggered conditions return sentinels.
//   - Options fields are unexported; public APIs consume ...Option.

package jackson

import "math"

const panicEpsilonInvalid = "jackson: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal constructor options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	eps float64 // stochasticity tolerance for row-sum checks
}

// defaultOptions returns the documented defaults; constants in types.go are
// the single source of truth.
func defaultOptions() options {
	return options{eps: DefaultEpsilon}
}

// WithEpsilon overrides the row-sum tolerance used when validating routing
// matrices. Panics if eps is negative, NaN or ±Inf (programmer error).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// gatherOptions applies opts over the defaults in call order.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
