package distrib

import (
	"errors"
	"math"
)

// Kind identifies a supported distribution family.
// The set is closed; any other value is rejected with ErrInvalidKind.
type Kind int

const (
	// None is the explicit "no distribution" sentinel. It is a valid Kind to
	// construct (the zero value), but extracting a rate from it fails with
	// ErrUndefinedRate.
	None Kind = iota

	// Exp denotes exponentially distributed inter-event times.
	Exp

	// Poisson denotes Poisson-distributed event counts per unit time.
	// For Markovian models this is the counting view of Exp.
	Poisson
)

// Sentinel errors returned by the distrib package.
var (
	// ErrInvalidKind indicates a Kind outside the closed enumeration.
	ErrInvalidKind = errors.New("distrib: invalid distribution kind")

	// ErrUndefinedRate indicates the None sentinel was asked for a rate.
	ErrUndefinedRate = errors.New("distrib: rate undefined for None distribution")

	// ErrNonPositiveRate indicates a rate that is zero, negative, NaN or ±Inf.
	// A rate of 0 or ∞ is an error condition, not a valid model.
	ErrNonPositiveRate = errors.New("distrib: rate must be positive and finite")
)

// Distribution is an immutable (Kind, rate) pair. Construct via NewExp or
// NewPoisson; the zero value is the None sentinel.
type Distribution struct {
	kind Kind
	rate float64
}

// NewExp builds an exponential distribution with the given positive rate.
// Returns ErrNonPositiveRate for rate ≤ 0, NaN or ±Inf.
func NewExp(rate float64) (Distribution, error) {
	if err := validRate(rate); err != nil {
		return Distribution{}, err
	}

	return Distribution{kind: Exp, rate: rate}, nil
}

// NewPoisson builds a Poisson distribution with the given positive rate.
// Returns ErrNonPositiveRate for rate ≤ 0, NaN or ±Inf.
func NewPoisson(rate float64) (Distribution, error) {
	if err := validRate(rate); err != nil {
		return Distribution{}, err
	}

	return Distribution{kind: Poisson, rate: rate}, nil
}

// Kind reports the distribution's family.
func (d Distribution) Kind() Kind { return d.kind }

// Rate extracts the scalar event rate from d.
//
// Errors:
//   - ErrUndefinedRate   — d is the None sentinel.
//   - ErrInvalidKind     — d carries a Kind outside the closed enumeration.
//   - ErrNonPositiveRate — d was built bypassing the constructors with a
//     non-positive or non-finite rate.
//
// Complexity: O(1). No side effects.
func Rate(d Distribution) (float64, error) {
	switch d.kind {
	case None:
		return 0, ErrUndefinedRate
	case Exp, Poisson:
		if err := validRate(d.rate); err != nil {
			return 0, err
		}
		return d.rate, nil
	default:
		return 0, ErrInvalidKind
	}
}

// validRate enforces the positivity/finiteness policy shared by constructors
// and Rate.
func validRate(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return ErrNonPositiveRate
	}

	return nil
}
