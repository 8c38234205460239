package station

import "github.com/katalvlaran/queueing/distrib"

// NewMM1From builds an M/M/1 model from distribution values instead of raw
// rates: the arrival stream supplies λ, the service stream supplies μ.
// Distribution errors (unknown kind, None sentinel, bad rate) are returned
// as-is from the distrib package.
func NewMM1From(arrival, service distrib.Distribution) (*MM1, error) {
	lambda, err := distrib.Rate(arrival)
	if err != nil {
		return nil, err
	}
	mu, err := distrib.Rate(service)
	if err != nil {
		return nil, err
	}

	return NewMM1(lambda, mu)
}

// NewMMCFrom builds an M/M/c model from distribution values; see NewMM1From.
func NewMMCFrom(arrival, service distrib.Distribution, servers int) (*MMC, error) {
	lambda, err := distrib.Rate(arrival)
	if err != nil {
		return nil, err
	}
	mu, err := distrib.Rate(service)
	if err != nil {
		return nil, err
	}

	return NewMMC(lambda, mu, servers)
}
