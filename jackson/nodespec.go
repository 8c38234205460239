package jackson

import "github.com/katalvlaran/queueing/distrib"

// NodeFrom builds a NodeSpec from a service-time distribution instead of a
// raw rate: the service stream supplies μ. Distribution errors (unknown
// kind, None sentinel, non-positive rate) are returned as-is from the
// distrib package; the remaining fields follow the NodeSpec contract and
// are validated when a network is constructed.
func NodeFrom(service distrib.Distribution, servers, capacity int) (NodeSpec, error) {
	mu, err := distrib.Rate(service)
	if err != nil {
		return NodeSpec{}, err
	}

	return NodeSpec{Mu: mu, Servers: servers, Capacity: capacity}, nil
}
