// Package station implements exact steady-state analysis of single-station
// Markovian queueing models (birth-death chains with Poisson arrivals and
// exponential service).
//
// 🚀 Supported variants:
//
//	– M/M/1      — single server, unbounded queue
//	– M/M/c      — c identical servers, unbounded queue (Erlang-C)
//	– M/M/∞      — infinitely many servers (pure delay)
//	– M/M/1/K    — single server, system capacity K (loss on overflow)
//	– M/M/c/K    — c servers, system capacity K
//	– M/M/1//H   — finite source (machine repair), single repairman
//	– M/M/c//H   — finite source, c repairmen
//	– M/M/c//H/Y — finite source with Y cold spares
//
// Every variant satisfies the Model interface with a fixed operation set:
//
//	Pn(n)          steady-state probability of n customers in system
//	Qn(n)          distribution seen by an arriving customer
//	FW(t), FWq(t)  CDFs of the system and queue waiting times
//	MaxCustomers() support bound (+Inf when unbounded)
//	L, Lq, W, Wq   mean occupancy / queue length / sojourn / queue wait
//	Rho            server utilization
//	Throughput     effective departure rate
//
// Qn equals Pn for the Poisson-arrival variants (PASTA). It differs for the
// loss variants (arrivals that find the system full are blocked, so a joining
// customer conditions on n < K) and for the finite-source variants (the
// arrival rate is state-dependent, so arriving customers over-sample lightly
// loaded states).
//
// Wait-time CDFs for the finite-support variants are derived by conditioning
// on the number of customers found at arrival via Qn: a joining customer who
// finds n ≥ c in service waits for n−c+1 departures, each exponential with
// rate c·μ, i.e. an Erlang phase sum; the system wait adds the customer's own
// Exp(μ) service (a hypoexponential tail when c > 1).
//
// All models are immutable once constructed; every query is a pure read and
// instances may be shared by concurrent readers without synchronization.
//
// Errors (sentinel):
//
//	– ErrNonPositiveRate if λ or μ is zero, negative, NaN or ±Inf.
//	– ErrSaturated       if an unbounded model has ρ ≥ 1 (no steady state).
//	– ErrBadServers      if the server count is < 1.
//	– ErrBadCapacity     if the capacity is < 1 or below the server count.
//	– ErrBadPopulation   if a finite-source population is < 1 or spares < 0.
//
// Example usage:
//
//	m, err := station.NewMMC(3.0, 2.0, 2) // λ=3, μ=2, c=2
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("P(wait) = %.4f, Lq = %.4f\n", 1-m.FWq(0), m.Lq())
package station
