// Package distrib defines the closed set of distribution kinds understood by
// the queueing models and extracts scalar event rates from them.
//
// A Distribution is a small immutable value: a Kind plus a positive rate.
// The queueing core never inspects distribution internals — it consumes only
// the rate (λ for arrival streams, μ for service streams) via Rate.
//
// Supported kinds:
//
//   - Exp     — exponential inter-event times with the given rate
//   - Poisson — Poisson event counts per unit time (same rate semantics;
//     the two views are interchangeable for Markovian models)
//   - None    — explicit "no distribution" sentinel used to mark an
//     inactive stream (e.g. a network node with no external arrivals)
//
// The enumeration is closed on purpose: validation is a constant-time kind
// check at construction, with no reflection and no runtime registry.
//
// Errors (sentinel):
//
//	– ErrInvalidKind     if a Distribution carries an unrecognized Kind.
//	– ErrUndefinedRate   if Rate is asked of the None sentinel.
//	– ErrNonPositiveRate if the rate is zero, negative, NaN or ±Inf.
//
// Example usage:
//
//	arr, err := distrib.NewExp(3.0) // λ = 3 customers per unit time
//	if err != nil { ... }
//	lambda, err := distrib.Rate(arr)
package distrib
