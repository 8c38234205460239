// Package queueing is your in-memory toolkit for exact steady-state analysis
// of Markovian queueing systems — from single M/M/· stations to Open and
// Closed Jackson Networks.
//
// 🚀 What is queueing?
//
//	A modern, dependency-light library that brings together:
//		• Distribution plumbing: exponential-family kinds & rate extraction
//		• Single stations: M/M/1, M/M/c, M/M/1/K, M/M/c/K, M/M/∞,
//		  finite-source (machine-repair) variants with and without spares
//		• State & wait metrics: Pn, Qn, FW, FWq, L, Lq, W, Wq, ρ, throughput
//		• Open Jackson Networks: traffic equations + product-form composition
//		• Closed Jackson Networks: Buzen's convolution algorithm, exact
//		  marginals and throughput without joint-state enumeration
//
// ✨ Why choose queueing?
//
//   - Closed-form answers – no simulation, no sampling noise
//   - Rock-solid guarantees – sentinel errors, strict validation, 1e-9 tolerances
//   - Pure Go – no cgo, no hidden deps
//   - Immutable networks – construct once, query concurrently without locks
//
// Under the hood, everything is organized under three subpackages:
//
//	distrib/ — distribution kinds (Exp, Poisson) & rate extraction
//	station/ — single-station analytic models and their wait-time CDFs
//	jackson/ — traffic equations, product form, convolution & closed networks
//
// Quick ASCII example:
//
//	    γ ──▶ [node 1] ──p──▶ [node 2] ──▶ out
//	               └────────(1−p)────────▶ out
//
//	an open two-node network: external arrivals at node 1, a fraction p
//	routed downstream, the remainder leaving the system.
//
// Dive into each package's doc.go for formulas, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/queueing
package queueing
