// Package mc provides the core Monte Carlo valuation engine for
// path-dependent contingent claims.
//
// # Reading Guide
//
// Start with these three files to understand the valuation kernel:
//   - model.go: the capability interface every stochastic model implements
//   - evolve.go: bounded-step time advancement between contract events
//   - engine.go: the per-trial merge of observation times and pending cash flows
//
// # Architecture
//
// The mc package defines the engine and its interfaces; implementations live
// in sub-packages:
//   - mc/models/: concrete stochastic models (geometric Brownian motion)
//   - mc/trace/: per-trial valuation trace recording and summaries
//
// A compiled claim is an externally produced, time-sorted sequence of
// ClaimEvent values; the scenario package builds one from a YAML term sheet.
// The engine itself performs a pure in-process computation: it owns no files,
// sockets, or persisted state, and returns a scalar present value.
//
// # Key Interfaces
//
// The extension points are small interfaces:
//   - Model: initialize, discount, forward sampling, single-step evolution
//   - StochasticDiscounter: optional stateful discounting override
//   - TrialRecorder: per-trial value hook used for tracing and statistics
package mc
