package mc

import "errors"

// Sentinel errors distinguishing contract violations from input validation
// failures. Wrapped with context at each error site; match with errors.Is.
var (
	// ErrTimeReversal reports an Evolve target earlier than the current
	// simulated time. The engine fails fast rather than stepping backwards,
	// since a backwards target always means a scheduling bug upstream.
	ErrTimeReversal = errors.New("evolve target precedes current time")

	// ErrModelContract reports a Model.Step call that returned without
	// advancing the state clock to its target.
	ErrModelContract = errors.New("model step violated its contract")

	// ErrUnsortedClaim reports a compiled claim whose events are not in
	// non-decreasing time order.
	ErrUnsortedClaim = errors.New("claim events not sorted by time")

	// ErrInvalidTrials reports a non-positive trial count.
	ErrInvalidTrials = errors.New("trial count must be positive")
)
