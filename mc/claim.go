package mc

import "fmt"

// CashFlow is a deterministic payment awaiting discounting.
type CashFlow struct {
	Time   Time    // payment time
	Amount float64 // payment amount, in currency units
}

// Payoff maps the fixings observed so far to zero or more cash flows.
// It is invoked when its claim event's time is reached, with the History
// accumulated up to and including that time.
type Payoff[S any] func(h *History[S]) []CashFlow

// ClaimEvent is one entry of a compiled claim: an observation time, plus an
// optional payoff to generate cash flows from the fixings recorded so far.
// A nil Payoff marks a pure observation (fixing-only) event.
type ClaimEvent[S any] struct {
	Time   Time
	Payoff Payoff[S]
}

// Claim is a compiled term sheet: claim events ordered non-decreasing by
// time. Compilation happens outside the engine (see the scenario package);
// the engine validates the ordering at its boundary and otherwise treats the
// claim as opaque.
type Claim[S any] []ClaimEvent[S]

// Validate checks the non-decreasing-time invariant.
// A violation is reported as an ErrUnsortedClaim input-validation error.
func (c Claim[S]) Validate() error {
	for i := 1; i < len(c); i++ {
		if c[i].Time.Before(c[i-1].Time) {
			return fmt.Errorf("%w: event %d at %v precedes event %d at %v",
				ErrUnsortedClaim, i, c[i].Time, i-1, c[i-1].Time)
		}
	}
	return nil
}
