// Implements the event-merge engine: the single-trial procedure that
// interleaves a claim's observation schedule with the cash flows its payoffs
// generate, discounting each realized flow into a running present value.

package mc

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// TrialRecorder receives each trial's discounted value as it is produced.
// mc/trace.ValuationTrace is the standard implementation; statistics
// drivers use it to collect per-trial samples.
type TrialRecorder interface {
	RecordTrial(trial int, value float64)
}

// SimulateState runs trials independent repetitions of the single-trial
// merge and returns the arithmetic mean of the per-trial discounted values:
// the Monte Carlo estimator of the claim's present value.
//
// The claim's ordering invariant and the trial count are validated here, at
// the engine boundary; the merge itself assumes well-formed inputs. The
// Stream is threaded across trials, so results are deterministic given an
// identical initial stream state.
func SimulateState[S any](m Model[S], claim Claim[S], rs *Stream, trials int, antithetic bool) (float64, error) {
	return SimulateStateObserved(m, claim, rs, trials, antithetic, nil)
}

// SimulateStateObserved is SimulateState with a per-trial value hook.
// rec may be nil.
func SimulateStateObserved[S any](m Model[S], claim Claim[S], rs *Stream, trials int, antithetic bool, rec TrialRecorder) (float64, error) {
	if trials <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidTrials, trials)
	}
	if err := claim.Validate(); err != nil {
		return 0, err
	}

	sum := 0.0
	for k := 0; k < trials; k++ {
		v, err := simulateTrial(m, claim, rs, antithetic)
		if err != nil {
			return 0, fmt.Errorf("trial %d: %w", k, err)
		}
		logrus.Debugf("[trial %04d] discounted value %.6f", k, v)
		if rec != nil {
			rec.RecordTrial(k, v)
		}
		sum += v
	}
	return sum / float64(trials), nil
}

// simulateTrial prices the claim along one simulated path.
//
// It merges two ascending streams: the claim's pre-sorted events and the
// pending-flow queue, which starts empty and grows as payoffs fire. At each
// round the earlier of (next claim event, head pending flow) is processed;
// on equal times the claim event goes first. A pending flow is realized by
// evolving to its time, discounting, and accumulating; a claim event is
// realized by evolving to its time, recording the snapshot as a fixing, and
// merge-inserting whatever cash flows its payoff generates. The trial ends
// when both streams are exhausted.
func simulateTrial[S any](m Model[S], claim Claim[S], rs *Stream, antithetic bool) (float64, error) {
	st := m.Initialize(rs)
	hist := NewHistory[S]()
	pending := &FlowQueue{}

	total := 0.0
	next := 0 // index of the next unprocessed claim event

	for next < len(claim) || pending.Len() > 0 {
		head, haveFlow := pending.Peek()
		if haveFlow && (next >= len(claim) || claim[next].Time.After(head.Time)) {
			// Realize the pending cash flow.
			if err := Evolve(m, &st, rs, head.Time, antithetic); err != nil {
				return 0, err
			}
			df := discountState(m, &st, rs, head.Time)
			total += df * head.Amount
			pending.Pop()
			logrus.Tracef("  flow %v@%v df=%.6f total=%.6f", head.Amount, head.Time, df, total)
			continue
		}

		// Process the claim event: observe, then let the payoff queue flows.
		ev := claim[next]
		if err := Evolve(m, &st, rs, ev.Time, antithetic); err != nil {
			return 0, err
		}
		hist.Record(ev.Time, st.Snapshot)
		if ev.Payoff != nil {
			for _, cf := range ev.Payoff(hist) {
				pending.Insert(cf)
			}
		}
		next++
		logrus.Tracef("  event at %v, %d fixings, %d pending", ev.Time, hist.Len(), pending.Len())
	}
	return total, nil
}
