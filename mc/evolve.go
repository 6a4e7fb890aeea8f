package mc

import "fmt"

// Evolve advances st to the target time t2, splitting the interval into
// single steps no larger than the model's declared maximum. The bounded step
// size is a numerical-stability requirement of the model's discretization
// scheme and is deliberately decoupled from the coarser, irregular spacing
// of contract event times.
//
// Control flow over the current time t1 = st.Now:
//   - t1 == t2: nothing to do.
//   - t2 - t1 < maxStep: one Step directly to t2.
//   - otherwise: one Step of exactly maxStep, then continue toward t2.
//
// Implemented as a loop rather than recursion so very fine step bounds do
// not grow the stack. A target earlier than st.Now fails with
// ErrTimeReversal; a Step that returns without reaching its target fails
// with ErrModelContract.
func Evolve[S any](m Model[S], st *State[S], rs *Stream, t2 Time, antithetic bool) error {
	if t2.Before(st.Now) {
		return fmt.Errorf("%w: target %v, current %v", ErrTimeReversal, t2, st.Now)
	}
	h := maxStep(m)
	for st.Now.Before(t2) {
		next := t2
		if t2.Sub(st.Now) >= h {
			next = st.Now.Add(h)
		}
		m.Step(st, rs, next, antithetic)
		if st.Now != next {
			return fmt.Errorf("%w: step left clock at %v, want %v", ErrModelContract, st.Now, next)
		}
	}
	return nil
}
