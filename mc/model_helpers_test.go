package mc

import "math"

// Test models shared across the engine, evolve, and driver tests.

// detModel is a deterministic model: the snapshot at time t is path(t) and
// discounting follows df(t). It records every single-step target, which the
// evolve tests use to count and inspect substeps.
type detModel struct {
	h     float64           // declared max step
	path  func(Time) float64 // snapshot as a function of time
	df    func(Time) float64 // discount factor
	steps []Time             // Step targets, in call order
	stuck bool               // if set, Step never advances the clock
}

func (m *detModel) Initialize(_ *Stream) State[float64] {
	return State[float64]{Snapshot: m.path(TimeZero), Now: TimeZero}
}

func (m *detModel) Discount(t Time) float64 { return m.df(t) }

func (m *detModel) Forward(st *State[float64], _ *Stream, t Time) float64 {
	return m.path(t)
}

func (m *detModel) Step(st *State[float64], _ *Stream, t Time, _ bool) {
	m.steps = append(m.steps, t)
	if m.stuck {
		return
	}
	st.Snapshot = m.path(t)
	st.Now = t
}

func (m *detModel) MaxStep() float64 { return m.h }

// newDetModel builds a detModel with a flat unit path and no discounting.
func newDetModel(h float64) *detModel {
	return &detModel{
		h:    h,
		path: func(Time) float64 { return 1 },
		df:   func(Time) float64 { return 1 },
	}
}

// walkModel is an arithmetic Brownian motion with zero drift: each step adds
// sqrt(dt)·z to the snapshot, with z negated under the antithetic flag. Its
// discount factor is 1, so a payoff linear in the terminal snapshot has an
// exactly known expectation (the starting level).
type walkModel struct {
	start float64
	h     float64
}

func (m *walkModel) Initialize(_ *Stream) State[float64] {
	return State[float64]{Snapshot: m.start, Now: TimeZero}
}

func (m *walkModel) Discount(Time) float64 { return 1 }

func (m *walkModel) Forward(st *State[float64], rs *Stream, t Time) float64 {
	return st.Snapshot + math.Sqrt(t.Sub(st.Now))*rs.Normal()
}

func (m *walkModel) Step(st *State[float64], rs *Stream, t Time, antithetic bool) {
	z := rs.Normal()
	if antithetic {
		z = -z
	}
	st.Snapshot += math.Sqrt(t.Sub(st.Now)) * z
	st.Now = t
}

func (m *walkModel) MaxStep() float64 { return m.h }

// stochDiscModel wraps detModel with a stateful discount override and an
// operation log, used to verify DiscountState dispatch and merge ordering.
type stochDiscModel struct {
	detModel
	log    *[]string
	factor float64
}

func (m *stochDiscModel) DiscountState(_ *State[float64], _ *Stream, t Time) float64 {
	*m.log = append(*m.log, "discount")
	return m.factor
}
