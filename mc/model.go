package mc

// Model is the capability set a stochastic model must provide to plug into
// the valuation engine. A Model value is immutable configuration: it owns no
// per-trial state, so one Model may be shared across all trials (including
// parallel ones) without synchronization. All per-trial mutation happens
// through the State and Stream handles passed to each call.
//
// The snapshot type S is model-defined and opaque to the engine.
type Model[S any] interface {
	// Initialize creates the starting state of one trial: the initial
	// observable snapshot at the valuation date (TimeZero).
	Initialize(rs *Stream) State[S]

	// Discount returns the path-independent discount factor from the
	// valuation date to time t. It must be pure: callable with no
	// simulation state and no randomness.
	Discount(t Time) float64

	// Forward samples a model-specific quantity at time t (for example a
	// terminal asset level) conditional on the current state, consuming
	// randomness. It must not advance the simulated time.
	Forward(st *State[S], rs *Stream, t Time) float64

	// Step is the irreducible single evolution step: it advances st from
	// st.Now to exactly t, consuming randomness from rs. The engine
	// guarantees t >= st.Now and t-st.Now <= MaxStep before calling.
	// With antithetic=true the step must mirror (negate) its variates
	// relative to antithetic=false, producing a negatively correlated path.
	Step(st *State[S], rs *Stream, t Time, antithetic bool)

	// MaxStep declares the largest time increment (in years) a single Step
	// call supports for numerical accuracy. A value <= 0 selects
	// DefaultMaxStep.
	MaxStep() float64
}

// StochasticDiscounter is the optional override for models whose discounting
// is itself stochastic. When a Model also implements it, the engine discounts
// realized cash flows through DiscountState; otherwise it lifts the pure
// Discount factor.
type StochasticDiscounter[S any] interface {
	DiscountState(st *State[S], rs *Stream, t Time) float64
}

// discountState resolves the discount factor for a realized cash flow at t.
func discountState[S any](m Model[S], st *State[S], rs *Stream, t Time) float64 {
	if sd, ok := m.(StochasticDiscounter[S]); ok {
		return sd.DiscountState(st, rs, t)
	}
	return m.Discount(t)
}

// maxStep resolves a model's declared step bound, applying the default.
func maxStep[S any](m Model[S]) float64 {
	if h := m.MaxStep(); h > 0 {
		return h
	}
	return DefaultMaxStep
}
