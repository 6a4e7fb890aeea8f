// Package models provides concrete stochastic models for the valuation
// engine. Each model implements mc.Model over its own snapshot type; the
// engine core stays model-agnostic.
package models

import (
	"math"

	"github.com/claim-sim/claim-sim/mc"
)

// GBM is a geometric Brownian motion of a single asset under a constant
// short rate: dS = r·S·dt + σ·S·dW. The snapshot is the asset level. The
// single step is the exact lognormal transition, so MaxStepSize bounds
// stepping only for path-resolution reasons, not discretization error.
type GBM struct {
	Spot        float64 // asset level at the valuation date
	Rate        float64 // continuously compounded short rate r
	Volatility  float64 // diffusion coefficient σ
	MaxStepSize float64 // single-step bound in years; <=0 means the engine default
}

var _ mc.Model[float64] = GBM{}

// Initialize starts a trial at the spot level on the valuation date.
func (g GBM) Initialize(_ *mc.Stream) mc.State[float64] {
	return mc.State[float64]{Snapshot: g.Spot, Now: mc.TimeZero}
}

// Discount is the deterministic present-value factor exp(-r·t).
func (g GBM) Discount(t mc.Time) float64 {
	return math.Exp(-g.Rate * t.Sub(mc.TimeZero))
}

// Forward samples the asset level at time t conditional on the current
// state, without advancing the simulated time.
func (g GBM) Forward(st *mc.State[float64], rs *mc.Stream, t mc.Time) float64 {
	return st.Snapshot * g.transition(t.Sub(st.Now), rs.Normal())
}

// Step advances the state to exactly t with one lognormal transition.
// With antithetic=true the normal variate is negated, mirroring the path.
func (g GBM) Step(st *mc.State[float64], rs *mc.Stream, t mc.Time, antithetic bool) {
	z := rs.Normal()
	if antithetic {
		z = -z
	}
	st.Snapshot *= g.transition(t.Sub(st.Now), z)
	st.Now = t
}

// MaxStep declares the configured single-step bound.
func (g GBM) MaxStep() float64 {
	return g.MaxStepSize
}

// transition is the exact lognormal growth factor over dt years given a
// standard normal draw z.
func (g GBM) transition(dt, z float64) float64 {
	return math.Exp((g.Rate-0.5*g.Volatility*g.Volatility)*dt + g.Volatility*math.Sqrt(dt)*z)
}
