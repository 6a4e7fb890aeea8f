package scenario

import (
	"fmt"
	"sort"

	"github.com/claim-sim/claim-sim/mc"
	"github.com/claim-sim/claim-sim/mc/models"
)

// CompileModel builds the configured stochastic model.
func CompileModel(cfg ModelConfig) (mc.Model[float64], error) {
	switch cfg.Kind {
	case "gbm", "":
		if cfg.Spot <= 0 {
			return nil, fmt.Errorf("gbm model: spot must be positive, got %v", cfg.Spot)
		}
		if cfg.Volatility < 0 {
			return nil, fmt.Errorf("gbm model: volatility must be non-negative, got %v", cfg.Volatility)
		}
		return models.GBM{
			Spot:        cfg.Spot,
			Rate:        cfg.Rate,
			Volatility:  cfg.Volatility,
			MaxStepSize: cfg.MaxStep,
		}, nil
	default:
		return nil, fmt.Errorf("unknown model kind %q", cfg.Kind)
	}
}

// CompileClaim builds the pre-sorted claim the engine consumes. Term-sheet
// entries may appear in any order; compilation establishes the ascending
// time invariant with a stable sort.
func CompileClaim(cfg ClaimConfig) (mc.Claim[float64], error) {
	claim := make(mc.Claim[float64], 0, len(cfg.Events))
	for i, ev := range cfg.Events {
		if ev.Time < 0 {
			return nil, fmt.Errorf("event %d: time must be non-negative, got %v", i, ev.Time)
		}
		payoff, err := compilePayoff(ev.Payoff)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		claim = append(claim, mc.ClaimEvent[float64]{Time: mc.Time(ev.Time), Payoff: payoff})
	}
	sort.SliceStable(claim, func(i, j int) bool { return claim[i].Time.Before(claim[j].Time) })
	return claim, nil
}

// compilePayoff turns a payoff config into the engine's payoff function.
// Every payoff pays at the fixing time of its own event (the latest entry
// in the history it receives).
func compilePayoff(cfg *PayoffConfig) (mc.Payoff[float64], error) {
	if cfg == nil {
		return nil, nil // pure observation date
	}
	notional := cfg.Notional
	if notional == 0 {
		notional = 1
	}
	switch cfg.Kind {
	case "fixed":
		amount := cfg.Amount
		return func(h *mc.History[float64]) []mc.CashFlow {
			return []mc.CashFlow{{Time: payTime(h), Amount: amount}}
		}, nil
	case "forward":
		strike := cfg.Strike
		return func(h *mc.History[float64]) []mc.CashFlow {
			fixing, _ := h.Latest()
			return []mc.CashFlow{{Time: payTime(h), Amount: notional * (fixing - strike)}}
		}, nil
	case "call":
		strike := cfg.Strike
		return func(h *mc.History[float64]) []mc.CashFlow {
			fixing, _ := h.Latest()
			return []mc.CashFlow{{Time: payTime(h), Amount: notional * max(fixing-strike, 0)}}
		}, nil
	case "put":
		strike := cfg.Strike
		return func(h *mc.History[float64]) []mc.CashFlow {
			fixing, _ := h.Latest()
			return []mc.CashFlow{{Time: payTime(h), Amount: notional * max(strike-fixing, 0)}}
		}, nil
	case "asian_call":
		strike := cfg.Strike
		return func(h *mc.History[float64]) []mc.CashFlow {
			sum := 0.0
			for _, t := range h.Times() {
				fixing, _ := h.At(t)
				sum += fixing
			}
			mean := sum / float64(h.Len())
			return []mc.CashFlow{{Time: payTime(h), Amount: notional * max(mean-strike, 0)}}
		}, nil
	default:
		return nil, fmt.Errorf("unknown payoff kind %q", cfg.Kind)
	}
}

// payTime is the fixing time of the event that fired the payoff.
func payTime(h *mc.History[float64]) mc.Time {
	times := h.Times()
	return times[len(times)-1]
}
