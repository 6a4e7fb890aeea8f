// Package scenario loads valuation scenarios from YAML term sheets and
// compiles them into the model and pre-sorted claim the engine consumes.
// Compilation lives outside the engine core: the engine only ever sees the
// resulting mc.Claim.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a full valuation case, loadable from a YAML file.
type Scenario struct {
	Model ModelConfig `yaml:"model"`
	Claim ClaimConfig `yaml:"claim"`
}

// ModelConfig selects and parametrizes the stochastic model.
type ModelConfig struct {
	Kind       string  `yaml:"kind"`       // "gbm"
	Spot       float64 `yaml:"spot"`       // asset level at the valuation date
	Rate       float64 `yaml:"rate"`       // continuously compounded short rate
	Volatility float64 `yaml:"volatility"` // diffusion coefficient
	MaxStep    float64 `yaml:"max_step"`   // single-step bound in years (0 = engine default)
}

// ClaimConfig is the term sheet: the contract's observation and payment
// schedule.
type ClaimConfig struct {
	Events []EventConfig `yaml:"events"`
}

// EventConfig is one term-sheet entry. A nil Payoff marks a pure
// observation (fixing) date.
type EventConfig struct {
	Time   float64       `yaml:"time"`
	Payoff *PayoffConfig `yaml:"payoff"`
}

// PayoffConfig selects and parametrizes a payoff.
type PayoffConfig struct {
	Kind     string  `yaml:"kind"`     // "fixed", "forward", "call", "put", "asian_call"
	Amount   float64 `yaml:"amount"`   // fixed payment amount (kind "fixed")
	Strike   float64 `yaml:"strike"`   // strike level (option/forward kinds)
	Notional float64 `yaml:"notional"` // scale factor, default 1 (option/forward kinds)
}

// Load reads and parses a YAML scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}
