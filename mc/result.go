package mc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Result aggregates a run's estimator and its sampling error
// for final reporting.
type Result struct {
	Estimate float64 // Monte Carlo estimate of present value
	Variance float64 // unbiased sample variance of per-trial values
	StdErr   float64 // standard error of the estimate
	Trials   int     // number of trials averaged
}

// SimulateStats runs the merge engine like SimulateState but also collects
// the per-trial samples and returns their summary statistics.
func SimulateStats[S any](m Model[S], claim Claim[S], rs *Stream, trials int, antithetic bool) (Result, error) {
	values := make([]float64, 0, max(trials, 0))
	collector := trialCollector{values: &values}
	est, err := SimulateStateObserved(m, claim, rs, trials, antithetic, &collector)
	if err != nil {
		return Result{}, err
	}
	variance := stat.Variance(values, nil)
	return Result{
		Estimate: est,
		Variance: variance,
		StdErr:   math.Sqrt(variance / float64(trials)),
		Trials:   trials,
	}, nil
}

// trialCollector is the TrialRecorder that backs SimulateStats.
type trialCollector struct {
	values *[]float64
}

func (c *trialCollector) RecordTrial(_ int, value float64) {
	*c.values = append(*c.values, value)
}

// Print displays the result block at the end of a run.
func (r Result) Print() {
	fmt.Println("=== Valuation Result ===")
	fmt.Printf("Present Value   : %.6f\n", r.Estimate)
	fmt.Printf("Std Error       : %.6f\n", r.StdErr)
	fmt.Printf("Sample Variance : %.6f\n", r.Variance)
	fmt.Printf("Trials          : %d\n", r.Trials)
}
