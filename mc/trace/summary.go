package trace

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// TraceSummary aggregates statistics from a ValuationTrace.
type TraceSummary struct {
	Trials int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	P05    float64 // 5th percentile of per-trial values
	P50    float64
	P95    float64
}

// Summarize computes aggregate statistics from a ValuationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(vt *ValuationTrace) *TraceSummary {
	summary := &TraceSummary{}
	if vt == nil || len(vt.Records) == 0 {
		return summary
	}

	values := vt.Values()
	sort.Float64s(values)

	summary.Trials = len(values)
	summary.Mean = stat.Mean(values, nil)
	summary.StdDev = math.Sqrt(stat.Variance(values, nil))
	summary.Min = values[0]
	summary.Max = values[len(values)-1]
	summary.P05 = stat.Quantile(0.05, stat.Empirical, values, nil)
	summary.P50 = stat.Quantile(0.50, stat.Empirical, values, nil)
	summary.P95 = stat.Quantile(0.95, stat.Empirical, values, nil)
	return summary
}

// Print displays the trace summary block.
func (s *TraceSummary) Print() {
	fmt.Println("=== Trial Trace Summary ===")
	fmt.Printf("Trials : %d\n", s.Trials)
	fmt.Printf("Mean   : %.6f\n", s.Mean)
	fmt.Printf("StdDev : %.6f\n", s.StdDev)
	fmt.Printf("Min    : %.6f   Max: %.6f\n", s.Min, s.Max)
	fmt.Printf("P05    : %.6f   P50: %.6f   P95: %.6f\n", s.P05, s.P50, s.P95)
}
