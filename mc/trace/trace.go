// Package trace collects per-trial valuation records during a Monte Carlo
// run and aggregates them into summary statistics for reporting.
package trace

// TrialRecord is one trial's discounted present value.
type TrialRecord struct {
	Trial int     `json:"trial"`
	Value float64 `json:"value"`
}

// ValuationTrace collects trial records during a run. It implements the
// engine's TrialRecorder hook.
type ValuationTrace struct {
	Records []TrialRecord
}

// NewValuationTrace creates a ValuationTrace ready for recording.
func NewValuationTrace() *ValuationTrace {
	return &ValuationTrace{Records: make([]TrialRecord, 0)}
}

// RecordTrial appends one trial's discounted value.
func (vt *ValuationTrace) RecordTrial(trial int, value float64) {
	vt.Records = append(vt.Records, TrialRecord{Trial: trial, Value: value})
}

// Values returns the recorded values in trial order.
func (vt *ValuationTrace) Values() []float64 {
	values := make([]float64, len(vt.Records))
	for i, r := range vt.Records {
		values[i] = r.Value
	}
	return values
}
