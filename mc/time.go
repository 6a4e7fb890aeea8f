package mc

// Time is a point on the simulation clock, measured in years from the
// valuation date. The zero value is the valuation date itself. All event
// sequencing in the engine relies on its total ordering.
type Time float64

// TimeZero is the valuation date, the default starting time of every trial.
const TimeZero Time = 0

// DefaultMaxStep is the fallback single-step bound when a model does not
// declare one: 1/250, one trading day in year units.
const DefaultMaxStep = 1.0 / 250

// Sub returns the (non-negative, when t >= u) duration from u to t in years.
func (t Time) Sub(u Time) float64 {
	return float64(t - u)
}

// Add returns the time dt years after t.
func (t Time) Add(dt float64) Time {
	return t + Time(dt)
}

// Before reports whether t is strictly earlier than u.
func (t Time) Before(u Time) bool { return t < u }

// After reports whether t is strictly later than u.
func (t Time) After(u Time) bool { return t > u }
