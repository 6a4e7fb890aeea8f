package models

import (
	"math"
	"testing"

	"github.com/claim-sim/claim-sim/mc"
)

func TestGBM_Initialize(t *testing.T) {
	g := GBM{Spot: 100, Rate: 0.05, Volatility: 0.2}
	st := g.Initialize(mc.NewStream(mc.NewStreamKey(1)))
	if st.Snapshot != 100 || st.Now != mc.TimeZero {
		t.Errorf("Initialize = %+v, want spot 100 at time zero", st)
	}
}

func TestGBM_Discount(t *testing.T) {
	g := GBM{Spot: 100, Rate: 0.05}
	tests := []struct {
		t    mc.Time
		want float64
	}{
		{0, 1},
		{1, math.Exp(-0.05)},
		{2.5, math.Exp(-0.125)},
	}
	for _, tt := range tests {
		if got := g.Discount(tt.t); math.Abs(got-tt.want) > 1e-15 {
			t.Errorf("Discount(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestGBM_StepAdvancesToExactTarget(t *testing.T) {
	g := GBM{Spot: 100, Rate: 0.05, Volatility: 0.2}
	st := g.Initialize(nil)
	rs := mc.NewStream(mc.NewStreamKey(1))

	g.Step(&st, rs, 0.5, false)
	if st.Now != 0.5 {
		t.Errorf("Now = %v, want exactly 0.5", st.Now)
	}
	if st.Snapshot <= 0 {
		t.Errorf("Snapshot = %v, want positive lognormal level", st.Snapshot)
	}
}

func TestGBM_AntitheticMirrorsVariates(t *testing.T) {
	// BDD: the plain and mirrored steps from the same stream state satisfy
	// S+ · S- = S0² · exp(2(r-σ²/2)dt), the lognormal mirror identity
	g := GBM{Spot: 100, Rate: 0.05, Volatility: 0.2}

	plain := g.Initialize(nil)
	g.Step(&plain, mc.NewStream(mc.NewStreamKey(7)), 1.0, false)

	mirrored := g.Initialize(nil)
	g.Step(&mirrored, mc.NewStream(mc.NewStreamKey(7)), 1.0, true)

	want := 100 * 100 * math.Exp(2*(0.05-0.5*0.2*0.2))
	if got := plain.Snapshot * mirrored.Snapshot; math.Abs(got-want) > 1e-8 {
		t.Errorf("S+·S- = %v, want %v", got, want)
	}
}

func TestGBM_ForwardDoesNotAdvanceTime(t *testing.T) {
	g := GBM{Spot: 100, Rate: 0.05, Volatility: 0.2}
	st := g.Initialize(nil)
	rs := mc.NewStream(mc.NewStreamKey(1))

	f := g.Forward(&st, rs, 2.0)
	if st.Now != mc.TimeZero || st.Snapshot != 100 {
		t.Errorf("Forward mutated state: %+v", st)
	}
	if f <= 0 {
		t.Errorf("Forward = %v, want positive", f)
	}
}

func TestGBM_MartingaleUnderDiscounting(t *testing.T) {
	// E[S_T]·d(T) should equal S0; check the sample mean over many paths
	g := GBM{Spot: 100, Rate: 0.05, Volatility: 0.2, MaxStepSize: 0.05}
	rs := mc.NewStream(mc.NewStreamKey(42))

	const trials = 20000
	sum := 0.0
	for k := 0; k < trials; k++ {
		st := g.Initialize(rs)
		if err := mc.Evolve[float64](g, &st, rs, 1.0, false); err != nil {
			t.Fatal(err)
		}
		sum += st.Snapshot
	}
	got := (sum / trials) * g.Discount(1.0)
	// stderr of the discounted mean is about 0.14 at 20k paths
	if math.Abs(got-100) > 1.0 {
		t.Errorf("discounted mean = %v, want within 1.0 of 100", got)
	}
}

func TestGBM_MaxStepPassthrough(t *testing.T) {
	if got := (GBM{MaxStepSize: 0.01}).MaxStep(); got != 0.01 {
		t.Errorf("MaxStep = %v, want 0.01", got)
	}
	if got := (GBM{}).MaxStep(); got != 0 {
		t.Errorf("MaxStep = %v, want 0 (engine default applies)", got)
	}
}

func TestGBM_PricesEuropeanCallNearBlackScholes(t *testing.T) {
	// ATM call, S0=100, r=5%, σ=20%, T=1: Black-Scholes ≈ 10.4506
	g := GBM{Spot: 100, Rate: 0.05, Volatility: 0.2, MaxStepSize: 0.25}
	claim := mc.Claim[float64]{{Time: 1.0, Payoff: func(h *mc.History[float64]) []mc.CashFlow {
		s, _ := h.Latest()
		return []mc.CashFlow{{Time: 1.0, Amount: math.Max(s-100, 0)}}
	}}}

	got, err := mc.RunSimulationAnti[float64](g, claim, 42, 200000)
	if err != nil {
		t.Fatal(err)
	}
	const bs = 10.4506
	if math.Abs(got-bs) > 0.2 {
		t.Errorf("call price = %v, want within 0.2 of %v", got, bs)
	}
}
