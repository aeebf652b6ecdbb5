package coords

import (
	"math"
	"strings"
	"testing"
)

func newTestPriceScale(t *testing.T, min, max, height float64) *PriceScale {
	t.Helper()
	ps, err := NewPriceScale(min, max)
	if err != nil {
		t.Fatalf("NewPriceScale(%v, %v) failed: %v", min, max, err)
	}
	ps.Resize(height)
	return ps
}

func TestNewPriceScaleValidation(t *testing.T) {
	if _, err := NewPriceScale(100, 100); err == nil {
		t.Error("expected error when max == min")
	}
	if _, err := NewPriceScale(100, 50); err == nil {
		t.Error("expected error when max < min")
	}
}

func TestPriceToYEndpoints(t *testing.T) {
	ps := newTestPriceScale(t, 100, 200, 400)

	if got := ps.PriceToY(200); got != 0 {
		t.Errorf("PriceToY(max) = %v, want 0", got)
	}
	if got := ps.PriceToY(100); got != 400 {
		t.Errorf("PriceToY(min) = %v, want 400", got)
	}
	if got := ps.PriceToY(150); got != 200 {
		t.Errorf("PriceToY(mid) = %v, want 200", got)
	}
}

func TestYToPriceInvertsPriceToY(t *testing.T) {
	modes := []ScaleMode{ModeNormal, ModeLogarithmic, ModePercent, ModeIndexedTo100}
	for _, mode := range modes {
		ps := newTestPriceScale(t, 50, 150, 300)
		ps.SetMode(mode)
		ps.SetBasePrice(100)
		for _, p := range []float64{50, 75, 100, 125, 150} {
			y := ps.PriceToY(p)
			back := ps.YToPrice(y)
			if math.Abs(back-p) > 1e-6 {
				t.Errorf("mode %d: YToPrice(PriceToY(%v)) = %v", mode, p, back)
			}
		}
	}
}

func TestLogarithmicFloorsNonPositive(t *testing.T) {
	ps := newTestPriceScale(t, -10, 100, 300)
	ps.SetMode(ModeLogarithmic)

	y := ps.PriceToY(-5)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		t.Errorf("PriceToY(-5) in log mode = %v, want finite", y)
	}
}

func TestPercentModeTransform(t *testing.T) {
	ps := newTestPriceScale(t, 90, 110, 200)
	ps.SetMode(ModePercent)
	ps.SetBasePrice(100)

	// 110 is +10% and 90 is -10% of the base, so the base sits mid-pane.
	if got := ps.PriceToY(100); math.Abs(got-100) > 1e-9 {
		t.Errorf("PriceToY(base) = %v, want 100", got)
	}
}

func TestAutoFitPadding(t *testing.T) {
	ps := newTestPriceScale(t, 0, 1, 100)
	ps.AutoFit(100, 200)

	if got := ps.Min(); math.Abs(got-92) > 1e-9 {
		t.Errorf("min = %v, want 92", got)
	}
	if got := ps.Max(); math.Abs(got-208) > 1e-9 {
		t.Errorf("max = %v, want 208", got)
	}
}

func TestAutoFitFlatRange(t *testing.T) {
	ps := newTestPriceScale(t, 0, 1, 100)
	ps.AutoFit(100, 100)
	if ps.Max() <= ps.Min() {
		t.Errorf("flat AutoFit produced empty range [%v, %v]", ps.Min(), ps.Max())
	}
	ps.AutoFit(0, 0)
	if ps.Max() <= ps.Min() {
		t.Errorf("flat-at-zero AutoFit produced empty range [%v, %v]", ps.Min(), ps.Max())
	}
}

func TestNiceNumber(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{37, 50},
		{1, 1},
		{1.1, 2},
		{2, 2},
		{3, 5},
		{5, 5},
		{7, 10},
		{10, 10},
		{12, 20},
		{0.03, 0.05},
		{230, 500},
		{0, 0},
		{-5, 0},
	}
	for _, c := range cases {
		if got := NiceNumber(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("NiceNumber(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNiceNumberNotBelowInput(t *testing.T) {
	for v := 0.001; v < 1e6; v *= 1.37 {
		if got := NiceNumber(v); got < v {
			t.Errorf("NiceNumber(%v) = %v, below input", v, got)
		}
	}
}

func TestPrecisionByStepMagnitude(t *testing.T) {
	cases := []struct {
		step float64
		want int
	}{
		{100, 0},
		{1, 0},
		{0.5, 1},
		{0.05, 2},
		{0.005, 3},
		{0.0005, 4},
		{0.00005, 5},
	}
	for _, c := range cases {
		if got := Precision(c.step); got != c.want {
			t.Errorf("Precision(%v) = %d, want %d", c.step, got, c.want)
		}
	}
}

func TestTicksWithinRange(t *testing.T) {
	ps := newTestPriceScale(t, 96.5, 184.2, 400)
	ticks := ps.Ticks()
	if len(ticks) < 4 {
		t.Fatalf("expected at least 4 ticks, got %d", len(ticks))
	}
	for _, tk := range ticks {
		if tk.Price < ps.Min()-1e-9 || tk.Price > ps.Max()+1e-9 {
			t.Errorf("tick %v outside range [%v, %v]", tk.Price, ps.Min(), ps.Max())
		}
		if tk.Y < -1e-9 || tk.Y > ps.Height()+1e-9 {
			t.Errorf("tick y=%v outside pane height %v", tk.Y, ps.Height())
		}
		if tk.Label == "" {
			t.Error("tick with empty label")
		}
	}
}

func TestPercentModeTicks(t *testing.T) {
	ps := newTestPriceScale(t, 90, 120, 400)
	ps.SetMode(ModePercent)
	ps.SetBasePrice(100)
	ticks := ps.Ticks()
	if len(ticks) < 4 {
		t.Fatalf("expected at least 4 ticks, got %d", len(ticks))
	}
	for _, tk := range ticks {
		if !strings.HasSuffix(tk.Label, "%") {
			t.Errorf("percent tick label %q lacks %% suffix", tk.Label)
		}
		if tk.Label[0] != '+' && tk.Label[0] != '-' {
			t.Errorf("percent tick label %q lacks sign", tk.Label)
		}
	}
	// The range spans -10% to +20%, so both signs must appear.
	if ticks[0].Label[0] != '-' {
		t.Errorf("first tick %q should be negative", ticks[0].Label)
	}
	last := ticks[len(ticks)-1]
	if last.Label[0] != '+' {
		t.Errorf("last tick %q should be positive", last.Label)
	}
}

func TestSetRangeValidation(t *testing.T) {
	ps := newTestPriceScale(t, 0, 10, 100)
	if err := ps.SetRange(5, 5); err == nil {
		t.Error("expected error for empty range")
	}
	if err := ps.SetRange(1, 2); err != nil {
		t.Errorf("SetRange(1, 2) failed: %v", err)
	}
}
