package model

import (
	"math"
	"testing"
)

func TestValueRangeAuto(t *testing.T) {
	ind := Indicator{
		Vectors: []Vector{{Values: []float64{math.NaN(), 5, 12, 3, 9}}},
	}
	lo, hi, ok := ind.ValueRange(0, 5)
	if !ok || lo != 3 || hi != 12 {
		t.Errorf("ValueRange = %v, %v, %v; want 3, 12, true", lo, hi, ok)
	}

	lo, hi, ok = ind.ValueRange(0, 2)
	if !ok || lo != 4.75 || hi != 5.25 {
		t.Errorf("single value should pad: got %v, %v, %v", lo, hi, ok)
	}
}

func TestValueRangeIncludesLevels(t *testing.T) {
	ind := Indicator{
		Vectors: []Vector{{Values: []float64{40, 50, 60}}},
		Levels:  []Level{{Value: 30}, {Value: 70}},
	}
	lo, hi, ok := ind.ValueRange(0, 3)
	if !ok || lo != 30 || hi != 70 {
		t.Errorf("levels should widen the range: got %v, %v, %v", lo, hi, ok)
	}
}

func TestValueRangeFixed(t *testing.T) {
	ind := Indicator{Range: RangeFixed, Min: 0, Max: 100}
	lo, hi, ok := ind.ValueRange(0, 10)
	if !ok || lo != 0 || hi != 100 {
		t.Errorf("fixed range = %v, %v, %v", lo, hi, ok)
	}
	bad := Indicator{Range: RangeFixed, Min: 5, Max: 5}
	if _, _, ok := bad.ValueRange(0, 10); ok {
		t.Error("degenerate fixed range should report ok=false")
	}
}

func TestValueRangeSymmetric(t *testing.T) {
	ind := Indicator{
		Range:   RangeSymmetric,
		Vectors: []Vector{{Values: []float64{-2, 1, 5}}},
	}
	lo, hi, ok := ind.ValueRange(0, 3)
	if !ok || lo != -5 || hi != 5 {
		t.Errorf("symmetric range = %v, %v, %v; want -5, 5, true", lo, hi, ok)
	}
}

func TestValueRangeSkipsHiddenAndEmpty(t *testing.T) {
	ind := Indicator{
		Vectors: []Vector{{Values: []float64{1000, 2000}, Style: StyleHidden}},
	}
	if _, _, ok := ind.ValueRange(0, 2); ok {
		t.Error("hidden-only indicator should report ok=false")
	}
	empty := Indicator{}
	if _, _, ok := empty.ValueRange(0, 10); ok {
		t.Error("empty indicator should report ok=false")
	}
}

func TestSignalDefaults(t *testing.T) {
	s := Signal{Type: SignalBuy}
	if s.EffectiveColor() != SignalBuy.DefaultColor() {
		t.Errorf("color = %q", s.EffectiveColor())
	}
	if s.EffectiveSize() != 8 {
		t.Errorf("size = %v, want 8", s.EffectiveSize())
	}
	custom := Signal{Type: SignalSell, Color: "#123456", Size: 12}
	if custom.EffectiveColor() != "#123456" || custom.EffectiveSize() != 12 {
		t.Errorf("overrides not honoured: %q %v", custom.EffectiveColor(), custom.EffectiveSize())
	}
}

func TestSignalTypeStrings(t *testing.T) {
	cases := map[SignalType]string{
		SignalBuy:        "buy",
		SignalSell:       "sell",
		SignalTakeProfit: "take_profit",
		SignalStopLoss:   "stop_loss",
		SignalEntry:      "entry",
		SignalExit:       "exit",
		SignalCustom:     "custom",
	}
	for st, want := range cases {
		if st.String() != want {
			t.Errorf("%d.String() = %q, want %q", st, st.String(), want)
		}
	}
}
