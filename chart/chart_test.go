package chart

import (
	"strings"
	"testing"

	"github.com/zengeld/zengeld-canvas/model"
	"github.com/zengeld/zengeld-canvas/primitives"
)

func TestBuilderChain(t *testing.T) {
	bars := sampleBars(40)
	doc, err := New(640, 480).
		Bars(bars).
		SeriesType(model.AreaSeries).
		Theme(LightTheme()).
		Title("EURUSD 1h").
		Overlay(model.Indicator{
			Name:    "EMA",
			Vectors: []model.Vector{{Values: closes(bars), Color: "#3f51b5"}},
		}).
		AddSignal(model.Signal{BarIndex: 8, Price: bars[8].Low, Type: model.SignalEntry}).
		Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(doc, "EURUSD 1h") {
		t.Error("title missing")
	}
	if !strings.Contains(doc, LightTheme().Background) {
		t.Error("light theme background missing")
	}
}

func closes(bars []model.Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}

func TestBuilderPrimitives(t *testing.T) {
	bars := sampleBars(30)
	fib := primitives.Default().Create("fib_retracement",
		[]primitives.Point{{Bar: 3, Price: 96}, {Bar: 25, Price: 106}}, "")
	doc, err := New(800, 500).Bars(bars).AddPrimitive(fib).Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(doc, "0.618") {
		t.Error("retracement level labels missing")
	}
}

func TestMultiChartGrid(t *testing.T) {
	m, err := NewMultiChart(2, 1, 400, 300)
	if err != nil {
		t.Fatalf("NewMultiChart failed: %v", err)
	}
	bars := sampleBars(20)
	if err := m.Add(New(10, 10).Bars(bars).Title("left")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := m.Add(New(10, 10).Bars(bars).SeriesType(model.LineSeries).Title("right")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := m.Add(New(10, 10)); err == nil {
		t.Error("expected error adding past grid capacity")
	}

	doc, err := m.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := strings.Count(doc, "<?xml"); got != 1 {
		t.Errorf("nested documents must drop their XML declaration, got %d", got)
	}
	if !strings.Contains(doc, `<svg x="400" y="0"`) {
		t.Error("second cell should land in the second column")
	}
	if !strings.Contains(doc, "left") || !strings.Contains(doc, "right") {
		t.Error("both cell titles should appear")
	}
}

func TestMultiChartValidation(t *testing.T) {
	if _, err := NewMultiChart(0, 1, 100, 100); err == nil {
		t.Error("expected error for zero columns")
	}
	if _, err := NewMultiChart(1, 1, 100, 0); err == nil {
		t.Error("expected error for zero cell height")
	}
}

func TestConfigNormalizeDefaults(t *testing.T) {
	cfg := Config{Width: 300, Height: 200}
	got, err := cfg.normalize()
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if got.DPR != 1 {
		t.Errorf("DPR default = %v, want 1", got.DPR)
	}
	if got.Layout.PriceScaleWidth != DefaultPriceScaleWidth {
		t.Errorf("price scale width = %v", got.Layout.PriceScaleWidth)
	}
	if got.Series.UpColor != DarkTheme().UpColor {
		t.Errorf("up color should fall back to theme, got %q", got.Series.UpColor)
	}
}
