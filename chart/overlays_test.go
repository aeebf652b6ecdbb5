package chart

import (
	"strings"
	"testing"

	"github.com/zengeld/zengeld-canvas/model"
)

func TestRenderLegend(t *testing.T) {
	doc, err := New(800, 500).
		Bars(sampleBars(40)).
		Legend(model.DefaultLegend()).
		Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(doc, "O: ") || !strings.Contains(doc, "C: ") {
		t.Errorf("legend readout missing from document")
	}
	if !strings.Contains(doc, "%)") {
		t.Errorf("legend percent change missing from document")
	}
}

func TestRenderLegendClearsTitle(t *testing.T) {
	lg := model.DefaultLegend()
	lg.Color = "#abcdef"
	doc, err := New(800, 500).
		Bars(sampleBars(40)).
		Title("ACME Corp").
		Legend(lg).
		Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(doc, "ACME Corp") || !strings.Contains(doc, "#abcdef") {
		t.Errorf("title and legend should both render")
	}
}

func TestRenderWatermark(t *testing.T) {
	doc, err := New(800, 500).
		Bars(sampleBars(40)).
		Watermark(model.NewWatermark("AAPL 1D", "#2a2a2a", 48)).
		Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	wmAt := strings.Index(doc, "AAPL 1D")
	if wmAt < 0 {
		t.Fatalf("watermark text missing from document")
	}
	// The watermark sits behind the series, so its text precedes the
	// clipped series group.
	clipAt := strings.Index(doc, "clip-path")
	if clipAt >= 0 && wmAt > clipAt {
		t.Errorf("watermark at %d should precede the series clip at %d", wmAt, clipAt)
	}
}

func TestRenderCompareSwitchesToPercent(t *testing.T) {
	bars := sampleBars(40)
	other := make([]model.Bar, len(bars))
	for i, b := range bars {
		other[i] = model.Bar{Time: b.Time, Close: b.Close * 3}
	}
	doc, err := New(800, 500).
		Bars(bars).
		Compare(model.NewCompareSeries("XYZ", other, "#e91e63")).
		Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(doc, "#e91e63") {
		t.Errorf("compare line colour missing from document")
	}
	// A comparison forces percent mode, so the axis labels carry %.
	if !strings.Contains(doc, "%") {
		t.Errorf("percent axis labels missing from document")
	}
}

func TestRenderCompareWithGaps(t *testing.T) {
	bars := sampleBars(40)
	// Drop every third bar from the compared symbol.
	var other []model.Bar
	for i, b := range bars {
		if i%3 == 0 {
			continue
		}
		other = append(other, model.Bar{Time: b.Time, Close: b.Close * 2})
	}
	doc, err := New(800, 500).
		Bars(bars).
		Compare(model.NewCompareSeries("XYZ", other, "#e91e63")).
		Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(doc, "#e91e63") {
		t.Errorf("compare line with gaps missing from document")
	}
}
