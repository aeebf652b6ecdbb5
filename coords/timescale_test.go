package coords

import (
	"math"
	"testing"
	"time"
)

func newTestScale(t *testing.T, width float64, bars int) *TimeScale {
	t.Helper()
	ts, err := NewTimeScale(width, bars)
	if err != nil {
		t.Fatalf("NewTimeScale(%v, %d) failed: %v", width, bars, err)
	}
	return ts
}

func TestNewTimeScaleValidation(t *testing.T) {
	if _, err := NewTimeScale(0, 10); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := NewTimeScale(-100, 10); err == nil {
		t.Error("expected error for negative width")
	}
	if _, err := NewTimeScale(800, -1); err == nil {
		t.Error("expected error for negative bar count")
	}
}

func TestBarToXCentersBars(t *testing.T) {
	ts := newTestScale(t, 800, 100)
	ts.SetBarSpacing(10)
	ts.SetViewStart(0)

	if got := ts.BarToX(0); got != 5 {
		t.Errorf("BarToX(0) = %v, want 5", got)
	}
	if got := ts.BarToX(3); got != 35 {
		t.Errorf("BarToX(3) = %v, want 35", got)
	}
}

func TestBarToXRoundTrip(t *testing.T) {
	ts := newTestScale(t, 800, 100)
	ts.SetBarSpacing(10)
	ts.SetViewStart(5)

	start, end := ts.VisibleRange()
	for i := start; i < end; i++ {
		x := ts.BarToX(i)
		got, ok := ts.XToBar(x)
		if !ok {
			t.Fatalf("XToBar(BarToX(%d)) not ok at x=%v", i, x)
		}
		if got != i {
			t.Errorf("round trip bar %d: got %d", i, got)
		}
	}
}

func TestXToBarOutOfRange(t *testing.T) {
	ts := newTestScale(t, 800, 10)
	ts.SetBarSpacing(10)
	ts.SetViewStart(0)

	if _, ok := ts.XToBar(-1); ok {
		t.Error("expected not ok for x left of plot")
	}
	if _, ok := ts.XToBar(801); ok {
		t.Error("expected not ok for x right of plot")
	}
	// x=500 falls past the last of the 10 bars.
	if _, ok := ts.XToBar(500); ok {
		t.Error("expected not ok for x past the plotted bars")
	}
}

func TestBarSpacingClamp(t *testing.T) {
	ts := newTestScale(t, 800, 100)
	ts.SetBarSpacing(0.5)
	if got := ts.BarSpacing(); got != MinBarSpacing {
		t.Errorf("spacing = %v, want clamped to %v", got, MinBarSpacing)
	}
	ts.SetBarSpacing(5000)
	if got := ts.BarSpacing(); got != MaxBarSpacing {
		t.Errorf("spacing = %v, want clamped to %v", got, MaxBarSpacing)
	}
}

func TestVisibleBarsAtLeastOne(t *testing.T) {
	ts := newTestScale(t, 800, 100)
	ts.SetBarSpacing(10)
	if got := ts.VisibleBars(); got != 80 {
		t.Errorf("VisibleBars = %d, want 80", got)
	}
	ts.Resize(1)
	if got := ts.VisibleBars(); got != 1 {
		t.Errorf("VisibleBars = %d, want 1 for tiny width", got)
	}
}

func TestZoomKeepsAnchorFixed(t *testing.T) {
	ts := newTestScale(t, 800, 200)
	ts.SetBarSpacing(8)
	ts.SetViewStart(20)

	anchorX := 400.0
	anchorBar := ts.XToBarF(anchorX)
	ts.Zoom(1.5, anchorX)
	if got := ts.BarToXF(anchorBar); math.Abs(got-anchorX) > 1e-9 {
		t.Errorf("anchor moved: BarToXF(%v) = %v, want %v", anchorBar, got, anchorX)
	}
}

func TestZoomInverseRestoresView(t *testing.T) {
	ts := newTestScale(t, 800, 200)
	ts.SetBarSpacing(8)
	ts.SetViewStart(20)

	spacing, viewStart := ts.BarSpacing(), ts.ViewStart()
	ts.Zoom(2, 300)
	ts.Zoom(0.5, 300)
	if math.Abs(ts.BarSpacing()-spacing) > 1e-9 {
		t.Errorf("spacing after zoom round trip = %v, want %v", ts.BarSpacing(), spacing)
	}
	if math.Abs(ts.ViewStart()-viewStart) > 1e-9 {
		t.Errorf("viewStart after zoom round trip = %v, want %v", ts.ViewStart(), viewStart)
	}
}

func TestPanClampsToData(t *testing.T) {
	ts := newTestScale(t, 800, 50)
	ts.SetBarSpacing(10)
	ts.SetViewStart(0)

	ts.Pan(-10000)
	if lo := -float64(ts.VisibleBars()) + 1; ts.ViewStart() < lo {
		t.Errorf("viewStart = %v, want >= %v after panning far left", ts.ViewStart(), lo)
	}
	ts.Pan(10000)
	if hi := float64(ts.BarCount()) - 1; ts.ViewStart() > hi {
		t.Errorf("viewStart = %v, want <= %v after panning far right", ts.ViewStart(), hi)
	}
}

func TestFitAllShowsEveryBar(t *testing.T) {
	ts := newTestScale(t, 800, 60)
	ts.FitAll(2)
	start, end := ts.VisibleRange()
	if start != 0 || end != 60 {
		t.Errorf("visible range after FitAll = [%d, %d), want [0, 60)", start, end)
	}
	if x := ts.BarToX(0); x < 0 {
		t.Errorf("first bar at x=%v, want inside plot", x)
	}
	if x := ts.BarToX(59); x > 800 {
		t.Errorf("last bar at x=%v, want inside plot", x)
	}
}

func TestScrollToEndShowsLatestBars(t *testing.T) {
	ts := newTestScale(t, 800, 500)
	ts.SetBarSpacing(10)
	ts.ScrollToEnd()
	start, end := ts.VisibleRange()
	if end != 500 {
		t.Errorf("visible range ends at %d, want 500", end)
	}
	if want := 500 - ts.VisibleBars(); start != want {
		t.Errorf("visible range starts at %d, want %d", start, want)
	}

	ts.ScrollToStart()
	if ts.ViewStart() != 0 {
		t.Errorf("ViewStart after ScrollToStart = %v, want 0", ts.ViewStart())
	}
}

func TestScrollToEndShortSeries(t *testing.T) {
	ts := newTestScale(t, 800, 5)
	ts.SetBarSpacing(10)
	ts.ScrollToEnd()
	if ts.ViewStart() != 0 {
		t.Errorf("ViewStart = %v, want 0 when all bars already fit", ts.ViewStart())
	}
}

func TestFitAllDenseSeries(t *testing.T) {
	ts := newTestScale(t, 800, 1000)
	ts.FitAll(0)
	if ts.BarSpacing() >= MinBarSpacing {
		t.Errorf("spacing = %v, want below MinBarSpacing for 1000 bars in 800px", ts.BarSpacing())
	}
	start, end := ts.VisibleRange()
	if start != 0 || end != 1000 {
		t.Errorf("visible range = [%d, %d), want [0, 1000)", start, end)
	}
}

func TestTimeTicksWeighting(t *testing.T) {
	// Hourly bars across a day boundary: the midnight tick must survive.
	base := time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC).Unix()
	times := make([]int64, 48)
	for i := range times {
		times[i] = base + int64(i)*3600
	}
	ts := newTestScale(t, 960, len(times))
	ts.SetBarSpacing(20)
	ts.SetViewStart(0)

	ticks := ts.TimeTicks(times)
	if len(ticks) == 0 {
		t.Fatal("expected some ticks")
	}
	foundDay := false
	for _, tk := range ticks {
		if tk.Weight >= WeightDay {
			foundDay = true
		}
	}
	if !foundDay {
		t.Error("expected a day-boundary tick to survive selection")
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i].X-ticks[i-1].X < minTickGapPx {
			t.Errorf("ticks %d and %d closer than %v px", i-1, i, minTickGapPx)
		}
	}
}

func TestTimeTicksEmptyForNoData(t *testing.T) {
	ts := newTestScale(t, 800, 0)
	if ticks := ts.TimeTicks(nil); ticks != nil {
		t.Errorf("expected no ticks for empty data, got %d", len(ticks))
	}
}
