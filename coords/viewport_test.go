package coords

import (
	"math"
	"testing"
)

func newTestViewport(t *testing.T) *Viewport {
	t.Helper()
	v, err := NewViewport(800, 400, 100)
	if err != nil {
		t.Fatalf("NewViewport failed: %v", err)
	}
	return v
}

func TestNewViewportValidation(t *testing.T) {
	if _, err := NewViewport(0, 400, 10); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := NewViewport(800, -1, 10); err == nil {
		t.Error("expected error for negative height")
	}
}

func TestViewportDelegation(t *testing.T) {
	v := newTestViewport(t)
	if err := v.SetPriceRange(100, 200); err != nil {
		t.Fatalf("SetPriceRange failed: %v", err)
	}
	v.TimeScale().SetBarSpacing(8)
	v.TimeScale().SetViewStart(0)

	if got := v.PriceToY(200); got != 0 {
		t.Errorf("PriceToY(200) = %v, want 0", got)
	}
	if got := v.BarToX(0); got != 4 {
		t.Errorf("BarToX(0) = %v, want 4", got)
	}
	if got := v.YToPrice(v.PriceToY(137)); math.Abs(got-137) > 1e-9 {
		t.Errorf("YToPrice round trip = %v, want 137", got)
	}
	if _, ok := v.XToBar(-5); ok {
		t.Error("expected not ok outside plot")
	}
}

func TestViewportScroll(t *testing.T) {
	v := newTestViewport(t)
	v.TimeScale().SetBarSpacing(10)
	v.ScrollToEnd()
	if _, end := v.VisibleRange(); end != 100 {
		t.Errorf("visible range ends at %d after ScrollToEnd, want 100", end)
	}
	v.ScrollToStart()
	if start, _ := v.VisibleRange(); start != 0 {
		t.Errorf("visible range starts at %d after ScrollToStart, want 0", start)
	}
}

func TestViewportResizePreservesWindow(t *testing.T) {
	v := newTestViewport(t)
	v.TimeScale().SetBarSpacing(8)
	v.TimeScale().SetViewStart(10)
	start, end := v.VisibleRange()

	v.Resize(1600, 500)
	gotStart, gotEnd := v.VisibleRange()
	if gotStart != start || gotEnd != end {
		t.Errorf("visible range after resize = [%d, %d), want [%d, %d)", gotStart, gotEnd, start, end)
	}
	if v.Height() != 500 {
		t.Errorf("height = %v, want 500", v.Height())
	}
	if v.PriceScale().Height() != 500 {
		t.Errorf("price scale height = %v, want 500", v.PriceScale().Height())
	}
}

func TestViewportSetPriceRangeInvalid(t *testing.T) {
	v := newTestViewport(t)
	if err := v.SetPriceRange(10, 10); err == nil {
		t.Error("expected error for empty price range")
	}
}
