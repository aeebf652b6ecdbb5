package model

import "testing"

func TestLegendFormat(t *testing.T) {
	lg := DefaultLegend()
	bar := Bar{Open: 100, High: 105, Low: 98, Close: 103}

	got := lg.Format(bar, 100, true, 2)
	want := "O: 100.00  H: 105.00  L: 98.00  C: 103.00  +3.00 (+3.00%)"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}

	// Without a previous close the change parts are dropped.
	got = lg.Format(bar, 0, false, 2)
	want = "O: 100.00  H: 105.00  L: 98.00  C: 103.00"
	if got != want {
		t.Errorf("Format without prev = %q, want %q", got, want)
	}
}

func TestLegendFormatNegativeChange(t *testing.T) {
	lg := DefaultLegend()
	bar := Bar{Open: 100, High: 101, Low: 96, Close: 97}
	got := lg.Format(bar, 100, true, 2)
	want := "O: 100.00  H: 101.00  L: 96.00  C: 97.00  -3.00 (-3.00%)"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestLegendFormatParts(t *testing.T) {
	lg := DefaultLegend()
	lg.ShowOHLC = false
	lg.ShowPercent = false
	bar := Bar{Close: 103}
	if got := lg.Format(bar, 100, true, 2); got != "+3.00" {
		t.Errorf("change-only Format = %q, want %q", got, "+3.00")
	}
	lg.ShowChange = false
	if got := lg.Format(bar, 100, true, 2); got != "" {
		t.Errorf("empty legend Format = %q, want empty", got)
	}
}

func TestCompareSeriesPercent(t *testing.T) {
	bars := []Bar{
		{Time: 1000, Close: 50},
		{Time: 2000, Close: 55},
		{Time: 4000, Close: 45},
	}
	cs := NewCompareSeries("XYZ", bars, "#ff0000")
	if cs.BasePrice != 50 {
		t.Fatalf("BasePrice = %v, want 50", cs.BasePrice)
	}
	if got := cs.Percent(55); got != 10 {
		t.Errorf("Percent(55) = %v, want 10", got)
	}
	if got := cs.Percent(45); got != -10 {
		t.Errorf("Percent(45) = %v, want -10", got)
	}

	if close, ok := cs.CloseAt(2000); !ok || close != 55 {
		t.Errorf("CloseAt(2000) = %v, %v; want 55, true", close, ok)
	}
	// Timestamp 3000 is a gap in the compared symbol's data.
	if _, ok := cs.CloseAt(3000); ok {
		t.Error("CloseAt(3000) ok = true, want false for a gap")
	}

	cs.Rebase(4000)
	if cs.BasePrice != 45 {
		t.Errorf("BasePrice after Rebase = %v, want 45", cs.BasePrice)
	}
	cs.Rebase(3000)
	if cs.BasePrice != 45 {
		t.Errorf("Rebase on a gap moved the base to %v", cs.BasePrice)
	}
}

func TestCompareSeriesEmpty(t *testing.T) {
	cs := NewCompareSeries("XYZ", nil, "")
	if cs.BasePrice != 100 {
		t.Errorf("empty series BasePrice = %v, want 100", cs.BasePrice)
	}
	cs.BasePrice = 0
	if got := cs.Percent(55); got != 0 {
		t.Errorf("Percent with zero base = %v, want 0", got)
	}
}

func TestWatermarkTotalHeight(t *testing.T) {
	wm := NewWatermark("AAPL", "#333333", 40)
	if wm.Horz != HorzCenter || wm.Vert != VertCenter {
		t.Errorf("NewWatermark alignment = %v, %v; want centred", wm.Horz, wm.Vert)
	}
	wm.Lines = append(wm.Lines, WatermarkLine{Text: "Daily", Color: "#333333", FontSize: 20})
	if got, want := wm.TotalHeight(), 40*1.2+20*1.2; got != want {
		t.Errorf("TotalHeight = %v, want %v", got, want)
	}
}
