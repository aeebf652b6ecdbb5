package model

import (
	"math"
	"testing"
)

func TestBarDirection(t *testing.T) {
	up := Bar{Open: 100, Close: 102}
	down := Bar{Open: 100, Close: 98}
	flat := Bar{Open: 100, Close: 100}
	if !up.IsUp() || down.IsUp() || !flat.IsUp() {
		t.Errorf("IsUp: up=%v down=%v flat=%v", up.IsUp(), down.IsUp(), flat.IsUp())
	}
	if up.Body() != 2 || down.Body() != 2 {
		t.Errorf("Body: up=%v down=%v, want 2", up.Body(), down.Body())
	}
}

func TestPriceRange(t *testing.T) {
	bars := []Bar{
		{Low: 99, High: 103},
		{Low: 95, High: 101},
		{Low: 100, High: 110},
	}
	lo, hi, ok := PriceRange(bars)
	if !ok || lo != 95 || hi != 110 {
		t.Errorf("PriceRange = %v, %v, %v; want 95, 110, true", lo, hi, ok)
	}
	if _, _, ok := PriceRange(nil); ok {
		t.Error("empty slice should report ok=false")
	}
}

func TestHeikinAshi(t *testing.T) {
	bars := []Bar{
		{Open: 100, High: 105, Low: 99, Close: 104},
		{Open: 104, High: 108, Low: 103, Close: 107},
	}
	ha := HeikinAshi(bars)
	if len(ha) != 2 {
		t.Fatalf("len = %d, want 2", len(ha))
	}

	wantClose0 := (100.0 + 105 + 99 + 104) / 4
	if ha[0].Close != wantClose0 {
		t.Errorf("first close = %v, want %v", ha[0].Close, wantClose0)
	}
	if ha[0].Open != 102 {
		t.Errorf("first open = %v, want 102", ha[0].Open)
	}
	wantOpen1 := (ha[0].Open + ha[0].Close) / 2
	if ha[1].Open != wantOpen1 {
		t.Errorf("second open = %v, want %v", ha[1].Open, wantOpen1)
	}
	for i, b := range ha {
		if b.High < math.Max(b.Open, b.Close) || b.Low > math.Min(b.Open, b.Close) {
			t.Errorf("bar %d: high/low do not contain the body: %+v", i, b)
		}
	}
	if HeikinAshi(nil) != nil {
		t.Error("empty input should return nil")
	}
}

func TestParseSeriesType(t *testing.T) {
	cases := []struct {
		in   string
		want SeriesType
		ok   bool
	}{
		{"candlestick", Candlestick, true},
		{"  Heikin_Ashi ", HeikinAshiCandles, true},
		{"ohlc", BarSeries, true},
		{"hlc", HlcArea, true},
		{"bogus", Candlestick, false},
	}
	for _, c := range cases {
		got, ok := ParseSeriesType(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseSeriesType(%q) = %v, %v; want %v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
	for st := Candlestick; st <= HlcArea; st++ {
		got, ok := ParseSeriesType(st.String())
		if !ok || got != st {
			t.Errorf("round trip failed for %v", st)
		}
	}
}
