package chart

import (
	"math"
	"strings"
	"testing"

	"github.com/zengeld/zengeld-canvas/coords"
	"github.com/zengeld/zengeld-canvas/model"
	"github.com/zengeld/zengeld-canvas/primitives"
)

func sampleBars(n int) []model.Bar {
	bars := make([]model.Bar, n)
	price := 100.0
	t0 := int64(1700000000)
	for i := range bars {
		open := price
		close := open + float64(i%5-2)
		bars[i] = model.Bar{
			Time:   t0 + int64(i)*3600,
			Open:   open,
			High:   math.Max(open, close) + 1,
			Low:    math.Min(open, close) - 1,
			Close:  close,
			Volume: 1000 + float64(i)*10,
		}
		price = close
	}
	return bars
}

func TestRenderEmptyBars(t *testing.T) {
	r, err := NewRenderer(DefaultConfig(400, 300), nil)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	doc, err := r.RenderSVG()
	if err != nil {
		t.Fatalf("RenderSVG failed: %v", err)
	}
	if !strings.Contains(doc, "No data") {
		t.Errorf("empty chart should show a placeholder, got: %s", doc)
	}
	if !strings.HasPrefix(doc, "<?xml") || !strings.Contains(doc, "</svg>") {
		t.Errorf("placeholder should still be a complete document")
	}
}

func TestRendererRejectsInvalidSize(t *testing.T) {
	cfg := DefaultConfig(0, 300)
	if _, err := NewRenderer(cfg, sampleBars(10)); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestRenderCandlestickScene(t *testing.T) {
	r, err := NewRenderer(DefaultConfig(800, 500), sampleBars(60))
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	doc, err := r.RenderSVG()
	if err != nil {
		t.Fatalf("RenderSVG failed: %v", err)
	}
	if !strings.Contains(doc, DarkTheme().Background) {
		t.Error("background color missing from document")
	}
	if !strings.Contains(doc, "<rect") {
		t.Error("candle bodies should emit rects")
	}
	if !strings.Contains(doc, "<path") {
		t.Error("wicks and grid should emit paths")
	}
	if !strings.Contains(doc, "<text") {
		t.Error("axis labels should emit text elements")
	}
}

func TestRenderDeterministic(t *testing.T) {
	bars := sampleBars(40)
	render := func() string {
		r, err := NewRenderer(DefaultConfig(640, 400), bars)
		if err != nil {
			t.Fatalf("NewRenderer failed: %v", err)
		}
		r.AddSignal(model.Signal{BarIndex: 10, Price: bars[10].Low, Type: model.SignalBuy})
		doc, err := r.RenderSVG()
		if err != nil {
			t.Fatalf("RenderSVG failed: %v", err)
		}
		return doc
	}
	if render() != render() {
		t.Error("identical inputs must produce identical output")
	}
}

func TestRenderAllSeriesTypes(t *testing.T) {
	bars := sampleBars(30)
	types := []model.SeriesType{
		model.Candlestick, model.HollowCandlestick, model.HeikinAshiCandles,
		model.BarSeries, model.LineSeries, model.StepLine, model.LineWithMarkers,
		model.AreaSeries, model.Baseline, model.Histogram, model.Columns,
		model.HlcArea,
	}
	for _, st := range types {
		cfg := DefaultConfig(400, 300)
		cfg.Series.Type = st
		r, err := NewRenderer(cfg, bars)
		if err != nil {
			t.Fatalf("%v: NewRenderer failed: %v", st, err)
		}
		doc, err := r.RenderSVG()
		if err != nil {
			t.Fatalf("%v: RenderSVG failed: %v", st, err)
		}
		if !strings.Contains(doc, "</svg>") {
			t.Errorf("%v: incomplete document", st)
		}
	}
}

func TestRenderSubPaneAndOverlay(t *testing.T) {
	bars := sampleBars(50)
	sma := make([]float64, len(bars))
	rsi := make([]float64, len(bars))
	for i := range bars {
		if i < 5 {
			sma[i] = math.NaN()
			rsi[i] = math.NaN()
			continue
		}
		sum := 0.0
		for j := i - 4; j <= i; j++ {
			sum += bars[j].Close
		}
		sma[i] = sum / 5
		rsi[i] = 50 + 20*math.Sin(float64(i)/5)
	}

	r, err := NewRenderer(DefaultConfig(800, 600), bars)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	r.AddIndicator(model.Indicator{
		Name:      "SMA 5",
		Vectors:   []model.Vector{{Name: "sma", Values: sma, Color: "#ff9800"}},
		Placement: model.Overlay,
	})
	r.AddIndicator(model.Indicator{
		Name:      "RSI 14",
		Vectors:   []model.Vector{{Name: "rsi", Values: rsi, Color: "#9c27b0"}},
		Levels:    []model.Level{{Value: 30, Label: "30"}, {Value: 70, Label: "70"}},
		Placement: model.SubPane,
		Range:     model.RangeFixed,
		Min:       0,
		Max:       100,
	})
	doc, err := r.RenderSVG()
	if err != nil {
		t.Fatalf("RenderSVG failed: %v", err)
	}
	if !strings.Contains(doc, "RSI 14") {
		t.Error("sub-pane name missing")
	}
	if !strings.Contains(doc, "#ff9800") {
		t.Error("overlay vector color missing")
	}
	if !strings.Contains(doc, ">70<") {
		t.Error("level label missing")
	}
}

func TestPriceRangeModeUsesPriceScale(t *testing.T) {
	vp, err := coords.NewViewport(400, 300, 30)
	if err != nil {
		t.Fatalf("NewViewport failed: %v", err)
	}
	if err := vp.SetPriceRange(90, 120); err != nil {
		t.Fatalf("SetPriceRange failed: %v", err)
	}
	ind := model.Indicator{
		Vectors: []model.Vector{{Values: []float64{100, 105, 110, 95}}},
		Range:   model.RangePrice,
	}
	lo, hi, ok := indicatorBounds(ind, 0, 4, vp)
	if !ok || lo != 90 || hi != 120 {
		t.Errorf("indicatorBounds = %v, %v, %v; want 90, 120, true", lo, hi, ok)
	}
}

func TestRenderPriceRangeSubPane(t *testing.T) {
	bars := sampleBars(40)
	vwap := make([]float64, len(bars))
	for i, b := range bars {
		vwap[i] = (b.High + b.Low + b.Close) / 3
	}
	r, err := NewRenderer(DefaultConfig(600, 500), bars)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	r.AddIndicator(model.Indicator{
		Name:      "Typical Price",
		Vectors:   []model.Vector{{Values: vwap, Color: "#ffcc00"}},
		Placement: model.SubPane,
		Range:     model.RangePrice,
	})
	doc, err := r.RenderSVG()
	if err != nil {
		t.Fatalf("RenderSVG failed: %v", err)
	}
	if !strings.Contains(doc, "#ffcc00") {
		t.Error("price-ranged sub-pane vector should be drawn")
	}
}

func TestRenderPrimitiveZOrder(t *testing.T) {
	bars := sampleBars(30)
	r, err := NewRenderer(DefaultConfig(500, 400), bars)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	reg := primitives.Default()

	top := reg.Create("trend_line", []primitives.Point{{Bar: 2, Price: 98}, {Bar: 20, Price: 104}}, "#aaaa11")
	top.Data().ZOrder = 5
	bottom := reg.Create("trend_line", []primitives.Point{{Bar: 2, Price: 104}, {Bar: 20, Price: 98}}, "#bbbb22")
	bottom.Data().ZOrder = 1
	r.AddPrimitive(top)
	r.AddPrimitive(bottom)

	doc, err := r.RenderSVG()
	if err != nil {
		t.Fatalf("RenderSVG failed: %v", err)
	}
	iTop := strings.Index(doc, "#aaaa11")
	iBottom := strings.Index(doc, "#bbbb22")
	if iTop < 0 || iBottom < 0 {
		t.Fatalf("both primitives should be drawn (top=%d bottom=%d)", iTop, iBottom)
	}
	if iBottom > iTop {
		t.Error("lower z-order must be drawn first")
	}
}

func TestRenderInvisiblePrimitiveSkipped(t *testing.T) {
	r, err := NewRenderer(DefaultConfig(500, 400), sampleBars(30))
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	p := primitives.Default().Create("horizontal_line", []primitives.Point{{Bar: 5, Price: 100}}, "#cccc33")
	p.Data().Visible = false
	r.AddPrimitive(p)
	doc, err := r.RenderSVG()
	if err != nil {
		t.Fatalf("RenderSVG failed: %v", err)
	}
	if strings.Contains(doc, "#cccc33") {
		t.Error("invisible primitive must not be drawn")
	}
}

func TestRenderSignals(t *testing.T) {
	bars := sampleBars(30)
	r, err := NewRenderer(DefaultConfig(500, 400), bars)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	r.AddSignal(model.Signal{BarIndex: 5, Price: bars[5].Low, Type: model.SignalBuy, Label: "long"})
	r.AddSignal(model.Signal{BarIndex: 15, Price: bars[15].High, Type: model.SignalSell})
	r.AddSignal(model.Signal{BarIndex: 99, Price: 100, Type: model.SignalBuy})
	doc, err := r.RenderSVG()
	if err != nil {
		t.Fatalf("RenderSVG failed: %v", err)
	}
	if !strings.Contains(doc, model.SignalBuy.DefaultColor()) {
		t.Error("buy marker color missing")
	}
	if !strings.Contains(doc, ">long<") {
		t.Error("signal label missing")
	}
}
