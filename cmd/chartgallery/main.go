// Command chartgallery renders a set of demonstration charts from synthetic
// price data and writes them, with an HTML index, to an output directory.
package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/zengeld/zengeld-canvas/chart"
	"github.com/zengeld/zengeld-canvas/coords"
	"github.com/zengeld/zengeld-canvas/internal/config"
	"github.com/zengeld/zengeld-canvas/internal/gallery"
	"github.com/zengeld/zengeld-canvas/internal/logger"
	"github.com/zengeld/zengeld-canvas/model"
	"github.com/zengeld/zengeld-canvas/primitives"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.Global().WithComponent("chartgallery")
	log.Infof("generating gallery in %s (%d bars, theme %s)", cfg.OutputDir, cfg.Bars, cfg.Theme)

	if err := run(cfg); err != nil {
		log.Error("gallery generation failed", err)
		os.Exit(1)
	}
	log.Info("gallery complete")
}

func run(cfg *config.Config) error {
	bars := randomWalk(cfg.Bars, cfg.Seed)
	theme := chart.ThemeByName(cfg.Theme)

	b, err := gallery.NewBuilder(cfg.OutputDir)
	if err != nil {
		return err
	}

	doc, err := candleChart(cfg, theme, bars)
	if err != nil {
		return fmt.Errorf("failed to render candle chart: %w", err)
	}
	if err := b.WriteChart("candles", "Candlesticks with overlays",
		"Candlestick series with a moving average, volume, trade signals, and a retracement drawing.", doc); err != nil {
		return err
	}

	doc, err = seriesGrid(cfg, theme, bars)
	if err != nil {
		return fmt.Errorf("failed to render series grid: %w", err)
	}
	if err := b.WriteChart("series", "Series types",
		"Every built-in series painter over the same data.", doc); err != nil {
		return err
	}

	doc, err = oscillatorChart(cfg, theme, bars)
	if err != nil {
		return fmt.Errorf("failed to render oscillator chart: %w", err)
	}
	if err := b.WriteChart("oscillators", "Sub-pane indicators",
		"An RSI pane and a MACD histogram pane below the price pane.", doc); err != nil {
		return err
	}

	doc, err = drawingChart(cfg, theme, bars)
	if err != nil {
		return fmt.Errorf("failed to render drawing chart: %w", err)
	}
	if err := b.WriteChart("drawings", "Drawing primitives",
		"Trend lines, channels, pitchforks, and annotations on a log-scaled chart.", doc); err != nil {
		return err
	}

	return b.WriteIndex("Chart Gallery")
}

// randomWalk produces a deterministic synthetic OHLCV series.
func randomWalk(n int, seed int64) []model.Bar {
	rng := rand.New(rand.NewSource(seed))
	bars := make([]model.Bar, n)
	price := 100.0
	t0 := int64(1704067200) // 2024-01-01 00:00 UTC
	for i := range bars {
		drift := rng.NormFloat64() * 1.2
		open := price
		close := open + drift
		high := math.Max(open, close) + rng.Float64()*0.8
		low := math.Min(open, close) - rng.Float64()*0.8
		bars[i] = model.Bar{
			Time:   t0 + int64(i)*3600,
			Open:   open,
			High:   high,
			Low:    low,
			Close:  close,
			Volume: 900 + rng.Float64()*600,
		}
		price = close
	}
	return bars
}

func sma(bars []model.Bar, period int) []float64 {
	out := make([]float64, len(bars))
	sum := 0.0
	for i, b := range bars {
		sum += b.Close
		if i >= period {
			sum -= bars[i-period].Close
		}
		if i < period-1 {
			out[i] = math.NaN()
		} else {
			out[i] = sum / float64(period)
		}
	}
	return out
}

func volumes(bars []model.Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Volume
	}
	return out
}

func candleChart(cfg *config.Config, theme chart.Theme, bars []model.Bar) (string, error) {
	n := len(bars)
	lowIdx, highIdx := 0, 0
	for i, b := range bars {
		if b.Low < bars[lowIdx].Low {
			lowIdx = i
		}
		if b.High > bars[highIdx].High {
			highIdx = i
		}
	}

	fib := primitives.Default().Create("fib_retracement", []primitives.Point{
		{Bar: float64(lowIdx), Price: bars[lowIdx].Low},
		{Bar: float64(highIdx), Price: bars[highIdx].High},
	}, "")

	return chart.New(cfg.Width, cfg.Height).
		Theme(theme).
		Title("Synthetic 1h").
		Bars(bars).
		Overlay(model.Indicator{
			Name:    "SMA 20",
			Vectors: []model.Vector{{Values: sma(bars, 20), Color: theme.Accent, Width: 1.5}},
		}).
		OverlayBottom(model.Indicator{
			Name: "Volume",
			Vectors: []model.Vector{{
				Values: volumes(bars),
				Color:  theme.Border,
				Style:  model.StyleHistogram,
			}},
		}).
		AddPrimitive(fib).
		AddSignal(model.Signal{BarIndex: lowIdx, Price: bars[lowIdx].Low, Type: model.SignalBuy, Label: "long"}).
		AddSignal(model.Signal{BarIndex: highIdx, Price: bars[highIdx].High, Type: model.SignalSell, Label: "exit"}).
		AddSignal(model.Signal{BarIndex: n - 1, Price: bars[n-1].Close, Type: model.SignalCustom}).
		Render()
}

func seriesGrid(cfg *config.Config, theme chart.Theme, bars []model.Bar) (string, error) {
	types := []model.SeriesType{
		model.Candlestick, model.HollowCandlestick, model.HeikinAshiCandles,
		model.BarSeries, model.LineSeries, model.StepLine, model.LineWithMarkers,
		model.AreaSeries, model.Baseline, model.Histogram, model.Columns,
		model.HlcArea,
	}
	grid, err := chart.NewMultiChart(3, 4, cfg.Width/3, cfg.Height/2)
	if err != nil {
		return "", err
	}
	grid.SetBackground(theme.Background)
	for _, st := range types {
		cell := chart.New(0, 0).
			Theme(theme).
			Bars(bars).
			SeriesType(st).
			Title(st.String())
		if err := grid.Add(cell); err != nil {
			return "", err
		}
	}
	return grid.Render()
}

func oscillatorChart(cfg *config.Config, theme chart.Theme, bars []model.Bar) (string, error) {
	fast := sma(bars, 12)
	slow := sma(bars, 26)
	macd := make([]float64, len(bars))
	for i := range macd {
		macd[i] = fast[i] - slow[i]
	}
	rsi := make([]float64, len(bars))
	for i := range rsi {
		if i < 14 {
			rsi[i] = math.NaN()
			continue
		}
		gains, losses := 0.0, 0.0
		for j := i - 13; j <= i; j++ {
			d := bars[j].Close - bars[j].Open
			if d > 0 {
				gains += d
			} else {
				losses -= d
			}
		}
		if losses == 0 {
			rsi[i] = 100
		} else {
			rsi[i] = 100 - 100/(1+gains/losses)
		}
	}

	return chart.New(cfg.Width, cfg.Height).
		Theme(theme).
		Title("Oscillators").
		Bars(bars).
		SubPane(model.Indicator{
			Name:        "RSI 14",
			Vectors:     []model.Vector{{Values: rsi, Color: "#9c27b0", Width: 1.5}},
			Levels:      []model.Level{{Value: 30, Label: "30"}, {Value: 70, Label: "70"}},
			Range:       model.RangeFixed,
			Min:         0,
			Max:         100,
			HeightRatio: 0.18,
		}).
		SubPane(model.Indicator{
			Name:        "MACD",
			Vectors:     []model.Vector{{Values: macd, Color: theme.Accent, Style: model.StyleHistogram}},
			Levels:      []model.Level{{Value: 0}},
			Range:       model.RangeSymmetric,
			HeightRatio: 0.18,
		}).
		Render()
}

func drawingChart(cfg *config.Config, theme chart.Theme, bars []model.Bar) (string, error) {
	n := float64(len(bars))
	reg := primitives.Default()

	trend := reg.Create("trend_line", []primitives.Point{
		{Bar: n * 0.1, Price: bars[int(n*0.1)].Low},
		{Bar: n * 0.6, Price: bars[int(n*0.6)].High},
	}, theme.Accent)
	channel := reg.Create("parallel_channel", []primitives.Point{
		{Bar: n * 0.3, Price: bars[int(n*0.3)].Low},
		{Bar: n * 0.9, Price: bars[int(n*0.9)].Low},
		{Bar: n * 0.3, Price: bars[int(n*0.3)].High + 2},
	}, "#26a69a")
	fork := reg.Create("pitchfork", []primitives.Point{
		{Bar: n * 0.2, Price: bars[int(n*0.2)].High},
		{Bar: n * 0.4, Price: bars[int(n*0.4)].Low},
		{Bar: n * 0.6, Price: bars[int(n*0.6)].High},
	}, "#ff9800")
	note := reg.Create("callout", []primitives.Point{
		{Bar: n * 0.7, Price: bars[int(n*0.7)].High},
		{Bar: n * 0.8, Price: bars[int(n*0.8)].High + 4},
	}, "")
	note.Data().Text = "breakout"

	return chart.New(cfg.Width, cfg.Height).
		Theme(theme).
		Title("Drawings").
		ScaleMode(coords.ModeLogarithmic).
		Bars(bars).
		AddPrimitive(trend).
		AddPrimitive(channel).
		AddPrimitive(fork).
		AddPrimitive(note).
		Render()
}
