package chart

import (
	"math"

	"github.com/zengeld/zengeld-canvas/coords"
	"github.com/zengeld/zengeld-canvas/model"
	"github.com/zengeld/zengeld-canvas/render"
)

// paintSeries draws the main price series over the visible window
// [start,end) using the painter selected by the series type.
func paintSeries(svg *render.SVG, cfg Config, bars []model.Bar, start, end int, vp *coords.Viewport, paneH float64) {
	st := cfg.Series
	spacing := vp.TimeScale().BarSpacing()

	switch st.Type {
	case model.Candlestick, model.HeikinAshiCandles:
		paintCandles(svg, st, bars, start, end, vp, spacing, false)
	case model.HollowCandlestick:
		paintCandles(svg, st, bars, start, end, vp, spacing, true)
	case model.BarSeries:
		paintOHLCBars(svg, st, bars, start, end, vp, spacing)
	case model.LineSeries:
		paintCloseLine(svg, st, bars, start, end, vp, false)
	case model.StepLine:
		paintStepLine(svg, st, bars, start, end, vp)
	case model.LineWithMarkers:
		paintCloseLine(svg, st, bars, start, end, vp, true)
	case model.AreaSeries:
		paintArea(svg, st, bars, start, end, vp, paneH)
	case model.Baseline:
		paintBaseline(svg, st, bars, start, end, vp, paneH)
	case model.Histogram:
		paintHistogram(svg, st, bars, start, end, vp, paneH, 0.7)
	case model.Columns:
		paintHistogram(svg, st, bars, start, end, vp, paneH, 0.85)
	case model.HlcArea:
		paintHlcArea(svg, st, bars, start, end, vp)
	default:
		paintCandles(svg, st, bars, start, end, vp, spacing, false)
	}
}

// bodyWidth derives the candle body width from the bar spacing, leaving a
// gap between neighbours. Never thinner than one pixel.
func bodyWidth(spacing float64) float64 {
	w := spacing * 0.7
	if w < 1 {
		w = 1
	}
	return w
}

func paintCandles(svg *render.SVG, st SeriesStyle, bars []model.Bar, start, end int, vp *coords.Viewport, spacing float64, hollow bool) {
	halfW := bodyWidth(spacing) / 2
	svg.SetLineDash(nil)
	svg.SetStrokeWidth(1)
	for i := start; i < end; i++ {
		b := bars[i]
		x := vp.BarToX(float64(i))
		color := st.DownColor
		if b.IsUp() {
			color = st.UpColor
		}
		svg.SetStrokeColor(color)
		svg.SetFillColor(color)

		// Wick.
		svg.BeginPath()
		svg.MoveTo(x, vp.PriceToY(b.High))
		svg.LineTo(x, vp.PriceToY(b.Low))
		svg.Stroke()

		top := vp.PriceToY(math.Max(b.Open, b.Close))
		bot := vp.PriceToY(math.Min(b.Open, b.Close))
		h := bot - top
		if h < 1 {
			h = 1
		}
		if hollow && b.IsUp() {
			svg.StrokeRect(x-halfW, top, halfW*2, h)
		} else {
			svg.FillRect(x-halfW, top, halfW*2, h)
		}
	}
}

func paintOHLCBars(svg *render.SVG, st SeriesStyle, bars []model.Bar, start, end int, vp *coords.Viewport, spacing float64) {
	tick := spacing * 0.35
	if tick < 1 {
		tick = 1
	}
	svg.SetLineDash(nil)
	svg.SetStrokeWidth(1)
	for i := start; i < end; i++ {
		b := bars[i]
		x := vp.BarToX(float64(i))
		color := st.DownColor
		if b.IsUp() {
			color = st.UpColor
		}
		svg.SetStrokeColor(color)
		svg.BeginPath()
		svg.MoveTo(x, vp.PriceToY(b.High))
		svg.LineTo(x, vp.PriceToY(b.Low))
		svg.MoveTo(x-tick, vp.PriceToY(b.Open))
		svg.LineTo(x, vp.PriceToY(b.Open))
		svg.MoveTo(x, vp.PriceToY(b.Close))
		svg.LineTo(x+tick, vp.PriceToY(b.Close))
		svg.Stroke()
	}
}

// closePathTo traces closes over [start,end) without stroking, so callers
// can extend the path into a fill region.
func closePathTo(svg *render.SVG, bars []model.Bar, start, end int, vp *coords.Viewport) {
	for i := start; i < end; i++ {
		x := vp.BarToX(float64(i))
		y := vp.PriceToY(bars[i].Close)
		if i == start {
			svg.MoveTo(x, y)
		} else {
			svg.LineTo(x, y)
		}
	}
}

func paintCloseLine(svg *render.SVG, st SeriesStyle, bars []model.Bar, start, end int, vp *coords.Viewport, markers bool) {
	svg.SetStrokeColor(st.LineColor)
	svg.SetStrokeWidth(st.LineWidth)
	svg.SetLineDash(nil)
	svg.SetLineJoin(render.JoinRound)
	svg.BeginPath()
	closePathTo(svg, bars, start, end, vp)
	svg.Stroke()
	if markers {
		svg.SetFillColor(st.LineColor)
		for i := start; i < end; i++ {
			svg.BeginPath()
			svg.Arc(vp.BarToX(float64(i)), vp.PriceToY(bars[i].Close), st.LineWidth+1.5, 0, 2*math.Pi)
			svg.Fill()
		}
	}
}

func paintStepLine(svg *render.SVG, st SeriesStyle, bars []model.Bar, start, end int, vp *coords.Viewport) {
	svg.SetStrokeColor(st.LineColor)
	svg.SetStrokeWidth(st.LineWidth)
	svg.SetLineDash(nil)
	svg.BeginPath()
	for i := start; i < end; i++ {
		x := vp.BarToX(float64(i))
		y := vp.PriceToY(bars[i].Close)
		if i == start {
			svg.MoveTo(x, y)
			continue
		}
		prevY := vp.PriceToY(bars[i-1].Close)
		svg.LineTo(x, prevY)
		svg.LineTo(x, y)
	}
	svg.Stroke()
}

func paintArea(svg *render.SVG, st SeriesStyle, bars []model.Bar, start, end int, vp *coords.Viewport, paneH float64) {
	if end-start < 2 {
		paintCloseLine(svg, st, bars, start, end, vp, false)
		return
	}
	svg.SetFillColor(st.LineColor)
	svg.SetGlobalAlpha(0.2)
	svg.BeginPath()
	closePathTo(svg, bars, start, end, vp)
	svg.LineTo(vp.BarToX(float64(end-1)), paneH)
	svg.LineTo(vp.BarToX(float64(start)), paneH)
	svg.ClosePath()
	svg.Fill()
	svg.SetGlobalAlpha(1)
	paintCloseLine(svg, st, bars, start, end, vp, false)
}

func paintBaseline(svg *render.SVG, st SeriesStyle, bars []model.Bar, start, end int, vp *coords.Viewport, paneH float64) {
	base := st.Baseline
	if base == 0 {
		ps := vp.PriceScale()
		base = (ps.Min() + ps.Max()) / 2
	}
	baseY := vp.PriceToY(base)
	width := vp.Width()

	// Fill and stroke the above-baseline half, then the below half, each
	// clipped to its side of the reference line.
	halves := []struct {
		color string
		y, h  float64
	}{
		{st.UpColor, 0, baseY},
		{st.DownColor, baseY, paneH - baseY},
	}
	for _, half := range halves {
		if half.h <= 0 {
			continue
		}
		svg.Save()
		svg.ClipRect(0, half.y, width, half.h)
		svg.SetFillColor(half.color)
		svg.SetGlobalAlpha(0.15)
		svg.BeginPath()
		closePathTo(svg, bars, start, end, vp)
		svg.LineTo(vp.BarToX(float64(end-1)), baseY)
		svg.LineTo(vp.BarToX(float64(start)), baseY)
		svg.ClosePath()
		svg.Fill()
		svg.SetGlobalAlpha(1)
		svg.SetStrokeColor(half.color)
		svg.SetStrokeWidth(st.LineWidth)
		svg.SetLineDash(nil)
		svg.BeginPath()
		closePathTo(svg, bars, start, end, vp)
		svg.Stroke()
		svg.Restore()
	}

	svg.SetStrokeColor(st.LineColor)
	svg.SetStrokeWidth(1)
	svg.SetLineDash(render.Dashed.DashPattern())
	svg.BeginPath()
	svg.MoveTo(0, baseY)
	svg.LineTo(width, baseY)
	svg.Stroke()
	svg.SetLineDash(nil)
}

func paintHistogram(svg *render.SVG, st SeriesStyle, bars []model.Bar, start, end int, vp *coords.Viewport, paneH, widthRatio float64) {
	spacing := vp.TimeScale().BarSpacing()
	w := spacing * widthRatio
	if w < 1 {
		w = 1
	}
	for i := start; i < end; i++ {
		b := bars[i]
		x := vp.BarToX(float64(i))
		y := vp.PriceToY(b.Close)
		color := st.DownColor
		if b.IsUp() {
			color = st.UpColor
		}
		svg.SetFillColor(color)
		h := paneH - y
		if h < 0 {
			h = 0
		}
		svg.FillRect(x-w/2, y, w, h)
	}
}

// paintHlcArea fills the band between highs and lows and strokes the close
// line on top.
func paintHlcArea(svg *render.SVG, st SeriesStyle, bars []model.Bar, start, end int, vp *coords.Viewport) {
	if end-start < 2 {
		paintCloseLine(svg, st, bars, start, end, vp, false)
		return
	}
	svg.SetFillColor(st.LineColor)
	svg.SetGlobalAlpha(0.18)
	svg.BeginPath()
	for i := start; i < end; i++ {
		x := vp.BarToX(float64(i))
		y := vp.PriceToY(bars[i].High)
		if i == start {
			svg.MoveTo(x, y)
		} else {
			svg.LineTo(x, y)
		}
	}
	for i := end - 1; i >= start; i-- {
		svg.LineTo(vp.BarToX(float64(i)), vp.PriceToY(bars[i].Low))
	}
	svg.ClosePath()
	svg.Fill()
	svg.SetGlobalAlpha(1)
	paintCloseLine(svg, st, bars, start, end, vp, false)
}
