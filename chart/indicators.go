package chart

import (
	"math"

	"github.com/zengeld/zengeld-canvas/coords"
	"github.com/zengeld/zengeld-canvas/model"
	"github.com/zengeld/zengeld-canvas/render"
)

const indicatorFallbackColor = "#2196f3"

// paintOverlay draws an indicator directly in price coordinates on the main
// pane. RSI-style fixed ranges make no sense here, so values map through the
// price scale as-is.
func paintOverlay(svg *render.SVG, ind model.Indicator, start, end int, vp *coords.Viewport) {
	for _, v := range ind.Vectors {
		paintVector(svg, v, start, end,
			func(i int) float64 { return vp.BarToX(float64(i)) },
			vp.PriceToY,
			vp.Height(),
			vp.TimeScale().BarSpacing())
	}
	for _, lv := range ind.Levels {
		paintLevel(svg, lv, 0, vp.Width(), vp.PriceToY(lv.Value))
	}
}

// paintOverlayBottom pins an indicator to the lower quarter of the price
// pane, the way volume histograms sit under candles.
func paintOverlayBottom(svg *render.SVG, ind model.Indicator, start, end int, vp *coords.Viewport, paneH float64) {
	lo, hi, ok := indicatorBounds(ind, start, end, vp)
	if !ok {
		return
	}
	top := paneH * 0.75
	m := valueMapper{lo: lo, hi: hi, top: top, h: paneH - top}
	for _, v := range ind.Vectors {
		paintVector(svg, v, start, end,
			func(i int) float64 { return vp.BarToX(float64(i)) },
			m.y,
			paneH,
			vp.TimeScale().BarSpacing())
	}
}

// paintSubPane draws an indicator in its own horizontal band below the price
// pane, with a top border, its name, and its reference levels.
func paintSubPane(svg *render.SVG, cfg Config, ind model.Indicator, start, end int, vp *coords.Viewport, top, height, width float64) {
	lo, hi, ok := indicatorBounds(ind, start, end, vp)
	if !ok {
		lo, hi = 0, 1
	}
	const pad = 4.0
	m := valueMapper{lo: lo, hi: hi, top: top + pad, h: height - 2*pad}

	dpr := svg.DPR()
	svg.SetStrokeColor(cfg.Theme.Border)
	svg.SetStrokeWidth(1)
	svg.SetLineDash(nil)
	by := render.Crisp(top, dpr)
	svg.BeginPath()
	svg.MoveTo(0, by)
	svg.LineTo(cfg.Width, by)
	svg.Stroke()

	svg.Save()
	svg.ClipRect(0, top, width, height)
	for _, lv := range ind.Levels {
		paintLevel(svg, lv, 0, width, m.y(lv.Value))
	}
	for _, v := range ind.Vectors {
		paintVector(svg, v, start, end,
			func(i int) float64 { return vp.BarToX(float64(i)) },
			m.y,
			top+height-pad,
			vp.TimeScale().BarSpacing())
	}
	svg.Restore()

	if ind.Name != "" {
		svg.SetFillColor(cfg.Theme.Text)
		svg.SetFont(10, "sans-serif")
		svg.SetTextAlign(render.AlignLeft)
		svg.SetTextBaseline(render.BaselineTop)
		svg.FillText(ind.Name, 6, top+4)
	}

	svg.SetFillColor(cfg.Theme.Text)
	svg.SetFont(10, "sans-serif")
	svg.SetTextAlign(render.AlignLeft)
	svg.SetTextBaseline(render.BaselineMiddle)
	prec := coords.Precision(hi - lo)
	svg.FillText(coords.FormatPrice(hi, prec), width+6, m.y(hi))
	svg.FillText(coords.FormatPrice(lo, prec), width+6, m.y(lo))
}

// indicatorBounds resolves the vertical bounds for a pane, expanding flat
// data so the mapper never divides by zero. RangePrice indicators take the
// visible bounds of the main price scale.
func indicatorBounds(ind model.Indicator, start, end int, vp *coords.Viewport) (float64, float64, bool) {
	if ind.Range == model.RangePrice {
		lo, hi := vp.PriceScale().Min(), vp.PriceScale().Max()
		return lo, hi, hi > lo
	}
	lo, hi, ok := ind.ValueRange(start, end)
	if !ok {
		return 0, 0, false
	}
	for _, lv := range ind.Levels {
		if lv.Value < lo {
			lo = lv.Value
		}
		if lv.Value > hi {
			hi = lv.Value
		}
	}
	if hi == lo {
		hi = lo + 1
	}
	return lo, hi, true
}

// valueMapper maps indicator values into a pixel band, highest value at the
// top.
type valueMapper struct {
	lo, hi float64
	top, h float64
}

func (m valueMapper) y(v float64) float64 {
	return m.top + (m.hi-v)/(m.hi-m.lo)*m.h
}

func paintLevel(svg *render.SVG, lv model.Level, x0, x1, y float64) {
	color := lv.Color
	if color == "" {
		color = "#787b86"
	}
	svg.SetStrokeColor(color)
	svg.SetStrokeWidth(1)
	svg.SetLineDash(render.Dotted.DashPattern())
	svg.BeginPath()
	svg.MoveTo(x0, y)
	svg.LineTo(x1, y)
	svg.Stroke()
	svg.SetLineDash(nil)
	if lv.Label != "" {
		svg.SetFillColor(color)
		svg.SetFont(9, "sans-serif")
		svg.SetTextAlign(render.AlignLeft)
		svg.SetTextBaseline(render.BaselineBottom)
		svg.FillText(lv.Label, x0+4, y-2)
	}
}

// paintVector draws one indicator vector. NaN values break the path so
// warm-up gaps stay empty.
func paintVector(svg *render.SVG, v model.Vector, start, end int, toX func(int) float64, toY func(float64) float64, baseY, spacing float64) {
	if v.Style == model.StyleHidden || len(v.Values) == 0 {
		return
	}
	color := v.Color
	if color == "" {
		color = indicatorFallbackColor
	}
	width := v.Width
	if width <= 0 {
		width = 1.5
	}
	if end > len(v.Values) {
		end = len(v.Values)
	}
	if start >= end {
		return
	}

	switch v.Style {
	case model.StyleHistogram:
		w := spacing * 0.6
		if w < 1 {
			w = 1
		}
		svg.SetFillColor(color)
		for i := start; i < end; i++ {
			val := v.Values[i]
			if math.IsNaN(val) {
				continue
			}
			y := toY(val)
			top, h := y, baseY-y
			if h < 0 {
				top, h = baseY, -h
			}
			svg.FillRect(toX(i)-w/2, top, w, h)
		}

	case model.StyleDots:
		svg.SetFillColor(color)
		for i := start; i < end; i++ {
			if math.IsNaN(v.Values[i]) {
				continue
			}
			svg.BeginPath()
			svg.Arc(toX(i), toY(v.Values[i]), width+1, 0, 2*math.Pi)
			svg.Fill()
		}

	case model.StyleArea:
		svg.SetFillColor(color)
		svg.SetGlobalAlpha(0.2)
		svg.BeginPath()
		firstX, lastX := math.NaN(), math.NaN()
		pen := false
		for i := start; i < end; i++ {
			val := v.Values[i]
			if math.IsNaN(val) {
				continue
			}
			x := toX(i)
			if !pen {
				svg.MoveTo(x, toY(val))
				firstX = x
				pen = true
			} else {
				svg.LineTo(x, toY(val))
			}
			lastX = x
		}
		if pen {
			svg.LineTo(lastX, baseY)
			svg.LineTo(firstX, baseY)
			svg.ClosePath()
			svg.Fill()
		}
		svg.SetGlobalAlpha(1)
		strokeVectorLine(svg, v, start, end, toX, toY, color, width, false)

	case model.StyleStep:
		strokeVectorLine(svg, v, start, end, toX, toY, color, width, true)

	default:
		strokeVectorLine(svg, v, start, end, toX, toY, color, width, false)
	}
}

func strokeVectorLine(svg *render.SVG, v model.Vector, start, end int, toX func(int) float64, toY func(float64) float64, color string, width float64, step bool) {
	svg.SetStrokeColor(color)
	svg.SetStrokeWidth(width)
	svg.SetLineDash(nil)
	svg.SetLineJoin(render.JoinRound)
	svg.BeginPath()
	pen := false
	prevY := 0.0
	for i := start; i < end; i++ {
		val := v.Values[i]
		if math.IsNaN(val) {
			pen = false
			continue
		}
		x, y := toX(i), toY(val)
		if !pen {
			svg.MoveTo(x, y)
			pen = true
		} else {
			if step {
				svg.LineTo(x, prevY)
			}
			svg.LineTo(x, y)
		}
		prevY = y
	}
	svg.Stroke()
}
