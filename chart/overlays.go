package chart

import (
	"math"

	"github.com/zengeld/zengeld-canvas/coords"
	"github.com/zengeld/zengeld-canvas/model"
	"github.com/zengeld/zengeld-canvas/render"
)

// paintLegend draws the OHLC readout for the latest visible bar in the
// configured plot corner.
func paintLegend(svg *render.SVG, lg model.Legend, theme Theme, bars []model.Bar, end int, plotW, plotH, yOffset float64) {
	if end <= 0 || end > len(bars) {
		return
	}
	bar := bars[end-1]
	prevClose := 0.0
	hasPrev := end >= 2
	if hasPrev {
		prevClose = bars[end-2].Close
	}
	text := lg.Format(bar, prevClose, hasPrev, 2)
	if text == "" {
		return
	}

	color := lg.Color
	if color == "" {
		color = theme.Text
	}
	svg.SetFillColor(color)
	svg.SetFont(lg.FontSize, "sans-serif")
	svg.SetTextAlign(render.AlignLeft)
	svg.SetTextBaseline(render.BaselineTop)

	w := svg.MeasureText(text)
	h := lg.FontSize * 1.5
	x, y := lg.Padding, lg.Padding
	switch lg.Position {
	case model.LegendTopRight:
		x = plotW - w - lg.Padding
	case model.LegendBottomLeft:
		y = plotH - h - lg.Padding
	case model.LegendBottomRight:
		x = plotW - w - lg.Padding
		y = plotH - h - lg.Padding
	}
	svg.FillText(text, x, y+yOffset)
}

// paintWatermark stacks the watermark lines behind the series.
func paintWatermark(svg *render.SVG, wm model.Watermark, plotW, plotH float64) {
	if len(wm.Lines) == 0 {
		return
	}
	total := wm.TotalHeight()
	y := wm.Padding
	switch wm.Vert {
	case model.VertCenter:
		y = (plotH - total) / 2
	case model.VertBottom:
		y = plotH - wm.Padding - total
	}

	svg.SetTextBaseline(render.BaselineTop)
	for _, line := range wm.Lines {
		x := wm.Padding
		switch wm.Horz {
		case model.HorzCenter:
			x = plotW / 2
			svg.SetTextAlign(render.AlignCenter)
		case model.HorzRight:
			x = plotW - wm.Padding
			svg.SetTextAlign(render.AlignRight)
		default:
			svg.SetTextAlign(render.AlignLeft)
		}
		svg.SetFillColor(line.Color)
		svg.SetFont(line.FontSize, "sans-serif")
		svg.FillText(line.Text, x, y)
		y += line.FontSize * 1.2
	}
}

// paintCompares draws each comparison symbol as a percent-change line,
// aligned to the main series by timestamp. Percent offsets are converted
// back to main-scale prices so the line lands correctly in percent and
// indexed modes.
func paintCompares(svg *render.SVG, compares []model.CompareSeries, bars []model.Bar, start, end int, vp *coords.Viewport) {
	base := vp.PriceScale().BasePrice()
	if base <= 0 && end > start {
		base = bars[start].Close
	}
	if base <= 0 {
		return
	}
	for _, cs := range compares {
		if len(cs.Bars) == 0 {
			continue
		}
		width := cs.LineWidth
		if width <= 0 {
			width = 2
		}
		color := cs.Color
		if color == "" {
			color = "#2196f3"
		}
		svg.SetStrokeColor(color)
		svg.SetStrokeWidth(width)
		svg.SetLineDash(nil)
		svg.SetLineJoin(render.JoinRound)
		svg.BeginPath()
		pen := false
		for i := start; i < end; i++ {
			close, ok := cs.CloseAt(bars[i].Time)
			if !ok {
				pen = false
				continue
			}
			price := base * (1 + cs.Percent(close)/100)
			if math.IsNaN(price) || math.IsInf(price, 0) {
				pen = false
				continue
			}
			x, y := vp.BarToX(float64(i)), vp.PriceToY(price)
			if !pen {
				svg.MoveTo(x, y)
				pen = true
			} else {
				svg.LineTo(x, y)
			}
		}
		svg.Stroke()
	}
}
