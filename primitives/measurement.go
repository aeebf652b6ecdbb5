package primitives

import (
	"fmt"
	"math"

	"github.com/zengeld/zengeld-canvas/render"
)

// MeasureMode selects which axes a range measurement reports.
type MeasureMode int

const (
	MeasurePrice MeasureMode = iota
	MeasureDate
	MeasureBoth
)

// RangeMeasure shades the region between two anchors and annotates the
// price delta, percent change and bar count, per its mode.
type RangeMeasure struct {
	Base
	Mode MeasureMode `json:"mode"`
}

// NewRangeMeasure creates a price, date or combined range tool.
func NewRangeMeasure(typeID, displayName string, mode MeasureMode) *RangeMeasure {
	return &RangeMeasure{Base: newBase(typeID, displayName, KindMeasurement, 2), Mode: mode}
}

func (r *RangeMeasure) Render(ctx render.Context, selected bool) {
	if len(r.Pts) < 2 {
		return
	}
	pp := r.pixelPoints(ctx)
	x1 := math.Min(pp[0][0], pp[1][0])
	x2 := math.Max(pp[0][0], pp[1][0])
	y1 := math.Min(pp[0][1], pp[1][1])
	y2 := math.Max(pp[0][1], pp[1][1])

	ctx.Save()
	ctx.SetGlobalAlpha(0.1)
	ctx.SetFillColor(r.fillColor())
	ctx.FillRect(x1, y1, x2-x1, y2-y1)
	ctx.Restore()

	r.applyStroke(ctx)
	cx := (x1 + x2) / 2
	cy := (y1 + y2) / 2

	if r.Mode == MeasurePrice || r.Mode == MeasureBoth {
		// Vertical measuring arrow.
		ctx.BeginPath()
		ctx.MoveTo(cx, y1)
		ctx.LineTo(cx, y2)
		ctx.Stroke()
		arrowHead(ctx, cx, pp[1][1], pp[1][1] < pp[0][1])
	}
	if r.Mode == MeasureDate || r.Mode == MeasureBoth {
		ctx.BeginPath()
		ctx.MoveTo(x1, cy)
		ctx.LineTo(x2, cy)
		ctx.Stroke()
	}

	delta := r.Pts[1].Price - r.Pts[0].Price
	pct := 0.0
	if r.Pts[0].Price != 0 {
		pct = delta / r.Pts[0].Price * 100
	}
	bars := r.Pts[1].Bar - r.Pts[0].Bar

	var label string
	switch r.Mode {
	case MeasurePrice:
		label = fmt.Sprintf("%+.2f (%+.2f%%)", delta, pct)
	case MeasureDate:
		label = fmt.Sprintf("%.0f bars", math.Abs(bars))
	default:
		label = fmt.Sprintf("%+.2f (%+.2f%%), %.0f bars", delta, pct, math.Abs(bars))
	}
	ctx.SetFillColor(r.D.Stroke)
	ctx.SetFont(11, "sans-serif")
	ctx.SetTextAlign(render.AlignCenter)
	ctx.SetTextBaseline(render.BaselineBottom)
	ctx.FillText(label, cx, y1-4)

	if selected {
		r.drawHandles(ctx)
	}
}

func arrowHead(ctx render.Context, x, y float64, up bool) {
	s := 5.0
	dir := 1.0
	if up {
		dir = -1
	}
	ctx.BeginPath()
	ctx.MoveTo(x, y)
	ctx.LineTo(x-s, y-dir*s*1.5)
	ctx.LineTo(x+s, y-dir*s*1.5)
	ctx.ClosePath()
	ctx.Fill()
}
