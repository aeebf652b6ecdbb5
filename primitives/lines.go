package primitives

import (
	"fmt"
	"math"

	"github.com/zengeld/zengeld-canvas/render"
)

// ExtendMode says which ends of a line stretch to the chart bounds.
type ExtendMode int

const (
	ExtendNone ExtendMode = iota
	ExtendRight
	ExtendLeft
	ExtendBoth
)

// TrendLine is a two-anchor segment, optionally extended and annotated.
// It backs the trend line, ray, extended line, info line and trend angle
// tools.
type TrendLine struct {
	Base
	Extend    ExtendMode `json:"extend"`
	ShowStats bool       `json:"show_stats,omitempty"`
	ShowAngle bool       `json:"show_angle,omitempty"`
}

// NewTrendLine creates a plain two-point trend line.
func NewTrendLine(typeID, displayName string, extend ExtendMode) *TrendLine {
	return &TrendLine{Base: newBase(typeID, displayName, KindLine, 2), Extend: extend}
}

func (t *TrendLine) Render(ctx render.Context, selected bool) {
	if len(t.Pts) < 2 {
		return
	}
	pp := t.pixelPoints(ctx)
	x1, y1 := pp[0][0], pp[0][1]
	x2, y2 := pp[1][0], pp[1][1]
	ex1, ey1, ex2, ey2 := extendSegment(ctx, x1, y1, x2, y2,
		t.Extend == ExtendLeft || t.Extend == ExtendBoth,
		t.Extend == ExtendRight || t.Extend == ExtendBoth)

	t.applyStroke(ctx)
	ctx.BeginPath()
	ctx.MoveTo(ex1, ey1)
	ctx.LineTo(ex2, ey2)
	ctx.Stroke()

	if t.ShowAngle {
		angle := math.Atan2(y1-y2, x2-x1) * 180 / math.Pi
		ctx.SetFillColor(t.D.Stroke)
		ctx.SetFont(11, "sans-serif")
		ctx.SetTextAlign(render.AlignLeft)
		ctx.SetTextBaseline(render.BaselineBottom)
		ctx.FillText(fmt.Sprintf("%.1f°", angle), x2+6, y2-4)
	}
	if t.ShowStats {
		delta := t.Pts[1].Price - t.Pts[0].Price
		bars := t.Pts[1].Bar - t.Pts[0].Bar
		pct := 0.0
		if t.Pts[0].Price != 0 {
			pct = delta / t.Pts[0].Price * 100
		}
		ctx.SetFillColor(t.D.Stroke)
		ctx.SetFont(11, "sans-serif")
		ctx.SetTextAlign(render.AlignCenter)
		ctx.SetTextBaseline(render.BaselineBottom)
		label := fmt.Sprintf("%+.2f (%+.2f%%), %.0f bars", delta, pct, bars)
		ctx.FillText(label, (x1+x2)/2, math.Min(y1, y2)-6)
	}
	if t.D.Text != "" {
		ctx.SetFillColor(t.D.Stroke)
		ctx.SetFont(11, "sans-serif")
		ctx.SetTextAlign(render.AlignLeft)
		ctx.SetTextBaseline(render.BaselineBottom)
		ctx.FillText(t.D.Text, (x1+x2)/2, (y1+y2)/2-6)
	}
	if selected {
		t.drawHandles(ctx)
	}
}

// HorizontalLine pins a price across the pane. RightOnly turns it into a
// horizontal ray starting at the anchor bar.
type HorizontalLine struct {
	Base
	RightOnly bool `json:"right_only,omitempty"`
	ShowLabel bool `json:"show_label"`
}

// NewHorizontalLine creates a full-width price line.
func NewHorizontalLine(typeID, displayName string, rightOnly bool) *HorizontalLine {
	h := &HorizontalLine{Base: newBase(typeID, displayName, KindLine, 1), RightOnly: rightOnly}
	h.ShowLabel = true
	return h
}

func (h *HorizontalLine) Render(ctx render.Context, selected bool) {
	if len(h.Pts) == 0 {
		return
	}
	y := render.Crisp(ctx.PriceToY(h.Pts[0].Price), ctx.DPR())
	x0 := 0.0
	if h.RightOnly {
		x0 = ctx.BarToX(h.Pts[0].Bar)
	}
	h.applyStroke(ctx)
	ctx.BeginPath()
	ctx.MoveTo(x0, y)
	ctx.LineTo(ctx.ChartWidth(), y)
	ctx.Stroke()

	if h.ShowLabel {
		ctx.SetFillColor(h.D.Stroke)
		ctx.SetFont(11, "sans-serif")
		ctx.SetTextAlign(render.AlignRight)
		ctx.SetTextBaseline(render.BaselineBottom)
		label := h.D.Text
		if label == "" {
			label = fmt.Sprintf("%.2f", h.Pts[0].Price)
		}
		ctx.FillText(label, ctx.ChartWidth()-4, y-3)
	}
	if selected {
		h.drawHandles(ctx)
	}
}

// VerticalLine pins a bar across the pane height.
type VerticalLine struct {
	Base
}

// NewVerticalLine creates a full-height bar line.
func NewVerticalLine(typeID, displayName string) *VerticalLine {
	return &VerticalLine{Base: newBase(typeID, displayName, KindLine, 1)}
}

func (v *VerticalLine) Render(ctx render.Context, selected bool) {
	if len(v.Pts) == 0 {
		return
	}
	x := render.Crisp(ctx.BarToX(v.Pts[0].Bar), ctx.DPR())
	v.applyStroke(ctx)
	ctx.BeginPath()
	ctx.MoveTo(x, 0)
	ctx.LineTo(x, ctx.ChartHeight())
	ctx.Stroke()

	if v.D.Text != "" {
		ctx.SetFillColor(v.D.Stroke)
		ctx.SetFont(11, "sans-serif")
		ctx.SetTextAlign(render.AlignLeft)
		ctx.SetTextBaseline(render.BaselineTop)
		ctx.FillTextRotated(v.D.Text, x+4, 4, 90)
	}
	if selected {
		v.drawHandles(ctx)
	}
}

// CrossLine draws a full-width and full-height cross through one anchor.
type CrossLine struct {
	Base
}

// NewCrossLine creates a crosshair at a single anchor.
func NewCrossLine(typeID, displayName string) *CrossLine {
	return &CrossLine{Base: newBase(typeID, displayName, KindLine, 1)}
}

func (c *CrossLine) Render(ctx render.Context, selected bool) {
	if len(c.Pts) == 0 {
		return
	}
	dpr := ctx.DPR()
	x := render.Crisp(ctx.BarToX(c.Pts[0].Bar), dpr)
	y := render.Crisp(ctx.PriceToY(c.Pts[0].Price), dpr)
	c.applyStroke(ctx)
	ctx.BeginPath()
	ctx.MoveTo(x, 0)
	ctx.LineTo(x, ctx.ChartHeight())
	ctx.MoveTo(0, y)
	ctx.LineTo(ctx.ChartWidth(), y)
	ctx.Stroke()

	if selected {
		c.drawHandles(ctx)
	}
}
