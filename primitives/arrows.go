package primitives

import (
	"math"

	"github.com/zengeld/zengeld-canvas/render"
)

// ArrowDirection orients a single-anchor arrow marker.
type ArrowDirection int

const (
	ArrowUp ArrowDirection = iota
	ArrowDown
)

// ArrowMarker draws a filled arrow at one anchor.
type ArrowMarker struct {
	Base
	Direction ArrowDirection `json:"direction"`
	Size      float64        `json:"size"`
}

// NewArrowMarker creates a single-anchor arrow tool.
func NewArrowMarker(typeID, displayName string, dir ArrowDirection) *ArrowMarker {
	return &ArrowMarker{
		Base:      newBase(typeID, displayName, KindArrow, 1),
		Direction: dir,
		Size:      10,
	}
}

func (a *ArrowMarker) Render(ctx render.Context, selected bool) {
	if len(a.Pts) == 0 {
		return
	}
	x := ctx.BarToX(a.Pts[0].Bar)
	y := ctx.PriceToY(a.Pts[0].Price)
	s := a.Size
	dir := 1.0
	if a.Direction == ArrowDown {
		dir = -1
	}

	ctx.SetFillColor(a.fillColor())
	ctx.BeginPath()
	ctx.MoveTo(x, y)
	ctx.LineTo(x-s*0.6, y+dir*s)
	ctx.LineTo(x-s*0.25, y+dir*s)
	ctx.LineTo(x-s*0.25, y+dir*s*1.8)
	ctx.LineTo(x+s*0.25, y+dir*s*1.8)
	ctx.LineTo(x+s*0.25, y+dir*s)
	ctx.LineTo(x+s*0.6, y+dir*s)
	ctx.ClosePath()
	ctx.Fill()

	if a.D.Text != "" {
		ctx.SetFillColor(a.D.Stroke)
		ctx.SetFont(10, "sans-serif")
		ctx.SetTextAlign(render.AlignCenter)
		if a.Direction == ArrowDown {
			ctx.SetTextBaseline(render.BaselineBottom)
			ctx.FillText(a.D.Text, x, y-s*2)
		} else {
			ctx.SetTextBaseline(render.BaselineTop)
			ctx.FillText(a.D.Text, x, y+s*2)
		}
	}
	if selected {
		a.drawHandles(ctx)
	}
}

// ArrowLine draws a segment with an arrowhead at the second anchor.
type ArrowLine struct {
	Base
	HeadSize float64 `json:"head_size"`
}

// NewArrowLine creates a two-anchor arrow.
func NewArrowLine(typeID, displayName string) *ArrowLine {
	return &ArrowLine{Base: newBase(typeID, displayName, KindArrow, 2), HeadSize: 10}
}

func (a *ArrowLine) Render(ctx render.Context, selected bool) {
	if len(a.Pts) < 2 {
		return
	}
	pp := a.pixelPoints(ctx)
	x1, y1 := pp[0][0], pp[0][1]
	x2, y2 := pp[1][0], pp[1][1]

	a.applyStroke(ctx)
	ctx.BeginPath()
	ctx.MoveTo(x1, y1)
	ctx.LineTo(x2, y2)
	ctx.Stroke()

	angle := math.Atan2(y2-y1, x2-x1)
	s := a.HeadSize
	ctx.SetFillColor(a.D.Stroke)
	ctx.BeginPath()
	ctx.MoveTo(x2, y2)
	ctx.LineTo(x2-s*math.Cos(angle-math.Pi/6), y2-s*math.Sin(angle-math.Pi/6))
	ctx.LineTo(x2-s*math.Cos(angle+math.Pi/6), y2-s*math.Sin(angle+math.Pi/6))
	ctx.ClosePath()
	ctx.Fill()

	if selected {
		a.drawHandles(ctx)
	}
}
