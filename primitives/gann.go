package primitives

import (
	"math"

	"github.com/zengeld/zengeld-canvas/render"
)

// GannBox subdivides the box between two anchors at fixed price and time
// fractions. Square adds the corner diagonals.
type GannBox struct {
	Base
	Square    bool      `json:"square,omitempty"`
	Fractions []float64 `json:"fractions"`
	FillAlpha float64   `json:"fill_alpha"`
}

// NewGannBox creates the box, square or fixed-square tool.
func NewGannBox(typeID, displayName string, square bool) *GannBox {
	return &GannBox{
		Base:      newBase(typeID, displayName, KindGann, 2),
		Square:    square,
		Fractions: []float64{0.25, 0.382, 0.5, 0.618, 0.75},
		FillAlpha: 0.06,
	}
}

func (g *GannBox) Render(ctx render.Context, selected bool) {
	if len(g.Pts) < 2 {
		return
	}
	pp := g.pixelPoints(ctx)
	x1 := math.Min(pp[0][0], pp[1][0])
	x2 := math.Max(pp[0][0], pp[1][0])
	y1 := math.Min(pp[0][1], pp[1][1])
	y2 := math.Max(pp[0][1], pp[1][1])

	if g.FillAlpha > 0 {
		ctx.Save()
		ctx.SetGlobalAlpha(g.FillAlpha)
		ctx.SetFillColor(g.fillColor())
		ctx.FillRect(x1, y1, x2-x1, y2-y1)
		ctx.Restore()
	}

	g.applyStroke(ctx)
	ctx.StrokeRect(x1, y1, x2-x1, y2-y1)

	ctx.SetStrokeWidth(1)
	ctx.SetLineDash(render.Dotted.DashPattern())
	for _, f := range g.Fractions {
		y := y1 + (y2-y1)*f
		ctx.BeginPath()
		ctx.MoveTo(x1, y)
		ctx.LineTo(x2, y)
		ctx.Stroke()
		x := x1 + (x2-x1)*f
		ctx.BeginPath()
		ctx.MoveTo(x, y1)
		ctx.LineTo(x, y2)
		ctx.Stroke()
	}
	ctx.SetLineDash(nil)

	if g.Square {
		ctx.BeginPath()
		ctx.MoveTo(x1, y1)
		ctx.LineTo(x2, y2)
		ctx.MoveTo(x1, y2)
		ctx.LineTo(x2, y1)
		ctx.Stroke()
	}

	if selected {
		g.drawHandles(ctx)
	}
}

var gannRatios = []float64{8, 4, 3, 2, 1, 0.5, 1.0 / 3, 0.25, 0.125}

// GannFan draws the classic 1x8 through 8x1 rays from the first anchor,
// with the 1x1 ray through the second.
type GannFan struct {
	Base
}

// NewGannFan creates the fan tool.
func NewGannFan(typeID, displayName string) *GannFan {
	return &GannFan{Base: newBase(typeID, displayName, KindGann, 2)}
}

func (g *GannFan) Render(ctx render.Context, selected bool) {
	if len(g.Pts) < 2 {
		return
	}
	pp := g.pixelPoints(ctx)
	x1, y1 := pp[0][0], pp[0][1]
	x2, y2 := pp[1][0], pp[1][1]

	for _, ratio := range gannRatios {
		ty := y1 + (y2-y1)*ratio
		ex1, ey1, ex2, ey2 := extendSegment(ctx, x1, y1, x2, ty, false, true)
		width := 1.0
		if ratio == 1 {
			width = g.D.Width
		}
		ctx.SetStrokeColor(g.D.Stroke)
		ctx.SetStrokeWidth(width)
		ctx.SetLineDash(g.D.Style.DashPattern())
		ctx.BeginPath()
		ctx.MoveTo(ex1, ey1)
		ctx.LineTo(ex2, ey2)
		ctx.Stroke()
	}

	if selected {
		g.drawHandles(ctx)
	}
}
