package primitives

import (
	"math"

	"github.com/zengeld/zengeld-canvas/render"
)

// Rectangle spans the box between two corner anchors. A non-zero Angle
// rotates it around its centre.
type Rectangle struct {
	Base
	Angle     float64 `json:"angle,omitempty"` // degrees
	FillAlpha float64 `json:"fill_alpha"`
}

// NewRectangle creates an axis-aligned or rotatable rectangle.
func NewRectangle(typeID, displayName string) *Rectangle {
	return &Rectangle{Base: newBase(typeID, displayName, KindShape, 2), FillAlpha: 0.15}
}

func (r *Rectangle) Render(ctx render.Context, selected bool) {
	if len(r.Pts) < 2 {
		return
	}
	pp := r.pixelPoints(ctx)
	x := math.Min(pp[0][0], pp[1][0])
	y := math.Min(pp[0][1], pp[1][1])
	w := math.Abs(pp[1][0] - pp[0][0])
	h := math.Abs(pp[1][1] - pp[0][1])

	ctx.Save()
	if r.Angle != 0 {
		ctx.Translate(x+w/2, y+h/2)
		ctx.Rotate(r.Angle * math.Pi / 180)
		ctx.Translate(-(x + w/2), -(y + h/2))
	}
	if r.FillAlpha > 0 {
		ctx.SetGlobalAlpha(r.FillAlpha)
		ctx.SetFillColor(r.fillColor())
		ctx.FillRect(x, y, w, h)
		ctx.SetGlobalAlpha(1)
	}
	r.applyStroke(ctx)
	cx, cy, cw, ch := render.CrispRect(x, y, w, h, ctx.DPR())
	ctx.StrokeRect(cx, cy, cw, ch)
	if r.D.Text != "" {
		ctx.SetFillColor(r.D.Stroke)
		ctx.SetFont(11, "sans-serif")
		ctx.SetTextAlign(render.AlignCenter)
		ctx.SetTextBaseline(render.BaselineMiddle)
		ctx.FillText(r.D.Text, x+w/2, y+h/2)
	}
	ctx.Restore()

	if selected {
		r.drawHandles(ctx)
	}
}

// EllipseShape spans the ellipse inscribed in the box between two anchors.
// Circle forces equal radii.
type EllipseShape struct {
	Base
	Circle    bool    `json:"circle,omitempty"`
	FillAlpha float64 `json:"fill_alpha"`
}

// NewEllipseShape creates an ellipse or circle tool.
func NewEllipseShape(typeID, displayName string, circle bool) *EllipseShape {
	return &EllipseShape{Base: newBase(typeID, displayName, KindShape, 2), Circle: circle, FillAlpha: 0.15}
}

func (e *EllipseShape) Render(ctx render.Context, selected bool) {
	if len(e.Pts) < 2 {
		return
	}
	pp := e.pixelPoints(ctx)
	cx := (pp[0][0] + pp[1][0]) / 2
	cy := (pp[0][1] + pp[1][1]) / 2
	rx := math.Abs(pp[1][0]-pp[0][0]) / 2
	ry := math.Abs(pp[1][1]-pp[0][1]) / 2
	if e.Circle {
		r := math.Hypot(pp[1][0]-pp[0][0], pp[1][1]-pp[0][1]) / 2
		rx, ry = r, r
	}
	params := render.EllipseParams{CX: cx, CY: cy, RadiusX: rx, RadiusY: ry, EndAngle: 2 * math.Pi}

	if e.FillAlpha > 0 {
		ctx.Save()
		ctx.SetGlobalAlpha(e.FillAlpha)
		ctx.SetFillColor(e.fillColor())
		ctx.BeginPath()
		ctx.Ellipse(params)
		ctx.Fill()
		ctx.Restore()
	}
	e.applyStroke(ctx)
	ctx.BeginPath()
	ctx.Ellipse(params)
	ctx.Stroke()

	if selected {
		e.drawHandles(ctx)
	}
}

// Triangle fills the triangle spanned by three anchors.
type Triangle struct {
	Base
	FillAlpha float64 `json:"fill_alpha"`
}

// NewTriangle creates a three-anchor triangle.
func NewTriangle(typeID, displayName string) *Triangle {
	return &Triangle{Base: newBase(typeID, displayName, KindShape, 3), FillAlpha: 0.15}
}

func (t *Triangle) Render(ctx render.Context, selected bool) {
	if len(t.Pts) < 3 {
		return
	}
	pp := t.pixelPoints(ctx)
	if t.FillAlpha > 0 {
		ctx.Save()
		ctx.SetGlobalAlpha(t.FillAlpha)
		ctx.SetFillColor(t.fillColor())
		fillPolygon(ctx, pp[:3])
		ctx.Restore()
	}
	t.applyStroke(ctx)
	strokePolyline(ctx, pp[:3], true)

	if selected {
		t.drawHandles(ctx)
	}
}

// ArcShape bends a curve from the first to the second anchor using the third
// as control point.
type ArcShape struct {
	Base
}

// NewArcShape creates a three-anchor arc.
func NewArcShape(typeID, displayName string) *ArcShape {
	return &ArcShape{Base: newBase(typeID, displayName, KindShape, 3)}
}

func (a *ArcShape) Render(ctx render.Context, selected bool) {
	if len(a.Pts) < 3 {
		return
	}
	pp := a.pixelPoints(ctx)
	a.applyStroke(ctx)
	ctx.BeginPath()
	ctx.MoveTo(pp[0][0], pp[0][1])
	ctx.QuadraticCurveTo(pp[2][0], pp[2][1], pp[1][0], pp[1][1])
	ctx.Stroke()

	if selected {
		a.drawHandles(ctx)
	}
}

// Polyline chains any number of anchors. Smooth renders quadratic segments
// through midpoints; Closed joins the last anchor back to the first.
type Polyline struct {
	Base
	Smooth    bool    `json:"smooth,omitempty"`
	Closed    bool    `json:"closed,omitempty"`
	FillAlpha float64 `json:"fill_alpha,omitempty"`
}

// NewPolyline creates a freeform multi-anchor chain.
func NewPolyline(typeID, displayName string, smooth, closed bool) *Polyline {
	return &Polyline{Base: newBase(typeID, displayName, KindShape, 0), Smooth: smooth, Closed: closed}
}

func (p *Polyline) Render(ctx render.Context, selected bool) {
	pp := p.pixelPoints(ctx)
	if len(pp) < 2 {
		return
	}
	if p.Closed && p.FillAlpha > 0 {
		ctx.Save()
		ctx.SetGlobalAlpha(p.FillAlpha)
		ctx.SetFillColor(p.fillColor())
		fillPolygon(ctx, pp)
		ctx.Restore()
	}
	p.applyStroke(ctx)
	if !p.Smooth {
		strokePolyline(ctx, pp, p.Closed)
	} else {
		ctx.BeginPath()
		ctx.MoveTo(pp[0][0], pp[0][1])
		for i := 1; i < len(pp)-1; i++ {
			mx := (pp[i][0] + pp[i+1][0]) / 2
			my := (pp[i][1] + pp[i+1][1]) / 2
			ctx.QuadraticCurveTo(pp[i][0], pp[i][1], mx, my)
		}
		last := pp[len(pp)-1]
		ctx.LineTo(last[0], last[1])
		if p.Closed {
			ctx.ClosePath()
		}
		ctx.Stroke()
	}

	if selected {
		p.drawHandles(ctx)
	}
}
