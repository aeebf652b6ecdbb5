package primitives

import (
	"math"

	"github.com/zengeld/zengeld-canvas/render"
)

// LevelConfig is one configurable horizontal level of a level-bearing
// primitive, such as a Fibonacci ratio.
type LevelConfig struct {
	Value   float64 `json:"value"`
	Color   string  `json:"color"`
	Visible bool    `json:"visible"`
	Label   string  `json:"label,omitempty"`
}

// Primitive is the contract every drawing tool satisfies. Implementations
// embed Base for the anchor-point and common-state plumbing and add their
// own geometry on top.
type Primitive interface {
	TypeID() string
	DisplayName() string
	Kind() Kind
	Data() *Data
	Points() []Point
	// SetPoints replaces the anchors. Fewer points than the shape
	// requires are padded by duplicating the first, extras beyond a
	// fixed count are dropped, and an empty slice is a no-op.
	SetPoints(points []Point)
	Translate(deltaBar, deltaPrice float64)
	Render(ctx render.Context, selected bool)
	// TextAnchor reports where attached text is anchored; ok is false
	// when the primitive has no anchors yet.
	TextAnchor() (Point, bool)
	// LevelConfigs exposes the levels of level-bearing primitives, nil
	// for the rest.
	LevelConfigs() []LevelConfig
}

// Base carries the state shared by all primitives: common data, anchor
// points and the fixed point count of the shape (zero for freeform shapes
// that accept any number of anchors).
type Base struct {
	D   Data    `json:"data"`
	Pts []Point `json:"points"`

	kind     Kind
	required int
}

func newBase(typeID, displayName string, kind Kind, required int) Base {
	return Base{D: NewData(typeID, displayName), kind: kind, required: required}
}

func (b *Base) TypeID() string      { return b.D.TypeID }
func (b *Base) DisplayName() string { return b.D.DisplayName }
func (b *Base) Kind() Kind          { return b.kind }
func (b *Base) Data() *Data         { return &b.D }
func (b *Base) Points() []Point     { return b.Pts }

func (b *Base) SetPoints(points []Point) {
	if len(points) == 0 {
		return
	}
	n := b.required
	if n == 0 {
		n = len(points)
	}
	out := make([]Point, n)
	for i := range out {
		if i < len(points) {
			out[i] = points[i]
		} else {
			out[i] = points[0]
		}
	}
	b.Pts = out
}

func (b *Base) Translate(deltaBar, deltaPrice float64) {
	for i := range b.Pts {
		b.Pts[i].Bar += deltaBar
		b.Pts[i].Price += deltaPrice
	}
}

func (b *Base) TextAnchor() (Point, bool) {
	if len(b.Pts) == 0 {
		return Point{}, false
	}
	var sumBar, sumPrice float64
	for _, p := range b.Pts {
		sumBar += p.Bar
		sumPrice += p.Price
	}
	n := float64(len(b.Pts))
	return Point{Bar: sumBar / n, Price: sumPrice / n}, true
}

func (b *Base) LevelConfigs() []LevelConfig { return nil }

// applyStroke pushes the common stroke state onto the context.
func (b *Base) applyStroke(ctx render.Context) {
	ctx.SetStrokeColor(b.D.Stroke)
	ctx.SetStrokeWidth(b.D.Width)
	ctx.SetLineDash(b.D.Style.DashPattern())
}

// fillColor resolves the fill, defaulting to the stroke colour.
func (b *Base) fillColor() string {
	if b.D.Fill != "" {
		return b.D.Fill
	}
	return b.D.Stroke
}

// pixelPoints maps the anchors into pixel space.
func (b *Base) pixelPoints(ctx render.Context) [][2]float64 {
	out := make([][2]float64, len(b.Pts))
	for i, p := range b.Pts {
		out[i] = [2]float64{ctx.BarToX(p.Bar), ctx.PriceToY(p.Price)}
	}
	return out
}

// drawHandles marks the anchor points of a selected primitive.
func (b *Base) drawHandles(ctx render.Context) {
	ctx.Save()
	ctx.SetLineDash(nil)
	ctx.SetFillColor("#ffffff")
	ctx.SetStrokeColor(b.D.Stroke)
	ctx.SetStrokeWidth(1)
	for _, p := range b.Pts {
		x := ctx.BarToX(p.Bar)
		y := ctx.PriceToY(p.Price)
		ctx.BeginPath()
		ctx.Arc(x, y, 4, 0, 2*math.Pi)
		ctx.Fill()
		ctx.Stroke()
	}
	ctx.Restore()
}

// strokePolyline strokes the anchor chain in pixel space.
func strokePolyline(ctx render.Context, pts [][2]float64, close bool) {
	if len(pts) < 2 {
		return
	}
	ctx.BeginPath()
	ctx.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		ctx.LineTo(p[0], p[1])
	}
	if close {
		ctx.ClosePath()
	}
	ctx.Stroke()
}

// fillPolygon fills the closed anchor chain in pixel space.
func fillPolygon(ctx render.Context, pts [][2]float64) {
	if len(pts) < 3 {
		return
	}
	ctx.BeginPath()
	ctx.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		ctx.LineTo(p[0], p[1])
	}
	ctx.ClosePath()
	ctx.Fill()
}

// extendSegment stretches the segment (x1,y1)-(x2,y2) to the chart bounds.
// right extends past the second point, left past the first.
func extendSegment(ctx render.Context, x1, y1, x2, y2 float64, left, right bool) (float64, float64, float64, float64) {
	w := ctx.ChartWidth()
	dx := x2 - x1
	dy := y2 - y1
	if dx == 0 {
		h := ctx.ChartHeight()
		if right {
			if dy >= 0 {
				y2 = h
			} else {
				y2 = 0
			}
		}
		if left {
			if dy >= 0 {
				y1 = 0
			} else {
				y1 = h
			}
		}
		return x1, y1, x2, y2
	}
	slope := dy / dx
	if right {
		tx := w
		if dx < 0 {
			tx = 0
		}
		y2 = y1 + slope*(tx-x1)
		x2 = tx
	}
	if left {
		tx := 0.0
		if dx < 0 {
			tx = w
		}
		y1 = y2 + slope*(tx-x2)
		x1 = tx
	}
	return x1, y1, x2, y2
}
