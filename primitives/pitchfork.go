package primitives

import "github.com/zengeld/zengeld-canvas/render"

// PitchforkVariant selects how the median line origin is derived.
type PitchforkVariant int

const (
	PitchforkStandard PitchforkVariant = iota
	PitchforkSchiff
	PitchforkModifiedSchiff
	PitchforkInside
)

// Pitchfork draws a median line from a pivot through the midpoint of the
// second and third anchors, with parallel tines through each of them.
type Pitchfork struct {
	Base
	Variant   PitchforkVariant `json:"variant"`
	FillAlpha float64          `json:"fill_alpha"`
}

// NewPitchfork creates one of the four pitchfork variants.
func NewPitchfork(typeID, displayName string, variant PitchforkVariant) *Pitchfork {
	return &Pitchfork{
		Base:      newBase(typeID, displayName, KindPitchfork, 3),
		Variant:   variant,
		FillAlpha: 0.08,
	}
}

func (p *Pitchfork) Render(ctx render.Context, selected bool) {
	if len(p.Pts) < 3 {
		return
	}
	pp := p.pixelPoints(ctx)
	p1, p2, p3 := pp[0], pp[1], pp[2]
	mid := [2]float64{(p2[0] + p3[0]) / 2, (p2[1] + p3[1]) / 2}

	origin := p1
	switch p.Variant {
	case PitchforkSchiff:
		origin = [2]float64{p1[0], (p1[1] + p2[1]) / 2}
	case PitchforkModifiedSchiff:
		origin = [2]float64{(p1[0] + p2[0]) / 2, (p1[1] + p2[1]) / 2}
	case PitchforkInside:
		origin = [2]float64{p1[0] + (mid[0]-p1[0])/2, p1[1] + (mid[1]-p1[1])/2}
	}

	// Median line extended right from the origin through the midpoint.
	mx1, my1, mx2, my2 := extendSegment(ctx, origin[0], origin[1], mid[0], mid[1], false, true)
	dx := mx2 - mx1
	dy := my2 - my1

	tine := func(from [2]float64) (x1, y1, x2, y2 float64) {
		return from[0], from[1], from[0] + dx, from[1] + dy
	}
	t2x1, t2y1, t2x2, t2y2 := tine(p2)
	t3x1, t3y1, t3x2, t3y2 := tine(p3)

	if p.FillAlpha > 0 {
		ctx.Save()
		ctx.SetGlobalAlpha(p.FillAlpha)
		ctx.SetFillColor(p.fillColor())
		fillPolygon(ctx, [][2]float64{{t2x1, t2y1}, {t2x2, t2y2}, {t3x2, t3y2}, {t3x1, t3y1}})
		ctx.Restore()
	}

	p.applyStroke(ctx)
	ctx.BeginPath()
	ctx.MoveTo(mx1, my1)
	ctx.LineTo(mx2, my2)
	ctx.Stroke()

	ctx.BeginPath()
	ctx.MoveTo(t2x1, t2y1)
	ctx.LineTo(t2x2, t2y2)
	ctx.MoveTo(t3x1, t3y1)
	ctx.LineTo(t3x2, t3y2)
	ctx.Stroke()

	// Handle bar between the second and third anchors.
	ctx.SetLineDash(render.Dashed.DashPattern())
	ctx.BeginPath()
	ctx.MoveTo(p2[0], p2[1])
	ctx.LineTo(p3[0], p3[1])
	ctx.Stroke()
	ctx.SetLineDash(p.D.Style.DashPattern())

	if selected {
		p.drawHandles(ctx)
	}
}
