package primitives

import "github.com/zengeld/zengeld-canvas/render"

// Channel draws a base segment plus one or more parallels, with a shaded
// interior. Disjoint channels take four anchors so the two rails can have
// independent slopes; the rest derive the second rail from the third anchor.
type Channel struct {
	Base
	Disjoint  bool    `json:"disjoint,omitempty"`
	FillAlpha float64 `json:"fill_alpha"`
	ShowMid   bool    `json:"show_mid,omitempty"`
	Extend    bool    `json:"extend,omitempty"`
}

// NewChannel creates a channel tool. required is 3 for parallel channels
// and 4 for disjoint ones.
func NewChannel(typeID, displayName string, required int, disjoint bool) *Channel {
	c := &Channel{
		Base:      newBase(typeID, displayName, KindChannel, required),
		Disjoint:  disjoint,
		FillAlpha: 0.1,
	}
	return c
}

// rails resolves the two channel rails in pixel space.
func (c *Channel) rails(ctx render.Context) (a1, a2, b1, b2 [2]float64, ok bool) {
	pp := c.pixelPoints(ctx)
	if len(pp) < 2 {
		return a1, a2, b1, b2, false
	}
	a1, a2 = pp[0], pp[1]
	switch {
	case c.Disjoint && len(pp) >= 4:
		b1, b2 = pp[2], pp[3]
	case len(pp) >= 3:
		// Third anchor sets the vertical offset of the parallel rail.
		dy := pp[2][1] - pp[0][1]
		b1 = [2]float64{a1[0], a1[1] + dy}
		b2 = [2]float64{a2[0], a2[1] + dy}
	default:
		b1, b2 = a1, a2
	}
	return a1, a2, b1, b2, true
}

func (c *Channel) Render(ctx render.Context, selected bool) {
	a1, a2, b1, b2, ok := c.rails(ctx)
	if !ok {
		return
	}
	if c.Extend {
		a1[0], a1[1], a2[0], a2[1] = extendSegment(ctx, a1[0], a1[1], a2[0], a2[1], true, true)
		b1[0], b1[1], b2[0], b2[1] = extendSegment(ctx, b1[0], b1[1], b2[0], b2[1], true, true)
	}

	if c.FillAlpha > 0 {
		ctx.Save()
		ctx.SetGlobalAlpha(c.FillAlpha)
		ctx.SetFillColor(c.fillColor())
		fillPolygon(ctx, [][2]float64{a1, a2, b2, b1})
		ctx.Restore()
	}

	c.applyStroke(ctx)
	strokePolyline(ctx, [][2]float64{a1, a2}, false)
	strokePolyline(ctx, [][2]float64{b1, b2}, false)

	if c.ShowMid {
		m1 := [2]float64{(a1[0] + b1[0]) / 2, (a1[1] + b1[1]) / 2}
		m2 := [2]float64{(a2[0] + b2[0]) / 2, (a2[1] + b2[1]) / 2}
		ctx.SetLineDash(render.Dashed.DashPattern())
		strokePolyline(ctx, [][2]float64{m1, m2}, false)
		ctx.SetLineDash(c.D.Style.DashPattern())
	}

	if selected {
		c.drawHandles(ctx)
	}
}
