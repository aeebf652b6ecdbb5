package primitives

import "github.com/zengeld/zengeld-canvas/render"

// IconMark places a glyph or image placeholder at one anchor. Emoji text is
// rendered directly; image references draw a framed placeholder since the
// backend emits vector output only.
type IconMark struct {
	Base
	Glyph string  `json:"glyph,omitempty"`
	Href  string  `json:"href,omitempty"`
	Size  float64 `json:"size"`
}

// NewIconMark creates the emoji or image tool.
func NewIconMark(typeID, displayName, glyph string) *IconMark {
	return &IconMark{Base: newBase(typeID, displayName, KindIcon, 1), Glyph: glyph, Size: 24}
}

func (m *IconMark) Render(ctx render.Context, selected bool) {
	if len(m.Pts) == 0 {
		return
	}
	x := ctx.BarToX(m.Pts[0].Bar)
	y := ctx.PriceToY(m.Pts[0].Price)

	if m.Glyph != "" {
		ctx.SetFillColor(m.D.Stroke)
		ctx.SetFont(m.Size, "sans-serif")
		ctx.SetTextAlign(render.AlignCenter)
		ctx.SetTextBaseline(render.BaselineMiddle)
		ctx.FillText(m.Glyph, x, y)
	} else {
		half := m.Size / 2
		m.applyStroke(ctx)
		ctx.StrokeRect(x-half, y-half, m.Size, m.Size)
		ctx.BeginPath()
		ctx.MoveTo(x-half, y-half)
		ctx.LineTo(x+half, y+half)
		ctx.MoveTo(x-half, y+half)
		ctx.LineTo(x+half, y-half)
		ctx.Stroke()
	}

	if selected {
		m.drawHandles(ctx)
	}
}
