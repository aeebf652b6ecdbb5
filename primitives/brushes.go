package primitives

import "github.com/zengeld/zengeld-canvas/render"

// Brush strokes a freehand chain of anchors. Highlight widens the stroke
// and drops the opacity, marker style.
type Brush struct {
	Base
	Highlight bool `json:"highlight,omitempty"`
}

// NewBrush creates the brush or highlighter tool.
func NewBrush(typeID, displayName string, highlight bool) *Brush {
	b := &Brush{Base: newBase(typeID, displayName, KindBrush, 0), Highlight: highlight}
	if highlight {
		b.D.Width = 14
	}
	return b
}

func (b *Brush) Render(ctx render.Context, selected bool) {
	pp := b.pixelPoints(ctx)
	if len(pp) < 2 {
		return
	}
	ctx.Save()
	if b.Highlight {
		ctx.SetGlobalAlpha(0.35)
	}
	b.applyStroke(ctx)
	ctx.SetLineCap(render.CapRound)
	ctx.SetLineJoin(render.JoinRound)
	ctx.BeginPath()
	ctx.MoveTo(pp[0][0], pp[0][1])
	for i := 1; i < len(pp)-1; i++ {
		mx := (pp[i][0] + pp[i+1][0]) / 2
		my := (pp[i][1] + pp[i+1][1]) / 2
		ctx.QuadraticCurveTo(pp[i][0], pp[i][1], mx, my)
	}
	last := pp[len(pp)-1]
	ctx.LineTo(last[0], last[1])
	ctx.Stroke()
	ctx.Restore()

	if selected {
		b.drawHandles(ctx)
	}
}
