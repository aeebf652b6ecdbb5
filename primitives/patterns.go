package primitives

import (
	"math"

	"github.com/zengeld/zengeld-canvas/render"
)

// HarmonicPattern chains labelled pivots and shades the legs between them.
// The label set fixes the pivot count: XABCD patterns take five, ABCD four,
// head-and-shoulders seven.
type HarmonicPattern struct {
	Base
	Labels    []string `json:"labels"`
	FillAlpha float64  `json:"fill_alpha"`
}

// NewHarmonicPattern creates a pattern tool with one pivot per label.
func NewHarmonicPattern(typeID, displayName string, labels []string) *HarmonicPattern {
	return &HarmonicPattern{
		Base:      newBase(typeID, displayName, KindPattern, len(labels)),
		Labels:    labels,
		FillAlpha: 0.12,
	}
}

func (h *HarmonicPattern) Render(ctx render.Context, selected bool) {
	pp := h.pixelPoints(ctx)
	if len(pp) < 2 {
		return
	}

	if h.FillAlpha > 0 && len(pp) >= 3 {
		ctx.Save()
		ctx.SetGlobalAlpha(h.FillAlpha)
		ctx.SetFillColor(h.fillColor())
		for i := 0; i+2 < len(pp); i += 2 {
			fillPolygon(ctx, pp[i:i+3])
		}
		ctx.Restore()
	}

	h.applyStroke(ctx)
	strokePolyline(ctx, pp, false)

	ctx.SetFont(11, "sans-serif")
	ctx.SetTextAlign(render.AlignCenter)
	for i, p := range pp {
		if i >= len(h.Labels) {
			break
		}
		above := i%2 == 0
		y := p[1] + 14
		baseline := render.BaselineTop
		if above {
			y = p[1] - 14
			baseline = render.BaselineBottom
		}
		ctx.SetTextBaseline(baseline)
		ctx.SetFillColor(h.D.Stroke)
		ctx.FillText(h.Labels[i], p[0], y)
	}

	if selected {
		h.drawHandles(ctx)
	}
}

// ElliottWave chains labelled swing points in the Elliott notation. The
// label set fixes the point count: impulse 0-5, correction 0-A-B-C, and so
// on.
type ElliottWave struct {
	Base
	Labels []string `json:"labels"`
}

// NewElliottWave creates a wave tool with one swing point per label.
func NewElliottWave(typeID, displayName string, labels []string) *ElliottWave {
	return &ElliottWave{
		Base:   newBase(typeID, displayName, KindElliott, len(labels)),
		Labels: labels,
	}
}

func (e *ElliottWave) Render(ctx render.Context, selected bool) {
	pp := e.pixelPoints(ctx)
	if len(pp) < 2 {
		return
	}
	e.applyStroke(ctx)
	strokePolyline(ctx, pp, false)

	// Circled degree labels at each swing point.
	for i, p := range pp {
		if i >= len(e.Labels) {
			break
		}
		above := p[1] <= pixelMidline(pp)
		ly := p[1] + 16
		if above {
			ly = p[1] - 16
		}
		ctx.SetFillColor("#ffffff")
		ctx.SetStrokeColor(e.D.Stroke)
		ctx.SetStrokeWidth(1)
		ctx.SetLineDash(nil)
		ctx.BeginPath()
		ctx.Arc(p[0], ly, 8, 0, 2*math.Pi)
		ctx.Fill()
		ctx.Stroke()

		ctx.SetFillColor(e.D.Stroke)
		ctx.SetFont(10, "sans-serif")
		ctx.SetTextAlign(render.AlignCenter)
		ctx.SetTextBaseline(render.BaselineMiddle)
		ctx.FillText(e.Labels[i], p[0], ly)
	}
	ctx.SetLineDash(e.D.Style.DashPattern())

	if selected {
		e.drawHandles(ctx)
	}
}

func pixelMidline(pp [][2]float64) float64 {
	lo, hi := pp[0][1], pp[0][1]
	for _, p := range pp[1:] {
		if p[1] < lo {
			lo = p[1]
		}
		if p[1] > hi {
			hi = p[1]
		}
	}
	return (lo + hi) / 2
}
