package primitives

import (
	"math"

	"github.com/zengeld/zengeld-canvas/render"
)

// AnchoredVWAP plots a caller-computed VWAP curve. The first anchor marks
// the anchor bar; subsequent anchors carry the precomputed curve values.
type AnchoredVWAP struct {
	Base
}

// NewAnchoredVWAP creates the anchored VWAP overlay.
func NewAnchoredVWAP(typeID, displayName string) *AnchoredVWAP {
	return &AnchoredVWAP{Base: newBase(typeID, displayName, KindVolume, 0)}
}

func (a *AnchoredVWAP) Render(ctx render.Context, selected bool) {
	if len(a.Pts) == 0 {
		return
	}
	x := ctx.BarToX(a.Pts[0].Bar)
	y := ctx.PriceToY(a.Pts[0].Price)

	// Anchor marker.
	ctx.SetFillColor(a.D.Stroke)
	ctx.BeginPath()
	ctx.Arc(x, y, 3.5, 0, 2*math.Pi)
	ctx.Fill()

	a.applyStroke(ctx)
	strokePolyline(ctx, a.pixelPoints(ctx), false)

	if selected {
		a.drawHandles(ctx)
	}
}

// VolumeProfile draws a horizontal histogram inside the region between two
// anchors. Rows are caller-supplied relative weights; missing rows render a
// flat profile.
type VolumeProfile struct {
	Base
	Rows     []float64 `json:"rows,omitempty"`
	MaxWidth float64   `json:"max_width"`
}

// NewVolumeProfile creates the fixed-range or anchored profile tool.
func NewVolumeProfile(typeID, displayName string) *VolumeProfile {
	return &VolumeProfile{Base: newBase(typeID, displayName, KindVolume, 2), MaxWidth: 0.35}
}

func (v *VolumeProfile) Render(ctx render.Context, selected bool) {
	if len(v.Pts) < 2 {
		return
	}
	pp := v.pixelPoints(ctx)
	x1 := math.Min(pp[0][0], pp[1][0])
	x2 := math.Max(pp[0][0], pp[1][0])
	y1 := math.Min(pp[0][1], pp[1][1])
	y2 := math.Max(pp[0][1], pp[1][1])

	v.applyStroke(ctx)
	ctx.SetLineDash(render.Dashed.DashPattern())
	ctx.StrokeRect(x1, y1, x2-x1, y2-y1)
	ctx.SetLineDash(nil)

	rows := v.Rows
	if len(rows) == 0 {
		rows = make([]float64, 12)
		for i := range rows {
			rows[i] = 1
		}
	}
	maxRow := 0.0
	for _, r := range rows {
		if r > maxRow {
			maxRow = r
		}
	}
	if maxRow <= 0 {
		return
	}
	rowH := (y2 - y1) / float64(len(rows))
	span := (x2 - x1) * v.MaxWidth
	ctx.Save()
	ctx.SetGlobalAlpha(0.4)
	ctx.SetFillColor(v.fillColor())
	for i, r := range rows {
		w := span * (r / maxRow)
		ctx.FillRect(x1, y1+rowH*float64(i)+1, w, math.Max(rowH-2, 1))
	}
	ctx.Restore()

	if selected {
		v.drawHandles(ctx)
	}
}
