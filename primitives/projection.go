package primitives

import (
	"fmt"
	"math"

	"github.com/zengeld/zengeld-canvas/render"
)

// PositionTool shades the reward and risk zones of a planned trade. Anchors
// are entry, stop and target; Short flips the direction semantics.
type PositionTool struct {
	Base
	Short bool `json:"short,omitempty"`
}

// NewPositionTool creates the long or short position tool.
func NewPositionTool(typeID, displayName string, short bool) *PositionTool {
	return &PositionTool{Base: newBase(typeID, displayName, KindProjection, 3), Short: short}
}

func (p *PositionTool) Render(ctx render.Context, selected bool) {
	if len(p.Pts) < 3 {
		return
	}
	entry, stop, target := p.Pts[0], p.Pts[1], p.Pts[2]
	x1 := ctx.BarToX(entry.Bar)
	x2 := x1 + math.Max(40, math.Abs(ctx.BarToX(target.Bar)-x1))
	ey := ctx.PriceToY(entry.Price)
	sy := ctx.PriceToY(stop.Price)
	ty := ctx.PriceToY(target.Price)

	ctx.Save()
	ctx.SetGlobalAlpha(0.15)
	ctx.SetFillColor("#26a69a")
	ctx.FillRect(x1, math.Min(ey, ty), x2-x1, math.Abs(ty-ey))
	ctx.SetFillColor("#ef5350")
	ctx.FillRect(x1, math.Min(ey, sy), x2-x1, math.Abs(sy-ey))
	ctx.Restore()

	p.applyStroke(ctx)
	for _, y := range []float64{ey, sy, ty} {
		cy := render.Crisp(y, ctx.DPR())
		ctx.BeginPath()
		ctx.MoveTo(x1, cy)
		ctx.LineTo(x2, cy)
		ctx.Stroke()
	}

	risk := math.Abs(entry.Price - stop.Price)
	reward := math.Abs(target.Price - entry.Price)
	rr := 0.0
	if risk > 0 {
		rr = reward / risk
	}
	ctx.SetFillColor(p.D.Stroke)
	ctx.SetFont(11, "sans-serif")
	ctx.SetTextAlign(render.AlignLeft)
	ctx.SetTextBaseline(render.BaselineBottom)
	ctx.FillText(fmt.Sprintf("R/R %.2f", rr), x1+4, math.Min(ey, ty)-4)

	if selected {
		p.drawHandles(ctx)
	}
}

// ForecastStyle selects how a projection between anchors is drawn.
type ForecastStyle int

const (
	// ForecastPath draws a dashed continuation polyline.
	ForecastPath ForecastStyle = iota
	// ForecastGhost shades the projected bar region.
	ForecastGhost
	// ForecastMeasure draws a measuring arrow with the price delta.
	ForecastMeasure
	// ForecastZone fills the trapezoid spanned by three anchors.
	ForecastZone
)

// Forecast projects expected movement forward from its anchors.
type Forecast struct {
	Base
	Style ForecastStyle `json:"style"`
}

// NewForecast creates a projection tool of the given style.
func NewForecast(typeID, displayName string, style ForecastStyle, required int) *Forecast {
	return &Forecast{Base: newBase(typeID, displayName, KindProjection, required), Style: style}
}

func (f *Forecast) Render(ctx render.Context, selected bool) {
	pp := f.pixelPoints(ctx)
	if len(pp) < 2 {
		return
	}
	switch f.Style {
	case ForecastGhost:
		x1 := math.Min(pp[0][0], pp[1][0])
		x2 := math.Max(pp[0][0], pp[1][0])
		y1 := math.Min(pp[0][1], pp[1][1])
		y2 := math.Max(pp[0][1], pp[1][1])
		ctx.Save()
		ctx.SetGlobalAlpha(0.12)
		ctx.SetFillColor(f.fillColor())
		ctx.FillRect(x1, y1, x2-x1, y2-y1)
		ctx.Restore()
		f.applyStroke(ctx)
		ctx.SetLineDash(render.Dashed.DashPattern())
		ctx.StrokeRect(x1, y1, x2-x1, y2-y1)
		ctx.SetLineDash(nil)
	case ForecastMeasure:
		delta := f.Pts[1].Price - f.Pts[0].Price
		pct := 0.0
		if f.Pts[0].Price != 0 {
			pct = delta / f.Pts[0].Price * 100
		}
		f.applyStroke(ctx)
		ctx.BeginPath()
		ctx.MoveTo(pp[0][0], pp[0][1])
		ctx.LineTo(pp[1][0], pp[1][1])
		ctx.Stroke()
		ctx.SetFillColor(f.D.Stroke)
		ctx.SetFont(11, "sans-serif")
		ctx.SetTextAlign(render.AlignCenter)
		ctx.SetTextBaseline(render.BaselineBottom)
		mx := (pp[0][0] + pp[1][0]) / 2
		my := math.Min(pp[0][1], pp[1][1])
		ctx.FillText(fmt.Sprintf("%+.2f (%+.2f%%)", delta, pct), mx, my-4)
	case ForecastZone:
		if len(pp) >= 3 {
			ctx.Save()
			ctx.SetGlobalAlpha(0.12)
			ctx.SetFillColor(f.fillColor())
			fillPolygon(ctx, pp[:3])
			ctx.Restore()
		}
		f.applyStroke(ctx)
		strokePolyline(ctx, pp, len(pp) >= 3)
	default:
		f.applyStroke(ctx)
		ctx.SetLineDash(render.Dashed.DashPattern())
		strokePolyline(ctx, pp, false)
		ctx.SetLineDash(nil)
	}

	if selected {
		f.drawHandles(ctx)
	}
}
