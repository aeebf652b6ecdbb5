package primitives

import (
	"fmt"
	"math"

	"github.com/zengeld/zengeld-canvas/render"
)

var fibLevelColors = []string{
	"#787b86", "#f23645", "#ff9800", "#4caf50", "#089981", "#00bcd4", "#787b86",
	"#2196f3", "#673ab7", "#e91e63", "#9c27b0",
}

// DefaultFibLevels returns the standard retracement ratios.
func DefaultFibLevels() []LevelConfig {
	return fibLevels([]float64{0, 0.236, 0.382, 0.5, 0.618, 0.786, 1})
}

// ExtendedFibLevels returns the standard ratios plus common extensions.
func ExtendedFibLevels() []LevelConfig {
	return fibLevels([]float64{0, 0.236, 0.382, 0.5, 0.618, 0.786, 1, 1.272, 1.618, 2, 2.618})
}

func fibLevels(values []float64) []LevelConfig {
	out := make([]LevelConfig, len(values))
	for i, v := range values {
		out[i] = LevelConfig{
			Value:   v,
			Color:   fibLevelColors[i%len(fibLevelColors)],
			Visible: true,
			Label:   trimFloat(v),
		}
	}
	return out
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

// FibRetracement draws horizontal ratio levels across the swing between two
// anchors. With three anchors the ratios project past the second swing
// instead (trend-based extension).
type FibRetracement struct {
	Base
	Levels      []LevelConfig `json:"levels"`
	ShowPrices  bool          `json:"show_prices"`
	ShowPercent bool          `json:"show_percent"`
	ExtendRight bool          `json:"extend_right,omitempty"`
}

// NewFibRetracement creates the retracement (2 anchors) or trend-based
// extension (3 anchors) tool.
func NewFibRetracement(typeID, displayName string, required int, levels []LevelConfig) *FibRetracement {
	return &FibRetracement{
		Base:        newBase(typeID, displayName, KindFibonacci, required),
		Levels:      levels,
		ShowPrices:  true,
		ShowPercent: true,
	}
}

func (f *FibRetracement) LevelConfigs() []LevelConfig { return f.Levels }

// levelPrice resolves the price of one ratio.
func (f *FibRetracement) levelPrice(level float64) float64 {
	p1 := f.Pts[0].Price
	p2 := f.Pts[1].Price
	if f.required >= 3 && len(f.Pts) >= 3 {
		// Project the first swing's span from the third anchor.
		return f.Pts[2].Price + (p2-p1)*level
	}
	return p2 - (p2-p1)*level
}

func (f *FibRetracement) Render(ctx render.Context, selected bool) {
	if len(f.Pts) < 2 {
		return
	}
	pp := f.pixelPoints(ctx)
	x1 := math.Min(pp[0][0], pp[len(pp)-1][0])
	x2 := math.Max(pp[0][0], pp[len(pp)-1][0])
	if f.ExtendRight {
		x2 = ctx.ChartWidth()
	}

	ctx.Save()
	ctx.SetGlobalAlpha(0.35)
	ctx.SetStrokeColor(f.D.Stroke)
	ctx.SetStrokeWidth(1)
	ctx.SetLineDash(render.Dashed.DashPattern())
	strokePolyline(ctx, pp, false)
	ctx.Restore()

	dpr := ctx.DPR()
	for _, lv := range f.Levels {
		if !lv.Visible {
			continue
		}
		price := f.levelPrice(lv.Value)
		y := render.Crisp(ctx.PriceToY(price), dpr)
		ctx.SetStrokeColor(lv.Color)
		ctx.SetStrokeWidth(1)
		ctx.SetLineDash(f.D.Style.DashPattern())
		ctx.BeginPath()
		ctx.MoveTo(x1, y)
		ctx.LineTo(x2, y)
		ctx.Stroke()

		label := lv.Label
		if f.ShowPrices {
			label = fmt.Sprintf("%s (%.2f)", label, price)
		}
		ctx.SetFillColor(lv.Color)
		ctx.SetFont(10, "sans-serif")
		ctx.SetTextAlign(render.AlignLeft)
		ctx.SetTextBaseline(render.BaselineBottom)
		ctx.FillText(label, x1+4, y-2)
	}

	if selected {
		f.drawHandles(ctx)
	}
}

// FibFan draws rays from the first anchor through ratio fractions of the
// swing to the second. Wedge closes the fan with an arc.
type FibFan struct {
	Base
	Levels []LevelConfig `json:"levels"`
	Wedge  bool          `json:"wedge,omitempty"`
	Grid   bool          `json:"grid,omitempty"`
}

// NewFibFan creates a fan, speed-resistance or wedge tool.
func NewFibFan(typeID, displayName string, wedge, grid bool) *FibFan {
	return &FibFan{
		Base:   newBase(typeID, displayName, KindFibonacci, 2),
		Levels: fibLevels([]float64{0.236, 0.382, 0.5, 0.618, 0.786}),
		Wedge:  wedge,
		Grid:   grid,
	}
}

func (f *FibFan) LevelConfigs() []LevelConfig { return f.Levels }

func (f *FibFan) Render(ctx render.Context, selected bool) {
	if len(f.Pts) < 2 {
		return
	}
	pp := f.pixelPoints(ctx)
	x1, y1 := pp[0][0], pp[0][1]
	x2, y2 := pp[1][0], pp[1][1]

	f.applyStroke(ctx)
	ctx.BeginPath()
	ctx.MoveTo(x1, y1)
	ctx.LineTo(x2, y2)
	ctx.Stroke()

	for _, lv := range f.Levels {
		if !lv.Visible {
			continue
		}
		ty := y1 + (y2-y1)*lv.Value
		ex1, ey1, ex2, ey2 := extendSegment(ctx, x1, y1, x2, ty, false, true)
		ctx.SetStrokeColor(lv.Color)
		ctx.SetStrokeWidth(1)
		ctx.BeginPath()
		ctx.MoveTo(ex1, ey1)
		ctx.LineTo(ex2, ey2)
		ctx.Stroke()
	}
	if f.Grid {
		ctx.SetStrokeColor(f.D.Stroke)
		ctx.SetStrokeWidth(1)
		ctx.SetLineDash(render.Dotted.DashPattern())
		for _, lv := range f.Levels {
			tx := x1 + (x2-x1)*lv.Value
			ctx.BeginPath()
			ctx.MoveTo(tx, math.Min(y1, y2))
			ctx.LineTo(tx, math.Max(y1, y2))
			ctx.Stroke()
		}
		ctx.SetLineDash(nil)
	}
	if f.Wedge {
		radius := math.Hypot(x2-x1, y2-y1)
		start := math.Atan2(y2-y1, x2-x1)
		f.applyStroke(ctx)
		ctx.BeginPath()
		ctx.Arc(x1, y1, radius, math.Min(start, 0), math.Max(start, 0))
		ctx.Stroke()
	}

	if selected {
		f.drawHandles(ctx)
	}
}

var fibSequence = []float64{0, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144, 233}

// FibTimeZones drops vertical lines at Fibonacci bar counts from the first
// anchor. Trend-time mode scales the counts by the anchor pair's bar span.
type FibTimeZones struct {
	Base
	TrendUnit bool `json:"trend_unit,omitempty"`
}

// NewFibTimeZones creates a time-zone or trend-time tool.
func NewFibTimeZones(typeID, displayName string, trendUnit bool) *FibTimeZones {
	return &FibTimeZones{Base: newBase(typeID, displayName, KindFibonacci, 2), TrendUnit: trendUnit}
}

func (f *FibTimeZones) Render(ctx render.Context, selected bool) {
	if len(f.Pts) < 2 {
		return
	}
	unit := 1.0
	if f.TrendUnit {
		unit = math.Abs(f.Pts[1].Bar - f.Pts[0].Bar)
		if unit == 0 {
			unit = 1
		}
	}
	h := ctx.ChartHeight()
	w := ctx.ChartWidth()
	dpr := ctx.DPR()
	f.applyStroke(ctx)
	for i, n := range fibSequence {
		x := render.Crisp(ctx.BarToX(f.Pts[0].Bar+n*unit), dpr)
		if x > w {
			break
		}
		ctx.BeginPath()
		ctx.MoveTo(x, 0)
		ctx.LineTo(x, h)
		ctx.Stroke()
		ctx.SetFillColor(f.D.Stroke)
		ctx.SetFont(10, "sans-serif")
		ctx.SetTextAlign(render.AlignLeft)
		ctx.SetTextBaseline(render.BaselineTop)
		ctx.FillText(trimFloat(fibSequence[i]), x+2, 2)
	}

	if selected {
		f.drawHandles(ctx)
	}
}

// FibCircles rings the anchor pair with ratio-scaled ellipses. Arcs draws
// half rings from the second anchor; Spiral winds quarter arcs of growing
// radius instead.
type FibCircles struct {
	Base
	Levels []LevelConfig `json:"levels"`
	Arcs   bool          `json:"arcs,omitempty"`
	Spiral bool          `json:"spiral,omitempty"`
}

// NewFibCircles creates the circle, arc or spiral tool.
func NewFibCircles(typeID, displayName string, arcs, spiral bool) *FibCircles {
	return &FibCircles{
		Base:   newBase(typeID, displayName, KindFibonacci, 2),
		Levels: fibLevels([]float64{0.236, 0.382, 0.5, 0.618, 0.786, 1}),
		Arcs:   arcs,
		Spiral: spiral,
	}
}

func (f *FibCircles) LevelConfigs() []LevelConfig { return f.Levels }

func (f *FibCircles) Render(ctx render.Context, selected bool) {
	if len(f.Pts) < 2 {
		return
	}
	pp := f.pixelPoints(ctx)
	x1, y1 := pp[0][0], pp[0][1]
	x2, y2 := pp[1][0], pp[1][1]

	if f.Spiral {
		f.applyStroke(ctx)
		radius := math.Hypot(x2-x1, y2-y1)
		angle := math.Atan2(y2-y1, x2-x1)
		ctx.BeginPath()
		for i := 0; i < 8; i++ {
			r := radius * math.Pow(1.618, float64(i)/4)
			ctx.Arc(x1, y1, r, angle, angle+math.Pi/2)
			angle += math.Pi / 2
		}
		ctx.Stroke()
	} else {
		cx, cy := (x1+x2)/2, (y1+y2)/2
		rx := math.Abs(x2-x1) / 2
		ry := math.Abs(y2-y1) / 2
		if f.Arcs {
			cx, cy = x2, y2
			rx = math.Hypot(x2-x1, y2-y1)
			ry = rx
		}
		for _, lv := range f.Levels {
			if !lv.Visible {
				continue
			}
			ctx.SetStrokeColor(lv.Color)
			ctx.SetStrokeWidth(1)
			ctx.BeginPath()
			end := 2 * math.Pi
			if f.Arcs {
				end = math.Pi
			}
			ctx.Ellipse(render.EllipseParams{
				CX: cx, CY: cy,
				RadiusX:    rx * lv.Value,
				RadiusY:    ry * lv.Value,
				StartAngle: 0, EndAngle: end,
			})
			ctx.Stroke()
		}
	}

	if selected {
		f.drawHandles(ctx)
	}
}
