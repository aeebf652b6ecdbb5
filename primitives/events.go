package primitives

import (
	"math"

	"github.com/zengeld/zengeld-canvas/render"
)

var eventGlyphs = map[string]string{
	"crossover_event":     "X",
	"breakdown_event":     "B",
	"divergence_event":    "D",
	"pattern_match_event": "P",
	"zone_event":          "Z",
	"volume_event":        "V",
	"trend_event":         "T",
	"momentum_event":      "M",
	"custom_event":        "*",
}

var eventColors = map[string]string{
	"crossover_event":     "#2196f3",
	"breakdown_event":     "#ef5350",
	"divergence_event":    "#ff9800",
	"pattern_match_event": "#9c27b0",
	"zone_event":          "#00bcd4",
	"volume_event":        "#607d8b",
	"trend_event":         "#26a69a",
	"momentum_event":      "#ffc107",
	"custom_event":        "#787b86",
}

// EventMarker badges a detected market event at one anchor: a filled circle
// with a glyph, plus the optional event label.
type EventMarker struct {
	Base
	Size float64 `json:"size"`
}

// NewEventMarker creates a marker for the given event type ID.
func NewEventMarker(typeID, displayName string) *EventMarker {
	m := &EventMarker{Base: newBase(typeID, displayName, KindEvent, 1), Size: 9}
	if c, ok := eventColors[typeID]; ok {
		m.D.Stroke = c
	}
	return m
}

func (m *EventMarker) Render(ctx render.Context, selected bool) {
	if len(m.Pts) == 0 {
		return
	}
	x := ctx.BarToX(m.Pts[0].Bar)
	y := ctx.PriceToY(m.Pts[0].Price)

	ctx.SetFillColor(m.fillColor())
	ctx.BeginPath()
	ctx.Arc(x, y, m.Size, 0, 2*math.Pi)
	ctx.Fill()
	ctx.SetStrokeColor("#ffffff")
	ctx.SetStrokeWidth(1)
	ctx.SetLineDash(nil)
	ctx.BeginPath()
	ctx.Arc(x, y, m.Size, 0, 2*math.Pi)
	ctx.Stroke()

	glyph := eventGlyphs[m.D.TypeID]
	if glyph == "" {
		glyph = "*"
	}
	ctx.SetFillColor("#ffffff")
	ctx.SetFont(m.Size, "sans-serif")
	ctx.SetTextAlign(render.AlignCenter)
	ctx.SetTextBaseline(render.BaselineMiddle)
	ctx.FillText(glyph, x, y)

	if m.D.Text != "" {
		ctx.SetFillColor(m.D.Stroke)
		ctx.SetFont(10, "sans-serif")
		ctx.SetTextBaseline(render.BaselineTop)
		ctx.FillText(m.D.Text, x, y+m.Size+3)
	}

	if selected {
		m.drawHandles(ctx)
	}
}
