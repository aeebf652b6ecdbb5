package primitives

import (
	"fmt"
	"strings"

	"github.com/zengeld/zengeld-canvas/render"
)

// TextNote places text at a single anchor. Boxed draws a background plate;
// Pole drops a stem from the plate to the anchor (signpost and flag tools).
type TextNote struct {
	Base
	FontSize float64 `json:"font_size"`
	Boxed    bool    `json:"boxed,omitempty"`
	Pole     bool    `json:"pole,omitempty"`
}

// NewTextNote creates a text placement tool.
func NewTextNote(typeID, displayName string, boxed, pole bool) *TextNote {
	return &TextNote{
		Base:     newBase(typeID, displayName, KindAnnotation, 1),
		FontSize: 12,
		Boxed:    boxed,
		Pole:     pole,
	}
}

func (t *TextNote) Render(ctx render.Context, selected bool) {
	if len(t.Pts) == 0 {
		return
	}
	x := ctx.BarToX(t.Pts[0].Bar)
	y := ctx.PriceToY(t.Pts[0].Price)
	text := t.D.Text
	if text == "" {
		text = t.D.DisplayName
	}

	tx, ty := x, y
	if t.Pole {
		ty = y - 40
		t.applyStroke(ctx)
		ctx.BeginPath()
		ctx.MoveTo(x, y)
		ctx.LineTo(x, ty)
		ctx.Stroke()
	}

	ctx.SetFont(t.FontSize, "sans-serif")
	if t.Boxed {
		w := ctx.MeasureText(text) + 12
		h := t.FontSize + 10
		ctx.Save()
		ctx.SetGlobalAlpha(0.9)
		ctx.SetFillColor(t.fillColor())
		ctx.FillRect(tx-w/2, ty-h, w, h)
		ctx.Restore()
		ctx.SetStrokeColor(t.D.Stroke)
		ctx.SetStrokeWidth(1)
		ctx.SetLineDash(nil)
		ctx.StrokeRect(tx-w/2, ty-h, w, h)
		ctx.SetFillColor("#ffffff")
	} else {
		ctx.SetFillColor(t.D.Stroke)
	}
	ctx.SetTextAlign(render.AlignCenter)
	ctx.SetTextBaseline(render.BaselineBottom)
	ctx.FillText(text, tx, ty-4)

	if selected {
		t.drawHandles(ctx)
	}
}

// Callout draws a text plate at the second anchor with a pointer line back
// to the first.
type Callout struct {
	Base
	FontSize float64 `json:"font_size"`
}

// NewCallout creates the callout tool.
func NewCallout(typeID, displayName string) *Callout {
	return &Callout{Base: newBase(typeID, displayName, KindAnnotation, 2), FontSize: 12}
}

func (c *Callout) Render(ctx render.Context, selected bool) {
	if len(c.Pts) < 2 {
		return
	}
	pp := c.pixelPoints(ctx)
	ax, ay := pp[0][0], pp[0][1]
	bx, by := pp[1][0], pp[1][1]
	text := c.D.Text
	if text == "" {
		text = "..."
	}

	c.applyStroke(ctx)
	ctx.BeginPath()
	ctx.MoveTo(ax, ay)
	ctx.LineTo(bx, by)
	ctx.Stroke()

	ctx.SetFont(c.FontSize, "sans-serif")
	w := ctx.MeasureText(text) + 16
	h := c.FontSize + 12
	ctx.Save()
	ctx.SetGlobalAlpha(0.9)
	ctx.SetFillColor(c.fillColor())
	ctx.FillRect(bx-w/2, by-h/2, w, h)
	ctx.Restore()
	ctx.SetStrokeWidth(1)
	ctx.SetLineDash(nil)
	ctx.StrokeRect(bx-w/2, by-h/2, w, h)

	ctx.SetFillColor("#ffffff")
	ctx.SetTextAlign(render.AlignCenter)
	ctx.SetTextBaseline(render.BaselineMiddle)
	ctx.FillText(text, bx, by)

	if selected {
		c.drawHandles(ctx)
	}
}

// PriceLabel tags an anchor with its price. WithLine extends a dashed line
// to the right edge (price note tool).
type PriceLabel struct {
	Base
	WithLine bool `json:"with_line,omitempty"`
}

// NewPriceLabel creates the price label or price note tool.
func NewPriceLabel(typeID, displayName string, withLine bool) *PriceLabel {
	return &PriceLabel{Base: newBase(typeID, displayName, KindAnnotation, 1), WithLine: withLine}
}

func (p *PriceLabel) Render(ctx render.Context, selected bool) {
	if len(p.Pts) == 0 {
		return
	}
	x := ctx.BarToX(p.Pts[0].Bar)
	y := ctx.PriceToY(p.Pts[0].Price)
	label := fmt.Sprintf("%.2f", p.Pts[0].Price)
	if p.D.Text != "" {
		label = p.D.Text + " " + label
	}

	if p.WithLine {
		p.applyStroke(ctx)
		ctx.SetLineDash(render.Dashed.DashPattern())
		ctx.BeginPath()
		ctx.MoveTo(x, y)
		ctx.LineTo(ctx.ChartWidth(), y)
		ctx.Stroke()
		ctx.SetLineDash(nil)
	}

	ctx.SetFont(11, "sans-serif")
	w := ctx.MeasureText(label) + 10
	h := 18.0
	ctx.SetFillColor(p.fillColor())
	ctx.FillRect(x, y-h/2, w, h)
	ctx.SetFillColor("#ffffff")
	ctx.SetTextAlign(render.AlignLeft)
	ctx.SetTextBaseline(render.BaselineMiddle)
	ctx.FillText(label, x+5, y)

	if selected {
		p.drawHandles(ctx)
	}
}

// TableNote lays out pipe-and-newline separated text as a bordered grid at
// the anchor.
type TableNote struct {
	Base
	FontSize float64 `json:"font_size"`
}

// NewTableNote creates the table tool.
func NewTableNote(typeID, displayName string) *TableNote {
	return &TableNote{Base: newBase(typeID, displayName, KindAnnotation, 1), FontSize: 11}
}

func (t *TableNote) Render(ctx render.Context, selected bool) {
	if len(t.Pts) == 0 {
		return
	}
	x := ctx.BarToX(t.Pts[0].Bar)
	y := ctx.PriceToY(t.Pts[0].Price)
	rows := strings.Split(t.D.Text, "\n")
	if t.D.Text == "" {
		rows = []string{t.D.DisplayName}
	}
	cols := 1
	for _, r := range rows {
		if n := strings.Count(r, "|") + 1; n > cols {
			cols = n
		}
	}
	ctx.SetFont(t.FontSize, "sans-serif")
	cellW := 0.0
	for _, r := range rows {
		for _, c := range strings.Split(r, "|") {
			if w := ctx.MeasureText(strings.TrimSpace(c)) + 12; w > cellW {
				cellW = w
			}
		}
	}
	cellH := t.FontSize + 8
	totalW := cellW * float64(cols)
	totalH := cellH * float64(len(rows))

	ctx.Save()
	ctx.SetGlobalAlpha(0.9)
	ctx.SetFillColor(t.fillColor())
	ctx.FillRect(x, y, totalW, totalH)
	ctx.Restore()

	ctx.SetStrokeColor(t.D.Stroke)
	ctx.SetStrokeWidth(1)
	ctx.SetLineDash(nil)
	ctx.StrokeRect(x, y, totalW, totalH)
	for i := 1; i < len(rows); i++ {
		ctx.BeginPath()
		ctx.MoveTo(x, y+cellH*float64(i))
		ctx.LineTo(x+totalW, y+cellH*float64(i))
		ctx.Stroke()
	}
	for i := 1; i < cols; i++ {
		ctx.BeginPath()
		ctx.MoveTo(x+cellW*float64(i), y)
		ctx.LineTo(x+cellW*float64(i), y+totalH)
		ctx.Stroke()
	}

	ctx.SetFillColor("#ffffff")
	ctx.SetTextAlign(render.AlignLeft)
	ctx.SetTextBaseline(render.BaselineMiddle)
	for ri, r := range rows {
		for ci, c := range strings.Split(r, "|") {
			ctx.FillText(strings.TrimSpace(c), x+cellW*float64(ci)+6, y+cellH*(float64(ri)+0.5))
		}
	}

	if selected {
		t.drawHandles(ctx)
	}
}
