package primitives

import (
	"math"

	"github.com/zengeld/zengeld-canvas/render"
)

// CycleLines repeats vertical lines at the bar interval between the two
// anchors, rightward across the pane.
type CycleLines struct {
	Base
	Repetitions int `json:"repetitions"`
}

// NewCycleLines creates the cycle or time-cycle tool.
func NewCycleLines(typeID, displayName string) *CycleLines {
	return &CycleLines{Base: newBase(typeID, displayName, KindCycle, 2), Repetitions: 20}
}

func (c *CycleLines) Render(ctx render.Context, selected bool) {
	if len(c.Pts) < 2 {
		return
	}
	interval := math.Abs(c.Pts[1].Bar - c.Pts[0].Bar)
	if interval == 0 {
		return
	}
	h := ctx.ChartHeight()
	w := ctx.ChartWidth()
	dpr := ctx.DPR()
	c.applyStroke(ctx)
	for i := 0; i <= c.Repetitions; i++ {
		x := render.Crisp(ctx.BarToX(c.Pts[0].Bar+float64(i)*interval), dpr)
		if x > w {
			break
		}
		if x < 0 {
			continue
		}
		ctx.BeginPath()
		ctx.MoveTo(x, 0)
		ctx.LineTo(x, h)
		ctx.Stroke()
	}

	if selected {
		c.drawHandles(ctx)
	}
}

// SineWave oscillates between the two anchors' prices with the anchor bar
// span as its period, continuing across the pane.
type SineWave struct {
	Base
}

// NewSineWave creates the sine-wave cycle tool.
func NewSineWave(typeID, displayName string) *SineWave {
	return &SineWave{Base: newBase(typeID, displayName, KindCycle, 2)}
}

func (s *SineWave) Render(ctx render.Context, selected bool) {
	if len(s.Pts) < 2 {
		return
	}
	pp := s.pixelPoints(ctx)
	x1, y1 := pp[0][0], pp[0][1]
	x2, y2 := pp[1][0], pp[1][1]
	period := math.Abs(x2 - x1)
	if period < 1 {
		return
	}
	mid := (y1 + y2) / 2
	amp := math.Abs(y2-y1) / 2
	if amp == 0 {
		amp = 10
	}

	s.applyStroke(ctx)
	ctx.BeginPath()
	w := ctx.ChartWidth()
	for x := x1; x <= w; x += 2 {
		y := mid - amp*math.Sin((x-x1)/period*2*math.Pi)
		if x == x1 {
			ctx.MoveTo(x, y)
		} else {
			ctx.LineTo(x, y)
		}
	}
	ctx.Stroke()

	if selected {
		s.drawHandles(ctx)
	}
}
