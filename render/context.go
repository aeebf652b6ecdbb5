// Package render defines the drawing-context abstraction primitives draw
// against, plus the SVG backend that implements it.
package render

import "math"

// TextAlign controls horizontal text anchoring.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// TextBaseline controls vertical text anchoring.
type TextBaseline int

const (
	BaselineAlphabetic TextBaseline = iota
	BaselineTop
	BaselineMiddle
	BaselineBottom
)

// LineCap selects the stroke end-cap shape.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin selects the stroke corner shape.
type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// LineStyle selects the dash pattern of a stroke.
type LineStyle int

const (
	Solid LineStyle = iota
	Dashed
	Dotted
	LargeDashed
	SparseDotted
)

// DashPattern returns the dash array for the style, nil for solid.
func (s LineStyle) DashPattern() []float64 {
	switch s {
	case Dashed:
		return []float64{8, 4}
	case Dotted:
		return []float64{2, 2}
	case LargeDashed:
		return []float64{12, 6}
	case SparseDotted:
		return []float64{2, 8}
	default:
		return nil
	}
}

// EllipseParams describes a full or partial ellipse.
type EllipseParams struct {
	CX, CY     float64
	RadiusX    float64
	RadiusY    float64
	Rotation   float64 // radians
	StartAngle float64 // radians
	EndAngle   float64 // radians
}

// Context is the platform-agnostic drawing surface. Every primitive renders
// through it; coordinate transforms are part of the context so primitives
// work in data space where convenient and pixel space elsewhere.
type Context interface {
	ChartWidth() float64
	ChartHeight() float64
	DPR() float64

	// BarToX and PriceToY map data space to pixels. Fractional bar
	// indices interpolate between bar centres.
	BarToX(bar float64) float64
	PriceToY(price float64) float64

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticCurveTo(cpx, cpy, x, y float64)
	BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64)
	Arc(cx, cy, radius, startAngle, endAngle float64)
	Ellipse(p EllipseParams)
	ClosePath()
	Stroke()
	Fill()

	Rect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)

	SetStrokeColor(color string)
	SetStrokeWidth(width float64)
	SetLineDash(pattern []float64)
	SetLineCap(cap LineCap)
	SetLineJoin(join LineJoin)
	SetFillColor(color string)
	SetGlobalAlpha(alpha float64)

	SetFont(sizePx float64, family string)
	SetTextAlign(align TextAlign)
	SetTextBaseline(baseline TextBaseline)
	FillText(text string, x, y float64)
	FillTextRotated(text string, x, y, angleDeg float64)
	MeasureText(text string) float64

	Save()
	Restore()
	Translate(dx, dy float64)
	Rotate(angleRad float64)
	Scale(sx, sy float64)
	ClipRect(x, y, w, h float64)
}

// Crisp aligns a coordinate to the pixel grid so a 1px stroke lands on a
// whole device pixel instead of bleeding across two.
func Crisp(v, dpr float64) float64 {
	if dpr <= 0 {
		dpr = 1
	}
	return math.Round(v*dpr)/dpr + 0.5/dpr
}

// CrispRect pixel-aligns both corners of a rectangle.
func CrispRect(x, y, w, h, dpr float64) (float64, float64, float64, float64) {
	x1 := Crisp(x, dpr)
	y1 := Crisp(y, dpr)
	x2 := Crisp(x+w, dpr)
	y2 := Crisp(y+h, dpr)
	return x1, y1, x2 - x1, y2 - y1
}
