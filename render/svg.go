package render

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

type svgState struct {
	strokeColor drawing.Color
	strokeWidth float64
	dash        []float64
	lineCap     LineCap
	lineJoin    LineJoin
	fillColor   drawing.Color
	alpha       float64
	fontSize    float64
	fontFamily  string
	align       TextAlign
	baseline    TextBaseline
	openGroups  int
}

// SVG is a drawing context that accumulates SVG markup. It implements
// Context; Document returns the complete standalone document.
type SVG struct {
	width, height float64
	dpr           float64
	barToX        func(float64) float64
	priceToY      func(float64) float64

	body      strings.Builder
	defs      strings.Builder
	path      strings.Builder
	pathEmpty bool
	state     svgState
	stack     []svgState
	rootOpen  int
	clipSeq   int
}

// NewSVG creates an empty SVG surface of the given pixel size. A dpr of zero
// or less defaults to 1. Coordinate transforms default to identity until
// SetCoordinateSystem is called.
func NewSVG(width, height, dpr float64) *SVG {
	if dpr <= 0 {
		dpr = 1
	}
	identity := func(v float64) float64 { return v }
	return &SVG{
		width:     width,
		height:    height,
		dpr:       dpr,
		barToX:    identity,
		priceToY:  identity,
		pathEmpty: true,
		state: svgState{
			strokeColor: drawing.ColorBlack,
			strokeWidth: 1,
			fillColor:   drawing.ColorBlack,
			alpha:       1,
			fontSize:    12,
			fontFamily:  "sans-serif",
		},
	}
}

// SetCoordinateSystem injects the data-to-pixel transforms used by BarToX
// and PriceToY. Panes rebind these before drawing their contents.
func (s *SVG) SetCoordinateSystem(barToX, priceToY func(float64) float64) {
	if barToX != nil {
		s.barToX = barToX
	}
	if priceToY != nil {
		s.priceToY = priceToY
	}
}

func (s *SVG) ChartWidth() float64  { return s.width }
func (s *SVG) ChartHeight() float64 { return s.height }
func (s *SVG) DPR() float64         { return s.dpr }

func (s *SVG) BarToX(bar float64) float64     { return s.barToX(bar) }
func (s *SVG) PriceToY(price float64) float64 { return s.priceToY(price) }

func num(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return fmt.Sprintf("%.2f", v)
}

// BeginPath discards any accumulated path data.
func (s *SVG) BeginPath() {
	s.path.Reset()
	s.pathEmpty = true
}

func (s *SVG) MoveTo(x, y float64) {
	fmt.Fprintf(&s.path, "M %s %s ", num(x), num(y))
	s.pathEmpty = false
}

func (s *SVG) LineTo(x, y float64) {
	if s.pathEmpty {
		s.MoveTo(x, y)
		return
	}
	fmt.Fprintf(&s.path, "L %s %s ", num(x), num(y))
}

func (s *SVG) QuadraticCurveTo(cpx, cpy, x, y float64) {
	fmt.Fprintf(&s.path, "Q %s %s %s %s ", num(cpx), num(cpy), num(x), num(y))
	s.pathEmpty = false
}

func (s *SVG) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	fmt.Fprintf(&s.path, "C %s %s %s %s %s %s ",
		num(cp1x), num(cp1y), num(cp2x), num(cp2y), num(x), num(y))
	s.pathEmpty = false
}

// Arc appends a circular arc from startAngle to endAngle (radians, screen
// clockwise). A full revolution is split into two half arcs.
func (s *SVG) Arc(cx, cy, radius, startAngle, endAngle float64) {
	s.Ellipse(EllipseParams{
		CX: cx, CY: cy,
		RadiusX: radius, RadiusY: radius,
		StartAngle: startAngle, EndAngle: endAngle,
	})
}

func (s *SVG) Ellipse(p EllipseParams) {
	sweep := p.EndAngle - p.StartAngle
	full := false
	if sweep >= 2*math.Pi-1e-9 {
		sweep = 2 * math.Pi
		full = true
	}
	rotDeg := p.Rotation * 180 / math.Pi
	point := func(angle float64) (float64, float64) {
		x := p.RadiusX * math.Cos(angle)
		y := p.RadiusY * math.Sin(angle)
		xr := x*math.Cos(p.Rotation) - y*math.Sin(p.Rotation)
		yr := x*math.Sin(p.Rotation) + y*math.Cos(p.Rotation)
		return p.CX + xr, p.CY + yr
	}
	sx, sy := point(p.StartAngle)
	if s.pathEmpty {
		s.MoveTo(sx, sy)
	} else {
		s.LineTo(sx, sy)
	}
	arcTo := func(angle float64, large bool) {
		ex, ey := point(angle)
		largeFlag := 0
		if large {
			largeFlag = 1
		}
		fmt.Fprintf(&s.path, "A %s %s %s %d 1 %s %s ",
			num(p.RadiusX), num(p.RadiusY), num(rotDeg), largeFlag, num(ex), num(ey))
	}
	if full {
		arcTo(p.StartAngle+math.Pi, false)
		arcTo(p.StartAngle+2*math.Pi-1e-6, false)
		return
	}
	arcTo(p.EndAngle, math.Abs(sweep) > math.Pi)
}

func (s *SVG) ClosePath() {
	if !s.pathEmpty {
		s.path.WriteString("Z ")
	}
}

func (s *SVG) strokeAttrs() string {
	var b strings.Builder
	fmt.Fprintf(&b, ` stroke="%s" stroke-width="%s"`, cssColor(s.state.strokeColor), num(s.state.strokeWidth))
	if len(s.state.dash) > 0 {
		parts := make([]string, len(s.state.dash))
		for i, d := range s.state.dash {
			parts[i] = num(d)
		}
		fmt.Fprintf(&b, ` stroke-dasharray="%s"`, strings.Join(parts, " "))
	}
	switch s.state.lineCap {
	case CapRound:
		b.WriteString(` stroke-linecap="round"`)
	case CapSquare:
		b.WriteString(` stroke-linecap="square"`)
	}
	switch s.state.lineJoin {
	case JoinRound:
		b.WriteString(` stroke-linejoin="round"`)
	case JoinBevel:
		b.WriteString(` stroke-linejoin="bevel"`)
	}
	return b.String()
}

func (s *SVG) alphaAttr() string {
	if s.state.alpha < 1 {
		return fmt.Sprintf(` opacity="%s"`, num(s.state.alpha))
	}
	return ""
}

// Stroke draws the current path outline. The path survives for a following
// Fill of the same geometry.
func (s *SVG) Stroke() {
	if s.pathEmpty {
		return
	}
	fmt.Fprintf(&s.body, `<path d="%s" fill="none"%s%s/>`,
		strings.TrimSpace(s.path.String()), s.strokeAttrs(), s.alphaAttr())
	s.body.WriteString("\n")
}

// Fill paints the current path interior.
func (s *SVG) Fill() {
	if s.pathEmpty {
		return
	}
	fmt.Fprintf(&s.body, `<path d="%s" fill="%s" stroke="none"%s/>`,
		strings.TrimSpace(s.path.String()), cssColor(s.state.fillColor), s.alphaAttr())
	s.body.WriteString("\n")
}

// Rect appends a rectangle subpath to the current path.
func (s *SVG) Rect(x, y, w, h float64) {
	s.MoveTo(x, y)
	s.LineTo(x+w, y)
	s.LineTo(x+w, y+h)
	s.LineTo(x, y+h)
	s.ClosePath()
}

func (s *SVG) StrokeRect(x, y, w, h float64) {
	fmt.Fprintf(&s.body, `<rect x="%s" y="%s" width="%s" height="%s" fill="none"%s%s/>`,
		num(x), num(y), num(w), num(h), s.strokeAttrs(), s.alphaAttr())
	s.body.WriteString("\n")
}

func (s *SVG) FillRect(x, y, w, h float64) {
	fmt.Fprintf(&s.body, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"%s/>`,
		num(x), num(y), num(w), num(h), cssColor(s.state.fillColor), s.alphaAttr())
	s.body.WriteString("\n")
}

func (s *SVG) SetStrokeColor(color string)     { s.state.strokeColor = ParseColor(color) }
func (s *SVG) SetStrokeWidth(width float64)    { s.state.strokeWidth = width }
func (s *SVG) SetLineDash(pattern []float64)   { s.state.dash = pattern }
func (s *SVG) SetLineCap(cap LineCap)          { s.state.lineCap = cap }
func (s *SVG) SetLineJoin(join LineJoin)       { s.state.lineJoin = join }
func (s *SVG) SetFillColor(color string)       { s.state.fillColor = ParseColor(color) }
func (s *SVG) SetGlobalAlpha(alpha float64) {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	s.state.alpha = alpha
}

func (s *SVG) SetFont(sizePx float64, family string) {
	if sizePx > 0 {
		s.state.fontSize = sizePx
	}
	if family != "" {
		s.state.fontFamily = family
	}
}

func (s *SVG) SetTextAlign(align TextAlign)          { s.state.align = align }
func (s *SVG) SetTextBaseline(baseline TextBaseline) { s.state.baseline = baseline }

func (s *SVG) textAttrs() string {
	var b strings.Builder
	fmt.Fprintf(&b, ` font-size="%s" font-family="%s" fill="%s"`,
		num(s.state.fontSize), s.state.fontFamily, cssColor(s.state.fillColor))
	switch s.state.align {
	case AlignCenter:
		b.WriteString(` text-anchor="middle"`)
	case AlignRight:
		b.WriteString(` text-anchor="end"`)
	}
	switch s.state.baseline {
	case BaselineTop:
		b.WriteString(` dominant-baseline="hanging"`)
	case BaselineMiddle:
		b.WriteString(` dominant-baseline="central"`)
	case BaselineBottom:
		b.WriteString(` dominant-baseline="text-after-edge"`)
	}
	return b.String()
}

func (s *SVG) FillText(text string, x, y float64) {
	if text == "" {
		return
	}
	fmt.Fprintf(&s.body, `<text x="%s" y="%s"%s%s>%s</text>`,
		num(x), num(y), s.textAttrs(), s.alphaAttr(), textEscaper.Replace(text))
	s.body.WriteString("\n")
}

func (s *SVG) FillTextRotated(text string, x, y, angleDeg float64) {
	if text == "" {
		return
	}
	fmt.Fprintf(&s.body, `<text x="%s" y="%s" transform="rotate(%s %s %s)"%s%s>%s</text>`,
		num(x), num(y), num(angleDeg), num(x), num(y), s.textAttrs(), s.alphaAttr(), textEscaper.Replace(text))
	s.body.WriteString("\n")
}

// MeasureText estimates rendered width from the font size. Real glyph
// metrics are out of scope for a headless backend.
func (s *SVG) MeasureText(text string) float64 {
	return 0.6 * s.state.fontSize * float64(utf8.RuneCountInString(text))
}

// Save pushes the style state and opens a group; Restore closes every group
// opened since the matching Save.
func (s *SVG) Save() {
	saved := s.state
	saved.openGroups = 0
	s.stack = append(s.stack, saved)
	s.body.WriteString("<g>\n")
}

// Restore pops the style state. Restoring with an empty stack is a no-op.
func (s *SVG) Restore() {
	if len(s.stack) == 0 {
		return
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	for i := 0; i <= top.openGroups; i++ {
		s.body.WriteString("</g>\n")
	}
	top.openGroups = 0
	s.state = top
}

func (s *SVG) openTransformGroup(transform string) {
	fmt.Fprintf(&s.body, "<g transform=\"%s\">\n", transform)
	if len(s.stack) > 0 {
		s.stack[len(s.stack)-1].openGroups++
	} else {
		s.rootOpen++
	}
}

func (s *SVG) Translate(dx, dy float64) {
	s.openTransformGroup(fmt.Sprintf("translate(%s %s)", num(dx), num(dy)))
}

func (s *SVG) Rotate(angleRad float64) {
	s.openTransformGroup(fmt.Sprintf("rotate(%s)", num(angleRad*180/math.Pi)))
}

func (s *SVG) Scale(sx, sy float64) {
	s.openTransformGroup(fmt.Sprintf("scale(%s %s)", num(sx), num(sy)))
}

// ClipRect restricts subsequent drawing to a rectangle until the enclosing
// Restore.
func (s *SVG) ClipRect(x, y, w, h float64) {
	s.clipSeq++
	id := fmt.Sprintf("clip%d", s.clipSeq)
	fmt.Fprintf(&s.defs, `<clipPath id="%s"><rect x="%s" y="%s" width="%s" height="%s"/></clipPath>`,
		id, num(x), num(y), num(w), num(h))
	s.defs.WriteString("\n")
	fmt.Fprintf(&s.body, "<g clip-path=\"url(#%s)\">\n", id)
	if len(s.stack) > 0 {
		s.stack[len(s.stack)-1].openGroups++
	} else {
		s.rootOpen++
	}
}

// Document returns the complete SVG document. Unbalanced groups are closed
// so the output always parses.
func (s *SVG) Document() string {
	var out strings.Builder
	out.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	out.WriteString("\n")
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		num(s.width), num(s.height), num(s.width), num(s.height))
	out.WriteString("\n")
	if s.defs.Len() > 0 {
		out.WriteString("<defs>\n")
		out.WriteString(s.defs.String())
		out.WriteString("</defs>\n")
	}
	out.WriteString(s.body.String())
	open := s.rootOpen
	for _, f := range s.stack {
		open += f.openGroups + 1
	}
	for i := 0; i < open; i++ {
		out.WriteString("</g>\n")
	}
	out.WriteString("</svg>\n")
	return out.String()
}
