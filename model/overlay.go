package model

import (
	"fmt"
	"strconv"
	"strings"
)

// LegendPosition places the OHLC legend in a chart corner.
type LegendPosition int

const (
	LegendTopLeft LegendPosition = iota
	LegendTopRight
	LegendBottomLeft
	LegendBottomRight
)

// Legend shows OHLC values and the change against the previous close for
// the latest visible bar.
type Legend struct {
	Position    LegendPosition
	ShowOHLC    bool
	ShowChange  bool
	ShowPercent bool
	Padding     float64
	FontSize    float64
	// Color overrides the theme text colour when non-empty.
	Color string
}

// DefaultLegend returns a top-left legend with every part enabled.
func DefaultLegend() Legend {
	return Legend{
		Position:    LegendTopLeft,
		ShowOHLC:    true,
		ShowChange:  true,
		ShowPercent: true,
		Padding:     10,
		FontSize:    12,
	}
}

// Format renders the legend line for bar, e.g.
// "O: 100.00  H: 105.00  L: 98.00  C: 103.00  +3.00 (+3.00%)".
// hasPrev gates the change parts.
func (l Legend) Format(bar Bar, prevClose float64, hasPrev bool, precision int) string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', precision, 64) }
	parts := make([]string, 0, 6)
	if l.ShowOHLC {
		parts = append(parts,
			"O: "+f(bar.Open), "H: "+f(bar.High), "L: "+f(bar.Low), "C: "+f(bar.Close))
	}
	if hasPrev && (l.ShowChange || l.ShowPercent) {
		change := bar.Close - prevClose
		sign := ""
		if change >= 0 {
			sign = "+"
		}
		if l.ShowChange {
			parts = append(parts, sign+f(change))
		}
		if l.ShowPercent && prevClose != 0 {
			parts = append(parts, fmt.Sprintf("(%s%.2f%%)", sign, change/prevClose*100))
		}
	}
	return strings.Join(parts, "  ")
}

// HorzAlign is the horizontal anchor of a watermark.
type HorzAlign int

const (
	HorzLeft HorzAlign = iota
	HorzCenter
	HorzRight
)

// VertAlign is the vertical anchor of a watermark.
type VertAlign int

const (
	VertTop VertAlign = iota
	VertCenter
	VertBottom
)

// WatermarkLine is one line of watermark text with its own size and colour.
type WatermarkLine struct {
	Text     string
	Color    string
	FontSize float64
}

// Watermark is background branding text painted behind the series, with
// multi-line support.
type Watermark struct {
	Lines   []WatermarkLine
	Horz    HorzAlign
	Vert    VertAlign
	Padding float64
}

// NewWatermark builds a centred single-line watermark.
func NewWatermark(text, color string, fontSize float64) Watermark {
	return Watermark{
		Lines:   []WatermarkLine{{Text: text, Color: color, FontSize: fontSize}},
		Horz:    HorzCenter,
		Vert:    VertCenter,
		Padding: 20,
	}
}

// TotalHeight is the stacked height of all lines at 1.2 line height.
func (w Watermark) TotalHeight() float64 {
	h := 0.0
	for _, line := range w.Lines {
		h += line.FontSize * 1.2
	}
	return h
}

// CompareSeries overlays another symbol as a percent-change line. Values
// are percent offsets from the series' own base price so symbols at
// different price levels share one scale.
type CompareSeries struct {
	Symbol    string
	Name      string
	Bars      []Bar
	Color     string
	LineWidth float64
	BasePrice float64
}

// NewCompareSeries builds a compare series based at the first bar's close.
func NewCompareSeries(symbol string, bars []Bar, color string) CompareSeries {
	base := 100.0
	if len(bars) > 0 {
		base = bars[0].Close
	}
	return CompareSeries{
		Symbol:    symbol,
		Name:      symbol,
		Bars:      bars,
		Color:     color,
		LineWidth: 2,
		BasePrice: base,
	}
}

// Percent converts a price of this series to its percent offset from the
// base. A zero base yields 0.
func (c CompareSeries) Percent(price float64) float64 {
	if c.BasePrice == 0 {
		return 0
	}
	return (price - c.BasePrice) / c.BasePrice * 100
}

// CloseAt returns the close for the bar matching the timestamp, using
// ok=false for gaps in the compared symbol's data.
func (c CompareSeries) CloseAt(timestamp int64) (float64, bool) {
	for _, b := range c.Bars {
		if b.Time == timestamp {
			return b.Close, true
		}
	}
	return 0, false
}

// Rebase moves the base price to the bar at the timestamp, if present.
func (c *CompareSeries) Rebase(timestamp int64) {
	if close, ok := c.CloseAt(timestamp); ok {
		c.BasePrice = close
	}
}
