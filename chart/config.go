package chart

import (
	"fmt"

	"github.com/zengeld/zengeld-canvas/coords"
	"github.com/zengeld/zengeld-canvas/model"
)

const (
	// DefaultPriceScaleWidth is the strip reserved for price labels on
	// the right edge.
	DefaultPriceScaleWidth = 70.0
	// DefaultTimeScaleHeight is the strip reserved for time labels at
	// the bottom edge.
	DefaultTimeScaleHeight = 28.0
)

// Layout sizes the axis label strips.
type Layout struct {
	PriceScaleWidth float64
	TimeScaleHeight float64
}

// SeriesStyle configures the main price series painter.
type SeriesStyle struct {
	Type      model.SeriesType
	UpColor   string
	DownColor string
	LineColor string
	LineWidth float64
	// Baseline is the reference price for the baseline series type.
	// Zero means the midpoint of the visible range.
	Baseline float64
}

// Config is the full input of one chart render.
type Config struct {
	Width     float64
	Height    float64
	DPR       float64
	Theme     Theme
	Series    SeriesStyle
	ScaleMode coords.ScaleMode
	Layout    Layout
	// BarSpacing pins the horizontal zoom; zero fits all bars.
	BarSpacing float64
	ShowGrid   bool
	Title      string
}

// DefaultConfig returns a dark-themed candlestick configuration at the
// given size.
func DefaultConfig(width, height float64) Config {
	return Config{
		Width:  width,
		Height: height,
		DPR:    1,
		Theme:  DarkTheme(),
		Series: SeriesStyle{Type: model.Candlestick},
		Layout: Layout{
			PriceScaleWidth: DefaultPriceScaleWidth,
			TimeScaleHeight: DefaultTimeScaleHeight,
		},
		ShowGrid: true,
	}
}

// normalize fills zero-valued fields with defaults and validates the
// dimensions.
func (c Config) normalize() (Config, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return c, fmt.Errorf("invalid chart size %vx%v: dimensions must be positive", c.Width, c.Height)
	}
	if c.DPR <= 0 {
		c.DPR = 1
	}
	if c.Theme == (Theme{}) {
		c.Theme = DarkTheme()
	}
	if c.Layout.PriceScaleWidth <= 0 {
		c.Layout.PriceScaleWidth = DefaultPriceScaleWidth
	}
	if c.Layout.TimeScaleHeight <= 0 {
		c.Layout.TimeScaleHeight = DefaultTimeScaleHeight
	}
	if c.Series.UpColor == "" {
		c.Series.UpColor = c.Theme.UpColor
	}
	if c.Series.DownColor == "" {
		c.Series.DownColor = c.Theme.DownColor
	}
	if c.Series.LineColor == "" {
		c.Series.LineColor = c.Theme.Accent
	}
	if c.Series.LineWidth <= 0 {
		c.Series.LineWidth = 2
	}
	return c, nil
}
