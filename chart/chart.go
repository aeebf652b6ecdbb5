// Package chart composes bars, indicators, drawing primitives, and trade
// signals into self-contained SVG documents.
package chart

import (
	"github.com/zengeld/zengeld-canvas/coords"
	"github.com/zengeld/zengeld-canvas/model"
	"github.com/zengeld/zengeld-canvas/primitives"
)

// Chart is a fluent builder over Config and Renderer for the common case.
// Callers needing full control can construct a Renderer directly.
type Chart struct {
	cfg       Config
	bars      []model.Bar
	inds      []model.Indicator
	prims     []primitives.Primitive
	sigs      []model.Signal
	compares  []model.CompareSeries
	legend    *model.Legend
	watermark *model.Watermark
}

// New starts a dark-themed candlestick chart at the given pixel size.
func New(width, height float64) *Chart {
	return &Chart{cfg: DefaultConfig(width, height)}
}

// Bars sets the price data.
func (c *Chart) Bars(bars []model.Bar) *Chart {
	c.bars = bars
	return c
}

// Series selects the main series painter and its colours.
func (c *Chart) Series(style SeriesStyle) *Chart {
	c.cfg.Series = style
	return c
}

// SeriesType switches the painter, keeping the configured colours.
func (c *Chart) SeriesType(t model.SeriesType) *Chart {
	c.cfg.Series.Type = t
	return c
}

// Theme replaces the colour theme.
func (c *Chart) Theme(t Theme) *Chart {
	c.cfg.Theme = t
	return c
}

// DPR sets the device pixel ratio used for crisp line placement.
func (c *Chart) DPR(dpr float64) *Chart {
	c.cfg.DPR = dpr
	return c
}

// ScaleMode switches the vertical transform of the price scale.
func (c *Chart) ScaleMode(mode coords.ScaleMode) *Chart {
	c.cfg.ScaleMode = mode
	return c
}

// BarSpacing pins the horizontal zoom in pixels per bar. Zero fits all bars.
func (c *Chart) BarSpacing(spacing float64) *Chart {
	c.cfg.BarSpacing = spacing
	return c
}

// Grid toggles the background grid.
func (c *Chart) Grid(show bool) *Chart {
	c.cfg.ShowGrid = show
	return c
}

// Title sets the text drawn in the top-left corner.
func (c *Chart) Title(title string) *Chart {
	c.cfg.Title = title
	return c
}

// Overlay adds an indicator painted over the price series.
func (c *Chart) Overlay(ind model.Indicator) *Chart {
	ind.Placement = model.Overlay
	c.inds = append(c.inds, ind)
	return c
}

// OverlayBottom adds an indicator pinned under the price series, volume
// style.
func (c *Chart) OverlayBottom(ind model.Indicator) *Chart {
	ind.Placement = model.OverlayBottom
	c.inds = append(c.inds, ind)
	return c
}

// SubPane adds an indicator in its own pane below the price pane.
func (c *Chart) SubPane(ind model.Indicator) *Chart {
	ind.Placement = model.SubPane
	c.inds = append(c.inds, ind)
	return c
}

// AddPrimitive attaches a drawing primitive.
func (c *Chart) AddPrimitive(p primitives.Primitive) *Chart {
	c.prims = append(c.prims, p)
	return c
}

// AddSignal attaches a trade signal marker.
func (c *Chart) AddSignal(s model.Signal) *Chart {
	c.sigs = append(c.sigs, s)
	return c
}

// Compare adds a comparison series drawn against the main series in
// percent terms. The first comparison switches a normal price scale to
// percent mode.
func (c *Chart) Compare(cs model.CompareSeries) *Chart {
	c.compares = append(c.compares, cs)
	return c
}

// Legend shows an OHLC readout for the last visible bar.
func (c *Chart) Legend(lg model.Legend) *Chart {
	c.legend = &lg
	return c
}

// Watermark draws text behind the series.
func (c *Chart) Watermark(wm model.Watermark) *Chart {
	c.watermark = &wm
	return c
}

// Render produces the SVG document.
func (c *Chart) Render() (string, error) {
	r, err := NewRenderer(c.cfg, c.bars)
	if err != nil {
		return "", err
	}
	for _, ind := range c.inds {
		r.AddIndicator(ind)
	}
	for _, p := range c.prims {
		r.AddPrimitive(p)
	}
	for _, s := range c.sigs {
		r.AddSignal(s)
	}
	for _, cs := range c.compares {
		r.AddCompare(cs)
	}
	if c.legend != nil {
		r.SetLegend(*c.legend)
	}
	if c.watermark != nil {
		r.SetWatermark(*c.watermark)
	}
	return r.RenderSVG()
}
