package chart

import (
	"fmt"
	"math"
	"sort"

	"github.com/zengeld/zengeld-canvas/coords"
	"github.com/zengeld/zengeld-canvas/internal/logger"
	"github.com/zengeld/zengeld-canvas/model"
	"github.com/zengeld/zengeld-canvas/primitives"
	"github.com/zengeld/zengeld-canvas/render"
)

// Renderer composes a full chart scene into an SVG document. Stages run in
// a fixed order: background, grid, series, overlay indicators, primitives,
// signals, sub-panes, then axis labels.
type Renderer struct {
	cfg        Config
	bars       []model.Bar
	indicators []model.Indicator
	prims      []primitives.Primitive
	signals    []model.Signal
	compares   []model.CompareSeries
	legend     *model.Legend
	watermark  *model.Watermark
	log        *logger.Logger
}

// NewRenderer validates the configuration and prepares a renderer over the
// given bars. An empty bar slice is allowed and produces a placeholder
// document.
func NewRenderer(cfg Config, bars []model.Bar) (*Renderer, error) {
	normalized, err := cfg.normalize()
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	return &Renderer{
		cfg:  normalized,
		bars: bars,
		log:  logger.Global().WithComponent("renderer"),
	}, nil
}

// AddIndicator appends a caller-computed indicator.
func (r *Renderer) AddIndicator(ind model.Indicator) {
	r.indicators = append(r.indicators, ind)
}

// AddPrimitive appends a drawing primitive.
func (r *Renderer) AddPrimitive(p primitives.Primitive) {
	if p != nil {
		r.prims = append(r.prims, p)
	}
}

// AddSignal appends a trade signal marker.
func (r *Renderer) AddSignal(s model.Signal) {
	r.signals = append(r.signals, s)
}

// AddCompare overlays another symbol as a percent-change line. The first
// compare series switches a normal-mode price scale to percent so both
// symbols share one axis.
func (r *Renderer) AddCompare(cs model.CompareSeries) {
	r.compares = append(r.compares, cs)
}

// SetLegend enables the OHLC legend readout.
func (r *Renderer) SetLegend(lg model.Legend) {
	r.legend = &lg
}

// SetWatermark paints branding text behind the series.
func (r *Renderer) SetWatermark(wm model.Watermark) {
	r.watermark = &wm
}

// RenderSVG renders the scene. Identical inputs produce identical output.
func (r *Renderer) RenderSVG() (string, error) {
	cfg := r.cfg
	svg := render.NewSVG(cfg.Width, cfg.Height, cfg.DPR)

	svg.SetFillColor(cfg.Theme.Background)
	svg.FillRect(0, 0, cfg.Width, cfg.Height)

	if len(r.bars) == 0 {
		svg.SetFillColor(cfg.Theme.Text)
		svg.SetFont(14, "sans-serif")
		svg.SetTextAlign(render.AlignCenter)
		svg.SetTextBaseline(render.BaselineMiddle)
		svg.FillText("No data", cfg.Width/2, cfg.Height/2)
		return svg.Document(), nil
	}

	plotW := cfg.Width - cfg.Layout.PriceScaleWidth
	plotH := cfg.Height - cfg.Layout.TimeScaleHeight

	subpanes := make([]model.Indicator, 0)
	for _, ind := range r.indicators {
		if ind.Placement == model.SubPane {
			subpanes = append(subpanes, ind)
		}
	}
	ratioSum := 0.0
	for i := range subpanes {
		if subpanes[i].HeightRatio <= 0 {
			subpanes[i].HeightRatio = 0.2
		}
		ratioSum += subpanes[i].HeightRatio
	}
	if ratioSum > 0.6 {
		// Keep the price pane at least 40% of the plot.
		scale := 0.6 / ratioSum
		for i := range subpanes {
			subpanes[i].HeightRatio *= scale
		}
		ratioSum = 0.6
	}
	pricePaneH := plotH * (1 - ratioSum)

	vp, err := coords.NewViewport(plotW, pricePaneH, len(r.bars))
	if err != nil {
		return "", fmt.Errorf("failed to build viewport: %w", err)
	}
	ts := vp.TimeScale()
	if cfg.BarSpacing > 0 {
		ts.SetBarSpacing(cfg.BarSpacing)
		ts.ScrollToEnd()
	} else {
		ts.FitAll(1)
	}

	bars := r.bars
	if cfg.Series.Type == model.HeikinAshiCandles {
		bars = model.HeikinAshi(r.bars)
	}

	start, end := vp.VisibleRange()
	lo, hi := r.priceBounds(bars, start, end)
	vp.AutoFitPrice(lo, hi)
	ps := vp.PriceScale()
	mode := cfg.ScaleMode
	if len(r.compares) > 0 && mode == coords.ModeNormal {
		mode = coords.ModePercent
	}
	ps.SetMode(mode)
	if mode == coords.ModePercent || mode == coords.ModeIndexedTo100 {
		ps.SetBasePrice(bars[start].Close)
	}

	svg.SetCoordinateSystem(vp.BarToX, vp.PriceToY)

	if cfg.ShowGrid {
		r.paintGrid(svg, vp, plotW, pricePaneH)
	}
	if r.watermark != nil {
		paintWatermark(svg, *r.watermark, plotW, pricePaneH)
	}

	r.log.Debugf("rendering %d bars, %d primitives, %d signals", len(bars), len(r.prims), len(r.signals))

	svg.Save()
	svg.ClipRect(0, 0, plotW, pricePaneH)
	paintSeries(svg, cfg, bars, start, end, vp, pricePaneH)

	for _, ind := range r.indicators {
		switch ind.Placement {
		case model.Overlay:
			paintOverlay(svg, ind, start, end, vp)
		case model.OverlayBottom:
			paintOverlayBottom(svg, ind, start, end, vp, pricePaneH)
		}
	}

	paintCompares(svg, r.compares, bars, start, end, vp)
	r.paintPrimitives(svg)
	r.paintSignals(svg, vp)
	svg.Restore()

	paneTop := pricePaneH
	for _, ind := range subpanes {
		paneH := plotH * ind.HeightRatio
		paintSubPane(svg, cfg, ind, start, end, vp, paneTop, paneH, plotW)
		paneTop += paneH
	}

	r.paintScales(svg, vp, plotW, plotH, pricePaneH)

	if cfg.Title != "" {
		svg.SetFillColor(cfg.Theme.Text)
		svg.SetFont(13, "sans-serif")
		svg.SetTextAlign(render.AlignLeft)
		svg.SetTextBaseline(render.BaselineTop)
		svg.FillText(cfg.Title, 8, 8)
	}
	if r.legend != nil {
		yOffset := 0.0
		if cfg.Title != "" && (r.legend.Position == model.LegendTopLeft || r.legend.Position == model.LegendTopRight) {
			// Keep clear of the title row.
			yOffset = 18
		}
		paintLegend(svg, *r.legend, cfg.Theme, bars, end, plotW, pricePaneH, yOffset)
	}

	return svg.Document(), nil
}

// priceBounds finds the vertical data range over the visible window,
// including overlay indicator values.
func (r *Renderer) priceBounds(bars []model.Bar, start, end int) (float64, float64) {
	lo, hi, ok := model.PriceRange(bars[start:end])
	if !ok {
		return 0, 1
	}
	for _, ind := range r.indicators {
		if ind.Placement != model.Overlay {
			continue
		}
		ilo, ihi, iok := ind.ValueRange(start, end)
		if !iok {
			continue
		}
		if ilo < lo {
			lo = ilo
		}
		if ihi > hi {
			hi = ihi
		}
	}
	return lo, hi
}

func (r *Renderer) paintGrid(svg *render.SVG, vp *coords.Viewport, plotW, plotH float64) {
	dpr := svg.DPR()
	svg.SetStrokeColor(r.cfg.Theme.Grid)
	svg.SetStrokeWidth(1)
	svg.SetLineDash(nil)
	for _, tick := range vp.PriceScale().Ticks() {
		y := render.Crisp(tick.Y, dpr)
		if y < 0 || y > plotH {
			continue
		}
		svg.BeginPath()
		svg.MoveTo(0, y)
		svg.LineTo(plotW, y)
		svg.Stroke()
	}
	times := r.barTimes()
	for _, tick := range vp.TimeScale().TimeTicks(times) {
		x := render.Crisp(tick.X, dpr)
		svg.BeginPath()
		svg.MoveTo(x, 0)
		svg.LineTo(x, plotH)
		svg.Stroke()
	}
}

func (r *Renderer) barTimes() []int64 {
	times := make([]int64, len(r.bars))
	for i, b := range r.bars {
		times[i] = b.Time
	}
	return times
}

// paintPrimitives draws main-pane primitives in z-order, preserving
// insertion order within equal z.
func (r *Renderer) paintPrimitives(svg *render.SVG) {
	ordered := make([]primitives.Primitive, 0, len(r.prims))
	for _, p := range r.prims {
		if p.Data().Visible && p.Data().PaneID == "" {
			ordered = append(ordered, p)
		}
	}
	sort.SliceStable(ordered, func(a, b int) bool {
		return ordered[a].Data().ZOrder < ordered[b].Data().ZOrder
	})
	for _, p := range ordered {
		p.Render(svg, false)
	}
}

func (r *Renderer) paintSignals(svg *render.SVG, vp *coords.Viewport) {
	for _, s := range r.signals {
		if s.BarIndex < 0 || s.BarIndex >= len(r.bars) {
			continue
		}
		x := vp.BarToX(float64(s.BarIndex))
		y := vp.PriceToY(s.Price)
		size := s.EffectiveSize()
		color := s.EffectiveColor()
		svg.SetFillColor(color)
		svg.SetLineDash(nil)

		switch s.Type {
		case model.SignalBuy, model.SignalEntry:
			svg.BeginPath()
			svg.MoveTo(x, y+size*0.6)
			svg.LineTo(x-size*0.7, y+size*1.6)
			svg.LineTo(x+size*0.7, y+size*1.6)
			svg.ClosePath()
			svg.Fill()
		case model.SignalSell, model.SignalExit:
			svg.BeginPath()
			svg.MoveTo(x, y-size*0.6)
			svg.LineTo(x-size*0.7, y-size*1.6)
			svg.LineTo(x+size*0.7, y-size*1.6)
			svg.ClosePath()
			svg.Fill()
		default:
			svg.BeginPath()
			svg.Arc(x, y, size*0.6, 0, 2*math.Pi)
			svg.Fill()
		}

		if s.Label != "" {
			svg.SetFont(10, "sans-serif")
			svg.SetTextAlign(render.AlignCenter)
			if s.Type == model.SignalSell || s.Type == model.SignalExit {
				svg.SetTextBaseline(render.BaselineBottom)
				svg.FillText(s.Label, x, y-size*1.8)
			} else {
				svg.SetTextBaseline(render.BaselineTop)
				svg.FillText(s.Label, x, y+size*1.8)
			}
		}
	}
}

// paintScales draws the axis label strips and the borders separating them
// from the plot.
func (r *Renderer) paintScales(svg *render.SVG, vp *coords.Viewport, plotW, plotH, pricePaneH float64) {
	theme := r.cfg.Theme
	dpr := svg.DPR()

	bx := render.Crisp(plotW, dpr)
	svg.SetStrokeColor(theme.Border)
	svg.SetStrokeWidth(1)
	svg.SetLineDash(nil)
	svg.BeginPath()
	svg.MoveTo(bx, 0)
	svg.LineTo(bx, plotH)
	svg.Stroke()
	by := render.Crisp(plotH, dpr)
	svg.BeginPath()
	svg.MoveTo(0, by)
	svg.LineTo(r.cfg.Width, by)
	svg.Stroke()

	svg.SetFillColor(theme.Text)
	svg.SetFont(11, "sans-serif")
	svg.SetTextAlign(render.AlignLeft)
	svg.SetTextBaseline(render.BaselineMiddle)
	for _, tick := range vp.PriceScale().Ticks() {
		if tick.Y < 0 || tick.Y > pricePaneH {
			continue
		}
		svg.FillText(tick.Label, plotW+6, tick.Y)
	}

	svg.SetTextAlign(render.AlignCenter)
	svg.SetTextBaseline(render.BaselineTop)
	for _, tick := range vp.TimeScale().TimeTicks(r.barTimes()) {
		svg.FillText(tick.Label, tick.X, plotH+6)
	}
}
