package coords

import "fmt"

// Viewport bundles a TimeScale and a PriceScale for one pane and owns its
// pixel dimensions.
type Viewport struct {
	timeScale  *TimeScale
	priceScale *PriceScale
	width      float64
	height     float64
}

// NewViewport creates a viewport of the given pixel size over barCount bars
// with an initial price range of [0, 1]. It errors on non-positive
// dimensions.
func NewViewport(width, height float64, barCount int) (*Viewport, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid viewport size %vx%v: dimensions must be positive", width, height)
	}
	ts, err := NewTimeScale(width, barCount)
	if err != nil {
		return nil, fmt.Errorf("failed to create time scale: %w", err)
	}
	ps, err := NewPriceScale(0, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to create price scale: %w", err)
	}
	ps.Resize(height)
	return &Viewport{timeScale: ts, priceScale: ps, width: width, height: height}, nil
}

// TimeScale exposes the underlying time scale.
func (v *Viewport) TimeScale() *TimeScale { return v.timeScale }

// PriceScale exposes the underlying price scale.
func (v *Viewport) PriceScale() *PriceScale { return v.priceScale }

// Width returns the pane width in pixels.
func (v *Viewport) Width() float64 { return v.width }

// Height returns the pane height in pixels.
func (v *Viewport) Height() float64 { return v.height }

// BarToX maps a fractional bar index to its x pixel.
func (v *Viewport) BarToX(bar float64) float64 { return v.timeScale.BarToXF(bar) }

// PriceToY maps a price to its y pixel.
func (v *Viewport) PriceToY(price float64) float64 { return v.priceScale.PriceToY(price) }

// XToBar returns the bar index under x, reporting whether one exists.
func (v *Viewport) XToBar(x float64) (int, bool) { return v.timeScale.XToBar(x) }

// YToPrice maps a y pixel back to a price.
func (v *Viewport) YToPrice(y float64) float64 { return v.priceScale.YToPrice(y) }

// VisibleRange returns the visible window of data indices [start, end).
func (v *Viewport) VisibleRange() (int, int) { return v.timeScale.VisibleRange() }

// Zoom scales the time axis around the anchor pixel.
func (v *Viewport) Zoom(factor, anchorX float64) { v.timeScale.Zoom(factor, anchorX) }

// Pan shifts the time axis by deltaBars.
func (v *Viewport) Pan(deltaBars float64) { v.timeScale.Pan(deltaBars) }

// ScrollToEnd jumps the view to the latest bars.
func (v *Viewport) ScrollToEnd() { v.timeScale.ScrollToEnd() }

// ScrollToStart jumps the view back to the first bar.
func (v *Viewport) ScrollToStart() { v.timeScale.ScrollToStart() }

// SetPriceRange replaces the vertical price bounds.
func (v *Viewport) SetPriceRange(min, max float64) error {
	if err := v.priceScale.SetRange(min, max); err != nil {
		return fmt.Errorf("failed to set price range: %w", err)
	}
	return nil
}

// AutoFitPrice fits the price range to observed bounds with padding.
func (v *Viewport) AutoFitPrice(lo, hi float64) { v.priceScale.AutoFit(lo, hi) }

// Resize changes the pixel dimensions, preserving the visible bar window.
// Non-positive dimensions are ignored per axis.
func (v *Viewport) Resize(width, height float64) {
	if width > 0 && width != v.width {
		start, end := v.timeScale.VisibleRange()
		v.width = width
		v.timeScale.Resize(width)
		if end > start {
			span := float64(end - start)
			v.timeScale.SetBarSpacing(width / span)
			v.timeScale.SetViewStart(float64(start))
		}
	}
	if height > 0 {
		v.height = height
		v.priceScale.Resize(height)
	}
}
