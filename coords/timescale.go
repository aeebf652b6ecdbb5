// Package coords maps between data space (bar index, price) and pixel space.
package coords

import (
	"fmt"
	"math"
	"sort"
	"time"
)

const (
	// MinBarSpacing is the tightest allowed horizontal spacing in pixels.
	MinBarSpacing = 2.0
	// MaxBarSpacing is the widest allowed horizontal spacing in pixels.
	MaxBarSpacing = 100.0

	defaultBarSpacing = 8.0
	minTickGapPx      = 60.0
)

// TimeScale maps bar indices to horizontal pixel positions. The view is
// defined by a fractional start index and a per-bar pixel spacing; viewStart
// may be negative to leave empty space left of the first bar.
type TimeScale struct {
	barSpacing float64
	viewStart  float64
	chartWidth float64
	barCount   int
}

// NewTimeScale creates a time scale over barCount bars plotted into
// chartWidth pixels. It errors on a non-positive width or negative count.
func NewTimeScale(chartWidth float64, barCount int) (*TimeScale, error) {
	if chartWidth <= 0 {
		return nil, fmt.Errorf("invalid chart width %v: must be positive", chartWidth)
	}
	if barCount < 0 {
		return nil, fmt.Errorf("invalid bar count %d: must not be negative", barCount)
	}
	return &TimeScale{
		barSpacing: defaultBarSpacing,
		chartWidth: chartWidth,
		barCount:   barCount,
	}, nil
}

// BarSpacing returns the current per-bar pixel spacing.
func (ts *TimeScale) BarSpacing() float64 { return ts.barSpacing }

// ViewStart returns the fractional index of the leftmost visible bar.
func (ts *TimeScale) ViewStart() float64 { return ts.viewStart }

// BarCount returns the number of plotted bars.
func (ts *TimeScale) BarCount() int { return ts.barCount }

// ChartWidth returns the plot width in pixels.
func (ts *TimeScale) ChartWidth() float64 { return ts.chartWidth }

// SetBarSpacing sets the spacing, clamped to [MinBarSpacing, MaxBarSpacing].
func (ts *TimeScale) SetBarSpacing(spacing float64) {
	ts.barSpacing = clamp(spacing, MinBarSpacing, MaxBarSpacing)
}

// SetViewStart sets the fractional index of the leftmost visible bar.
func (ts *TimeScale) SetViewStart(start float64) { ts.viewStart = start }

// SetBarCount updates the number of plotted bars.
func (ts *TimeScale) SetBarCount(n int) {
	if n >= 0 {
		ts.barCount = n
	}
}

// Resize updates the plot width, keeping viewStart and spacing.
func (ts *TimeScale) Resize(chartWidth float64) {
	if chartWidth > 0 {
		ts.chartWidth = chartWidth
	}
}

// BarToX returns the x pixel of the centre of bar i.
func (ts *TimeScale) BarToX(i int) float64 {
	return ts.BarToXF(float64(i))
}

// BarToXF is the fractional-index variant of BarToX, used for interpolated
// positions between bars.
func (ts *TimeScale) BarToXF(i float64) float64 {
	return (i-ts.viewStart)*ts.barSpacing + ts.barSpacing/2
}

// XToBar returns the index of the bar whose cell contains x. ok is false
// when x lies outside the plot or the index is outside [0, barCount).
func (ts *TimeScale) XToBar(x float64) (int, bool) {
	if x < 0 || x > ts.chartWidth {
		return 0, false
	}
	i := int(math.Floor(ts.viewStart + x/ts.barSpacing))
	if i < 0 || i >= ts.barCount {
		return 0, false
	}
	return i, true
}

// XToBarF returns the unclamped fractional bar index under x. It is the
// exact inverse of BarToXF.
func (ts *TimeScale) XToBarF(x float64) float64 {
	return ts.viewStart + (x-ts.barSpacing/2)/ts.barSpacing
}

// VisibleBars returns how many bars fit in the plot width, at least 1.
func (ts *TimeScale) VisibleBars() int {
	n := int(ts.chartWidth / ts.barSpacing)
	if n < 1 {
		n = 1
	}
	return n
}

// VisibleRange returns the window of data indices [start, end) currently
// visible, clamped to the plotted bars.
func (ts *TimeScale) VisibleRange() (start, end int) {
	start = int(math.Floor(ts.viewStart))
	if start < 0 {
		start = 0
	}
	end = int(math.Ceil(ts.viewStart)) + ts.VisibleBars()
	if end > ts.barCount {
		end = ts.barCount
	}
	if start > end {
		start = end
	}
	return start, end
}

// Zoom scales the bar spacing by factor while keeping the data point under
// anchorX at the same pixel. Spacing is clamped; zooming by 2 then by 0.5 at
// the same anchor restores the original view when no clamp engages.
func (ts *TimeScale) Zoom(factor, anchorX float64) {
	if factor <= 0 {
		return
	}
	anchorBar := ts.XToBarF(anchorX)
	ts.SetBarSpacing(ts.barSpacing * factor)
	ts.viewStart = anchorBar - (anchorX-ts.barSpacing/2)/ts.barSpacing
}

// Pan shifts the view by deltaBars, clamped so that the visible window never
// leaves [0, barCount) entirely.
func (ts *TimeScale) Pan(deltaBars float64) {
	ts.viewStart += deltaBars
	lo := -float64(ts.VisibleBars()) + 1
	hi := float64(ts.barCount) - 1
	if hi < lo {
		hi = lo
	}
	ts.viewStart = clamp(ts.viewStart, lo, hi)
}

// ScrollToEnd moves the view so the latest bars fill the window.
func (ts *TimeScale) ScrollToEnd() {
	n := ts.barCount - ts.VisibleBars()
	if n < 0 {
		n = 0
	}
	ts.viewStart = float64(n)
}

// ScrollToStart moves the view back to the first bar.
func (ts *TimeScale) ScrollToStart() { ts.viewStart = 0 }

// FitAll chooses spacing and view start so all bars are visible with
// marginBars of slack on each side. Spacing may drop below MinBarSpacing
// when the series is denser than the window; it is still capped at
// MaxBarSpacing.
func (ts *TimeScale) FitAll(marginBars float64) {
	if ts.barCount == 0 {
		ts.viewStart = 0
		return
	}
	total := float64(ts.barCount) + 2*marginBars
	spacing := ts.chartWidth / total
	if spacing > MaxBarSpacing {
		spacing = MaxBarSpacing
	}
	ts.barSpacing = spacing
	ts.viewStart = -marginBars
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TickMarkWeight ranks how significant a time boundary is. Higher weights
// survive longer as bar spacing shrinks.
type TickMarkWeight int

const (
	WeightSecond   TickMarkWeight = 0
	WeightMinute   TickMarkWeight = 19
	WeightMinute5  TickMarkWeight = 20
	WeightMinute30 TickMarkWeight = 21
	WeightHour     TickMarkWeight = 30
	WeightHour4    TickMarkWeight = 36
	WeightHour12   TickMarkWeight = 40
	WeightDay      TickMarkWeight = 50
	WeightMonth    TickMarkWeight = 60
	WeightYear     TickMarkWeight = 70
)

// TimeTick is one labelled tick on the time axis.
type TimeTick struct {
	BarIndex int
	X        float64
	Label    string
	Weight   TickMarkWeight
}

// weightOf grades the boundary crossed between two consecutive timestamps.
func weightOf(prev, cur int64) TickMarkWeight {
	p := time.Unix(prev, 0).UTC()
	c := time.Unix(cur, 0).UTC()
	switch {
	case p.Year() != c.Year():
		return WeightYear
	case p.Month() != c.Month():
		return WeightMonth
	case p.Day() != c.Day():
		return WeightDay
	case p.Hour()/12 != c.Hour()/12:
		return WeightHour12
	case p.Hour()/4 != c.Hour()/4:
		return WeightHour4
	case p.Hour() != c.Hour():
		return WeightHour
	case p.Minute()/30 != c.Minute()/30:
		return WeightMinute30
	case p.Minute()/5 != c.Minute()/5:
		return WeightMinute5
	case p.Minute() != c.Minute():
		return WeightMinute
	default:
		return WeightSecond
	}
}

// labelFor formats a timestamp according to the weight of its boundary.
func labelFor(t int64, w TickMarkWeight) string {
	u := time.Unix(t, 0).UTC()
	switch {
	case w >= WeightYear:
		return u.Format("2006")
	case w >= WeightMonth:
		return u.Format("Jan")
	case w >= WeightDay:
		return u.Format("2 Jan")
	case w >= WeightMinute:
		return u.Format("15:04")
	default:
		return u.Format("15:04:05")
	}
}

// TimeTicks selects labelled ticks for the visible window. times holds one
// unix timestamp per bar, aligned with the plotted bars. Ticks at more
// significant boundaries win when space runs out, and no two ticks sit
// closer than a minimum pixel gap.
func (ts *TimeScale) TimeTicks(times []int64) []TimeTick {
	start, end := ts.VisibleRange()
	if end > len(times) {
		end = len(times)
	}
	if end-start < 2 {
		return nil
	}
	candidates := make([]TimeTick, 0, end-start)
	for i := start; i < end; i++ {
		var w TickMarkWeight
		if i == 0 {
			w = WeightYear
		} else {
			w = weightOf(times[i-1], times[i])
		}
		candidates = append(candidates, TimeTick{
			BarIndex: i,
			X:        ts.BarToX(i),
			Label:    labelFor(times[i], w),
			Weight:   w,
		})
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].Weight != candidates[b].Weight {
			return candidates[a].Weight > candidates[b].Weight
		}
		return candidates[a].BarIndex < candidates[b].BarIndex
	})
	var picked []TimeTick
	for _, c := range candidates {
		ok := true
		for _, p := range picked {
			if math.Abs(p.X-c.X) < minTickGapPx {
				ok = false
				break
			}
		}
		if ok {
			picked = append(picked, c)
		}
	}
	sort.Slice(picked, func(a, b int) bool { return picked[a].BarIndex < picked[b].BarIndex })
	return picked
}
