package model

import "math"

// Placement says where an indicator is drawn relative to the price pane.
type Placement int

const (
	// Overlay draws on the price pane sharing its price scale.
	Overlay Placement = iota
	// OverlayBottom draws in a strip anchored to the bottom of the price
	// pane with its own vertical range.
	OverlayBottom
	// SubPane draws in a dedicated pane below the price pane.
	SubPane
)

// RangeMode controls the vertical range of a non-overlay indicator.
type RangeMode int

const (
	// RangeAuto fits the range to the visible values.
	RangeAuto RangeMode = iota
	// RangeFixed uses explicit Min/Max bounds.
	RangeFixed
	// RangeSymmetric centres the range on zero.
	RangeSymmetric
	// RangePrice reuses the visible price bounds of the main pane. The
	// pane renderer supplies them; ValueRange alone cannot resolve this
	// mode.
	RangePrice
)

// VectorStyle selects the painter used for one indicator vector.
type VectorStyle int

const (
	StyleLine VectorStyle = iota
	StyleArea
	StyleHistogram
	StyleDots
	StyleStep
	StyleHidden
)

// Vector is one named series of an indicator. Values are aligned with the
// bar slice; NaN marks gaps (warm-up periods and holes are skipped when
// painting).
type Vector struct {
	Name   string
	Values []float64
	Color  string
	Width  float64
	Style  VectorStyle
}

// Level is a horizontal reference line inside an indicator pane, such as the
// 30/70 lines of an oscillator.
type Level struct {
	Value float64
	Color string
	Label string
}

// Indicator is a caller-computed indicator ready for painting. The library
// never computes values; it only paints what it is handed.
type Indicator struct {
	Name        string
	Vectors     []Vector
	Levels      []Level
	Placement   Placement
	HeightRatio float64
	Range       RangeMode
	Min, Max    float64
}

// ValueRange resolves the vertical bounds for the indicator over the visible
// window [start,end). ok is false when no finite value exists and the mode
// needs one, and always for RangePrice, whose bounds come from the price
// scale and must be supplied by the pane renderer.
func (ind *Indicator) ValueRange(start, end int) (lo, hi float64, ok bool) {
	switch ind.Range {
	case RangeFixed:
		return ind.Min, ind.Max, ind.Max > ind.Min
	case RangePrice:
		return 0, 0, false
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range ind.Vectors {
		if v.Style == StyleHidden {
			continue
		}
		for i := start; i < end && i < len(v.Values); i++ {
			if i < 0 {
				continue
			}
			val := v.Values[i]
			if math.IsNaN(val) || math.IsInf(val, 0) {
				continue
			}
			if val < lo {
				lo = val
			}
			if val > hi {
				hi = val
			}
		}
	}
	for _, l := range ind.Levels {
		if l.Value < lo {
			lo = l.Value
		}
		if l.Value > hi {
			hi = l.Value
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 0, false
	}
	if ind.Range == RangeSymmetric {
		m := math.Max(math.Abs(lo), math.Abs(hi))
		if m == 0 {
			m = 1
		}
		return -m, m, true
	}
	if lo == hi {
		pad := math.Abs(lo) * 0.05
		if pad == 0 {
			pad = 1
		}
		return lo - pad, hi + pad, true
	}
	return lo, hi, true
}
