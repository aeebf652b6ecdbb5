package coords

import (
	"fmt"
	"math"
	"strconv"
)

// ScaleMode selects the vertical mapping of the price scale.
type ScaleMode int

const (
	// ModeNormal maps prices linearly.
	ModeNormal ScaleMode = iota
	// ModeLogarithmic maps ln(price); bounds are floored at a small
	// positive epsilon so non-positive inputs stay finite.
	ModeLogarithmic
	// ModePercent maps prices as percent change from a base price.
	ModePercent
	// ModeIndexedTo100 maps prices as price/base*100.
	ModeIndexedTo100
)

const logPriceFloor = 1e-4

// PriceScale maps prices to vertical pixel positions. y grows downward:
// the range maximum maps to y=0 and the minimum to y=height.
type PriceScale struct {
	mode      ScaleMode
	min, max  float64
	height    float64
	basePrice float64
}

// NewPriceScale creates a linear price scale over [min, max]. It errors when
// max is not strictly greater than min.
func NewPriceScale(min, max float64) (*PriceScale, error) {
	if max <= min {
		return nil, fmt.Errorf("invalid price range [%v, %v]: max must exceed min", min, max)
	}
	return &PriceScale{min: min, max: max, height: 1}, nil
}

// Mode returns the current scale mode.
func (ps *PriceScale) Mode() ScaleMode { return ps.mode }

// SetMode switches the vertical mapping.
func (ps *PriceScale) SetMode(mode ScaleMode) { ps.mode = mode }

// Min returns the lower bound of the price range.
func (ps *PriceScale) Min() float64 { return ps.min }

// Max returns the upper bound of the price range.
func (ps *PriceScale) Max() float64 { return ps.max }

// Height returns the pane height in pixels.
func (ps *PriceScale) Height() float64 { return ps.height }

// Resize updates the pane height. Non-positive heights are ignored.
func (ps *PriceScale) Resize(height float64) {
	if height > 0 {
		ps.height = height
	}
}

// SetBasePrice sets the reference price for Percent and IndexedTo100 modes.
// The renderer seeds it with the first visible close.
func (ps *PriceScale) SetBasePrice(base float64) { ps.basePrice = base }

// BasePrice returns the reference price for relative modes.
func (ps *PriceScale) BasePrice() float64 { return ps.basePrice }

// SetRange replaces the price bounds, with the same validation as the
// constructor.
func (ps *PriceScale) SetRange(min, max float64) error {
	if max <= min {
		return fmt.Errorf("invalid price range [%v, %v]: max must exceed min", min, max)
	}
	ps.min, ps.max = min, max
	return nil
}

// AutoFit sets the range from observed data bounds with 8% padding, handling
// the degenerate flat case.
func (ps *PriceScale) AutoFit(lo, hi float64) {
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi == lo {
		pad := math.Abs(lo) * 0.05
		if pad == 0 {
			pad = 1
		}
		ps.min, ps.max = lo-pad, hi+pad
		return
	}
	pad := (hi - lo) * 0.08
	ps.min, ps.max = lo-pad, hi+pad
}

// transform maps a raw price into the mode's linear space.
func (ps *PriceScale) transform(p float64) float64 {
	switch ps.mode {
	case ModeLogarithmic:
		return math.Log(math.Max(p, logPriceFloor))
	case ModePercent:
		if ps.basePrice > 0 {
			return (p - ps.basePrice) / ps.basePrice * 100
		}
	case ModeIndexedTo100:
		if ps.basePrice > 0 {
			return p / ps.basePrice * 100
		}
	}
	return p
}

// invert maps a value in the mode's linear space back to a raw price.
func (ps *PriceScale) invert(v float64) float64 {
	switch ps.mode {
	case ModeLogarithmic:
		return math.Exp(v)
	case ModePercent:
		if ps.basePrice > 0 {
			return ps.basePrice + v/100*ps.basePrice
		}
	case ModeIndexedTo100:
		if ps.basePrice > 0 {
			return v / 100 * ps.basePrice
		}
	}
	return v
}

// PriceToY maps a price to its vertical pixel position.
func (ps *PriceScale) PriceToY(p float64) float64 {
	tmin, tmax := ps.transform(ps.min), ps.transform(ps.max)
	if tmax == tmin {
		return ps.height / 2
	}
	return ps.height * (1 - (ps.transform(p)-tmin)/(tmax-tmin))
}

// YToPrice is the inverse of PriceToY.
func (ps *PriceScale) YToPrice(y float64) float64 {
	tmin, tmax := ps.transform(ps.min), ps.transform(ps.max)
	if ps.height == 0 {
		return ps.min
	}
	return ps.invert(tmin + (1-y/ps.height)*(tmax-tmin))
}

// NiceNumber returns the smallest "nice" value >= v, where nice values are
// 10^k multiplied by 1, 2 or 5. Non-positive inputs yield 0.
func NiceNumber(v float64) float64 {
	if v <= 0 {
		return 0
	}
	exp := math.Floor(math.Log10(v))
	cur := math.Pow(10, exp)
	multipliers := [3]float64{2, 2.5, 2}
	for i := 0; cur < v; i++ {
		cur *= multipliers[i%3]
	}
	return cur
}

// Precision returns the number of decimal places appropriate for labelling
// values spaced by step, between 0 and 5.
func Precision(step float64) int {
	switch {
	case step <= 0:
		return 2
	case step >= 1:
		return 0
	case step >= 0.1:
		return 1
	case step >= 0.01:
		return 2
	case step >= 0.001:
		return 3
	case step >= 0.0001:
		return 4
	default:
		return 5
	}
}

// FormatPrice renders a price with the given number of decimals.
func FormatPrice(p float64, precision int) string {
	return strconv.FormatFloat(p, 'f', precision, 64)
}

// PriceTick is one labelled tick on the price axis.
type PriceTick struct {
	Price float64
	Y     float64
	Label string
}

// Ticks generates labelled price ticks at nice intervals in the mode's
// transformed space, so percent and indexed axes land on round offsets
// and logarithmic axes on log-spaced steps. The target tick count scales
// with pane height, clamped to [4, 20]. A zero or negative range produces
// no ticks.
func (ps *PriceScale) Ticks() []PriceTick {
	tmin, tmax := ps.transform(ps.min), ps.transform(ps.max)
	rng := tmax - tmin
	if rng <= 0 {
		return nil
	}
	targets := clamp(ps.height/30, 4, 20)
	step := NiceNumber(rng / targets)
	if step <= 0 {
		return nil
	}
	prec := Precision(step)
	if ps.mode == ModeLogarithmic {
		// Log-space precision says nothing about price decimals.
		prec = Precision(NiceNumber((ps.max - ps.min) / targets))
	}
	first := math.Ceil(tmin/step) * step
	var ticks []PriceTick
	for v := first; v <= tmax+step*1e-9; v += step {
		p := ps.invert(v)
		ticks = append(ticks, PriceTick{
			Price: p,
			Y:     ps.PriceToY(p),
			Label: ps.tickLabel(v, p, prec),
		})
	}
	return ticks
}

// tickLabel formats one tick. Percent mode shows the signed offset with a
// % suffix, indexed mode the index value, everything else the raw price.
func (ps *PriceScale) tickLabel(v, p float64, prec int) string {
	switch ps.mode {
	case ModePercent:
		if ps.basePrice > 0 {
			label := FormatPrice(v, prec) + "%"
			if v >= 0 {
				label = "+" + label
			}
			return label
		}
	case ModeIndexedTo100:
		if ps.basePrice > 0 {
			return FormatPrice(v, prec)
		}
	}
	return FormatPrice(p, prec)
}
