package model

// Bar is a single OHLCV candle. Time is a unix timestamp in seconds.
type Bar struct {
	Time   int64   `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// IsUp reports whether the bar closed at or above its open.
func (b Bar) IsUp() bool {
	return b.Close >= b.Open
}

// Body returns the absolute open-close distance.
func (b Bar) Body() float64 {
	if b.Close >= b.Open {
		return b.Close - b.Open
	}
	return b.Open - b.Close
}

// PriceRange returns the lowest low and highest high across bars.
// ok is false for an empty slice.
func PriceRange(bars []Bar) (lo, hi float64, ok bool) {
	if len(bars) == 0 {
		return 0, 0, false
	}
	lo, hi = bars[0].Low, bars[0].High
	for _, b := range bars[1:] {
		if b.Low < lo {
			lo = b.Low
		}
		if b.High > hi {
			hi = b.High
		}
	}
	return lo, hi, true
}

// HeikinAshi converts bars to their Heikin-Ashi representation.
func HeikinAshi(bars []Bar) []Bar {
	if len(bars) == 0 {
		return nil
	}
	out := make([]Bar, len(bars))
	for i, b := range bars {
		ha := b
		ha.Close = (b.Open + b.High + b.Low + b.Close) / 4
		if i == 0 {
			ha.Open = (b.Open + b.Close) / 2
		} else {
			ha.Open = (out[i-1].Open + out[i-1].Close) / 2
		}
		if b.High > ha.Open && b.High > ha.Close {
			ha.High = b.High
		} else if ha.Open > ha.Close {
			ha.High = ha.Open
		} else {
			ha.High = ha.Close
		}
		if b.Low < ha.Open && b.Low < ha.Close {
			ha.Low = b.Low
		} else if ha.Open < ha.Close {
			ha.Low = ha.Open
		} else {
			ha.Low = ha.Close
		}
		out[i] = ha
	}
	return out
}
