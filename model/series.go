package model

import "strings"

// SeriesType selects how the main price series is painted.
type SeriesType int

const (
	Candlestick SeriesType = iota
	HollowCandlestick
	HeikinAshiCandles
	BarSeries
	LineSeries
	StepLine
	LineWithMarkers
	AreaSeries
	Baseline
	Histogram
	Columns
	HlcArea
)

// String returns the canonical identifier for the series type.
func (s SeriesType) String() string {
	switch s {
	case Candlestick:
		return "candlestick"
	case HollowCandlestick:
		return "hollow_candlestick"
	case HeikinAshiCandles:
		return "heikin_ashi"
	case BarSeries:
		return "bar"
	case LineSeries:
		return "line"
	case StepLine:
		return "step_line"
	case LineWithMarkers:
		return "line_with_markers"
	case AreaSeries:
		return "area"
	case Baseline:
		return "baseline"
	case Histogram:
		return "histogram"
	case Columns:
		return "columns"
	case HlcArea:
		return "hlc_area"
	default:
		return "candlestick"
	}
}

// ParseSeriesType maps an identifier back to its SeriesType.
// Unknown identifiers fall back to Candlestick with ok=false.
func ParseSeriesType(s string) (SeriesType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "candlestick", "candles":
		return Candlestick, true
	case "hollow_candlestick", "hollow":
		return HollowCandlestick, true
	case "heikin_ashi", "heikinashi":
		return HeikinAshiCandles, true
	case "bar", "bars", "ohlc":
		return BarSeries, true
	case "line":
		return LineSeries, true
	case "step_line", "step":
		return StepLine, true
	case "line_with_markers", "markers":
		return LineWithMarkers, true
	case "area":
		return AreaSeries, true
	case "baseline":
		return Baseline, true
	case "histogram":
		return Histogram, true
	case "columns":
		return Columns, true
	case "hlc_area", "hlc":
		return HlcArea, true
	default:
		return Candlestick, false
	}
}
