package model

// SignalType classifies a trade signal marker.
type SignalType int

const (
	SignalBuy SignalType = iota
	SignalSell
	SignalTakeProfit
	SignalStopLoss
	SignalEntry
	SignalExit
	SignalCustom
)

// String returns the canonical identifier for the signal type.
func (s SignalType) String() string {
	switch s {
	case SignalBuy:
		return "buy"
	case SignalSell:
		return "sell"
	case SignalTakeProfit:
		return "take_profit"
	case SignalStopLoss:
		return "stop_loss"
	case SignalEntry:
		return "entry"
	case SignalExit:
		return "exit"
	default:
		return "custom"
	}
}

// DefaultColor returns the colour used when a signal has none of its own.
func (s SignalType) DefaultColor() string {
	switch s {
	case SignalBuy, SignalEntry:
		return "#26a69a"
	case SignalSell, SignalExit:
		return "#ef5350"
	case SignalTakeProfit:
		return "#9c27b0"
	case SignalStopLoss:
		return "#ff9800"
	default:
		return "#2196f3"
	}
}

// Signal is a marker attached to a bar at a price.
type Signal struct {
	BarIndex int
	Price    float64
	Type     SignalType
	Label    string
	Color    string
	Size     float64
}

// EffectiveColor resolves the colour, falling back to the type default.
func (s Signal) EffectiveColor() string {
	if s.Color != "" {
		return s.Color
	}
	return s.Type.DefaultColor()
}

// EffectiveSize resolves the marker size, defaulting to 8px.
func (s Signal) EffectiveSize() float64 {
	if s.Size > 0 {
		return s.Size
	}
	return 8
}
