// Package primitives implements the drawing-primitive catalog: the shared
// data model, the Primitive contract, the type registry and every built-in
// shape family.
package primitives

import (
	"github.com/zengeld/zengeld-canvas/render"
)

// DefaultColor is the stroke colour assigned when none is given.
const DefaultColor = "#2196F3"

// Kind groups primitive types into tool families.
type Kind int

const (
	KindLine Kind = iota
	KindChannel
	KindShape
	KindFibonacci
	KindGann
	KindPitchfork
	KindPattern
	KindElliott
	KindAnnotation
	KindArrow
	KindCycle
	KindProjection
	KindVolume
	KindMeasurement
	KindBrush
	KindIcon
	KindEvent
)

// String returns the canonical identifier for the kind.
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindChannel:
		return "channel"
	case KindShape:
		return "shape"
	case KindFibonacci:
		return "fibonacci"
	case KindGann:
		return "gann"
	case KindPitchfork:
		return "pitchfork"
	case KindPattern:
		return "pattern"
	case KindElliott:
		return "elliott"
	case KindAnnotation:
		return "annotation"
	case KindArrow:
		return "arrow"
	case KindCycle:
		return "cycle"
	case KindProjection:
		return "projection"
	case KindVolume:
		return "volume"
	case KindMeasurement:
		return "measurement"
	case KindBrush:
		return "brush"
	case KindIcon:
		return "icon"
	case KindEvent:
		return "event"
	default:
		return "unknown"
	}
}

// Point is an anchor in data space: a fractional bar index and a price.
type Point struct {
	Bar   float64 `json:"bar"`
	Price float64 `json:"price"`
}

// Data is the state every primitive carries regardless of its shape.
type Data struct {
	ID          string           `json:"id,omitempty"`
	TypeID      string           `json:"type_id"`
	DisplayName string           `json:"display_name"`
	Stroke      string           `json:"stroke"`
	Fill        string           `json:"fill,omitempty"`
	Width       float64          `json:"width"`
	Style       render.LineStyle `json:"style"`
	Text        string           `json:"text,omitempty"`
	Locked      bool             `json:"locked,omitempty"`
	Visible     bool             `json:"visible"`
	ZOrder      int              `json:"z_order"`
	PaneID      string           `json:"pane_id,omitempty"`
}

// NewData returns common state with library defaults applied.
func NewData(typeID, displayName string) Data {
	return Data{
		TypeID:      typeID,
		DisplayName: displayName,
		Stroke:      DefaultColor,
		Width:       2,
		Style:       render.Solid,
		Visible:     true,
	}
}
