package component

import "image/color"

type TrailPoint struct {
	X, Y float64
	Age  float64
}

// Trail is a fading ribbon following an entity. OffsetX and OffsetY are in
// the entity's local space and rotate with it.
type Trail struct {
	Color    color.NRGBA
	Width    float64
	Duration float64
	OffsetX  float64
	OffsetY  float64
	Points   []TrailPoint
}

type Trails struct {
	Items []Trail
}

var TrailsComponent = NewComponent[Trails]()
