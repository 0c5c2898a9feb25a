package component

import "image/color"

type PrimitiveShape uint8

const (
	ShapeSquare PrimitiveShape = iota
	ShapeCircle
	// ShapeTriangle is drawn as a diamond half buried behind whatever sits
	// in front of it, which reads as a triangle.
	ShapeTriangle
)

// Primitive draws a flat colored shape scaled by the entity Transform.
type Primitive struct {
	Shape        PrimitiveShape
	Color        color.NRGBA
	SortingOrder int
}

var PrimitiveComponent = NewComponent[Primitive]()
