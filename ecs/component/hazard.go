package component

// Hazard is the lethal box of a spike, centered at OffsetX/OffsetY from the
// entity Transform in its rotated frame.
type Hazard struct {
	HalfWidth  float64
	HalfHeight float64
	OffsetX    float64
	OffsetY    float64
}

var HazardComponent = NewComponent[Hazard]()
