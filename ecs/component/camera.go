package component

// Camera follows the player. HalfHeight is the orthographic half extent of
// the view in world units.
type Camera struct {
	LerpSpeed  float64
	Depth      float64
	HalfHeight float64
}

var CameraComponent = NewComponent[Camera]()
