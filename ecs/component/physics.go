package component

import "github.com/jakecoffman/cp"

// BodyKind tags every collider so queries can filter hits without looking
// at names.
type BodyKind uint8

const (
	BodyNone BodyKind = iota
	BodyGround
	BodySpike
	BodyEnemy
	BodyPlayer
)

func (k BodyKind) String() string {
	switch k {
	case BodyGround:
		return "ground"
	case BodySpike:
		return "spike"
	case BodyEnemy:
		return "enemy"
	case BodyPlayer:
		return "player"
	default:
		return "none"
	}
}

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// A positive Radius makes a circle, Vertices a polygon in local space and
// otherwise Width and Height make a box.
type PhysicsBody struct {
	Body       *cp.Body
	Shape      *cp.Shape
	Kind       BodyKind
	Width      float64
	Height     float64
	Radius     float64
	Vertices   []cp.Vector
	Mass       float64
	Friction   float64
	Elasticity float64
	Static     bool
	Sensor     bool
	Kinematic  bool
	// Impulse is applied once when the body is created.
	Impulse cp.Vector
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
