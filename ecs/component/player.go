package component

import "github.com/jakecoffman/cp"

type PlayerState uint8

const (
	PlayerAlive PlayerState = iota
	PlayerDying
)

// Player holds the controller tuning and the per-frame movement state.
type Player struct {
	MovementSpeed    float64
	JumpForce        float64
	DownDragForce    float64
	UpDragPercentage float64
	FallSpeedFloor   float64
	GroundedEpsilon  float64
	SpikeProbe       float64
	EnemyProbe       float64
	ClearMargin      float64
	FloorLimit       float64

	State       PlayerState
	MoveDir     cp.Vector
	LastMoveDir cp.Vector
	Grounded    bool
	ExtraJump   bool
	Die         bool
}

var PlayerComponent = NewComponent[Player]()
