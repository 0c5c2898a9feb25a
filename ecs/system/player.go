package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/climber/common"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
)

const defaultKillRadius = 0.5

// PlayerSystem runs the per-frame part of the player: input, jumping,
// spike checks, chamber clears and death.
type PlayerSystem struct {
	physics *PhysicsSystem
}

func NewPlayerSystem(physics *PhysicsSystem) *PlayerSystem {
	return &PlayerSystem{physics: physics}
}

func (ps *PlayerSystem) Update(w *ecs.World) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	bodyComp, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind())
	if !ok || bodyComp.Body == nil {
		return
	}
	// A dying player only waits for the restart to tear it down.
	if p.State == component.PlayerDying {
		return
	}

	if input, ok := ecs.Get(w, player, component.InputComponent.Kind()); ok {
		p.MoveDir = normalized(input.MoveX, input.MoveY)
		if p.MoveDir != (cp.Vector{}) {
			p.LastMoveDir = p.MoveDir
		}
		if p.Die {
			ps.die(w, player, p)
			return
		}
		p.Grounded = math.Abs(bodyComp.Body.Velocity().Y) < p.GroundedEpsilon
		if input.JumpPressed {
			ps.jump(w, player, p, bodyComp)
		}
	} else if p.Die {
		ps.die(w, player, p)
		return
	}

	pos := bodyComp.Body.Position()
	if ps.touchingSpike(w, player, pos, p.SpikeProbe) {
		p.Die = true
	}

	if state := WorldState(w); state != nil {
		if line, ok := state.ClearLine(p.ClearMargin); ok && pos.Y > line && !RestartPending(w) {
			PlaySound(w, "End")
			state.Clear()
			RequestRestart(w, "clear")
		}
	}

	if pos.Y < p.FloorLimit {
		RequestRestart(w, "fell out of the level")
	}
}

// jump uses the ground jump when grounded and otherwise spends the air
// charge.
func (ps *PlayerSystem) jump(w *ecs.World, e ecs.Entity, p *component.Player, bodyComp *component.PhysicsBody) bool {
	impulse := cp.Vector{Y: p.JumpForce * bodyComp.Mass}
	switch {
	case p.ExtraJump && !p.Grounded:
		if !ps.physics.ApplyImpulse(w, e, impulse) {
			return false
		}
		PlaySound(w, "ExtraJump")
		p.ExtraJump = false
	case p.Grounded:
		if !ps.physics.ApplyImpulse(w, e, impulse) {
			return false
		}
		PlaySound(w, "Jump")
		p.ExtraJump = true
	default:
		return false
	}
	return true
}

func (ps *PlayerSystem) touchingSpike(w *ecs.World, player ecs.Entity, pos cp.Vector, probe float64) bool {
	for _, hit := range ps.physics.OverlapCircle(pos, probe, component.BodySpike) {
		tf, ok := ecs.Get(w, hit.Entity, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		hz, ok := ecs.Get(w, hit.Entity, component.HazardComponent.Kind())
		if !ok {
			continue
		}

		center := common.RotatePoint(cp.Vector{X: hz.OffsetX, Y: hz.OffsetY}, tf.Rotation, cp.Vector{X: tf.X, Y: tf.Y})
		half := cp.Vector{X: hz.HalfWidth, Y: hz.HalfHeight}
		for _, h := range ps.physics.OverlapBox(center, half, 0, component.BodyPlayer) {
			if h.Entity == player {
				return true
			}
		}
	}
	return false
}

func (ps *PlayerSystem) die(w *ecs.World, e ecs.Entity, p *component.Player) {
	ps.physics.SetKinematic(w, e, true)
	PlaySound(w, "Death")
	if state := WorldState(w); state != nil {
		state.Die()
	}
	RequestRestart(w, "death")
	p.Die = false
	p.State = component.PlayerDying
}

func normalized(x, y float64) cp.Vector {
	v := cp.Vector{X: x, Y: y}
	l := v.Length()
	if l == 0 {
		return cp.Vector{}
	}
	return v.Mult(1 / l)
}

// PlayerPhysicsSystem runs once per physics step before the space is
// stepped: horizontal control, drags and enemy contact.
type PlayerPhysicsSystem struct {
	physics *PhysicsSystem
	enemies *EnemySystem
}

func NewPlayerPhysicsSystem(physics *PhysicsSystem, enemies *EnemySystem) *PlayerPhysicsSystem {
	return &PlayerPhysicsSystem{physics: physics, enemies: enemies}
}

func (pp *PlayerPhysicsSystem) Update(w *ecs.World) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	bodyComp, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind())
	if !ok || bodyComp.Body == nil || bodyComp.Kinematic || p.State == component.PlayerDying {
		return
	}

	body := bodyComp.Body
	fdt := pp.physics.FixedDelta()
	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	v := body.Velocity()
	body.SetVelocity(p.MoveDir.X*p.MovementSpeed*60*fdt, v.Y)

	if p.MoveDir.Y < 0 && !p.Grounded && v.Y > p.FallSpeedFloor {
		dv := p.MoveDir.Y * p.DownDragForce * 60 * fdt / mass
		if v.Y+dv < p.FallSpeedFloor {
			dv = p.FallSpeedFloor - v.Y
		}
		pp.physics.ApplyImpulse(w, player, cp.Vector{Y: dv * mass})
	}

	if p.MoveDir.Y > 0 && !p.Grounded {
		k := math.Min(1, p.UpDragPercentage*60*fdt/mass)
		pp.physics.ApplyImpulse(w, player, cp.Vector{Y: -v.Y * k * mass})
	}

	pos := body.Position()
	for _, hit := range pp.physics.OverlapCircle(pos, p.EnemyProbe, component.BodyEnemy) {
		kill := defaultKillRadius
		if enemy, ok := ecs.Get(w, hit.Entity, component.EnemyComponent.Kind()); ok && enemy.KillRadius > 0 {
			kill = enemy.KillRadius
		}
		for _, h := range pp.physics.OverlapCircle(hit.Position, kill, component.BodyPlayer) {
			if h.Entity == player {
				p.Die = true
			}
		}
		pp.enemies.Pursue(w, hit.Entity, pos)
	}
}
