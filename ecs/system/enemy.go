package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
)

// EnemySystem steers enemies toward a target. It is driven by the player
// physics step for enemies inside the player's detection probe.
type EnemySystem struct {
	physics *PhysicsSystem
}

func NewEnemySystem(physics *PhysicsSystem) *EnemySystem {
	return &EnemySystem{physics: physics}
}

// Pursue pushes enemy e toward target with an impulse normalized to the
// fixed step.
func (es *EnemySystem) Pursue(w *ecs.World, e ecs.Entity, target cp.Vector) bool {
	if es == nil || es.physics == nil {
		return false
	}
	body := es.physics.bodyOf(w, e)
	if body == nil {
		return false
	}

	steering := 1.0
	if enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind()); ok && enemy.Steering > 0 {
		steering = enemy.Steering
	}

	dir := target.Sub(body.Position())
	if dir.LengthSq() == 0 {
		return false
	}
	impulse := dir.Normalize().Mult(steering * 60 * es.physics.FixedDelta())
	return es.physics.ApplyImpulse(w, e, impulse)
}
