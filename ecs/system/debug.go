package system

import (
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
)

// DebugSystem applies the numpad shortcuts captured by the input system.
type DebugSystem struct{}

func NewDebugSystem() *DebugSystem {
	return &DebugSystem{}
}

func (d *DebugSystem) Update(w *ecs.World) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	input, ok := ecs.Get(w, player, component.InputComponent.Kind())
	if !ok {
		return
	}

	if input.DebugRestart {
		RequestRestart(w, "debug")
	}
	if input.DebugScoreUp && !RestartPending(w) {
		if state := WorldState(w); state != nil {
			state.Clear()
		}
		RequestRestart(w, "debug score")
	}
	if input.DebugDie {
		if p, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok {
			p.Die = true
		}
	}
}
