package system

import (
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/level"
)

// WorldState returns the level state owned by the world root.
func WorldState(w *ecs.World) *level.State {
	e, ok := ecs.First(w, component.WorldStateComponent.Kind())
	if !ok {
		return nil
	}
	s, _ := ecs.Get(w, e, component.WorldStateComponent.Kind())
	return s
}

// RestartPending reports whether a restart request is waiting to be
// consumed.
func RestartPending(w *ecs.World) bool {
	_, ok := ecs.First(w, component.RestartRequestComponent.Kind())
	return ok
}

// RequestRestart queues a restart unless one is already queued.
func RequestRestart(w *ecs.World, reason string) bool {
	if RestartPending(w) {
		return false
	}
	e := ecs.CreateEntity(w)
	return ecs.Add(w, e, component.RestartRequestComponent.Kind(), &component.RestartRequest{Reason: reason}) == nil
}

// PlaySound flags a named clip on the first audio entity.
func PlaySound(w *ecs.World, name string) bool {
	e, ok := ecs.First(w, component.AudioComponent.Kind())
	if !ok {
		return false
	}
	a, ok := ecs.Get(w, e, component.AudioComponent.Kind())
	if !ok {
		return false
	}
	return a.Request(name)
}

// StopSounds flags every clip of the first audio entity to be paused.
func StopSounds(w *ecs.World) bool {
	e, ok := ecs.First(w, component.AudioComponent.Kind())
	if !ok {
		return false
	}
	a, ok := ecs.Get(w, e, component.AudioComponent.Kind())
	if !ok {
		return false
	}
	a.StopAll()
	return true
}
