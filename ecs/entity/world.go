package entity

import (
	"fmt"

	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/level"
)

// NewWorldRoot creates the entity owning the level state. The restart
// machine carries it across scene reloads.
func NewWorldRoot(w *ecs.World, state *level.State) (ecs.Entity, error) {
	if state == nil {
		return 0, fmt.Errorf("world root: state is nil")
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.WorldRootTagComponent.Kind(), &component.WorldRootTag{}); err != nil {
		return 0, fmt.Errorf("world root: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.WorldStateComponent.Kind(), state); err != nil {
		return 0, fmt.Errorf("world root: add state: %w", err)
	}
	if err := ecs.Add(w, e, component.PersistentComponent.Kind(), &component.Persistent{ID: "world"}); err != nil {
		return 0, fmt.Errorf("world root: add persistent: %w", err)
	}
	return e, nil
}
