package entity

import (
	"fmt"

	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/level"
	"github.com/milk9111/climber/prefabs"
)

// Scene rebuilds the playable world around a persistent world root.
type Scene struct {
	Tuning    *prefabs.TuningSpec
	Palette   Palette
	Generator *level.Generator
	Root      ecs.Entity
}

// Build regenerates one chamber per point of score and spawns the player,
// the camera and the score HUD.
func (s *Scene) Build(w *ecs.World) error {
	state, ok := ecs.Get(w, s.Root, component.WorldStateComponent.Kind())
	if !ok || state == nil {
		return fmt.Errorf("scene: world root %d has no state", s.Root)
	}
	if s.Generator == nil || s.Tuning == nil {
		return fmt.Errorf("scene: generator and tuning are required")
	}

	pieces := s.Generator.Populate(state)
	if err := SpawnPieces(w, pieces, s.Tuning.Spike, s.Palette); err != nil {
		return fmt.Errorf("scene: %w", err)
	}

	spawn := prefabs.SpawnSpec{Y: 2}
	if s.Tuning.Spawn != nil {
		spawn = *s.Tuning.Spawn
	}
	if _, err := NewPlayerAt(w, s.Palette, spawn.X, spawn.Y); err != nil {
		return fmt.Errorf("scene: player: %w", err)
	}
	if _, err := NewCameraAt(w, spawn.X, spawn.Y); err != nil {
		return fmt.Errorf("scene: camera: %w", err)
	}
	if _, err := NewScoreHUD(w, state, s.Tuning.HUD, s.Palette); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	return nil
}
