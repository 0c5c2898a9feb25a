package entity

import (
	"fmt"

	"github.com/milk9111/climber/ecs"
)

func NewPlayer(w *ecs.World, palette Palette) (ecs.Entity, error) {
	return BuildEntity(w, "player.yaml", palette)
}

func NewPlayerAt(w *ecs.World, palette Palette, x, y float64) (ecs.Entity, error) {
	entity, err := NewPlayer(w, palette)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, entity, x, y, 0); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return entity, nil
}
