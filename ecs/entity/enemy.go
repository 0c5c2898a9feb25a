package entity

import (
	"fmt"

	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/level"
	"github.com/milk9111/climber/prefabs"
)

const (
	markerScale = 0.5
	markerAlpha = 0.25
)

// NewEnemyAt spawns the enemy described by piece together with the faint
// marker left at its spawn point.
func NewEnemyAt(w *ecs.World, palette Palette, piece level.Piece) (ecs.Entity, error) {
	if err := newSpawnMarker(w, palette, piece); err != nil {
		return 0, err
	}

	e, err := BuildEntity(w, "enemy.yaml", palette)
	if err != nil {
		return 0, err
	}

	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("enemy: prefab has no transform")
	}
	t.X, t.Y = piece.Position.X, piece.Position.Y
	sx, sy := piece.Size.X, piece.Size.Y
	if sx <= 0 || sy <= 0 {
		sx, sy = 1, 1
	}
	t.ScaleX, t.ScaleY = sx, sy

	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		scaleCollider(body, sx, sy)
		body.Impulse = piece.Impulse
	}
	return e, nil
}

func newSpawnMarker(w *ecs.World, palette Palette, piece level.Piece) error {
	marker := ecs.CreateEntity(w)
	if err := ecs.Add(w, marker, component.TransformComponent.Kind(), &component.Transform{
		X:      piece.Position.X,
		Y:      piece.Position.Y,
		ScaleX: markerScale,
		ScaleY: markerScale,
	}); err != nil {
		return fmt.Errorf("enemy marker: add transform: %w", err)
	}
	if err := ecs.Add(w, marker, component.PrimitiveComponent.Kind(), &component.Primitive{
		Shape:        component.ShapeCircle,
		Color:        prefabs.WithAlpha(palette.Color("accent"), markerAlpha),
		SortingOrder: -1,
	}); err != nil {
		return fmt.Errorf("enemy marker: add primitive: %w", err)
	}
	return nil
}
