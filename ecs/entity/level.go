package entity

import (
	"fmt"

	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/level"
	"github.com/milk9111/climber/prefabs"
)

const groundFriction = 0.4

// SpawnPieces turns generator output into entities.
func SpawnPieces(w *ecs.World, pieces []level.Piece, spike prefabs.SpikeSpec, palette Palette) error {
	for i, p := range pieces {
		var err error
		switch p.Kind {
		case level.PieceGround:
			if p.Size.X <= 0 || p.Size.Y <= 0 {
				continue
			}
			_, err = NewGround(w, palette, p)
		case level.PieceCorner:
			_, err = NewCorner(w, palette, p)
		case level.PieceSpikeUp, level.PieceSpikeDown:
			_, err = NewSpikeAt(w, spike, palette, p.Position.X, p.Position.Y, p.Rotation)
		case level.PieceEnemy:
			_, err = NewEnemyAt(w, palette, p)
		default:
			err = fmt.Errorf("unknown piece kind %v", p.Kind)
		}
		if err != nil {
			return fmt.Errorf("spawn piece %d (%s): %w", i, p.Kind, err)
		}
	}
	return nil
}

// NewGround spawns a solid box. Platforms, floors, ceilings and walls are
// all ground.
func NewGround(w *ecs.World, palette Palette, p level.Piece) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := addBlock(w, e, palette, p); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("ground: %w", err)
	}
	if err := ecs.Add(w, e, component.GroundTagComponent.Kind(), &component.GroundTag{}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("ground: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Kind:     component.BodyGround,
		Width:    p.Size.X,
		Height:   p.Size.Y,
		Friction: groundFriction,
		Static:   true,
	}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("ground: add physics body: %w", err)
	}
	return e, nil
}

// NewCorner spawns a purely visual block.
func NewCorner(w *ecs.World, palette Palette, p level.Piece) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := addBlock(w, e, palette, p); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("corner: %w", err)
	}
	return e, nil
}

func addBlock(w *ecs.World, e ecs.Entity, palette Palette, p level.Piece) error {
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        p.Position.X,
		Y:        p.Position.Y,
		ScaleX:   p.Size.X,
		ScaleY:   p.Size.Y,
		Rotation: p.Rotation,
	}); err != nil {
		return fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.PrimitiveComponent.Kind(), &component.Primitive{
		Shape: component.ShapeSquare,
		Color: palette.Color("ground"),
	}); err != nil {
		return fmt.Errorf("add primitive: %w", err)
	}
	return nil
}
