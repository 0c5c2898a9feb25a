package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/prefabs"
)

// NewSpikeAt spawns a static spike sensor. The drawn triangle is a diamond
// half hidden behind the platform it grows from.
func NewSpikeAt(w *ecs.World, spec prefabs.SpikeSpec, palette Palette, x, y, rotation float64) (ecs.Entity, error) {
	sx, sy := spec.ScaleX, spec.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	verts := make([]cp.Vector, 0, len(spec.Vertices))
	for _, v := range spec.Vertices {
		verts = append(verts, cp.Vector{X: v[0], Y: v[1]})
	}
	if len(verts) < 3 {
		return 0, fmt.Errorf("spike: need at least 3 vertices, got %d", len(verts))
	}

	e := ecs.CreateEntity(w)
	fail := func(what string, err error) (ecs.Entity, error) {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("spike: add %s: %w", what, err)
	}

	if err := ecs.Add(w, e, component.SpikeTagComponent.Kind(), &component.SpikeTag{}); err != nil {
		return fail("tag", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        x,
		Y:        y,
		ScaleX:   sx,
		ScaleY:   sy,
		Rotation: rotation,
	}); err != nil {
		return fail("transform", err)
	}
	if err := ecs.Add(w, e, component.PrimitiveComponent.Kind(), &component.Primitive{
		Shape:        component.ShapeTriangle,
		Color:        palette.Color("accent"),
		SortingOrder: spec.SortingOrder,
	}); err != nil {
		return fail("primitive", err)
	}
	if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{
		HalfWidth:  spec.HalfWidth,
		HalfHeight: spec.HalfHeight,
		OffsetX:    spec.OffsetX,
		OffsetY:    spec.OffsetY,
	}); err != nil {
		return fail("hazard", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Kind:     component.BodySpike,
		Vertices: verts,
		Static:   true,
		Sensor:   true,
	}); err != nil {
		return fail("physics body", err)
	}
	return e, nil
}
