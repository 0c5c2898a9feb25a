package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/prefabs"
)

type buildContext struct {
	PrefabPath string
	Palette    Palette
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":   addPlayerTag,
	"camera_tag":   addCameraTag,
	"enemy_tag":    addEnemyTag,
	"transform":    addTransform,
	"primitive":    addPrimitive,
	"trails":       addTrails,
	"input":        addInput,
	"player":       addPlayer,
	"camera":       addCamera,
	"enemy":        addEnemy,
	"persistent":   addPersistent,
	"physics_body": addPhysicsBody,
}

// physics_body comes after transform so colliders can scale with it.
var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"enemy_tag",
	"transform",
	"primitive",
	"trails",
	"input",
	"player",
	"camera",
	"enemy",
	"persistent",
	"physics_body",
}

// BuildEntity creates an entity from a prefab. Color names in the prefab
// resolve against palette.
func BuildEntity(w *ecs.World, prefabPath string, palette Palette) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Palette: palette}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for components %s", prefabPath, strings.Join(names, ", "))
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addEnemyTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	t := &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	}
	if t.ScaleX == 0 {
		t.ScaleX = 1
	}
	if t.ScaleY == 0 {
		t.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPrimitive(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PrimitiveComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode primitive spec: %w", err)
	}
	shape, err := parseShape(spec.Shape)
	if err != nil {
		return err
	}
	clr, err := ctx.Palette.Resolve(spec.Color)
	if err != nil {
		return err
	}
	if spec.Alpha != 0 {
		clr = prefabs.WithAlpha(clr, spec.Alpha)
	}
	return ecs.Add(w, e, component.PrimitiveComponent.Kind(), &component.Primitive{
		Shape:        shape,
		Color:        clr,
		SortingOrder: spec.SortingOrder,
	})
}

func parseShape(s string) (component.PrimitiveShape, error) {
	switch strings.ToLower(s) {
	case "", "square":
		return component.ShapeSquare, nil
	case "circle":
		return component.ShapeCircle, nil
	case "triangle":
		return component.ShapeTriangle, nil
	default:
		return 0, fmt.Errorf("unknown primitive shape %q", s)
	}
}

func addTrails(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TrailsComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode trails spec: %w", err)
	}
	trails := &component.Trails{Items: make([]component.Trail, 0, len(spec.Items))}
	for i, item := range spec.Items {
		clr, err := ctx.Palette.Resolve(item.Color)
		if err != nil {
			return fmt.Errorf("trail %d: %w", i, err)
		}
		trails.Items = append(trails.Items, component.Trail{
			Color:    clr,
			Width:    item.Width,
			Duration: item.Duration,
			OffsetX:  item.OffsetX,
			OffsetY:  item.OffsetY,
		})
	}
	return ecs.Add(w, e, component.TrailsComponent.Kind(), trails)
}

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PlayerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		MovementSpeed:    spec.MovementSpeed,
		JumpForce:        spec.JumpForce,
		DownDragForce:    spec.DownDragForce,
		UpDragPercentage: spec.UpDragPercentage,
		FallSpeedFloor:   spec.FallSpeedFloor,
		GroundedEpsilon:  spec.GroundedEpsilon,
		SpikeProbe:       spec.SpikeProbe,
		EnemyProbe:       spec.EnemyProbe,
		ClearMargin:      spec.ClearMargin,
		FloorLimit:       spec.FloorLimit,
		State:            component.PlayerAlive,
	})
}

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CameraComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.LerpSpeed == 0 {
		spec.LerpSpeed = 5
	}
	if spec.HalfHeight == 0 {
		spec.HalfHeight = 10
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		LerpSpeed:  spec.LerpSpeed,
		Depth:      spec.Depth,
		HalfHeight: spec.HalfHeight,
	})
}

func addEnemy(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.EnemyComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode enemy spec: %w", err)
	}
	return ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{
		KillRadius: spec.KillRadius,
		Steering:   spec.Steering,
	})
}

func addPersistent(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PersistentComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode persistent spec: %w", err)
	}
	return ecs.Add(w, e, component.PersistentComponent.Kind(), &component.Persistent{
		ID:           spec.ID,
		KeepOnReload: spec.KeepOnReload,
		Pinned:       spec.Pinned,
	})
}

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PhysicsBodyComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics_body spec: %w", err)
	}
	kind, err := parseBodyKind(spec.Kind)
	if err != nil {
		return err
	}

	body := &component.PhysicsBody{
		Kind:       kind,
		Width:      spec.Width,
		Height:     spec.Height,
		Radius:     spec.Radius,
		Mass:       spec.Mass,
		Friction:   spec.Friction,
		Elasticity: spec.Elasticity,
		Static:     spec.Static,
		Sensor:     spec.Sensor,
	}
	if spec.ScaleWithTransform {
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			scaleCollider(body, t.ScaleX, t.ScaleY)
		}
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), body)
}

// scaleCollider resizes a collider for a transform scale. Circles follow
// the larger axis.
func scaleCollider(body *component.PhysicsBody, sx, sy float64) {
	body.Width *= sx
	body.Height *= sy
	if sx > sy {
		body.Radius *= sx
	} else {
		body.Radius *= sy
	}
	for i, v := range body.Vertices {
		body.Vertices[i] = cp.Vector{X: v.X * sx, Y: v.Y * sy}
	}
}

func parseBodyKind(s string) (component.BodyKind, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return component.BodyNone, nil
	case "ground":
		return component.BodyGround, nil
	case "spike":
		return component.BodySpike, nil
	case "enemy":
		return component.BodyEnemy, nil
	case "player":
		return component.BodyPlayer, nil
	default:
		return 0, fmt.Errorf("unknown body kind %q", s)
	}
}
