package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/climber/common"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypePlayer
	collisionTypeEnemy
	collisionTypeHazard
)

const defaultIterations = 20

// Hit is one collider found by an overlap query.
type Hit struct {
	Entity   ecs.Entity
	Kind     component.BodyKind
	Position cp.Vector
}

// shapeTag is stored in cp.Shape.UserData so queries can map shapes back
// to entities.
type shapeTag struct {
	entity ecs.Entity
	kind   component.BodyKind
	static bool
	center cp.Vector
}

type PhysicsSystem struct {
	space    *cp.Space
	gravity  float64
	step     float64
	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

func NewPhysicsSystem() *PhysicsSystem {
	ps := &PhysicsSystem{
		gravity:  common.Gravity,
		step:     common.FixedDelta,
		entities: make(map[ecs.Entity]*bodyInfo),
	}
	ps.space = ps.newSpace()
	return ps
}

func (ps *PhysicsSystem) newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = defaultIterations
	space.SetGravity(cp.Vector{X: 0, Y: ps.gravity})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// FixedDelta is the length of one physics step in seconds.
func (ps *PhysicsSystem) FixedDelta() float64 {
	return ps.step
}

// Reset drops every body and starts from an empty space.
func (ps *PhysicsSystem) Reset() {
	if ps == nil {
		return
	}
	ps.space = ps.newSpace()
	ps.entities = make(map[ecs.Entity]*bodyInfo)
}

// Update advances the simulation by one fixed step.
func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.space = ps.newSpace()
	}

	ps.Sync(w)
	ps.space.Step(ps.step)
	ps.syncTransforms(w)
}

// Sync creates bodies for new entities and removes bodies whose entity is
// gone.
func (ps *PhysicsSystem) Sync(w *ecs.World) {
	if ps == nil || ps.space == nil || w == nil {
		return
	}

	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if info := ps.entities[e]; info != nil {
			bodyComp.Body = info.body
			bodyComp.Shape = info.shape
			return
		}

		info := ps.createBodyInfo(e, *transform, bodyComp)
		if info == nil {
			return
		}
		ps.entities[e] = info
		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
	})
}

func (ps *PhysicsSystem) createBodyInfo(e ecs.Entity, transform component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	center := cp.Vector{X: transform.X, Y: transform.Y}
	tag := &shapeTag{entity: e, kind: bodyComp.Kind, static: bodyComp.Static, center: center}

	if bodyComp.Static {
		var shape *cp.Shape
		switch {
		case bodyComp.Radius > 0:
			shape = cp.NewCircle(ps.space.StaticBody, bodyComp.Radius, center)
		case len(bodyComp.Vertices) == 0 && transform.Rotation == 0:
			bb := cp.BB{
				L: center.X - bodyComp.Width/2,
				B: center.Y - bodyComp.Height/2,
				R: center.X + bodyComp.Width/2,
				T: center.Y + bodyComp.Height/2,
			}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		default:
			local := localVertices(bodyComp)
			verts := make([]cp.Vector, len(local))
			for i, v := range local {
				verts[i] = common.RotatePoint(v, transform.Rotation, center)
			}
			shape = cp.NewPolyShapeRaw(ps.space.StaticBody, len(verts), verts, 0)
		}
		ps.configureShape(shape, bodyComp, tag)
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	body := cp.NewBody(mass, momentFor(bodyComp, mass))
	body.SetPosition(center)
	body.SetAngle(transform.Rotation)

	var shape *cp.Shape
	switch {
	case bodyComp.Radius > 0:
		shape = cp.NewCircle(body, bodyComp.Radius, cp.Vector{})
	case len(bodyComp.Vertices) > 0:
		shape = cp.NewPolyShapeRaw(body, len(bodyComp.Vertices), bodyComp.Vertices, 0)
	default:
		shape = cp.NewBox(body, bodyComp.Width, bodyComp.Height, 0)
	}
	ps.configureShape(shape, bodyComp, tag)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	if bodyComp.Kinematic {
		body.SetType(cp.BODY_KINEMATIC)
	} else if bodyComp.Impulse != (cp.Vector{}) {
		body.ApplyImpulseAtWorldPoint(bodyComp.Impulse, body.Position())
	}

	return &bodyInfo{body: body, shape: shape}
}

func (ps *PhysicsSystem) configureShape(shape *cp.Shape, bodyComp *component.PhysicsBody, tag *shapeTag) {
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetSensor(bodyComp.Sensor)
	shape.UserData = tag

	switch bodyComp.Kind {
	case component.BodyPlayer:
		shape.SetCollisionType(collisionTypePlayer)
	case component.BodyEnemy:
		shape.SetCollisionType(collisionTypeEnemy)
	case component.BodySpike:
		shape.SetCollisionType(collisionTypeHazard)
	default:
		shape.SetCollisionType(collisionTypeSolid)
	}
}

func localVertices(bodyComp *component.PhysicsBody) []cp.Vector {
	if len(bodyComp.Vertices) > 0 {
		return bodyComp.Vertices
	}
	hw, hh := bodyComp.Width/2, bodyComp.Height/2
	return []cp.Vector{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}
}

func momentFor(bodyComp *component.PhysicsBody, mass float64) float64 {
	switch {
	case bodyComp.Radius > 0:
		return cp.MomentForCircle(mass, 0, bodyComp.Radius, cp.Vector{})
	case len(bodyComp.Vertices) > 0:
		return cp.MomentForPoly(mass, len(bodyComp.Vertices), bodyComp.Vertices, cp.Vector{}, 0)
	default:
		return cp.MomentForBox(mass, bodyComp.Width, bodyComp.Height)
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Body == nil || bodyComp.Static {
			return
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = bodyComp.Body.Angle()
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}

		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}

// OverlapCircle returns every collider within radius of center. Passing
// kinds restricts the result to those body kinds.
func (ps *PhysicsSystem) OverlapCircle(center cp.Vector, radius float64, kinds ...component.BodyKind) []Hit {
	if ps == nil || ps.space == nil {
		return nil
	}

	seen := make(map[ecs.Entity]struct{})
	var hits []Hit
	ps.space.BBQuery(cp.NewBBForCircle(center, radius), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		if shape.PointQuery(center).Distance > radius {
			return
		}
		if hit, ok := hitFor(shape, kinds); ok {
			if _, dup := seen[hit.Entity]; !dup {
				seen[hit.Entity] = struct{}{}
				hits = append(hits, hit)
			}
		}
	}, nil)
	return hits
}

// OverlapBox returns every collider touching the box centered at center
// with the given half extents, rotated by rotation radians.
func (ps *PhysicsSystem) OverlapBox(center, halfExtents cp.Vector, rotation float64, kinds ...component.BodyKind) []Hit {
	if ps == nil || ps.space == nil {
		return nil
	}

	probe := cp.NewKinematicBody()
	probe.SetPosition(center)
	probe.SetAngle(rotation)
	box := cp.NewBox(probe, halfExtents.X*2, halfExtents.Y*2, 0)

	seen := make(map[ecs.Entity]struct{})
	var hits []Hit
	ps.space.ShapeQuery(box, func(shape *cp.Shape, _ *cp.ContactPointSet) {
		if hit, ok := hitFor(shape, kinds); ok {
			if _, dup := seen[hit.Entity]; !dup {
				seen[hit.Entity] = struct{}{}
				hits = append(hits, hit)
			}
		}
	})
	return hits
}

func hitFor(shape *cp.Shape, kinds []component.BodyKind) (Hit, bool) {
	tag, ok := shape.UserData.(*shapeTag)
	if !ok || tag == nil {
		return Hit{}, false
	}
	if len(kinds) > 0 {
		match := false
		for _, k := range kinds {
			if k == tag.kind {
				match = true
				break
			}
		}
		if !match {
			return Hit{}, false
		}
	}

	hit := Hit{Entity: tag.entity, Kind: tag.kind, Position: tag.center}
	if !tag.static && shape.Body() != nil {
		hit.Position = shape.Body().Position()
	}
	return hit, true
}

func (ps *PhysicsSystem) bodyOf(w *ecs.World, e ecs.Entity) *cp.Body {
	bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || bodyComp == nil || bodyComp.Body == nil || bodyComp.Static {
		return nil
	}
	return bodyComp.Body
}

// ApplyImpulse pushes the body of e through its center of gravity.
func (ps *PhysicsSystem) ApplyImpulse(w *ecs.World, e ecs.Entity, impulse cp.Vector) bool {
	body := ps.bodyOf(w, e)
	if body == nil {
		return false
	}
	body.ApplyImpulseAtWorldPoint(impulse, body.Position())
	return true
}

// SetKinematic freezes or releases the body of e. A frozen body keeps its
// position and loses its velocity.
func (ps *PhysicsSystem) SetKinematic(w *ecs.World, e ecs.Entity, kinematic bool) bool {
	bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || bodyComp == nil || bodyComp.Body == nil || bodyComp.Static {
		return false
	}

	bodyComp.Kinematic = kinematic
	if kinematic {
		bodyComp.Body.SetType(cp.BODY_KINEMATIC)
		return true
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	bodyComp.Body.SetType(cp.BODY_DYNAMIC)
	bodyComp.Body.SetMass(mass)
	bodyComp.Body.SetMoment(momentFor(bodyComp, mass))
	return true
}
