package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/climber/common"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
)

// TrailSystem records emitter positions and ages them out.
type TrailSystem struct {
	dt float64
}

func NewTrailSystem(dt float64) *TrailSystem {
	return &TrailSystem{dt: dt}
}

func (ts *TrailSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.TrailsComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, trails *component.Trails, tf *component.Transform) {
		for i := range trails.Items {
			tr := &trails.Items[i]

			kept := tr.Points[:0]
			for _, p := range tr.Points {
				p.Age += ts.dt
				if p.Age <= tr.Duration {
					kept = append(kept, p)
				}
			}
			tr.Points = kept

			pos := common.RotatePoint(cp.Vector{X: tr.OffsetX, Y: tr.OffsetY}, tf.Rotation, cp.Vector{X: tf.X, Y: tf.Y})
			tr.Points = append(tr.Points, component.TrailPoint{X: pos.X, Y: pos.Y})
		}
	})
}
