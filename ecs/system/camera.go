package system

import (
	"github.com/milk9111/climber/common"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
)

// CameraSystem eases the camera toward the player every frame.
type CameraSystem struct {
	dt float64
}

func NewCameraSystem(dt float64) *CameraSystem {
	return &CameraSystem{dt: dt}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	t := cam.LerpSpeed * cs.dt
	camTransform.X = common.LerpClamped(camTransform.X, target.X, t)
	camTransform.Y = common.LerpClamped(camTransform.Y, target.Y, t)
}
