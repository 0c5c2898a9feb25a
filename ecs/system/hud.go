package system

import (
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
)

// HUDSystem plays the pop-in tween of the score dots.
type HUDSystem struct {
	dt float64
}

func NewHUDSystem(dt float64) *HUDSystem {
	return &HUDSystem{dt: dt}
}

func (h *HUDSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.ScoreHUDComponent.Kind(), func(_ ecs.Entity, hud *component.ScoreHUD) {
		if hud.Pop == nil {
			hud.Scale = 1
			return
		}
		v, done := hud.Pop.Update(float32(h.dt))
		hud.Scale = float64(v)
		if done {
			hud.Pop = nil
		}
	})
}
