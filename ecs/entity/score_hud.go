package entity

import (
	"fmt"

	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/level"
	"github.com/milk9111/climber/prefabs"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// NewScoreHUD snapshots the best and current score as two rows of dots
// that pop in when the scene starts.
func NewScoreHUD(w *ecs.World, state *level.State, spec prefabs.HUDSpec, palette Palette) (ecs.Entity, error) {
	hud := &component.ScoreHUD{
		Rows: []component.ScoreRow{
			{
				Value:    state.BestScore,
				OffsetX:  spec.BestOffsetX,
				OffsetY:  spec.BestOffsetY,
				Distance: spec.Distance,
				Color:    palette.Color("accent"),
			},
			{
				Value:    state.Score,
				OffsetX:  spec.BestOffsetX,
				OffsetY:  spec.ScoreOffset,
				Distance: spec.Distance,
				Color:    palette.Color("player"),
			},
		},
		Scale: 1,
	}
	if spec.PopDuration > 0 {
		hud.Pop = gween.New(0, 1, float32(spec.PopDuration), ease.OutBack)
		hud.Scale = 0
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ScoreHUDComponent.Kind(), hud); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("score hud: add hud: %w", err)
	}
	return e, nil
}
