package component

import (
	"image/color"

	"github.com/tanema/gween"
)

// ScoreRow is one row of score dots anchored to the viewport's top-left.
type ScoreRow struct {
	Value    int
	OffsetX  float64
	OffsetY  float64
	Distance float64
	Color    color.NRGBA
}

// ScoreHUD is a snapshot of the scores taken when the scene starts.
type ScoreHUD struct {
	Rows  []ScoreRow
	Pop   *gween.Tween
	Scale float64
}

var ScoreHUDComponent = NewComponent[ScoreHUD]()
