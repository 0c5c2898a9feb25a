package level

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
)

var ErrInvalidConfig = errors.New("level: invalid config")

// Gap is a horizontal opening in a chamber floor or ceiling. CenterX is in
// world space.
type Gap struct {
	Scale   float64 `yaml:"scale"`
	CenterX float64 `yaml:"center_x"`
}

func (g Gap) Left() float64  { return g.CenterX - g.Scale*0.5 }
func (g Gap) Right() float64 { return g.CenterX + g.Scale*0.5 }

// MaxSubLayers caps the interior platform rows of a chamber.
const MaxSubLayers = 4

// Layer is one generated chamber. Position is the bottom-center anchor.
type Layer struct {
	Width               float64
	Position            cp.Vector
	BottomGap           Gap
	UpperGap            Gap
	SubLayersAmount     int
	SubLayers           []int
	MinSubLayerWidth    float64
	MinSubLayerGapWidth float64
}

// Rows returns the vertical span of the chamber in units of height.
func (l Layer) Rows() int {
	return l.SubLayersAmount + 1
}

// Top returns the y coordinate of the chamber ceiling.
func (l Layer) Top(height float64) float64 {
	return l.Position.Y + height*float64(l.Rows())
}

func (l Layer) Left() float64  { return l.Position.X - l.Width*0.5 }
func (l Layer) Right() float64 { return l.Position.X + l.Width*0.5 }

// MaxPlatforms is the largest platform count a row of this chamber may hold.
func (l Layer) MaxPlatforms() int {
	return int(l.Width / (l.MinSubLayerWidth + l.MinSubLayerGapWidth))
}

// Config holds the generation constants.
type Config struct {
	Height              float64 `yaml:"height"`
	MinWidth            float64 `yaml:"min_width"`
	MaxWidth            float64 `yaml:"max_width"`
	MinSubLayerWidth    float64 `yaml:"min_sub_layer_width"`
	MinSubLayerGapWidth float64 `yaml:"min_sub_layer_gap_width"`
	MinEnemyScale       float64 `yaml:"min_enemy_scale"`
	MaxEnemyScale       float64 `yaml:"max_enemy_scale"`
}

func DefaultConfig() Config {
	return Config{
		Height:              4,
		MinWidth:            10,
		MaxWidth:            20,
		MinSubLayerWidth:    1,
		MinSubLayerGapWidth: 1.5,
		MinEnemyScale:       0.5,
		MaxEnemyScale:       1.5,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Height <= 0:
		return fmt.Errorf("%w: height %v must be positive", ErrInvalidConfig, c.Height)
	case c.MinSubLayerWidth <= 0 || c.MinSubLayerGapWidth <= 0:
		return fmt.Errorf("%w: platform and gap widths must be positive", ErrInvalidConfig)
	case c.MinWidth < c.MinSubLayerWidth+c.MinSubLayerGapWidth:
		return fmt.Errorf("%w: min_width %v cannot fit a single platform", ErrInvalidConfig, c.MinWidth)
	case c.MaxWidth < c.MinWidth:
		return fmt.Errorf("%w: max_width %v below min_width %v", ErrInvalidConfig, c.MaxWidth, c.MinWidth)
	case c.MaxEnemyScale < c.MinEnemyScale:
		return fmt.Errorf("%w: enemy scale range is reversed", ErrInvalidConfig)
	}
	return nil
}
