package prefabs

import (
	"fmt"
	"image/color"

	"github.com/mazznoer/csscolorparser"
	"github.com/milk9111/climber/level"
	"github.com/milk9111/climber/sfx"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// TuningSpec holds the world-wide constants: palette, chamber generation
// and the spike and score HUD layout.
type TuningSpec struct {
	Palette    PaletteSpec  `yaml:"palette"`
	Level      level.Config `yaml:"level"`
	Spike      SpikeSpec    `yaml:"spike"`
	HUD        HUDSpec      `yaml:"hud"`
	Spawn      *SpawnSpec   `yaml:"spawn"`
	Difficulty string       `yaml:"difficulty_script"`
}

func LoadTuningSpec(filename string) (*TuningSpec, error) {
	if filename == "" {
		filename = "tuning.yaml"
	}
	spec, err := LoadSpec[TuningSpec](filename)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	if err := spec.Level.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

func (t *TuningSpec) applyDefaults() {
	def := level.DefaultConfig()
	if t.Level.Height == 0 {
		t.Level.Height = def.Height
	}
	if t.Level.MinWidth == 0 && t.Level.MaxWidth == 0 {
		t.Level.MinWidth, t.Level.MaxWidth = def.MinWidth, def.MaxWidth
	}
	if t.Level.MinSubLayerWidth == 0 {
		t.Level.MinSubLayerWidth = def.MinSubLayerWidth
	}
	if t.Level.MinSubLayerGapWidth == 0 {
		t.Level.MinSubLayerGapWidth = def.MinSubLayerGapWidth
	}
	if t.Level.MinEnemyScale == 0 && t.Level.MaxEnemyScale == 0 {
		t.Level.MinEnemyScale, t.Level.MaxEnemyScale = def.MinEnemyScale, def.MaxEnemyScale
	}
	if t.HUD.Distance == 0 {
		t.HUD.Distance = 0.75
	}
	if t.HUD.PopDuration == 0 {
		t.HUD.PopDuration = 0.35
	}
	if t.Spawn == nil {
		t.Spawn = &SpawnSpec{X: 0, Y: 2}
	}
}

type PaletteSpec struct {
	Background YAMLColor `yaml:"background"`
	Accent     YAMLColor `yaml:"accent"`
	Ground     YAMLColor `yaml:"ground"`
	Player     YAMLColor `yaml:"player"`
}

// SpikeSpec describes the composite triangle hazard. Vertices is the
// sensor outline in local space with the scale already applied. The lethal
// box sits at (OffsetX, OffsetY) from the spike origin.
type SpikeSpec struct {
	ScaleX       float64      `yaml:"scale_x"`
	ScaleY       float64      `yaml:"scale_y"`
	Vertices     [][2]float64 `yaml:"vertices"`
	HalfWidth    float64      `yaml:"half_width"`
	HalfHeight   float64      `yaml:"half_height"`
	OffsetX      float64      `yaml:"offset_x"`
	OffsetY      float64      `yaml:"offset_y"`
	SortingOrder int          `yaml:"sorting_order"`
}

type HUDSpec struct {
	Distance    float64 `yaml:"distance"`
	BestOffsetX float64 `yaml:"best_offset_x"`
	BestOffsetY float64 `yaml:"best_offset_y"`
	ScoreOffset float64 `yaml:"score_offset_y"`
	PopDuration float64 `yaml:"pop_duration"`
}

// SpawnSpec is where the player starts every attempt.
type SpawnSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SoundsSpec lists the synthesized clips.
type SoundsSpec struct {
	Clips []sfx.Clip `yaml:"clips"`
}

func LoadSoundsSpec() (*SoundsSpec, error) {
	spec, err := LoadSpec[SoundsSpec]("sounds.yaml")
	if err != nil {
		return nil, err
	}
	if len(spec.Clips) == 0 {
		spec.Clips = sfx.DefaultClips()
	}
	for i := range spec.Clips {
		if spec.Clips[i].Pitch == 0 {
			spec.Clips[i].Pitch = 1
		}
	}
	return &spec, nil
}

// YAMLColor accepts any CSS color string: hex, rgb(), hsl() or a name.
type YAMLColor struct {
	color.NRGBA
}

func ParseColor(s string) (color.NRGBA, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b, a := c.RGBA255()
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.NRGBA = parsed
	return nil
}

// WithAlpha returns c with its alpha scaled by a.
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	switch {
	case a <= 0:
		c.A = 0
	case a < 1:
		c.A = uint8(float64(c.A)*a + 0.5)
	}
	return c
}
