package entity

import (
	"image/color"

	"github.com/milk9111/climber/prefabs"
)

// Palette maps color names used by prefabs onto colors. Names missing from
// the palette are parsed as CSS colors.
type Palette map[string]color.NRGBA

func NewPalette(spec prefabs.PaletteSpec) Palette {
	return Palette{
		"background": spec.Background.NRGBA,
		"accent":     spec.Accent.NRGBA,
		"ground":     spec.Ground.NRGBA,
		"player":     spec.Player.NRGBA,
	}
}

func (p Palette) Resolve(name string) (color.NRGBA, error) {
	if c, ok := p[name]; ok {
		return c, nil
	}
	if name == "" {
		return color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, nil
	}
	return prefabs.ParseColor(name)
}

// Color is Resolve for names known to be valid.
func (p Palette) Color(name string) color.NRGBA {
	c, _ := p.Resolve(name)
	return c
}
