package assets

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// ShapeSize is the side length in pixels of the generated shape textures.
const ShapeSize = 256

var (
	shapesOnce sync.Once
	square     *ebiten.Image
	circle     *ebiten.Image
)

func loadShapes() {
	square = ebiten.NewImageFromImage(SquareMask(ShapeSize))
	circle = ebiten.NewImageFromImage(CircleMask(ShapeSize))
}

// Square is a white ShapeSize texture, tinted when drawn.
func Square() *ebiten.Image {
	shapesOnce.Do(loadShapes)
	return square
}

// Circle is a white disc on a transparent ShapeSize texture.
func Circle() *ebiten.Image {
	shapesOnce.Do(loadShapes)
	return circle
}

func SquareMask(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return img
}

// CircleMask fills every column of a disc centered in the texture, walking
// out from the center the way a midpoint fill does.
func CircleMask(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	cx, cy := size/2, size/2
	r := size / 2
	for x := 0; x <= r; x++ {
		d := int(math.Ceil(math.Sqrt(float64(r*r - x*x))))
		for y := 0; y <= d; y++ {
			for _, p := range [][2]int{{cx + x, cy + y}, {cx - x, cy + y}, {cx + x, cy - y}, {cx - x, cy - y}} {
				if image.Pt(p[0], p[1]).In(img.Rect) {
					img.SetNRGBA(p[0], p[1], white)
				}
			}
		}
	}
	return img
}
