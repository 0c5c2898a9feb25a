package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/climber/assets"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
)

const (
	defaultHalfHeight = 10
	trailSortingOrder = -2
	hudSortingOrder   = 10
	trailHeadAlpha    = 0.75
)

type drawKind uint8

const (
	drawPrimitive drawKind = iota
	drawTrails
	drawHUD
)

type drawItem struct {
	order  int
	entity ecs.Entity
	kind   drawKind
}

// RenderSystem draws the world through the camera. World y points up; the
// view matrix flips it for the screen.
type RenderSystem struct {
	background color.Color
}

func NewRenderSystem(background color.Color) *RenderSystem {
	return &RenderSystem{background: background}
}

// ViewSize returns the world extents visible through cam on a screen of
// the given pixel size.
func ViewSize(cam *component.Camera, screenW, screenH int) (float64, float64) {
	half := float64(defaultHalfHeight)
	if cam != nil && cam.HalfHeight > 0 {
		half = cam.HalfHeight
	}
	h := half * 2
	if screenH <= 0 {
		return h, h
	}
	return h * float64(screenW) / float64(screenH), h
}

// viewport is the camera's view of the world for one screen size.
type viewport struct {
	geoM       ebiten.GeoM
	ppu        float64
	camX, camY float64
	w, h       float64
}

func cameraViewport(w *ecs.World, screenW, screenH int) viewport {
	vp := viewport{}
	var cam *component.Camera
	if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		cam, _ = ecs.Get(w, camEntity, component.CameraComponent.Kind())
		if tf, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
			vp.camX, vp.camY = tf.X, tf.Y
		}
	}

	vp.w, vp.h = ViewSize(cam, screenW, screenH)
	vp.ppu = float64(screenH) / vp.h
	vp.geoM.Translate(-vp.camX, -vp.camY)
	vp.geoM.Scale(vp.ppu, -vp.ppu)
	vp.geoM.Translate(float64(screenW)/2, float64(screenH)/2)
	return vp
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	if r.background != nil {
		screen.Fill(r.background)
	}

	vp := cameraViewport(w, screen.Bounds().Dx(), screen.Bounds().Dy())
	view := vp.geoM

	var items []drawItem
	ecs.ForEach(w, component.PrimitiveComponent.Kind(), func(e ecs.Entity, p *component.Primitive) {
		items = append(items, drawItem{order: p.SortingOrder, entity: e, kind: drawPrimitive})
	})
	ecs.ForEach(w, component.TrailsComponent.Kind(), func(e ecs.Entity, _ *component.Trails) {
		items = append(items, drawItem{order: trailSortingOrder, entity: e, kind: drawTrails})
	})
	ecs.ForEach(w, component.ScoreHUDComponent.Kind(), func(e ecs.Entity, _ *component.ScoreHUD) {
		items = append(items, drawItem{order: hudSortingOrder, entity: e, kind: drawHUD})
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].order != items[j].order {
			return items[i].order < items[j].order
		}
		if items[i].kind != items[j].kind {
			return items[i].kind > items[j].kind
		}
		return uint64(items[i].entity) < uint64(items[j].entity)
	})

	for _, it := range items {
		switch it.kind {
		case drawPrimitive:
			tf, ok := ecs.Get(w, it.entity, component.TransformComponent.Kind())
			if !ok {
				continue
			}
			p, _ := ecs.Get(w, it.entity, component.PrimitiveComponent.Kind())
			drawShape(screen, view, *tf, p.Shape, p.Color)
		case drawTrails:
			trails, _ := ecs.Get(w, it.entity, component.TrailsComponent.Kind())
			drawTrailRibbons(screen, view, vp.ppu, trails)
		case drawHUD:
			hud, _ := ecs.Get(w, it.entity, component.ScoreHUDComponent.Kind())
			drawScoreHUD(screen, view, hud, vp.camX-vp.w/2, vp.camY+vp.h/2)
		}
	}
}

func drawShape(screen *ebiten.Image, view ebiten.GeoM, tf component.Transform, shape component.PrimitiveShape, clr color.NRGBA) {
	img := assets.Square()
	if shape == component.ShapeCircle {
		img = assets.Circle()
	}

	sx, sy := tf.ScaleX, tf.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}

	size := float64(assets.ShapeSize)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-size/2, -size/2)
	op.GeoM.Scale(1/size, 1/size)
	if shape == component.ShapeTriangle {
		op.GeoM.Scale(0.7, 0.7)
		op.GeoM.Rotate(math.Pi / 4)
		op.GeoM.Translate(0, -0.25)
	}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(tf.Rotation)
	op.GeoM.Translate(tf.X, tf.Y)
	op.GeoM.Concat(view)
	op.ColorScale.ScaleWithColor(clr)
	op.Filter = ebiten.FilterLinear

	screen.DrawImage(img, op)
}

func drawTrailRibbons(screen *ebiten.Image, view ebiten.GeoM, ppu float64, trails *component.Trails) {
	for _, tr := range trails.Items {
		if len(tr.Points) < 2 || tr.Duration <= 0 {
			continue
		}
		width := float32(tr.Width * ppu)
		for i := 1; i < len(tr.Points); i++ {
			a, b := tr.Points[i-1], tr.Points[i]
			alpha := trailHeadAlpha * (1 - a.Age/tr.Duration)
			if alpha <= 0 {
				continue
			}
			clr := tr.Color
			clr.A = uint8(float64(clr.A) * alpha)

			x0, y0 := view.Apply(a.X, a.Y)
			x1, y1 := view.Apply(b.X, b.Y)
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
		}
	}
}

// drawScoreHUD lays the score rows out from the top-left corner of the
// view. A separator dot sits under every fifth gap, larger every tenth.
func drawScoreHUD(screen *ebiten.Image, view ebiten.GeoM, hud *component.ScoreHUD, left, top float64) {
	scale := hud.Scale
	for _, row := range hud.Rows {
		baseX := left + row.OffsetX
		baseY := top - row.OffsetY
		for i := 0; i < row.Value; i++ {
			dot := component.Transform{X: baseX + float64(i)*row.Distance, Y: baseY, ScaleX: 0.5 * scale, ScaleY: 0.5 * scale}
			drawShape(screen, view, dot, component.ShapeCircle, row.Color)

			if i > 0 && i%5 == 0 {
				s := 0.1
				if i%10 == 0 {
					s = 0.2
				}
				x := (float64(i-1)*row.Distance + float64(i)*row.Distance) * 0.5
				sep := component.Transform{X: baseX + x, Y: baseY - 0.25, ScaleX: s * scale, ScaleY: s * scale}
				drawShape(screen, view, sep, component.ShapeCircle, row.Color)
			}
		}
	}
}
