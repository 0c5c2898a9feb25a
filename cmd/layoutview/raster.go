package main

import (
	"math"

	"github.com/milk9111/climber/level"
)

// view maps world units onto terminal cells. Cells are about twice as tall
// as they are wide, so one world unit spans xScale columns and one row.
type view struct {
	camX, camY float64
	cols, rows int
	xScale     float64
}

// edge keeps a rectangle that ends exactly on a cell border out of the
// next cell.
const edge = 1e-6

type cell struct {
	col, row int
}

type glyph struct {
	r    rune
	kind level.PieceKind
}

func (v view) project(x, y float64) cell {
	return cell{
		col: v.cols/2 + int(math.Floor((x-v.camX)*v.xScale)),
		row: v.rows/2 - int(math.Floor(y-v.camY)),
	}
}

func (v view) contains(c cell) bool {
	return c.col >= 0 && c.col < v.cols && c.row >= 0 && c.row < v.rows
}

func runeFor(k level.PieceKind) rune {
	switch k {
	case level.PieceGround:
		return '█'
	case level.PieceCorner:
		return '+'
	case level.PieceSpikeUp:
		return '^'
	case level.PieceSpikeDown:
		return 'v'
	case level.PieceEnemy:
		return 'o'
	default:
		return '?'
	}
}

// rasterize returns the visible glyph of every covered cell. Later pieces
// draw over earlier ones, so hazards and enemies stay visible on top of
// ground.
func rasterize(pieces []level.Piece, v view) map[cell]glyph {
	out := make(map[cell]glyph)
	put := func(c cell, k level.PieceKind) {
		if v.contains(c) {
			out[c] = glyph{r: runeFor(k), kind: k}
		}
	}

	for _, p := range pieces {
		switch p.Kind {
		case level.PieceGround, level.PieceCorner:
			if p.Size.X <= 0 || p.Size.Y <= 0 {
				continue
			}
			lo := v.project(p.Position.X-p.Size.X*0.5, p.Position.Y+p.Size.Y*0.5-edge)
			hi := v.project(p.Position.X+p.Size.X*0.5-edge, p.Position.Y-p.Size.Y*0.5)
			for row := lo.row; row <= hi.row; row++ {
				for col := lo.col; col <= hi.col; col++ {
					put(cell{col: col, row: row}, p.Kind)
				}
			}
		default:
			put(v.project(p.Position.X, p.Position.Y), p.Kind)
		}
	}
	return out
}
