// Command layoutview prints the chambers the generator builds for a seed
// and score in the terminal.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/climber/ecs/entity"
	"github.com/milk9111/climber/level"
	"github.com/milk9111/climber/prefabs"
	"github.com/milk9111/climber/rng"
)

type viewer struct {
	screen tcell.Screen
	tuning *prefabs.TuningSpec
	styles map[level.PieceKind]tcell.Style
	bg     tcell.Style

	seed   int64
	score  int
	state  *level.State
	pieces []level.Piece
	view   view
}

func main() {
	seed := flag.Int64("seed", 1, "generator seed")
	score := flag.Int("score", 5, "score to generate chambers for")
	tuningName := flag.String("tuning", "", "tuning prefab name in prefabs/")
	flag.Parse()

	tuning, err := prefabs.LoadTuningSpec(*tuningName)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()

	v := newViewer(screen, tuning, *seed, *score)
	if err := v.regenerate(); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	v.run()
}

func newViewer(screen tcell.Screen, tuning *prefabs.TuningSpec, seed int64, score int) *viewer {
	palette := entity.NewPalette(tuning.Palette)
	toTcell := func(name string) tcell.Color {
		c := palette.Color(name)
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	bg := tcell.StyleDefault.Background(toTcell("background"))

	return &viewer{
		screen: screen,
		tuning: tuning,
		bg:     bg.Foreground(toTcell("player")),
		styles: map[level.PieceKind]tcell.Style{
			level.PieceGround:    bg.Foreground(toTcell("ground")),
			level.PieceCorner:    bg.Foreground(toTcell("ground")),
			level.PieceSpikeUp:   bg.Foreground(toTcell("accent")).Bold(true),
			level.PieceSpikeDown: bg.Foreground(toTcell("accent")).Bold(true),
			level.PieceEnemy:     bg.Foreground(toTcell("player")),
		},
		seed:  seed,
		score: score,
		view:  view{xScale: 2},
	}
}

func (v *viewer) regenerate() error {
	gen, err := level.NewGenerator(v.tuning.Level, rng.NewStable(v.seed), nil)
	if err != nil {
		return err
	}
	v.state = level.NewState(v.tuning.Level.Height)
	v.state.Score = v.score
	v.pieces = gen.Populate(v.state)
	return nil
}

func (v *viewer) run() {
	for {
		v.draw()

		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey reports false when the viewer should exit.
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	regen := false
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.view.camY += 2
	case tcell.KeyDown:
		v.view.camY -= 2
	case tcell.KeyLeft:
		v.view.camX -= 2
	case tcell.KeyRight:
		v.view.camX += 2
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'n':
			v.seed++
			regen = true
		case 'p':
			v.seed--
			regen = true
		case '+', '=':
			v.score++
			regen = true
		case '-':
			if v.score > 1 {
				v.score--
				regen = true
			}
		case 't':
			if last, ok := v.state.Last(); ok {
				v.view.camX, v.view.camY = last.Position.X, last.Top(v.state.Height)
			}
		case 'b':
			v.view.camX, v.view.camY = 0, 0
		}
	}

	if regen {
		if err := v.regenerate(); err != nil {
			log.Printf("[layoutview] %v", err)
		}
	}
	return true
}

func (v *viewer) draw() {
	v.screen.Clear()
	v.view.cols, v.view.rows = v.screen.Size()
	v.screen.Fill(' ', v.bg)

	for c, g := range rasterize(v.pieces, v.view) {
		v.screen.SetContent(c.col, c.row, g.r, nil, v.styles[g.kind])
	}

	status := fmt.Sprintf(" seed %d  score %d  chambers %d  pieces %d  cam (%.0f,%.0f)  arrows pan, n/p seed, +/- score, t top, b bottom, q quit ",
		v.seed, v.score, len(v.state.Layers), len(v.pieces), v.view.camX, v.view.camY)
	for i, r := range status {
		if i >= v.view.cols {
			break
		}
		v.screen.SetContent(i, 0, r, nil, v.bg.Reverse(true))
	}
	v.screen.Show()
}
