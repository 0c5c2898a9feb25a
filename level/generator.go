package level

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/climber/rng"
)

type PieceKind uint8

const (
	PieceGround PieceKind = iota + 1
	PieceCorner
	PieceSpikeUp
	PieceSpikeDown
	PieceEnemy
)

func (k PieceKind) String() string {
	switch k {
	case PieceGround:
		return "ground"
	case PieceCorner:
		return "corner"
	case PieceSpikeUp:
		return "spike_up"
	case PieceSpikeDown:
		return "spike_down"
	case PieceEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Piece describes one thing to spawn for a chamber. Position is the center
// of the piece and Size its full extents.
type Piece struct {
	Kind     PieceKind
	Position cp.Vector
	Size     cp.Vector
	Rotation float64
	// Impulse is the initial push given to enemies.
	Impulse cp.Vector
	// Row is the platform row the piece belongs to, or -1 for boundaries.
	Row int
}

// Generator builds chambers on top of a State.
type Generator struct {
	cfg        Config
	rand       rng.Source
	difficulty Difficulty
}

func NewGenerator(cfg Config, src rng.Source, difficulty Difficulty) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = rng.NewReseeding()
	}
	if difficulty == nil {
		difficulty = ScoreRamp{}
	}
	return &Generator{cfg: cfg, rand: src, difficulty: difficulty}, nil
}

func (g *Generator) Config() Config {
	return g.cfg
}

// Populate rebuilds the chamber stack from scratch with one chamber per
// point of score and returns every piece to spawn.
func (g *Generator) Populate(s *State) []Piece {
	s.ResetLayers()
	s.Height = g.cfg.Height
	var pieces []Piece
	for i := 0; i < s.Score; i++ {
		_, p := g.Next(s)
		pieces = append(pieces, p...)
	}
	return pieces
}

// Next appends one chamber above the current top of s.
func (g *Generator) Next(s *State) (Layer, []Piece) {
	l := Layer{
		Width:               g.rand.Uniform(g.cfg.MinWidth, g.cfg.MaxWidth),
		MinSubLayerWidth:    g.cfg.MinSubLayerWidth,
		MinSubLayerGapWidth: g.cfg.MinSubLayerGapWidth,
	}

	if last, ok := s.Last(); ok {
		l.Position = cp.Vector{X: s.LastUpperGap.CenterX, Y: s.LastPosition.Y + s.Height*float64(last.Rows())}
	}
	l.BottomGap = s.LastUpperGap

	l.SubLayersAmount = min(g.rand.RangedInt(1, 5)-g.rand.RangedInt(0, 1), MaxSubLayers)
	l.SubLayers = make([]int, l.SubLayersAmount)
	for i := range l.SubLayers {
		l.SubLayers[i] = g.rand.RangedInt(1, l.MaxPlatforms())
	}

	l.UpperGap = g.upperGap(l)

	pieces := g.boundary(l, s.Height)
	pieces = append(pieces, g.rows(l, s)...)

	s.append(l)
	return l, pieces
}

func (g *Generator) upperGap(l Layer) Gap {
	max := l.Width - 1 - l.MinSubLayerGapWidth
	scale := g.rand.Uniform(l.MinSubLayerGapWidth, max*0.75)
	center := g.rand.Uniform(
		-max*0.5+scale*0.5+l.Position.X,
		max*0.5-scale*0.5+l.Position.X,
	)
	return Gap{Scale: scale, CenterX: center}
}

func (g *Generator) boundary(l Layer, height float64) []Piece {
	top := l.Top(height)
	span := height * float64(l.Rows())
	pieces := []Piece{
		segment(l.Left(), l.BottomGap.Left(), l.Position.Y),
		segment(l.BottomGap.Right(), l.Right(), l.Position.Y),
		segment(l.Left(), l.UpperGap.Left(), top),
		segment(l.UpperGap.Right(), l.Right(), top),
		{Kind: PieceGround, Position: cp.Vector{X: l.Left(), Y: l.Position.Y + span*0.5}, Size: cp.Vector{X: 1, Y: span}, Row: -1},
		{Kind: PieceGround, Position: cp.Vector{X: l.Right(), Y: l.Position.Y + span*0.5}, Size: cp.Vector{X: 1, Y: span}, Row: -1},
	}
	for _, c := range []cp.Vector{
		{X: l.Left(), Y: l.Position.Y},
		{X: l.Right(), Y: l.Position.Y},
		{X: l.Left(), Y: top},
		{X: l.Right(), Y: top},
	} {
		pieces = append(pieces, Piece{Kind: PieceCorner, Position: c, Size: cp.Vector{X: 1, Y: 1}, Row: -1})
	}
	return pieces
}

func segment(from, to, y float64) Piece {
	return Piece{
		Kind:     PieceGround,
		Position: cp.Vector{X: (from + to) * 0.5, Y: y},
		Size:     cp.Vector{X: math.Abs(to - from), Y: 1},
		Row:      -1,
	}
}

// PlatformSlot returns the center offset and maximum scale of platform i
// (1-based) out of count in a chamber of the given width.
func PlatformSlot(width, gap float64, i, count int) (center, scaleMax float64) {
	widthPart := (width - 1) / float64(count)
	scaleMax = widthPart - gap
	center = widthPart*float64(i) - widthPart*0.5 - (width-1)*0.5
	if i == 1 {
		scaleMax -= gap * 0.25
		center += gap * 0.25
	}
	if i == count {
		scaleMax -= gap * 0.25
		center -= gap * 0.25
	}
	return center, scaleMax
}

func (g *Generator) rows(l Layer, s *State) []Piece {
	var pieces []Piece
	rows := len(l.SubLayers)
	for row, count := range l.SubLayers {
		for i := 1; i <= count; i++ {
			center, scaleMax := PlatformSlot(l.Width, l.MinSubLayerGapWidth, i, count)
			scale := g.rand.Uniform(l.MinSubLayerWidth, scaleMax)
			offset := g.rand.Uniform(
				-scaleMax*0.5+scale*0.5+center,
				scaleMax*0.5-scale*0.5+center,
			)
			ground := Piece{
				Kind:     PieceGround,
				Position: l.Position.Add(cp.Vector{X: offset, Y: s.Height * float64(row+1)}),
				Size:     cp.Vector{X: scale, Y: 1},
				Row:      row,
			}
			pieces = append(pieces, ground)
			pieces = append(pieces, g.hazards(l, s, ground, rows, row)...)
		}
	}
	return pieces
}

func (g *Generator) hazards(l Layer, s *State, ground Piece, rows, row int) []Piece {
	var pieces []Piece
	gx, gy, w := ground.Position.X, ground.Position.Y, ground.Size.X
	units := int(math.Floor(w))
	for slot := 0; slot < units; slot++ {
		if g.rand.Chance(g.difficulty.SpikeUpChance(s.Score, rows, row)) {
			x := g.rand.Uniform(gx-w*0.5+0.5, gx+w*0.5-0.5)
			pieces = append(pieces, Piece{Kind: PieceSpikeUp, Position: cp.Vector{X: x, Y: gy + 1}, Size: cp.Vector{X: 1, Y: 2}, Row: row})
		}
		if g.rand.Chance(g.difficulty.SpikeDownChance(s.Score, rows, row)) {
			x := g.rand.Uniform(gx-w*0.5+0.5, gx+w*0.5-0.5)
			pieces = append(pieces, Piece{Kind: PieceSpikeDown, Position: cp.Vector{X: x, Y: gy - 1}, Size: cp.Vector{X: 1, Y: 2}, Rotation: math.Pi, Row: row})
		}
		if g.rand.Chance(g.difficulty.EnemyChance(s.Score, rows, row, slot)) && g.difficulty.EnemyRowAllowed(s.Score, row) {
			pieces = append(pieces, g.enemy(l, s.Height, row))
		}
	}
	return pieces
}

func (g *Generator) enemy(l Layer, height float64, row int) Piece {
	pos := l.Position.Add(cp.Vector{
		X: g.rand.Uniform(-l.Width*0.5+1, l.Width*0.5-1),
		Y: height*float64(l.Rows()) - height*0.5,
	})
	scale := g.rand.Uniform(g.cfg.MinEnemyScale, g.cfg.MaxEnemyScale)
	impulse := cp.Vector{
		X: -g.rand.Uniform(0, 1) * g.rand.Uniform(0, 1),
		Y: -g.rand.Uniform(0, 1) * g.rand.Uniform(0, 1),
	}
	return Piece{Kind: PieceEnemy, Position: pos, Size: cp.Vector{X: scale, Y: scale}, Impulse: impulse, Row: row}
}
