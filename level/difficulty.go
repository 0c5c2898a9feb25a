package level

// Difficulty maps the current score onto spawn percentages. rows is the
// number of platform rows of the chamber, row the zero-based row index and
// slot the zero-based unit segment along a platform.
type Difficulty interface {
	SpikeUpChance(score, rows, row int) float64
	SpikeDownChance(score, rows, row int) float64
	EnemyChance(score, rows, row, slot int) float64
	EnemyRowAllowed(score, row int) bool
}

// ScoreRamp is the built-in difficulty curve. Percentages are not clamped;
// past 100 a roll always succeeds.
type ScoreRamp struct{}

func (ScoreRamp) SpikeUpChance(score, rows, row int) float64 {
	return 1 + float64(score)*0.25/float64(rows-row+1)*50
}

func (ScoreRamp) SpikeDownChance(score, rows, row int) float64 {
	return 1 + float64(score)*0.25/float64(rows-row+1)*75
}

func (ScoreRamp) EnemyChance(score, rows, row, slot int) float64 {
	return 1 + float64(score)*0.25/float64(rows-row+1+slot)*25
}

func (ScoreRamp) EnemyRowAllowed(score, row int) bool {
	return float64(row) < 1+float64(score)*0.25
}
