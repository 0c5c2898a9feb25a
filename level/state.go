package level

import "github.com/jakecoffman/cp"

// State is the world aggregate shared by the generator and the simulation.
type State struct {
	Score        int
	BestScore    int
	Layers       []Layer
	LastUpperGap Gap
	LastPosition cp.Vector
	Height       float64
}

func NewState(height float64) *State {
	return &State{Score: 1, BestScore: 1, Height: height}
}

// ResetLayers forgets every chamber while keeping the scores.
func (s *State) ResetLayers() {
	s.Layers = nil
	s.LastUpperGap = Gap{}
	s.LastPosition = cp.Vector{}
}

// Last returns the topmost chamber.
func (s *State) Last() (Layer, bool) {
	if len(s.Layers) == 0 {
		return Layer{}, false
	}
	return s.Layers[len(s.Layers)-1], true
}

// ClearLine is the height above which the topmost chamber counts as cleared:
// margin above its ceiling.
func (s *State) ClearLine(margin float64) (float64, bool) {
	last, ok := s.Last()
	if !ok {
		return 0, false
	}
	return last.Top(s.Height) + margin, true
}

// Clear records a cleared chamber and returns the new score.
func (s *State) Clear() int {
	s.Score++
	if s.Score > s.BestScore {
		s.BestScore = s.Score
	}
	return s.Score
}

// Die resets the attempt. BestScore is kept.
func (s *State) Die() {
	s.Score = 1
}

// RecordBest raises BestScore to best when it is higher.
func (s *State) RecordBest(best int) {
	if best > s.BestScore {
		s.BestScore = best
	}
}

func (s *State) append(l Layer) {
	s.Layers = append(s.Layers, l)
	s.LastUpperGap = l.UpperGap
	s.LastPosition = l.Position
}
