package component

import "github.com/hajimehoshi/ebiten/v2/audio"

type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
	Stop    []bool
}

// Request flags the named clip for playback on the next audio update.
func (a *Audio) Request(name string) bool {
	if a == nil {
		return false
	}
	for i, n := range a.Names {
		if n == name && i < len(a.Play) {
			a.Play[i] = true
			return true
		}
	}
	return false
}

// StopAll flags every clip to be paused on the next audio update.
func (a *Audio) StopAll() {
	if a == nil {
		return
	}
	for i := range a.Stop {
		a.Stop[i] = true
	}
}

var AudioComponent = NewComponent[Audio]()
