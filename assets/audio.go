package assets

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate is the output rate of the shared audio context.
const SampleRate = 44100

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// AudioContext returns the process-wide audio context. Ebiten allows only
// one.
func AudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.CurrentContext()
		if audioContext == nil {
			audioContext = audio.NewContext(SampleRate)
		}
	})
	return audioContext
}

// NewPlayerFromPCM wraps 16-bit little-endian stereo PCM at SampleRate in a
// player.
func NewPlayerFromPCM(pcm []byte) *audio.Player {
	return AudioContext().NewPlayerFromBytes(pcm)
}
