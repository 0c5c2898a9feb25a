package sfx

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const resampleQuality = 4

var ErrEmptyClip = errors.New("sfx: clip has no samples")

// Clip describes one synthesized sound effect. Pitch scales the playback
// rate, so a pitch below 1 is lower and longer.
type Clip struct {
	Name       string   `yaml:"name"`
	Wave       Waveform `yaml:"wave"`
	Samples    int      `yaml:"samples"`
	SampleRate int      `yaml:"sample_rate"`
	Frequency  float64  `yaml:"frequency"`
	Volume     float64  `yaml:"volume"`
	Pitch      float64  `yaml:"pitch"`
}

// DefaultClips are the four cues of the game.
func DefaultClips() []Clip {
	base := Clip{Samples: 44000, SampleRate: 176000, Frequency: 440}
	with := func(name string, w Waveform, volume, pitch float64) Clip {
		c := base
		c.Name, c.Wave, c.Volume, c.Pitch = name, w, volume, pitch
		return c
	}
	return []Clip{
		with("Jump", WaveTriangle, 0.5, 0.9),
		with("ExtraJump", WaveTriangle, 0.5, 1),
		with("End", WaveSquare, 0.6, 1.5),
		with("Death", WaveSawtooth, 0.6, 0.5),
	}
}

func (c Clip) Validate() error {
	if c.Samples <= 0 || c.SampleRate <= 0 {
		return fmt.Errorf("clip %q: %w", c.Name, ErrEmptyClip)
	}
	if c.Pitch <= 0 {
		return fmt.Errorf("clip %q: pitch must be positive, got %v", c.Name, c.Pitch)
	}
	return nil
}

// Synthesize builds the streamer of c resampled to outRate.
func Synthesize(c Clip, outRate beep.SampleRate) (beep.Streamer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var s beep.Streamer = NewOscillator(c.Wave, c.Samples, c.Frequency, beep.SampleRate(c.SampleRate))
	played := beep.SampleRate(math.Round(float64(c.SampleRate) * c.Pitch))
	if played != outRate {
		s = beep.Resample(resampleQuality, played, outRate, s)
	}
	return newVolume(s, c.Volume), nil
}

func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// PCM drains s into 16-bit little-endian stereo frames.
func PCM(s beep.Streamer) ([]byte, error) {
	buf := make([][2]float64, 512)
	var out []byte
	frame := make([]byte, 4)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(buf[i][1])))
			out = append(out, frame...)
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}

// Render synthesizes c straight to PCM at outRate.
func Render(c Clip, outRate int) ([]byte, error) {
	s, err := Synthesize(c, beep.SampleRate(outRate))
	if err != nil {
		return nil, err
	}
	return PCM(s)
}
