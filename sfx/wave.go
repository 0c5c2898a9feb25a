package sfx

import (
	"fmt"
	"math"
	"strings"

	"github.com/gopxl/beep"
)

// Waveform selects the oscillator shape of a clip.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSawtooth
	WaveTriangle
)

func (w Waveform) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSquare:
		return "square"
	case WaveSawtooth:
		return "sawtooth"
	case WaveTriangle:
		return "triangle"
	default:
		return fmt.Sprintf("waveform(%d)", int(w))
	}
}

func ParseWaveform(s string) (Waveform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sine":
		return WaveSine, nil
	case "square", "rectangle":
		return WaveSquare, nil
	case "saw", "sawtooth":
		return WaveSawtooth, nil
	case "triangle":
		return WaveTriangle, nil
	default:
		return 0, fmt.Errorf("sfx: unknown waveform %q", s)
	}
}

// UnmarshalYAML lets prefab specs name waveforms.
func (w *Waveform) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseWaveform(s)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// Sample returns sample i of a wave with the given frequency and sample
// rate, in [-1, 1].
func Sample(w Waveform, i int, frequency, sampleRate float64) float64 {
	t := float64(i) * frequency / sampleRate
	switch w {
	case WaveSquare:
		if repeat(t, 1) > 0.5 {
			return 1
		}
		return -1
	case WaveSawtooth:
		return repeat(t, 1)*2 - 1
	case WaveTriangle:
		return pingPong(t*2, 1)*2 - 1
	default:
		return math.Sin(2 * math.Pi * t)
	}
}

func repeat(t, length float64) float64 {
	return t - math.Floor(t/length)*length
}

func pingPong(t, length float64) float64 {
	t = repeat(t, length*2)
	return length - math.Abs(t-length)
}

// oscillator streams a fixed number of samples of one waveform.
type oscillator struct {
	wave       Waveform
	frequency  float64
	sampleRate beep.SampleRate
	length     int
	position   int
}

// NewOscillator returns a mono-in-stereo streamer of length samples.
func NewOscillator(w Waveform, length int, frequency float64, sampleRate beep.SampleRate) beep.Streamer {
	return &oscillator{wave: w, frequency: frequency, sampleRate: sampleRate, length: length}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}
		v := Sample(o.wave, o.position, o.frequency, float64(o.sampleRate))
		samples[i][0] = v
		samples[i][1] = v
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }
