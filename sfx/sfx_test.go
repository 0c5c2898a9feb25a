package sfx

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestSample(t *testing.T) {
	const sr = 176000.0
	// 440 Hz at 176 kHz gives a period of 400 samples.
	tests := []struct {
		name string
		wave Waveform
		i    int
		want float64
	}{
		{name: "sine start", wave: WaveSine, i: 0, want: 0},
		{name: "sine quarter", wave: WaveSine, i: 100, want: 1},
		{name: "square low half", wave: WaveSquare, i: 100, want: -1},
		{name: "square high half", wave: WaveSquare, i: 300, want: 1},
		{name: "saw start", wave: WaveSawtooth, i: 0, want: -1},
		{name: "saw middle", wave: WaveSawtooth, i: 200, want: 0},
		{name: "triangle start", wave: WaveTriangle, i: 0, want: -1},
		{name: "triangle rising", wave: WaveTriangle, i: 100, want: 0},
		{name: "triangle peak", wave: WaveTriangle, i: 200, want: 1},
		{name: "triangle back down", wave: WaveTriangle, i: 400, want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sample(tt.wave, tt.i, 440, sr)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseWaveform(t *testing.T) {
	for _, name := range []string{"sine", "square", "rectangle", "saw", "Sawtooth", "triangle"} {
		if _, err := ParseWaveform(name); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
	if _, err := ParseWaveform("noise"); err == nil {
		t.Fatal("expected error for unknown waveform")
	}
}

func TestClipYAML(t *testing.T) {
	src := []byte("name: Jump\nwave: triangle\nsamples: 10\nsample_rate: 100\nfrequency: 5\nvolume: 0.5\npitch: 0.9\n")
	var c Clip
	if err := yaml.Unmarshal(src, &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if c.Wave != WaveTriangle || c.Pitch != 0.9 || c.SampleRate != 100 {
		t.Fatalf("unexpected clip %+v", c)
	}
}

func TestRenderLengthFollowsPitch(t *testing.T) {
	const out = 44100
	for _, c := range DefaultClips() {
		t.Run(c.Name, func(t *testing.T) {
			pcm, err := Render(c, out)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if len(pcm)%4 != 0 {
				t.Fatalf("pcm length %d is not whole stereo frames", len(pcm))
			}
			frames := float64(len(pcm) / 4)
			want := float64(c.Samples) / (float64(c.SampleRate) * c.Pitch) * out
			if math.Abs(frames-want) > want*0.01+8 {
				t.Fatalf("expected about %.0f frames, got %.0f", want, frames)
			}
		})
	}
}

func TestRenderAppliesVolume(t *testing.T) {
	c := Clip{Name: "loud", Wave: WaveSquare, Samples: 400, SampleRate: 44100, Frequency: 441, Volume: 0.5, Pitch: 1}
	pcm, err := Render(c, 44100)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	peak := 0
	for i := 0; i+1 < len(pcm); i += 2 {
		v := int(int16(binary.LittleEndian.Uint16(pcm[i:])))
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	want := math.MaxInt16 / 2
	if peak < want-2 || peak > want+2 {
		t.Fatalf("expected peak near %d, got %d", want, peak)
	}
}

func TestRenderRejectsEmptyClip(t *testing.T) {
	_, err := Render(Clip{Name: "empty", Pitch: 1}, 44100)
	if !errors.Is(err, ErrEmptyClip) {
		t.Fatalf("expected ErrEmptyClip, got %v", err)
	}
}
