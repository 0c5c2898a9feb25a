package prefabs

import (
	"errors"
	"image/color"
	"testing"

	"github.com/milk9111/climber/level"
	"github.com/milk9111/climber/sfx"
)

func TestLoadTuningSpec(t *testing.T) {
	spec, err := LoadTuningSpec("")
	if err != nil {
		t.Fatalf("LoadTuningSpec: %v", err)
	}

	if spec.Level != level.DefaultConfig() {
		t.Fatalf("level config = %+v, want %+v", spec.Level, level.DefaultConfig())
	}
	if got, want := spec.Palette.Background.NRGBA, (color.NRGBA{R: 0x19, G: 0x1A, B: 0x19, A: 0xFF}); got != want {
		t.Fatalf("background = %v, want %v", got, want)
	}
	if len(spec.Spike.Vertices) != 4 {
		t.Fatalf("spike vertices = %d, want 4", len(spec.Spike.Vertices))
	}
	if spec.Spike.OffsetY != -0.5 || spec.Spike.HalfWidth != 0.125 {
		t.Fatalf("unexpected spike lethal box %+v", spec.Spike)
	}
	if spec.Spawn == nil || *spec.Spawn != (SpawnSpec{X: 0, Y: 2}) {
		t.Fatalf("spawn = %+v, want (0,2)", spec.Spawn)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#4E9F3D", want: color.NRGBA{R: 0x4E, G: 0x9F, B: 0x3D, A: 0xFF}},
		{in: "#ff000080", want: color.NRGBA{R: 0xFF, A: 0x80}},
		{in: "white", want: color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
		{in: "rgb(30, 81, 40)", want: color.NRGBA{R: 30, G: 81, B: 40, A: 0xFF}},
		{in: "not-a-color", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWithAlpha(t *testing.T) {
	c := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	if got := WithAlpha(c, 0.25).A; got != 64 {
		t.Fatalf("alpha = %d, want 64", got)
	}
	if got := WithAlpha(c, 2).A; got != 255 {
		t.Fatalf("alpha above 1 should keep the color, got %d", got)
	}
	if got := WithAlpha(c, -1).A; got != 0 {
		t.Fatalf("negative alpha should clear, got %d", got)
	}
}

func TestLoadSoundsSpec(t *testing.T) {
	spec, err := LoadSoundsSpec()
	if err != nil {
		t.Fatalf("LoadSoundsSpec: %v", err)
	}
	want := sfx.DefaultClips()
	if len(spec.Clips) != len(want) {
		t.Fatalf("clips = %d, want %d", len(spec.Clips), len(want))
	}
	for i := range want {
		if spec.Clips[i] != want[i] {
			t.Fatalf("clip %d = %+v, want %+v", i, spec.Clips[i], want[i])
		}
	}
}

func TestEntityBuildSpecs(t *testing.T) {
	tests := []struct {
		file string
		keys []string
	}{
		{file: "player.yaml", keys: []string{"player_tag", "transform", "primitive", "trails", "physics_body", "player", "input"}},
		{file: "enemy.yaml", keys: []string{"enemy_tag", "transform", "primitive", "trails", "physics_body", "enemy"}},
		{file: "camera.yaml", keys: []string{"camera_tag", "transform", "camera"}},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			spec, err := LoadEntityBuildSpec(tt.file)
			if err != nil {
				t.Fatalf("LoadEntityBuildSpec: %v", err)
			}
			for _, k := range tt.keys {
				if _, ok := spec.Components[k]; !ok {
					t.Fatalf("%s: missing component %q", tt.file, k)
				}
			}
		})
	}
}

func TestDecodePlayerComponentSpec(t *testing.T) {
	spec, err := LoadEntityBuildSpec("player.yaml")
	if err != nil {
		t.Fatalf("LoadEntityBuildSpec: %v", err)
	}
	p, err := DecodeComponentSpec[PlayerComponentSpec](spec.Components["player"])
	if err != nil {
		t.Fatalf("DecodeComponentSpec: %v", err)
	}
	if p.MovementSpeed != 6 || p.JumpForce != 12 || p.FallSpeedFloor != -16 {
		t.Fatalf("unexpected player tuning %+v", p)
	}
}

func TestCleanScriptPath(t *testing.T) {
	tests := map[string]string{
		"difficulty.tengo":                 "scripts/difficulty.tengo",
		"scripts/difficulty.tengo":         "scripts/difficulty.tengo",
		"prefabs/scripts/difficulty.tengo": "scripts/difficulty.tengo",
		"prefabs/difficulty.tengo":         "scripts/difficulty.tengo",
		"difficulty":                       "scripts/difficulty.tengo",
	}
	for in, want := range tests {
		if got := cleanScriptPath(in); got != want {
			t.Errorf("cleanScriptPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDefaultScriptCompiles(t *testing.T) {
	src, err := LoadScript("difficulty.tengo")
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	d, err := level.NewScriptedDifficulty("difficulty.tengo", src)
	if err != nil {
		t.Fatalf("NewScriptedDifficulty: %v", err)
	}
	if got := d.SpikeDownChance(1000, 1, 0); got != 90 {
		t.Fatalf("SpikeDownChance = %v, want the 90 cap", got)
	}
}

func TestWatcherPollDrainsErrors(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	w.Errors <- errors.New("overflow")
	if changed := w.Poll(); len(changed) != 0 {
		t.Fatalf("changed = %v, want none", changed)
	}
	select {
	case err := <-w.Errors:
		t.Fatalf("error %v left undrained", err)
	default:
	}
}
