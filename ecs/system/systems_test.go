package system

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/level"
	"github.com/milk9111/climber/scene"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

func addCamera(t *testing.T, w *ecs.World, x, y float64) *component.Transform {
	t.Helper()
	e := ecs.CreateEntity(w)
	tf := &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}
	mustAdd(t, ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{LerpSpeed: 5, HalfHeight: 10}))
	mustAdd(t, ecs.Add(w, e, component.TransformComponent.Kind(), tf))
	return tf
}

func TestCameraFollowsPlayer(t *testing.T) {
	f := newPlayerFixture(t, 12, -6)
	cam := addCamera(t, f.w, 0, 0)

	NewCameraSystem(1.0 / 60).Update(f.w)

	if math.Abs(cam.X-1) > 1e-9 || math.Abs(cam.Y+0.5) > 1e-9 {
		t.Fatalf("camera = (%v,%v), want (1,-0.5)", cam.X, cam.Y)
	}
}

func TestCameraHoldsWithoutPlayer(t *testing.T) {
	w := ecs.NewWorld()
	cam := addCamera(t, w, 3, 4)

	NewCameraSystem(1.0 / 60).Update(w)

	if cam.X != 3 || cam.Y != 4 {
		t.Fatalf("camera = (%v,%v), want (3,4)", cam.X, cam.Y)
	}
}

func TestViewSize(t *testing.T) {
	tests := []struct {
		name         string
		cam          *component.Camera
		screenW      int
		screenH      int
		wantW, wantH float64
	}{
		{name: "default", cam: nil, screenW: 800, screenH: 600, wantW: 80.0 / 3, wantH: 20},
		{name: "zoomed", cam: &component.Camera{HalfHeight: 5}, screenW: 600, screenH: 600, wantW: 10, wantH: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ViewSize(tt.cam, tt.screenW, tt.screenH)
			if math.Abs(w-tt.wantW) > 1e-9 || math.Abs(h-tt.wantH) > 1e-9 {
				t.Fatalf("view = %vx%v, want %vx%v", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestTrailAgesOutPoints(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	tf := &component.Transform{X: 2, Y: 3, ScaleX: 1, ScaleY: 1, Rotation: math.Pi / 2}
	trails := &component.Trails{Items: []component.Trail{{Width: 0.5, Duration: 0.15, OffsetX: 1}}}
	mustAdd(t, ecs.Add(w, e, component.TransformComponent.Kind(), tf))
	mustAdd(t, ecs.Add(w, e, component.TrailsComponent.Kind(), trails))

	ts := NewTrailSystem(0.1)
	wantPoints := []int{1, 2, 2, 2}
	for i, want := range wantPoints {
		ts.Update(w)
		if got := len(trails.Items[0].Points); got != want {
			t.Fatalf("update %d: points = %d, want %d", i, got, want)
		}
	}

	last := trails.Items[0].Points[len(trails.Items[0].Points)-1]
	if math.Abs(last.X-2) > 1e-9 || math.Abs(last.Y-4) > 1e-9 {
		t.Fatalf("newest point = (%v,%v), want the rotated offset (2,4)", last.X, last.Y)
	}
	if last.Age != 0 {
		t.Fatalf("newest age = %v, want 0", last.Age)
	}
}

func TestHUDPopFinishes(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	hud := &component.ScoreHUD{Pop: gween.New(0, 1, 0.35, ease.OutBack)}
	mustAdd(t, ecs.Add(w, e, component.ScoreHUDComponent.Kind(), hud))

	h := NewHUDSystem(0.1)
	h.Update(w)
	if hud.Pop == nil {
		t.Fatal("pop finished after one step")
	}
	for i := 0; i < 3; i++ {
		h.Update(w)
	}
	if hud.Pop != nil {
		t.Fatal("pop should be done")
	}
	if hud.Scale != 1 {
		t.Fatalf("scale = %v, want 1", hud.Scale)
	}
}

func TestHUDWithoutPopIsFullSize(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	hud := &component.ScoreHUD{}
	mustAdd(t, ecs.Add(w, e, component.ScoreHUDComponent.Kind(), hud))

	NewHUDSystem(0.1).Update(w)

	if hud.Scale != 1 {
		t.Fatalf("scale = %v, want 1", hud.Scale)
	}
}

func TestRestartRunsThroughMachine(t *testing.T) {
	w := ecs.NewWorld()
	state := level.NewState(4)
	root := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, root, component.WorldStateComponent.Kind(), state))
	scenery := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, scenery, component.GroundTagComponent.Kind(), &component.GroundTag{}))

	manager := scene.NewManager(w, nil)
	inits := 0
	machine := scene.NewMachine(manager, root, func() error {
		inits++
		return nil
	})
	r := NewRestartSystem(machine)

	if !RequestRestart(w, "test") {
		t.Fatal("RequestRestart = false")
	}
	if RequestRestart(w, "again") {
		t.Fatal("a second request should be refused while one is queued")
	}

	for frame := 0; frame < 10 && (frame == 0 || r.Busy()); frame++ {
		manager.Tick()
		r.Update(w)
		if frame == 0 && !r.Busy() {
			t.Fatal("machine should be busy after a request")
		}
	}

	if r.Busy() {
		t.Fatalf("machine stuck in %v", machine.State())
	}
	if inits != 1 {
		t.Fatalf("inits = %d, want 1", inits)
	}
	if RestartPending(w) {
		t.Fatal("request was not consumed")
	}
	if ecs.IsAlive(w, scenery) {
		t.Fatal("scene entities should be destroyed by the reload")
	}
	if WorldState(w) != state {
		t.Fatal("world state should survive the reload")
	}
}

func TestRestartWithoutMachine(t *testing.T) {
	w := ecs.NewWorld()
	r := NewRestartSystem(nil)
	RequestRestart(w, "test")

	r.Update(w)

	if r.Busy() {
		t.Fatal("nil machine should never be busy")
	}
}

func TestDebugShortcuts(t *testing.T) {
	tests := []struct {
		name        string
		set         func(in *component.Input)
		wantScore   int
		wantRestart bool
		wantDie     bool
	}{
		{name: "restart", set: func(in *component.Input) { in.DebugRestart = true }, wantScore: 1, wantRestart: true},
		{name: "score up", set: func(in *component.Input) { in.DebugScoreUp = true }, wantScore: 2, wantRestart: true},
		{name: "die", set: func(in *component.Input) { in.DebugDie = true }, wantScore: 1, wantDie: true},
		{name: "idle", set: func(*component.Input) {}, wantScore: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPlayerFixture(t, 0, 0)
			state := level.NewState(4)
			f.addWorldRoot(t, state)
			tt.set(f.input(t))

			d := NewDebugSystem()
			d.Update(f.w)
			d.Update(f.w)

			if state.Score != tt.wantScore {
				t.Fatalf("score = %d, want %d", state.Score, tt.wantScore)
			}
			if RestartPending(f.w) != tt.wantRestart {
				t.Fatalf("restart pending = %v, want %v", RestartPending(f.w), tt.wantRestart)
			}
			if f.state(t).Die != tt.wantDie {
				t.Fatalf("die = %v, want %v", f.state(t).Die, tt.wantDie)
			}
		})
	}
}

func TestPlaySound(t *testing.T) {
	w := ecs.NewWorld()
	if PlaySound(w, "Jump") {
		t.Fatal("PlaySound without a sound bank should fail")
	}

	e := ecs.CreateEntity(w)
	a := &component.Audio{Names: []string{"Jump", "Death"}, Players: make([]*audio.Player, 2), Play: make([]bool, 2)}
	mustAdd(t, ecs.Add(w, e, component.AudioComponent.Kind(), a))

	if !PlaySound(w, "Death") || !a.Play[1] || a.Play[0] {
		t.Fatalf("play flags = %v, want only Death", a.Play)
	}
	if PlaySound(w, "Missing") {
		t.Fatal("unknown clip should not play")
	}

	NewAudioSystem().Update(w)
	if a.Play[1] {
		t.Fatal("audio system should clear the request")
	}
}

func TestStopSounds(t *testing.T) {
	w := ecs.NewWorld()
	if StopSounds(w) {
		t.Fatal("StopSounds without a sound bank should fail")
	}

	e := ecs.CreateEntity(w)
	a := &component.Audio{
		Names:   []string{"Jump", "Death"},
		Players: make([]*audio.Player, 2),
		Play:    make([]bool, 2),
		Stop:    make([]bool, 2),
	}
	mustAdd(t, ecs.Add(w, e, component.AudioComponent.Kind(), a))

	if !StopSounds(w) || !a.Stop[0] || !a.Stop[1] {
		t.Fatalf("stop flags = %v, want all set", a.Stop)
	}
	NewAudioSystem().Update(w)
	if a.Stop[0] || a.Stop[1] {
		t.Fatalf("stop flags = %v, want cleared", a.Stop)
	}
}
