package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/climber/common"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/ecs/entity"
	"github.com/milk9111/climber/ecs/system"
	"github.com/milk9111/climber/level"
	"github.com/milk9111/climber/prefabs"
	"github.com/milk9111/climber/rng"
	"github.com/milk9111/climber/scene"
	"github.com/milk9111/climber/store"
	"golang.org/x/image/font/basicfont"
)

const appName = "climber"

type Options struct {
	Debug            bool
	Seed             int64
	StableRNG        bool
	Tuning           string
	Watch            bool
	Width            int
	Height           int
	DifficultyScript string
}

type Game struct {
	opts Options

	world   *ecs.World
	root    ecs.Entity
	scene   *entity.Scene
	rand    rng.Source
	best    *store.BestScore
	watcher *prefabs.Watcher

	manager *scene.Manager
	machine *scene.Machine
	restart *system.RestartSystem
	physics *system.PhysicsSystem

	input  *system.InputSystem
	audio  *system.AudioSystem
	fixed  *ecs.Scheduler
	frame  *ecs.Scheduler
	render *system.RenderSystem

	accumulator float64
	paused      bool
	quit        bool
	pauseUI     *ebitenui.UI
	debugFace   ebtext.Face
}

func NewGame(opts Options) (*Game, error) {
	if opts.Width <= 0 {
		opts.Width = 1280
	}
	if opts.Height <= 0 {
		opts.Height = 720
	}

	tuning, err := prefabs.LoadTuningSpec(opts.Tuning)
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:      opts,
		world:     ecs.NewWorld(),
		debugFace: ebtext.NewGoXFace(basicfont.Face7x13),
	}
	if opts.StableRNG {
		g.rand = rng.NewStable(opts.Seed)
	} else {
		g.rand = rng.NewReseeding()
	}

	gen, err := g.newGenerator(tuning)
	if err != nil {
		return nil, err
	}
	palette := entity.NewPalette(tuning.Palette)

	g.best = store.Open(appName)
	state := level.NewState(tuning.Level.Height)
	state.RecordBest(g.best.Best())
	g.root, err = entity.NewWorldRoot(g.world, state)
	if err != nil {
		return nil, err
	}

	sounds, err := prefabs.LoadSoundsSpec()
	if err != nil {
		return nil, err
	}
	if _, err := entity.NewSoundBank(g.world, sounds.Clips); err != nil {
		return nil, err
	}

	g.scene = &entity.Scene{Tuning: tuning, Palette: palette, Generator: gen, Root: g.root}
	g.physics = system.NewPhysicsSystem()
	g.manager = scene.NewManager(g.world, g.physics.Reset)
	g.machine = scene.NewMachine(g.manager, g.root, g.initScene)
	g.restart = system.NewRestartSystem(g.machine)

	enemies := system.NewEnemySystem(g.physics)
	g.input = system.NewInputSystem(opts.Debug)
	g.fixed = ecs.NewScheduler(
		system.NewPlayerPhysicsSystem(g.physics, enemies),
		g.physics,
	)
	dt := 1.0 / common.FrameRate
	g.audio = system.NewAudioSystem()
	g.frame = ecs.NewScheduler(
		system.NewPlayerSystem(g.physics),
		system.NewCameraSystem(dt),
		g.audio,
		system.NewTrailSystem(dt),
		system.NewHUDSystem(dt),
	)
	if opts.Debug {
		g.frame.Add(system.NewDebugSystem())
	}
	g.render = system.NewRenderSystem(palette.Color("background"))

	if opts.Watch {
		w, err := prefabs.WatchDefault()
		if err != nil {
			log.Printf("[prefabs] hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	if err := g.initScene(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) newGenerator(tuning *prefabs.TuningSpec) (*level.Generator, error) {
	name := g.opts.DifficultyScript
	if name == "" {
		name = tuning.Difficulty
	}

	var difficulty level.Difficulty
	if name != "" {
		src, err := prefabs.LoadScript(name)
		if err != nil {
			return nil, fmt.Errorf("load difficulty script %q: %w", name, err)
		}
		d, err := level.NewScriptedDifficulty(name, src)
		if err != nil {
			return nil, err
		}
		difficulty = d
	}
	return level.NewGenerator(tuning.Level, g.rand, difficulty)
}

// initScene runs once at startup and again at the end of every restart.
func (g *Game) initScene() error {
	g.reloadTuning()

	if state := system.WorldState(g.world); state != nil {
		if _, err := g.best.Submit(state.BestScore); err != nil {
			log.Printf("[store] %v", err)
		}
	}
	if err := g.scene.Build(g.world); err != nil {
		return err
	}
	g.physics.Sync(g.world)
	g.accumulator = 0
	return nil
}

// reloadTuning picks up prefab edits reported by the watcher. A broken
// edit keeps the previous tuning.
func (g *Game) reloadTuning() {
	if g.watcher == nil {
		return
	}
	changed := g.watcher.Poll()
	if len(changed) == 0 {
		return
	}
	log.Printf("[prefabs] changed: %s", strings.Join(baseNames(changed), ", "))

	tuning, err := prefabs.LoadTuningSpec(g.opts.Tuning)
	if err != nil {
		log.Printf("[prefabs] reload tuning: %v", err)
		return
	}
	gen, err := g.newGenerator(tuning)
	if err != nil {
		log.Printf("[prefabs] reload generator: %v", err)
		return
	}

	g.scene.Tuning = tuning
	g.scene.Generator = gen
	g.scene.Palette = entity.NewPalette(tuning.Palette)
	g.render = system.NewRenderSystem(g.scene.Palette.Color("background"))
	if state := system.WorldState(g.world); state != nil {
		state.Height = tuning.Level.Height
	}
}

func baseNames(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, filepath.Base(p))
	}
	return out
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.togglePause()
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.manager.Tick()
	g.restart.Update(g.world)
	if g.restart.Busy() {
		return nil
	}

	g.input.Update(g.world)
	g.accumulator += 1.0 / float64(ebiten.TPS())
	for g.accumulator >= common.FixedDelta {
		g.fixed.Update(g.world)
		g.accumulator -= common.FixedDelta
	}
	g.frame.Update(g.world)
	return nil
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	if g.paused {
		system.StopSounds(g.world)
		g.audio.Update(g.world)
		g.pauseUI = NewPauseUI(g)
	}
}

// restartFromPause ends the current attempt and rebuilds the scene.
func (g *Game) restartFromPause() {
	g.paused = false
	if state := system.WorldState(g.world); state != nil {
		state.Die()
	}
	system.RequestRestart(g.world, "pause menu")
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if g.opts.Debug {
		g.physics.DrawPhysicsDebug(g.world, screen)
		g.drawDebug(screen)
	}
	if g.paused && g.pauseUI != nil {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	lines := []string{
		fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("scene: %d  restart: %s", g.manager.Active(), g.machine.State()),
	}
	if state := system.WorldState(g.world); state != nil {
		lines = append(lines, fmt.Sprintf("score: %d  best: %d  chambers: %d", state.Score, state.BestScore, len(state.Layers)))
	}
	if player, ok := ecs.First(g.world, component.PlayerTagComponent.Kind()); ok {
		if t, ok := ecs.Get(g.world, player, component.TransformComponent.Kind()); ok {
			lines = append(lines, fmt.Sprintf("player: (%.2f, %.2f)", t.X, t.Y))
		}
		if p, ok := ecs.Get(g.world, player, component.PlayerComponent.Kind()); ok {
			lines = append(lines, fmt.Sprintf("grounded: %v  extra jump: %v", p.Grounded, p.ExtraJump))
		}
	}

	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.LineSpacing = 16
	ebtext.Draw(screen, strings.Join(lines, "\n"), g.debugFace, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Width, g.opts.Height
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
