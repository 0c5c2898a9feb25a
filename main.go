package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var opts Options
	flag.BoolVar(&opts.Debug, "debug", false, "enable debug text and numpad shortcuts")
	flag.Int64Var(&opts.Seed, "seed", 1, "seed for -stable-rng")
	flag.BoolVar(&opts.StableRNG, "stable-rng", false, "use one seeded generator instead of reseeding per draw")
	flag.StringVar(&opts.Tuning, "tuning", "", "tuning prefab name in prefabs/ (default tuning.yaml)")
	flag.BoolVar(&opts.Watch, "watch", false, "reload prefabs from disk on change; applied at the next restart")
	flag.IntVar(&opts.Width, "width", 1280, "render width in pixels")
	flag.IntVar(&opts.Height, "height", 720, "render height in pixels")
	flag.StringVar(&opts.DifficultyScript, "difficulty-script", "", "tengo script in prefabs/scripts overriding the spawn chances")
	flag.Parse()

	game, err := NewGame(opts)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle("climber")
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
