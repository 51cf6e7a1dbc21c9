//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	_ "lifegrid/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	configPath := flag.String("config", "", "optional JSON config file (overrides other flags)")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *configPath != "" {
		if err := cfg.Load(*configPath); err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	factory, ok := core.Sims()["life"]
	if !ok {
		log.Fatal("life sim not registered")
	}
	sim := factory(map[string]string{
		"w":       strconv.Itoa(cfg.Width),
		"h":       strconv.Itoa(cfg.Height),
		"density": strconv.FormatFloat(cfg.Density, 'g', -1, 64),
	})
	if sim == nil {
		log.Fatalf("cannot build life sim for %dx%d", cfg.Width, cfg.Height)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("lifegrid — " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
