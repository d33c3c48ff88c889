//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"graph-life/internal/app"
	"graph-life/internal/core"
	_ "graph-life/internal/sims/amoeba"
	_ "graph-life/internal/sims/life"
	_ "graph-life/internal/sims/zombie"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have %v)", cfg.Sim, core.Names())
	}
	simCfg, err := cfg.SimConfig()
	if err != nil {
		log.Fatalf("ca: %v", err)
	}

	core.Seed(cfg.Seed)
	sim := factory(simCfg, nil)
	sim.Randomize()

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("graph-life: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.Cols*cfg.Scale+cfg.HUD, size.Rows*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
