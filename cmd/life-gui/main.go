//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"bitlife/internal/app"
	"bitlife/internal/core"
	"bitlife/internal/grid"
	"bitlife/internal/scenario"
	_ "bitlife/internal/sims/life"
	pkgcore "bitlife/pkg/core"
)

// seedable is implemented by simulations whose grid scenarios can write into.
type seedable interface {
	Current() *grid.BitGrid
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	sim, err := factory(cfg.SimOptions())
	if err != nil {
		log.Fatalf("creating sim %q: %v", cfg.Sim, err)
	}

	if board, ok := sim.(seedable); ok {
		load, ok := scenario.Lookup(cfg.Scenario)
		if !ok {
			log.Fatalf("unknown scenario %q, available: %v", cfg.Scenario, scenario.Names())
		}
		if err := load(board.Current(), pkgcore.NewRNG(cfg.Seed).Source()); err != nil {
			log.Fatalf("seeding scenario %q: %v", cfg.Scenario, err)
		}
	}

	game := app.New(sim, cfg.Scale, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("bitlife — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
