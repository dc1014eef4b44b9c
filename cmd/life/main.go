// Command life runs the Game of Life in the terminal: it seeds a scenario,
// then renders and advances generations at a fixed rate until interrupted.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bitlife/internal/app"
	"bitlife/internal/core"
	"bitlife/internal/grid"
	"bitlife/internal/render"
	"bitlife/internal/scenario"
	_ "bitlife/internal/sims/life"
	pkgcore "bitlife/pkg/core"
)

// seedable is implemented by simulations whose grid scenarios can write into.
type seedable interface {
	Current() *grid.BitGrid
}

// stats is implemented by simulations that track their own counters.
type stats interface {
	Generation() uint64
	Population() int
}

func main() {
	cfg := app.NewConfig()
	configPath := flag.String("config", "", "JSON config file, overrides other flags")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	sim, err := factory(cfg.SimOptions())
	if err != nil {
		log.Fatalf("creating sim %q: %v", cfg.Sim, err)
	}

	board, ok := sim.(seedable)
	if !ok {
		log.Fatalf("sim %q does not expose a seedable grid", cfg.Sim)
	}
	load, ok := scenario.Lookup(cfg.Scenario)
	if !ok {
		log.Fatalf("unknown scenario %q, available: %v", cfg.Scenario, scenario.Names())
	}
	if err := load(board.Current(), pkgcore.NewRNG(cfg.Seed).Source()); err != nil {
		log.Fatalf("seeding scenario %q: %v", cfg.Scenario, err)
	}

	opts, err := cfg.RenderOptions()
	if err != nil {
		log.Fatal(err)
	}
	renderer := render.NewText(os.Stdout, opts)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)

	pacer := core.NewFixedStep(cfg.TPS)
	generations := 0
	for {
		select {
		case <-sigc:
			fmt.Printf("\ninterrupted after %d generations\n", generations)
			return
		default:
		}
		if !pacer.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}

		if err := renderer.Clear(); err != nil {
			log.Fatal(err)
		}
		if s, ok := sim.(stats); ok {
			fmt.Printf("%s %s  gen %d  pop %d\n", cfg.Sim, cfg.Scenario, s.Generation(), s.Population())
		}
		if err := renderer.Frame(board.Current()); err != nil {
			log.Fatal(err)
		}

		sim.Step()
		generations++
		if cfg.MaxGenerations > 0 && generations >= cfg.MaxGenerations {
			fmt.Printf("reached %d generations\n", generations)
			return
		}
	}
}
