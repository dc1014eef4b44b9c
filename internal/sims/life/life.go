// Package life implements Conway's Game of Life over a pair of double-buffered
// bit-packed grids.
package life

import (
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"bitlife/internal/core"
	"bitlife/internal/grid"
	pkgcore "bitlife/pkg/core"
)

// Engine owns two same-sized grids and advances the simulation one generation
// per Step by reading the active grid and writing the scratch grid, then
// swapping which slot is active. No allocation happens per step.
type Engine struct {
	w, h   int
	policy grid.Policy

	bufs   [2]*grid.BitGrid
	active int

	gen     uint64
	workers int

	display []uint8
}

// New allocates an engine with two grids of the given dimensions and policy.
// The first slot starts active and both grids start all-off.
func New(w, h int, policy grid.Policy) (*Engine, error) {
	a, err := grid.New(w, h, policy)
	if err != nil {
		return nil, err
	}
	b, err := grid.New(w, h, policy)
	if err != nil {
		return nil, err
	}
	return &Engine{
		w:       w,
		h:       h,
		policy:  policy,
		bufs:    [2]*grid.BitGrid{a, b},
		display: make([]uint8, w*h),
	}, nil
}

// NewWithConfig allocates an engine from a Config.
func NewWithConfig(cfg Config) (*Engine, error) {
	e, err := New(cfg.Width, cfg.Height, cfg.Policy)
	if err != nil {
		return nil, err
	}
	e.workers = cfg.Workers
	return e, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// Current returns the grid holding the latest computed generation. Scenario
// loaders seed patterns through it; renderers read it.
func (e *Engine) Current() *grid.BitGrid {
	return e.bufs[e.currentSlot()]
}

// Generation returns how many steps the engine has taken since construction
// or the last Reset.
func (e *Engine) Generation() uint64 { return e.gen }

// Population returns the number of live cells in the current generation.
func (e *Engine) Population() int { return e.Current().Population() }

// SetWorkers sets the number of goroutines used per Step. Values below two
// keep the step serial.
func (e *Engine) SetWorkers(n int) { e.workers = n }

// Cells expands the current generation into a cached byte-per-cell buffer in
// row-major order for rendering.
func (e *Engine) Cells() []uint8 {
	e.Current().Expand(e.display)
	return e.display
}

// Reset randomizes the current grid from the given seed and rewinds the
// generation counter. The scratch grid is left alone; Step overwrites it in
// full anyway.
func (e *Engine) Reset(seed int64) {
	e.Randomize(pkgcore.NewRNG(seed).Source())
	e.gen = 0
}

// Randomize delegates to the current grid's Randomize.
func (e *Engine) Randomize(rng *rand.Rand) {
	e.Current().Randomize(rng)
}

// currentSlot validates and returns the active slot index. An index matching
// neither slot means the engine state was corrupted; that is a logic defect,
// not a recoverable condition.
func (e *Engine) currentSlot() int {
	if e.active != 0 && e.active != 1 {
		panic(&grid.StateError{Detail: "life engine active slot matches neither grid"})
	}
	return e.active
}

// nextState applies the standard birth/survival rule: an off cell turns on
// with exactly 3 live neighbors, an on cell survives with 2 or 3.
func nextState(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

// Step computes generation N+1 from generation N and swaps the buffers.
// Out-of-bounds neighbors resolve per the grids' policy, so edge cells of a
// bounded grid see the policy's answer rather than fewer neighbors.
func (e *Engine) Step() {
	src := e.bufs[e.currentSlot()]
	dst := e.bufs[1-e.active]

	if e.workers > 1 && e.h > 1 {
		e.stepParallel(src, dst)
	} else {
		stepRows(src, dst, 0, e.h)
	}

	e.active = 1 - e.active
	e.gen++
}

// stepParallel partitions rows across workers. Reads target only src and
// writes target only dst, so the per-cell work is safe to run concurrently.
func (e *Engine) stepParallel(src, dst *grid.BitGrid) {
	workers := e.workers
	if workers > e.h {
		workers = e.h
	}
	rowsPer := (e.h + workers - 1) / workers

	var eg errgroup.Group
	for start := 0; start < e.h; start += rowsPer {
		end := start + rowsPer
		if end > e.h {
			end = e.h
		}
		start, end := start, end
		eg.Go(func() error {
			stepRows(src, dst, start, end)
			return nil
		})
	}
	// Workers never return errors; Wait is only a join point.
	_ = eg.Wait()
}

// stepRows computes rows [startY, endY) of the next generation. Neighbor
// reads go through Get so the out-of-bounds policy applies; writes go through
// Set to keep all bit arithmetic inside the grid package.
func stepRows(src, dst *grid.BitGrid, startY, endY int) {
	w := src.Width()
	for y := startY; y < endY; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if src.Get(x+dx, y+dy) == grid.On {
						neighbors++
					}
				}
			}
			state := grid.Off
			if nextState(src.Get(x, y) == grid.On, neighbors) {
				state = grid.On
			}
			if err := dst.Set(x, y, state); err != nil {
				// In-bounds writes of valid states cannot fail.
				panic(err)
			}
		}
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}
