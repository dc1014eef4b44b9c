// Package scenario seeds initial patterns onto a grid before a run begins.
// Scenarios are the only writers of initial state; the engine and renderers
// never invent cells on their own.
package scenario

import (
	"math/rand/v2"
	"sort"

	"github.com/pkg/errors"

	"bitlife/internal/grid"
)

// Func populates a grid with an initial pattern. Deterministic scenarios
// ignore the random source.
type Func func(g *grid.BitGrid, rng *rand.Rand) error

var scenarios = map[string]Func{}

// Register adds a scenario under the provided name.
func Register(name string, f Func) {
	if name == "" || f == nil {
		return
	}
	scenarios[name] = f
}

// Lookup returns the scenario registered under name.
func Lookup(name string) (Func, bool) {
	f, ok := scenarios[name]
	return f, ok
}

// Names returns the registered scenario names in sorted order.
func Names() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply draws string art onto g with its top-left corner at (x, y). 'O' turns
// a cell on, '.' leaves it alone. Any other glyph is a malformed pattern.
func Apply(g *grid.BitGrid, x, y int, art []string) error {
	for dy, row := range art {
		for dx, ch := range row {
			switch ch {
			case '.':
			case 'O':
				if err := g.Set(x+dx, y+dy, grid.On); err != nil {
					return errors.Wrapf(err, "scenario: applying pattern row %d", dy)
				}
			default:
				return errors.Errorf("scenario: unknown glyph %q in pattern row %d", ch, dy)
			}
		}
	}
	return nil
}

// artSize returns the bounding box of string art.
func artSize(art []string) (w, h int) {
	for _, row := range art {
		if len(row) > w {
			w = len(row)
		}
	}
	return w, len(art)
}

// applyCentered places art in the middle of the grid, failing when the grid
// cannot hold it.
func applyCentered(g *grid.BitGrid, art []string) error {
	w, h := artSize(art)
	if g.Width() < w || g.Height() < h {
		return errors.Errorf("scenario: pattern needs %dx%d cells, grid is %dx%d", w, h, g.Width(), g.Height())
	}
	return Apply(g, (g.Width()-w)/2, (g.Height()-h)/2, art)
}

var blinkerArt = []string{
	"OOO",
}

var blockArt = []string{
	"OO",
	"OO",
}

var gliderArt = []string{
	".O.",
	"..O",
	"OOO",
}

// gosperGunArt is Gosper's glider gun: a 36-cell pattern that returns to its
// own shape every 30 generations, emitting one glider per period.
var gosperGunArt = []string{
	"........................O...........",
	"......................O.O...........",
	"............OO......OO............OO",
	"...........O...O....OO............OO",
	"OO........O.....O...OO..............",
	"OO........O...O.OO....O.O...........",
	"..........O.....O.......O...........",
	"...........O...O....................",
	"............OO......................",
}

// Blinker seeds a period-2 oscillator in the middle of the grid.
func Blinker(g *grid.BitGrid, _ *rand.Rand) error {
	return applyCentered(g, blinkerArt)
}

// Block seeds a 2x2 still life in the middle of the grid.
func Block(g *grid.BitGrid, _ *rand.Rand) error {
	return applyCentered(g, blockArt)
}

// Glider seeds a single glider near the top-left corner.
func Glider(g *grid.BitGrid, _ *rand.Rand) error {
	w, h := artSize(gliderArt)
	if g.Width() < w+2 || g.Height() < h+2 {
		return errors.Errorf("scenario: glider needs at least a %dx%d grid", w+2, h+2)
	}
	return Apply(g, 1, 1, gliderArt)
}

// GliderGun seeds Gosper's glider gun near the top-left corner so emitted
// gliders have room to travel.
func GliderGun(g *grid.BitGrid, _ *rand.Rand) error {
	w, h := artSize(gosperGunArt)
	if g.Width() < w+2 || g.Height() < h+2 {
		return errors.Errorf("scenario: glider gun needs at least a %dx%d grid", w+2, h+2)
	}
	return Apply(g, 1, 1, gosperGunArt)
}

// Random fills the whole grid from the provided source.
func Random(g *grid.BitGrid, rng *rand.Rand) error {
	if rng == nil {
		return errors.New("scenario: random scenario requires a random source")
	}
	g.Randomize(rng)
	return nil
}

func init() {
	Register("blinker", Blinker)
	Register("block", Block)
	Register("glider", Glider)
	Register("glider-gun", GliderGun)
	Register("random", Random)
}
