package grid

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func mustNew(t *testing.T, w, h int, p Policy) *BitGrid {
	t.Helper()
	g, err := New(w, h, p)
	if err != nil {
		t.Fatalf("New(%d, %d, %v): %v", w, h, p, err)
	}
	return g
}

func TestNewRejectsBadDimensions(t *testing.T) {
	for _, tc := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -3}, {0, 0}} {
		_, err := New(tc[0], tc[1], Torus)
		var sizeErr *SizeError
		if !errors.As(err, &sizeErr) {
			t.Fatalf("New(%d, %d) error = %v, want SizeError", tc[0], tc[1], err)
		}
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	g := mustNew(t, 13, 11, AllOff)

	if err := g.Set(4, 7, On); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := g.Get(4, 7); got != On {
		t.Fatalf("Get(4,7) = %v, want on", got)
	}

	// Every other cell must be untouched by the single-bit write.
	for y := 0; y < 11; y++ {
		for x := 0; x < 13; x++ {
			if x == 4 && y == 7 {
				continue
			}
			if got := g.Get(x, y); got != Off {
				t.Fatalf("Get(%d,%d) = %v after writing (4,7), want off", x, y, got)
			}
		}
	}

	if err := g.Set(4, 7, Off); err != nil {
		t.Fatalf("Set off: %v", err)
	}
	if got := g.Get(4, 7); got != Off {
		t.Fatalf("Get(4,7) = %v after clearing, want off", got)
	}
}

func TestSetRejectsInvalidState(t *testing.T) {
	g := mustNew(t, 4, 4, AllOff)
	var stateErr *StateError
	if err := g.Set(1, 1, Invalid); !errors.As(err, &stateErr) {
		t.Fatalf("Set with invalid state = %v, want StateError", err)
	}
	if g.Population() != 0 {
		t.Fatal("failed write must leave the grid unmodified")
	}
}

func TestWordBoundaryBits(t *testing.T) {
	// 13x11 = 143 cells spans three words; exercise the cells that straddle
	// the 64-bit boundaries.
	g := mustNew(t, 13, 11, AllOff)
	for _, idx := range []int{0, 62, 63, 64, 65, 127, 128, 142} {
		x, y := idx%13, idx/13
		if err := g.Set(x, y, On); err != nil {
			t.Fatalf("Set(%d,%d): %v", x, y, err)
		}
	}
	if got := g.Population(); got != 8 {
		t.Fatalf("Population = %d, want 8", got)
	}
	for _, idx := range []int{0, 62, 63, 64, 65, 127, 128, 142} {
		x, y := idx%13, idx/13
		if g.Get(x, y) != On {
			t.Fatalf("cell %d (at %d,%d) lost across word boundary", idx, x, y)
		}
	}
}

func TestTorusPeriodicity(t *testing.T) {
	const w, h = 7, 5
	g := mustNew(t, w, h, Torus)
	if err := g.Set(3, 2, On); err != nil {
		t.Fatalf("Set: %v", err)
	}

	for _, k := range []int{-3, -1, 0, 1, 4} {
		for _, m := range []int{-2, -1, 0, 1, 3} {
			if got := g.Get(3+k*w, 2+m*h); got != On {
				t.Fatalf("Get(%d,%d) = %v, want on (k=%d m=%d)", 3+k*w, 2+m*h, got, k, m)
			}
			if got := g.Get(4+k*w, 2+m*h); got != Off {
				t.Fatalf("Get(%d,%d) = %v, want off (k=%d m=%d)", 4+k*w, 2+m*h, got, k, m)
			}
		}
	}
}

func TestTorusWriteWraps(t *testing.T) {
	g := mustNew(t, 6, 4, Torus)
	if err := g.Set(-1, -1, On); err != nil {
		t.Fatalf("torus write must never go out of bounds: %v", err)
	}
	if got := g.Get(5, 3); got != On {
		t.Fatalf("Get(5,3) = %v, want on after wrapped write at (-1,-1)", got)
	}
	if got := g.Population(); got != 1 {
		t.Fatalf("Population = %d, want 1", got)
	}
}

func TestBoundedPolicies(t *testing.T) {
	const w, h = 5, 5
	off := mustNew(t, w, h, AllOff)
	on := mustNew(t, w, h, AllOn)

	// Interior content must not leak into the policy answer.
	for _, g := range []*BitGrid{off, on} {
		g.Randomize(rand.New(rand.NewPCG(7, 0)))
	}

	probes := [][2]int{{-1, 0}, {w, 0}, {0, -1}, {0, h}, {-4, -4}, {w + 10, h + 10}}
	for _, p := range probes {
		if got := off.Get(p[0], p[1]); got != Off {
			t.Fatalf("all-off policy Get(%d,%d) = %v, want off", p[0], p[1], got)
		}
		if got := on.Get(p[0], p[1]); got != On {
			t.Fatalf("all-on policy Get(%d,%d) = %v, want on", p[0], p[1], got)
		}
	}
}

func TestBoundedWriteFails(t *testing.T) {
	g := mustNew(t, 5, 5, AllOff)
	err := g.Set(5, 0, On)
	var oob *OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("Set(5,0) error = %v, want OutOfBoundsError", err)
	}
	if oob.X != 5 || oob.Y != 0 {
		t.Fatalf("OutOfBoundsError coordinates = (%d,%d), want (5,0)", oob.X, oob.Y)
	}
	if g.Population() != 0 {
		t.Fatal("failed write must leave the grid unmodified")
	}
}

func TestNormalize(t *testing.T) {
	g := mustNew(t, 10, 8, Torus)
	cases := []struct {
		x, y   int
		nx, ny int
	}{
		{0, 0, 0, 0},
		{9, 7, 9, 7},
		{10, 8, 0, 0},
		{-1, -1, 9, 7},
		{-10, -8, 0, 0},
		{-11, -9, 9, 7},
		{25, 17, 5, 1},
	}
	for _, c := range cases {
		nx, ny, ok := g.Normalize(c.x, c.y)
		if !ok || nx != c.nx || ny != c.ny {
			t.Fatalf("Normalize(%d,%d) = (%d,%d,%v), want (%d,%d,true)", c.x, c.y, nx, ny, ok, c.nx, c.ny)
		}
	}

	b := mustNew(t, 10, 8, AllOff)
	if _, _, ok := b.Normalize(10, 0); ok {
		t.Fatal("bounded Normalize(10,0) must report not addressable")
	}
	if nx, ny, ok := b.Normalize(3, 4); !ok || nx != 3 || ny != 4 {
		t.Fatal("bounded Normalize must pass in-bounds coordinates through")
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a := mustNew(t, 17, 9, Torus)
	b := mustNew(t, 17, 9, Torus)

	a.Randomize(rand.New(rand.NewPCG(42, 0)))
	b.Randomize(rand.New(rand.NewPCG(42, 0)))

	for y := 0; y < 9; y++ {
		for x := 0; x < 17; x++ {
			if a.Get(x, y) != b.Get(x, y) {
				t.Fatalf("same seed diverged at (%d,%d)", x, y)
			}
		}
	}

	c := mustNew(t, 17, 9, Torus)
	c.Randomize(rand.New(rand.NewPCG(43, 0)))
	same := true
	for y := 0; y < 9 && same; y++ {
		for x := 0; x < 17; x++ {
			if a.Get(x, y) != c.Get(x, y) {
				same = false
				break
			}
		}
	}
	if same {
		t.Fatal("different seeds produced an identical grid")
	}
}

func TestClearAndPopulation(t *testing.T) {
	g := mustNew(t, 9, 9, AllOff)
	g.Randomize(rand.New(rand.NewPCG(5, 0)))
	if g.Population() == 0 {
		t.Fatal("randomized grid should have live cells")
	}
	g.Clear()
	if got := g.Population(); got != 0 {
		t.Fatalf("Population after Clear = %d, want 0", got)
	}
}

func TestExpand(t *testing.T) {
	g := mustNew(t, 3, 2, AllOff)
	for _, c := range [][2]int{{0, 0}, {2, 0}, {1, 1}} {
		if err := g.Set(c[0], c[1], On); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	dst := make([]uint8, 6)
	g.Expand(dst)
	want := []uint8{1, 0, 1, 0, 1, 0}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("Expand[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestParsePolicy(t *testing.T) {
	for name, want := range map[string]Policy{"off": AllOff, "on": AllOn, "torus": Torus, "wrap": Torus} {
		got, err := ParsePolicy(name)
		if err != nil || got != want {
			t.Fatalf("ParsePolicy(%q) = (%v, %v), want %v", name, got, err, want)
		}
	}
	if _, err := ParsePolicy("moebius"); err == nil {
		t.Fatal("ParsePolicy must reject unknown names")
	}
}
