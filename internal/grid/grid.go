// Package grid provides a fixed-size 2D boolean grid stored at one bit per
// cell, with a configurable policy for coordinates outside the grid.
package grid

import (
	"math/bits"
	"math/rand/v2"
)

const (
	wordBits  = 64
	wordShift = 6
	wordMask  = wordBits - 1
)

// BitGrid is a width x height cell grid packed into 64-bit words in row-major
// order. Dimensions and policy are fixed for the lifetime of the grid.
type BitGrid struct {
	w, h   int
	words  []uint64
	policy Policy
}

// New allocates a grid with the given dimensions and out-of-bounds policy.
// Every cell starts off. Non-positive dimensions are a construction error.
func New(w, h int, policy Policy) (*BitGrid, error) {
	if w <= 0 || h <= 0 {
		return nil, &SizeError{W: w, H: h}
	}
	if policy > Torus {
		return nil, &StateError{Detail: "unknown out-of-bounds policy " + policy.String()}
	}
	cells := w * h
	return &BitGrid{
		w:      w,
		h:      h,
		words:  make([]uint64, (cells+wordMask)>>wordShift),
		policy: policy,
	}, nil
}

// Width returns the number of cells along X.
func (g *BitGrid) Width() int { return g.w }

// Height returns the number of cells along Y.
func (g *BitGrid) Height() int { return g.h }

// Policy returns the out-of-bounds policy the grid was built with.
func (g *BitGrid) Policy() Policy { return g.policy }

// cellIndex locates the word and bit that store the in-bounds cell (x, y).
// All bit arithmetic in the package goes through here.
func (g *BitGrid) cellIndex(x, y int) (word int, bit uint) {
	idx := y*g.w + x
	return idx >> wordShift, uint(idx & wordMask)
}

// Normalize remaps (x, y) according to the out-of-bounds policy. Under Torus
// the coordinates wrap with a floor modulo, so arbitrarily negative or large
// values land on an addressable cell. Under a bounded policy ok reports
// whether the coordinate is addressable at all.
func (g *BitGrid) Normalize(x, y int) (nx, ny int, ok bool) {
	if x >= 0 && y >= 0 && x < g.w && y < g.h {
		return x, y, true
	}
	if g.policy != Torus {
		return x, y, false
	}
	// Truncating % yields negative remainders for negative operands, which
	// would break wrap-around at the lower edges.
	return (x%g.w + g.w) % g.w, (y%g.h + g.h) % g.h, true
}

// Get reads a single cell. Out-of-bounds coordinates resolve per the policy:
// a fixed Off or On under the bounded policies, the wrapped cell under Torus.
// Invalid is reserved for corrupted grids and is unreachable in correct use.
func (g *BitGrid) Get(x, y int) CellState {
	nx, ny, ok := g.Normalize(x, y)
	if !ok {
		switch g.policy {
		case AllOff:
			return Off
		case AllOn:
			return On
		default:
			return Invalid
		}
	}
	word, bit := g.cellIndex(nx, ny)
	if g.words[word]&(1<<bit) != 0 {
		return On
	}
	return Off
}

// Set writes a single cell, leaving every other bit untouched. Under Torus
// the coordinates always resolve to an addressable cell; under a bounded
// policy an out-of-range write fails with an OutOfBoundsError and the grid is
// left unmodified.
func (g *BitGrid) Set(x, y int, state CellState) error {
	if state != Off && state != On {
		return &StateError{Detail: "cell state must be off or on, got " + state.String()}
	}
	nx, ny, ok := g.Normalize(x, y)
	if !ok {
		return &OutOfBoundsError{X: x, Y: y, W: g.w, H: g.h}
	}
	word, bit := g.cellIndex(nx, ny)
	if state == On {
		g.words[word] |= 1 << bit
	} else {
		g.words[word] &^= 1 << bit
	}
	return nil
}

// Randomize sets every cell independently to on or off with equal chance,
// drawn from the provided source. The whole grid is overwritten.
func (g *BitGrid) Randomize(rng *rand.Rand) {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			word, bit := g.cellIndex(x, y)
			if rng.IntN(2) == 1 {
				g.words[word] |= 1 << bit
			} else {
				g.words[word] &^= 1 << bit
			}
		}
	}
}

// Clear turns every cell off.
func (g *BitGrid) Clear() {
	for i := range g.words {
		g.words[i] = 0
	}
}

// Population returns the number of live cells.
func (g *BitGrid) Population() int {
	n := 0
	for _, w := range g.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Expand writes the grid into dst as one byte per cell, 0 or 1, in row-major
// order. dst must hold Width*Height bytes.
func (g *BitGrid) Expand(dst []uint8) {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			word, bit := g.cellIndex(x, y)
			if g.words[word]&(1<<bit) != 0 {
				dst[y*g.w+x] = 1
			} else {
				dst[y*g.w+x] = 0
			}
		}
	}
}
