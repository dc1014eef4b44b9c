// Package render turns grid generations into output: glyph rows for the
// terminal, RGBA pixels for the GUI build.
package render

import (
	"bufio"
	"io"

	"bitlife/internal/grid"
)

// Options selects the glyphs printed for on and off cells.
type Options struct {
	On  rune
	Off rune
}

// DefaultOptions matches the classic '.' / 'O' look.
func DefaultOptions() Options {
	return Options{On: 'O', Off: '.'}
}

// Text writes grid generations as rows of glyphs to an io.Writer, one row of
// cells per line in row-major order.
type Text struct {
	w    *bufio.Writer
	opts Options
}

// NewText constructs a renderer over w.
func NewText(w io.Writer, opts Options) *Text {
	if opts.On == 0 {
		opts.On = DefaultOptions().On
	}
	if opts.Off == 0 {
		opts.Off = DefaultOptions().Off
	}
	return &Text{w: bufio.NewWriter(w), opts: opts}
}

// Frame renders one generation followed by a blank line and flushes.
func (t *Text) Frame(g *grid.BitGrid) error {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			glyph := t.opts.Off
			if g.Get(x, y) == grid.On {
				glyph = t.opts.On
			}
			if _, err := t.w.WriteRune(glyph); err != nil {
				return err
			}
		}
		if err := t.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := t.w.WriteByte('\n'); err != nil {
		return err
	}
	return t.w.Flush()
}

// Clear moves the cursor home and clears the screen with ANSI escapes.
func (t *Text) Clear() error {
	if _, err := t.w.WriteString("\x1b[H\x1b[2J"); err != nil {
		return err
	}
	return t.w.Flush()
}
