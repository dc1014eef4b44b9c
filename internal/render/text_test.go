package render

import (
	"bytes"
	"strings"
	"testing"

	"bitlife/internal/grid"
)

func TestFrame(t *testing.T) {
	g, err := grid.New(3, 2, grid.AllOff)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	for _, c := range [][2]int{{0, 0}, {2, 0}, {1, 1}} {
		if err := g.Set(c[0], c[1], grid.On); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}

	var buf bytes.Buffer
	r := NewText(&buf, DefaultOptions())
	if err := r.Frame(g); err != nil {
		t.Fatalf("Frame: %v", err)
	}

	want := "O.O\n.O.\n\n"
	if buf.String() != want {
		t.Fatalf("Frame output = %q, want %q", buf.String(), want)
	}
}

func TestFrameCustomGlyphs(t *testing.T) {
	g, err := grid.New(2, 1, grid.AllOff)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	if err := g.Set(0, 0, grid.On); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var buf bytes.Buffer
	r := NewText(&buf, Options{On: '#', Off: ' '})
	if err := r.Frame(g); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if got := buf.String(); got != "# \n\n" {
		t.Fatalf("Frame output = %q, want %q", got, "# \n\n")
	}
}

func TestClearEmitsANSI(t *testing.T) {
	var buf bytes.Buffer
	r := NewText(&buf, DefaultOptions())
	if err := r.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[2J") {
		t.Fatalf("Clear output = %q, want ANSI clear sequence", buf.String())
	}
}
