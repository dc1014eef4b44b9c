//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws a one-line status readout over the grid. H toggles it.
type Overlay struct {
	visible bool
}

// NewOverlay constructs a visible overlay.
func NewOverlay() *Overlay {
	return &Overlay{visible: true}
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw prints the status line onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image, status string) {
	if !o.visible {
		return
	}
	ebitenutil.DebugPrint(screen, status)
}
