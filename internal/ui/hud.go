//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type statsProvider interface {
	Generation() int
	Population() int
}

// HUD draws a one-line status readout over the simulation view.
type HUD struct {
	sim     core.Sim
	visible bool
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim, visible: true}
}

// Update handles HUD input.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw renders the status line in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image, gensPerSec float64, paused bool) {
	if !h.visible {
		return
	}
	line := h.sim.Name()
	if p, ok := h.sim.(statsProvider); ok {
		line = fmt.Sprintf("gen %d  pop %d  %.1f gen/s", p.Generation(), p.Population(), gensPerSec)
	}
	if paused {
		line += "  [paused]"
	}
	text.Draw(screen, line, basicfont.Face7x13, 4, 14, color.RGBA{A: 0xff})
}
