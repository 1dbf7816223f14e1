//go:build ebiten

package ui

import (
	"image/color"

	"randviz/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the status line and key help on top of the chart.
type Overlay struct {
	sim      core.Sim
	showHelp bool
}

// NewOverlay constructs an overlay for the provided simulation.
func NewOverlay(sim core.Sim) *Overlay { return &Overlay{sim: sim} }

// Update toggles overlay elements.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
}

// Draw paints the status line along the bottom edge and, when toggled, the
// key bindings in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image) {
	face := basicfont.Face7x13
	h := screen.Bounds().Dy()
	text.Draw(screen, o.sim.Status(), face, 8, h-6, color.White)
	if !o.showHelp {
		return
	}
	lines := []string{
		"space  pause/resume",
		"n      single step",
		"r      restart with same seed",
		"s      restart with new seed",
		"h      toggle this help",
		"q/esc  quit",
	}
	for i, line := range lines {
		text.Draw(screen, line, face, 8, 16+i*14, color.White)
	}
}
