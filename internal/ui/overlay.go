//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	overlayPadding = 4
	overlayHeight  = 18
)

// Overlay draws the status line across the top of the grid. H toggles it.
type Overlay struct {
	sim     core.Sim
	visible bool
	paused  bool
	pixel   *ebiten.Image
}

// NewOverlay constructs a visible overlay for sim.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim, visible: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetPaused records whether the simulation is paused for the status line.
func (o *Overlay) SetPaused(paused bool) { o.paused = paused }

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw renders the overlay onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	w := screen.Bounds().Dx()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), overlayHeight)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 16, B: 24, A: 200})
	screen.DrawImage(o.pixel, op)

	face := basicfont.Face7x13
	text.Draw(screen, StatusLine(o.sim, o.paused), face, overlayPadding, overlayHeight-overlayPadding-1, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}
