//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"chunklife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws chunk debugging visuals on top of the cell view.
type Overlay struct {
	sim      core.Sim
	scale    int
	showGrid bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update handles the overlay keys: 1 toggles the chunk grid, 2 toggles
// chunk shading in the sim's cells.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		if s, ok := o.sim.(core.Shader); ok {
			s.SetShading(!s.Shading())
		}
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showGrid {
		return
	}
	provider, ok := o.sim.(core.TileProvider)
	if !ok {
		return
	}
	scale := float32(max(o.scale, 1))
	face := basicfont.Face7x13
	for _, t := range provider.Tiles() {
		clr := gridColor
		if t.Sleeping {
			clr = sleepingColor
		}
		x, y := float32(t.X)*scale, float32(t.Y)*scale
		w, h := float32(t.W)*scale, float32(t.H)*scale
		vector.StrokeRect(screen, x, y, w, h, 1, clr, false)
		if t.Live > 0 && w > 40 && h > 20 {
			text.Draw(screen, strconv.Itoa(t.Live), face, int(x)+3, int(y)+14, gridColor)
		}
	}
}

var (
	gridColor     = color.RGBA{R: 64, G: 164, B: 223, A: 200}
	sleepingColor = color.RGBA{R: 200, G: 90, B: 160, A: 160}
)
