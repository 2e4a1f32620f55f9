//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"chunklife/internal/core"
	"chunklife/internal/render"
	"chunklife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const panStep = 4

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pace    *core.FixedStep
	palette []color.RGBA

	onColor  color.Color
	offColor color.Color

	scale    int
	hudWidth int
	gps      int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, c *Config) *Game {
	scale := max(c.Scale, 1)
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	return &Game{
		sim:      sim,
		painter:  gp,
		overlay:  ui.NewOverlay(sim, scale),
		hud:      ui.NewHUD(sim, c.HUD),
		pace:     core.NewFixedStep(c.GPS),
		palette:  render.ShadePalette(),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		hudWidth: max(c.HUD, 0),
		gps:      c.GPS,
		seed:     c.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			g.pace.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.setGPS(g.gps / 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.setGPS(g.gps * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if editor, ok := g.sim.(core.Editor); ok {
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			editor.Clear()
		}
		g.handleMouse(editor)
	}
	if panner, ok := g.sim.(core.Panner); ok {
		g.handlePan(panner)
	}

	g.overlay.Update()
	g.hud.Update(g.sim.Size().W*g.scale, g.statusLines()...)

	if g.tickOnce || (!g.paused && g.pace.ShouldStep()) {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) setGPS(gps int) {
	g.gps = min(max(gps, 1), 960)
	g.pace.SetRate(g.gps)
}

func (g *Game) handleMouse(editor core.Editor) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if g.hud.Contains(mx, my) {
		return
	}
	editor.Toggle(mx/g.scale, my/g.scale)
}

func (g *Game) handlePan(p core.Panner) {
	dx, dy := 0, 0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		dx, dy = dx*8, dy*8
	}
	if dx != 0 || dy != 0 {
		p.Pan(dx, dy)
	}
}

func (g *Game) statusLines() []string {
	state := "running"
	if g.paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("%s at %d gen/s", state, g.gps),
		fmt.Sprintf("seed %d", g.seed),
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	if s, ok := g.sim.(core.Shader); ok && s.Shading() {
		g.painter.BlitPalette(screen, g.sim.Cells(), g.palette, g.scale)
	} else {
		g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
