// Package life adapts the chunked engine to the viewer's Sim contract. The
// Sim shows a movable window onto a large world.
package life

import (
	"chunklife/internal/config"
	"chunklife/internal/core"
	pcore "chunklife/pkg/core"
	"chunklife/pkg/life"
)

// Cell values written into the visible window. Shade values appear only
// while shading is on.
const (
	cellDead     uint8 = 0
	cellLive     uint8 = 1
	cellChunk    uint8 = 2
	cellSleeping uint8 = 3
)

// Sim drives a life.Engine and renders a window of it into a ByteGrid.
type Sim struct {
	name   string
	cfg    config.Config
	engine *life.Engine

	view    *core.ByteGrid
	ox, oy  int
	dirty   bool
	shading bool
	seed    int64
}

// New builds a Sim from a resolved configuration.
func New(name string, cfg config.Config) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ec, err := cfg.EngineConfig()
	if err != nil {
		return nil, err
	}
	e, err := life.New(ec)
	if err != nil {
		return nil, err
	}
	if cfg.View.StepsPerTick <= 0 {
		cfg.View.StepsPerTick = 1
	}
	s := &Sim{
		name:   name,
		cfg:    cfg,
		engine: e,
		view:   core.NewByteGrid(cfg.View.Width, cfg.View.Height),
		seed:   cfg.Seed.Value,
		dirty:  true,
	}
	s.center()
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return s.name }

// Size returns the visible window dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.view.W, H: s.view.H} }

// Engine exposes the underlying engine.
func (s *Sim) Engine() *life.Engine { return s.engine }

// Config returns the configuration the sim was built with, including any
// parameter changes made since.
func (s *Sim) Config() config.Config { return s.cfg }

// Origin returns the world coordinate of the window's top-left cell.
func (s *Sim) Origin() (int, int) { return s.ox, s.oy }

// Reset clears the world and places a random soup in the middle of it.
func (s *Sim) Reset(seed int64) {
	s.seed = seed
	s.cfg.Seed.Value = seed
	s.engine.Clear()
	side := s.cfg.Seed.Region
	x0, y0 := pcore.Centered(s.engine.LimitBound(), side)
	for _, p := range pcore.NewRNG(seed).Soup(x0, y0, side, s.cfg.Seed.Density) {
		s.engine.SetCell(p.X, p.Y, 1)
	}
	s.center()
	s.dirty = true
}

// Clear kills every cell.
func (s *Sim) Clear() {
	s.engine.Clear()
	s.dirty = true
}

// Step advances the engine by the configured number of generations.
func (s *Sim) Step() {
	s.engine.StepN(s.cfg.View.StepsPerTick)
	s.dirty = true
}

// Cells returns the visible window. The slice is reused between calls.
func (s *Sim) Cells() []uint8 {
	if s.dirty {
		s.refresh()
	}
	return s.view.Cells()
}

// Toggle flips the cell under window position (x, y). It reports false when
// the position lies outside the window or the world.
func (s *Sim) Toggle(x, y int) bool {
	if !s.view.In(x, y) {
		return false
	}
	wx, wy := s.ox+x, s.oy+y
	v := cellLive
	if s.engine.Cell(wx, wy) != 0 {
		v = cellDead
	}
	if !s.engine.SetCell(wx, wy, v) {
		return false
	}
	s.dirty = true
	return true
}

// Pan moves the window by (dx, dy) cells, keeping it over the world.
func (s *Sim) Pan(dx, dy int) {
	s.moveTo(s.ox+dx, s.oy+dy)
}

// SetShading turns chunk shading in Cells on or off.
func (s *Sim) SetShading(on bool) {
	if s.shading != on {
		s.shading = on
		s.dirty = true
	}
}

// Shading reports whether chunk shading is on.
func (s *Sim) Shading() bool { return s.shading }

// Tiles lists allocated chunks that overlap the window, in window
// coordinates.
func (s *Sim) Tiles() []core.Tile {
	win := s.window()
	var out []core.Tile
	for _, c := range s.engine.Chunks() {
		area := c.Area.Intersect(win)
		if area.Empty() {
			continue
		}
		out = append(out, core.Tile{
			X:        area.MinX - s.ox,
			Y:        area.MinY - s.oy,
			W:        area.MaxX - area.MinX + 1,
			H:        area.MaxY - area.MinY + 1,
			Live:     c.Live,
			Sleeping: c.Sleeping,
		})
	}
	return out
}

func (s *Sim) window() life.Rect {
	return life.Rect{MinX: s.ox, MinY: s.oy, MaxX: s.ox + s.view.W - 1, MaxY: s.oy + s.view.H - 1}
}

func (s *Sim) center() {
	limit := s.engine.LimitBound()
	x, y := pcore.Centered(limit, 0)
	s.moveTo(x-s.view.W/2, y-s.view.H/2)
}

func (s *Sim) moveTo(x, y int) {
	limit := s.engine.LimitBound()
	s.ox = clampOrigin(x, limit.MaxX+1, s.view.W)
	s.oy = clampOrigin(y, limit.MaxY+1, s.view.H)
	s.dirty = true
}

func clampOrigin(v, world, view int) int {
	if world <= view {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > world-view {
		return world - view
	}
	return v
}

func (s *Sim) refresh() {
	s.view.Clear()
	if s.shading {
		for _, t := range s.Tiles() {
			v := cellChunk
			if t.Sleeping {
				v = cellSleeping
			}
			s.view.FillRect(t.X, t.Y, t.W, t.H, v)
		}
	}
	s.engine.DrawRuns(s.window(), windowDrawer{grid: s.view, ox: s.ox, oy: s.oy})
	s.dirty = false
}

type windowDrawer struct {
	grid   *core.ByteGrid
	ox, oy int
}

func (d windowDrawer) DrawRun(x, y, length int, state uint8) {
	d.grid.FillRow(x-d.ox, y-d.oy, length, state)
}

func init() {
	for name, notation := range map[string]string{
		"life":     "B3/S23",
		"highlife": "B36/S23",
		"daynight": "B3678/S34678",
	} {
		core.Register(name, factory(name, notation))
	}
}

// factory resolves settings in order: the YAML file named by the "config"
// key, the variant's rule, then flag-style overrides from the map.
func factory(name, notation string) core.Factory {
	return func(m map[string]string) (core.Sim, error) {
		cfg, err := config.Load(m["config"])
		if err != nil {
			return nil, err
		}
		cfg.Rule.Notation = notation
		cfg = config.FromMap(cfg, m)
		return New(name, cfg)
	}
}
