package core

import (
	"fmt"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a viewer-driven automaton must implement.
// Cells returns the visible window, one byte per cell, row-major.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build looks up name in the registry and constructs it.
func Build(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (have %v)", name, Names())
	}
	return f(cfg)
}

// Tile is a rectangle of the visible window in cell units, tagged with the
// state of the storage block behind it.
type Tile struct {
	X, Y, W, H int
	Live       int
	Sleeping   bool
}

// TileProvider is implemented by sims that store cells in blocks.
type TileProvider interface {
	Tiles() []Tile
}

// Editor is implemented by sims whose cells can be toggled from the viewer.
type Editor interface {
	Toggle(x, y int) bool
	Clear()
}

// Panner is implemented by sims whose visible window can move.
type Panner interface {
	Pan(dx, dy int)
}

// Shader is implemented by sims that can mark storage blocks in Cells with
// extra values beyond 0 and 1.
type Shader interface {
	SetShading(on bool)
	Shading() bool
}
