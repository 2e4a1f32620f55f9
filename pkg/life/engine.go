// Package life implements a sparse, chunked two-dimensional cellular
// automaton. The world is split into fixed-size square chunks that are
// allocated on first use; each chunk keeps a one-cell halo copied from its
// eight neighbors so a generation can be computed chunk by chunk. Chunks
// with no live cells and no live neighbors sleep and are skipped, which
// never changes the result of a step.
package life

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig reports an unusable engine configuration.
	ErrConfig = errors.New("life: invalid config")
	// ErrInvariant is returned by Verify when internal bookkeeping is
	// inconsistent with the cell buffers.
	ErrInvariant = errors.New("life: invariant violated")
)

// Config fixes the engine geometry and rule at construction.
type Config struct {
	// ChunkSize is the side length of a chunk in cells.
	ChunkSize int
	// Width and Height are the requested world size in cells, rounded up to
	// whole chunks.
	Width  int
	Height int
	// Rule is used as given; the zero Rule kills every cell.
	Rule Rule
	// Sleep enables skipping chunks with no live cells and no live
	// neighbors.
	Sleep bool
}

// DefaultConfig returns a 4096x4096 B3/S23 world of 64-cell chunks.
func DefaultConfig() Config {
	return Config{
		ChunkSize: 64,
		Width:     4096,
		Height:    4096,
		Rule:      Conway(),
		Sleep:     true,
	}
}

// Engine owns the chunk store and advances it one generation at a time. It
// is not safe for concurrent use.
type Engine struct {
	cfg   Config
	ix    chunkIndex
	rule  Rule
	store *store

	generation int
	halo       []int
}

// New builds an empty engine.
func New(cfg Config) (*Engine, error) {
	if cfg.ChunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size %d", ErrConfig, cfg.ChunkSize)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: world %dx%d", ErrConfig, cfg.Width, cfg.Height)
	}
	ix := newChunkIndex(cfg.ChunkSize)
	return &Engine{
		cfg:   cfg,
		ix:    ix,
		rule:  cfg.Rule,
		store: newStore(ix, cfg.Width, cfg.Height),
	}, nil
}

// ChunkSize returns the chunk side length.
func (e *Engine) ChunkSize() int { return e.ix.size }

// Rule returns the rule the engine steps with.
func (e *Engine) Rule() Rule { return e.rule }

// Generation returns the number of steps taken since construction or the
// last Clear.
func (e *Engine) Generation() int { return e.generation }

// SetCell writes v at (x, y). It returns false, without mutating anything,
// when the cell lies outside the store. Writing a live value may allocate a
// chunk; writing zero never does.
func (e *Engine) SetCell(x, y int, v uint8) bool {
	c := e.ix.worldToChunk(x, y)
	if !e.store.inRange(c) {
		return false
	}
	ch := e.store.lookup(c)
	if ch == nil {
		if v == 0 {
			return true
		}
		ch = e.store.ensure(c)
	}
	lx, ly := e.ix.localCoord(x, y, c)
	buf := ch.cur()
	i := e.ix.haloIndex(lx, ly)
	old := buf[i]
	buf[i] = v
	switch {
	case old == 0 && v != 0:
		ch.live++
		ch.sleeping = false
	case old != 0 && v == 0:
		ch.live--
	}
	return true
}

// Cell returns the value at (x, y), or 0 when no chunk covers it.
func (e *Engine) Cell(x, y int) uint8 {
	c := e.ix.worldToChunk(x, y)
	ch := e.store.lookup(c)
	if ch == nil {
		return 0
	}
	lx, ly := e.ix.localCoord(x, y, c)
	return ch.cur()[e.ix.haloIndex(lx, ly)]
}

// Clear kills every cell and resets the generation counter. Chunks stay
// allocated so later writes reuse them.
func (e *Engine) Clear() {
	for _, c := range e.store.chunks {
		if c.sleeping {
			continue
		}
		c.zero()
	}
	e.generation = 0
}

// Step advances the world by one generation.
func (e *Engine) Step() {
	// Halos only read current buffers, and nothing flips until every halo is
	// in place. Chunks created here are appended and visited by this loop.
	e.halo = e.halo[:0]
	for i := 0; i < len(e.store.chunks); i++ {
		e.halo = append(e.halo, e.syncHalo(e.store.chunks[i]))
	}

	for i, c := range e.store.chunks {
		if e.cfg.Sleep && c.live == 0 && e.halo[i] == 0 {
			if !c.sleeping {
				c.zero()
			}
			continue
		}
		e.transition(c)
	}
	e.generation++
}

// StepN advances the world by n generations.
func (e *Engine) StepN(n int) {
	for i := 0; i < n; i++ {
		e.Step()
	}
}

// transition computes the next generation of c's interior from its current
// buffer and halo, then flips.
func (e *Engine) transition(c *Chunk) {
	size, stride := e.ix.size, e.ix.stride
	src, dst := c.cur(), c.next()
	live := 0
	for y := 0; y < size; y++ {
		row := e.ix.haloIndex(0, y)
		for x := 0; x < size; x++ {
			i := row + x
			n := alive(src[i-stride-1]) + alive(src[i-stride]) + alive(src[i-stride+1]) +
				alive(src[i-1]) + alive(src[i+1]) +
				alive(src[i+stride-1]) + alive(src[i+stride]) + alive(src[i+stride+1])
			v := e.rule.Evaluate(n, src[i])
			dst[i] = v
			if v != 0 {
				live++
			}
		}
	}
	c.flip()
	c.live = live
	// Only the sleep path, which zeroes both buffers, may set sleeping. The
	// buffer flipped in here can still hold an old halo.
	c.sleeping = false
}

func alive(v uint8) int {
	if v != 0 {
		return 1
	}
	return 0
}

// Verify checks the chunk bookkeeping against the buffers: live counts match
// the interiors, sleeping chunks are entirely zero, and the lookup table
// agrees with the arena.
func (e *Engine) Verify() error {
	size := e.ix.size
	for i, c := range e.store.chunks {
		if e.store.table[e.store.slot(c.coord)] != int32(i) {
			return fmt.Errorf("%w: chunk %v not indexed at arena slot %d", ErrInvariant, c.coord, i)
		}
		buf := c.cur()
		live := 0
		for ly := 0; ly < size; ly++ {
			start := e.ix.haloIndex(0, ly)
			live += countLive(buf[start : start+size])
		}
		if live != c.live {
			return fmt.Errorf("%w: chunk %v counts %d live cells, buffer holds %d", ErrInvariant, c.coord, c.live, live)
		}
		if c.sleeping && countLive(buf) != 0 {
			return fmt.Errorf("%w: sleeping chunk %v is not zero", ErrInvariant, c.coord)
		}
	}
	return nil
}
