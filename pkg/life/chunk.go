package life

// Chunk is a square tile of cells surrounded by a one-cell halo, double
// buffered so a step never reads values it has already written.
type Chunk struct {
	coord    Coord
	buffers  [2][]uint8
	active   int
	live     int
	sleeping bool
}

func newChunk(c Coord, size int) *Chunk {
	n := (size + 2) * (size + 2)
	return &Chunk{
		coord:   c,
		buffers: [2][]uint8{make([]uint8, n), make([]uint8, n)},
	}
}

// Coord returns the chunk-space position.
func (c *Chunk) Coord() Coord { return c.coord }

// Live returns the number of non-zero interior cells in the current generation.
func (c *Chunk) Live() int { return c.live }

// Sleeping reports whether the chunk is known to be all zero.
func (c *Chunk) Sleeping() bool { return c.sleeping }

func (c *Chunk) cur() []uint8  { return c.buffers[c.active] }
func (c *Chunk) next() []uint8 { return c.buffers[c.active^1] }
func (c *Chunk) flip()         { c.active ^= 1 }

// zero clears both buffers and marks the chunk asleep.
func (c *Chunk) zero() {
	clear(c.buffers[0])
	clear(c.buffers[1])
	c.live = 0
	c.sleeping = true
}
