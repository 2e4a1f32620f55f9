package life

// store owns every allocated chunk. Chunks live in an append-only arena in
// creation order; table maps chunk coordinates to arena indices.
type store struct {
	ix         chunkIndex
	cols, rows int
	table      []int32
	chunks     []*Chunk

	bound    struct{ minX, minY, maxX, maxY int }
	hasBound bool
}

func newStore(ix chunkIndex, width, height int) *store {
	cols := (width + ix.size - 1) / ix.size
	rows := (height + ix.size - 1) / ix.size
	table := make([]int32, cols*rows)
	for i := range table {
		table[i] = -1
	}
	return &store{ix: ix, cols: cols, rows: rows, table: table}
}

func (s *store) inRange(c Coord) bool {
	return c.X >= 0 && c.X < s.cols && c.Y >= 0 && c.Y < s.rows
}

func (s *store) slot(c Coord) int { return c.Y*s.cols + c.X }

// lookup returns the chunk at c or nil. It never allocates.
func (s *store) lookup(c Coord) *Chunk {
	if !s.inRange(c) {
		return nil
	}
	idx := s.table[s.slot(c)]
	if idx < 0 {
		return nil
	}
	return s.chunks[idx]
}

// ensure returns the chunk at c, creating a zeroed one if needed. c must be
// in range.
func (s *store) ensure(c Coord) *Chunk {
	slot := s.slot(c)
	if idx := s.table[slot]; idx >= 0 {
		return s.chunks[idx]
	}
	ch := newChunk(c, s.ix.size)
	s.table[slot] = int32(len(s.chunks))
	s.chunks = append(s.chunks, ch)
	if !s.hasBound {
		s.bound.minX, s.bound.maxX = c.X, c.X
		s.bound.minY, s.bound.maxY = c.Y, c.Y
		s.hasBound = true
	} else {
		s.bound.minX = min(s.bound.minX, c.X)
		s.bound.minY = min(s.bound.minY, c.Y)
		s.bound.maxX = max(s.bound.maxX, c.X)
		s.bound.maxY = max(s.bound.maxY, c.Y)
	}
	return ch
}

// neighbor offsets c by (dx, dy), wrapping per axis when enabled. It reports
// false when the result falls outside the store on a non-wrapping axis.
func (s *store) neighbor(c Coord, dx, dy int, wrapX, wrapY bool) (Coord, bool) {
	n := Coord{X: c.X + dx, Y: c.Y + dy}
	if n.X < 0 || n.X >= s.cols {
		if !wrapX {
			return n, false
		}
		n.X = (n.X%s.cols + s.cols) % s.cols
	}
	if n.Y < 0 || n.Y >= s.rows {
		if !wrapY {
			return n, false
		}
		n.Y = (n.Y%s.rows + s.rows) % s.rows
	}
	return n, true
}
