package life

// Bound returns the world-space rectangle covered by every chunk allocated so
// far. It reports false before the first allocation.
func (e *Engine) Bound() (Rect, bool) {
	s := e.store
	if !s.hasBound {
		return Rect{}, false
	}
	lo := e.ix.chunkRect(Coord{X: s.bound.minX, Y: s.bound.minY})
	hi := e.ix.chunkRect(Coord{X: s.bound.maxX, Y: s.bound.maxY})
	return Rect{MinX: lo.MinX, MinY: lo.MinY, MaxX: hi.MaxX, MaxY: hi.MaxY}, true
}

// LimitBound returns the full addressable extent of the store.
func (e *Engine) LimitBound() Rect {
	return Rect{
		MaxX: e.store.cols*e.ix.size - 1,
		MaxY: e.store.rows*e.ix.size - 1,
	}
}

// Pattern returns the world coordinates of every live cell.
func (e *Engine) Pattern() []Point {
	b, ok := e.Bound()
	if !ok {
		return nil
	}
	return e.PatternIn(b)
}

// PatternIn returns the live cells inside r. Chunks without live cells are
// skipped without scanning. Cells are ordered by chunk creation, then row
// by row within a chunk.
func (e *Engine) PatternIn(r Rect) []Point {
	b, ok := e.Bound()
	if !ok {
		return nil
	}
	r = r.Intersect(b)
	if r.Empty() {
		return nil
	}
	var out []Point
	for _, c := range e.store.chunks {
		if c.live == 0 {
			continue
		}
		area := e.ix.chunkRect(c.coord).Intersect(r)
		if area.Empty() {
			continue
		}
		buf := c.cur()
		for y := area.MinY; y <= area.MaxY; y++ {
			for x := area.MinX; x <= area.MaxX; x++ {
				lx, ly := e.ix.localCoord(x, y, c.coord)
				if buf[e.ix.haloIndex(lx, ly)] != 0 {
					out = append(out, Point{X: x, Y: y})
				}
			}
		}
	}
	return out
}

// Population returns the number of live cells in the world.
func (e *Engine) Population() int {
	n := 0
	for _, c := range e.store.chunks {
		n += c.live
	}
	return n
}

// Stats summarizes the store after the latest step.
type Stats struct {
	Generation int
	Population int
	Chunks     int
	Sleeping   int
}

// Stats returns current store counters.
func (e *Engine) Stats() Stats {
	st := Stats{Generation: e.generation, Chunks: len(e.store.chunks)}
	for _, c := range e.store.chunks {
		st.Population += c.live
		if c.sleeping {
			st.Sleeping++
		}
	}
	return st
}

// ChunkInfo describes one allocated chunk.
type ChunkInfo struct {
	Coord    Coord
	Area     Rect
	Live     int
	Sleeping bool
}

// Chunks lists allocated chunks in creation order.
func (e *Engine) Chunks() []ChunkInfo {
	out := make([]ChunkInfo, len(e.store.chunks))
	for i, c := range e.store.chunks {
		out[i] = ChunkInfo{
			Coord:    c.coord,
			Area:     e.ix.chunkRect(c.coord),
			Live:     c.live,
			Sleeping: c.sleeping,
		}
	}
	return out
}
