package life

// directions lists the eight neighbor offsets, edges and corners.
var directions = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// haloSpan returns the half-open local range, along one axis, of the halo
// strip that faces offset d.
func haloSpan(d, size int) (int, int) {
	switch d {
	case -1:
		return -1, 0
	case 1:
		return size, size + 1
	}
	return 0, size
}

// edgeSpan returns the half-open local range, along one axis, of the
// chunk's own border strip that faces offset d.
func edgeSpan(d, size int) (int, int) {
	switch d {
	case -1:
		return 0, 1
	case 1:
		return size - 1, size
	}
	return 0, size
}

// syncHalo refreshes every halo strip of c from its neighbors' current
// buffers and returns the number of live cells copied in. A missing
// neighbor is created only when c's own border facing it holds a live cell.
func (e *Engine) syncHalo(c *Chunk) int {
	ix := e.ix
	size := ix.size
	buf := c.cur()
	total := 0
	for _, d := range directions {
		dx, dy := d[0], d[1]
		var n *Chunk
		if nc, ok := e.store.neighbor(c.coord, dx, dy, e.rule.WrapX, e.rule.WrapY); ok {
			n = e.store.lookup(nc)
			if n == nil && e.edgeHasLive(c, dx, dy) {
				n = e.store.ensure(nc)
			}
		}

		x0, x1 := haloSpan(dx, size)
		y0, y1 := haloSpan(dy, size)
		width := x1 - x0
		for ly := y0; ly < y1; ly++ {
			start := ix.haloIndex(x0, ly)
			dst := buf[start : start+width]
			if n == nil {
				clear(dst)
				continue
			}
			from := ix.haloIndex(x0-dx*size, ly-dy*size)
			src := n.cur()[from : from+width]
			copy(dst, src)
			total += countLive(src)
		}
	}
	return total
}

// edgeHasLive reports whether c's border strip facing (dx, dy) holds any
// live cell in the current generation.
func (e *Engine) edgeHasLive(c *Chunk, dx, dy int) bool {
	if c.live == 0 {
		return false
	}
	size := e.ix.size
	x0, x1 := edgeSpan(dx, size)
	y0, y1 := edgeSpan(dy, size)
	buf := c.cur()
	for ly := y0; ly < y1; ly++ {
		start := e.ix.haloIndex(x0, ly)
		if countLive(buf[start:start+x1-x0]) > 0 {
			return true
		}
	}
	return false
}

func countLive(cells []uint8) int {
	n := 0
	for _, v := range cells {
		if v != 0 {
			n++
		}
	}
	return n
}
