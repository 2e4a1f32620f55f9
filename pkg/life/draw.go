package life

// RunDrawer receives horizontal runs of consecutive cells sharing one
// non-zero state. Renderers implement it to stay independent of the store.
type RunDrawer interface {
	DrawRun(x, y, length int, state uint8)
}

// DrawRuns emits every run of live cells inside region. Runs never cross a
// chunk edge; empty chunks are skipped without scanning.
func (e *Engine) DrawRuns(region Rect, d RunDrawer) {
	for _, c := range e.store.chunks {
		if c.live == 0 {
			continue
		}
		area := e.ix.chunkRect(c.coord).Intersect(region)
		if area.Empty() {
			continue
		}
		buf := c.cur()
		for y := area.MinY; y <= area.MaxY; y++ {
			lx, ly := e.ix.localCoord(area.MinX, y, c.coord)
			row := buf[e.ix.haloIndex(lx, ly) : e.ix.haloIndex(lx, ly)+area.MaxX-area.MinX+1]
			start := -1
			for i := 0; i <= len(row); i++ {
				if start >= 0 && (i == len(row) || row[i] != row[start]) {
					d.DrawRun(area.MinX+start, y, i-start, row[start])
					start = -1
				}
				if i < len(row) && row[i] != 0 && start < 0 {
					start = i
				}
			}
		}
	}
}
