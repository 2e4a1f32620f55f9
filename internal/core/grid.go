package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *ByteGrid) In(x, y int) bool { return x >= 0 && y >= 0 && x < g.W && y < g.H }

// FillRow sets n cells starting at (x, y), clipped to the grid.
func (g *ByteGrid) FillRow(x, y, n int, v uint8) {
	if y < 0 || y >= g.H {
		return
	}
	if x < 0 {
		n += x
		x = 0
	}
	if x+n > g.W {
		n = g.W - x
	}
	if n <= 0 {
		return
	}
	row := g.data[y*g.W+x : y*g.W+x+n]
	for i := range row {
		row[i] = v
	}
}

// FillRect sets every cell of the w*h rectangle at (x, y), clipped to the grid.
func (g *ByteGrid) FillRect(x, y, w, h int, v uint8) {
	for yy := y; yy < y+h; yy++ {
		g.FillRow(x, yy, w, v)
	}
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	clear(g.data)
}
