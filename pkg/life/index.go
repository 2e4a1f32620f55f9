package life

// Coord is a position in chunk space.
type Coord struct {
	X, Y int
}

// Point is a position in world (cell) space.
type Point struct {
	X, Y int
}

// Rect is a world-space rectangle with inclusive bounds on both ends.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Empty reports whether the rectangle contains no cells.
func (r Rect) Empty() bool { return r.MaxX < r.MinX || r.MaxY < r.MinY }

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Intersect returns the overlap of r and o, which may be empty.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		MinX: max(r.MinX, o.MinX),
		MinY: max(r.MinY, o.MinY),
		MaxX: min(r.MaxX, o.MaxX),
		MaxY: min(r.MaxY, o.MaxY),
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// chunkIndex converts between world, chunk and halo-buffer coordinates for a
// fixed chunk side length.
type chunkIndex struct {
	size   int
	stride int
}

func newChunkIndex(size int) chunkIndex {
	return chunkIndex{size: size, stride: size + 2}
}

func (ix chunkIndex) worldToChunk(x, y int) Coord {
	return Coord{X: floorDiv(x, ix.size), Y: floorDiv(y, ix.size)}
}

func (ix chunkIndex) localCoord(x, y int, c Coord) (int, int) {
	return x - c.X*ix.size, y - c.Y*ix.size
}

// haloIndex accepts local coordinates in [-1, size] so halo cells are
// addressable too.
func (ix chunkIndex) haloIndex(lx, ly int) int {
	return (lx + 1) + (ly+1)*ix.stride
}

// chunkRect returns the world-space rectangle covered by chunk c.
func (ix chunkIndex) chunkRect(c Coord) Rect {
	return Rect{
		MinX: c.X * ix.size,
		MinY: c.Y * ix.size,
		MaxX: (c.X+1)*ix.size - 1,
		MaxY: (c.Y+1)*ix.size - 1,
	}
}
