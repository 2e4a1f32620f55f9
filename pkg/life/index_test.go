package life

import "testing"

func TestWorldToChunkFloors(t *testing.T) {
	ix := newChunkIndex(4)
	cases := []struct {
		x, y   int
		chunk  Coord
		lx, ly int
	}{
		{0, 0, Coord{0, 0}, 0, 0},
		{3, 3, Coord{0, 0}, 3, 3},
		{4, 7, Coord{1, 1}, 0, 3},
		{-1, 0, Coord{-1, 0}, 3, 0},
		{-4, -5, Coord{-1, -2}, 0, 3},
		{-5, 9, Coord{-2, 2}, 3, 1},
	}
	for _, tc := range cases {
		c := ix.worldToChunk(tc.x, tc.y)
		if c != tc.chunk {
			t.Fatalf("worldToChunk(%d,%d) = %v, want %v", tc.x, tc.y, c, tc.chunk)
		}
		lx, ly := ix.localCoord(tc.x, tc.y, c)
		if lx != tc.lx || ly != tc.ly {
			t.Fatalf("localCoord(%d,%d) = (%d,%d), want (%d,%d)", tc.x, tc.y, lx, ly, tc.lx, tc.ly)
		}
	}
}

func TestHaloIndex(t *testing.T) {
	ix := newChunkIndex(4)
	if got := ix.haloIndex(-1, -1); got != 0 {
		t.Fatalf("top-left halo = %d, want 0", got)
	}
	if got := ix.haloIndex(0, 0); got != 7 {
		t.Fatalf("first interior cell = %d, want 7", got)
	}
	if got := ix.haloIndex(4, 4); got != 35 {
		t.Fatalf("bottom-right halo = %d, want 35", got)
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{MinX: 0, MinY: 0, MaxX: 9, MaxY: 9}
	b := Rect{MinX: 5, MinY: -3, MaxX: 20, MaxY: 4}
	got := a.Intersect(b)
	want := Rect{MinX: 5, MinY: 0, MaxX: 9, MaxY: 4}
	if got != want {
		t.Fatalf("Intersect = %+v, want %+v", got, want)
	}
	if a.Intersect(Rect{MinX: 10, MinY: 10, MaxX: 12, MaxY: 12}).Empty() != true {
		t.Fatal("disjoint rectangles must intersect to empty")
	}
	if !got.Contains(5, 4) || got.Contains(4, 4) {
		t.Fatal("Contains disagrees with inclusive bounds")
	}
}
