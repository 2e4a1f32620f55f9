package core

import (
	"slices"
	"testing"

	"chunklife/pkg/life"
)

func TestSoupIsDeterministic(t *testing.T) {
	a := NewRNG(7).Soup(10, 20, 32, 0.4)
	b := NewRNG(7).Soup(10, 20, 32, 0.4)
	if !slices.Equal(a, b) {
		t.Fatal("equal seeds must give equal soups")
	}
	if c := NewRNG(8).Soup(10, 20, 32, 0.4); slices.Equal(a, c) {
		t.Fatal("different seeds should give different soups")
	}
	for _, p := range a {
		if p.X < 10 || p.X >= 42 || p.Y < 20 || p.Y >= 52 {
			t.Fatalf("cell %v outside the soup square", p)
		}
	}
}

func TestSoupDensityExtremes(t *testing.T) {
	r := NewRNG(1)
	if got := r.Soup(0, 0, 8, 0); len(got) != 0 {
		t.Fatalf("density 0 gave %d cells", len(got))
	}
	if got := r.Soup(0, 0, 8, 1); len(got) != 64 {
		t.Fatalf("density 1 gave %d cells, want 64", len(got))
	}
	if got := r.Soup(0, 0, 0, 1); got != nil {
		t.Fatalf("empty side gave %v", got)
	}
}

func TestCentered(t *testing.T) {
	x, y := Centered(life.Rect{MaxX: 99, MaxY: 49}, 10)
	if x != 45 || y != 20 {
		t.Fatalf("Centered = (%d,%d), want (45,20)", x, y)
	}
}
