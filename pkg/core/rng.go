package core

import (
	"math/rand/v2"

	"chunklife/pkg/life"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// Soup returns the live cells of a random side*side square whose top-left
// corner is (x0, y0). Each cell is live with probability density. Cells are
// listed row by row, so equal seeds give equal slices.
func (r *RNG) Soup(x0, y0, side int, density float64) []life.Point {
	if side <= 0 {
		return nil
	}
	var out []life.Point
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if r.Chance(density) {
				out = append(out, life.Point{X: x0 + x, Y: y0 + y})
			}
		}
	}
	return out
}

// Centered returns the top-left corner of a side*side square centered in
// the given rectangle.
func Centered(area life.Rect, side int) (int, int) {
	w := area.MaxX - area.MinX + 1
	h := area.MaxY - area.MinY + 1
	return area.MinX + (w-side)/2, area.MinY + (h-side)/2
}
