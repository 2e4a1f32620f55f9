package life

import (
	"slices"
	"testing"
)

type drawnRun struct {
	x, y, n int
	state   uint8
}

type runRecorder struct {
	runs []drawnRun
}

func (r *runRecorder) DrawRun(x, y, length int, state uint8) {
	r.runs = append(r.runs, drawnRun{x, y, length, state})
}

func TestDrawRunsSplitsByStateAndChunk(t *testing.T) {
	e := newTestEngine(t, 4, 32, 32, Conway())
	e.SetCell(1, 1, 1)
	e.SetCell(2, 1, 1)
	e.SetCell(3, 1, 2)
	e.SetCell(4, 1, 2)
	e.SetCell(6, 2, 1)

	rec := &runRecorder{}
	e.DrawRuns(e.LimitBound(), rec)
	slices.SortFunc(rec.runs, func(a, b drawnRun) int {
		if a.y != b.y {
			return a.y - b.y
		}
		return a.x - b.x
	})
	want := []drawnRun{
		{1, 1, 2, 1},
		{3, 1, 1, 2},
		{4, 1, 1, 2},
		{6, 2, 1, 1},
	}
	if !slices.Equal(rec.runs, want) {
		t.Fatalf("runs = %v, want %v", rec.runs, want)
	}
}

func TestDrawRunsClipsToRegion(t *testing.T) {
	e := newTestEngine(t, 8, 32, 32, Conway())
	for x := 0; x < 8; x++ {
		e.SetCell(x, 3, 1)
	}
	rec := &runRecorder{}
	e.DrawRuns(Rect{MinX: 2, MinY: 0, MaxX: 5, MaxY: 7}, rec)
	want := []drawnRun{{2, 3, 4, 1}}
	if !slices.Equal(rec.runs, want) {
		t.Fatalf("runs = %v, want %v", rec.runs, want)
	}
}
