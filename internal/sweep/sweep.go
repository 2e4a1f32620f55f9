// Package sweep runs seeded random soups through the engine and cross-checks
// the results of equivalent runs.
package sweep

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"chunklife/pkg/core"
	"chunklife/pkg/life"
	"chunklife/pkg/pattern"
)

// ErrMismatch reports two runs that should agree but do not.
var ErrMismatch = errors.New("sweep: runs disagree")

// Options configures a sweep.
type Options struct {
	Engine  life.Config
	Seeds   []int64
	Steps   int
	Region  int     // side of the soup square
	Density float64 // live fraction inside the soup
	Workers int     // concurrent seeds; <= 0 means GOMAXPROCS
}

// Report is the outcome for one seed.
type Report struct {
	Seed       int64
	Population int
	Chunks     int
	Sleeping   int
	Translated bool // translation check ran
	Elapsed    time.Duration
	Err        error
}

// Run checks every seed and returns reports in seed order. The error joins
// every per-seed failure, or carries the context error if the sweep was
// cancelled.
func Run(ctx context.Context, opts Options) ([]Report, error) {
	if _, err := life.New(opts.Engine); err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	reports := make([]Report, len(opts.Seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range opts.Seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = checkSeed(opts, seed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return reports, err
	}
	var errs []error
	for _, r := range reports {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return reports, errors.Join(errs...)
}

func checkSeed(opts Options, seed int64) Report {
	start := time.Now()
	rep := Report{Seed: seed}
	fail := func(format string, args ...any) Report {
		rep.Err = fmt.Errorf("seed %d: %w: %s", seed, ErrMismatch, fmt.Sprintf(format, args...))
		rep.Elapsed = time.Since(start)
		return rep
	}

	base, err := life.New(opts.Engine)
	if err != nil {
		rep.Err = err
		return rep
	}
	x0, y0 := core.Centered(base.LimitBound(), opts.Region)
	soup := core.NewRNG(seed).Soup(x0, y0, opts.Region, opts.Density)

	run := func(cfg life.Config, cells []life.Point) (*life.Engine, error) {
		e, err := life.New(cfg)
		if err != nil {
			return nil, err
		}
		for _, p := range cells {
			e.SetCell(p.X, p.Y, 1)
		}
		e.StepN(opts.Steps)
		return e, e.Verify()
	}

	ref, err := run(opts.Engine, soup)
	if err != nil {
		rep.Err = fmt.Errorf("seed %d: %w", seed, err)
		return rep
	}
	want := sorted(ref.Pattern())

	again, err := run(opts.Engine, soup)
	if err != nil {
		rep.Err = fmt.Errorf("seed %d: %w", seed, err)
		return rep
	}
	if !slices.Equal(sorted(again.Pattern()), want) {
		return fail("repeat run differs")
	}

	toggled := opts.Engine
	toggled.Sleep = !toggled.Sleep
	other, err := run(toggled, soup)
	if err != nil {
		rep.Err = fmt.Errorf("seed %d: %w", seed, err)
		return rep
	}
	if !slices.Equal(sorted(other.Pattern()), want) {
		return fail("sleep=%v run differs", toggled.Sleep)
	}

	if dx, dy, ok := translation(opts, ref.LimitBound(), x0, y0); ok {
		rep.Translated = true
		limit := ref.LimitBound()
		moved, err := run(opts.Engine, shift(soup, dx, dy, limit, opts.Engine.Rule))
		if err != nil {
			rep.Err = fmt.Errorf("seed %d: %w", seed, err)
			return rep
		}
		if !slices.Equal(sorted(moved.Pattern()), sorted(shift(want, dx, dy, limit, opts.Engine.Rule))) {
			return fail("run shifted by (%d,%d) differs", dx, dy)
		}
	}

	var buf bytes.Buffer
	if err := pattern.WriteBinary(&buf, pattern.Capture(ref)); err != nil {
		rep.Err = fmt.Errorf("seed %d: %w", seed, err)
		return rep
	}
	snap, err := pattern.ReadBinary(&buf)
	if err != nil {
		rep.Err = fmt.Errorf("seed %d: %w", seed, err)
		return rep
	}
	restored, err := life.New(opts.Engine)
	if err != nil {
		rep.Err = err
		return rep
	}
	if err := snap.Restore(restored); err != nil {
		rep.Err = fmt.Errorf("seed %d: %w", seed, err)
		return rep
	}
	const tail = 4
	ref.StepN(tail)
	restored.StepN(tail)
	if !slices.Equal(sorted(restored.Pattern()), sorted(ref.Pattern())) {
		return fail("restored snapshot diverged")
	}

	st := ref.Stats()
	rep.Population = st.Population
	rep.Chunks = st.Chunks
	rep.Sleeping = st.Sleeping
	rep.Elapsed = time.Since(start)
	return rep
}

// translation picks an offset that moves the soup across a chunk edge. On a
// bounded axis the soup must stay farther than Steps cells from the store
// edge in both runs, since nothing travels faster than one cell per
// generation.
func translation(opts Options, limit life.Rect, x0, y0 int) (int, int, bool) {
	size := opts.Engine.ChunkSize
	dx, dy := size/2+1, size/3+1
	margin := opts.Steps + 1
	fits := func(lo, side, d, max int, wrap bool) bool {
		if wrap {
			return true
		}
		return lo-margin >= 0 && lo+d+side-1+margin <= max
	}
	if !fits(x0, opts.Region, dx, limit.MaxX, opts.Engine.Rule.WrapX) {
		return 0, 0, false
	}
	if !fits(y0, opts.Region, dy, limit.MaxY, opts.Engine.Rule.WrapY) {
		return 0, 0, false
	}
	return dx, dy, true
}

func shift(pts []life.Point, dx, dy int, limit life.Rect, rule life.Rule) []life.Point {
	w, h := limit.MaxX+1, limit.MaxY+1
	out := make([]life.Point, len(pts))
	for i, p := range pts {
		x, y := p.X+dx, p.Y+dy
		if rule.WrapX {
			x = ((x % w) + w) % w
		}
		if rule.WrapY {
			y = ((y % h) + h) % h
		}
		out[i] = life.Point{X: x, Y: y}
	}
	return out
}

func sorted(pts []life.Point) []life.Point {
	out := slices.Clone(pts)
	slices.SortFunc(out, func(a, b life.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}
