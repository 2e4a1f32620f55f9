package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"

	"chunklife/internal/config"
	"chunklife/internal/stats"
	"chunklife/pkg/core"
	"chunklife/pkg/life"
	"chunklife/pkg/pattern"
)

func runCommand() *cli.Command {
	flags := append(seedFlags(),
		&cli.IntFlag{Name: "steps", Aliases: []string{"n"}, Usage: "generations to run", Value: 1000},
		&cli.IntFlag{Name: "every", Usage: "record stats every N generations (0 = only at the end)", Value: 100},
		&cli.StringFlag{Name: "pattern", Aliases: []string{"p"}, Usage: "start from this snapshot instead of a soup"},
		&cli.StringFlag{Name: "stats", Usage: "CSV file for stats samples"},
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write the final pattern here (.clp, .csv, .yaml)"},
		&cli.BoolFlag{Name: "verify", Usage: "check engine invariants after every recorded sample"},
	)
	return &cli.Command{
		Name:  "run",
		Usage: "step a world and record stats",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			opts := runOptions{
				Steps:   int(cmd.Int("steps")),
				Every:   int(cmd.Int("every")),
				Pattern: cmd.String("pattern"),
				Stats:   cmd.String("stats"),
				Out:     cmd.String("out"),
				Verify:  cmd.Bool("verify"),
			}
			_, err = runWorld(ctx, cfg, opts)
			return err
		},
	}
}

type runOptions struct {
	Steps   int
	Every   int
	Pattern string
	Stats   string
	Out     string
	Verify  bool
}

// runWorld seeds an engine from cfg or a snapshot, steps it and returns the
// final counters.
func runWorld(ctx context.Context, cfg config.Config, opts runOptions) (life.Stats, error) {
	ec, err := cfg.EngineConfig()
	if err != nil {
		return life.Stats{}, err
	}
	e, err := life.New(ec)
	if err != nil {
		return life.Stats{}, err
	}
	if err := seedWorld(e, cfg, opts.Pattern); err != nil {
		return life.Stats{}, err
	}

	rec, err := stats.NewRecorder(opts.Stats)
	if err != nil {
		return life.Stats{}, err
	}
	defer rec.Close()

	slog.Info("run starting",
		"rule", e.Rule().String(),
		"chunk_size", e.ChunkSize(),
		"population", e.Population(),
		"steps", opts.Steps,
	)
	record := func(elapsed time.Duration) error {
		sample := stats.Measure(e, elapsed)
		slog.Debug("sample", "stats", sample)
		if opts.Verify {
			if err := e.Verify(); err != nil {
				return err
			}
		}
		return rec.Write(sample)
	}

	start := time.Now()
	var window time.Duration
	for i := 1; i <= opts.Steps; i++ {
		if err := ctx.Err(); err != nil {
			return e.Stats(), err
		}
		t := time.Now()
		e.Step()
		window += time.Since(t)
		if opts.Every > 0 && i%opts.Every == 0 {
			if err := record(window); err != nil {
				return e.Stats(), err
			}
			window = 0
		}
	}
	if opts.Every <= 0 || opts.Steps%opts.Every != 0 {
		if err := record(window); err != nil {
			return e.Stats(), err
		}
	}

	if opts.Out != "" {
		if err := pattern.Save(opts.Out, pattern.Capture(e)); err != nil {
			return e.Stats(), err
		}
		slog.Info("pattern saved", "path", opts.Out)
	}
	final := stats.Measure(e, time.Since(start))
	slog.Info("run finished", "stats", final, "rows", rec.Rows())
	return e.Stats(), nil
}

func seedWorld(e *life.Engine, cfg config.Config, path string) error {
	if path == "" {
		x0, y0 := core.Centered(e.LimitBound(), cfg.Seed.Region)
		for _, p := range core.NewRNG(cfg.Seed.Value).Soup(x0, y0, cfg.Seed.Region, cfg.Seed.Density) {
			e.SetCell(p.X, p.Y, 1)
		}
		return nil
	}
	snap, err := pattern.Load(path)
	if err != nil {
		return err
	}
	if snap.Rule != "" && snap.Rule != e.Rule().String() {
		slog.Warn("snapshot rule differs from configured rule", "snapshot", snap.Rule, "engine", e.Rule().String())
	}
	if err := snap.Restore(e); err != nil {
		return fmt.Errorf("restoring %s: %w", path, err)
	}
	return nil
}
