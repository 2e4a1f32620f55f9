package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"chunklife/internal/sweep"
)

func sweepCommand() *cli.Command {
	flags := append(seedFlags(),
		&cli.IntFlag{Name: "seeds", Usage: "number of seeds to check, starting at --seed", Value: 16},
		&cli.IntFlag{Name: "steps", Aliases: []string{"n"}, Usage: "generations per run", Value: 200},
		&cli.IntFlag{Name: "workers", Aliases: []string{"j"}, Usage: "seeds checked concurrently", Value: defaultWorkers()},
	)
	return &cli.Command{
		Name:  "sweep",
		Usage: "cross-check repeat, sleep, translated and restored runs over many seeds",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ec, err := cfg.EngineConfig()
			if err != nil {
				return err
			}
			n := int(cmd.Int("seeds"))
			if n <= 0 {
				return fmt.Errorf("--seeds must be positive, got %d", n)
			}
			seeds := make([]int64, n)
			for i := range seeds {
				seeds[i] = cfg.Seed.Value + int64(i)
			}
			reports, err := sweep.Run(ctx, sweep.Options{
				Engine:  ec,
				Seeds:   seeds,
				Steps:   int(cmd.Int("steps")),
				Region:  cfg.Seed.Region,
				Density: cfg.Seed.Density,
				Workers: int(cmd.Int("workers")),
			})
			failed := 0
			for _, r := range reports {
				if r.Err != nil {
					failed++
					slog.Error("seed failed", "seed", r.Seed, "error", r.Err)
					continue
				}
				slog.Info("seed ok",
					"seed", r.Seed,
					"population", r.Population,
					"chunks", r.Chunks,
					"sleeping", r.Sleeping,
					"translated", r.Translated,
					"elapsed", r.Elapsed,
				)
			}
			slog.Info("sweep finished", "seeds", len(seeds), "failed", failed)
			return err
		},
	}
}
