// Command lifectl runs the chunked life engine without a window.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strconv"

	"github.com/urfave/cli/v3"

	"chunklife/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newApp().Run(ctx, os.Args); err != nil {
		slog.Error("lifectl failed", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "lifectl",
		Usage: "run and check the chunked Game of Life engine headlessly",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML settings file (empty = embedded defaults)"},
			&cli.StringFlag{Name: "rule", Usage: "rule in B/S notation, overriding the config"},
			&cli.BoolFlag{Name: "json", Usage: "log as JSON instead of text"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log debug records"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			setupLogging(cmd)
			return ctx, nil
		},
		Commands: []*cli.Command{
			runCommand(),
			sweepCommand(),
			configCommand(),
		},
	}
}

func setupLogging(cmd *cli.Command) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cmd.Bool("verbose") {
		opts.Level = slog.LevelDebug
	}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cmd.Bool("json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// loadConfig resolves the config file, then flag overrides.
func loadConfig(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return config.Config{}, err
	}
	overrides := map[string]string{}
	if r := cmd.String("rule"); r != "" {
		overrides["rule"] = r
	}
	if cmd.IsSet("seed") {
		overrides["seed"] = strconv.FormatInt(int64(cmd.Int("seed")), 10)
	}
	for _, key := range []string{"density", "region"} {
		if cmd.IsSet(key) {
			overrides[key] = fmt.Sprint(cmd.Value(key))
		}
	}
	if cmd.IsSet("no-sleep") && cmd.Bool("no-sleep") {
		overrides["sleep"] = "false"
	}
	cfg = config.FromMap(cfg, overrides)
	if r, ok := overrides["rule"]; ok && cfg.Rule.Notation != r {
		return config.Config{}, fmt.Errorf("%w: rule %q", config.ErrInvalid, r)
	}
	return cfg, cfg.Validate()
}

func seedFlags() []cli.Flag {
	d := config.DefaultConfig().Seed
	return []cli.Flag{
		&cli.IntFlag{Name: "seed", Usage: "soup seed", Value: int(d.Value)},
		&cli.FloatFlag{Name: "density", Usage: "live fraction of the soup", Value: d.Density},
		&cli.IntFlag{Name: "region", Usage: "side of the soup square", Value: d.Region},
		&cli.BoolFlag{Name: "no-sleep", Usage: "disable chunk sleeping"},
	}
}

func defaultWorkers() int { return runtime.GOMAXPROCS(0) }
