package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chunklife/internal/config"
	"chunklife/pkg/pattern"
)

func smallConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.World.Width = 256
	cfg.World.Height = 256
	cfg.World.ChunkSize = 32
	cfg.Seed.Region = 48
	return cfg
}

func TestRunWorldWritesStatsAndPattern(t *testing.T) {
	dir := t.TempDir()
	opts := runOptions{
		Steps:  25,
		Every:  10,
		Stats:  filepath.Join(dir, "stats.csv"),
		Out:    filepath.Join(dir, "final.clp"),
		Verify: true,
	}
	st, err := runWorld(context.Background(), smallConfig(), opts)
	if err != nil {
		t.Fatalf("runWorld: %v", err)
	}
	if st.Generation != 25 {
		t.Fatalf("Generation = %d, want 25", st.Generation)
	}
	data, err := os.ReadFile(opts.Stats)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// header, generations 10 and 20, then the final partial window
	if len(lines) != 4 {
		t.Fatalf("stats has %d lines:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[3], "25,") {
		t.Fatalf("last row = %q", lines[3])
	}
	snap, err := pattern.Load(opts.Out)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.Generation != 25 || len(snap.Cells) != st.Population {
		t.Fatalf("snapshot gen %d with %d cells, want 25 and %d", snap.Generation, len(snap.Cells), st.Population)
	}

	again, err := runWorld(context.Background(), smallConfig(), runOptions{Steps: 5, Pattern: opts.Out})
	if err != nil {
		t.Fatalf("runWorld from pattern: %v", err)
	}
	if again.Generation != 5 {
		t.Fatalf("Generation = %d, want 5", again.Generation)
	}
}

func TestRunWorldStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := runWorld(ctx, smallConfig(), runOptions{Steps: 10}); err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestConfigCommandPrintsYAML(t *testing.T) {
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	path := filepath.Join(t.TempDir(), "resolved.yaml")
	args := []string{"lifectl", "--rule", "B36/S23", "config", "--seed", "7", "--write", path}
	if err := app.Run(context.Background(), args); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "notation: B36/S23") || !strings.Contains(out.String(), "value: 7") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed.Value != 7 || cfg.Rule.Notation != "B36/S23" {
		t.Fatalf("written config = %+v", cfg)
	}
}

func TestBadRuleFails(t *testing.T) {
	app := newApp()
	app.Writer = &bytes.Buffer{}
	if err := app.Run(context.Background(), []string{"lifectl", "--rule", "B0/S1", "config"}); err == nil {
		t.Fatal("expected an error for a birth-on-zero rule")
	}
}

func TestSweepCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.yaml")
	if err := smallConfig().WriteYAML(path); err != nil {
		t.Fatal(err)
	}
	app := newApp()
	args := []string{"lifectl", "-c", path, "sweep", "--seeds", "3", "--steps", "20", "-j", "2"}
	if err := app.Run(context.Background(), args); err != nil {
		t.Fatalf("sweep: %v", err)
	}
}
