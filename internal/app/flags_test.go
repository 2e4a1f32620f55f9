package app

import (
	"flag"
	"path/filepath"
	"testing"

	"chunklife/internal/core"
	_ "chunklife/internal/sims/life"
	"chunklife/pkg/life"
	"chunklife/pkg/pattern"
)

func TestBindParsesFlags(t *testing.T) {
	c := NewConfig()
	if c.Sim != "life" || c.Scale != 3 || c.GPS != 20 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse([]string{"-sim", "highlife", "-seed", "5", "-rule", "B36/S23", "-hud", "0"}); err != nil {
		t.Fatal(err)
	}
	if c.Sim != "highlife" || c.Seed != 5 || c.HUD != 0 {
		t.Fatalf("flags not applied: %+v", c)
	}
	args := c.FactoryArgs()
	if args["seed"] != "5" || args["rule"] != "B36/S23" {
		t.Fatalf("FactoryArgs = %v", args)
	}
	if _, ok := args["config"]; ok {
		t.Fatal("empty config path must not be passed on")
	}
}

func TestStartWithPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blinker.yaml")
	snap := pattern.Snapshot{Rule: "B3/S23", Cells: []life.Point{{X: 2000, Y: 2000}, {X: 2001, Y: 2000}, {X: 2002, Y: 2000}}}
	if err := pattern.Save(path, snap); err != nil {
		t.Fatal(err)
	}
	c := NewConfig()
	c.Pattern = path
	sim, err := Start(c)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	e := sim.(engineProvider).Engine()
	if e.Population() != 3 || e.Cell(2001, 2000) != 1 {
		t.Fatalf("pattern not restored: population %d", e.Population())
	}
}

func TestStartRandomAndUnknown(t *testing.T) {
	c := NewConfig()
	sim, err := Start(c)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if sim.Size() != (core.Size{W: 320, H: 240}) {
		t.Fatalf("Size = %+v", sim.Size())
	}
	if sim.(engineProvider).Engine().Population() == 0 {
		t.Fatal("random start should seed cells")
	}
	c.Sim = "nope"
	if _, err := Start(c); err == nil {
		t.Fatal("unknown sim must fail")
	}
}
