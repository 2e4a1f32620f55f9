package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if c.World.ChunkSize != 64 || c.Rule.Notation != "B3/S23" || !c.Engine.Sleep {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	ec, err := c.EngineConfig()
	if err != nil {
		t.Fatalf("EngineConfig: %v", err)
	}
	if ec.Rule.String() != "B3/S23" || ec.ChunkSize != 64 || !ec.Sleep {
		t.Fatalf("EngineConfig = %+v", ec)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	body := "world:\n  chunk_size: 32\nrule:\n  notation: B36/S23\n  wrap_x: true\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.World.ChunkSize != 32 || c.Rule.Notation != "B36/S23" || !c.Rule.WrapX {
		t.Fatalf("file values not applied: %+v", c)
	}
	if c.World.Width != 4096 || c.View.Scale != 3 {
		t.Fatalf("defaults lost for fields missing from file: %+v", c)
	}
	ec, err := c.EngineConfig()
	if err != nil {
		t.Fatal(err)
	}
	if !ec.Rule.WrapX || ec.Rule.WrapY {
		t.Fatalf("wrap flags not carried into rule: %+v", ec.Rule)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rule:\n  notation: B0/S8\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Load err = %v, want ErrInvalid", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file must fail")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	c := DefaultConfig()
	c.Seed.Density = 0.5
	c.Rule.WrapY = true
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := c.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != c {
		t.Fatalf("round trip = %+v, want %+v", got, c)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(DefaultConfig(), map[string]string{
		"w":       "512",
		"chunk":   "16",
		"rule":    "B36/S23",
		"wrap_x":  "true",
		"sleep":   "false",
		"density": "0.2",
		"region":  "bogus",
		"h":       "-4",
	})
	if c.World.Width != 512 || c.World.ChunkSize != 16 || c.Rule.Notation != "B36/S23" {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if !c.Rule.WrapX || c.Engine.Sleep || c.Seed.Density != 0.2 {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.Seed.Region != 192 || c.World.Height != 4096 {
		t.Fatalf("invalid overrides must be ignored: %+v", c)
	}
	if got := FromMap(DefaultConfig(), map[string]string{"rule": "B0/S"}); got.Rule.Notation != "B3/S23" {
		t.Fatalf("unparseable rule applied: %q", got.Rule.Notation)
	}
}
