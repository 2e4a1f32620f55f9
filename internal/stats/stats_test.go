package stats

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"chunklife/pkg/life"
)

func TestRecorderWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "stats.csv")
	rec, err := NewRecorder(path)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := rec.Write(Sample{Generation: i, Population: 10 * i}); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if rec.Rows() != 3 {
		t.Fatalf("Rows = %d, want 3", rec.Rows())
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header plus 3 rows:\n%s", len(lines), data)
	}
	if lines[0] != "generation,population,chunks,sleeping,step_us" {
		t.Fatalf("header = %q", lines[0])
	}
	if strings.Count(string(data), "generation") != 1 {
		t.Fatalf("header repeated:\n%s", data)
	}
	if lines[3] != "2,20,0,0,0" {
		t.Fatalf("last row = %q", lines[3])
	}
}

func TestNilRecorderDiscards(t *testing.T) {
	rec, err := NewRecorder("")
	if err != nil || rec != nil {
		t.Fatalf("NewRecorder(\"\") = %v, %v", rec, err)
	}
	if err := rec.Write(Sample{}); err != nil {
		t.Fatalf("nil Write: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("nil Close: %v", err)
	}
}

func TestMeasure(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.ChunkSize = 8
	cfg.Width, cfg.Height = 64, 64
	e, err := life.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	e.SetCell(3, 3, 1)
	e.SetCell(4, 3, 1)
	e.SetCell(5, 3, 1)
	e.Step()
	s := Measure(e, 1500*time.Microsecond)
	if s.Generation != 1 || s.Population != 3 || s.Chunks != 1 || s.StepMicros != 1500 {
		t.Fatalf("Measure = %+v", s)
	}
	if s.Awake() != 1 {
		t.Fatalf("Awake = %d", s.Awake())
	}
}
