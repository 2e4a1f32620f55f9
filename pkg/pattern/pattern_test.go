package pattern

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"path/filepath"
	"slices"
	"testing"

	"chunklife/pkg/life"
)

func newEngine(t *testing.T) *life.Engine {
	t.Helper()
	cfg := life.DefaultConfig()
	cfg.ChunkSize = 16
	cfg.Width = 512
	cfg.Height = 512
	e, err := life.New(cfg)
	if err != nil {
		t.Fatalf("life.New: %v", err)
	}
	return e
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

func seeded(t *testing.T) *life.Engine {
	t.Helper()
	e := newEngine(t)
	rng := rand.New(rand.NewPCG(9, 9))
	for i := 0; i < 3000; i++ {
		e.SetCell(100+rng.IntN(200), 100+rng.IntN(200), 1)
	}
	e.StepN(25)
	return e
}

func TestRoundTripThroughFiles(t *testing.T) {
	src := seeded(t)
	snap := Capture(src)
	if len(snap.Cells) == 0 {
		t.Fatal("seeded engine should have live cells")
	}
	dir := t.TempDir()
	for _, name := range []string{"soup.clp", "soup.csv", "soup.yaml", "soup.yml"} {
		path := filepath.Join(dir, name)
		if err := Save(path, snap); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
		loaded, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s): %v", name, err)
		}
		dst := newEngine(t)
		if err := loaded.Restore(dst); err != nil {
			t.Fatalf("Restore(%s): %v", name, err)
		}
		if got, want := sorted(dst.Pattern()), sorted(src.Pattern()); !slices.Equal(got, want) {
			t.Fatalf("%s: restored %d cells, want %d", name, len(got), len(want))
		}
		src.StepN(3)
		dst.StepN(3)
		if got, want := sorted(dst.Pattern()), sorted(src.Pattern()); !slices.Equal(got, want) {
			t.Fatalf("%s: restored engine diverged after stepping", name)
		}
		snap = Capture(src)
	}
}

func TestBinaryKeepsMetadata(t *testing.T) {
	snap := Snapshot{
		Rule:       "B36/S23",
		Generation: 1234,
		Cells:      []life.Point{{X: -3, Y: 7}, {X: 1 << 20, Y: 0}},
	}
	var buf bytes.Buffer
	if err := WriteBinary(&buf, snap); err != nil {
		t.Fatalf("WriteBinary: %v", err)
	}
	got, err := ReadBinary(&buf)
	if err != nil {
		t.Fatalf("ReadBinary: %v", err)
	}
	if got.Rule != snap.Rule || got.Generation != snap.Generation || !slices.Equal(got.Cells, snap.Cells) {
		t.Fatalf("ReadBinary = %+v, want %+v", got, snap)
	}
}

func TestYAMLKeepsMetadata(t *testing.T) {
	snap := Snapshot{Rule: "B3/S23", Generation: 7, Cells: []life.Point{{X: 1, Y: 2}}}
	var buf bytes.Buffer
	if err := WriteYAML(&buf, snap); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	got, err := ReadYAML(&buf)
	if err != nil {
		t.Fatalf("ReadYAML: %v", err)
	}
	if got.Rule != snap.Rule || got.Generation != snap.Generation || !slices.Equal(got.Cells, snap.Cells) {
		t.Fatalf("ReadYAML = %+v, want %+v", got, snap)
	}
}

func TestReadBinaryRejects(t *testing.T) {
	if _, err := ReadBinary(bytes.NewReader([]byte("NOPE0000000000000000"))); !errors.Is(err, ErrBadMagic) {
		t.Fatalf("bad magic err = %v", err)
	}
	var buf bytes.Buffer
	if err := WriteBinary(&buf, Snapshot{}); err != nil {
		t.Fatal(err)
	}
	raw := buf.Bytes()
	raw[4] = 9
	if _, err := ReadBinary(bytes.NewReader(raw)); !errors.Is(err, ErrVersion) {
		t.Fatalf("bad version err = %v", err)
	}
}

func TestStampOffsetsAndReportsMisses(t *testing.T) {
	e := newEngine(t)
	snap := Snapshot{Cells: []life.Point{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: -20, Y: 1}}}
	err := snap.Stamp(e, 10, 10)
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Stamp err = %v, want ErrOutOfRange", err)
	}
	want := []life.Point{{X: 10, Y: 10}, {X: 15, Y: 15}}
	if got := sorted(e.Pattern()); !slices.Equal(got, want) {
		t.Fatalf("stamped pattern = %v, want %v", got, want)
	}
}

func TestFormatFor(t *testing.T) {
	if _, err := FormatFor("soup.rle"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("FormatFor(.rle) err = %v", err)
	}
	if f, err := FormatFor("SOUP.CSV"); err != nil || f != FormatCSV {
		t.Fatalf("FormatFor(.CSV) = %q, %v", f, err)
	}
	if err := Save(filepath.Join(t.TempDir(), "x.txt"), Snapshot{}); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Save(.txt) err = %v", err)
	}
}
