// Package pattern persists the live cells of a life.Engine. The unit of
// persistence is the engine's pattern: a list of live-cell world
// coordinates, optionally tagged with the rule and generation it came from.
package pattern

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"chunklife/pkg/life"
)

var (
	// ErrOutOfRange reports cells that the target engine cannot hold.
	ErrOutOfRange = errors.New("pattern: cells outside engine bounds")
	// ErrUnknownFormat reports a file extension with no codec.
	ErrUnknownFormat = errors.New("pattern: unknown format")
)

// Snapshot is one persisted generation.
type Snapshot struct {
	Rule       string
	Generation int
	Cells      []life.Point
}

// Capture records every live cell of e.
func Capture(e *life.Engine) Snapshot {
	return Snapshot{
		Rule:       e.Rule().String(),
		Generation: e.Generation(),
		Cells:      e.Pattern(),
	}
}

// Stamp writes the snapshot's cells into e, offset by (dx, dy), on top of
// whatever e already holds. Cells that fall outside e are skipped and
// reported together as ErrOutOfRange.
func (s Snapshot) Stamp(e *life.Engine, dx, dy int) error {
	missed := 0
	for _, p := range s.Cells {
		if !e.SetCell(p.X+dx, p.Y+dy, 1) {
			missed++
		}
	}
	if missed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrOutOfRange, missed, len(s.Cells))
	}
	return nil
}

// Restore clears e and stamps the snapshot at its recorded coordinates.
func (s Snapshot) Restore(e *life.Engine) error {
	e.Clear()
	return s.Stamp(e, 0, 0)
}

// Format names an on-disk encoding.
type Format string

const (
	FormatBinary Format = "clp"
	FormatCSV    Format = "csv"
	FormatYAML   Format = "yaml"
)

// FormatFor picks the codec for a file name by extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".clp":
		return FormatBinary, nil
	case ".csv":
		return FormatCSV, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Save writes s to path using the codec implied by its extension.
func Save(path string, s Snapshot) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating pattern file: %w", err)
	}
	switch format {
	case FormatBinary:
		err = WriteBinary(f, s)
	case FormatCSV:
		err = WriteCSV(f, s)
	case FormatYAML:
		err = WriteYAML(f, s)
	}
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing pattern file: %w", cerr)
	}
	return err
}

// Load reads a snapshot from path using the codec implied by its extension.
func Load(path string) (Snapshot, error) {
	format, err := FormatFor(path)
	if err != nil {
		return Snapshot{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("opening pattern file: %w", err)
	}
	defer f.Close()
	switch format {
	case FormatBinary:
		return ReadBinary(f)
	case FormatCSV:
		return ReadCSV(f)
	default:
		return ReadYAML(f)
	}
}
