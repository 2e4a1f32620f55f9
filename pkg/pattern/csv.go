package pattern

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"chunklife/pkg/life"
)

type cellRecord struct {
	X int `csv:"x"`
	Y int `csv:"y"`
}

// WriteCSV writes the cells with an x,y header. Rule and generation are not
// part of the CSV form.
func WriteCSV(w io.Writer, s Snapshot) error {
	records := make([]cellRecord, len(s.Cells))
	for i, p := range s.Cells {
		records[i] = cellRecord{X: p.X, Y: p.Y}
	}
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// ReadCSV reads cells written by WriteCSV.
func ReadCSV(r io.Reader) (Snapshot, error) {
	var records []cellRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return Snapshot{}, fmt.Errorf("reading csv: %w", err)
	}
	s := Snapshot{Cells: make([]life.Point, len(records))}
	for i, rec := range records {
		s.Cells[i] = life.Point{X: rec.X, Y: rec.Y}
	}
	return s, nil
}
