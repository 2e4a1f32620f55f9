package pattern

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"chunklife/pkg/life"
)

type yamlSnapshot struct {
	Rule       string     `yaml:"rule,omitempty"`
	Generation int        `yaml:"generation"`
	Cells      []yamlCell `yaml:"cells"`
}

type yamlCell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// WriteYAML writes s as a YAML document.
func WriteYAML(w io.Writer, s Snapshot) error {
	doc := yamlSnapshot{Rule: s.Rule, Generation: s.Generation, Cells: make([]yamlCell, len(s.Cells))}
	for i, p := range s.Cells {
		doc.Cells[i] = yamlCell{X: p.X, Y: p.Y}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("writing yaml: %w", err)
	}
	return enc.Close()
}

// ReadYAML reads a snapshot written by WriteYAML.
func ReadYAML(r io.Reader) (Snapshot, error) {
	var doc yamlSnapshot
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return Snapshot{}, fmt.Errorf("reading yaml: %w", err)
	}
	s := Snapshot{Rule: doc.Rule, Generation: doc.Generation}
	if len(doc.Cells) > 0 {
		s.Cells = make([]life.Point, len(doc.Cells))
		for i, c := range doc.Cells {
			s.Cells[i] = life.Point{X: c.X, Y: c.Y}
		}
	}
	return s, nil
}
