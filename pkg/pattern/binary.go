package pattern

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"chunklife/pkg/life"
)

const binaryVersion = 1

var binaryMagic = [4]byte{'C', 'L', 'P', 'T'}

var (
	// ErrBadMagic reports input that is not a binary pattern.
	ErrBadMagic = errors.New("pattern: bad magic")
	// ErrVersion reports a binary pattern written by another format version.
	ErrVersion = errors.New("pattern: unsupported version")
)

// binaryHeader precedes the rule text and the coordinate pairs. All fields
// are little endian.
type binaryHeader struct {
	Magic      [4]byte
	Version    uint16
	RuleLen    uint16
	Generation uint32
	Count      uint32
}

// WriteBinary encodes s as a version-tagged flat list of int32 pairs.
func WriteBinary(w io.Writer, s Snapshot) error {
	if len(s.Rule) > math.MaxUint16 {
		return fmt.Errorf("pattern: rule text too long (%d bytes)", len(s.Rule))
	}
	bw := bufio.NewWriter(w)
	hdr := binaryHeader{
		Magic:      binaryMagic,
		Version:    binaryVersion,
		RuleLen:    uint16(len(s.Rule)),
		Generation: uint32(s.Generation),
		Count:      uint32(len(s.Cells)),
	}
	if err := binary.Write(bw, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := bw.WriteString(s.Rule); err != nil {
		return fmt.Errorf("writing rule: %w", err)
	}
	var pair [8]byte
	for _, p := range s.Cells {
		if p.X < math.MinInt32 || p.X > math.MaxInt32 || p.Y < math.MinInt32 || p.Y > math.MaxInt32 {
			return fmt.Errorf("pattern: cell (%d,%d) does not fit in int32", p.X, p.Y)
		}
		binary.LittleEndian.PutUint32(pair[0:], uint32(int32(p.X)))
		binary.LittleEndian.PutUint32(pair[4:], uint32(int32(p.Y)))
		if _, err := bw.Write(pair[:]); err != nil {
			return fmt.Errorf("writing cells: %w", err)
		}
	}
	return bw.Flush()
}

// ReadBinary decodes a snapshot written by WriteBinary.
func ReadBinary(r io.Reader) (Snapshot, error) {
	br := bufio.NewReader(r)
	var hdr binaryHeader
	if err := binary.Read(br, binary.LittleEndian, &hdr); err != nil {
		return Snapshot{}, fmt.Errorf("reading header: %w", err)
	}
	if hdr.Magic != binaryMagic {
		return Snapshot{}, ErrBadMagic
	}
	if hdr.Version != binaryVersion {
		return Snapshot{}, fmt.Errorf("%w: %d", ErrVersion, hdr.Version)
	}
	rule := make([]byte, hdr.RuleLen)
	if _, err := io.ReadFull(br, rule); err != nil {
		return Snapshot{}, fmt.Errorf("reading rule: %w", err)
	}
	s := Snapshot{Rule: string(rule), Generation: int(hdr.Generation)}
	if hdr.Count > 0 {
		s.Cells = make([]life.Point, 0, min(int(hdr.Count), 1<<20))
	}
	var pair [8]byte
	for i := uint32(0); i < hdr.Count; i++ {
		if _, err := io.ReadFull(br, pair[:]); err != nil {
			return Snapshot{}, fmt.Errorf("reading cell %d: %w", i, err)
		}
		s.Cells = append(s.Cells, life.Point{
			X: int(int32(binary.LittleEndian.Uint32(pair[0:]))),
			Y: int(int32(binary.LittleEndian.Uint32(pair[4:]))),
		})
	}
	return s, nil
}
