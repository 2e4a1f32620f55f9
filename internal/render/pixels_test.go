package render

import (
	"image/color"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{0, 1, 3}
	buf := make([]byte, 4*len(cells))
	fillBinaryRGBA(buf, cells, color.White, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	want := []byte{10, 20, 30, 255, 255, 255, 255, 255, 255, 255, 255, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d (buf %v)", i, buf[i], want[i], buf)
		}
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	palette := ShadePalette()
	cells := []uint8{0, 1, 2, 3, 9}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)
	for i, c := range cells {
		idx := int(c)
		if idx >= len(palette) {
			idx = len(palette) - 1
		}
		got := color.RGBA{R: buf[4*i], G: buf[4*i+1], B: buf[4*i+2], A: buf[4*i+3]}
		if got != palette[idx] {
			t.Fatalf("cell %d = %v, want %v", i, got, palette[idx])
		}
	}

	fillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d after empty palette", i, b)
		}
	}
}
