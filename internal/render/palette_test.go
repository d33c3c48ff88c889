package render

import (
	"image/color"
	"testing"

	"graph-life/internal/core"
)

func TestPaletteCoversEveryState(t *testing.T) {
	p := DefaultPalette()
	seen := map[color.RGBA]core.CellState{}
	for s := core.CellState(0); int(s) < core.NumStates; s++ {
		c := p.Color(s)
		if c.A != 255 {
			t.Fatalf("state %v is not opaque", s)
		}
		if prev, ok := seen[c]; ok {
			t.Fatalf("states %v and %v share colour %v", prev, s, c)
		}
		seen[c] = s
	}
	if p.Color(core.CellState(200)) != p.Color(core.Dead) {
		t.Fatal("unknown states should render as dead")
	}
}

func TestFillRGBA(t *testing.T) {
	p := DefaultPalette()
	cells := []core.CellState{core.Dead, core.Nucleus, core.Food}
	buf := make([]byte, 4*len(cells))
	p.FillRGBA(buf, cells)
	for i, s := range cells {
		want := p.Color(s)
		got := color.RGBA{R: buf[i*4], G: buf[i*4+1], B: buf[i*4+2], A: buf[i*4+3]}
		if got != want {
			t.Fatalf("pixel %d=%v, want %v", i, got, want)
		}
	}

	p.PutPixel(buf, 2, core.Alive)
	if buf[8] != p.Color(core.Alive).R {
		t.Fatal("PutPixel did not overwrite the pixel")
	}
}

func TestShadeClamps(t *testing.T) {
	p := DefaultPalette()
	if p.Shade(core.Body, 2) != p.Color(core.Body) {
		t.Fatal("factor above one should keep the base colour")
	}
	if c := p.Shade(core.Body, -1); c.R != 0 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Fatalf("factor below zero should be black, got %v", c)
	}
}
