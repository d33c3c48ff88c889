package render

import (
	"image/color"

	"graph-life/internal/core"
)

// Palette maps each cell state to a display colour.
type Palette [core.NumStates]color.RGBA

// DefaultPalette returns the colours used by the viewer.
func DefaultPalette() Palette {
	var p Palette
	p[core.Dead] = color.RGBA{R: 12, G: 12, B: 16, A: 255}
	p[core.Alive] = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	p[core.Zombie] = color.RGBA{R: 96, G: 200, B: 72, A: 255}
	p[core.Food] = color.RGBA{R: 232, G: 176, B: 48, A: 255}
	p[core.Body] = color.RGBA{R: 80, G: 120, B: 210, A: 255}
	p[core.Nucleus] = color.RGBA{R: 200, G: 48, B: 96, A: 255}
	return p
}

// Color returns the colour for s; unknown states fall back to the dead colour.
func (p Palette) Color(s core.CellState) color.RGBA {
	if int(s) >= len(p) {
		return p[core.Dead]
	}
	return p[s]
}

// Shade returns the colour for s darkened by factor in [0, 1]; 1 keeps the
// base colour.
func (p Palette) Shade(s core.CellState, factor float64) color.RGBA {
	c := p.Color(s)
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// PutPixel writes the colour of s into the RGBA buffer at cell index i.
func (p Palette) PutPixel(buf []byte, i int, s core.CellState) {
	putRGBA(buf, i, p.Color(s))
}

// FillRGBA converts a whole grid into RGBA pixels in buf.
func (p Palette) FillRGBA(buf []byte, cells []core.CellState) {
	for i, s := range cells {
		putRGBA(buf, i, p.Color(s))
	}
}

func putRGBA(buf []byte, i int, c color.RGBA) {
	base := i * 4
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}
