//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"graph-life/internal/core"
)

// GridPainter keeps an RGBA copy of a grid and uploads it once per frame when
// it has changed.
type GridPainter struct {
	rows, cols int
	palette    Palette
	img        *ebiten.Image
	buf        []byte
	dirty      bool
}

// NewGridPainter allocates a painter for a rows x cols grid.
func NewGridPainter(size core.Size, palette Palette) *GridPainter {
	gp := &GridPainter{palette: palette}
	gp.Resize(size)
	return gp
}

// Resize reallocates the backing image.
func (gp *GridPainter) Resize(size core.Size) {
	if gp.img != nil {
		gp.img.Dispose()
	}
	gp.rows, gp.cols = size.Rows, size.Cols
	gp.buf = make([]byte, 4*size.Rows*size.Cols)
	gp.img = ebiten.NewImage(size.Cols, size.Rows)
	gp.palette.FillRGBA(gp.buf, make([]core.CellState, size.Rows*size.Cols))
	gp.dirty = true
}

// Paint is a core.Callback that records one cell.
func (gp *GridPainter) Paint(row, col int, s core.CellState) {
	if row < 0 || row >= gp.rows || col < 0 || col >= gp.cols {
		return
	}
	gp.palette.PutPixel(gp.buf, row*gp.cols+col, s)
	gp.dirty = true
}

// Reload repaints everything from sim. Sims only report live cells through
// ForAllLife, so the buffer is cleared first.
func (gp *GridPainter) Reload(sim core.Sim) {
	if s := sim.Size(); s.Rows != gp.rows || s.Cols != gp.cols {
		gp.Resize(s)
	}
	gp.palette.FillRGBA(gp.buf, make([]core.CellState, gp.rows*gp.cols))
	sim.ForAllLife(gp.Paint)
	gp.dirty = true
}

// Blit draws the grid scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, scale int) {
	if gp.dirty {
		gp.img.WritePixels(gp.buf)
		gp.dirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
