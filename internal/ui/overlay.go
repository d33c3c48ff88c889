//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"graph-life/internal/core"
)

// pursuitProvider is implemented by sims whose hunters track a target.
type pursuitProvider interface {
	PursuitLinks() [][2]int
}

// Overlay draws optional debugging visuals on top of the grid. O toggles the
// zombie pursuit lines.
type Overlay struct {
	sim     core.Sim
	scale   int
	showPur bool
	pixel   *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	_, o.showPur = sim.(pursuitProvider)
	return o
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		o.showPur = !o.showPur
	}
}

// Draw renders the enabled overlays.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.showPur {
		return
	}
	provider, ok := o.sim.(pursuitProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	half := float64(o.scale) / 2
	for _, link := range provider.PursuitLinks() {
		fr, fc := link[0]/size.Cols, link[0]%size.Cols
		tr, tc := link[1]/size.Cols, link[1]%size.Cols
		// Draw along the shorter way around the torus.
		dr := wrapDelta(tr-fr, size.Rows)
		dc := wrapDelta(tc-fc, size.Cols)
		x1 := float64(fc*o.scale) + half
		y1 := float64(fr*o.scale) + half
		x2 := x1 + float64(dc*o.scale)
		y2 := y1 + float64(dr*o.scale)
		o.drawLine(screen, x1, y1, x2, y2, 1, pursuitColor)
		o.drawPoint(screen, x2, y2, math.Max(2, half), pursuitColor)
	}
}

func wrapDelta(d, n int) int {
	if d > n/2 {
		return d - n
	}
	if d < -n/2 {
		return d + n
	}
	return d
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 || thickness <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

var pursuitColor = color.RGBA{R: 255, G: 80, B: 80, A: 200}
