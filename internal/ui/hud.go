//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"graph-life/internal/core"
	"graph-life/internal/render"
)

// Status is the per-frame viewer state shown in the HUD header.
type Status struct {
	Generation int
	Paused     bool
	Rate       float64
	Seed       int64
}

// HUD renders the information panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	palette    render.Palette
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	status     Status
	population int
	counts     [core.NumStates]int
	title      string
	summary    string
	swatch     *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int, palette render.Palette) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, palette: palette}
	if width > 0 {
		h.swatch = ebiten.NewImage(1, 1)
		h.swatch.Fill(color.White)
	}
	h.title = strings.ToUpper(sim.Name())
	h.summary, _, _ = strings.Cut(sim.Description(), "\n")
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached figures from the simulation.
func (h *HUD) Update(status Status) {
	if h == nil {
		return
	}
	h.status = status
	h.population = h.sim.PopulationCount()
	h.counts = [core.NumStates]int{}
	h.sim.ForAllLife(func(_, _ int, s core.CellState) {
		if int(s) < len(h.counts) {
			h.counts[s]++
		}
	})
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	} else {
		h.snapshot = core.ParameterSnapshot{}
	}
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)
	h.drawText()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawText() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, headerColor)
	y += lineHeight
	text.Draw(h.panel, h.summary, face, panelPadding, y, dimColor)

	state := "running"
	if h.status.Paused {
		state = "paused"
	}
	y += sectionGap
	for _, line := range []string{
		fmt.Sprintf("Generation  %d", h.status.Generation),
		fmt.Sprintf("Population  %d", h.population),
		fmt.Sprintf("Rate        %.0f/s (%s)", h.status.Rate, state),
		fmt.Sprintf("Seed        %d", h.status.Seed),
	} {
		text.Draw(h.panel, line, face, panelPadding, y, textColor)
		y += lineHeight
	}

	y += sectionGap - lineHeight
	for s := core.CellState(0); int(s) < core.NumStates; s++ {
		n := h.counts[s]
		if n == 0 || s == core.Dead {
			continue
		}
		h.drawSwatch(panelPadding, y-swatchSize+2, s)
		text.Draw(h.panel, fmt.Sprintf("%-8s %d", s, n), face, panelPadding+swatchSize+6, y, textColor)
		y += lineHeight
	}

	for _, group := range h.snapshot.Groups {
		y += sectionGap - lineHeight
		text.Draw(h.panel, group.Name, face, panelPadding, y, headerColor)
		y += lineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, panelPadding, y, textColor)
			w := text.BoundString(face, p.Value).Dx()
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-w, y, textColor)
			y += lineHeight
		}
	}

	y += sectionGap - lineHeight
	text.Draw(h.panel, "space pause  n step  r random", face, panelPadding, y, dimColor)
	text.Draw(h.panel, "c clear  +/- rate  q quit", face, panelPadding, y+lineHeight, dimColor)
}

func (h *HUD) drawSwatch(x, y int, s core.CellState) {
	factor := 1.0
	if h.status.Paused {
		factor = 0.5
	}
	c := h.palette.Shade(s, factor)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(swatchSize, swatchSize)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	h.panel.DrawImage(h.swatch, op)
}

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 16
	sectionGap     = 26
	headerBaseline = 6
	swatchSize     = 10
)
