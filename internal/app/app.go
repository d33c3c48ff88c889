//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"graph-life/internal/core"
	"graph-life/internal/render"
	"graph-life/internal/ui"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	gate    *core.FixedStep

	left, right core.CellState

	scale      int
	rate       int
	seed       int64
	generation int
	paused     bool
	tickOnce   bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	palette := render.DefaultPalette()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(sim.Size(), palette),
		hud:     ui.NewHUD(sim, cfg.HUD, palette),
		overlay: ui.NewOverlay(sim, cfg.Scale),
		gate:    core.NewFixedStep(cfg.Rate),
		scale:   cfg.Scale,
		rate:    cfg.Rate,
		seed:    cfg.Seed,
	}
	g.left, g.right = Brushes(sim.Name())
	g.painter.Reload(sim)
	return g
}

// Reset reseeds the shared source and randomizes the simulation.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	core.Seed(seed)
	g.sim.Randomize()
	g.reload()
}

func (g *Game) reload() {
	g.generation = 0
	g.tickOnce = false
	g.gate.Reset()
	g.painter.Reload(g.sim)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.seed++
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Clear()
		g.reload()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.setRate(g.rate * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.setRate(g.rate / 2)
	}
	g.handleMouse()
	g.overlay.Update()

	if (!g.paused && g.gate.Due()) || g.tickOnce {
		g.sim.Step(g.painter.Paint)
		g.generation++
		g.tickOnce = false
	}

	g.hud.Update(ui.Status{Generation: g.generation, Paused: g.paused, Rate: float64(g.rate), Seed: g.seed})
	return nil
}

func (g *Game) setRate(rate int) {
	if rate < 1 {
		rate = 1
	}
	if rate > 240 {
		rate = 240
	}
	g.rate = rate
	g.gate.SetRate(rate)
}

func (g *Game) handleMouse() {
	brush, ok := g.left, inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if !ok {
		brush, ok = g.right, inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	}
	if !ok {
		return
	}
	x, y := ebiten.CursorPosition()
	row, col := y/g.scale, x/g.scale
	size := g.sim.Size()
	if x < 0 || y < 0 || row >= size.Rows || col >= size.Cols {
		return
	}
	g.painter.Paint(row, col, Toggle(g.sim, row, col, brush))
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.scale)
	g.overlay.Draw(screen)
	size := g.sim.Size()
	g.hud.Draw(screen, size.Cols*g.scale, size.Rows*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.Cols*g.scale + g.hud.Width(), s.Rows * g.scale
}
