package life

import (
	"math/rand/v2"

	"graph-life/internal/core"
)

// Life implements Conway's Game of Life (B3/S23) on a toroidal adjacency
// graph.
type Life struct {
	core.Board
}

// New returns a Life simulation with the provided dimensions. A nil rng uses
// the process-wide source.
func New(rows, cols int, rng *rand.Rand) *Life {
	return &Life{Board: core.NewBoard(rows, cols, rng)}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Description summarizes the rule.
func (l *Life) Description() string {
	return "Conway's Game of Life.\nEach cell is a vertex and each neighbour connection an edge."
}

// Resize reallocates the grid and adjacency and leaves every cell Dead.
func (l *Life) Resize(rows, cols int) { l.Reshape(rows, cols) }

// Clear kills every cell.
func (l *Life) Clear() { l.Grid.Clear() }

// Randomize sets each cell Alive or Dead with equal probability.
func (l *Life) Randomize() { core.FillBinary(l.Rand, l.Grid.Cells()) }

// Step advances the simulation by one generation and reports whether any
// cell changed.
func (l *Life) Step(fn core.Callback) bool {
	q := core.NewPending()
	cells := l.Grid.Cells()
	for i, s := range cells {
		if next, ok := Next(s, l.Graph.CountNeighbors(cells, i, core.Alive)); ok {
			q.Push(i, next)
		}
	}
	return q.Apply(l.Grid, fn)
}

// Next applies B3/S23 to a Dead or Alive cell with n Alive neighbours. The
// boolean is false when the cell keeps its state.
func Next(s core.CellState, n int) (core.CellState, bool) {
	switch s {
	case core.Alive:
		if n < 2 || n > 3 {
			return core.Dead, true
		}
	case core.Dead:
		if n == 3 {
			return core.Alive, true
		}
	}
	return s, false
}

// ForAllLife invokes fn for every Alive cell.
func (l *Life) ForAllLife(fn core.Callback) {
	l.Each(fn, func(s core.CellState) bool { return s == core.Alive })
}

// PopulationCount returns the number of Alive cells.
func (l *Life) PopulationCount() int { return l.Grid.Count(core.Alive) }

// Parameters reports the grid dimensions.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{core.GridGroup(l.Size())}}
}

func init() {
	core.Register("life", func(cfg map[string]string, rng *rand.Rand) core.Sim {
		d := core.DimsFromMap(cfg)
		return New(d.Rows, d.Cols, rng)
	})
}
