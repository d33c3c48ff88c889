package core

import "math/rand/v2"

// Board bundles the grid, its adjacency graph and the random source that
// every rule variant works on. Sims embed it for Size, Get and Set.
//
// A zero Board has no grid; calling Get or Set before Reshape panics.
type Board struct {
	Grid  *Grid
	Graph *Graph
	Rand  *rand.Rand
}

// NewBoard returns a board of the given size using rng, or the process-wide
// source when rng is nil.
func NewBoard(rows, cols int, rng *rand.Rand) Board {
	b := Board{Rand: OrShared(rng)}
	b.Reshape(rows, cols)
	return b
}

// Reshape replaces the grid and graph with fresh ones of the given size. All
// cells start Dead.
func (b *Board) Reshape(rows, cols int) {
	grid := NewGrid(rows, cols)
	b.Graph = NewTorusGraph(grid.Rows, grid.Cols)
	b.Grid = grid
}

// Size returns the grid dimensions.
func (b *Board) Size() Size { return Size{Rows: b.Grid.Rows, Cols: b.Grid.Cols} }

// Get returns the state at (row, col).
func (b *Board) Get(row, col int) CellState { return b.Grid.Get(row, col) }

// Set writes the state at (row, col) without any bookkeeping.
func (b *Board) Set(row, col int, s CellState) { b.Grid.Set(row, col, s) }

// Each invokes fn for every cell whose state satisfies keep, in index order.
func (b *Board) Each(fn Callback, keep func(CellState) bool) {
	if fn == nil {
		return
	}
	g := b.Grid
	for i, s := range g.Cells() {
		if keep == nil || keep(s) {
			fn(g.Row(i), g.Col(i), s)
		}
	}
}
