package core

// Grid stores a toroidal 2D grid of cell states in row-major order.
type Grid struct {
	Rows, Cols int
	cells      []CellState
}

// NewGrid allocates a grid with the given dimensions. Non-positive
// dimensions are clamped to 1.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{Rows: rows, Cols: cols, cells: make([]CellState, rows*cols)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []CellState { return g.cells }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Index returns the linear index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// Row returns the row of a linear index.
func (g *Grid) Row(i int) int { return i / g.Cols }

// Col returns the column of a linear index.
func (g *Grid) Col(i int) int { return i % g.Cols }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.Rows + g.Rows) % g.Rows
	col = (col%g.Cols + g.Cols) % g.Cols
	return row, col
}

// WrapIndex returns the linear index of (row, col) after wrapping.
func (g *Grid) WrapIndex(row, col int) int {
	row, col = g.Wrap(row, col)
	return g.Index(row, col)
}

// Get returns the state at (row, col).
func (g *Grid) Get(row, col int) CellState { return g.cells[g.Index(row, col)] }

// Set stores the state at (row, col).
func (g *Grid) Set(row, col int, s CellState) { g.cells[g.Index(row, col)] = s }

// Fill sets every cell to s.
func (g *Grid) Fill(s CellState) {
	for i := range g.cells {
		g.cells[i] = s
	}
}

// Clear fills the grid with Dead.
func (g *Grid) Clear() { g.Fill(Dead) }

// Count returns how many cells hold any of the given states.
func (g *Grid) Count(states ...CellState) int {
	var mask [NumStates]bool
	for _, s := range states {
		if int(s) < NumStates {
			mask[s] = true
		}
	}
	n := 0
	for _, c := range g.cells {
		if int(c) < NumStates && mask[c] {
			n++
		}
	}
	return n
}

// Indices returns the indices holding state s in ascending order.
func (g *Grid) Indices(s CellState) []int {
	var out []int
	for i, c := range g.cells {
		if c == s {
			out = append(out, i)
		}
	}
	return out
}
