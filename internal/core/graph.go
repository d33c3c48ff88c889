package core

// MaxDegree is the size of a Moore neighbourhood.
const MaxDegree = 8

// Graph is the undirected 8-neighbour adjacency of a toroidal grid. The
// lists live in one arena of MaxDegree slots per cell.
type Graph struct {
	rows, cols int
	adj        []int
	deg        []uint8
}

// NewTorusGraph builds the adjacency for a rows x cols torus. Neighbours are
// enumerated rows (r-1, r, r+1) outer and cols (c-1, c, c+1) inner; on grids
// with a dimension of 1 or 2 the wrapped duplicates are dropped.
func NewTorusGraph(rows, cols int) *Graph {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	n := rows * cols
	g := &Graph{rows: rows, cols: cols, adj: make([]int, n*MaxDegree), deg: make([]uint8, n)}
	for i := 0; i < n; i++ {
		row, col := i/cols, i%cols
		rs := [3]int{(row - 1 + rows) % rows, row, (row + 1) % rows}
		cs := [3]int{(col - 1 + cols) % cols, col, (col + 1) % cols}
		for _, r := range rs {
			for _, c := range cs {
				if r == row && c == col {
					continue
				}
				nb := r*cols + c
				if !g.HasEdge(i, nb) {
					g.adj[i*MaxDegree+int(g.deg[i])] = nb
					g.deg[i]++
				}
			}
		}
	}
	return g
}

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.deg) }

// Degree returns how many distinct neighbours vertex i has.
func (g *Graph) Degree(i int) int { return int(g.deg[i]) }

// Neighbors returns the neighbours of i in enumeration order. The slice
// aliases the arena and must not be modified.
func (g *Graph) Neighbors(i int) []int {
	base := i * MaxDegree
	return g.adj[base : base+int(g.deg[i])]
}

// HasEdge reports whether b is already in a's adjacency list.
func (g *Graph) HasEdge(a, b int) bool {
	for _, n := range g.Neighbors(a) {
		if n == b {
			return true
		}
	}
	return false
}

// CountNeighbors counts the neighbours of i whose state satisfies match.
func (g *Graph) CountNeighbors(cells []CellState, i int, match CellState) int {
	n := 0
	for _, nb := range g.Neighbors(i) {
		if cells[nb] == match {
			n++
		}
	}
	return n
}

// AnyNeighbor reports whether some neighbour of i holds state s.
func (g *Graph) AnyNeighbor(cells []CellState, i int, s CellState) bool {
	for _, nb := range g.Neighbors(i) {
		if cells[nb] == s {
			return true
		}
	}
	return false
}
