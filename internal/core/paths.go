package core

import "github.com/zyedidia/generic/queue"

// Paths holds the result of a breadth-first search from a single source.
type Paths struct {
	source int
	dist   []int
	edgeTo []int
	order  []int
}

// BFS runs an unweighted breadth-first search over g from source. Ties are
// broken by discovery order, which follows Graph.Neighbors.
func BFS(g *Graph, source int) *Paths {
	n := g.Len()
	p := &Paths{
		source: source,
		dist:   make([]int, n),
		edgeTo: make([]int, n),
		order:  make([]int, 0, n),
	}
	for i := range p.dist {
		p.dist[i] = -1
		p.edgeTo[i] = -1
	}
	p.dist[source] = 0
	p.order = append(p.order, source)

	q := queue.New[int]()
	q.Enqueue(source)
	for !q.Empty() {
		v := q.Dequeue()
		for _, w := range g.Neighbors(v) {
			if p.dist[w] >= 0 {
				continue
			}
			p.dist[w] = p.dist[v] + 1
			p.edgeTo[w] = v
			p.order = append(p.order, w)
			q.Enqueue(w)
		}
	}
	return p
}

// Source returns the vertex the search started from.
func (p *Paths) Source() int { return p.source }

// DistTo returns the hop count to v, or false when v is unreachable.
func (p *Paths) DistTo(v int) (int, bool) {
	d := p.dist[v]
	return d, d >= 0
}

// HasPathTo reports whether v is reachable from the source.
func (p *Paths) HasPathTo(v int) bool { return p.dist[v] >= 0 }

// PathTo returns the vertices from the source to v inclusive, or nil when v
// is unreachable.
func (p *Paths) PathTo(v int) []int {
	if !p.HasPathTo(v) {
		return nil
	}
	path := make([]int, p.dist[v]+1)
	for i, x := len(path)-1, v; i >= 0; i-- {
		path[i] = x
		x = p.edgeTo[x]
	}
	return path
}

// NextStep returns the vertex adjacent to the source on the shortest path to
// v. It returns the source itself when v is the source.
func (p *Paths) NextStep(v int) (int, bool) {
	if !p.HasPathTo(v) {
		return p.source, false
	}
	if v == p.source {
		return v, true
	}
	x := v
	for p.edgeTo[x] != p.source {
		x = p.edgeTo[x]
	}
	return x, true
}

// Order returns every reachable vertex in discovery order, source first.
func (p *Paths) Order() []int { return p.order }

// Nearest returns the first discovered vertex other than the source that
// satisfies match.
func (p *Paths) Nearest(match func(v int) bool) (int, bool) {
	for _, v := range p.order[1:] {
		if match(v) {
			return v, true
		}
	}
	return -1, false
}
