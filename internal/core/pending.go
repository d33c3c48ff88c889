package core

import "github.com/zyedidia/generic/queue"

// Update is a single queued cell write.
type Update struct {
	Index int
	State CellState
}

// Pending collects the writes computed during one step. Writes are applied
// in enqueue order, so a later write to the same cell wins.
type Pending struct {
	q *queue.Queue[Update]
	n int
}

// NewPending returns an empty queue.
func NewPending() *Pending {
	return &Pending{q: queue.New[Update]()}
}

// Push enqueues a write of s to index i.
func (p *Pending) Push(i int, s CellState) {
	p.q.Enqueue(Update{Index: i, State: s})
	p.n++
}

// Len returns the number of queued writes.
func (p *Pending) Len() int { return p.n }

// Drain dequeues every write in order, handing each to fn.
func (p *Pending) Drain(fn func(u Update)) {
	for !p.q.Empty() {
		u := p.q.Dequeue()
		p.n--
		fn(u)
	}
}

// Apply drains the queue into g, invoking cb for each write whose state
// differs from the value held immediately before it. It reports whether any
// cell changed.
func (p *Pending) Apply(g *Grid, cb Callback) bool {
	changed := false
	cells := g.Cells()
	p.Drain(func(u Update) {
		if cells[u.Index] != u.State {
			changed = true
			if cb != nil {
				cb(g.Row(u.Index), g.Col(u.Index), u.State)
			}
		}
		cells[u.Index] = u.State
	})
	return changed
}
