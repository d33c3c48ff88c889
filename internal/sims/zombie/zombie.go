package zombie

import (
	"math/rand/v2"

	"graph-life/internal/core"
	"graph-life/internal/sims/life"
)

// pursuit is the per-zombie chase state: the index being hunted (-1 for
// none) and how many steps it has been chased while dead.
type pursuit struct {
	target int
	age    int
}

var idle = pursuit{target: -1}

// Zombies runs B3/S23 on the living while zombies infect their neighbours
// and hunt the nearest live cell by breadth-first search.
type Zombies struct {
	core.Board
	params Params

	chase []pursuit
	count int
}

// New returns a zombie simulation with default tunables.
func New(rows, cols int, rng *rand.Rand) *Zombies {
	cfg := DefaultConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	return NewWithConfig(cfg, rng)
}

// NewWithConfig returns a zombie simulation configured from cfg.
func NewWithConfig(cfg Config, rng *rand.Rand) *Zombies {
	z := &Zombies{Board: core.Board{Rand: core.OrShared(rng)}, params: cfg.Params}
	z.Resize(cfg.Rows, cfg.Cols)
	return z
}

// Name returns the simulation identifier.
func (z *Zombies) Name() string { return "zombie" }

// Description summarizes the rule.
func (z *Zombies) Description() string {
	return "Zombies vs the Game of Life.\nZombies use breadth-first search to hunt all life."
}

// Resize reallocates the grid, adjacency and chase state.
func (z *Zombies) Resize(rows, cols int) {
	z.Reshape(rows, cols)
	z.chase = make([]pursuit, z.Grid.Len())
	z.Clear()
}

// Clear kills every cell and forgets all pursuits.
func (z *Zombies) Clear() {
	z.Grid.Clear()
	for i := range z.chase {
		z.chase[i] = idle
	}
	z.count = 0
}

// Randomize fills the grid with live and dead cells and places exactly one
// zombie.
func (z *Zombies) Randomize() {
	cells := z.Grid.Cells()
	core.FillBinary(z.Rand, cells)
	for i := range z.chase {
		z.chase[i] = idle
	}
	cells[z.Rand.IntN(len(cells))] = core.Zombie
	z.count = 1
}

// ZombieCount returns the zombie counter maintained by Step.
func (z *Zombies) ZombieCount() int { return z.count }

// Target returns the index the zombie at (row, col) is hunting, or false.
func (z *Zombies) Target(row, col int) (int, bool) {
	p := z.chase[z.Grid.Index(row, col)]
	return p.target, p.target >= 0
}

// PursuitLinks lists (zombie index, target index) pairs for every zombie
// with a target.
func (z *Zombies) PursuitLinks() [][2]int {
	var links [][2]int
	for i, s := range z.Grid.Cells() {
		if s == core.Zombie && z.chase[i].target >= 0 {
			links = append(links, [2]int{i, z.chase[i].target})
		}
	}
	return links
}

// Step advances one tick against the pre-step grid and reports whether any
// cell changed.
func (z *Zombies) Step(fn core.Callback) bool {
	cells := z.Grid.Cells()
	alive := z.Grid.Count(core.Alive)
	zombies := z.count
	q := core.NewPending()

	for i, s := range cells {
		switch {
		case s == core.Zombie:
			if z.starves(zombies, alive) {
				q.Push(i, core.Dead)
				z.chase[i] = idle
				zombies--
				continue
			}
			z.hunt(q, i)
		case s == core.Alive && z.Graph.AnyNeighbor(cells, i, core.Zombie):
			q.Push(i, core.Zombie)
			z.chase[i] = idle
		default:
			if next, ok := life.Next(s, z.Graph.CountNeighbors(cells, i, core.Alive)); ok {
				q.Push(i, next)
			}
		}
	}

	return z.apply(q, fn)
}

// starves rolls the population-pressure policy; with nothing left alive a
// zombie always starves.
func (z *Zombies) starves(zombies, alive int) bool {
	over := zombies > 0 && (alive == 0 || float64(zombies)/float64(alive) > z.params.StarveRatio)
	if over && z.Rand.Float64() < z.params.StarveChance {
		return true
	}
	return alive == 0
}

func (z *Zombies) hunt(q *core.Pending, cur int) {
	cells := z.Grid.Cells()
	paths := core.BFS(z.Graph, cur)
	p := z.chase[cur]

	if p.target < 0 || p.age > z.params.Patience {
		target, ok := paths.Nearest(func(v int) bool { return cells[v] == core.Alive })
		if !ok {
			q.Push(cur, core.Zombie)
			return
		}
		p = pursuit{target: target}
	} else if cells[p.target] == core.Dead {
		p.age++
	}

	next, ok := paths.NextStep(p.target)
	if !ok || cells[next] != core.Dead {
		next = cur
		var open []int
		for _, nb := range z.Graph.Neighbors(cur) {
			if cells[nb] == core.Dead {
				open = append(open, nb)
			}
		}
		if len(open) > 0 {
			next = core.Pick(z.Rand, open)
		}
	}

	if next == cur {
		z.chase[cur] = p
		q.Push(cur, core.Zombie)
		return
	}
	q.Push(cur, core.Dead)
	q.Push(next, core.Zombie)
	z.chase[next] = p
	z.chase[cur] = idle
}

// apply drains q into the grid. The zombie counter becomes the number of
// written cells that end up holding a zombie; every zombie of the previous
// tick writes its own cell, so no zombie escapes the count.
func (z *Zombies) apply(q *core.Pending, fn core.Callback) bool {
	cells := z.Grid.Cells()
	written := make([]bool, len(cells))
	count := 0
	changed := false
	q.Drain(func(u core.Update) {
		if written[u.Index] && cells[u.Index] == core.Zombie {
			count--
		}
		written[u.Index] = true
		if cells[u.Index] != u.State {
			changed = true
			if fn != nil {
				fn(z.Grid.Row(u.Index), z.Grid.Col(u.Index), u.State)
			}
		}
		cells[u.Index] = u.State
		if u.State == core.Zombie {
			count++
		}
	})
	z.count = count
	for i, w := range written {
		if w && cells[i] != core.Zombie {
			z.chase[i] = idle
		}
	}
	return changed
}

// ForAllLife invokes fn for every Alive or Zombie cell.
func (z *Zombies) ForAllLife(fn core.Callback) {
	z.Each(fn, isLive)
}

// PopulationCount returns the number of Alive and Zombie cells.
func (z *Zombies) PopulationCount() int { return z.Grid.Count(core.Alive, core.Zombie) }

func isLive(s core.CellState) bool { return s == core.Alive || s == core.Zombie }

func init() {
	core.Register("zombie", func(cfg map[string]string, rng *rand.Rand) core.Sim {
		return NewWithConfig(FromMap(cfg), rng)
	})
}
