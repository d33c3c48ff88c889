package amoeba

import (
	"math/rand/v2"

	"github.com/zyedidia/generic/mapset"

	"graph-life/internal/core"
)

// cellInfo is the per-nucleus growth stage and hunger (steps without food).
type cellInfo struct {
	growth int
	hunger int
}

var fresh = cellInfo{growth: 1, hunger: 1}

// Amoebae simulates nuclei that grow a body, forage for food by
// breadth-first search and divide once large enough.
//
// A step works on the grid in place: nucleus actions paint their body and new
// position straight into the cells so later cells in the same pass see them,
// and every write is also queued. The queue is then replayed over a cleared
// grid.
type Amoebae struct {
	core.Board
	params Params

	info     []cellInfo
	foodless int

	pending *core.Pending
	moved   mapset.Set[int]
}

// New returns an amoeba simulation with default tunables.
func New(rows, cols int, rng *rand.Rand) *Amoebae {
	cfg := DefaultConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	return NewWithConfig(cfg, rng)
}

// NewWithConfig returns an amoeba simulation configured from cfg.
func NewWithConfig(cfg Config, rng *rand.Rand) *Amoebae {
	a := &Amoebae{Board: core.Board{Rand: core.OrShared(rng)}, params: cfg.Params.normalized()}
	a.Resize(cfg.Rows, cfg.Cols)
	return a
}

// Name returns the simulation identifier.
func (a *Amoebae) Name() string { return "amoeba" }

// Description summarizes the rule.
func (a *Amoebae) Description() string {
	return "Amoeba simulation.\nIncludes growth, mitosis, and hunger-based population control."
}

// Resize reallocates the grid, adjacency and nucleus state.
func (a *Amoebae) Resize(rows, cols int) {
	a.Reshape(rows, cols)
	a.info = make([]cellInfo, a.Grid.Len())
	a.Clear()
}

// Clear empties the grid and resets every nucleus record.
func (a *Amoebae) Clear() {
	a.Grid.Clear()
	for i := range a.info {
		a.info[i] = fresh
	}
	a.foodless = 0
}

// Randomize clears the grid, then seeds the configured number of nuclei
// (three by default) with their bodies and food cells (one by default).
func (a *Amoebae) Randomize() {
	a.Clear()
	cells := a.Grid.Cells()
	for k := 0; k < a.params.Nuclei; k++ {
		i, ok := a.randomIndex(func(s core.CellState) bool { return s != core.Nucleus })
		if !ok {
			break
		}
		cells[i] = core.Nucleus
		a.grow(i)
	}
	for k := 0; k < a.params.Food; k++ {
		i, ok := a.randomIndex(func(s core.CellState) bool { return s != core.Nucleus && s != core.Food })
		if !ok {
			break
		}
		cells[i] = core.Food
	}
}

func (a *Amoebae) randomIndex(keep func(core.CellState) bool) (int, bool) {
	var candidates []int
	for i, s := range a.Grid.Cells() {
		if keep(s) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return -1, false
	}
	return core.Pick(a.Rand, candidates), true
}

// GrowthStage returns the growth counter of the cell at (row, col).
func (a *Amoebae) GrowthStage(row, col int) int { return a.info[a.Grid.Index(row, col)].growth }

// Hunger returns the steps without food of the cell at (row, col).
func (a *Amoebae) Hunger(row, col int) int { return a.info[a.Grid.Index(row, col)].hunger }

// FoodlessSteps returns how many consecutive steps began without food.
func (a *Amoebae) FoodlessSteps() int { return a.foodless }

// Step advances one tick. The callback sees each queued write that changes
// the cleared grid, then every cell once more as a full frame. It reports
// whether any nucleus survives.
func (a *Amoebae) Step(fn core.Callback) bool {
	cells := a.Grid.Cells()
	area := len(cells)
	foods := a.Grid.Indices(core.Food)
	nuclei := a.Grid.Count(core.Nucleus)
	if len(foods) == 0 {
		a.foodless++
	} else {
		a.foodless = 0
	}

	a.pending = core.NewPending()
	a.moved = mapset.New[int]()
	defer func() { a.pending = nil }()

	skipped := 0
	for cur := 0; cur < area; cur++ {
		if a.moved.Has(cur) {
			continue
		}
		switch cells[cur] {
		case core.Food:
			a.drift(cur)
		case core.Nucleus:
			nuclei = a.act(cur, foods, nuclei)
		case core.Body:
			skipped++
		default:
			// Runs of body cells use up the window; once exhausted the rest
			// of the pass skips the spawn check.
			if skipped >= area {
				skipped++
				continue
			}
			skipped = 0
			if a.params.SpawnFactor > 0 && a.alone(cur) && a.Rand.IntN(area*a.params.SpawnFactor) == 0 {
				a.pending.Push(cur, core.Food)
			}
		}
	}

	a.Grid.Clear()
	a.pending.Apply(a.Grid, fn)
	for i, s := range cells {
		if fn != nil {
			fn(a.Grid.Row(i), a.Grid.Col(i), s)
		}
		if s != core.Nucleus {
			a.info[i] = fresh
		}
	}
	return a.PopulationCount() > 0
}

// paint writes s into the working grid and queues it.
func (a *Amoebae) paint(i int, s core.CellState) {
	a.Grid.Cells()[i] = s
	if a.pending != nil {
		a.pending.Push(i, s)
	}
}

func (a *Amoebae) fillBody(i int) {
	if a.Grid.Cells()[i] != core.Nucleus {
		a.paint(i, core.Body)
	}
}

// open lists the neighbours of i not held by a nucleus, or i itself when
// every neighbour is taken.
func (a *Amoebae) open(i int) []int {
	cells := a.Grid.Cells()
	var out []int
	for _, nb := range a.Graph.Neighbors(i) {
		if cells[nb] != core.Nucleus {
			out = append(out, nb)
		}
	}
	if len(out) == 0 {
		out = append(out, i)
	}
	return out
}

func (a *Amoebae) alone(i int) bool {
	cells := a.Grid.Cells()
	for _, nb := range a.Graph.Neighbors(i) {
		if cells[nb] != core.Dead {
			return false
		}
	}
	return true
}

func (a *Amoebae) drift(cur int) {
	if a.Rand.IntN(a.params.FoodDrift) == 0 {
		a.pending.Push(core.Pick(a.Rand, a.open(cur)), core.Food)
		return
	}
	a.pending.Push(cur, core.Food)
}

// act runs one nucleus and returns the updated nucleus count.
func (a *Amoebae) act(cur int, foods []int, nuclei int) int {
	info := a.info[cur]
	if len(foods) > 0 {
		target, dist := nearest(core.BFS(a.Graph, cur), foods)
		switch {
		case info.growth > a.params.SplitStage:
			a.divide(cur)
		case dist <= a.params.eatRadius(info.growth):
			a.eat(cur, target)
		default:
			a.advance(cur, target, dist)
		}
		return nuclei
	}

	if info.growth == 1 && (nuclei > len(a.info)/a.params.CapDivisor || a.foodless > a.params.FoodlessLimit) {
		a.paint(cur, core.Dead)
		a.info[cur] = fresh
		a.foodless = 0
		return nuclei - 1
	}
	a.move(cur, core.Pick(a.Rand, a.open(cur)))
	return nuclei
}

// nearest returns the closest food by BFS distance; ties keep the lowest
// index.
func nearest(paths *core.Paths, foods []int) (int, int) {
	target := foods[0]
	best, _ := paths.DistTo(target)
	for _, f := range foods[1:] {
		if d, ok := paths.DistTo(f); ok && d < best {
			target, best = f, d
		}
	}
	return target, best
}

// divide keeps the nucleus in place and spawns a twin on a free neighbour;
// both restart at the first growth stage.
func (a *Amoebae) divide(cur int) {
	twin := core.Pick(a.Rand, a.open(cur))
	a.pending.Push(cur, core.Nucleus)
	a.grow(cur)
	a.info[cur] = fresh
	if twin == cur {
		return
	}
	a.paint(twin, core.Nucleus)
	a.info[twin] = fresh
	a.grow(twin)
	a.moved.Put(twin)
}

func (a *Amoebae) eat(cur, target int) {
	a.info[cur].growth++
	a.info[cur].hunger = 1
	if a.Grid.Cells()[target] != core.Nucleus {
		a.paint(target, core.Dead)
	}
	a.pending.Push(cur, core.Nucleus)
	a.grow(cur)
}

// advance steps toward target. The first free neighbour that strictly
// shortens the distance is the best move and the previous best the runner-up;
// the runner-up wins when the best square is crowded by other nuclei.
func (a *Amoebae) advance(cur, target, dist int) {
	a.info[cur].hunger++
	fromTarget := core.BFS(a.Graph, target)
	best, alt := cur, cur
	for _, nb := range a.open(cur) {
		if d, ok := fromTarget.DistTo(nb); ok && d < dist {
			dist = d
			if best != cur {
				alt = best
			}
			best = nb
		}
	}
	if len(a.open(best)) >= len(a.open(alt))-1 {
		a.move(cur, best)
		return
	}
	a.move(cur, alt)
}

// move relocates the nucleus at cur to next, carrying its record, and grows
// the body around the new position. next may equal cur.
func (a *Amoebae) move(cur, next int) {
	info := a.info[cur]
	a.paint(cur, core.Body)
	a.info[cur] = fresh
	a.paint(next, core.Nucleus)
	a.info[next] = info
	a.grow(next)
	a.moved.Put(next)
}

// ForAllLife invokes fn for every cell; dead cells are part of the picture.
func (a *Amoebae) ForAllLife(fn core.Callback) {
	a.Each(fn, nil)
}

// PopulationCount returns the number of nuclei.
func (a *Amoebae) PopulationCount() int { return a.Grid.Count(core.Nucleus) }

func init() {
	core.Register("amoeba", func(cfg map[string]string, rng *rand.Rand) core.Sim {
		return NewWithConfig(FromMap(cfg), rng)
	})
}
