package core

import (
	"math/rand/v2"
	"sort"
)

// CellState is the value held by a single grid cell.
type CellState uint8

const (
	Dead CellState = iota
	Alive
	Zombie
	Food
	Body
	Nucleus
)

// NumStates is the number of defined cell states.
const NumStates = int(Nucleus) + 1

var stateNames = [...]string{"dead", "alive", "zombie", "food", "body", "nucleus"}

func (s CellState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Size describes the dimensions of a simulation grid.
type Size struct {
	Rows int
	Cols int
}

// Callback receives a cell coordinate together with its state.
type Callback func(row, col int, state CellState)

// Sim defines the contract every rule variant implements. Instances are not
// safe for concurrent use; callers serialize Step, Resize and the mutators.
type Sim interface {
	Name() string
	Description() string
	Size() Size
	Resize(rows, cols int)
	Clear()
	Randomize()
	Get(row, col int) CellState
	Set(row, col int, state CellState)
	Step(fn Callback) bool
	ForAllLife(fn Callback)
	PopulationCount() int
}

// Factory constructs a Sim from an optional configuration map. A nil rng
// selects the process-wide source.
type Factory func(cfg map[string]string, rng *rand.Rand) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
