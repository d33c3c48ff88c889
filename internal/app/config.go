package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"graph-life/internal/core"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim   string
	Rows  int
	Cols  int
	Scale int
	TPS   int
	Rate  int
	Seed  int64
	HUD   int
	Set   kvList
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	d := core.DefaultDims()
	return &Config{Sim: "life", Rows: d.Rows, Cols: d.Cols, Scale: 6, TPS: 60, Rate: 10, Seed: 42, HUD: 240}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run ("+strings.Join(core.Names(), ", ")+")")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the shared random source")
	fs.IntVar(&c.HUD, "hud", c.HUD, "HUD panel width in pixels (0 hides it)")
	fs.Var(&c.Set, "set", "simulation parameter in key=value form (repeatable)")
}

// SimConfig builds the factory configuration map.
func (c *Config) SimConfig() (map[string]string, error) {
	out := map[string]string{}
	for _, kv := range c.Set {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("parameter %q is not key=value", kv)
		}
		out[key] = value
	}
	out["rows"] = strconv.Itoa(c.Rows)
	out["cols"] = strconv.Itoa(c.Cols)
	return out, nil
}

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Brushes returns the states placed by the left and right mouse buttons.
func Brushes(sim string) (left, right core.CellState) {
	switch sim {
	case "zombie":
		return core.Alive, core.Zombie
	case "amoeba":
		return core.Food, core.Nucleus
	default:
		return core.Alive, core.Alive
	}
}

// Toggle flips the cell at (row, col) between Dead and brush and returns the
// new state.
func Toggle(sim core.Sim, row, col int, brush core.CellState) core.CellState {
	next := brush
	if sim.Get(row, col) == brush {
		next = core.Dead
	}
	sim.Set(row, col, next)
	return next
}
