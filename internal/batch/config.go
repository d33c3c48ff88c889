package batch

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/zyedidia/generic/mapset"

	"graph-life/internal/core"
)

// ErrUnknownSim reports a simulation name missing from the registry.
var ErrUnknownSim = errors.New("unknown simulation")

// Config describes a batch of independent runs of one simulation.
type Config struct {
	Sim     string         `toml:"sim"`
	Rows    int            `toml:"rows"`
	Cols    int            `toml:"cols"`
	Steps   int            `toml:"steps"`
	Runs    int            `toml:"runs"`
	Seed    int64          `toml:"seed"`
	Workers int            `toml:"workers"`
	Params  map[string]any `toml:"params"`
}

// DefaultConfig returns a small Life batch.
func DefaultConfig() Config {
	d := core.DefaultDims()
	return Config{
		Sim:     "life",
		Rows:    d.Rows,
		Cols:    d.Cols,
		Steps:   500,
		Runs:    8,
		Seed:    1,
		Workers: runtime.NumCPU(),
	}
}

// LoadConfig decodes a TOML scenario file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load scenario %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load scenario %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// Set applies a key=value override. Grid and run keys update the batch
// fields; anything else becomes a simulation tunable.
func (c *Config) Set(key, value string) error {
	var err error
	switch key {
	case "sim":
		c.Sim = value
	case "rows":
		c.Rows, err = strconv.Atoi(value)
	case "cols":
		c.Cols, err = strconv.Atoi(value)
	case "steps":
		c.Steps, err = strconv.Atoi(value)
	case "runs":
		c.Runs, err = strconv.Atoi(value)
	case "workers":
		c.Workers, err = strconv.Atoi(value)
	case "seed":
		c.Seed, err = strconv.ParseInt(value, 10, 64)
	default:
		if c.Params == nil {
			c.Params = map[string]any{}
		}
		c.Params[key] = value
	}
	if err != nil {
		return fmt.Errorf("override %s=%s: %w", key, value, err)
	}
	return nil
}

// Validate checks the batch against the registry.
func (c Config) Validate() error {
	if _, ok := core.Sims()[c.Sim]; !ok {
		return fmt.Errorf("%w %q (have %v)", ErrUnknownSim, c.Sim, core.Names())
	}
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("grid %dx%d: dimensions must be positive", c.Rows, c.Cols)
	}
	if c.Steps < 0 || c.Runs < 1 {
		return fmt.Errorf("steps=%d runs=%d: need steps >= 0 and runs >= 1", c.Steps, c.Runs)
	}
	reserved := mapset.New[string]()
	reserved.Put("rows")
	reserved.Put("cols")
	for key := range c.Params {
		if reserved.Has(key) {
			return fmt.Errorf("param %q: set grid size with the rows/cols fields", key)
		}
	}
	return nil
}

// SimConfig flattens the batch into the string map simulation factories take.
func (c Config) SimConfig() map[string]string {
	out := make(map[string]string, len(c.Params)+2)
	for k, v := range c.Params {
		out[k] = fmt.Sprint(v)
	}
	out["rows"] = strconv.Itoa(c.Rows)
	out["cols"] = strconv.Itoa(c.Cols)
	return out
}

// ParamKeys lists the tunables in sorted order.
func (c Config) ParamKeys() []string {
	keys := make([]string, 0, len(c.Params))
	for k := range c.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
