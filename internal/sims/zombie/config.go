package zombie

import "graph-life/internal/core"

// Params holds the pursuit and starvation tunables.
type Params struct {
	// StarveRatio is the zombie/alive ratio above which zombies may starve.
	StarveRatio float64
	// StarveChance is the probability a zombie starves once over the ratio.
	StarveChance float64
	// Patience is how many steps a zombie keeps chasing a target that is no
	// longer alive before picking a new one.
	Patience int
}

// Config controls the zombie simulation.
type Config struct {
	core.Dims
	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Dims: core.DefaultDims(),
		Params: Params{
			StarveRatio:  1.5,
			StarveChance: 0.5,
			Patience:     5,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	c.Dims = core.DimsFromMap(cfg)
	core.FloatFromMap(cfg, "starve_ratio", &c.Params.StarveRatio, 0, 1e9)
	core.FloatFromMap(cfg, "starve_chance", &c.Params.StarveChance, 0, 1)
	core.IntFromMap(cfg, "patience", &c.Params.Patience, 0)
	return c
}

// Parameters reports the active configuration.
func (z *Zombies) Parameters() core.ParameterSnapshot {
	p := z.params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		core.GridGroup(z.Size()),
		{
			Name: "Pursuit",
			Params: []core.Parameter{
				core.FloatParam("starve_ratio", "Starve ratio", p.StarveRatio),
				core.FloatParam("starve_chance", "Starve chance", p.StarveChance),
				core.IntParam("patience", "Patience", p.Patience),
			},
		},
	}}
}
