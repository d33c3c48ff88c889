package amoeba

import "graph-life/internal/core"

// Params holds the growth, foraging and population tunables.
type Params struct {
	StageOne   int // growth above which the body widens to radius 2
	StageTwo   int // growth above which the body widens to radius 3
	SplitStage int // growth above which a nucleus divides

	EatRadius   int // base eating distance; widened by one per stage
	FoodDrift   int // food drifts with probability 1/FoodDrift
	SpawnFactor int // lone cells spawn food with probability 1/(rows*cols*SpawnFactor); 0 disables

	CapDivisor    int // newborns die when nuclei exceed rows*cols/CapDivisor
	FoodlessLimit int // newborns die after this many consecutive food-less steps

	Nuclei int
	Food   int
}

// Config controls the amoeba simulation.
type Config struct {
	core.Dims
	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Dims: core.DefaultDims(),
		Params: Params{
			StageOne:      10,
			StageTwo:      20,
			SplitStage:    30,
			EatRadius:     2,
			FoodDrift:     4,
			SpawnFactor:   6,
			CapDivisor:    50,
			FoodlessLimit: 50,
			Nuclei:        3,
			Food:          1,
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
	p := &c.Params
	core.IntFromMap(cfg, "stage_one", &p.StageOne, 0)
	core.IntFromMap(cfg, "stage_two", &p.StageTwo, 0)
	core.IntFromMap(cfg, "split_stage", &p.SplitStage, 1)
	core.IntFromMap(cfg, "eat_radius", &p.EatRadius, 0)
	core.IntFromMap(cfg, "food_drift", &p.FoodDrift, 1)
	core.IntFromMap(cfg, "spawn_factor", &p.SpawnFactor, 0)
	core.IntFromMap(cfg, "cap_divisor", &p.CapDivisor, 1)
	core.IntFromMap(cfg, "foodless_limit", &p.FoodlessLimit, 0)
	core.IntFromMap(cfg, "nuclei", &p.Nuclei, 0)
	core.IntFromMap(cfg, "food", &p.Food, 0)
	c.Params = c.Params.normalized()
	return c
}

// normalized clamps values that would otherwise divide by zero or invert the
// growth stages.
func (p Params) normalized() Params {
	if p.StageTwo < p.StageOne {
		p.StageTwo = p.StageOne
	}
	if p.FoodDrift < 1 {
		p.FoodDrift = 1
	}
	if p.CapDivisor < 1 {
		p.CapDivisor = 1
	}
	return p
}

// Parameters reports the active configuration.
func (a *Amoebae) Parameters() core.ParameterSnapshot {
	p := a.params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		core.GridGroup(a.Size()),
		{
			Name: "Growth",
			Params: []core.Parameter{
				core.IntParam("stage_one", "Stage one", p.StageOne),
				core.IntParam("stage_two", "Stage two", p.StageTwo),
				core.IntParam("split_stage", "Split stage", p.SplitStage),
				core.IntParam("eat_radius", "Eat radius", p.EatRadius),
			},
		},
		{
			Name: "Food",
			Params: []core.Parameter{
				core.IntParam("food_drift", "Drift 1 in", p.FoodDrift),
				core.IntParam("spawn_factor", "Spawn factor", p.SpawnFactor),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				core.IntParam("cap_divisor", "Cap divisor", p.CapDivisor),
				core.IntParam("foodless_limit", "Food-less limit", p.FoodlessLimit),
				core.IntParam("foodless", "Food-less steps", a.foodless),
			},
		},
	}}
}
