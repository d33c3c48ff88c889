// Package batch runs many seeded copies of a simulation without a window and
// reports population statistics.
package batch

import (
	"context"
	"io"
	"log"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"graph-life/internal/core"
)

// Result summarizes a single run.
type Result struct {
	Run        int
	Seed       int64
	Steps      int  // steps executed
	Initial    int  // population after Randomize
	Final      int  // population after the last step
	Peak       int  // highest population seen
	PeakStep   int  // step at which Peak was first reached
	Stalled    bool // Step reported no further change
	Extinct    bool // population reached zero
	Generation int  // last generation that changed the grid
}

// Summary aggregates a batch.
type Summary struct {
	Runs      int
	MeanFinal float64
	StdFinal  float64
	MinFinal  int
	MaxFinal  int
	MaxPeak   int
	Extinct   int
	Stalled   int
}

// Runner executes batches. Logger receives one line per finished run and
// defaults to discarding output.
type Runner struct {
	Logger *log.Logger
}

// Run executes cfg.Runs independent runs with at most cfg.Workers in
// flight. Run i uses seed cfg.Seed+i, so results depend only on the config.
func (r Runner) Run(ctx context.Context, cfg Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := r.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	factory := core.Sims()[cfg.Sim]
	simCfg := cfg.SimConfig()

	results := make([]Result, cfg.Runs)
	g, ctx := errgroup.WithContext(ctx)
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)
	for i := 0; i < cfg.Runs; i++ {
		i := i
		g.Go(func() error {
			seed := cfg.Seed + int64(i)
			sim := factory(simCfg, core.NewRNG(seed).Source())
			res, err := simulate(ctx, sim, cfg.Steps)
			if err != nil {
				return err
			}
			res.Run, res.Seed = i, seed
			results[i] = res
			logger.Printf("%s run %d seed %d: final=%d peak=%d@%d steps=%d extinct=%v stalled=%v",
				cfg.Sim, i, seed, res.Final, res.Peak, res.PeakStep, res.Steps, res.Extinct, res.Stalled)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// simulate randomizes sim and steps it until steps are exhausted, the grid
// stops changing or the population dies out.
func simulate(ctx context.Context, sim core.Sim, steps int) (Result, error) {
	sim.Randomize()
	pop := sim.PopulationCount()
	res := Result{Initial: pop, Final: pop, Peak: pop}
	for step := 1; step <= steps; step++ {
		if step%64 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		changed := sim.Step(nil)
		res.Steps = step
		pop = sim.PopulationCount()
		res.Final = pop
		if pop > res.Peak {
			res.Peak, res.PeakStep = pop, step
		}
		if changed {
			res.Generation = step
		}
		if pop == 0 {
			res.Extinct = true
			break
		}
		if !changed {
			res.Stalled = true
			break
		}
	}
	return res, nil
}

// Summarize aggregates per-run results.
func Summarize(results []Result) Summary {
	s := Summary{Runs: len(results)}
	if len(results) == 0 {
		return s
	}
	finals := make([]int, len(results))
	sum := 0
	for i, r := range results {
		finals[i] = r.Final
		sum += r.Final
		if r.Peak > s.MaxPeak {
			s.MaxPeak = r.Peak
		}
		if r.Extinct {
			s.Extinct++
		}
		if r.Stalled {
			s.Stalled++
		}
	}
	sort.Ints(finals)
	s.MinFinal, s.MaxFinal = finals[0], finals[len(finals)-1]
	s.MeanFinal = float64(sum) / float64(len(results))
	var sq float64
	for _, f := range finals {
		d := float64(f) - s.MeanFinal
		sq += d * d
	}
	s.StdFinal = math.Sqrt(sq / float64(len(results)))
	return s
}
