package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"graph-life/internal/batch"
	"graph-life/internal/core"
	_ "graph-life/internal/sims/amoeba"
	_ "graph-life/internal/sims/life"
	_ "graph-life/internal/sims/zombie"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	def := batch.DefaultConfig()
	scenario := flag.String("config", "", "TOML scenario file; flags given explicitly override it")
	sim := flag.String("sim", def.Sim, "simulation to run ("+strings.Join(core.Names(), ", ")+")")
	rows := flag.Int("rows", def.Rows, "grid rows")
	cols := flag.Int("cols", def.Cols, "grid columns")
	steps := flag.Int("steps", def.Steps, "steps per run")
	runs := flag.Int("runs", def.Runs, "number of seeded runs")
	seed := flag.Int64("seed", def.Seed, "seed of the first run; run i uses seed+i")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	verbose := flag.Bool("v", false, "log every finished run")
	var overrides kvList
	flag.Var(&overrides, "set", "simulation parameter in key=value form (repeatable)")
	flag.Parse()

	cfg := def
	if *scenario != "" {
		loaded, err := batch.LoadConfig(*scenario)
		if err != nil {
			log.Fatalf("life-sweep: %v", err)
		}
		cfg = loaded
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sim":
			cfg.Sim = *sim
		case "rows":
			cfg.Rows = *rows
		case "cols":
			cfg.Cols = *cols
		case "steps":
			cfg.Steps = *steps
		case "runs":
			cfg.Runs = *runs
		case "seed":
			cfg.Seed = *seed
		case "workers":
			cfg.Workers = *workers
		}
	})
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			log.Fatalf("life-sweep: override %q is not key=value", kv)
		}
		if err := cfg.Set(key, value); err != nil {
			log.Fatalf("life-sweep: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := batch.Runner{}
	if *verbose {
		runner.Logger = log.New(os.Stderr, "life-sweep: ", log.Ltime)
	}

	fmt.Printf("Running %d x %s on %dx%d for %d steps (%d workers, seed %d)\n",
		cfg.Runs, cfg.Sim, cfg.Rows, cfg.Cols, cfg.Steps, cfg.Workers, cfg.Seed)
	for _, k := range cfg.ParamKeys() {
		fmt.Printf("  %s = %v\n", k, cfg.Params[k])
	}

	start := time.Now()
	results, err := runner.Run(ctx, cfg)
	if err != nil {
		log.Fatalf("life-sweep: %v", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("%4s %8s %8s %8s %8s %8s %s\n", "run", "seed", "initial", "final", "peak", "steps", "end")
	for _, r := range results {
		end := "running"
		switch {
		case r.Extinct:
			end = "extinct"
		case r.Stalled:
			end = "stalled"
		}
		fmt.Printf("%4d %8d %8d %8d %8d %8d %s\n", r.Run, r.Seed, r.Initial, r.Final, r.Peak, r.Steps, end)
	}

	s := batch.Summarize(results)
	fmt.Printf("\nFinal population: mean %.1f sd %.1f range [%d, %d]; highest peak %d; %d extinct, %d stalled (%s)\n",
		s.MeanFinal, s.StdFinal, s.MinFinal, s.MaxFinal, s.MaxPeak, s.Extinct, s.Stalled, elapsed.Round(time.Millisecond))
}
