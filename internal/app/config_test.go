package app

import (
	"flag"
	"testing"

	"graph-life/internal/core"
	"graph-life/internal/sims/life"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-sim", "zombie", "-rows", "20", "-rate", "4", "-set", "patience=3", "-set", "starve_ratio=2"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sim != "zombie" || cfg.Rows != 20 || cfg.Rate != 4 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	m, err := cfg.SimConfig()
	if err != nil {
		t.Fatal(err)
	}
	if m["patience"] != "3" || m["starve_ratio"] != "2" || m["rows"] != "20" {
		t.Fatalf("unexpected sim config %v", m)
	}
}

func TestSimConfigRejectsBadPair(t *testing.T) {
	cfg := NewConfig()
	cfg.Set = kvList{"patience"}
	if _, err := cfg.SimConfig(); err == nil {
		t.Fatal("expected an error for a missing '='")
	}
}

func TestToggle(t *testing.T) {
	sim := life.New(4, 4, core.NewRNG(1).Source())
	if got := Toggle(sim, 1, 2, core.Alive); got != core.Alive || sim.Get(1, 2) != core.Alive {
		t.Fatalf("toggle on gave %v", got)
	}
	if got := Toggle(sim, 1, 2, core.Alive); got != core.Dead || sim.Get(1, 2) != core.Dead {
		t.Fatalf("toggle off gave %v", got)
	}
	left, right := Brushes("amoeba")
	if left != core.Food || right != core.Nucleus {
		t.Fatalf("amoeba brushes %v %v", left, right)
	}
}
