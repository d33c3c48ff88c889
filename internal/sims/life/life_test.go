package life

import (
	"testing"

	"graph-life/internal/core"
)

func newLife(rows, cols int) *Life {
	return New(rows, cols, core.NewRNG(1).Source())
}

func TestBlinkerOscillation(t *testing.T) {
	life := newLife(5, 5)
	life.Set(1, 2, core.Alive)
	life.Set(2, 2, core.Alive)
	life.Set(3, 2, core.Alive)

	if !life.Step(nil) {
		t.Fatal("blinker step should report a change")
	}

	expects := map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			alive := life.Get(row, col) == core.Alive
			if expects[[2]int{row, col}] != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", row, col, alive, !alive)
			}
		}
	}

	life.Step(nil)

	expects = map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			alive := life.Get(row, col) == core.Alive
			if expects[[2]int{row, col}] != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", row, col, alive, !alive)
			}
		}
	}
}

func TestBlockIsStillLife(t *testing.T) {
	life := newLife(6, 6)
	for _, rc := range [][2]int{{2, 2}, {2, 3}, {3, 2}, {3, 3}} {
		life.Set(rc[0], rc[1], core.Alive)
	}
	calls := 0
	for i := 0; i < 4; i++ {
		if life.Step(func(int, int, core.CellState) { calls++ }) {
			t.Fatalf("step %d on a block reported a change", i)
		}
		if got := life.PopulationCount(); got != 4 {
			t.Fatalf("step %d population=%d, want 4", i, got)
		}
	}
	if calls != 0 {
		t.Fatalf("still life fired %d callbacks", calls)
	}
}

func TestLoneCellDies(t *testing.T) {
	life := newLife(4, 4)
	life.Set(1, 1, core.Alive)

	var reported []core.CellState
	changed := life.Step(func(row, col int, s core.CellState) {
		if row != 1 || col != 1 {
			t.Fatalf("unexpected callback for (%d,%d)", row, col)
		}
		reported = append(reported, s)
	})
	if !changed {
		t.Fatal("expected lone cell death to count as a change")
	}
	if len(reported) != 1 || reported[0] != core.Dead {
		t.Fatalf("expected a single Dead report, got %v", reported)
	}
	if life.PopulationCount() != 0 {
		t.Fatal("lone cell should have died")
	}
}

func TestFullThreeByThreeTorusDies(t *testing.T) {
	life := newLife(3, 3)
	for i := range life.Grid.Cells() {
		life.Grid.Cells()[i] = core.Alive
	}
	// Every cell sees 8 live neighbours on a 3x3 torus.
	if !life.Step(nil) {
		t.Fatal("expected overcrowded torus to change")
	}
	if got := life.PopulationCount(); got != 0 {
		t.Fatalf("population=%d, want 0", got)
	}
}

func TestResizeAndClear(t *testing.T) {
	life := newLife(8, 8)
	life.Randomize()
	life.Resize(5, 7)
	if size := life.Size(); size.Rows != 5 || size.Cols != 7 {
		t.Fatalf("unexpected size %+v", size)
	}
	if life.PopulationCount() != 0 {
		t.Fatal("resize should leave the grid cleared")
	}

	life.Randomize()
	life.Clear()
	first := append([]core.CellState(nil), life.Grid.Cells()...)
	life.Clear()
	for i, s := range life.Grid.Cells() {
		if s != core.Dead || first[i] != core.Dead {
			t.Fatalf("cell %d not dead after clear", i)
		}
	}
	if life.PopulationCount() != 0 {
		t.Fatal("clear should zero the population")
	}
}

func TestForAllLifeMatchesPopulation(t *testing.T) {
	life := newLife(16, 16)
	life.Randomize()
	count := 0
	life.ForAllLife(func(row, col int, s core.CellState) {
		if s != core.Alive || life.Get(row, col) != core.Alive {
			t.Fatalf("ForAllLife reported non-live cell (%d,%d)=%v", row, col, s)
		}
		count++
	})
	if count != life.PopulationCount() {
		t.Fatalf("ForAllLife visited %d cells, population %d", count, life.PopulationCount())
	}
	if count == 0 || count == 256 {
		t.Fatalf("randomize produced a degenerate grid (%d alive)", count)
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["life"]
	if !ok {
		t.Fatal("life not registered")
	}
	sim := factory(map[string]string{"rows": "9", "cols": "11"}, core.NewRNG(3).Source())
	if size := sim.Size(); size.Rows != 9 || size.Cols != 11 {
		t.Fatalf("unexpected size %+v", size)
	}
}
