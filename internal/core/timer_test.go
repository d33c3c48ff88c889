package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFixedStepGatesByElapsedTime(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	require.True(t, fs.Due(), "first call is primed with one interval")
	require.False(t, fs.Due())

	clock = clock.Add(50 * time.Millisecond)
	require.False(t, fs.Due())

	clock = clock.Add(50 * time.Millisecond)
	require.True(t, fs.Due())
	require.False(t, fs.Due())

	clock = clock.Add(time.Second)
	require.True(t, fs.Due())
	require.True(t, fs.Due(), "surplus carries over one interval")
	require.False(t, fs.Due())
}

func TestFixedStepRateFallback(t *testing.T) {
	fs := NewFixedStep(0)
	require.Equal(t, 100*time.Millisecond, fs.Interval())
	fs.SetRate(4)
	require.Equal(t, 250*time.Millisecond, fs.Interval())
}

func TestSharedSeedIsDeterministic(t *testing.T) {
	Seed(42)
	a := []int{Random().IntN(1000), Random().IntN(1000), Random().IntN(1000)}
	Seed(42)
	b := []int{Random().IntN(1000), Random().IntN(1000), Random().IntN(1000)}
	require.Equal(t, a, b)

	r := NewRNG(42).Source()
	require.Same(t, r, OrShared(r))
	require.Same(t, Random(), OrShared(nil))
}

func TestFillBinaryUsesBothStates(t *testing.T) {
	buf := make([]CellState, 256)
	FillBinary(NewRNG(7).Source(), buf)
	alive := 0
	for _, s := range buf {
		require.Contains(t, []CellState{Dead, Alive}, s)
		if s == Alive {
			alive++
		}
	}
	require.Greater(t, alive, 64)
	require.Less(t, alive, 192)
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		GridGroup(Size{Rows: 3, Cols: 4}),
		{Name: "Rule", Params: []Parameter{FloatParam("ratio", "Ratio", 1.5)}},
	}}
	v, ok := snap.Lookup("cols")
	require.True(t, ok)
	require.Equal(t, "4", v)
	v, ok = snap.Lookup("ratio")
	require.True(t, ok)
	require.Equal(t, "1.5", v)
	_, ok = snap.Lookup("missing")
	require.False(t, ok)
}

func TestDimsFromMap(t *testing.T) {
	d := DimsFromMap(map[string]string{"rows": "12", "cols": "zero"})
	require.Equal(t, 12, d.Rows)
	require.Equal(t, DefaultDims().Cols, d.Cols)

	d = DimsFromMap(nil)
	require.Equal(t, DefaultDims(), d)
}
