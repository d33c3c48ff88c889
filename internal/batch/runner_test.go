package batch_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"graph-life/internal/batch"
	_ "graph-life/internal/sims/amoeba"
	_ "graph-life/internal/sims/life"
	_ "graph-life/internal/sims/zombie"
)

func smallConfig(sim string) batch.Config {
	cfg := batch.DefaultConfig()
	cfg.Sim = sim
	cfg.Rows, cfg.Cols = 16, 16
	cfg.Steps = 40
	cfg.Runs = 4
	cfg.Workers = 2
	cfg.Seed = 7
	return cfg
}

func TestRunIsDeterministicPerSeed(t *testing.T) {
	for _, sim := range []string{"life", "zombie", "amoeba"} {
		t.Run(sim, func(t *testing.T) {
			cfg := smallConfig(sim)
			first, err := batch.Runner{}.Run(context.Background(), cfg)
			require.NoError(t, err)
			cfg.Workers = 1
			second, err := batch.Runner{}.Run(context.Background(), cfg)
			require.NoError(t, err)
			require.Equal(t, first, second)
			for i, r := range first {
				require.Equal(t, i, r.Run)
				require.Equal(t, cfg.Seed+int64(i), r.Seed)
				require.GreaterOrEqual(t, r.Peak, r.Final)
				require.LessOrEqual(t, r.Steps, cfg.Steps)
			}
		})
	}
}

func TestRunLogsEveryRun(t *testing.T) {
	var buf bytes.Buffer
	cfg := smallConfig("life")
	_, err := batch.Runner{Logger: log.New(&buf, "", 0)}.Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Equal(t, cfg.Runs, strings.Count(buf.String(), "life run "))
}

func TestUnknownSim(t *testing.T) {
	_, err := batch.Runner{}.Run(context.Background(), smallConfig("nope"))
	require.Error(t, err)
	require.True(t, errors.Is(err, batch.ErrUnknownSim))
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := smallConfig("life")
	cfg.Steps = 200
	cfg.Rows, cfg.Cols = 64, 64
	_, err := batch.Runner{}.Run(ctx, cfg)
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.toml")
	body := `
sim = "zombie"
rows = 20
cols = 30
runs = 3

[params]
starve_ratio = 2.5
patience = 7
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	cfg, err := batch.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "zombie", cfg.Sim)
	require.Equal(t, 3, cfg.Runs)
	require.Equal(t, batch.DefaultConfig().Steps, cfg.Steps)

	flat := cfg.SimConfig()
	require.Equal(t, "20", flat["rows"])
	require.Equal(t, "30", flat["cols"])
	require.Equal(t, "2.5", flat["starve_ratio"])
	require.Equal(t, "7", flat["patience"])
	require.Equal(t, []string{"patience", "starve_ratio"}, cfg.ParamKeys())
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("sim = \"life\"\ncolour = 3\n"), 0o644))
	_, err := batch.LoadConfig(path)
	require.ErrorContains(t, err, "colour")

	_, err = batch.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSetOverrides(t *testing.T) {
	cfg := batch.DefaultConfig()
	require.NoError(t, cfg.Set("rows", "12"))
	require.NoError(t, cfg.Set("seed", "99"))
	require.NoError(t, cfg.Set("patience", "3"))
	require.Equal(t, 12, cfg.Rows)
	require.Equal(t, int64(99), cfg.Seed)
	require.Equal(t, "3", cfg.SimConfig()["patience"])
	require.Error(t, cfg.Set("steps", "many"))
}

func TestValidateRejectsGridParams(t *testing.T) {
	cfg := smallConfig("life")
	cfg.Params = map[string]any{"rows": 4}
	require.Error(t, cfg.Validate())
}

func TestSummarize(t *testing.T) {
	s := batch.Summarize([]batch.Result{
		{Final: 2, Peak: 5, Extinct: false},
		{Final: 0, Peak: 9, Extinct: true},
		{Final: 4, Peak: 4, Stalled: true},
	})
	require.Equal(t, 3, s.Runs)
	require.Equal(t, 0, s.MinFinal)
	require.Equal(t, 4, s.MaxFinal)
	require.Equal(t, 9, s.MaxPeak)
	require.InDelta(t, 2.0, s.MeanFinal, 1e-9)
	require.Equal(t, 1, s.Extinct)
	require.Equal(t, 1, s.Stalled)
	require.Equal(t, batch.Summary{}, batch.Summarize(nil))
}
