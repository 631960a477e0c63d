package config

import (
	"os"
	"path/filepath"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil, "")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Data.File)
	assert.Equal(t, 200, cfg.Data.Samples)
	assert.Equal(t, 10.0, cfg.Data.Mean)
	assert.Equal(t, 1.0, cfg.Data.StdDev)
	assert.Equal(t, uint64(1), cfg.Data.Seed)

	assert.Equal(t, 0.0, cfg.Prior.Mean)
	assert.Equal(t, 1000.0, cfg.Prior.Variance)
	assert.Equal(t, 1000.0, cfg.Prior.Scale)
	assert.Equal(t, 0.001, cfg.Prior.Shape)

	assert.Equal(t, 10, cfg.Run.Iterations)
	assert.Equal(t, 0.0, cfg.Run.Tolerance)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
data:
  samples: 50
  mean: -3.5
  stddev: 2.0
prior:
  variance: 100
run:
  iterations: 5
  tolerance: 1e-9
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(nil, path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Data.Samples)
	assert.Equal(t, -3.5, cfg.Data.Mean)
	assert.Equal(t, 2.0, cfg.Data.StdDev)
	assert.Equal(t, 100.0, cfg.Prior.Variance)
	assert.Equal(t, 5, cfg.Run.Iterations)
	assert.Equal(t, 1e-9, cfg.Run.Tolerance)

	// untouched keys keep their defaults
	assert.Equal(t, 1000.0, cfg.Prior.Scale)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("run:\n  iterations: 5\n"), 0o644))

	t.Setenv("VB_RUN_ITERATIONS", "7")

	cfg, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Run.Iterations)
}

func TestLoadFlagOverridesEnv(t *testing.T) {
	t.Setenv("VB_RUN_ITERATIONS", "7")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Int("iterations", 10, "")
	require.NoError(t, fs.Parse([]string{"--iterations=3"}))

	cfg, err := Load(fs, "")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Run.Iterations)
}

func TestLoadValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "zero samples", env: map[string]string{"VB_DATA_SAMPLES": "0"}},
		{name: "bad stddev", env: map[string]string{"VB_DATA_STDDEV": "-1"}},
		{name: "bad prior variance", env: map[string]string{"VB_PRIOR_VARIANCE": "0"}},
		{name: "bad iterations", env: map[string]string{"VB_RUN_ITERATIONS": "0"}},
		{name: "negative tolerance", env: map[string]string{"VB_RUN_TOLERANCE": "-0.5"}},
		{name: "half precision pair", env: map[string]string{"VB_PRIOR_PRECISION_MEAN": "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, val := range tt.env {
				t.Setenv(k, val)
			}
			_, err := Load(nil, "")
			assert.Error(t, err)
		})
	}
}

func TestPriorsFromMoments(t *testing.T) {
	t.Setenv("VB_PRIOR_PRECISION_MEAN", "1")
	t.Setenv("VB_PRIOR_PRECISION_VARIANCE", "1000")

	cfg, err := Load(nil, "")
	require.NoError(t, err)

	priors, err := cfg.Priors()
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, priors.B0, 1e-12)
	assert.InDelta(t, 0.001, priors.C0, 1e-12)
}

func TestInitialPosteriorFallsBackToPrior(t *testing.T) {
	cfg, err := Load(nil, "")
	require.NoError(t, err)

	priors, err := cfg.Priors()
	require.NoError(t, err)

	initial := cfg.InitialPosterior(priors)
	assert.Equal(t, priors.M0, initial.M)
	assert.Equal(t, priors.V0, initial.V)
	assert.Equal(t, priors.B0, initial.B)
	assert.Equal(t, priors.C0, initial.C)
}

func TestInitialPosteriorExplicit(t *testing.T) {
	t.Setenv("VB_INITIAL_VARIANCE", "10")
	t.Setenv("VB_INITIAL_SCALE", "10")
	t.Setenv("VB_INITIAL_SHAPE", "0.1")

	cfg, err := Load(nil, "")
	require.NoError(t, err)

	priors, err := cfg.Priors()
	require.NoError(t, err)

	initial := cfg.InitialPosterior(priors)
	assert.Equal(t, 0.0, initial.M)
	assert.Equal(t, 10.0, initial.V)
	assert.Equal(t, 10.0, initial.B)
	assert.Equal(t, 0.1, initial.C)
}
