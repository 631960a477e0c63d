package config

import (
	"fmt"

	"github.com/ibme-qubic/vb-tutorial/pkg/vb"
)

// Config is the resolved configuration for an inference run.
type Config struct {
	Data    DataConfig
	Prior   PriorConfig
	Initial InitialConfig
	Run     RunConfig
	Log     LogConfig
}

// DataConfig selects the observation source: a file of newline-separated
// samples, or a synthetic sample drawn from the ground-truth parameters
// when no file is given.
type DataConfig struct {
	File    string  // path to an observations file; empty means synthetic
	Samples int     // synthetic sample count
	Mean    float64 // ground-truth mean for synthetic data
	StdDev  float64 // ground-truth standard deviation for synthetic data
	Seed    uint64  // sampler seed
}

// PriorConfig carries the prior hyperparameters. The precision prior may
// be given directly as a Gamma (scale, shape) pair, or as a caller-intuitive
// (mean, variance) pair which takes precedence when set.
type PriorConfig struct {
	Mean              float64 // m0
	Variance          float64 // v0
	Scale             float64 // b0
	Shape             float64 // c0
	PrecisionMean     float64 // optional Gamma mean, overrides scale/shape
	PrecisionVariance float64 // optional Gamma variance, overrides scale/shape
}

// InitialConfig is the starting posterior state. All-zero means "start
// from the prior", which is the common choice; convergence does not depend
// on it.
type InitialConfig struct {
	Mean     float64
	Variance float64
	Scale    float64
	Shape    float64
}

// RunConfig controls the driver loop.
type RunConfig struct {
	Iterations int     // maximum number of updates
	Tolerance  float64 // optional convergence tolerance; 0 disables the test
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string
	Dev   bool
}

// Validate checks the resolved configuration, fail-fast.
func (c *Config) Validate() error {
	if c.Data.File == "" {
		if c.Data.Samples < 1 {
			return fmt.Errorf("data: synthetic sample count must be >= 1 (got %d)", c.Data.Samples)
		}
		if c.Data.StdDev <= 0 {
			return fmt.Errorf("data: ground-truth standard deviation must be > 0 (got %v)", c.Data.StdDev)
		}
	}
	if c.Prior.Variance <= 0 {
		return fmt.Errorf("prior: mean variance v0 must be > 0 (got %v)", c.Prior.Variance)
	}
	usesMoments := c.Prior.PrecisionMean != 0 || c.Prior.PrecisionVariance != 0
	if usesMoments {
		if c.Prior.PrecisionMean <= 0 || c.Prior.PrecisionVariance <= 0 {
			return fmt.Errorf("prior: precision mean and variance must both be > 0 (got %v, %v)",
				c.Prior.PrecisionMean, c.Prior.PrecisionVariance)
		}
	} else if c.Prior.Scale <= 0 || c.Prior.Shape <= 0 {
		return fmt.Errorf("prior: Gamma scale b0 and shape c0 must be > 0 (got %v, %v)",
			c.Prior.Scale, c.Prior.Shape)
	}
	if init := c.Initial; init != (InitialConfig{}) {
		if init.Variance <= 0 || init.Scale <= 0 || init.Shape <= 0 {
			return fmt.Errorf("initial: variance, scale and shape must be > 0 (got %v, %v, %v)",
				init.Variance, init.Scale, init.Shape)
		}
	}
	if c.Run.Iterations < 1 {
		return fmt.Errorf("run: iterations must be >= 1 (got %d)", c.Run.Iterations)
	}
	if c.Run.Tolerance < 0 {
		return fmt.Errorf("run: tolerance must be >= 0 (got %v)", c.Run.Tolerance)
	}
	return nil
}

// Priors resolves the prior hyperparameters, deriving the Gamma scale and
// shape from the precision (mean, variance) pair when one is given.
func (c *Config) Priors() (*vb.Priors, error) {
	b0, c0 := c.Prior.Scale, c.Prior.Shape
	if c.Prior.PrecisionMean != 0 || c.Prior.PrecisionVariance != 0 {
		var err error
		if b0, c0, err = vb.GammaMoments(c.Prior.PrecisionMean, c.Prior.PrecisionVariance); err != nil {
			return nil, err
		}
	}
	return &vb.Priors{M0: c.Prior.Mean, V0: c.Prior.Variance, B0: b0, C0: c0}, nil
}

// InitialPosterior resolves the starting state, falling back to the prior
// when no explicit initial state was configured.
func (c *Config) InitialPosterior(priors *vb.Priors) *vb.Posterior {
	if c.Initial == (InitialConfig{}) {
		return &vb.Posterior{M: priors.M0, V: priors.V0, B: priors.B0, C: priors.C0}
	}
	return &vb.Posterior{
		M: c.Initial.Mean,
		V: c.Initial.Variance,
		B: c.Initial.Scale,
		C: c.Initial.Shape,
	}
}

// RunOptions resolves the driver loop options.
func (c *Config) RunOptions() *vb.RunOptions {
	return &vb.RunOptions{MaxIterations: c.Run.Iterations, Tolerance: c.Run.Tolerance}
}
