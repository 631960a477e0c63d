package config

import (
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagBindings maps viper keys (= config file keys = env var names with the
// VB_ prefix and dots replaced by underscores) to pflag names.
var flagBindings = map[string]string{
	"data.file":                "data-file",
	"data.samples":             "samples",
	"data.mean":                "true-mean",
	"data.stddev":              "true-stddev",
	"data.seed":                "seed",
	"prior.mean":               "prior-mean",
	"prior.variance":           "prior-variance",
	"prior.scale":              "prior-scale",
	"prior.shape":              "prior-shape",
	"prior.precision_mean":     "prior-precision-mean",
	"prior.precision_variance": "prior-precision-variance",
	"run.iterations":           "iterations",
	"run.tolerance":            "tolerance",
	"log.level":                "log-level",
	"log.dev":                  "log-dev",
}

// Load resolves the configuration with precedence: flags > env > config
// file > defaults. Returns an error if the resolved configuration is
// invalid (fail-fast). flagSet may be nil (e.g. in tests that don't set
// CLI flags); configFile may be empty.
func Load(flagSet *flag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Bind environment variables (precedence above file, below flags)
	v.SetEnvPrefix("VB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind pflag flags (highest precedence for explicitly-set flags)
	if flagSet != nil {
		for viperKey, flagName := range flagBindings {
			if f := flagSet.Lookup(flagName); f != nil {
				_ = v.BindPFlag(viperKey, f)
			}
		}
	}

	cfg := &Config{
		Data: DataConfig{
			File:    v.GetString("data.file"),
			Samples: v.GetInt("data.samples"),
			Mean:    v.GetFloat64("data.mean"),
			StdDev:  v.GetFloat64("data.stddev"),
			Seed:    v.GetUint64("data.seed"),
		},
		Prior: PriorConfig{
			Mean:              v.GetFloat64("prior.mean"),
			Variance:          v.GetFloat64("prior.variance"),
			Scale:             v.GetFloat64("prior.scale"),
			Shape:             v.GetFloat64("prior.shape"),
			PrecisionMean:     v.GetFloat64("prior.precision_mean"),
			PrecisionVariance: v.GetFloat64("prior.precision_variance"),
		},
		Initial: InitialConfig{
			Mean:     v.GetFloat64("initial.mean"),
			Variance: v.GetFloat64("initial.variance"),
			Scale:    v.GetFloat64("initial.scale"),
			Shape:    v.GetFloat64("initial.shape"),
		},
		Run: RunConfig{
			Iterations: v.GetInt("run.iterations"),
			Tolerance:  v.GetFloat64("run.tolerance"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
			Dev:   v.GetBool("log.dev"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// setDefaults installs the demonstration defaults: 200 noisy samples from
// N(10, 1) and near-flat priors, iterated 10 times (the tutorial's fixed
// iteration count) with the convergence test disabled.
func setDefaults(v *viper.Viper) {
	v.SetDefault("data.file", "")
	v.SetDefault("data.samples", 200)
	v.SetDefault("data.mean", 10.0)
	v.SetDefault("data.stddev", 1.0)
	v.SetDefault("data.seed", 1)

	v.SetDefault("prior.mean", 0.0)
	v.SetDefault("prior.variance", 1000.0)
	v.SetDefault("prior.scale", 1000.0)
	v.SetDefault("prior.shape", 0.001)
	v.SetDefault("prior.precision_mean", 0.0)
	v.SetDefault("prior.precision_variance", 0.0)

	v.SetDefault("initial.mean", 0.0)
	v.SetDefault("initial.variance", 0.0)
	v.SetDefault("initial.scale", 0.0)
	v.SetDefault("initial.shape", 0.0)

	v.SetDefault("run.iterations", 10)
	v.SetDefault("run.tolerance", 0.0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.dev", false)
}
