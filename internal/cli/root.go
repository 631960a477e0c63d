// Package cli wires the vbgauss commands: configuration resolution,
// logging and the inference driver around the pkg/vb core.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ibme-qubic/vb-tutorial/internal/config"
	"github.com/ibme-qubic/vb-tutorial/internal/logging"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "vbgauss",
	Short: "Variational Bayes inference of a univariate Gaussian",
	Long: `vbgauss infers the mean and precision of a univariate Gaussian from a
sample of observations using closed-form variational Bayes. The factorized
posterior hyperparameters (m, v, b, c) are evolved by fixed-point iteration
and reported together with the implied estimates and their variances.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "path to a YAML config file")

	pf.String("data-file", "", "observations file (one value per line); empty draws synthetic data")
	pf.Int("samples", 200, "synthetic sample count")
	pf.Float64("true-mean", 10.0, "ground-truth mean for synthetic data")
	pf.Float64("true-stddev", 1.0, "ground-truth standard deviation for synthetic data")
	pf.Uint64("seed", 1, "sampler seed")

	pf.Float64("prior-mean", 0.0, "prior mean m0 of the Gaussian mean")
	pf.Float64("prior-variance", 1000.0, "prior variance v0 of the Gaussian mean")
	pf.Float64("prior-scale", 1000.0, "Gamma prior scale b0 for the precision")
	pf.Float64("prior-shape", 0.001, "Gamma prior shape c0 for the precision")
	pf.Float64("prior-precision-mean", 0.0, "precision prior mean; with --prior-precision-variance, overrides scale/shape")
	pf.Float64("prior-precision-variance", 0.0, "precision prior variance; with --prior-precision-mean, overrides scale/shape")

	pf.Int("iterations", 10, "maximum number of updates")
	pf.Float64("tolerance", 0.0, "convergence tolerance on max(|dm|,|dv|,|db|,|dc|); 0 disables the test")

	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.Bool("log-dev", false, "use the development console encoder")
}

// loadConfig resolves the configuration for a command invocation.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.Load(cmd.Flags(), cfgFile)
}

// newLogger builds the logger from the resolved configuration.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(cfg.Log.Level, cfg.Log.Dev)
}
