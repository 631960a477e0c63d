package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ibme-qubic/vb-tutorial/internal/report"
	"github.com/ibme-qubic/vb-tutorial/pkg/vb"
)

var (
	inferTrace  bool
	inferOutput string
	inferYAML   bool
)

var inferCmd = &cobra.Command{
	Use:   "infer",
	Short: "Run the VB fixed-point iteration and report the posterior",
	RunE:  runInfer,
}

func init() {
	inferCmd.Flags().BoolVar(&inferTrace, "trace", false, "print the hyperparameter tuple after every iteration")
	inferCmd.Flags().BoolVar(&inferYAML, "yaml", false, "emit the report as YAML instead of text")
	inferCmd.Flags().StringVarP(&inferOutput, "output", "o", "", "write the report to a file instead of stdout")
	rootCmd.AddCommand(inferCmd)
}

func runInfer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	obs, err := loadObservations(cfg, logger)
	if err != nil {
		return err
	}
	priors, err := cfg.Priors()
	if err != nil {
		return err
	}
	engine, err := vb.NewEngine(obs, priors)
	if err != nil {
		return err
	}
	initial := cfg.InitialPosterior(priors)
	logger.Debug("starting iteration",
		zap.Stringer("stats", engine.Stats),
		zap.Stringer("priors", priors),
		zap.Stringer("initial", initial))

	res, err := engine.Run(initial, cfg.RunOptions())
	if err != nil {
		return err
	}
	logger.Info("inference finished",
		zap.Int("iterations", res.Iterations),
		zap.Bool("converged", res.Converged),
		zap.Stringer("posterior", res.Posterior))

	out := os.Stdout
	if inferOutput != "" {
		f, err := os.Create(inferOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if inferTrace {
		if err := report.WriteTrace(out, res); err != nil {
			return err
		}
	}
	rep := report.New(engine.Stats, res)
	if inferYAML {
		return rep.WriteYAML(out)
	}
	return rep.WriteText(out)
}
