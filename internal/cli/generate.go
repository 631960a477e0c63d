package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ibme-qubic/vb-tutorial/internal/datagen"
	"github.com/ibme-qubic/vb-tutorial/pkg/vb"
)

var generateOutput string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Draw synthetic Gaussian observations and write them out",
	Long: `generate draws observations from the configured ground-truth Gaussian
and writes one value per line, in the format the infer command reads back
with --data-file.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "write observations to a file instead of stdout")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	gen, err := datagen.New(cfg.Data.Mean, cfg.Data.StdDev, cfg.Data.Seed)
	if err != nil {
		return err
	}
	obs, err := gen.Sample(cfg.Data.Samples)
	if err != nil {
		return err
	}

	out := os.Stdout
	if generateOutput != "" {
		f, err := os.Create(generateOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	var moments vb.Moments
	for _, y := range obs {
		moments.Add(y)
		if _, err := fmt.Fprintf(w, "%g\n", y); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	logger.Info("wrote observations",
		zap.Int("count", moments.Count()),
		zap.Float64("sampleMean", moments.Mean()),
		zap.Float64("sampleStdDev", moments.StdDev()),
		zap.String("output", generateOutput))
	return nil
}
