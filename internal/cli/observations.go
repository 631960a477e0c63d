package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ibme-qubic/vb-tutorial/internal/config"
	"github.com/ibme-qubic/vb-tutorial/internal/datagen"
)

// loadObservations returns the observation sequence for a run: the contents
// of the configured data file, or a synthetic sample when no file is given.
func loadObservations(cfg *config.Config, logger *zap.Logger) ([]float64, error) {
	if cfg.Data.File != "" {
		f, err := os.Open(cfg.Data.File)
		if err != nil {
			return nil, fmt.Errorf("failed to open data file: %w", err)
		}
		defer f.Close()
		obs, err := parseObservations(f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", cfg.Data.File, err)
		}
		logger.Info("loaded observations",
			zap.String("file", cfg.Data.File),
			zap.Int("count", len(obs)))
		return obs, nil
	}

	gen, err := datagen.New(cfg.Data.Mean, cfg.Data.StdDev, cfg.Data.Seed)
	if err != nil {
		return nil, err
	}
	obs, err := gen.Sample(cfg.Data.Samples)
	if err != nil {
		return nil, err
	}
	logger.Info("generated synthetic observations",
		zap.Int("count", len(obs)),
		zap.Float64("trueMean", cfg.Data.Mean),
		zap.Float64("trueStdDev", cfg.Data.StdDev),
		zap.Uint64("seed", cfg.Data.Seed))
	return obs, nil
}

// parseObservations reads one value per line, skipping blank lines and
// '#' comments.
func parseObservations(r io.Reader) ([]float64, error) {
	var obs []float64
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		y, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		obs = append(obs, y)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return obs, nil
}
