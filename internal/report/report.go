// Package report renders the outcome of an inference run for the console
// and for machine consumption. Formatting only; all quantities come from
// the engine.
package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ibme-qubic/vb-tutorial/pkg/vb"
)

// Hyperparameters is the YAML rendering of one posterior state.
type Hyperparameters struct {
	M float64 `yaml:"m"`
	V float64 `yaml:"v"`
	B float64 `yaml:"b"`
	C float64 `yaml:"c"`
}

// Report summarizes a completed run: the data statistics, the converged
// hyperparameters and the implied scalar estimates.
type Report struct {
	Observations      int             `yaml:"observations"`
	SampleMean        float64         `yaml:"sample_mean"`
	SampleVariance    float64         `yaml:"sample_variance"`
	Iterations        int             `yaml:"iterations"`
	Converged         bool            `yaml:"converged"`
	Mean              float64         `yaml:"inferred_mean"`
	MeanVariance      float64         `yaml:"mean_variance"`
	Precision         float64         `yaml:"inferred_precision"`
	PrecisionVariance float64         `yaml:"precision_variance"`
	Posterior         Hyperparameters `yaml:"posterior"`
}

// New builds a report from the engine's data statistics and a run result.
func New(stats *vb.SufficientStats, res *vb.Result) *Report {
	p := res.Posterior
	return &Report{
		Observations:      stats.N,
		SampleMean:        stats.Mean(),
		SampleVariance:    stats.Variance(),
		Iterations:        res.Iterations,
		Converged:         res.Converged,
		Mean:              p.Mean(),
		MeanVariance:      p.MeanVariance(),
		Precision:         p.Precision(),
		PrecisionVariance: p.PrecisionVariance(),
		Posterior:         Hyperparameters{M: p.M, V: p.V, B: p.B, C: p.C},
	}
}

// WriteYAML writes the report as a YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(r)
}

// WriteText writes the human-readable summary the tutorial prints after
// its final iteration.
func (r *Report) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Inferred mean: %f (variance: %f)\nInferred precision: %f (variance: %f)\n",
		r.Mean, r.MeanVariance, r.Precision, r.PrecisionVariance)
	return err
}

// WriteTrace writes one line per iteration with the evolving
// hyperparameter tuple.
func WriteTrace(w io.Writer, res *vb.Result) error {
	for i, p := range res.Trace {
		if _, err := fmt.Fprintf(w, "iteration %d: %s\n", i+1, p); err != nil {
			return err
		}
	}
	return nil
}
