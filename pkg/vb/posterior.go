package vb

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Posterior is one hyperparameter state of the factorized posterior: a
// Gaussian N(m, v) over the mean and a Gamma with scale b and shape c over
// the precision. Each update produces a wholly new tuple; a Posterior is
// never mutated in place.
type Posterior struct {
	M float64 // posterior mean of the Gaussian mean
	V float64 // posterior variance of the Gaussian mean (> 0)
	B float64 // posterior Gamma scale for the precision (> 0)
	C float64 // posterior Gamma shape for the precision (> 0)
}

// check validity of posterior hyperparameters
func (p *Posterior) check() error {
	if p == nil {
		return fmt.Errorf("%w: nil posterior", ErrInvalidInput)
	}
	if p.V <= 0 || p.B <= 0 || p.C <= 0 {
		return fmt.Errorf("%w: posterior %s must have v, b, c > 0", ErrInvalidInput, p)
	}
	return nil
}

// Mean returns the inferred mean of the data distribution.
func (p *Posterior) Mean() float64 {
	return p.M
}

// MeanVariance returns the variance of the mean estimate.
func (p *Posterior) MeanVariance() float64 {
	return p.V
}

// Precision returns the inferred precision c*b.
func (p *Posterior) Precision() float64 {
	return p.C * p.B
}

// PrecisionVariance returns the variance of the precision estimate c*b^2.
func (p *Posterior) PrecisionVariance() float64 {
	return p.C * p.B * p.B
}

// MeanDist returns the variational posterior over the mean.
func (p *Posterior) MeanDist() distuv.Normal {
	return distuv.Normal{Mu: p.M, Sigma: math.Sqrt(p.V)}
}

// PrecisionDist returns the variational posterior over the precision.
// distuv parametrizes the Gamma by shape and rate, so the scale b maps to
// rate 1/b.
func (p *Posterior) PrecisionDist() distuv.Gamma {
	return distuv.Gamma{Alpha: p.C, Beta: 1 / p.B}
}

// Delta returns the largest absolute hyperparameter change between two
// states, the quantity compared against a convergence tolerance.
func (p *Posterior) Delta(q *Posterior) float64 {
	return max(
		math.Abs(p.M-q.M),
		math.Abs(p.V-q.V),
		math.Abs(p.B-q.B),
		math.Abs(p.C-q.C),
	)
}

func (p *Posterior) String() string {
	return fmt.Sprintf("{m=%.6g, v=%.6g, b=%.6g, c=%.6g}", p.M, p.V, p.B, p.C)
}
