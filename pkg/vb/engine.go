// Package vb performs closed-form variational Bayes inference of the mean
// and precision of a univariate Gaussian. The true joint posterior over
// (mean, precision) is approximated by a factorized form N(m, v) x
// Gamma(scale b, shape c) whose hyperparameters are evolved by fixed-point
// iteration. For this conjugate model the iteration converges to a
// stationary point within a small number of steps regardless of the
// starting state.
package vb

import (
	"fmt"
	"math"
)

// Engine holds the fixed inputs of an inference run: the sufficient
// statistics of the observations and the prior hyperparameters. Both are
// immutable after construction, so independent runs may share an Engine.
type Engine struct {
	Stats  *SufficientStats
	Priors *Priors
}

// NewEngine creates an engine from raw observations and priors.
func NewEngine(obs []float64, priors *Priors) (*Engine, error) {
	stats, err := Summarize(obs)
	if err != nil {
		return nil, err
	}
	return NewEngineFromStats(stats, priors)
}

// NewEngineFromStats creates an engine from precomputed sufficient
// statistics.
func NewEngineFromStats(stats *SufficientStats, priors *Priors) (*Engine, error) {
	if stats == nil || stats.N < 1 {
		return nil, fmt.Errorf("%w: sufficient statistics require at least one observation", ErrInvalidInput)
	}
	if err := priors.check(); err != nil {
		return nil, err
	}
	return &Engine{Stats: stats, Priors: priors}, nil
}

// Update maps the current posterior hyperparameters to the next ones,
// holding the data statistics and priors fixed. The mean factor is
// refreshed first; the expected squared residual then uses the
// just-updated m and v, not the input state. That ordering is required by
// the mean-field derivation.
//
// The denominator 1 + n*v0*b*c is >= 1 under the validity checks, so the
// updated v is always positive. The precision-scale denominator is guarded
// against degenerate priors.
func (e *Engine) Update(p *Posterior) (*Posterior, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	n := float64(e.Stats.N)
	bc := p.B * p.C

	denom := 1 + n*e.Priors.V0*bc
	m := (e.Priors.M0 + e.Priors.V0*bc*e.Stats.S1) / denom
	v := e.Priors.V0 / denom

	// expected squared residual under the refreshed mean factor
	x := e.Stats.S2 - 2*e.Stats.S1*m + n*(m*m+v)

	bDenom := 1/e.Priors.B0 + x/2
	if bDenom == 0 || math.IsNaN(bDenom) || math.IsInf(bDenom, 0) {
		return nil, fmt.Errorf("%w: precision-scale denominator 1/b0 + X/2 = %v",
			ErrNumericalInstability, bDenom)
	}
	b := 1 / bDenom
	c := n/2 + e.Priors.C0

	return &Posterior{M: m, V: v, B: b, C: c}, nil
}

// RunOptions control the driver loop. MaxIterations bounds the number of
// updates applied. A positive Tolerance additionally stops the loop once
// max(|dm|, |dv|, |db|, |dc|) between successive states drops below it;
// zero disables the convergence test and all MaxIterations updates run.
type RunOptions struct {
	MaxIterations int
	Tolerance     float64
}

// check validity of run options
func (o *RunOptions) check() error {
	if o == nil {
		return fmt.Errorf("%w: nil run options", ErrInvalidInput)
	}
	if o.MaxIterations < 1 || o.Tolerance < 0 {
		return fmt.Errorf("%w: run options must have maxIterations >= 1 and tolerance >= 0 (got %d, %v)",
			ErrInvalidInput, o.MaxIterations, o.Tolerance)
	}
	return nil
}

// Result of a driver run: the final posterior, the state after every
// update (excluding the initial state), the number of updates applied and
// whether the tolerance test passed. Converged stays false when the
// tolerance test is disabled.
type Result struct {
	Posterior  *Posterior
	Trace      []*Posterior
	Iterations int
	Converged  bool
}

// Run applies the update repeatedly starting from the given initial state.
// The converged fixed point does not depend on the initial state, only the
// number of iterations needed to reach it does.
func (e *Engine) Run(initial *Posterior, opts *RunOptions) (*Result, error) {
	if err := opts.check(); err != nil {
		return nil, err
	}
	if err := initial.check(); err != nil {
		return nil, err
	}

	res := &Result{Trace: make([]*Posterior, 0, opts.MaxIterations)}
	cur := initial
	for i := 0; i < opts.MaxIterations; i++ {
		next, err := e.Update(cur)
		if err != nil {
			return nil, fmt.Errorf("update %d: %w", i+1, err)
		}
		res.Trace = append(res.Trace, next)
		res.Iterations = i + 1
		converged := opts.Tolerance > 0 && next.Delta(cur) < opts.Tolerance
		cur = next
		if converged {
			res.Converged = true
			break
		}
	}
	res.Posterior = cur
	return res, nil
}
