// Package datagen draws demonstration samples from a ground-truth Gaussian.
// It stands in for the tutorial's data source and is not part of the
// inference core.
package datagen

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generator draws observations from N(mean, stddev^2) with a deterministic
// seed, so demonstration runs are reproducible.
type Generator struct {
	dist distuv.Normal
}

// New creates a seeded generator for the given ground-truth parameters.
func New(mean, stddev float64, seed uint64) (*Generator, error) {
	if stddev <= 0 {
		return nil, fmt.Errorf("invalid ground-truth standard deviation %v", stddev)
	}
	return &Generator{
		dist: distuv.Normal{Mu: mean, Sigma: stddev, Src: rand.NewSource(seed)},
	}, nil
}

// Sample draws n observations.
func (g *Generator) Sample(n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("invalid sample count %d", n)
	}
	obs := make([]float64, n)
	for i := range obs {
		obs[i] = g.dist.Rand()
	}
	return obs, nil
}

// Truth returns the ground-truth mean and precision, for reporting how
// close the inferred posterior came.
func (g *Generator) Truth() (mean, precision float64) {
	return g.dist.Mu, 1 / (g.dist.Sigma * g.dist.Sigma)
}
