package vb

import "fmt"

// SufficientStats are the data statistics consumed by the update: the
// sample count n, the sum s1 and the sum of squares s2. They are computed
// once from the observation sequence and never change afterwards.
type SufficientStats struct {
	N  int     // number of observations (>= 1)
	S1 float64 // sum of observations
	S2 float64 // sum of squared observations
}

// Summarize computes the sufficient statistics of an observation sequence.
// The sequence must be non-empty.
func Summarize(obs []float64) (*SufficientStats, error) {
	if len(obs) == 0 {
		return nil, fmt.Errorf("%w: empty observation sequence", ErrInvalidInput)
	}
	stats := &SufficientStats{N: len(obs)}
	for _, y := range obs {
		stats.S1 += y
		stats.S2 += y * y
	}
	return stats, nil
}

// Mean returns the sample mean s1/n.
func (s *SufficientStats) Mean() float64 {
	return s.S1 / float64(s.N)
}

// Variance returns the population variance s2/n - mean^2.
func (s *SufficientStats) Variance() float64 {
	mean := s.Mean()
	return s.S2/float64(s.N) - mean*mean
}

func (s *SufficientStats) String() string {
	return fmt.Sprintf("{n=%d, s1=%.6g, s2=%.6g}", s.N, s.S1, s.S2)
}
