package vb

import "math"

// Moments accumulates running sample moments with Welford's algorithm.
// Used by the reporting layer to describe the supplied data without a
// second pass over it.
type Moments struct {
	count uint64
	mean  float64
	m2    float64
}

// Add folds one value into the running moments.
func (m *Moments) Add(value float64) {
	m.count++
	delta := value - m.mean
	m.mean += delta / float64(m.count)
	delta2 := value - m.mean
	m.m2 += delta * delta2
}

// Count returns the number of values seen.
func (m *Moments) Count() int {
	return int(m.count)
}

// Mean returns the running mean.
func (m *Moments) Mean() float64 {
	return m.mean
}

// Variance returns the population variance, or 0 with fewer than two values.
func (m *Moments) Variance() float64 {
	if m.count < 2 {
		return 0
	}
	return m.m2 / float64(m.count)
}

// SampleVariance returns the unbiased sample variance, or 0 with fewer than
// two values.
func (m *Moments) SampleVariance() float64 {
	if m.count < 2 {
		return 0
	}
	return m.m2 / float64(m.count-1)
}

// StdDev returns the sample standard deviation.
func (m *Moments) StdDev() float64 {
	return math.Sqrt(m.SampleVariance())
}
