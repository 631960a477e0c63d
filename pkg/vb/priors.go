package vb

import "fmt"

// Priors are the fixed hyperparameters of the factorized prior: a Gaussian
// N(m0, v0) over the mean and a Gamma with scale b0 and shape c0 over the
// precision. The Gamma prior has mean b0*c0 and variance c0*b0^2. Set once,
// immutable thereafter.
type Priors struct {
	M0 float64 // prior mean of the Gaussian mean
	V0 float64 // prior variance of the Gaussian mean (> 0)
	B0 float64 // prior Gamma scale for the precision (> 0)
	C0 float64 // prior Gamma shape for the precision (> 0)
}

// check validity of prior hyperparameters
func (p *Priors) check() error {
	if p == nil {
		return fmt.Errorf("%w: nil priors", ErrInvalidInput)
	}
	if p.V0 <= 0 || p.B0 <= 0 || p.C0 <= 0 {
		return fmt.Errorf("%w: priors %s must have v0, b0, c0 > 0", ErrInvalidInput, p)
	}
	return nil
}

// GammaMoments converts a caller-intuitive (mean, variance) pair for the
// precision prior into the Gamma scale and shape hyperparameters:
// b0 = variance/mean, c0 = mean^2/variance.
func GammaMoments(mean, variance float64) (b0, c0 float64, err error) {
	if mean <= 0 || variance <= 0 {
		return 0, 0, fmt.Errorf("%w: precision prior mean=%v, variance=%v must be > 0",
			ErrInvalidInput, mean, variance)
	}
	return variance / mean, mean * mean / variance, nil
}

func (p *Priors) String() string {
	return fmt.Sprintf("{m0=%.6g, v0=%.6g, b0=%.6g, c0=%.6g}", p.M0, p.V0, p.B0, p.C0)
}
