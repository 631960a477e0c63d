package vb

import "errors"

// ErrInvalidInput reports a precondition violation detected before any
// iteration runs: an empty observation sequence, or a non-positive
// variance, scale or shape hyperparameter.
var ErrInvalidInput = errors.New("invalid input")

// ErrNumericalInstability reports a zero or non-finite denominator
// encountered while evaluating an update. It is surfaced at the iteration
// where it occurs and is not retried.
var ErrNumericalInstability = errors.New("numerical instability")
