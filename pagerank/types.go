// Package pagerank provides tunable options and error definitions for
// power-iteration PageRank over a core.DenseView.
package pagerank

import (
	"errors"
	"fmt"
)

// Sentinel errors for PageRank execution.
var (
	// ErrNilView is returned if a nil or empty view is passed.
	ErrNilView = errors.New("pagerank: nil or empty dense view")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pagerank: invalid option supplied")

	// ErrBadPersonalization is returned for a personalization vector of the
	// wrong length, with negative entries, or with zero total mass.
	ErrBadPersonalization = errors.New("pagerank: bad personalization vector")
)

// Defaults for the power iteration.
const (
	// DefaultDamping is the classic damping factor.
	DefaultDamping = 0.85

	// DefaultMaxIterations bounds the power iteration.
	DefaultMaxIterations = 100

	// DefaultTolerance is the L1 convergence threshold.
	DefaultTolerance = 1e-9
)

// Option configures PageRank via functional arguments.
type Option func(*Options)

// Options holds the power-iteration parameters.
type Options struct {
	// Damping is the probability of following an edge (vs. restarting).
	Damping float64

	// MaxIterations bounds the number of power-iteration sweeps.
	MaxIterations int

	// Tolerance is the L1 difference below which iteration stops.
	Tolerance float64

	// Personalization is the restart distribution (length V). Nil means
	// uniform. It is normalized internally.
	Personalization []float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the classic settings: damping 0.85, 100 sweeps
// max, L1 tolerance 1e-9, uniform restart.
func DefaultOptions() Options {
	return Options{
		Damping:       DefaultDamping,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}

// WithDamping sets the damping factor (must be in (0,1)).
func WithDamping(d float64) Option {
	return func(o *Options) {
		if d <= 0 || d >= 1 {
			o.err = fmt.Errorf("%w: damping must be in (0,1) (%g)", ErrOptionViolation, d)
			return
		}
		o.Damping = d
	}
}

// WithMaxIterations bounds the power iteration (must be ≥ 1).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxIterations must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithTolerance sets the L1 convergence threshold (must be > 0).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			o.err = fmt.Errorf("%w: Tolerance must be > 0 (%g)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithPersonalization sets the restart distribution. The slice is copied
// and validated against the view inside PageRank.
func WithPersonalization(p []float64) Option {
	return func(o *Options) {
		o.Personalization = append([]float64(nil), p...)
	}
}

// Result holds the outcome of a PageRank computation.
type Result struct {
	// Scores holds one rank per dense index; the vector sums to 1.
	Scores []float64

	// Iterations is the number of sweeps performed.
	Iterations int

	// Converged reports whether the tolerance was reached before
	// MaxIterations.
	Converged bool
}
