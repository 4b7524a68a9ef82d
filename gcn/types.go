// Package gcn provides tunable options and error definitions for the GCN
// task heads.
package gcn

import (
	"errors"
	"fmt"
)

// Sentinel errors for GCN training and evaluation.
var (
	// ErrNilView is returned if a nil or empty view is passed.
	ErrNilView = errors.New("gcn: nil or empty dense view")

	// ErrBadLabels is returned when the label slice has the wrong length or
	// no labeled entry at all.
	ErrBadLabels = errors.New("gcn: bad label vector")

	// ErrNoEdges is returned when link prediction has nothing to train on.
	ErrNoEdges = errors.New("gcn: graph has no usable edges")

	// ErrNoNegatives is returned when negative sampling cannot find enough
	// absent pairs (dense or complete graphs).
	ErrNoNegatives = errors.New("gcn: not enough absent pairs to sample")

	// ErrDirectedView is returned for directed snapshots: the propagation
	// operator and its gradients assume an undirected graph.
	ErrDirectedView = errors.New("gcn: directed graphs not supported")

	// ErrBadFraction is returned for a split fraction outside (0,1).
	ErrBadFraction = errors.New("gcn: test fraction must be in (0,1)")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("gcn: invalid option supplied")

	// ErrUnknownID is returned when a scored vertex is not in the view.
	ErrUnknownID = errors.New("gcn: unknown vertex id")
)

// Defaults follow the common GCN recipe.
const (
	// DefaultHidden is the hidden-layer width.
	DefaultHidden = 16

	// DefaultEpochs is the number of full-batch descent steps.
	DefaultEpochs = 200

	// DefaultLearningRate is the descent step size.
	DefaultLearningRate = 0.05

	// DefaultWeightDecay is the L2 penalty on both weight matrices.
	DefaultWeightDecay = 5e-4

	// DefaultNegativeRatio is the sampled negatives per positive edge in
	// link prediction.
	DefaultNegativeRatio = 1
)

// Option configures training via functional arguments.
type Option func(*Options)

// Options holds the training hyperparameters.
type Options struct {
	// Hidden is the hidden-layer width.
	Hidden int

	// Epochs is the number of full-batch descent steps.
	Epochs int

	// LearningRate is the descent step size.
	LearningRate float64

	// WeightDecay is the L2 penalty coefficient.
	WeightDecay float64

	// NegativeRatio is the sampled negatives per positive (link head only).
	NegativeRatio int

	// Seed drives initialization and negative sampling (0 = stable default).
	Seed int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the usual recipe: hidden 16, 200 epochs,
// lr 0.05, weight decay 5e-4, one negative per positive.
func DefaultOptions() Options {
	return Options{
		Hidden:        DefaultHidden,
		Epochs:        DefaultEpochs,
		LearningRate:  DefaultLearningRate,
		WeightDecay:   DefaultWeightDecay,
		NegativeRatio: DefaultNegativeRatio,
	}
}

// WithHidden sets the hidden width (must be ≥ 1).
func WithHidden(h int) Option {
	return func(o *Options) {
		if h < 1 {
			o.err = fmt.Errorf("%w: Hidden must be ≥ 1 (%d)", ErrOptionViolation, h)
			return
		}
		o.Hidden = h
	}
}

// WithEpochs sets the descent step count (must be ≥ 1).
func WithEpochs(e int) Option {
	return func(o *Options) {
		if e < 1 {
			o.err = fmt.Errorf("%w: Epochs must be ≥ 1 (%d)", ErrOptionViolation, e)
			return
		}
		o.Epochs = e
	}
}

// WithLearningRate sets the step size (must be > 0).
func WithLearningRate(lr float64) Option {
	return func(o *Options) {
		if lr <= 0 {
			o.err = fmt.Errorf("%w: LearningRate must be > 0 (%g)", ErrOptionViolation, lr)
			return
		}
		o.LearningRate = lr
	}
}

// WithWeightDecay sets the L2 penalty (must be ≥ 0).
func WithWeightDecay(wd float64) Option {
	return func(o *Options) {
		if wd < 0 {
			o.err = fmt.Errorf("%w: WeightDecay must be ≥ 0 (%g)", ErrOptionViolation, wd)
			return
		}
		o.WeightDecay = wd
	}
}

// WithNegativeRatio sets negatives per positive (must be ≥ 1).
func WithNegativeRatio(r int) Option {
	return func(o *Options) {
		if r < 1 {
			o.err = fmt.Errorf("%w: NegativeRatio must be ≥ 1 (%d)", ErrOptionViolation, r)
			return
		}
		o.NegativeRatio = r
	}
}

// WithSeed fixes the RNG seed (0 = stable default).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}
