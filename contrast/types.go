// Package contrast provides tunable options and error definitions for
// contrastive embedding training.
package contrast

import (
	"errors"
	"fmt"
)

// Sentinel errors for contrastive training.
var (
	// ErrNilView is returned if a nil or empty view is passed.
	ErrNilView = errors.New("contrast: nil or empty dense view")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("contrast: invalid option supplied")
)

// Defaults follow the GRACE recipe scaled down to CPU training.
const (
	// DefaultDim is the embedding dimensionality.
	DefaultDim = 64

	// DefaultEpochs is the number of augmentation/descent rounds.
	DefaultEpochs = 100

	// DefaultLearningRate is the descent step size.
	DefaultLearningRate = 0.01

	// DefaultTemperature scales the InfoNCE similarities.
	DefaultTemperature = 0.5

	// DefaultEdgeDrop is the per-edge removal probability per view.
	DefaultEdgeDrop = 0.2

	// DefaultFeatureMask is the per-dimension masking probability per view.
	DefaultFeatureMask = 0.2
)

// Option configures Learn via functional arguments.
type Option func(*Options)

// Options holds the contrastive hyperparameters.
type Options struct {
	// Dim is the embedding dimensionality.
	Dim int

	// Epochs is the number of augmentation/descent rounds.
	Epochs int

	// LearningRate is the descent step size.
	LearningRate float64

	// Temperature scales similarities inside the InfoNCE softmax.
	Temperature float64

	// EdgeDrop is the probability of removing each edge in a view.
	EdgeDrop float64

	// FeatureMask is the probability of zeroing each feature dimension in
	// a view.
	FeatureMask float64

	// Seed drives initialization and corruption (0 = stable default).
	Seed int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the scaled-down GRACE recipe: dim 64, 100
// epochs, lr 0.01, temperature 0.5, 20% edge drop, 20% feature mask.
func DefaultOptions() Options {
	return Options{
		Dim:          DefaultDim,
		Epochs:       DefaultEpochs,
		LearningRate: DefaultLearningRate,
		Temperature:  DefaultTemperature,
		EdgeDrop:     DefaultEdgeDrop,
		FeatureMask:  DefaultFeatureMask,
	}
}

// WithDim sets the embedding dimensionality (must be ≥ 1).
func WithDim(d int) Option {
	return func(o *Options) {
		if d < 1 {
			o.err = fmt.Errorf("%w: Dim must be ≥ 1 (%d)", ErrOptionViolation, d)
			return
		}
		o.Dim = d
	}
}

// WithEpochs sets the round count (must be ≥ 1).
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

// WithTemperature sets the InfoNCE temperature (must be > 0).
func WithTemperature(tau float64) Option {
	return func(o *Options) {
		if tau <= 0 {
			o.err = fmt.Errorf("%w: Temperature must be > 0 (%g)", ErrOptionViolation, tau)
			return
		}
		o.Temperature = tau
	}
}

// WithEdgeDrop sets the per-edge removal probability (must be in [0,1)).
func WithEdgeDrop(p float64) Option {
	return func(o *Options) {
		if p < 0 || p >= 1 {
			o.err = fmt.Errorf("%w: EdgeDrop must be in [0,1) (%g)", ErrOptionViolation, p)
			return
		}
		o.EdgeDrop = p
	}
}

// WithFeatureMask sets the per-dimension masking probability (must be in
// [0,1)).
func WithFeatureMask(p float64) Option {
	return func(o *Options) {
		if p < 0 || p >= 1 {
			o.err = fmt.Errorf("%w: FeatureMask must be in [0,1) (%g)", ErrOptionViolation, p)
			return
		}
		o.FeatureMask = p
	}
}

// WithSeed fixes the RNG seed (0 = stable default).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}
