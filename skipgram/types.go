// Package skipgram provides tunable options and error definitions for
// SGNS training over walk corpora.
package skipgram

import (
	"errors"
	"fmt"
)

// Sentinel errors for training and embedding construction.
var (
	// ErrNilView is returned if a nil or empty view is passed.
	ErrNilView = errors.New("skipgram: nil or empty dense view")

	// ErrEmptyCorpus is returned when the corpus holds no usable walk.
	ErrEmptyCorpus = errors.New("skipgram: empty corpus")

	// ErrCorpusOutOfRange is returned when a walk references a dense index
	// the view does not have.
	ErrCorpusOutOfRange = errors.New("skipgram: corpus index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("skipgram: invalid option supplied")

	// ErrUnknownID is returned when an embedding lookup misses.
	ErrUnknownID = errors.New("skipgram: unknown vertex id")

	// ErrBadTable is returned when NewEmbeddings receives inconsistent
	// ids/vectors (length mismatch, duplicate id, ragged rows, zero dim).
	ErrBadTable = errors.New("skipgram: malformed embedding table")
)

// Defaults follow the word2vec lineage.
const (
	// DefaultDim is the embedding dimensionality.
	DefaultDim = 128

	// DefaultWindow is the sliding context radius.
	DefaultWindow = 5

	// DefaultEpochs is the number of passes over the corpus.
	DefaultEpochs = 5

	// DefaultNegative is the number of negative samples per context pair.
	DefaultNegative = 5

	// DefaultLearningRate is the initial SGD step size.
	DefaultLearningRate = 0.025

	// DefaultMinLearningRate floors the linear decay.
	DefaultMinLearningRate = 1e-4

	// DefaultWorkers trains single-threaded for reproducibility.
	DefaultWorkers = 1
)

// unigramTableSize is the granularity of the negative-sampling table.
const unigramTableSize = 1 << 20

// unigramPower flattens the noise distribution the word2vec way.
const unigramPower = 0.75

// Option configures Train via functional arguments.
type Option func(*Options)

// Options holds the SGNS hyperparameters.
type Options struct {
	// Dim is the embedding dimensionality.
	Dim int

	// Window is the context radius inside each walk.
	Window int

	// Epochs is the number of passes over the corpus.
	Epochs int

	// Negative is the number of noise samples per positive pair.
	Negative int

	// LearningRate is the initial SGD step; it decays linearly to
	// MinLearningRate over the whole run.
	LearningRate float64

	// MinLearningRate floors the decay.
	MinLearningRate float64

	// Seed drives initialization and sampling (0 = stable default).
	Seed int64

	// Workers is the number of concurrent trainers. More than one trades
	// exact reproducibility for speed.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the word2vec-style settings: dim 128, window 5,
// 5 epochs, 5 negatives, lr 0.025 → 1e-4, single worker.
func DefaultOptions() Options {
	return Options{
		Dim:             DefaultDim,
		Window:          DefaultWindow,
		Epochs:          DefaultEpochs,
		Negative:        DefaultNegative,
		LearningRate:    DefaultLearningRate,
		MinLearningRate: DefaultMinLearningRate,
		Workers:         DefaultWorkers,
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

// WithWindow sets the context radius (must be ≥ 1).
func WithWindow(w int) Option {
	return func(o *Options) {
		if w < 1 {
			o.err = fmt.Errorf("%w: Window must be ≥ 1 (%d)", ErrOptionViolation, w)
			return
		}
		o.Window = w
	}
}

// WithEpochs sets the number of corpus passes (must be ≥ 1).
func WithEpochs(e int) Option {
	return func(o *Options) {
		if e < 1 {
			o.err = fmt.Errorf("%w: Epochs must be ≥ 1 (%d)", ErrOptionViolation, e)
			return
		}
		o.Epochs = e
	}
}

// WithNegative sets the noise samples per positive pair (must be ≥ 1).
func WithNegative(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: Negative must be ≥ 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.Negative = k
	}
}

// WithLearningRate sets the initial SGD step (must be > 0).
func WithLearningRate(lr float64) Option {
	return func(o *Options) {
		if lr <= 0 {
			o.err = fmt.Errorf("%w: LearningRate must be > 0 (%g)", ErrOptionViolation, lr)
			return
		}
		o.LearningRate = lr
	}
}

// WithSeed fixes the RNG seed (0 = stable default).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers sets the trainer concurrency (must be ≥ 1).
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, w)
			return
		}
		o.Workers = w
	}
}
