// Package randomwalk provides tunable options and error definitions for
// walk generation over a core.DenseView.
package randomwalk

import (
	"errors"
	"fmt"
)

// Sentinel errors for walk generation.
var (
	// ErrNilView is returned if a nil or empty view is passed.
	ErrNilView = errors.New("randomwalk: nil or empty dense view")

	// ErrStartOutOfRange is returned when the start index is not a valid row.
	ErrStartOutOfRange = errors.New("randomwalk: start index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("randomwalk: invalid option supplied")
)

// Default walk parameters, matching the usual DeepWalk settings.
const (
	// DefaultWalkLength is the number of steps per walk.
	DefaultWalkLength = 40

	// DefaultWalksPerNode is the number of walks started at every node.
	DefaultWalksPerNode = 10

	// DefaultWorkers is the corpus worker-pool size.
	DefaultWorkers = 1
)

// Option configures walk generation via functional arguments.
// If an Option is invalid, it is recorded internally and surfaced as
// ErrOptionViolation when the walk function is invoked.
type Option func(*Options)

// Options holds parameters for Walk and Corpus.
type Options struct {
	// WalkLength is the number of steps taken per walk (the walk has
	// WalkLength+1 nodes including the start).
	WalkLength int

	// WalksPerNode is the number of walks Corpus starts at every node.
	WalksPerNode int

	// P is the node2vec return parameter: 1/P biases stepping back to the
	// previous node. P == 1 with Q == 1 gives a plain weighted walk.
	P float64

	// Q is the node2vec in-out parameter: 1/Q biases moving away from the
	// previous node's neighborhood.
	Q float64

	// Seed drives all random draws. Seed 0 resolves to a stable default.
	Seed int64

	// Workers is the number of goroutines Corpus shards walks across.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with DeepWalk-style defaults:
// 40-step walks, 10 walks per node, unbiased steps (p=q=1), one worker.
func DefaultOptions() Options {
	return Options{
		WalkLength:   DefaultWalkLength,
		WalksPerNode: DefaultWalksPerNode,
		P:            1,
		Q:            1,
		Seed:         0,
		Workers:      DefaultWorkers,
	}
}

// WithWalkLength sets the steps per walk (must be ≥ 1).
func WithWalkLength(l int) Option {
	return func(o *Options) {
		if l < 1 {
			o.err = fmt.Errorf("%w: WalkLength must be ≥ 1 (%d)", ErrOptionViolation, l)
			return
		}
		o.WalkLength = l
	}
}

// WithWalksPerNode sets how many walks Corpus starts at each node (≥ 1).
func WithWalksPerNode(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: WalksPerNode must be ≥ 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.WalksPerNode = k
	}
}

// WithPQ sets the node2vec bias parameters (both must be > 0).
func WithPQ(p, q float64) Option {
	return func(o *Options) {
		if p <= 0 || q <= 0 {
			o.err = fmt.Errorf("%w: p and q must be > 0 (p=%g q=%g)", ErrOptionViolation, p, q)
			return
		}
		o.P, o.Q = p, q
	}
}

// WithSeed fixes the RNG seed (0 = stable default).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers sets the corpus worker-pool size (must be ≥ 1).
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, w)
			return
		}
		o.Workers = w
	}
}

// gatherOptions resolves defaults plus caller options, surfacing any
// recorded violation.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
