// Package louvain provides tunable options, errors, and the Partition
// result type for community detection.
package louvain

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Sentinel errors for Louvain execution.
var (
	// ErrNilView is returned if a nil or empty view is passed.
	ErrNilView = errors.New("louvain: nil or empty dense view")

	// ErrDirectedView is returned for directed snapshots: modularity here is
	// defined for undirected graphs.
	ErrDirectedView = errors.New("louvain: directed graphs not supported")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("louvain: invalid option supplied")
)

// Defaults for the optimization loop.
const (
	// DefaultMaxLevels bounds the aggregation hierarchy depth.
	DefaultMaxLevels = 10

	// DefaultMinGain is the smallest modularity gain worth a local move.
	DefaultMinGain = 1e-7

	// DefaultResolution is the classic modularity resolution.
	DefaultResolution = 1.0
)

// Option configures Louvain via functional arguments.
type Option func(*Options)

// Options holds the optimization parameters.
type Options struct {
	// Seed drives the node sweep-order shuffle (0 = stable default).
	Seed int64

	// MaxLevels bounds the number of aggregation levels.
	MaxLevels int

	// MinGain is the minimum modularity gain for a local move to count.
	MinGain float64

	// Resolution scales the null-model term: > 1 favors smaller
	// communities, < 1 larger ones.
	Resolution float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the classic settings: 10 levels max, gain
// threshold 1e-7, resolution 1.
func DefaultOptions() Options {
	return Options{
		MaxLevels:  DefaultMaxLevels,
		MinGain:    DefaultMinGain,
		Resolution: DefaultResolution,
	}
}

// WithSeed fixes the sweep-order RNG seed (0 = stable default).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithMaxLevels bounds the aggregation depth (must be ≥ 1).
func WithMaxLevels(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxLevels must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLevels = n
	}
}

// WithMinGain sets the minimal worthwhile modularity gain (must be > 0).
func WithMinGain(g float64) Option {
	return func(o *Options) {
		if g <= 0 {
			o.err = fmt.Errorf("%w: MinGain must be > 0 (%g)", ErrOptionViolation, g)
			return
		}
		o.MinGain = g
	}
}

// WithResolution sets the resolution parameter (must be > 0).
func WithResolution(r float64) Option {
	return func(o *Options) {
		if r <= 0 {
			o.err = fmt.Errorf("%w: Resolution must be > 0 (%g)", ErrOptionViolation, r)
			return
		}
		o.Resolution = r
	}
}

// Partition is the outcome of community detection.
//
// Invariants: Labels assigns exactly one compact label (0..k-1) per dense
// index; Communities[c] holds the member indices of label c as a roaring
// bitmap; the bitmaps are pairwise disjoint and their union covers all
// nodes.
type Partition struct {
	// Labels maps dense index → community label.
	Labels []int

	// Communities holds one member bitmap per label.
	Communities []*roaring.Bitmap

	// Modularity is the weighted modularity of the final assignment under
	// the configured resolution.
	Modularity float64

	// Levels is the number of aggregation levels performed.
	Levels int
}

// Size returns the member count of community c.
func (p *Partition) Size(c int) int {
	if c < 0 || c >= len(p.Communities) {
		return 0
	}

	return int(p.Communities[c].GetCardinality())
}

// Together reports whether dense indices i and j share a community.
func (p *Partition) Together(i, j int) bool {
	return i >= 0 && j >= 0 && i < len(p.Labels) && j < len(p.Labels) &&
		p.Labels[i] == p.Labels[j]
}
