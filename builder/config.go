// Package builder: internal configuration and deterministic defaults.
//
// builderConfig is the single source of truth for all builder knobs.
// Defaults are deterministic and documented; no globals. newBuilderConfig
// applies options in order (later overrides earlier).

package builder

import (
	"math/rand"
	"strconv"
)

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// defaultWeight is the edge weight emitted for unweighted topologies.
const defaultWeight = 1.0

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn func(int) string
	// Seed for stochastic constructors; resolved through rngFromSeed.
	seed int64
	// Weight generator for edges; constant by default.
	weightFn func(*rand.Rand) float64
}

// BuilderOption configures graph construction via functional arguments.
type BuilderOption func(*builderConfig)

// WithSeed fixes the RNG seed for stochastic constructors.
// Seed 0 resolves to a stable default so zero-value configs stay reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.seed = seed }
}

// WithIDFunc overrides the vertex ID scheme (index → ID).
// A nil fn is ignored.
func WithIDFunc(fn func(int) string) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithWeightFunc overrides the per-edge weight generator.
// A nil fn is ignored.
func WithWeightFunc(fn func(*rand.Rand) float64) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last-wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     decimalID,
		seed:     0,
		weightFn: func(*rand.Rand) float64 { return defaultWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
// Deterministic and allocation-light; suitable for golden tests.
func decimalID(i int) string {
	return strconv.Itoa(i)
}
