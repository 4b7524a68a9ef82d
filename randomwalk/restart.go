package randomwalk

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
)

// RWROptions configures RandomWalkWithRestart.
//   - Restart: probability of jumping back to the start at each step.
//   - Steps: number of simulated steps (visit samples).
//   - Seed: RNG seed (0 = stable default).
type RWROptions struct {
	Restart float64
	Steps   int
	Seed    int64
}

// DefaultRWROptions returns the usual proximity settings:
// restart probability 0.15 over 100000 steps.
func DefaultRWROptions() *RWROptions {
	return &RWROptions{Restart: 0.15, Steps: 100000}
}

// RandomWalkWithRestart estimates the stationary proximity of every node to
// start by simulating a restarting walk: at each step the walker returns to
// start with probability Restart, otherwise moves to a weighted-random
// neighbor. Sinks force a restart. The returned vector holds per-node visit
// frequencies and sums to 1.
//
// A nil opts uses DefaultRWROptions.
// Returns ErrNilView, ErrStartOutOfRange, or ErrOptionViolation.
// Complexity: O(Steps · d).
func RandomWalkWithRestart(v *core.DenseView, start int, opts *RWROptions) ([]float64, error) {
	if v == nil || v.Len() == 0 {
		return nil, ErrNilView
	}
	if start < 0 || start >= v.Len() {
		return nil, ErrStartOutOfRange
	}
	if opts == nil {
		opts = DefaultRWROptions()
	}
	if opts.Restart <= 0 || opts.Restart >= 1 {
		return nil, fmt.Errorf("%w: Restart must be in (0,1) (%g)", ErrOptionViolation, opts.Restart)
	}
	if opts.Steps < 1 {
		return nil, fmt.Errorf("%w: Steps must be ≥ 1 (%d)", ErrOptionViolation, opts.Steps)
	}

	rng := rngFromSeed(opts.Seed)
	counts := make([]float64, v.Len())
	cur := start
	for step := 0; step < opts.Steps; step++ {
		counts[cur]++
		if rng.Float64() < opts.Restart {
			cur = start
			continue
		}
		nbr, wts := v.NeighborsOf(cur)
		if len(nbr) == 0 {
			cur = start // sink: forced restart
			continue
		}
		cur = nbr[weightedPick(wts, rng)]
	}

	for i := range counts {
		counts[i] /= float64(opts.Steps)
	}

	return counts, nil
}
