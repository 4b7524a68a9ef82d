package randomwalk

import (
	"math/rand"

	"github.com/katalvlaran/lvlgraph/core"
)

// Walk generates a single random walk of Options.WalkLength steps starting
// at dense index start. Steps pick neighbors proportionally to edge weight;
// with WithPQ(p,q) the draw follows node2vec's second-order bias (1/p for
// returning to the previous node, 1 for staying within its neighborhood,
// 1/q for moving away). The walk truncates early at a sink.
//
// Returns ErrNilView, ErrStartOutOfRange, or ErrOptionViolation.
// Complexity: O(length · d) where d is the mean degree.
func Walk(v *core.DenseView, start int, opts ...Option) ([]int, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}

	return walk(v, start, o, rngFromSeed(o.Seed))
}

// walk is the rng-injected core used by both Walk and Corpus.
func walk(v *core.DenseView, start int, o Options, rng *rand.Rand) ([]int, error) {
	if v == nil || v.Len() == 0 {
		return nil, ErrNilView
	}
	if start < 0 || start >= v.Len() {
		return nil, ErrStartOutOfRange
	}

	path := make([]int, 1, o.WalkLength+1)
	path[0] = start

	prev := -1
	cur := start
	for step := 0; step < o.WalkLength; step++ {
		next, ok := nextHop(v, cur, prev, o, rng)
		if !ok {
			break // sink: truncate the walk
		}
		path = append(path, next)
		prev, cur = cur, next
	}

	return path, nil
}

// nextHop draws the next node from cur given the previous node.
// Returns false at sinks.
func nextHop(v *core.DenseView, cur, prev int, o Options, rng *rand.Rand) (int, bool) {
	nbr, wts := v.NeighborsOf(cur)
	if len(nbr) == 0 {
		return 0, false
	}

	// First-order fast path: no bias to compute.
	if prev < 0 || (o.P == 1 && o.Q == 1) {
		return nbr[weightedPick(wts, rng)], true
	}

	// Second-order draw: scale each candidate weight by the node2vec factor.
	biased := make([]float64, len(nbr))
	for k, x := range nbr {
		factor := 1 / o.Q // default: moving away from prev's neighborhood
		switch {
		case x == prev:
			factor = 1 / o.P
		case v.HasEdge(prev, x):
			factor = 1
		}
		biased[k] = wts[k] * factor
	}

	return nbr[weightedPick(biased, rng)], true
}

// weightedPick samples an index proportionally to wts via a cumulative scan.
// All-zero rows fall back to a uniform pick.
// Complexity: O(len(wts)).
func weightedPick(wts []float64, rng *rand.Rand) int {
	var total float64
	for _, w := range wts {
		total += w
	}
	if total <= 0 {
		return rng.Intn(len(wts))
	}
	r := rng.Float64() * total
	for k, w := range wts {
		r -= w
		if r < 0 {
			return k
		}
	}

	return len(wts) - 1 // float round-off guard
}
