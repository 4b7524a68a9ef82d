package pagerank

import (
	"math"

	"github.com/katalvlaran/lvlgraph/core"
)

// PageRank runs damped power iteration on the view and returns the score
// vector, applying any number of functional Options.
// Returns ErrNilView, ErrOptionViolation, or ErrBadPersonalization.
// Complexity: O(iterations · (V + E)).
func PageRank(v *core.DenseView, opts ...Option) (*Result, error) {
	if v == nil || v.Len() == 0 {
		return nil, ErrNilView
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := v.Len()
	restart, err := restartDistribution(o.Personalization, n)
	if err != nil {
		return nil, err
	}

	rank := make([]float64, n)
	for i := range rank {
		rank[i] = restart[i]
	}
	next := make([]float64, n)

	res := &Result{}
	for res.Iterations = 1; res.Iterations <= o.MaxIterations; res.Iterations++ {
		for i := range next {
			next[i] = 0
		}

		// Push rank mass along out-edges; collect dangling mass.
		var dangling float64
		for i := 0; i < n; i++ {
			out := v.OutWeight(i)
			if out == 0 {
				dangling += rank[i]
				continue
			}
			nbr, wts := v.NeighborsOf(i)
			scale := o.Damping * rank[i] / out
			for k, j := range nbr {
				next[j] += scale * wts[k]
			}
		}

		// Restart mass: teleport probability plus redistributed dangling mass.
		base := 1 - o.Damping
		for j := 0; j < n; j++ {
			next[j] += (base + o.Damping*dangling) * restart[j]
		}

		// L1 convergence check, then swap.
		var diff float64
		for j := 0; j < n; j++ {
			diff += math.Abs(next[j] - rank[j])
		}
		rank, next = next, rank
		if diff < o.Tolerance {
			res.Converged = true
			break
		}
	}
	if res.Iterations > o.MaxIterations {
		res.Iterations = o.MaxIterations
	}
	res.Scores = rank

	return res, nil
}

// restartDistribution validates and normalizes the personalization vector,
// falling back to uniform when p is nil.
func restartDistribution(p []float64, n int) ([]float64, error) {
	r := make([]float64, n)
	if p == nil {
		u := 1 / float64(n)
		for i := range r {
			r[i] = u
		}
		return r, nil
	}
	if len(p) != n {
		return nil, ErrBadPersonalization
	}
	var total float64
	for i, x := range p {
		if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, ErrBadPersonalization
		}
		r[i] = x
		total += x
	}
	if total == 0 {
		return nil, ErrBadPersonalization
	}
	for i := range r {
		r[i] /= total
	}

	return r, nil
}
