package gcn

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlgraph/core"
)

// EdgeSample is one held-out vertex pair.
type EdgeSample struct {
	From string
	To   string
}

// EdgeSplit removes a random testFraction of edges from a clone of g and
// returns the pruned graph together with the held-out pairs. Vertices are
// never removed, so the train graph keeps the full node set. The split is
// deterministic for a fixed seed.
// Returns ErrBadFraction or ErrNoEdges.
func EdgeSplit(g *core.Graph, testFraction float64, seed int64) (*core.Graph, []EdgeSample, error) {
	if testFraction <= 0 || testFraction >= 1 {
		return nil, nil, fmt.Errorf("%w: %g", ErrBadFraction, testFraction)
	}
	edges := g.Edges()
	if len(edges) == 0 {
		return nil, nil, ErrNoEdges
	}

	nTest := int(math.Round(testFraction * float64(len(edges))))
	if nTest == 0 {
		nTest = 1
	}
	if nTest >= len(edges) {
		return nil, nil, fmt.Errorf("%w: fraction %g leaves no training edge", ErrBadFraction, testFraction)
	}

	rng := rngFromSeed(seed)
	perm := rng.Perm(len(edges))
	held := make(map[string]bool, nTest)
	test := make([]EdgeSample, 0, nTest)
	for _, k := range perm[:nTest] {
		held[edges[k].ID] = true
		test = append(test, EdgeSample{From: edges[k].From, To: edges[k].To})
	}

	train := g.Clone()
	train.FilterEdges(func(e *core.Edge) bool { return !held[e.ID] })

	return train, test, nil
}

// NegativeSamples draws k vertex pairs absent from g (in either
// direction), excluding self-pairs. The draw is deterministic for a fixed
// seed. Returns ErrNoEdges when g has fewer than two vertices, and
// ErrNoNegatives when the rejection budget runs out before k pairs are
// found — a complete graph has no absent pair at all.
func NegativeSamples(g *core.Graph, k int, seed int64) ([]EdgeSample, error) {
	ids := g.Vertices()
	if len(ids) < 2 {
		return nil, ErrNoEdges
	}

	rng := rngFromSeed(seed)
	out := make([]EdgeSample, 0, k)
	// rejection sampling must stay bounded on dense graphs
	for budget := 100 * (k + len(ids)); len(out) < k; budget-- {
		if budget <= 0 {
			return nil, fmt.Errorf("%w: found %d of %d", ErrNoNegatives, len(out), k)
		}
		a := ids[rng.Intn(len(ids))]
		b := ids[rng.Intn(len(ids))]
		if a == b || g.HasEdge(a, b) || g.HasEdge(b, a) {
			continue
		}
		out = append(out, EdgeSample{From: a, To: b})
	}

	return out, nil
}

// LinkPredictor scores vertex pairs with a dot-product decoder over GCN
// node embeddings.
type LinkPredictor struct {
	view *core.DenseView
	z    *mat.Dense
	loss float64
}

// TrainLinkPredictor fits the encoder on the view's edges: positives are
// the observed edges, negatives are resampled uniformly every epoch, and
// both sides feed a logistic loss on σ(zᵢ·zⱼ).
// Returns ErrNilView, ErrDirectedView, ErrNoEdges, or ErrOptionViolation.
func TrainLinkPredictor(v *core.DenseView, opts ...Option) (*LinkPredictor, error) {
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
	type pair struct{ i, j int }
	var pos []pair
	for i := 0; i < n; i++ {
		nbr, _ := v.NeighborsOf(i)
		for _, j := range nbr {
			if v.Directed() || i < j {
				pos = append(pos, pair{i, j})
			}
		}
	}
	if len(pos) == 0 {
		return nil, ErrNoEdges
	}

	rng := rngFromSeed(o.Seed)
	nw, err := newNetwork(v, o.Hidden, o.Hidden, rng)
	if err != nil {
		return nil, err
	}

	lp := &LinkPredictor{view: v}
	nNeg := len(pos) * o.NegativeRatio
	scale := 1 / float64(len(pos)+nNeg)
	for epoch := 0; epoch < o.Epochs; epoch++ {
		z := nw.forward()
		_, d := z.Dims()
		dz := mat.NewDense(n, d, nil)
		lp.loss = 0

		update := func(i, j int, label float64) {
			var dot float64
			for k := 0; k < d; k++ {
				dot += z.At(i, k) * z.At(j, k)
			}
			p := sigmoid(dot)
			if label == 1 {
				lp.loss -= scale * math.Log(math.Max(p, 1e-12))
			} else {
				lp.loss -= scale * math.Log(math.Max(1-p, 1e-12))
			}
			g := (p - label) * scale
			for k := 0; k < d; k++ {
				dz.Set(i, k, dz.At(i, k)+g*z.At(j, k))
				dz.Set(j, k, dz.At(j, k)+g*z.At(i, k))
			}
		}

		for _, e := range pos {
			update(e.i, e.j, 1)
		}
		for s := 0; s < nNeg; s++ {
			i, j := rng.Intn(n), rng.Intn(n)
			if i == j || v.HasEdge(i, j) || v.HasEdge(j, i) {
				continue
			}
			update(i, j, 0)
		}

		nw.backward(dz, o.LearningRate, o.WeightDecay)
	}
	lp.z = nw.forward()

	return lp, nil
}

// Loss returns the final training logistic loss.
func (lp *LinkPredictor) Loss() float64 { return lp.loss }

// Score returns σ(z_from · z_to), the predicted link probability.
// Returns ErrUnknownID for vertices outside the training view.
func (lp *LinkPredictor) Score(from, to string) (float64, error) {
	i, ok := lp.view.Index(from)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownID, from)
	}
	j, ok := lp.view.Index(to)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownID, to)
	}

	_, d := lp.z.Dims()
	var dot float64
	for k := 0; k < d; k++ {
		dot += lp.z.At(i, k) * lp.z.At(j, k)
	}

	return sigmoid(dot), nil
}

// AUC computes the ROC-AUC of the predictor over held-out positive and
// negative pairs by rank statistics, with ties counted half.
// Returns ErrNoEdges when either side is empty.
func (lp *LinkPredictor) AUC(positives, negatives []EdgeSample) (float64, error) {
	if len(positives) == 0 || len(negatives) == 0 {
		return 0, ErrNoEdges
	}

	type scored struct {
		s   float64
		pos bool
	}
	all := make([]scored, 0, len(positives)+len(negatives))
	for _, e := range positives {
		s, err := lp.Score(e.From, e.To)
		if err != nil {
			return 0, err
		}
		all = append(all, scored{s, true})
	}
	for _, e := range negatives {
		s, err := lp.Score(e.From, e.To)
		if err != nil {
			return 0, err
		}
		all = append(all, scored{s, false})
	}

	sort.Slice(all, func(a, b int) bool { return all[a].s < all[b].s })

	// sum of positive ranks with midrank tie handling
	var rankSum float64
	for i := 0; i < len(all); {
		j := i
		for j < len(all) && all[j].s == all[i].s {
			j++
		}
		mid := float64(i+j+1) / 2 // 1-based midrank of the tie block
		for k := i; k < j; k++ {
			if all[k].pos {
				rankSum += mid
			}
		}
		i = j
	}

	nPos, nNeg := float64(len(positives)), float64(len(negatives))

	return (rankSum - nPos*(nPos+1)/2) / (nPos * nNeg), nil
}
