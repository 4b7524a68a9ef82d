package skipgram

import (
	"context"
	"math"
	"math/rand"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlgraph/core"
)

// maxExp clamps the logistic argument; beyond it the gradient vanishes.
const maxExp = 6.0

// Train fits SGNS embeddings to a walk corpus over the given view.
// corpus entries are walks of dense indices, as produced by
// randomwalk.Corpus; empty walks are skipped.
// Returns ErrNilView, ErrEmptyCorpus, ErrCorpusOutOfRange, or
// ErrOptionViolation. Honors ctx cancellation between walks.
func Train(ctx context.Context, v *core.DenseView, corpus [][]int, opts ...Option) (*Embeddings, error) {
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
	counts := make([]int, n)
	var tokens int
	for _, walk := range corpus {
		for _, node := range walk {
			if node < 0 || node >= n {
				return nil, ErrCorpusOutOfRange
			}
			counts[node]++
			tokens++
		}
	}
	if tokens == 0 {
		return nil, ErrEmptyCorpus
	}

	table := buildUnigramTable(counts)

	// syn0 holds the embeddings we return; syn1 the output layer.
	// Initialization follows word2vec: uniform in ±0.5/dim, output zeros.
	syn0 := make([]float64, n*o.Dim)
	syn1 := make([]float64, n*o.Dim)
	initRNG := deriveRNG(o.Seed, 0)
	for i := range syn0 {
		syn0[i] = (initRNG.Float64() - 0.5) / float64(o.Dim)
	}

	// processed drives the linear learning-rate decay across all workers.
	var processed atomic.Int64
	total := int64(o.Epochs) * int64(tokens)

	workers := o.Workers
	if workers > len(corpus) {
		workers = len(corpus)
	}

	for epoch := 0; epoch < o.Epochs; epoch++ {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)

		chunk := (len(corpus) + workers - 1) / workers
		for slot := 0; slot < workers; slot++ {
			lo := slot * chunk
			hi := min(lo+chunk, len(corpus))
			if lo >= hi {
				break
			}
			walks := corpus[lo:hi]
			// one RNG stream per (epoch, slot) keeps single-worker runs
			// reproducible across epochs
			rng := deriveRNG(o.Seed, uint64(epoch)<<32|uint64(slot)+1)

			g.Go(func() error {
				grad := make([]float64, o.Dim)
				for _, walk := range walks {
					if err := gctx.Err(); err != nil {
						return err
					}
					trainWalk(walk, syn0, syn1, table, grad, &o, &processed, total, rng)
				}

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	e := &Embeddings{
		ids:   v.IDs(),
		index: make(map[string]int, n),
		vecs:  syn0,
		dim:   o.Dim,
	}
	for i, id := range e.ids {
		e.index[id] = i
	}

	return e, nil
}

// trainWalk slides the (randomly shrunk) context window over one walk and
// applies an SGNS update per (center, context) pair. Updates to syn0/syn1
// are unsynchronized hogwild writes when Workers > 1.
func trainWalk(walk []int, syn0, syn1 []float64, table []int32, grad []float64,
	o *Options, processed *atomic.Int64, total int64, rng *rand.Rand) {
	for t, center := range walk {
		done := processed.Add(1)
		lr := o.LearningRate * (1 - float64(done)/float64(total+1))
		if lr < o.MinLearningRate {
			lr = o.MinLearningRate
		}

		shrink := rng.Intn(o.Window)
		for c := t - o.Window + shrink; c <= t+o.Window-shrink; c++ {
			if c == t || c < 0 || c >= len(walk) {
				continue
			}
			trainPair(syn0, syn1, grad, center, walk[c], table, o, lr, rng)
		}
	}
}

// trainPair applies one positive update and o.Negative noise updates for
// the (center, target) pair.
func trainPair(syn0, syn1, grad []float64, center, target int, table []int32,
	o *Options, lr float64, rng *rand.Rand) {
	dim := o.Dim
	in := syn0[center*dim : (center+1)*dim]
	for i := range grad {
		grad[i] = 0
	}

	for d := 0; d <= o.Negative; d++ {
		tw, label := target, 1.0
		if d > 0 {
			tw = int(table[rng.Intn(len(table))])
			if tw == target {
				continue
			}
			label = 0
		}
		out := syn1[tw*dim : (tw+1)*dim]

		var f float64
		for i := range in {
			f += in[i] * out[i]
		}
		g := (label - sigmoid(f)) * lr
		for i := range in {
			grad[i] += g * out[i]
			out[i] += g * in[i]
		}
	}

	for i := range in {
		in[i] += grad[i]
	}
}

// buildUnigramTable fills the negative-sampling table with node indices in
// proportion to count^0.75, the word2vec noise distribution.
func buildUnigramTable(counts []int) []int32 {
	weights := make([]float64, len(counts))
	var norm float64
	for i, c := range counts {
		if c > 0 {
			weights[i] = math.Pow(float64(c), unigramPower)
			norm += weights[i]
		}
	}

	table := make([]int32, unigramTableSize)
	node, cum := -1, 0.0
	for i := range table {
		threshold := (float64(i) + 0.5) / float64(len(table)) * norm
		for cum < threshold && node < len(counts)-1 {
			node++
			cum += weights[node]
		}
		table[i] = int32(node)
	}

	return table
}

// sigmoid is the clamped logistic function.
func sigmoid(x float64) float64 {
	switch {
	case x > maxExp:
		return 1
	case x < -maxExp:
		return 0
	default:
		return 1 / (1 + math.Exp(-x))
	}
}
