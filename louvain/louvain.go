package louvain

import (
	"math/rand"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/lvlgraph/core"
)

// defaultSeed keeps seed 0 deterministic.
const defaultSeed = 1

// levelGraph is the weighted graph one Louvain level works on. Aggregation
// folds intra-community weight into self, so self-loops are first-class
// here even though base graphs rarely carry them.
type levelGraph struct {
	nbr  [][]int
	wts  [][]float64
	self []float64
	deg  []float64 // weighted degree, self-loops counted twice
	m2   float64   // total degree = 2m
}

func (lg *levelGraph) size() int { return len(lg.deg) }

// Louvain detects communities by greedy modularity optimization with
// aggregation, honoring any number of functional Options.
// Returns ErrNilView, ErrDirectedView, or ErrOptionViolation.
// Complexity: roughly O(E) per sweep, levels bounded by MaxLevels.
func Louvain(v *core.DenseView, opts ...Option) (*Partition, error) {
	if v == nil || v.Len() == 0 {
		return nil, ErrNilView
	}
	if v.Directed() {
		return nil, ErrDirectedView
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	seed := o.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	n := v.Len()
	lg := buildLevel(v)

	// assign maps original dense index → community at the current level.
	assign := make([]int, n)
	for i := range assign {
		assign[i] = i
	}

	var levels int
	for levels < o.MaxLevels {
		labels := make([]int, lg.size())
		for i := range labels {
			labels[i] = i
		}
		improved := localMove(lg, labels, rng, o.MinGain, o.Resolution)
		k := compactLabels(labels)

		for i := range assign {
			assign[i] = labels[assign[i]]
		}
		levels++

		// Stop once a sweep changes nothing or no merge happened.
		if !improved || k == lg.size() {
			break
		}
		lg = aggregate(lg, labels, k)
	}

	part := &Partition{
		Labels: assign,
		Levels: levels,
	}
	k := compactLabels(part.Labels)
	part.Communities = make([]*roaring.Bitmap, k)
	for c := range part.Communities {
		part.Communities[c] = roaring.New()
	}
	for i, c := range part.Labels {
		part.Communities[c].Add(uint32(i))
	}
	q, err := Modularity(v, part.Labels, o.Resolution)
	if err != nil {
		return nil, err
	}
	part.Modularity = q

	return part, nil
}

// Modularity computes the weighted modularity of an assignment under the
// given resolution. labels must hold one value per dense index.
func Modularity(v *core.DenseView, labels []int, resolution float64) (float64, error) {
	if v == nil || v.Len() == 0 {
		return 0, ErrNilView
	}
	if len(labels) != v.Len() {
		return 0, ErrOptionViolation
	}

	var m2 float64
	for i := 0; i < v.Len(); i++ {
		m2 += v.OutWeight(i)
	}
	if m2 == 0 {
		return 0, nil
	}

	k := 0
	for _, c := range labels {
		if c < 0 {
			return 0, ErrOptionViolation
		}
		if c+1 > k {
			k = c + 1
		}
	}

	var intra float64
	tot := make([]float64, k)
	for i := 0; i < v.Len(); i++ {
		tot[labels[i]] += v.OutWeight(i)
		nbr, wts := v.NeighborsOf(i)
		for x, j := range nbr {
			if labels[i] == labels[j] {
				intra += wts[x]
			}
		}
	}

	q := intra / m2
	for _, t := range tot {
		frac := t / m2
		q -= resolution * frac * frac
	}

	return q, nil
}

// buildLevel snapshots the view into the mutable level representation.
func buildLevel(v *core.DenseView) *levelGraph {
	n := v.Len()
	lg := &levelGraph{
		nbr:  make([][]int, n),
		wts:  make([][]float64, n),
		self: make([]float64, n),
		deg:  make([]float64, n),
	}
	for i := 0; i < n; i++ {
		nbr, wts := v.NeighborsOf(i)
		for x, j := range nbr {
			if j == i {
				lg.self[i] += wts[x]
				continue
			}
			lg.nbr[i] = append(lg.nbr[i], j)
			lg.wts[i] = append(lg.wts[i], wts[x])
			lg.deg[i] += wts[x]
		}
		lg.deg[i] += 2 * lg.self[i]
		lg.m2 += lg.deg[i]
	}

	return lg
}

// localMove runs the greedy phase: each node joins the neighboring
// community with the best modularity gain, sweeping in shuffled order
// until a full sweep changes nothing. Reports whether any move happened.
func localMove(lg *levelGraph, labels []int, rng *rand.Rand, minGain, resolution float64) bool {
	n := lg.size()
	if lg.m2 == 0 {
		return false
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(n, func(a, b int) { order[a], order[b] = order[b], order[a] })

	comTot := make([]float64, n)
	for i, c := range labels {
		comTot[c] += lg.deg[i]
	}

	// links[c] holds the weight from the current node into community c;
	// seen lists the touched communities in deterministic scan order.
	links := make([]float64, n)
	seen := make([]int, 0, 16)

	improved := false
	for moved := true; moved; {
		moved = false
		for _, i := range order {
			ci := labels[i]

			seen = seen[:0]
			for x, j := range lg.nbr[i] {
				c := labels[j]
				if links[c] == 0 {
					seen = append(seen, c)
				}
				links[c] += lg.wts[i][x]
			}
			if links[ci] == 0 {
				seen = append(seen, ci)
			}

			ki := lg.deg[i]
			comTot[ci] -= ki
			penalty := resolution * ki / lg.m2

			best, bestGain := ci, links[ci]-penalty*comTot[ci]
			for _, c := range seen {
				if c == ci {
					continue
				}
				if gain := links[c] - penalty*comTot[c]; gain > bestGain+minGain {
					best, bestGain = c, gain
				}
			}

			comTot[best] += ki
			labels[i] = best
			if best != ci {
				moved = true
				improved = true
			}

			for _, c := range seen {
				links[c] = 0
			}
		}
	}

	return improved
}

// compactLabels renumbers labels to 0..k-1 by first appearance and
// returns k.
func compactLabels(labels []int) int {
	remap := make(map[int]int, len(labels))
	for i, c := range labels {
		nc, ok := remap[c]
		if !ok {
			nc = len(remap)
			remap[c] = nc
		}
		labels[i] = nc
	}

	return len(remap)
}

// aggregate collapses each community into a supernode; intra-community
// weight becomes a self-loop on the supernode.
func aggregate(lg *levelGraph, labels []int, k int) *levelGraph {
	next := &levelGraph{
		nbr:  make([][]int, k),
		wts:  make([][]float64, k),
		self: make([]float64, k),
		deg:  make([]float64, k),
	}

	rows := make([]map[int]float64, k)
	for c := range rows {
		rows[c] = make(map[int]float64)
	}
	for i := 0; i < lg.size(); i++ {
		ci := labels[i]
		next.self[ci] += lg.self[i]
		for x, j := range lg.nbr[i] {
			cj := labels[j]
			if cj == ci {
				// each intra edge shows up from both endpoints
				next.self[ci] += lg.wts[i][x] / 2
				continue
			}
			rows[ci][cj] += lg.wts[i][x]
		}
	}

	for c := 0; c < k; c++ {
		for d := 0; d < k; d++ {
			if w, ok := rows[c][d]; ok {
				next.nbr[c] = append(next.nbr[c], d)
				next.wts[c] = append(next.wts[c], w)
				next.deg[c] += w
			}
		}
		next.deg[c] += 2 * next.self[c]
		next.m2 += next.deg[c]
	}

	return next
}
