package core

import "sort"

// DenseView is an immutable snapshot of a Graph that assigns every vertex a
// dense index in sorted-ID order and exposes neighbor adjacency as parallel
// index/weight slices. All numeric algorithms in lvlgraph consume a
// DenseView instead of the live Graph: the snapshot is lock-free to read,
// deterministic, and stable under concurrent graph mutation.
//
// Invariants:
//   - Index is a bijection between [0,Len) and the vertex set at snapshot time.
//   - Neighbor slices are sorted by target index.
//   - Undirected edges appear in both endpoint rows.
type DenseView struct {
	ids   []string
	index map[string]int

	nbrs [][]int     // per-row neighbor indices, ascending
	wts  [][]float64 // per-row edge weights, parallel to nbrs
	outW []float64   // per-row weight sums

	feats   [][]float64 // per-row feature vectors (nil when the graph has none)
	featDim int

	directed  bool
	edgeCount int
	totalW    float64 // sum of all row weight sums (2m·w̄ for undirected graphs)
}

// DenseView builds a snapshot of the graph's current state.
// Complexity: O(V log V + E log E) due to deterministic ordering.
func (g *Graph) DenseView() *DenseView {
	ids := g.Vertices()

	v := &DenseView{
		ids:      ids,
		index:    make(map[string]int, len(ids)),
		nbrs:     make([][]int, len(ids)),
		wts:      make([][]float64, len(ids)),
		outW:     make([]float64, len(ids)),
		feats:    make([][]float64, len(ids)),
		directed: g.Directed(),
	}
	for i, id := range ids {
		v.index[id] = i
	}

	g.muVert.RLock()
	for i, id := range ids {
		if f := g.vertices[id].Features; f != nil {
			v.feats[i] = append([]float64(nil), f...)
			if len(f) > v.featDim {
				v.featDim = len(f)
			}
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	v.edgeCount = len(g.edges)
	for i, id := range ids {
		row := g.adjacency[id]
		if len(row) == 0 {
			continue
		}
		nbr := make([]int, 0, len(row))
		for to := range row {
			nbr = append(nbr, v.index[to])
		}
		sort.Ints(nbr)
		wt := make([]float64, len(nbr))
		for k, j := range nbr {
			e := g.edges[row[v.ids[j]]]
			wt[k] = e.Weight
			v.outW[i] += e.Weight
		}
		v.nbrs[i] = nbr
		v.wts[i] = wt
		v.totalW += v.outW[i]
	}
	g.muEdgeAdj.RUnlock()

	return v
}

// Len returns the number of vertices in the snapshot.
func (v *DenseView) Len() int { return len(v.ids) }

// ID returns the vertex ID at dense index i.
func (v *DenseView) ID(i int) string { return v.ids[i] }

// IDs returns a copy of all vertex IDs in index order.
func (v *DenseView) IDs() []string { return append([]string(nil), v.ids...) }

// Index returns the dense index of id, and whether it is present.
func (v *DenseView) Index(id string) (int, bool) {
	i, ok := v.index[id]
	return i, ok
}

// NeighborsOf returns the neighbor indices and parallel weights of row i.
// The returned slices are shared with the view and must not be mutated.
func (v *DenseView) NeighborsOf(i int) ([]int, []float64) {
	return v.nbrs[i], v.wts[i]
}

// DegreeOf returns the number of neighbors of row i.
func (v *DenseView) DegreeOf(i int) int { return len(v.nbrs[i]) }

// OutWeight returns the sum of edge weights in row i.
func (v *DenseView) OutWeight(i int) float64 { return v.outW[i] }

// TotalWeight returns the sum of all row weight sums. For undirected graphs
// each edge contributes twice (once per endpoint row).
func (v *DenseView) TotalWeight() float64 { return v.totalW }

// EdgeCount returns the number of distinct edges at snapshot time.
func (v *DenseView) EdgeCount() int { return v.edgeCount }

// Directed reports whether the snapshot came from a directed graph.
func (v *DenseView) Directed() bool { return v.directed }

// HasEdge reports whether row i contains neighbor j.
// Complexity: O(log d) via binary search on the sorted neighbor slice.
func (v *DenseView) HasEdge(i, j int) bool {
	row := v.nbrs[i]
	k := sort.SearchInts(row, j)

	return k < len(row) && row[k] == j
}

// FeatureDim returns the widest feature vector length seen at snapshot
// time, or 0 when no vertex carries features.
func (v *DenseView) FeatureDim() int { return v.featDim }

// FeaturesOf returns the feature vector of row i (nil when unset).
// The slice is shared with the view and must not be mutated.
func (v *DenseView) FeaturesOf(i int) []float64 { return v.feats[i] }
