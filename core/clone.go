package core

// CloneEmpty returns a new Graph with identical configuration and vertices,
// but no edges. Feature slices are copied; Metadata maps are shared.
// Complexity: O(V·F) where F is the feature dimension.
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	opts := []GraphOption{WithDirected(g.directed)}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)
	for id, v := range g.vertices {
		nv := &Vertex{ID: v.ID, Metadata: v.Metadata}
		if v.Features != nil {
			nv.Features = append([]float64(nil), v.Features...)
		}
		clone.vertices[id] = nv
		clone.adjacency[id] = make(map[string]string)
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges,
// and adjacency.
// Complexity: O(V·F + E)
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for eid, e := range g.edges {
		ne := &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
		clone.edges[eid] = ne
		clone.adjacency[e.From][e.To] = eid
		if !e.Directed && e.From != e.To {
			clone.adjacency[e.To][e.From] = eid
		}
	}
	clone.nextEdgeID = g.nextEdgeID

	return clone
}
