// Package core: thread-safe Graph method implementations.
//
// This file provides O(1) (amortized) operations for vertex and edge
// management on the Graph type defined in types.go. We leverage separate
// RWMutex locks for vertices (muVert) and edges+adjacency (muEdgeAdj) to
// minimize contention. Adjacency is stored as adjacency[from][to] = edgeID,
// allowing constant-time existence, insertion, and deletion of edges.

package core

import (
	"fmt"
	"math"
	"sort"
)

const edgeIDPrefix = "e"

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	g.ensureAdjRow(id)
	g.muEdgeAdj.Unlock()

	return nil
}

// AddVertexWithFeatures inserts a vertex carrying a feature vector.
// The slice is copied. Returns ErrBadFeatures on NaN/Inf entries.
// If the vertex exists, only its features are replaced.
// Complexity: O(len(features)).
func (g *Graph) AddVertexWithFeatures(id string, features []float64) error {
	if err := g.AddVertex(id); err != nil {
		return err
	}

	return g.SetFeatures(id, features)
}

// SetFeatures replaces the feature vector of an existing vertex.
// Returns ErrVertexNotFound or ErrBadFeatures.
// Complexity: O(len(features)).
func (g *Graph) SetFeatures(id string, features []float64) error {
	for _, v := range features {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrBadFeatures
		}
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Features = append([]float64(nil), features...)

	return nil
}

// Features returns a copy of the vertex's feature vector (nil if unset).
// Complexity: O(len(features)).
func (g *Graph) Features(id string) ([]float64, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	if v.Features == nil {
		return nil, nil
	}

	return append([]float64(nil), v.Features...), nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// RemoveVertex deletes the vertex and all incident edges from the graph.
// Returns ErrEmptyVertexID if id is empty, ErrVertexNotFound if absent.
// Complexity: O(E) worst case (incident-edge scan).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			g.removeEdgeFromAdj(e)
			delete(g.edges, eid)
		}
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// AddEdge creates (or overwrites) the edge from 'from' to 'to' with the
// given weight and returns its Edge.ID. Endpoints are created as needed.
// For undirected graphs the adjacency is mirrored both ways.
//
// Returns ErrEmptyVertexID, ErrBadWeight, or ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// Collapse parallel edges: an existing edge just takes the new weight.
	if eid, ok := g.adjacency[from][to]; ok {
		g.edges[eid].Weight = weight
		return eid, nil
	}

	g.nextEdgeID++
	eid := fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	g.edges[eid] = e

	g.ensureAdjRow(from)
	g.adjacency[from][to] = eid
	if !e.Directed && from != to {
		g.ensureAdjRow(to)
		g.adjacency[to][from] = eid
	}

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID (and its mirror).
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	g.removeEdgeFromAdj(e)

	return nil
}

// HasEdge reports true if an edge from 'from' to 'to' exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// EdgeWeight returns the weight of the edge from 'from' to 'to'.
// Returns ErrEdgeNotFound if the endpoints are not connected.
// Complexity: O(1).
func (g *Graph) EdgeWeight(from, to string) (float64, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacency[from][to]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return g.edges[eid].Weight, nil
}

// Neighbors returns all edges incident to vertex 'id'.
// For directed edges, returns outgoing only; for undirected, both directions.
// Result is sorted by Edge.ID for determinism.
// Complexity: O(d log d), where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	for _, eid := range g.adjacency[id] {
		e := g.edges[eid]
		if e.Directed && e.From != id {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the IDs of all vertices adjacent to id, sorted.
// Complexity: O(d log d)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
		} else if !e.Directed && e.To == id {
			seen[e.From] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// Degree returns the number of vertices adjacent to id.
// Complexity: O(d log d)
func (g *Graph) Degree(id string) (int, error) {
	ids, err := g.NeighborIDs(id)
	if err != nil {
		return 0, err
	}

	return len(ids), nil
}

// WeightedDegree returns the sum of weights of edges incident to id
// (outgoing for directed graphs).
// Complexity: O(d log d)
func (g *Graph) WeightedDegree(id string) (float64, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, e := range edges {
		sum += e.Weight
	}

	return sum, nil
}

// Edges returns all edges sorted by their ID.
// Complexity: O(E·logE)
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V·logV)
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Directed reports whether edges are directed.
func (g *Graph) Directed() bool {
	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	return g.allowLoops
}

// Metadata returns the live metadata map of the vertex (nil if absent).
func (g *Graph) Metadata(id string) map[string]interface{} {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if v, ok := g.vertices[id]; ok {
		return v.Metadata
	}

	return nil
}

// Clear resets the graph to an empty state but preserves flags.
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]string)
	g.nextEdgeID = 0
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}

// FilterEdges removes all edges failing the predicate.
// Complexity: O(E)
func (g *Graph) FilterEdges(pred func(*Edge) bool) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	for eid, e := range g.edges {
		if !pred(e) {
			g.removeEdgeFromAdj(e)
			delete(g.edges, eid)
		}
	}
}

// Internal helper methods:
////////////////////

// ensureAdjRow makes adjacency[id] non-nil.
func (g *Graph) ensureAdjRow(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]string)
	}
}

// removeEdgeFromAdj deletes e from both directions if needed.
func (g *Graph) removeEdgeFromAdj(e *Edge) {
	if row := g.adjacency[e.From]; row != nil {
		delete(row, e.To)
	}
	if !e.Directed && e.From != e.To {
		if row := g.adjacency[e.To]; row != nil {
			delete(row, e.From)
		}
	}
}
