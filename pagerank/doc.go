// Package pagerank computes PageRank scores over a core.DenseView by power
// iteration, with damping, convergence tolerance, weighted edges, and an
// optional personalization (restart) distribution.
//
// The iteration pushes rank mass along out-edges proportionally to edge
// weight; dangling nodes (no outgoing weight) redistribute their mass
// through the restart distribution, so the score vector always sums to 1.
//
// ⚙️ Usage:
//
//	res, err := pagerank.PageRank(view,
//	    pagerank.WithDamping(0.85),
//	    pagerank.WithTolerance(1e-9),
//	)
//	// res.Scores[i] is the rank of view.ID(i)
//
// Personalized PageRank (random walk with restart in its stationary form)
// is the same call with WithPersonalization biasing the restart mass.
//
// Performance: O(iterations · (V + E)) time, O(V) extra space.
package pagerank
