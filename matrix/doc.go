// Package matrix adapts core.DenseView snapshots into gonum dense matrices
// and the derived operators the learning algorithms consume:
//
//   - Adjacency: the raw weighted adjacency matrix A
//   - Degrees: per-row weight sums
//   - NormalizedAdjacency: Â = D̃^{-1/2}(A+I)D̃^{-1/2}, the GCN propagation
//     operator with self-loops
//   - Transition: the row-stochastic random-walk matrix P (dangling rows
//     stay zero)
//   - FeatureMatrix: the n×d node-feature matrix X, falling back to identity
//     (one-hot) features when the graph carries none
//
// Numeric policy: vertex order is the DenseView order
// (sorted IDs), so every adapter is deterministic for a fixed snapshot.
// Weights are validated as finite at core ingestion; adapters never emit
// NaN/Inf.
package matrix
