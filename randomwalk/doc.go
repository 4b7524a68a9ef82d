// Package randomwalk generates random walks over a core.DenseView: plain
// weighted walks, node2vec-biased second-order walks, whole-graph walk
// corpora for embedding trainers, and random-walk-with-restart proximity
// vectors.
//
// 🚀 Walks in three flavors:
//
//   - Walk: one walk from one start node. With the default bias (p=q=1)
//     every step picks a neighbor proportionally to edge weight; with
//     WithPQ the step distribution follows node2vec's return (p) and
//     in-out (q) parameters.
//   - Corpus: WalksPerNode walks from every node, generated in parallel
//     across Workers goroutines. Each walk draws from its own RNG stream
//     derived from the base seed, so the corpus is identical for a fixed
//     seed regardless of worker count.
//   - RandomWalkWithRestart: visit-frequency proximity from a start node,
//     restarting with probability Restart at every step.
//
// Determinism: seed 0 resolves to a stable default; per-walk streams are
// derived with a SplitMix64-style mix.
//
// Performance:
//
//   - Walk:   O(length · d) where d is the mean degree
//   - Corpus: O(n · WalksPerNode · length · d / Workers) wall-clock
package randomwalk
