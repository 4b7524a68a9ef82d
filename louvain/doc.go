// Package louvain detects communities in a core.DenseView by Louvain
// modularity optimization: a greedy local-move phase assigns each node to
// the neighboring community with the best modularity gain, then the
// partition is aggregated into a supergraph and the process repeats until
// no level improves.
//
// The result is a Partition: one compact label per dense index, community
// member sets as roaring bitmaps, and the weighted modularity of the final
// assignment.
//
// ⚙️ Usage:
//
//	part, err := louvain.Louvain(view, louvain.WithSeed(42))
//	fmt.Println(len(part.Communities), part.Modularity)
//
// Determinism: the node sweep order is shuffled from the seeded RNG, so a
// fixed seed replays the identical partition.
//
// Performance: near-linear in E per level in practice; levels are bounded
// by MaxLevels.
package louvain
