// Package skipgram learns node embeddings from random-walk corpora with
// skip-gram and negative sampling (SGNS), the word2vec objective applied
// to graphs: nodes co-occurring inside a sliding window over walks are
// pulled together in the embedding space, while sampled negatives are
// pushed apart.
//
// Train consumes the [][]int corpus produced by randomwalk.Corpus and the
// view that generated it, and returns an Embeddings table with cosine
// lookup helpers:
//
//	corpus, _ := randomwalk.Corpus(ctx, view, randomwalk.WithSeed(42))
//	emb, err := skipgram.Train(ctx, view, corpus,
//		skipgram.WithDim(64), skipgram.WithEpochs(3))
//	top, _ := emb.MostSimilar("A", 5)
//
// Determinism: with Workers == 1 and a fixed seed the training run is
// exactly reproducible. With more workers the updates race hogwild-style
// and results vary slightly between runs.
//
// Performance: O(epochs · tokens · window · (1 + negative) · dim).
package skipgram
