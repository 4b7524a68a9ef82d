// Package contrast learns self-supervised node embeddings by contrasting
// two stochastic corruptions of the same graph, in the style of GRACE
// (Zhu et al., 2020). Each epoch draws two views — random edge dropout
// plus feature-dimension masking — encodes both with a shared linear
// propagation layer Z = Â·X·W, and minimizes the symmetric InfoNCE loss:
// a node's two encodings attract, everything else in the opposite view
// repels, scaled by a temperature.
//
// No labels are involved; the geometry comes entirely from the graph
// structure surviving both corruptions.
//
//	emb, err := contrast.Learn(view,
//		contrast.WithDim(64), contrast.WithSeed(42))
//	top, _ := emb.MostSimilar("A", 5)
//
// The result is a skipgram.Embeddings table (rows L2-normalized), so
// downstream similarity tooling is shared with the random-walk pipeline.
package contrast
