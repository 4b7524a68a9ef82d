// Package lvlgraph is an in-memory playground for graph representation
// learning — from random-walk node embeddings to graph-convolution training
// and classic link-analysis algorithms.
//
// 🚀 What is lvlgraph?
//
//	A thread-safe library that brings together:
//		• Core primitives: vertices, weighted edges, feature vectors, dense views
//		• Builders: deterministic random graphs (Erdős–Rényi, preferential
//		  attachment, planted partitions) and classic fixtures (karate club)
//		• Matrix adapters: adjacency, normalized propagation and transition
//		  operators on gonum dense matrices
//		• Random walks: uniform, node2vec-biased, and restart proximity
//		• Embeddings: skip-gram with negative sampling (DeepWalk / node2vec)
//		• GCN: two-layer graph convolution for node classification and
//		  link prediction
//		• Contrastive: self-supervised two-view embedding training
//		• Communities: Louvain modularity optimization
//		• Ranking: PageRank with personalization
//
// ✨ Why choose lvlgraph?
//
//   - Deterministic by policy – every stochastic component takes an explicit seed
//   - Rock-solid guarantees – R/W locks on the core, sentinel errors, no panics
//   - Composable – every algorithm consumes the same core.DenseView snapshot
//
// Everything is organized under focused subpackages:
//
//	core/       — Graph, Vertex, Edge types, thread-safe primitives, DenseView
//	builder/    — deterministic topology constructors for experiments
//	matrix/     — graph → gonum matrix adapters
//	randomwalk/ — walks, walk corpora, random walk with restart
//	pagerank/   — power-iteration PageRank
//	louvain/    — modularity community detection
//	skipgram/   — skip-gram negative-sampling embedding trainer
//	gcn/        — graph convolutional networks (classification, link prediction)
//	contrast/   — contrastive self-supervised embeddings
//	embedio/    — embedding table persistence (word2vec text, optional gzip)
//
// Dive into examples/ for runnable end-to-end experiments.
//
//	go get github.com/katalvlaran/lvlgraph
package lvlgraph
