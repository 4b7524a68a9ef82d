// Package embedio persists embedding tables in the word2vec text format:
// a "count dim" header line followed by one "id v1 v2 … vdim" line per
// vertex. The format is interoperable with gensim's KeyedVectors and
// the original word2vec distance tooling.
//
// Save and Load transparently gzip-compress when the path ends in ".gz";
// Write and Read work on raw streams for callers that manage their own
// transport.
//
//	if err := embedio.Save("karate.emb.gz", emb); err != nil { … }
//	emb, err := embedio.Load("karate.emb.gz")
//
// Vertex IDs must not contain whitespace; Save rejects them up front
// rather than producing a file Load cannot parse.
package embedio
