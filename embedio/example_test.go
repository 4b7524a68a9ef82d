package embedio_test

import (
	"log"
	"os"

	"github.com/katalvlaran/lvlgraph/embedio"
	"github.com/katalvlaran/lvlgraph/skipgram"
)

// ExampleWrite streams a tiny table in word2vec text format.
func ExampleWrite() {
	emb, err := skipgram.NewEmbeddings(
		[]string{"a", "b"},
		[][]float64{{1, 0}, {0, 1}})
	if err != nil {
		log.Fatal(err)
	}
	if err = embedio.Write(os.Stdout, emb); err != nil {
		log.Fatal(err)
	}
	// Output:
	// 2 2
	// a 1 0
	// b 0 1
}
