// Command lvlgraph trains node2vec-style embeddings from an edge-list file
// and writes them in word2vec text format (gzipped when the output path
// ends in ".gz").
//
// Input format: one edge per line, "from to [weight]", '#' starts a
// comment. Vertices appear implicitly through their edges.
//
// Example:
//
//	lvlgraph -input edges.txt -output nodes.emb.gz \
//	    -dim 128 -walks 10 -length 40 -p 1 -q 0.5 -workers 8 -seed 42
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/embedio"
	"github.com/katalvlaran/lvlgraph/randomwalk"
	"github.com/katalvlaran/lvlgraph/skipgram"
)

func main() {
	var (
		input    = flag.String("input", "", "edge-list file (from to [weight] per line)")
		output   = flag.String("output", "embeddings.emb", "output path; .gz enables compression")
		directed = flag.Bool("directed", false, "treat edges as directed arcs")
		dim      = flag.Int("dim", skipgram.DefaultDim, "embedding dimensionality")
		walks    = flag.Int("walks", randomwalk.DefaultWalksPerNode, "walks per node")
		length   = flag.Int("length", randomwalk.DefaultWalkLength, "steps per walk")
		window   = flag.Int("window", skipgram.DefaultWindow, "skip-gram context window")
		epochs   = flag.Int("epochs", skipgram.DefaultEpochs, "training passes over the corpus")
		negative = flag.Int("negative", skipgram.DefaultNegative, "negative samples per pair")
		p        = flag.Float64("p", 1, "node2vec return parameter")
		q        = flag.Float64("q", 1, "node2vec in-out parameter")
		workers  = flag.Int("workers", 4, "concurrent walkers and trainers")
		seed     = flag.Int64("seed", 0, "RNG seed (0 = stable default)")
	)
	flag.Parse()
	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}
	log.SetFlags(0)
	log.SetPrefix("lvlgraph: ")

	g, err := loadEdgeList(*input, *directed)
	if err != nil {
		log.Fatal(err)
	}
	v := g.DenseView()
	log.Printf("loaded %s: %d vertices, %d edges", *input, v.Len(), v.EdgeCount())

	ctx := context.Background()
	start := time.Now()
	corpus, err := randomwalk.Corpus(ctx, v,
		randomwalk.WithWalksPerNode(*walks),
		randomwalk.WithWalkLength(*length),
		randomwalk.WithPQ(*p, *q),
		randomwalk.WithSeed(*seed),
		randomwalk.WithWorkers(*workers))
	if err != nil {
		log.Fatalf("corpus: %v", err)
	}
	walkTime := time.Since(start)

	start = time.Now()
	emb, err := skipgram.Train(ctx, v, corpus,
		skipgram.WithDim(*dim),
		skipgram.WithWindow(*window),
		skipgram.WithEpochs(*epochs),
		skipgram.WithNegative(*negative),
		skipgram.WithSeed(*seed),
		skipgram.WithWorkers(*workers))
	if err != nil {
		log.Fatalf("train: %v", err)
	}
	trainTime := time.Since(start)

	if err = embedio.Save(*output, emb); err != nil {
		log.Fatalf("save: %v", err)
	}
	log.Printf("walks %v, training %v", walkTime.Round(time.Millisecond), trainTime.Round(time.Millisecond))
	log.Printf("wrote %d×%d embeddings to %s", emb.Len(), emb.Dim(), *output)
}

// loadEdgeList parses "from to [weight]" lines; '#' starts a comment and
// blank lines are skipped.
func loadEdgeList(path string, directed bool) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var gopts []core.GraphOption
	if directed {
		gopts = append(gopts, core.WithDirected(true))
	}
	g := core.NewGraph(gopts...)

	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 && len(fields) != 3 {
			return nil, fmt.Errorf("%s:%d: want \"from to [weight]\", got %q", path, line, sc.Text())
		}
		weight := 1.0
		if len(fields) == 3 {
			if weight, err = strconv.ParseFloat(fields[2], 64); err != nil {
				return nil, fmt.Errorf("%s:%d: bad weight %q: %w", path, line, fields[2], err)
			}
		}
		if _, err = g.AddEdge(fields[0], fields[1], weight); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return g, nil
}
