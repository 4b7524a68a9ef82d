package pagerank_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgraph/builder"
	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/pagerank"
)

const eps = 1e-6

func scoreSum(s []float64) float64 {
	var sum float64
	for _, x := range s {
		sum += x
	}
	return sum
}

// TestPageRank_Errors covers input and option validation.
func TestPageRank_Errors(t *testing.T) {
	if _, err := pagerank.PageRank(nil); !errors.Is(err, pagerank.ErrNilView) {
		t.Errorf("nil view: want ErrNilView, got %v", err)
	}
	g, _ := builder.BuildGraph(nil, nil, builder.Ring(4))
	v := g.DenseView()
	if _, err := pagerank.PageRank(v, pagerank.WithDamping(1.5)); !errors.Is(err, pagerank.ErrOptionViolation) {
		t.Errorf("damping 1.5: want ErrOptionViolation, got %v", err)
	}
	if _, err := pagerank.PageRank(v, pagerank.WithPersonalization([]float64{1})); !errors.Is(err, pagerank.ErrBadPersonalization) {
		t.Errorf("short personalization: want ErrBadPersonalization, got %v", err)
	}
	if _, err := pagerank.PageRank(v, pagerank.WithPersonalization([]float64{0, 0, 0, 0})); !errors.Is(err, pagerank.ErrBadPersonalization) {
		t.Errorf("zero personalization: want ErrBadPersonalization, got %v", err)
	}
	if _, err := pagerank.PageRank(v, pagerank.WithPersonalization([]float64{-1, 1, 1, 1})); !errors.Is(err, pagerank.ErrBadPersonalization) {
		t.Errorf("negative personalization: want ErrBadPersonalization, got %v", err)
	}
}

// TestPageRank_RingUniform verifies symmetry: every ring node scores 1/n.
func TestPageRank_RingUniform(t *testing.T) {
	g, _ := builder.BuildGraph(nil, nil, builder.Ring(5))
	res, err := pagerank.PageRank(g.DenseView())
	require.NoError(t, err)

	assert.True(t, res.Converged, "ring should converge quickly")
	assert.InDelta(t, 1.0, scoreSum(res.Scores), eps)
	for i, s := range res.Scores {
		assert.InDelta(t, 0.2, s, eps, "node %d", i)
	}
}

// TestPageRank_StarCenterDominates verifies hub concentration.
func TestPageRank_StarCenterDominates(t *testing.T) {
	g := core.NewGraph()
	for _, leaf := range []string{"B", "C", "D", "E"} {
		g.AddEdge("A", leaf, 1)
	}
	v := g.DenseView()
	res, err := pagerank.PageRank(v)
	require.NoError(t, err)

	a, _ := v.Index("A")
	for i := range res.Scores {
		if i == a {
			continue
		}
		assert.Greater(t, res.Scores[a], res.Scores[i], "center must outrank leaf %s", v.ID(i))
	}
	assert.InDelta(t, 1.0, scoreSum(res.Scores), eps)
}

// TestPageRank_DanglingMass verifies sinks do not leak rank mass.
func TestPageRank_DanglingMass(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1) // C is a sink
	res, err := pagerank.PageRank(g.DenseView())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scoreSum(res.Scores), eps)
}

// TestPageRank_WeightedSplit verifies rank follows edge weight.
func TestPageRank_WeightedSplit(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("S", "Heavy", 9)
	g.AddEdge("S", "Light", 1)
	g.AddEdge("Heavy", "S", 1)
	g.AddEdge("Light", "S", 1)
	v := g.DenseView()
	res, err := pagerank.PageRank(v)
	require.NoError(t, err)

	h, _ := v.Index("Heavy")
	l, _ := v.Index("Light")
	assert.Greater(t, res.Scores[h], res.Scores[l], "heavier in-edge must rank higher")
}

// TestPageRank_Personalized verifies restart bias pulls rank toward the seed.
func TestPageRank_Personalized(t *testing.T) {
	// path 0–1–2–3–4, personalize on node 0
	g := core.NewGraph()
	g.AddEdge("0", "1", 1)
	g.AddEdge("1", "2", 1)
	g.AddEdge("2", "3", 1)
	g.AddEdge("3", "4", 1)
	v := g.DenseView()

	p := make([]float64, v.Len())
	i0, _ := v.Index("0")
	p[i0] = 1
	res, err := pagerank.PageRank(v, pagerank.WithPersonalization(p))
	require.NoError(t, err)

	// proximity decays with distance from the seed
	for d := 1; d < 5; d++ {
		near, _ := v.Index(string(rune('0' + d - 1)))
		far, _ := v.Index(string(rune('0' + d)))
		assert.Greater(t, res.Scores[near], res.Scores[far],
			"score must decay from seed: dist %d vs %d", d-1, d)
	}
	assert.InDelta(t, 1.0, scoreSum(res.Scores), eps)
}

// TestPageRank_IterationBudget verifies the non-converged path.
func TestPageRank_IterationBudget(t *testing.T) {
	g, _ := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(13)},
		builder.ErdosRenyi(60, 0.08))
	res, err := pagerank.PageRank(g.DenseView(),
		pagerank.WithMaxIterations(1),
		pagerank.WithTolerance(1e-15))
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
	assert.InDelta(t, 1.0, scoreSum(res.Scores), eps)
}
