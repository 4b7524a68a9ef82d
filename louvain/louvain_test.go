package louvain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgraph/builder"
	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/louvain"
)

// TestLouvain_Errors covers input and option validation.
func TestLouvain_Errors(t *testing.T) {
	if _, err := louvain.Louvain(nil); !errors.Is(err, louvain.ErrNilView) {
		t.Errorf("nil view: want ErrNilView, got %v", err)
	}

	d := core.NewGraph(core.WithDirected(true))
	d.AddEdge("A", "B", 1)
	if _, err := louvain.Louvain(d.DenseView()); !errors.Is(err, louvain.ErrDirectedView) {
		t.Errorf("directed view: want ErrDirectedView, got %v", err)
	}

	g, _ := builder.BuildGraph(nil, nil, builder.Ring(4))
	v := g.DenseView()
	if _, err := louvain.Louvain(v, louvain.WithMaxLevels(0)); !errors.Is(err, louvain.ErrOptionViolation) {
		t.Errorf("MaxLevels 0: want ErrOptionViolation, got %v", err)
	}
	if _, err := louvain.Louvain(v, louvain.WithResolution(-1)); !errors.Is(err, louvain.ErrOptionViolation) {
		t.Errorf("negative resolution: want ErrOptionViolation, got %v", err)
	}
	if _, err := louvain.Modularity(v, []int{0}, 1); !errors.Is(err, louvain.ErrOptionViolation) {
		t.Errorf("short labels: want ErrOptionViolation, got %v", err)
	}
}

// TestLouvain_PartitionInvariants verifies compact labels and bitmap
// coverage on a random graph.
func TestLouvain_PartitionInvariants(t *testing.T) {
	g, _ := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(7)},
		builder.ErdosRenyi(80, 0.06))
	v := g.DenseView()
	part, err := louvain.Louvain(v, louvain.WithSeed(7))
	require.NoError(t, err)

	require.Len(t, part.Labels, v.Len())
	k := len(part.Communities)
	covered := 0
	for c, bm := range part.Communities {
		require.Positive(t, bm.GetCardinality(), "community %d must not be empty", c)
		covered += int(bm.GetCardinality())
	}
	assert.Equal(t, v.Len(), covered, "bitmaps must cover every node exactly once")
	for i, c := range part.Labels {
		require.GreaterOrEqual(t, c, 0)
		require.Less(t, c, k)
		assert.True(t, part.Communities[c].Contains(uint32(i)),
			"node %d missing from its community bitmap", i)
	}
}

// TestLouvain_TwoCliques verifies that two cliques joined by one bridge
// edge split into exactly their two cliques.
func TestLouvain_TwoCliques(t *testing.T) {
	g := core.NewGraph()
	left := []string{"a", "b", "c", "d", "e"}
	right := []string{"v", "w", "x", "y", "z"}
	for _, side := range [][]string{left, right} {
		for i := 0; i < len(side); i++ {
			for j := i + 1; j < len(side); j++ {
				g.AddEdge(side[i], side[j], 1)
			}
		}
	}
	g.AddEdge("a", "z", 1)

	v := g.DenseView()
	part, err := louvain.Louvain(v)
	require.NoError(t, err)

	require.Len(t, part.Communities, 2, "expected exactly the two cliques")
	li, _ := v.Index("a")
	for _, id := range left[1:] {
		i, _ := v.Index(id)
		assert.True(t, part.Together(li, i), "left clique split apart at %s", id)
	}
	ri, _ := v.Index("z")
	for _, id := range right[:len(right)-1] {
		i, _ := v.Index(id)
		assert.True(t, part.Together(ri, i), "right clique split apart at %s", id)
	}
	assert.False(t, part.Together(li, ri), "bridge endpoints must separate")
	assert.Greater(t, part.Modularity, 0.3)
}

// TestLouvain_PlantedPartition verifies recovery of dense planted blocks.
func TestLouvain_PlantedPartition(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(11)},
		builder.PlantedPartition(3, 20, 0.7, 0.02))
	require.NoError(t, err)

	v := g.DenseView()
	part, err := louvain.Louvain(v, louvain.WithSeed(11))
	require.NoError(t, err)

	// Every planted block should land (almost) entirely in one community;
	// count agreements between block membership and detected labels.
	blocks := make([]int, v.Len())
	for i := range blocks {
		blocks[i], err = builder.BlockOf(v.ID(i))
		require.NoError(t, err)
	}
	agree := 0
	for i := 0; i < v.Len(); i++ {
		for j := i + 1; j < v.Len(); j++ {
			sameBlock := blocks[i] == blocks[j]
			if sameBlock == part.Together(i, j) {
				agree++
			}
		}
	}
	pairs := v.Len() * (v.Len() - 1) / 2
	assert.Greater(t, float64(agree)/float64(pairs), 0.9,
		"pairwise agreement with planted blocks too low")
	assert.Greater(t, part.Modularity, 0.4)
}

// TestLouvain_KarateClub sanity-checks modularity and community count on
// the classic 34-node club.
func TestLouvain_KarateClub(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.KarateClub())
	require.NoError(t, err)

	part, err := louvain.Louvain(g.DenseView(), louvain.WithSeed(3))
	require.NoError(t, err)

	assert.Greater(t, part.Modularity, 0.3, "club modularity is known to exceed 0.3")
	assert.GreaterOrEqual(t, len(part.Communities), 2)
	assert.LessOrEqual(t, len(part.Communities), 6)
	assert.GreaterOrEqual(t, part.Levels, 1)
}

// TestLouvain_SeedDeterminism verifies a fixed seed replays the partition.
func TestLouvain_SeedDeterminism(t *testing.T) {
	g, _ := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(5)},
		builder.ErdosRenyi(60, 0.08))
	v := g.DenseView()

	a, err := louvain.Louvain(v, louvain.WithSeed(42))
	require.NoError(t, err)
	b, err := louvain.Louvain(v, louvain.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, a.Labels, b.Labels)
	assert.InDelta(t, a.Modularity, b.Modularity, 1e-12)
}

// TestModularity_SingletonVsWhole checks the two degenerate assignments.
func TestModularity_SingletonVsWhole(t *testing.T) {
	g, _ := builder.BuildGraph(nil, nil, builder.Complete(6))
	v := g.DenseView()

	whole := make([]int, v.Len())
	q, err := louvain.Modularity(v, whole, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, q, 1e-12, "one big community scores zero")

	singles := make([]int, v.Len())
	for i := range singles {
		singles[i] = i
	}
	q, err = louvain.Modularity(v, singles, 1)
	require.NoError(t, err)
	assert.Negative(t, q, "all-singletons must score below zero on a clique")
}
