package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlgraph/builder"
	"github.com/katalvlaran/lvlgraph/core"
)

// TestBuildGraph_Errors rejects nil constructors and propagates sentinels.
func TestBuildGraph_Errors(t *testing.T) {
	if _, err := builder.BuildGraph(nil, nil, nil); !errors.Is(err, builder.ErrConstructFailed) {
		t.Errorf("nil constructor: want ErrConstructFailed, got %v", err)
	}
	if _, err := builder.BuildGraph(nil, nil, builder.Ring(2)); !errors.Is(err, builder.ErrTooFewVertices) {
		t.Errorf("Ring(2): want ErrTooFewVertices, got %v", err)
	}
	if _, err := builder.BuildGraph(nil, nil, builder.ErdosRenyi(5, 1.5)); !errors.Is(err, builder.ErrInvalidProbability) {
		t.Errorf("p=1.5: want ErrInvalidProbability, got %v", err)
	}
	if _, err := builder.BuildGraph(nil, nil, builder.PreferentialAttachment(5, 5)); !errors.Is(err, builder.ErrInvalidDegree) {
		t.Errorf("m=n: want ErrInvalidDegree, got %v", err)
	}
	if _, err := builder.BuildGraph(nil, nil, builder.PlantedPartition(0, 4, 0.5, 0.1)); !errors.Is(err, builder.ErrInvalidBlocks) {
		t.Errorf("0 blocks: want ErrInvalidBlocks, got %v", err)
	}
}

// TestRingCompleteGrid checks exact counts for the classic shapes.
func TestRingCompleteGrid(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Ring(5))
	if err != nil {
		t.Fatal(err)
	}
	if g.VertexCount() != 5 || g.EdgeCount() != 5 {
		t.Errorf("Ring(5): (%d,%d); want (5,5)", g.VertexCount(), g.EdgeCount())
	}

	g, err = builder.BuildGraph(nil, nil, builder.Complete(6))
	if err != nil {
		t.Fatal(err)
	}
	if g.VertexCount() != 6 || g.EdgeCount() != 15 {
		t.Errorf("Complete(6): (%d,%d); want (6,15)", g.VertexCount(), g.EdgeCount())
	}

	g, err = builder.BuildGraph(nil, nil, builder.Grid(3, 4))
	if err != nil {
		t.Fatal(err)
	}
	// 3·4 vertices, 3·3 horizontal + 2·4 vertical edges
	if g.VertexCount() != 12 || g.EdgeCount() != 17 {
		t.Errorf("Grid(3,4): (%d,%d); want (12,17)", g.VertexCount(), g.EdgeCount())
	}
}

// TestErdosRenyi_DeterministicPerSeed verifies the reproducibility contract.
func TestErdosRenyi_DeterministicPerSeed(t *testing.T) {
	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.ErdosRenyi(40, 0.1))
		if err != nil {
			t.Fatal(err)
		}
		return g
	}
	a, b := build(7), build(7)
	if a.EdgeCount() != b.EdgeCount() {
		t.Fatalf("same seed, different edge counts: %d vs %d", a.EdgeCount(), b.EdgeCount())
	}
	for _, e := range a.Edges() {
		if !b.HasEdge(e.From, e.To) {
			t.Fatalf("same seed, edge %s→%s missing in second build", e.From, e.To)
		}
	}

	// extreme probabilities
	empty := func() *core.Graph {
		g, _ := builder.BuildGraph(nil, nil, builder.ErdosRenyi(10, 0))
		return g
	}()
	if empty.EdgeCount() != 0 {
		t.Errorf("p=0: EdgeCount = %d; want 0", empty.EdgeCount())
	}
	full, _ := builder.BuildGraph(nil, nil, builder.ErdosRenyi(10, 1))
	if full.EdgeCount() != 45 {
		t.Errorf("p=1: EdgeCount = %d; want 45", full.EdgeCount())
	}
}

// TestPreferentialAttachment checks size, connectivity seed, and hub growth.
func TestPreferentialAttachment(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(3)},
		builder.PreferentialAttachment(50, 2))
	if err != nil {
		t.Fatal(err)
	}
	if g.VertexCount() != 50 {
		t.Fatalf("VertexCount = %d; want 50", g.VertexCount())
	}
	// seed path has 2 edges; each of the 47 later vertices adds exactly 2
	if want := 2 + 47*2; g.EdgeCount() != want {
		t.Errorf("EdgeCount = %d; want %d", g.EdgeCount(), want)
	}
	// every non-seed vertex has degree ≥ m
	for _, id := range g.Vertices() {
		d, _ := g.Degree(id)
		if d < 2 {
			t.Errorf("vertex %s degree %d; want ≥ 2", id, d)
		}
	}
}

// TestPlantedPartition checks sizes, ID scheme, and density ordering.
func TestPlantedPartition(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(11)},
		builder.PlantedPartition(3, 20, 0.6, 0.02))
	if err != nil {
		t.Fatal(err)
	}
	if g.VertexCount() != 60 {
		t.Fatalf("VertexCount = %d; want 60", g.VertexCount())
	}

	var intra, inter int
	for _, e := range g.Edges() {
		bf, err1 := builder.BlockOf(e.From)
		bt, err2 := builder.BlockOf(e.To)
		if err1 != nil || err2 != nil {
			t.Fatalf("BlockOf failed on %s/%s", e.From, e.To)
		}
		if bf == bt {
			intra++
		} else {
			inter++
		}
	}
	if intra <= inter {
		t.Errorf("intra=%d inter=%d; want intra-dominant structure", intra, inter)
	}

	if _, err = builder.BlockOf("nonsense"); !errors.Is(err, builder.ErrConstructFailed) {
		t.Errorf("BlockOf(nonsense): want ErrConstructFailed, got %v", err)
	}
}

// TestKarateClub checks the fixture's canonical shape and faction labels.
func TestKarateClub(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.KarateClub())
	if err != nil {
		t.Fatal(err)
	}
	if g.VertexCount() != 34 || g.EdgeCount() != 78 {
		t.Fatalf("karate club: (%d,%d); want (34,78)", g.VertexCount(), g.EdgeCount())
	}
	// node 1 is the instructor, node 34 the administrator
	if f, _ := builder.KarateFaction("1"); f != 0 {
		t.Errorf("faction(1) = %d; want 0", f)
	}
	if f, _ := builder.KarateFaction("34"); f != 1 {
		t.Errorf("faction(34) = %d; want 1", f)
	}
	if meta := g.Metadata("34"); meta[builder.FactionKey] != 1 {
		t.Errorf("metadata faction(34) = %v; want 1", meta[builder.FactionKey])
	}
	if _, err = builder.KarateFaction("99"); !errors.Is(err, builder.ErrConstructFailed) {
		t.Errorf("faction(99): want ErrConstructFailed, got %v", err)
	}
	// the two leaders are not directly connected
	if g.HasEdge("1", "34") {
		t.Error("unexpected edge between 1 and 34")
	}
}
