package core_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/lvlgraph/core"
)

// TestDenseView_IndexBijection verifies the sorted-ID index assignment.
func TestDenseView_IndexBijection(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("C", "A", 1)
	g.AddEdge("A", "B", 1)

	v := g.DenseView()
	if v.Len() != 3 {
		t.Fatalf("Len = %d; want 3", v.Len())
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(v.IDs(), want) {
		t.Errorf("IDs = %v; want %v", v.IDs(), want)
	}
	for i := 0; i < v.Len(); i++ {
		j, ok := v.Index(v.ID(i))
		if !ok || j != i {
			t.Errorf("Index(ID(%d)) = (%d,%v); want (%d,true)", i, j, ok, i)
		}
	}
	if _, ok := v.Index("Z"); ok {
		t.Error("Index(Z) reported present")
	}
}

// TestDenseView_NeighborsSortedMirrored checks row contents and mirroring.
func TestDenseView_NeighborsSortedMirrored(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "C", 3)
	g.AddEdge("A", "B", 2)

	v := g.DenseView()
	a, _ := v.Index("A")
	nbr, wts := v.NeighborsOf(a)
	b, _ := v.Index("B")
	c, _ := v.Index("C")
	if want := []int{b, c}; !reflect.DeepEqual(nbr, want) {
		t.Errorf("NeighborsOf(A) = %v; want %v", nbr, want)
	}
	if want := []float64{2, 3}; !reflect.DeepEqual(wts, want) {
		t.Errorf("weights = %v; want %v", wts, want)
	}
	// undirected mirror rows
	if !v.HasEdge(b, a) || !v.HasEdge(c, a) {
		t.Error("mirror rows missing for undirected edges")
	}
	if v.HasEdge(b, c) {
		t.Error("HasEdge(B,C) reported true")
	}
	if got := v.OutWeight(a); got != 5 {
		t.Errorf("OutWeight(A) = %v; want 5", got)
	}
	// each undirected edge counted once per endpoint row
	if got := v.TotalWeight(); got != 10 {
		t.Errorf("TotalWeight = %v; want 10", got)
	}
	if v.EdgeCount() != 2 {
		t.Errorf("EdgeCount = %d; want 2", v.EdgeCount())
	}
}

// TestDenseView_Directed verifies one-way rows for directed graphs.
func TestDenseView_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("A", "B", 1)
	v := g.DenseView()
	if !v.Directed() {
		t.Error("Directed() = false")
	}
	a, _ := v.Index("A")
	b, _ := v.Index("B")
	if !v.HasEdge(a, b) || v.HasEdge(b, a) {
		t.Error("directed adjacency wrong")
	}
	if v.DegreeOf(b) != 0 {
		t.Errorf("DegreeOf(B) = %d; want 0", v.DegreeOf(b))
	}
}

// TestDenseView_Features verifies the feature snapshot.
func TestDenseView_Features(t *testing.T) {
	g := core.NewGraph()
	g.AddVertexWithFeatures("A", []float64{1, 2})
	g.AddVertex("B")
	v := g.DenseView()
	if v.FeatureDim() != 2 {
		t.Errorf("FeatureDim = %d; want 2", v.FeatureDim())
	}
	a, _ := v.Index("A")
	b, _ := v.Index("B")
	if want := []float64{1, 2}; !reflect.DeepEqual(v.FeaturesOf(a), want) {
		t.Errorf("FeaturesOf(A) = %v; want %v", v.FeaturesOf(a), want)
	}
	if v.FeaturesOf(b) != nil {
		t.Errorf("FeaturesOf(B) = %v; want nil", v.FeaturesOf(b))
	}
}

// TestDenseView_StableUnderMutation ensures later graph edits do not leak in.
func TestDenseView_StableUnderMutation(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	v := g.DenseView()
	g.AddEdge("A", "C", 1)
	if v.Len() != 2 {
		t.Errorf("snapshot grew: Len = %d; want 2", v.Len())
	}
	a, _ := v.Index("A")
	if v.DegreeOf(a) != 1 {
		t.Errorf("snapshot row changed: DegreeOf(A) = %d; want 1", v.DegreeOf(a))
	}
}
