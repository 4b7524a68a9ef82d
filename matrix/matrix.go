package matrix

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlgraph/core"
)

// ErrNilView is returned when an adapter receives a nil or empty view.
var ErrNilView = errors.New("matrix: nil or empty dense view")

// Adjacency returns the weighted adjacency matrix of the snapshot.
// For undirected graphs the result is symmetric by construction.
// Complexity: O(V² ) allocation + O(E) fill.
func Adjacency(v *core.DenseView) (*mat.Dense, error) {
	if v == nil || v.Len() == 0 {
		return nil, ErrNilView
	}
	n := v.Len()
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		nbr, wts := v.NeighborsOf(i)
		for k, j := range nbr {
			a.Set(i, j, wts[k])
		}
	}

	return a, nil
}

// Degrees returns the per-row weight sums of the snapshot.
// Complexity: O(V).
func Degrees(v *core.DenseView) ([]float64, error) {
	if v == nil || v.Len() == 0 {
		return nil, ErrNilView
	}
	d := make([]float64, v.Len())
	for i := range d {
		d[i] = v.OutWeight(i)
	}

	return d, nil
}

// NormalizedAdjacency returns Â = D̃^{-1/2}(A+I)D̃^{-1/2} where D̃ is the
// degree matrix of A+I. This is the symmetric propagation operator used by
// graph-convolution layers; the added self-loop keeps every row non-empty.
// Complexity: O(V²).
func NormalizedAdjacency(v *core.DenseView) (*mat.Dense, error) {
	a, err := Adjacency(v)
	if err != nil {
		return nil, err
	}
	n := v.Len()
	// A + I
	for i := 0; i < n; i++ {
		a.Set(i, i, a.At(i, i)+1)
	}
	// D̃^{-1/2}
	invSqrt := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += a.At(i, j)
		}
		invSqrt[i] = 1 / math.Sqrt(sum)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, a.At(i, j)*invSqrt[i]*invSqrt[j])
		}
	}

	return a, nil
}

// Transition returns the row-stochastic random-walk matrix P with
// P[i][j] = w(i,j)/outWeight(i). Dangling rows (no outgoing weight) are
// left all-zero; PageRank treats them via restart redistribution.
// Complexity: O(V²).
func Transition(v *core.DenseView) (*mat.Dense, error) {
	if v == nil || v.Len() == 0 {
		return nil, ErrNilView
	}
	n := v.Len()
	p := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		out := v.OutWeight(i)
		if out == 0 {
			continue
		}
		nbr, wts := v.NeighborsOf(i)
		for k, j := range nbr {
			p.Set(i, j, wts[k]/out)
		}
	}

	return p, nil
}

// FeatureMatrix returns the n×d node-feature matrix X. When the snapshot
// carries no features at all, identity (one-hot) features are substituted
// (d = n). Vertices with missing or short feature rows are zero-padded.
// Complexity: O(V·d).
func FeatureMatrix(v *core.DenseView) (*mat.Dense, error) {
	if v == nil || v.Len() == 0 {
		return nil, ErrNilView
	}
	n := v.Len()
	d := v.FeatureDim()
	if d == 0 {
		x := mat.NewDense(n, n, nil)
		for i := 0; i < n; i++ {
			x.Set(i, i, 1)
		}
		return x, nil
	}
	x := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for k, val := range v.FeaturesOf(i) {
			if k >= d {
				break
			}
			x.Set(i, k, val)
		}
	}

	return x, nil
}
