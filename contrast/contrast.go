package contrast

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/matrix"
	"github.com/katalvlaran/lvlgraph/skipgram"
)

// defaultSeed keeps seed 0 deterministic.
const defaultSeed = 1

// Learn trains contrastive node embeddings on the view and returns them
// as an L2-normalized skipgram.Embeddings table.
// Returns ErrNilView or ErrOptionViolation. A fixed seed reproduces the
// run exactly.
// Complexity: O(epochs · V²·dim).
func Learn(v *core.DenseView, opts ...Option) (*skipgram.Embeddings, error) {
	if v == nil || v.Len() == 0 {
		return nil, ErrNilView
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	seed := o.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	x, err := matrix.FeatureMatrix(v)
	if err != nil {
		return nil, ErrNilView
	}
	n, f := x.Dims()

	w := glorot(f, o.Dim, rng)
	for epoch := 0; epoch < o.Epochs; epoch++ {
		ax1 := propagated(v, x, &o, rng)
		ax2 := propagated(v, x, &o, rng)

		_, u1, norm1 := encode(ax1, w)
		_, u2, norm2 := encode(ax2, w)

		// S[i][j] = uᵢ·u'ⱼ / τ
		s := &mat.Dense{}
		s.Mul(u1, u2.T())
		s.Scale(1/o.Temperature, s)

		// symmetric InfoNCE gradient on S: rows are the 1→2 direction,
		// columns the 2→1 direction, diagonal entries are the positives
		ds := mat.NewDense(n, n, nil)
		addSoftmaxGrad(ds, s, false, 1/float64(2*n))
		addSoftmaxGrad(ds, s, true, 1/float64(2*n))

		du1 := &mat.Dense{}
		du1.Mul(ds, u2)
		du1.Scale(1/o.Temperature, du1)
		du2 := &mat.Dense{}
		du2.Mul(ds.T(), u1)
		du2.Scale(1/o.Temperature, du2)

		dz1 := normBackward(du1, u1, norm1)
		dz2 := normBackward(du2, u2, norm2)

		dw := &mat.Dense{}
		dw.Mul(ax1.T(), dz1)
		tmp := &mat.Dense{}
		tmp.Mul(ax2.T(), dz2)
		dw.Add(dw, tmp)

		wd := w.RawMatrix().Data
		gd := dw.RawMatrix().Data
		for i := range wd {
			wd[i] -= o.LearningRate * gd[i]
		}
	}

	// final pass on the clean graph
	ahat, err := matrix.NormalizedAdjacency(v)
	if err != nil {
		return nil, ErrNilView
	}
	ax := &mat.Dense{}
	ax.Mul(ahat, x)
	_, u, _ := encode(ax, w)

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, o.Dim)
		mat.Row(rows[i], i, u)
	}

	return skipgram.NewEmbeddings(v.IDs(), rows)
}

// propagated draws one corrupted view and returns its propagated feature
// matrix Â'·X'.
func propagated(v *core.DenseView, x *mat.Dense, o *Options, rng *rand.Rand) *mat.Dense {
	a := droppedOperator(v, o.EdgeDrop, rng)
	xm := maskedFeatures(x, o.FeatureMask, rng)
	ax := &mat.Dense{}
	ax.Mul(a, xm)

	return ax
}

// droppedOperator builds the symmetric propagation operator of the view
// with each edge removed with probability drop. Undirected edges are
// dropped as whole pairs so the operator stays symmetric.
func droppedOperator(v *core.DenseView, drop float64, rng *rand.Rand) *mat.Dense {
	n := v.Len()
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		nbr, wts := v.NeighborsOf(i)
		for k, j := range nbr {
			if !v.Directed() && j < i {
				continue // handled from the smaller endpoint
			}
			if drop > 0 && rng.Float64() < drop {
				continue
			}
			a.Set(i, j, wts[k])
			if !v.Directed() {
				a.Set(j, i, wts[k])
			}
		}
	}

	// A+I with symmetric D̃^{-1/2} scaling
	for i := 0; i < n; i++ {
		a.Set(i, i, a.At(i, i)+1)
	}
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
			if val := a.At(i, j); val != 0 {
				a.Set(i, j, val*invSqrt[i]*invSqrt[j])
			}
		}
	}

	return a
}

// maskedFeatures zeroes whole feature dimensions with probability p.
func maskedFeatures(x *mat.Dense, p float64, rng *rand.Rand) *mat.Dense {
	out := &mat.Dense{}
	out.CloneFrom(x)
	if p == 0 {
		return out
	}
	n, f := out.Dims()
	for k := 0; k < f; k++ {
		if rng.Float64() >= p {
			continue
		}
		for i := 0; i < n; i++ {
			out.Set(i, k, 0)
		}
	}

	return out
}

// encode computes Z = AX·W and its row-normalized form U, returning both
// plus the per-row norms needed by the backward pass.
func encode(ax, w *mat.Dense) (z, u *mat.Dense, norms []float64) {
	z = &mat.Dense{}
	z.Mul(ax, w)

	n, d := z.Dims()
	u = mat.NewDense(n, d, nil)
	norms = make([]float64, n)
	for i := 0; i < n; i++ {
		var sq float64
		for k := 0; k < d; k++ {
			sq += z.At(i, k) * z.At(i, k)
		}
		norms[i] = math.Sqrt(sq)
		if norms[i] == 0 {
			norms[i] = 1
		}
		for k := 0; k < d; k++ {
			u.Set(i, k, z.At(i, k)/norms[i])
		}
	}

	return z, u, norms
}

// addSoftmaxGrad accumulates scale·(softmax(S) - I) into ds, row-wise when
// transposed is false and column-wise otherwise.
func addSoftmaxGrad(ds, s *mat.Dense, transposed bool, scale float64) {
	n, _ := s.Dims()
	for i := 0; i < n; i++ {
		at := func(j int) float64 {
			if transposed {
				return s.At(j, i)
			}
			return s.At(i, j)
		}
		maxv := at(0)
		for j := 1; j < n; j++ {
			maxv = math.Max(maxv, at(j))
		}
		var sum float64
		for j := 0; j < n; j++ {
			sum += math.Exp(at(j) - maxv)
		}
		for j := 0; j < n; j++ {
			g := math.Exp(at(j)-maxv)/sum*scale - boolScale(i == j, scale)
			if transposed {
				ds.Set(j, i, ds.At(j, i)+g)
			} else {
				ds.Set(i, j, ds.At(i, j)+g)
			}
		}
	}
}

func boolScale(b bool, scale float64) float64 {
	if b {
		return scale
	}

	return 0
}

// normBackward maps a gradient on the normalized rows U back onto Z:
// dZᵢ = (dUᵢ - (dUᵢ·uᵢ)·uᵢ) / ‖zᵢ‖.
func normBackward(du, u *mat.Dense, norms []float64) *mat.Dense {
	n, d := du.Dims()
	dz := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		var dot float64
		for k := 0; k < d; k++ {
			dot += du.At(i, k) * u.At(i, k)
		}
		for k := 0; k < d; k++ {
			dz.Set(i, k, (du.At(i, k)-dot*u.At(i, k))/norms[i])
		}
	}

	return dz
}

// glorot returns a rows×cols matrix drawn uniform in ±sqrt(6/(in+out)).
func glorot(rows, cols int, rng *rand.Rand) *mat.Dense {
	limit := math.Sqrt(6 / float64(rows+cols))
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = (2*rng.Float64() - 1) * limit
	}

	return mat.NewDense(rows, cols, data)
}
