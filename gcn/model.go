package gcn

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/matrix"
)

// defaultSeed keeps seed 0 deterministic.
const defaultSeed = 1

// network is the shared two-layer encoder: Z = Â·ReLU(Â·X·W₁)·W₂.
// Forward caches the intermediates backward needs.
type network struct {
	ax   *mat.Dense // Â·X, fixed for the whole run
	ahat *mat.Dense
	w1   *mat.Dense
	w2   *mat.Dense

	pre1 *mat.Dense // Â·X·W₁ before ReLU
	h1   *mat.Dense
	ah1  *mat.Dense // Â·H₁
	z    *mat.Dense
}

// newNetwork builds the propagation operator and Glorot-initialized
// weights for the given widths. Directed views are rejected: backward
// relies on Â being symmetric.
func newNetwork(v *core.DenseView, hidden, out int, rng *rand.Rand) (*network, error) {
	if v.Directed() {
		return nil, ErrDirectedView
	}
	ahat, err := matrix.NormalizedAdjacency(v)
	if err != nil {
		return nil, ErrNilView
	}
	x, err := matrix.FeatureMatrix(v)
	if err != nil {
		return nil, ErrNilView
	}

	_, f := x.Dims()
	nw := &network{
		ahat: ahat,
		w1:   glorot(f, hidden, rng),
		w2:   glorot(hidden, out, rng),
	}
	nw.ax = &mat.Dense{}
	nw.ax.Mul(ahat, x)

	return nw, nil
}

// forward recomputes Z for the current weights and returns it.
func (nw *network) forward() *mat.Dense {
	nw.pre1 = &mat.Dense{}
	nw.pre1.Mul(nw.ax, nw.w1)

	nw.h1 = &mat.Dense{}
	nw.h1.Apply(func(_, _ int, x float64) float64 { return math.Max(0, x) }, nw.pre1)

	nw.ah1 = &mat.Dense{}
	nw.ah1.Mul(nw.ahat, nw.h1)

	nw.z = &mat.Dense{}
	nw.z.Mul(nw.ah1, nw.w2)

	return nw.z
}

// backward propagates the output gradient dz through both layers and
// applies one decayed gradient-descent step.
func (nw *network) backward(dz *mat.Dense, lr, weightDecay float64) {
	// dW₂ = (Â·H₁)ᵀ · dZ
	dw2 := &mat.Dense{}
	dw2.Mul(nw.ah1.T(), dz)

	// dH₁ = Âᵀ · dZ · W₂ᵀ (Â is symmetric)
	adz := &mat.Dense{}
	adz.Mul(nw.ahat, dz)
	dh1 := &mat.Dense{}
	dh1.Mul(adz, nw.w2.T())

	// gate through the ReLU
	dpre1 := &mat.Dense{}
	dpre1.Apply(func(i, j int, g float64) float64 {
		if nw.pre1.At(i, j) > 0 {
			return g
		}
		return 0
	}, dh1)

	// dW₁ = (Â·X)ᵀ · dPre₁
	dw1 := &mat.Dense{}
	dw1.Mul(nw.ax.T(), dpre1)

	step(nw.w1, dw1, lr, weightDecay)
	step(nw.w2, dw2, lr, weightDecay)
}

// step applies w -= lr·(grad + wd·w) in place.
func step(w, grad *mat.Dense, lr, wd float64) {
	data := w.RawMatrix().Data
	gd := grad.RawMatrix().Data
	for i := range data {
		data[i] -= lr * (gd[i] + wd*data[i])
	}
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

// rngFromSeed applies the seed-0 policy.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// sigmoid is the logistic function, clamped for stability.
func sigmoid(x float64) float64 {
	switch {
	case x > 30:
		return 1
	case x < -30:
		return 0
	default:
		return 1 / (1 + math.Exp(-x))
	}
}
