package gcn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlgraph/core"
)

// NodeClassifier is a trained semi-supervised node classifier. Labels for
// a subset of nodes steer the fit; predictions cover every node.
type NodeClassifier struct {
	nw      *network
	view    *core.DenseView
	classes int
	probs   *mat.Dense
	loss    float64
}

// TrainNodeClassifier fits the two-layer GCN on the view. labels holds one
// entry per dense index: the class (0-based) for labeled nodes, -1 for
// unlabeled ones. Returns ErrNilView, ErrDirectedView, ErrBadLabels, or
// ErrOptionViolation.
// Complexity: O(epochs · V² · hidden) for dense propagation.
func TrainNodeClassifier(v *core.DenseView, labels []int, opts ...Option) (*NodeClassifier, error) {
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

	n := v.Len()
	if len(labels) != n {
		return nil, fmt.Errorf("%w: got %d labels for %d nodes", ErrBadLabels, len(labels), n)
	}
	classes, labeled := 0, 0
	for i, y := range labels {
		switch {
		case y == -1:
		case y >= 0:
			labeled++
			if y+1 > classes {
				classes = y + 1
			}
		default:
			return nil, fmt.Errorf("%w: label %d at index %d", ErrBadLabels, y, i)
		}
	}
	if labeled == 0 || classes < 2 {
		return nil, fmt.Errorf("%w: need labeled nodes in ≥ 2 classes", ErrBadLabels)
	}

	rng := rngFromSeed(o.Seed)
	nw, err := newNetwork(v, o.Hidden, classes, rng)
	if err != nil {
		return nil, err
	}

	c := &NodeClassifier{nw: nw, view: v, classes: classes}
	scale := 1 / float64(labeled)
	for epoch := 0; epoch < o.Epochs; epoch++ {
		z := nw.forward()
		probs := softmaxRows(z)

		dz := mat.NewDense(n, classes, nil)
		c.loss = 0
		for i, y := range labels {
			if y < 0 {
				continue
			}
			c.loss -= scale * math.Log(math.Max(probs.At(i, y), 1e-12))
			for k := 0; k < classes; k++ {
				grad := probs.At(i, k) * scale
				if k == y {
					grad -= scale
				}
				dz.Set(i, k, grad)
			}
		}
		nw.backward(dz, o.LearningRate, o.WeightDecay)
	}
	c.probs = softmaxRows(nw.forward())

	return c, nil
}

// Loss returns the final training cross-entropy.
func (c *NodeClassifier) Loss() float64 { return c.loss }

// Classes returns the number of classes seen during training.
func (c *NodeClassifier) Classes() int { return c.classes }

// Probabilities returns the n×classes softmax output (copy).
func (c *NodeClassifier) Probabilities() *mat.Dense {
	out := &mat.Dense{}
	out.CloneFrom(c.probs)

	return out
}

// Predict returns the argmax class per dense index.
func (c *NodeClassifier) Predict() []int {
	n, _ := c.probs.Dims()
	pred := make([]int, n)
	for i := 0; i < n; i++ {
		best, bestP := 0, c.probs.At(i, 0)
		for k := 1; k < c.classes; k++ {
			if p := c.probs.At(i, k); p > bestP {
				best, bestP = k, p
			}
		}
		pred[i] = best
	}

	return pred
}

// Accuracy scores predictions against truth, skipping entries with
// truth < 0. Returns ErrBadLabels on length mismatch or an all-masked
// truth vector.
func (c *NodeClassifier) Accuracy(truth []int) (float64, error) {
	pred := c.Predict()
	if len(truth) != len(pred) {
		return 0, fmt.Errorf("%w: got %d truth entries for %d nodes", ErrBadLabels, len(truth), len(pred))
	}
	hit, total := 0, 0
	for i, y := range truth {
		if y < 0 {
			continue
		}
		total++
		if pred[i] == y {
			hit++
		}
	}
	if total == 0 {
		return 0, fmt.Errorf("%w: no labeled truth entries", ErrBadLabels)
	}

	return float64(hit) / float64(total), nil
}

// softmaxRows applies a numerically stable row softmax.
func softmaxRows(z *mat.Dense) *mat.Dense {
	n, k := z.Dims()
	out := mat.NewDense(n, k, nil)
	for i := 0; i < n; i++ {
		maxv := z.At(i, 0)
		for j := 1; j < k; j++ {
			maxv = math.Max(maxv, z.At(i, j))
		}
		var sum float64
		for j := 0; j < k; j++ {
			e := math.Exp(z.At(i, j) - maxv)
			out.Set(i, j, e)
			sum += e
		}
		for j := 0; j < k; j++ {
			out.Set(i, j, out.At(i, j)/sum)
		}
	}

	return out
}
