// Package gcn implements a two-layer graph convolutional network with
// manual gradients on gonum dense matrices. The propagation rule is the
// symmetric renormalization Â = D̃^{-1/2}(A+I)D̃^{-1/2} from Kipf &
// Welling (2017):
//
//	H₁ = ReLU(Â·X·W₁)
//	Z  = Â·H₁·W₂
//
// Two task heads share the encoder:
//
//   - NodeClassifier: softmax cross-entropy on a labeled subset of nodes,
//     semi-supervised in the transductive sense (unlabeled nodes still
//     shape the propagation).
//   - LinkPredictor: dot-product decoder σ(zᵢ·zⱼ) trained against sampled
//     negative pairs, evaluated by ROC-AUC on held-out edges from
//     EdgeSplit.
//
// Training is full-batch gradient descent with weight decay; a fixed seed
// reproduces a run exactly.
package gcn
