package skipgram

import (
	"fmt"
	"math"
	"sort"
)

// Embeddings is an immutable node-embedding table: one dense row of Dim
// float64s per vertex ID, with cosine lookup helpers on top.
type Embeddings struct {
	ids   []string
	index map[string]int
	vecs  []float64 // row-major, len = len(ids)·dim
	dim   int
}

// Match is one MostSimilar hit.
type Match struct {
	ID    string
	Score float64
}

// NewEmbeddings builds a table from parallel ids/vectors slices, copying
// both. Returns ErrBadTable for empty input, ragged rows, or duplicate
// ids.
func NewEmbeddings(ids []string, vectors [][]float64) (*Embeddings, error) {
	if len(ids) == 0 || len(ids) != len(vectors) {
		return nil, fmt.Errorf("%w: %d ids vs %d vectors", ErrBadTable, len(ids), len(vectors))
	}
	dim := len(vectors[0])
	if dim == 0 {
		return nil, fmt.Errorf("%w: zero-dimensional rows", ErrBadTable)
	}

	e := &Embeddings{
		ids:   append([]string(nil), ids...),
		index: make(map[string]int, len(ids)),
		vecs:  make([]float64, len(ids)*dim),
		dim:   dim,
	}
	for i, id := range ids {
		if _, dup := e.index[id]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrBadTable, id)
		}
		if len(vectors[i]) != dim {
			return nil, fmt.Errorf("%w: row %q has dim %d, want %d", ErrBadTable, id, len(vectors[i]), dim)
		}
		e.index[id] = i
		copy(e.vecs[i*dim:(i+1)*dim], vectors[i])
	}

	return e, nil
}

// Len returns the number of embedded vertices.
func (e *Embeddings) Len() int { return len(e.ids) }

// Dim returns the embedding dimensionality.
func (e *Embeddings) Dim() int { return e.dim }

// IDs returns the vertex IDs in table order (copy).
func (e *Embeddings) IDs() []string { return append([]string(nil), e.ids...) }

// Vector returns a copy of the embedding for id, or ErrUnknownID.
func (e *Embeddings) Vector(id string) ([]float64, error) {
	i, ok := e.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownID, id)
	}

	return append([]float64(nil), e.row(i)...), nil
}

// VectorAt returns the i-th row without copying; callers must not write
// through it. Panics on out-of-range i, matching slice semantics.
func (e *Embeddings) VectorAt(i int) []float64 { return e.row(i) }

// CosineSimilarity returns the cosine between the embeddings of a and b.
func (e *Embeddings) CosineSimilarity(a, b string) (float64, error) {
	i, ok := e.index[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownID, a)
	}
	j, ok := e.index[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownID, b)
	}

	return cosine(e.row(i), e.row(j)), nil
}

// MostSimilar returns up to k vertices ranked by cosine similarity to id,
// excluding id itself. Ties break by table order.
func (e *Embeddings) MostSimilar(id string, k int) ([]Match, error) {
	i, ok := e.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownID, id)
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be ≥ 1 (%d)", ErrOptionViolation, k)
	}

	ref := e.row(i)
	matches := make([]Match, 0, len(e.ids)-1)
	for j, other := range e.ids {
		if j == i {
			continue
		}
		matches = append(matches, Match{ID: other, Score: cosine(ref, e.row(j))})
	}
	sort.SliceStable(matches, func(a, b int) bool { return matches[a].Score > matches[b].Score })
	if k < len(matches) {
		matches = matches[:k]
	}

	return matches, nil
}

func (e *Embeddings) row(i int) []float64 {
	return e.vecs[i*e.dim : (i+1)*e.dim]
}

// cosine returns the cosine of two equal-length vectors, 0 when either
// has zero norm.
func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}

	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
