// Package builder: stochastic topologies (Erdős–Rényi, preferential
// attachment). Both are deterministic for a fixed seed: pair iteration is
// index-ordered and all random draws come from a single seeded stream.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
)

// ErdosRenyi builds a G(n,p) random graph: each unordered pair (directed:
// each ordered pair) receives an edge independently with probability p.
// Complexity: O(n²) pair checks.
func ErdosRenyi(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("ErdosRenyi(%d): %w", n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("ErdosRenyi: p=%g: %w", p, ErrInvalidProbability)
		}
		rng := rngFromSeed(cfg.seed)
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("ErdosRenyi: %w", err)
			}
		}
		directed := g.Directed()
		for i := 0; i < n; i++ {
			lo := i + 1
			if directed {
				lo = 0
			}
			for j := lo; j < n; j++ {
				if i == j {
					continue
				}
				if rng.Float64() < p {
					if _, err := g.AddEdge(cfg.idFn(i), cfg.idFn(j), cfg.weightFn(rng)); err != nil {
						return fmt.Errorf("ErdosRenyi: %w", err)
					}
				}
			}
		}

		return nil
	}
}

// PreferentialAttachment builds a Barabási–Albert graph: starting from a
// connected seed of m vertices, each new vertex attaches m edges to
// existing vertices chosen proportionally to their current degree
// (repeat-endpoint draws are retried, so every new vertex gains m distinct
// neighbors). Undirected graphs only in spirit; directed graphs receive
// new→old edges.
// Requires 1 ≤ m < n.
// Complexity: O(n·m) draws over a degree-repeated endpoint list.
func PreferentialAttachment(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 2 {
			return fmt.Errorf("PreferentialAttachment(%d,%d): %w", n, m, ErrTooFewVertices)
		}
		if m < 1 || m >= n {
			return fmt.Errorf("PreferentialAttachment: m=%d: %w", m, ErrInvalidDegree)
		}
		rng := rngFromSeed(cfg.seed)
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("PreferentialAttachment: %w", err)
			}
		}

		// Seed component: path over the first m+1 vertices keeps it connected.
		// targets repeats each vertex index once per incident edge, which makes
		// a uniform draw from it a degree-proportional draw.
		var targets []int
		for i := 0; i < m; i++ {
			if _, err := g.AddEdge(cfg.idFn(i), cfg.idFn(i+1), cfg.weightFn(rng)); err != nil {
				return fmt.Errorf("PreferentialAttachment: %w", err)
			}
			targets = append(targets, i, i+1)
		}

		for v := m + 1; v < n; v++ {
			chosen := make(map[int]struct{}, m)
			for len(chosen) < m {
				t := targets[rng.Intn(len(targets))]
				if t == v {
					continue
				}
				if _, dup := chosen[t]; dup {
					continue
				}
				chosen[t] = struct{}{}
			}
			// Attach in ascending target order for reproducible edge IDs.
			picks := make([]int, 0, m)
			for t := range chosen {
				picks = append(picks, t)
			}
			sortInts(picks)
			for _, t := range picks {
				if _, err := g.AddEdge(cfg.idFn(v), cfg.idFn(t), cfg.weightFn(rng)); err != nil {
					return fmt.Errorf("PreferentialAttachment: %w", err)
				}
				targets = append(targets, v, t)
			}
		}

		return nil
	}
}

// sortInts is a tiny insertion sort: m is small (attachment degree).
func sortInts(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}
