// Package builder: deterministic classic topologies (Ring, Complete, Grid).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
)

// Ring builds an n-vertex simple cycle C_n (n ≥ 3).
// Vertices are cfg.idFn(0..n-1); edges i→(i+1) mod n in index order.
// Complexity: O(n) vertices + O(n) edges.
func Ring(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 3 {
			return fmt.Errorf("Ring(%d): %w", n, ErrTooFewVertices)
		}
		rng := rngFromSeed(cfg.seed)
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("Ring: %w", err)
			}
		}
		for i := 0; i < n; i++ {
			if _, err := g.AddEdge(cfg.idFn(i), cfg.idFn((i+1)%n), cfg.weightFn(rng)); err != nil {
				return fmt.Errorf("Ring: %w", err)
			}
		}

		return nil
	}
}

// Complete builds the complete simple graph K_n (n ≥ 1).
// Complexity: O(n) vertices + O(n²) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("Complete(%d): %w", n, ErrTooFewVertices)
		}
		rng := rngFromSeed(cfg.seed)
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("Complete: %w", err)
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, err := g.AddEdge(cfg.idFn(i), cfg.idFn(j), cfg.weightFn(rng)); err != nil {
					return fmt.Errorf("Complete: %w", err)
				}
			}
		}

		return nil
	}
}

// Grid builds an R×C 4-neighborhood grid with IDs "r,c" (row-major).
// The idFn is bypassed: grid coordinates are the canonical ID scheme.
// Complexity: O(R·C) vertices + O(R·C) edges.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("Grid(%d,%d): %w", rows, cols, ErrTooFewVertices)
		}
		rng := rngFromSeed(cfg.seed)
		id := func(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(id(r, c)); err != nil {
					return fmt.Errorf("Grid: %w", err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if _, err := g.AddEdge(id(r, c), id(r, c+1), cfg.weightFn(rng)); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
				if r+1 < rows {
					if _, err := g.AddEdge(id(r, c), id(r+1, c), cfg.weightFn(rng)); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
			}
		}

		return nil
	}
}
