// Package builder: planted-partition (stochastic block model) graphs for
// community-detection and semi-supervised classification experiments.

package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlgraph/core"
)

// blockSep joins the block index and member index in planted IDs ("2:17").
const blockSep = ":"

// PlantedPartition builds a stochastic block model with `blocks` communities
// of `size` vertices each. Vertices inside the same block connect with
// probability pIntra, across blocks with probability pInter. Vertex IDs are
// "<block>:<member>"; recover the ground-truth community with BlockOf.
// Complexity: O((blocks·size)²) pair checks.
func PlantedPartition(blocks, size int, pIntra, pInter float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if blocks < 1 || size < 1 {
			return fmt.Errorf("PlantedPartition(%d,%d): %w", blocks, size, ErrInvalidBlocks)
		}
		if pIntra < 0 || pIntra > 1 || pInter < 0 || pInter > 1 {
			return fmt.Errorf("PlantedPartition: pIntra=%g pInter=%g: %w", pIntra, pInter, ErrInvalidProbability)
		}
		rng := rngFromSeed(cfg.seed)

		n := blocks * size
		id := func(i int) string {
			return strconv.Itoa(i/size) + blockSep + strconv.Itoa(i%size)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(id(i)); err != nil {
				return fmt.Errorf("PlantedPartition: %w", err)
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				p := pInter
				if i/size == j/size {
					p = pIntra
				}
				if rng.Float64() < p {
					if _, err := g.AddEdge(id(i), id(j), cfg.weightFn(rng)); err != nil {
						return fmt.Errorf("PlantedPartition: %w", err)
					}
				}
			}
		}

		return nil
	}
}

// BlockOf recovers the planted block index from a PlantedPartition vertex ID.
// Returns ErrConstructFailed for IDs not in "<block>:<member>" form.
func BlockOf(id string) (int, error) {
	head, _, ok := strings.Cut(id, blockSep)
	if !ok {
		return 0, fmt.Errorf("BlockOf(%q): %w", id, ErrConstructFailed)
	}
	b, err := strconv.Atoi(head)
	if err != nil {
		return 0, fmt.Errorf("BlockOf(%q): %w", id, ErrConstructFailed)
	}

	return b, nil
}
