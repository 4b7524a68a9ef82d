// Package builder: the Zachary karate-club fixture — the canonical 34-node,
// 78-edge social network used throughout the embedding and community
// experiments. Vertex IDs follow the traditional 1-based numbering and each
// vertex records its post-split faction under the "faction" metadata key.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvlgraph/core"
)

// FactionKey is the vertex metadata key holding the ground-truth faction
// (0 = instructor "Mr. Hi", 1 = administrator "Officer").
const FactionKey = "faction"

// karateEdges is Zachary's original 78-edge list (1-based endpoints).
var karateEdges = [][2]int{
	{2, 1}, {3, 1}, {3, 2}, {4, 1}, {4, 2}, {4, 3}, {5, 1}, {6, 1},
	{7, 1}, {7, 5}, {7, 6}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {9, 1},
	{9, 3}, {10, 3}, {11, 1}, {11, 5}, {11, 6}, {12, 1}, {13, 1}, {13, 4},
	{14, 1}, {14, 2}, {14, 3}, {14, 4}, {17, 6}, {17, 7}, {18, 1}, {18, 2},
	{20, 1}, {20, 2}, {22, 1}, {22, 2}, {26, 24}, {26, 25}, {28, 3}, {28, 24},
	{28, 25}, {29, 3}, {30, 24}, {30, 27}, {31, 2}, {31, 9}, {32, 1}, {32, 25},
	{32, 26}, {32, 29}, {33, 3}, {33, 9}, {33, 15}, {33, 16}, {33, 19}, {33, 21},
	{33, 23}, {33, 24}, {33, 30}, {33, 31}, {33, 32}, {34, 9}, {34, 10}, {34, 14},
	{34, 15}, {34, 16}, {34, 19}, {34, 20}, {34, 21}, {34, 23}, {34, 24}, {34, 27},
	{34, 28}, {34, 29}, {34, 30}, {34, 31}, {34, 32}, {34, 33},
}

// karateOfficerSide lists the members that followed the administrator after
// the split; everyone else stayed with the instructor.
var karateOfficerSide = map[int]bool{
	9: true, 10: true, 15: true, 16: true, 19: true, 21: true, 23: true,
	24: true, 25: true, 26: true, 27: true, 28: true, 29: true, 30: true,
	31: true, 32: true, 33: true, 34: true,
}

// KarateClub builds Zachary's karate club. The idFn is bypassed: the
// traditional numbering "1".."34" is the canonical ID scheme.
// Complexity: O(V+E), fixed.
func KarateClub() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		rng := rngFromSeed(cfg.seed)
		for i := 1; i <= 34; i++ {
			id := strconv.Itoa(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("KarateClub: %w", err)
			}
			faction := 0
			if karateOfficerSide[i] {
				faction = 1
			}
			g.Metadata(id)[FactionKey] = faction
		}
		for _, e := range karateEdges {
			from, to := strconv.Itoa(e[0]), strconv.Itoa(e[1])
			if _, err := g.AddEdge(from, to, cfg.weightFn(rng)); err != nil {
				return fmt.Errorf("KarateClub: %w", err)
			}
		}

		return nil
	}
}

// KarateFaction returns the ground-truth faction of a karate-club vertex.
// Returns ErrConstructFailed for IDs outside "1".."34".
func KarateFaction(id string) (int, error) {
	i, err := strconv.Atoi(id)
	if err != nil || i < 1 || i > 34 {
		return 0, fmt.Errorf("KarateFaction(%q): %w", id, ErrConstructFailed)
	}
	if karateOfficerSide[i] {
		return 1, nil
	}

	return 0, nil
}
