package randomwalk

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlgraph/core"
)

// Corpus generates Options.WalksPerNode walks from every node of the view,
// sharded across Options.Workers goroutines. The result is indexed
// result[rep·n + node], so the corpus layout is stable, and each walk draws
// from its own RNG stream derived from (seed, rep·n+node) — the corpus is
// byte-identical for a fixed seed no matter how many workers run it.
//
// Returns ErrNilView or ErrOptionViolation.
// Complexity: O(n · WalksPerNode · WalkLength · d) work total.
func Corpus(ctx context.Context, v *core.DenseView, opts ...Option) ([][]int, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	if v == nil || v.Len() == 0 {
		return nil, ErrNilView
	}

	n := v.Len()
	total := o.WalksPerNode * n
	result := make([][]int, total)

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(o.Workers)

	// Shard by contiguous slot ranges; each slot owns one (rep, node) pair.
	chunk := (total + o.Workers - 1) / o.Workers
	for lo := 0; lo < total; lo += chunk {
		lo, hi := lo, min(lo+chunk, total)
		grp.Go(func() error {
			for slot := lo; slot < hi; slot++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				start := slot % n
				w, werr := walk(v, start, o, deriveRNG(o.Seed, uint64(slot)))
				if werr != nil {
					return werr
				}
				result[slot] = w
			}
			return nil
		})
	}
	if err = grp.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}
