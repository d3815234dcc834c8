package chain

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/padchain/keypad"
)

// ScoreParallel is Score with codes evaluated concurrently by up to workers
// goroutines (workers ≤ 0 means one goroutine per code). The layers' caches
// are shared and lock-guarded, so the result equals Score's. The first error
// or a cancelled ctx stops scheduling further codes.
//
// An OnEnumerate hook installed on the chain must be safe for concurrent use.
func (c *Chain) ScoreParallel(ctx context.Context, codes []keypad.Code, workers int) (int64, error) {
	results := make([]int64, len(codes))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, code := range codes {
		i, code := i, code
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := c.Complexity(code)
			if err != nil {
				return fmt.Errorf("chain: code %d: %w", i, err)
			}
			results[i] = v

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var (
		total int64
		ok    bool
	)
	for i, v := range results {
		if total, ok = addInt64(total, v); !ok {
			return 0, fmt.Errorf("%w: total after code %d", ErrOverflow, i)
		}
	}
	c.opts.Logger.Debug("codes scored in parallel", "codes", len(codes), "workers", workers, "total", total)

	return total, nil
}
