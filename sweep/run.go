// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"sync"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cylmag/magnet"
)

// Run evaluates q over every sample of plane for the magnet p.
//
// Implementation:
//   - Stage 1: validate plane and p, resolve the evaluator of q.
//   - Stage 2: start min(workers, V) goroutines that read row indices from a
//     channel and fill their rows of the shared vector slice. Rows never
//     overlap, so no locking is needed.
//   - Stage 3: feed rows until done or ctx is cancelled, then wait.
//   - Stage 4: assemble the Result (magnitudes, non-finite count).
//
// A nil ctx is treated as context.Background(). On cancellation Run returns
// ctx.Err() and no Result.
//
// Complexity: O(U·V) evaluations, Memory: O(U·V).
func Run(ctx context.Context, plane Plane, p magnet.Parameters, q Quantity, opts ...Option) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := plane.validate(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	eval, err := q.evaluator(p)
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	workers := cfg.workers
	if workers > plane.V.N {
		workers = plane.V.N
	}
	log := cfg.logger.With("quantity", q.String(), "plane", plane.Kind.String())
	log.Debug("sweep starting", "points", plane.Size(), "workers", workers)
	start := time.Now()

	us, vs := plane.U.Values(), plane.V.Values()
	vectors := make([]r3.Vec, plane.Size())

	rows := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				base := plane.index(0, j)
				for i, u := range us {
					vectors[base+i] = eval(plane.Point(u, vs[j]))
				}
			}
		}()
	}

feed:
	for j := range vs {
		select {
		case <-ctx.Done():
			break feed
		case rows <- j:
		}
	}
	close(rows)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		log.Info("sweep cancelled", "error", err)
		return nil, err
	}

	res, err := NewResult(plane, q, vectors)
	if err != nil {
		return nil, err
	}
	log.Info("sweep finished",
		"points", plane.Size(),
		"non_finite", res.NonFinite,
		"elapsed", time.Since(start),
	)

	return res, nil
}
