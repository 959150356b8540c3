// Package batch fans validation work out across protocols and joins it
// before aggregation. Each protocol's task is independent, so a bounded
// worker pool is safe; the join is the barrier the summary writers rely on.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds concurrency when the config does not set one.
const DefaultWorkers = 4

// Run executes fn once per id with at most workers running concurrently
// and returns the outcomes in id order. fn must capture per-protocol
// failures inside its outcome: one protocol failing never aborts the rest.
func Run[T any](ctx context.Context, ids []string, workers int, fn func(ctx context.Context, id string) T) []T {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	results := make([]T, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			results[i] = fn(ctx, id)
			return nil
		})
	}
	// Tasks never return errors; Wait is purely the fan-in barrier.
	_ = g.Wait()
	return results
}
